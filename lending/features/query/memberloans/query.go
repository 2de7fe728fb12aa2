package memberloans

import (
	"time"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

const (
	queryType = "MemberLoans"
)

// Query asks for the loans of one member, with late fees assessed at AsOf.
type Query struct {
	MemberID core.MemberIDString
	AsOf     time.Time
}

// QueryType returns the type identifier for this query, used for observability.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query.
func BuildQuery(memberID core.MemberIDString, asOf time.Time) Query {
	return Query{
		MemberID: memberID,
		AsOf:     core.ToOccurredAt(asOf),
	}
}
