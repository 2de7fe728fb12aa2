package memberloans

import (
	"context"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell"
)

// Library is the part of shell.Library the QueryHandler needs.
type Library interface {
	Snapshot(memberID core.MemberIDString) (shell.MemberSnapshot, error)
}

// QueryHandler answers member loan queries.
type QueryHandler struct {
	library Library
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(library Library) QueryHandler {
	return QueryHandler{library: library}
}

// Handle returns the member's loans. It fails with shell.ErrMemberNotFound for unknown members.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	snapshot, err := h.library.Snapshot(query.MemberID)
	if err != nil {
		return Result{}, err
	}

	return Project(snapshot, query), nil
}
