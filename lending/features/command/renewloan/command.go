package renewloan

import (
	"time"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

const (
	commandType = "RenewLoan"
)

// Command is the intent of a member to renew a resource.
// Only renewable resources can be named, which every resource kind currently is.
type Command struct {
	Resource   core.Renewable
	MemberID   core.MemberIDString
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(resource core.Renewable, memberID core.MemberIDString, occurredAt time.Time) Command {
	return Command{
		Resource:   resource,
		MemberID:   memberID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
