package reserveresource

import (
	"time"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

const (
	commandType = "ReserveResource"
)

// Command is the intent of a member to reserve a resource.
// DigitalContent is not reservable, so it cannot be named here.
type Command struct {
	Resource   core.Reservable
	MemberID   core.MemberIDString
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(resource core.Reservable, memberID core.MemberIDString, occurredAt time.Time) Command {
	return Command{
		Resource:   resource,
		MemberID:   memberID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
