package returnresource

import (
	"time"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

const (
	commandType = "ReturnResource"
)

// Command is the intent of a member to bring back a borrowed resource.
type Command struct {
	ResourceID core.ResourceIDString
	MemberID   core.MemberIDString
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(resourceID core.ResourceIDString, memberID core.MemberIDString, occurredAt time.Time) Command {
	return Command{
		ResourceID: resourceID,
		MemberID:   memberID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
