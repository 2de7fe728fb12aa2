package shell

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/AntonStoeckl/resource-lending-go/journal"
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

// AppendsEvents is the part of the journal the Library writes to.
type AppendsEvents interface {
	Append(ctx context.Context, events ...journal.StorableEvent) error
}

type resourceEntry struct {
	resource  core.Resource
	available bool
	loan      *core.Loan
}

type memberEntry struct {
	member   core.Member
	borrowed map[core.ResourceIDString]struct{}
}

// Library holds the availability of every resource and the borrowed set of every member.
// All reads and writes go through one mutex, so a decision and its application are atomic.
type Library struct {
	mu        sync.Mutex
	resources map[core.ResourceIDString]*resourceEntry
	members   map[core.MemberIDString]*memberEntry

	journal          AppendsEvents
	clock            func() time.Time
	logger           Logger
	contextualLogger ContextualLogger
}

// LibraryOption configures a Library.
type LibraryOption func(*Library)

// WithClock sets the time source for catalog and registration events.
func WithClock(clock func() time.Time) LibraryOption {
	return func(l *Library) {
		l.clock = clock
	}
}

// WithLibraryLogger sets a basic logger.
func WithLibraryLogger(logger Logger) LibraryOption {
	return func(l *Library) {
		l.logger = logger
	}
}

// WithLibraryContextualLogger sets a context-aware logger; it takes precedence over WithLibraryLogger.
func WithLibraryContextualLogger(logger ContextualLogger) LibraryOption {
	return func(l *Library) {
		l.contextualLogger = logger
	}
}

// NewLibrary creates an empty Library that journals every event to j.
func NewLibrary(j AppendsEvents, opts ...LibraryOption) *Library {
	l := &Library{
		resources: make(map[core.ResourceIDString]*resourceEntry),
		members:   make(map[core.MemberIDString]*memberEntry),
		journal:   j,
		clock:     time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// AddResource registers resource with its initial availability.
// A resource added as unavailable is out of circulation and held by nobody.
func (l *Library) AddResource(ctx context.Context, resource core.Resource, available bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := resource.ResourceID()
	if _, exists := l.resources[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateResource, id)
	}

	if err := l.record(ctx, core.BuildResourceAddedToCatalog(resource, available, l.clock())); err != nil {
		return err
	}

	l.resources[id] = &resourceEntry{resource: resource, available: available}
	LogInfo(ctx, l.logger, l.contextualLogger, LogMsgCatalogChanged,
		LogAttrEventType, core.ResourceAddedToCatalogEventType,
		LogAttrResourceID, id,
	)

	return nil
}

// RegisterMember adds member with an empty borrowed set.
func (l *Library) RegisterMember(ctx context.Context, member core.Member) error {
	if !member.Tier.IsValid() {
		return fmt.Errorf("%w: tier %q", core.ErrInvalidMembership, member.Tier)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.members[member.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMember, member.ID)
	}

	if err := l.record(ctx, core.BuildMemberRegistered(member, l.clock())); err != nil {
		return err
	}

	l.members[member.ID] = &memberEntry{member: member, borrowed: make(map[core.ResourceIDString]struct{})}
	LogInfo(ctx, l.logger, l.contextualLogger, LogMsgCatalogChanged,
		LogAttrEventType, core.MemberRegisteredEventType,
		LogAttrMemberID, member.ID,
	)

	return nil
}

// Execute runs decide on a snapshot of the resource and the member, journals the decided event
// and applies it. The whole sequence holds the library lock.
// The returned error is only set if the decision could not be made or recorded;
// a business rule violation is reported through the DecisionResult.
func (l *Library) Execute(
	ctx context.Context,
	resourceID core.ResourceIDString,
	memberID core.MemberIDString,
	decide DecideFunc,
) (core.DecisionResult, error) {
	if err := ctx.Err(); err != nil {
		return core.DecisionResult{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	re, ok := l.resources[resourceID]
	if !ok {
		return core.DecisionResult{}, fmt.Errorf("%w: %s", ErrResourceNotFound, resourceID)
	}

	me, ok := l.members[memberID]
	if !ok {
		return core.DecisionResult{}, fmt.Errorf("%w: %s", ErrMemberNotFound, memberID)
	}

	result := decide(snapshot(re, me))
	if !result.HasEventToAppend() {
		return result, nil
	}

	if err := l.record(ctx, result.Event); err != nil {
		return core.DecisionResult{}, err
	}

	l.apply(result.Event)
	LogInfo(ctx, l.logger, l.contextualLogger, LogMsgLendingEvent,
		LogAttrEventType, result.Event.IsEventType(),
		LogAttrResourceID, resourceID,
		LogAttrMemberID, memberID,
	)

	return result, nil
}

// record journals event. The caller holds the lock.
func (l *Library) record(ctx context.Context, event core.DomainEvent) error {
	storableEvent, err := StorableEventFrom(event, EventMetadataFor(ctx))
	if err != nil {
		return err
	}

	return l.journal.Append(ctx, storableEvent)
}

// apply mutates the state according to event. The caller holds the lock.
func (l *Library) apply(event core.DomainEvent) {
	switch e := event.(type) {
	case core.ResourceBorrowed:
		loan := core.Loan{
			ResourceID: e.ResourceID,
			MemberID:   e.MemberID,
			Kind:       e.Kind,
			BorrowedAt: e.OccurredAt,
			DueAt:      e.DueAt,
		}
		l.resources[e.ResourceID].available = false
		l.resources[e.ResourceID].loan = &loan
		l.members[e.MemberID].borrowed[e.ResourceID] = struct{}{}

	case core.ResourceReturned:
		// A return always releases the resource; only a holder loses it from the borrowed set.
		l.resources[e.ResourceID].available = true
		l.resources[e.ResourceID].loan = nil
		delete(l.members[e.MemberID].borrowed, e.ResourceID)

	case core.LoanRenewed:
		re := l.resources[e.ResourceID]
		if re.loan != nil && re.loan.MemberID == e.MemberID && !e.DueAt.IsZero() {
			re.loan.DueAt = e.DueAt
		}
	}
}

func snapshot(re *resourceEntry, me *memberEntry) core.LendingState {
	state := core.LendingState{
		Resource:          re.resource,
		ResourceAvailable: re.available,
		Member:            me.member,
		MemberBorrowed:    sortedIDs(me.borrowed),
	}

	if re.loan != nil {
		state.ActiveLoan = *re.loan
		state.HasActiveLoan = true
	}

	return state
}

func sortedIDs(set map[core.ResourceIDString]struct{}) []core.ResourceIDString {
	ids := make([]core.ResourceIDString, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// IsAvailable reports whether the resource can be borrowed right now.
func (l *Library) IsAvailable(resourceID core.ResourceIDString) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	re, ok := l.resources[resourceID]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrResourceNotFound, resourceID)
	}

	return re.available, nil
}

// BorrowedBy returns the IDs of the resources the member holds, sorted.
func (l *Library) BorrowedBy(memberID core.MemberIDString) ([]core.ResourceIDString, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	me, ok := l.members[memberID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, memberID)
	}

	return sortedIDs(me.borrowed), nil
}

// Loan returns the active loan of the resource, if any.
func (l *Library) Loan(resourceID core.ResourceIDString) (core.Loan, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	re, ok := l.resources[resourceID]
	if !ok || re.loan == nil {
		return core.Loan{}, false
	}

	return *re.loan, true
}

// Holding is one resource a member holds, together with its loan.
type Holding struct {
	Resource core.Resource
	Loan     core.Loan
}

// MemberSnapshot is a consistent view of one member and everything they hold.
type MemberSnapshot struct {
	Member   core.Member
	Holdings []Holding
}

// Snapshot returns the member and their holdings sorted by resource ID.
func (l *Library) Snapshot(memberID core.MemberIDString) (MemberSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	me, ok := l.members[memberID]
	if !ok {
		return MemberSnapshot{}, fmt.Errorf("%w: %s", ErrMemberNotFound, memberID)
	}

	s := MemberSnapshot{Member: me.member, Holdings: make([]Holding, 0, len(me.borrowed))}
	for _, id := range sortedIDs(me.borrowed) {
		re := l.resources[id]
		h := Holding{Resource: re.resource}
		if re.loan != nil && re.loan.MemberID == memberID {
			h.Loan = *re.loan
		}
		s.Holdings = append(s.Holdings, h)
	}

	return s, nil
}
