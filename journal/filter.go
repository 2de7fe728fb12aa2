package journal

import (
	"cmp"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

// Filter selects journal entries. An empty Filter matches every event.
// Items are OR-ed. Within an item the event types are OR-ed, and the result is AND-ed with the predicates.
type Filter struct {
	items []FilterItem
}

// Items returns the OR-ed items of the filter.
func (f Filter) Items() []FilterItem {
	return f.items
}

// Matches reports whether event satisfies at least one item.
func (f Filter) Matches(event StorableEvent) bool {
	if len(f.items) == 0 {
		return true
	}

	return slices.ContainsFunc(f.items, func(item FilterItem) bool {
		return item.matches(event)
	})
}

// FilterItem is one alternative of a Filter.
type FilterItem struct {
	eventTypes []string
	predicates []FilterPredicate
	matchAll   bool
}

// EventTypes returns the sorted, de-duplicated event types of the item.
func (fi FilterItem) EventTypes() []string {
	return fi.eventTypes
}

// Predicates returns the sorted, de-duplicated predicates of the item.
func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

// AllPredicatesMustMatch reports whether the predicates are AND-ed instead of OR-ed.
func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.matchAll
}

func (fi FilterItem) matches(event StorableEvent) bool {
	if len(fi.eventTypes) > 0 && !slices.Contains(fi.eventTypes, event.EventType) {
		return false
	}

	if len(fi.predicates) == 0 {
		return true
	}

	hit := func(p FilterPredicate) bool { return p.matches(event.PayloadJSON) }

	if fi.matchAll {
		return !slices.ContainsFunc(fi.predicates, func(p FilterPredicate) bool { return !hit(p) })
	}

	return slices.ContainsFunc(fi.predicates, hit)
}

// FilterPredicate compares one top-level payload field with a value, as strings.
type FilterPredicate struct {
	key string
	val string
}

// P builds a FilterPredicate, e.g. P("MemberID", "M001").
func P(key, val string) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() string {
	return fp.key
}

func (fp FilterPredicate) Val() string {
	return fp.val
}

func (fp FilterPredicate) matches(payloadJSON []byte) bool {
	field := jsoniter.Get(payloadJSON, fp.key)
	if field.ValueType() == jsoniter.InvalidValue {
		return false
	}

	return field.ToString() == fp.val
}

func compareFilterPredicates(a, b FilterPredicate) int {
	return cmp.Or(cmp.Compare(a.key, b.key), cmp.Compare(a.val, b.val))
}

// The builder is a small state machine. Each step only offers the calls that make sense next,
// so a half-built item (e.g. event types AND-ed twice) cannot be expressed.

// FilterBuilder is the entry point returned by BuildFilter.
type FilterBuilder interface {
	// Matching opens the first item.
	Matching() ItemStart

	// MatchingAnyEvent returns the empty Filter.
	MatchingAnyEvent() Filter
}

// ItemStart is an open item without conditions.
type ItemStart interface {
	AnyEventTypeOf(eventType string, more ...string) ItemWithEventTypes
	AnyPredicateOf(predicate FilterPredicate, more ...FilterPredicate) ItemWithPredicates
	AllPredicatesOf(predicate FilterPredicate, more ...FilterPredicate) ItemWithPredicates
}

// ItemWithEventTypes is an item that may still be narrowed by predicates.
type ItemWithEventTypes interface {
	AndAnyPredicateOf(predicate FilterPredicate, more ...FilterPredicate) ItemComplete
	AndAllPredicatesOf(predicate FilterPredicate, more ...FilterPredicate) ItemComplete
	ItemComplete
}

// ItemWithPredicates is an item that may still be narrowed by event types.
type ItemWithPredicates interface {
	AndAnyEventTypeOf(eventType string, more ...string) ItemComplete
	ItemComplete
}

// ItemComplete is an item that can be closed, either to open another one or to finish the Filter.
type ItemComplete interface {
	OrMatching() ItemStart
	Finalize() Filter
}

type filterBuilder struct {
	closed  []FilterItem
	current FilterItem
}

// BuildFilter starts a Filter, e.g.
//
//	BuildFilter().Matching().AnyEventTypeOf("ResourceBorrowed").AndAnyPredicateOf(P("MemberID", "M001")).Finalize()
func BuildFilter() FilterBuilder {
	return filterBuilder{}
}

func (b filterBuilder) Matching() ItemStart {
	b.current = FilterItem{}

	return b
}

func (b filterBuilder) MatchingAnyEvent() Filter {
	return Filter{}
}

func (b filterBuilder) AnyEventTypeOf(eventType string, more ...string) ItemWithEventTypes {
	return b.withEventTypes(eventType, more)
}

func (b filterBuilder) AndAnyEventTypeOf(eventType string, more ...string) ItemComplete {
	return b.withEventTypes(eventType, more)
}

func (b filterBuilder) AnyPredicateOf(predicate FilterPredicate, more ...FilterPredicate) ItemWithPredicates {
	return b.withPredicates(false, predicate, more)
}

func (b filterBuilder) AllPredicatesOf(predicate FilterPredicate, more ...FilterPredicate) ItemWithPredicates {
	return b.withPredicates(true, predicate, more)
}

func (b filterBuilder) AndAnyPredicateOf(predicate FilterPredicate, more ...FilterPredicate) ItemComplete {
	return b.withPredicates(false, predicate, more)
}

func (b filterBuilder) AndAllPredicatesOf(predicate FilterPredicate, more ...FilterPredicate) ItemComplete {
	return b.withPredicates(true, predicate, more)
}

func (b filterBuilder) OrMatching() ItemStart {
	b.closed = b.closeCurrent()
	b.current = FilterItem{}

	return b
}

func (b filterBuilder) Finalize() Filter {
	return Filter{items: b.closeCurrent()}
}

// Empty event types are dropped; the rest is sorted and de-duplicated.
func (b filterBuilder) withEventTypes(first string, more []string) filterBuilder {
	types := slices.Concat(b.current.eventTypes, []string{first}, more)
	types = slices.DeleteFunc(types, func(t string) bool { return t == "" })
	slices.Sort(types)
	b.current.eventTypes = slices.Clip(slices.Compact(types))

	return b
}

// Predicates with an empty key or value are dropped; the rest is sorted and de-duplicated.
func (b filterBuilder) withPredicates(matchAll bool, first FilterPredicate, more []FilterPredicate) filterBuilder {
	predicates := slices.Concat(b.current.predicates, []FilterPredicate{first}, more)
	predicates = slices.DeleteFunc(predicates, func(p FilterPredicate) bool { return p.key == "" || p.val == "" })
	slices.SortFunc(predicates, compareFilterPredicates)
	b.current.predicates = slices.Clip(slices.Compact(predicates))
	b.current.matchAll = matchAll

	return b
}

// closeCurrent returns a fresh slice so earlier builder values stay untouched.
func (b filterBuilder) closeCurrent() []FilterItem {
	return slices.Concat(b.closed, []FilterItem{b.current})
}
