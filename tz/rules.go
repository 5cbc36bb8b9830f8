package tz

import (
	"fmt"
	"sort"
	"sync"

	"github.com/civiltime/civiltime/civil"
)

// Rules holds the offset history for one zone: either a single fixed
// offset, or a historical model of explicit transitions plus a recurring
// tail of TransitionRules for the open-ended future.
type Rules struct {
	fixed *civil.ZoneOffset

	standardTransitions []int64 // epoch seconds, strictly increasing
	standardOffsets     []civil.ZoneOffset

	savingsTransitions []int64 // epoch seconds, strictly increasing
	wallOffsets        []civil.ZoneOffset

	// explicit holds one Transition per entry of savingsTransitions,
	// built once at construction so lookups never recompute it.
	explicit []Transition
	// boundaries[i] is the earlier of explicit[i]'s before/after local
	// date-times — the start of its gap/overlap critical interval — kept
	// parallel to explicit for local-date-time binary search.
	boundaries []civil.LocalDateTime

	lastRules []TransitionRule

	cacheMu sync.Mutex
	cache   map[int][]Transition
}

// FixedRules returns a Rules that always reports offset, regardless of the
// instant or local date-time queried.
func FixedRules(offset civil.ZoneOffset) *Rules {
	return &Rules{fixed: &offset}
}

// NewRules builds a historical Rules instance. standardTransitions and
// savingsTransitions must be strictly increasing; standardOffsets must have
// one more element than standardTransitions, and wallOffsets one more than
// savingsTransitions.
func NewRules(standardTransitions []int64, standardOffsets []civil.ZoneOffset, savingsTransitions []int64, wallOffsets []civil.ZoneOffset, lastRules []TransitionRule) (*Rules, error) {
	if len(standardOffsets) != len(standardTransitions)+1 {
		return nil, fmt.Errorf("tz: standardOffsets must have len(standardTransitions)+1 elements")
	}
	if len(wallOffsets) != len(savingsTransitions)+1 {
		return nil, fmt.Errorf("tz: wallOffsets must have len(savingsTransitions)+1 elements")
	}
	for i := 1; i < len(standardTransitions); i++ {
		if standardTransitions[i] <= standardTransitions[i-1] {
			return nil, fmt.Errorf("tz: standardTransitions not strictly increasing at index %d", i)
		}
	}
	for i := 1; i < len(savingsTransitions); i++ {
		if savingsTransitions[i] <= savingsTransitions[i-1] {
			return nil, fmt.Errorf("tz: savingsTransitions not strictly increasing at index %d", i)
		}
	}

	r := &Rules{
		standardTransitions: standardTransitions,
		standardOffsets:     standardOffsets,
		savingsTransitions:  savingsTransitions,
		wallOffsets:         wallOffsets,
		lastRules:           lastRules,
	}

	r.explicit = make([]Transition, len(savingsTransitions))
	r.boundaries = make([]civil.LocalDateTime, len(savingsTransitions))
	for i, instant := range savingsTransitions {
		before := wallOffsets[i]
		after := wallOffsets[i+1]
		in, err := civil.InstantFromEpochSecond(instant, 0)
		if err != nil {
			return nil, err
		}
		transitionLocal := in.AtOffset(before).LocalDateTime()
		t := Transition{TransitionLocal: transitionLocal, OffsetBefore: before, OffsetAfter: after}
		r.explicit[i] = t
		start, _ := intervalBounds(t)
		r.boundaries[i] = start
	}
	return r, nil
}

// intervalBounds returns the start and end of t's critical local-time
// interval: for a gap, the range of locals that never occurred; for an
// overlap, the range that occurred twice.
func intervalBounds(t Transition) (start, end civil.LocalDateTime) {
	before := t.DateTimeBefore()
	after := t.DateTimeAfter()
	if before.Compare(after) <= 0 {
		return before, after
	}
	return after, before
}

// IsFixedOffset reports whether r always reports a single offset.
func (r *Rules) IsFixedOffset() bool { return r.fixed != nil }

// FixedOffset returns the offset a fixed-offset Rules always reports. It
// panics if r is not fixed; callers must check IsFixedOffset first.
func (r *Rules) FixedOffset() civil.ZoneOffset {
	if r.fixed == nil {
		panic("tz: FixedOffset called on non-fixed Rules")
	}
	return *r.fixed
}

// TransitionRecord names one transition's epoch second and the offsets in
// force immediately before and after it, for serialization by zonefile.
type TransitionRecord struct {
	EpochSecond  int64
	Before, After civil.ZoneOffset
}

// StandardTransitionRecords returns r's standard-offset transition history
// in wire form. It is empty for a fixed Rules.
func (r *Rules) StandardTransitionRecords() []TransitionRecord {
	if r.fixed != nil || len(r.standardTransitions) == 0 {
		return nil
	}
	out := make([]TransitionRecord, len(r.standardTransitions))
	for i, epoch := range r.standardTransitions {
		out[i] = TransitionRecord{EpochSecond: epoch, Before: r.standardOffsets[i], After: r.standardOffsets[i+1]}
	}
	return out
}

// SavingsTransitionRecords returns r's savings (wall) transition history in
// wire form. It is empty for a fixed Rules.
func (r *Rules) SavingsTransitionRecords() []TransitionRecord {
	if r.fixed != nil || len(r.savingsTransitions) == 0 {
		return nil
	}
	out := make([]TransitionRecord, len(r.savingsTransitions))
	for i, epoch := range r.savingsTransitions {
		out[i] = TransitionRecord{EpochSecond: epoch, Before: r.wallOffsets[i], After: r.wallOffsets[i+1]}
	}
	return out
}

// LastRules returns r's recurring tail rules for the open-ended future.
func (r *Rules) LastRules() []TransitionRule {
	if r.fixed != nil {
		return nil
	}
	return r.lastRules
}

// transitionsForYear materializes lastRules for year, memoizing the result.
// Concurrent callers may race to compute the same year; since the
// computation is deterministic this is harmless.
func (r *Rules) transitionsForYear(year int) []Transition {
	r.cacheMu.Lock()
	if t, ok := r.cache[year]; ok {
		r.cacheMu.Unlock()
		return t
	}
	r.cacheMu.Unlock()

	transitions := make([]Transition, 0, len(r.lastRules))
	for _, rule := range r.lastRules {
		t, err := rule.MaterializeFor(year)
		if err != nil {
			continue
		}
		transitions = append(transitions, t)
	}
	sort.Slice(transitions, func(i, j int) bool { return transitions[i].Compare(transitions[j]) < 0 })

	r.cacheMu.Lock()
	if r.cache == nil {
		r.cache = make(map[int][]Transition)
	}
	r.cache[year] = transitions
	r.cacheMu.Unlock()
	return transitions
}

// OffsetAtInstant returns the offset in force at i.
func (r *Rules) OffsetAtInstant(i civil.Instant) civil.ZoneOffset {
	if r.fixed != nil {
		return *r.fixed
	}
	epochSecond := i.EpochSecond()

	if len(r.lastRules) > 0 {
		boundary := int64(0)
		if len(r.savingsTransitions) > 0 {
			boundary = r.savingsTransitions[len(r.savingsTransitions)-1]
		}
		if len(r.savingsTransitions) == 0 || epochSecond >= boundary {
			if off, ok := r.offsetFromLastRules(i); ok {
				return off
			}
		}
	}

	idx := sort.Search(len(r.savingsTransitions), func(k int) bool {
		return r.savingsTransitions[k] > epochSecond
	})
	return r.wallOffsets[idx]
}

func (r *Rules) offsetFromLastRules(i civil.Instant) (civil.ZoneOffset, bool) {
	year := i.AtOffset(civil.UTC).Date().Year()
	var all []Transition
	for _, y := range [3]int{year - 1, year, year + 1} {
		all = append(all, r.transitionsForYear(y)...)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].Compare(all[b]) < 0 })
	if len(all) == 0 {
		return civil.ZoneOffset{}, false
	}
	offset := r.wallOffsets[len(r.wallOffsets)-1]
	found := false
	for _, t := range all {
		if !t.Instant().After(i) {
			offset = t.OffsetAfter
			found = true
		} else {
			break
		}
	}
	return offset, found
}

// StandardOffset returns the standard (non-DST) offset in force at i.
func (r *Rules) StandardOffset(i civil.Instant) civil.ZoneOffset {
	if r.fixed != nil {
		return *r.fixed
	}
	idx := sort.Search(len(r.standardTransitions), func(k int) bool {
		return r.standardTransitions[k] > i.EpochSecond()
	})
	return r.standardOffsets[idx]
}

// classify locates the transition, if any, whose critical interval
// contains local. ok reports whether local falls inside a gap or overlap;
// when ok is false, single holds the one offset valid at local.
func (r *Rules) classify(local civil.LocalDateTime) (t Transition, ok bool, single civil.ZoneOffset) {
	n := len(r.explicit)
	if n > 0 {
		idx := sort.Search(n, func(i int) bool { return r.boundaries[i].Compare(local) > 0 })
		candidate := idx - 1
		if candidate < 0 {
			return Transition{}, false, r.wallOffsets[0]
		}
		cand := r.explicit[candidate]
		start, end := intervalBounds(cand)
		if local.Compare(start) >= 0 && local.Compare(end) < 0 {
			return cand, true, civil.ZoneOffset{}
		}
		if candidate < n-1 || len(r.lastRules) == 0 {
			return Transition{}, false, r.wallOffsets[candidate+1]
		}
		// candidate is the last explicit transition and local is past
		// its critical interval: fall through to the recurring tail,
		// using wallOffsets[candidate+1] as the base offset.
	} else if len(r.lastRules) == 0 {
		return Transition{}, false, r.wallOffsets[0]
	}

	return r.classifyLastRules(local)
}

func (r *Rules) classifyLastRules(local civil.LocalDateTime) (t Transition, ok bool, single civil.ZoneOffset) {
	year := local.Date().Year()
	var all []Transition
	for _, y := range [3]int{year - 1, year, year + 1} {
		all = append(all, r.transitionsForYear(y)...)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].Compare(all[b]) < 0 })

	fallback := r.wallOffsets[len(r.wallOffsets)-1]
	idx := -1
	for i, cand := range all {
		start, _ := intervalBounds(cand)
		if local.Compare(start) >= 0 {
			idx = i
		} else {
			break
		}
	}
	if idx == -1 {
		return Transition{}, false, fallback
	}
	cand := all[idx]
	start, end := intervalBounds(cand)
	if local.Compare(start) >= 0 && local.Compare(end) < 0 {
		return cand, true, civil.ZoneOffset{}
	}
	return Transition{}, false, cand.OffsetAfter
}

// ValidOffsets returns the offsets valid for local: one in the common
// case, zero if local falls in a gap, two if it falls in an overlap. The
// overlap case orders [offset_before, offset_after].
func (r *Rules) ValidOffsets(local civil.LocalDateTime) []civil.ZoneOffset {
	if r.fixed != nil {
		return []civil.ZoneOffset{*r.fixed}
	}
	t, ok, single := r.classify(local)
	if !ok {
		return []civil.ZoneOffset{single}
	}
	if t.IsGap() {
		return nil
	}
	return []civil.ZoneOffset{t.OffsetBefore, t.OffsetAfter}
}

// TransitionAt returns the transition whose critical interval contains
// local, if any.
func (r *Rules) TransitionAt(local civil.LocalDateTime) (Transition, bool) {
	if r.fixed != nil {
		return Transition{}, false
	}
	t, ok, _ := r.classify(local)
	return t, ok
}

// NextTransition returns the first transition strictly after i, if any.
func (r *Rules) NextTransition(i civil.Instant) (Transition, bool) {
	if r.fixed != nil {
		return Transition{}, false
	}
	idx := sort.Search(len(r.savingsTransitions), func(k int) bool {
		return r.savingsTransitions[k] > i.EpochSecond()
	})
	if idx < len(r.explicit) {
		return r.explicit[idx], true
	}
	if len(r.lastRules) == 0 {
		return Transition{}, false
	}
	year := i.AtOffset(civil.UTC).Date().Year()
	for y := year; y <= year+2; y++ {
		for _, t := range r.transitionsForYear(y) {
			if t.Instant().After(i) {
				return t, true
			}
		}
	}
	return Transition{}, false
}
