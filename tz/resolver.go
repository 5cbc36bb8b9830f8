package tz

import "github.com/civiltime/civiltime/civil"

// Resolver decides how to turn a local date-time with zero or two valid
// offsets into a single OffsetDateTime. A resolver is a per-operation
// policy, not a property of ZonedDateTime itself.
//
// Resolve is only called when valid_offsets(local) has a length other than
// one; rules and zoneID are provided so the resolver can inspect the
// transition. Implementations must return an offset present in
// rules.ValidOffsets(local) in the unambiguous case they produce — callers
// that detect a violation surface a ResolverBrokenError.
type Resolver interface {
	Resolve(local civil.LocalDateTime, transition Transition, rules *Rules, zoneID string) (civil.OffsetDateTime, error)
}

type resolverFunc struct {
	name string
	fn   func(local civil.LocalDateTime, transition Transition, rules *Rules, zoneID string) (civil.OffsetDateTime, error)
}

func (r resolverFunc) Resolve(local civil.LocalDateTime, transition Transition, rules *Rules, zoneID string) (civil.OffsetDateTime, error) {
	return r.fn(local, transition, rules, zoneID)
}

func (r resolverFunc) String() string { return r.name }

// StrictResolver fails on both gaps and overlaps.
var StrictResolver Resolver = resolverFunc{
	name: "Strict",
	fn: func(local civil.LocalDateTime, transition Transition, rules *Rules, zoneID string) (civil.OffsetDateTime, error) {
		if transition.IsGap() {
			return civil.OffsetDateTime{}, &DateTimeNonexistentError{Local: local, Zone: zoneID}
		}
		return civil.OffsetDateTime{}, &DateTimeAmbiguousError{Local: local, Zone: zoneID}
	},
}

// PreGapPostOverlapResolver resolves a gap to the last instant before the
// gap (at offset_before) and an overlap to offset_after.
var PreGapPostOverlapResolver Resolver = resolverFunc{
	name: "PreGapPostOverlap",
	fn: func(local civil.LocalDateTime, transition Transition, rules *Rules, zoneID string) (civil.OffsetDateTime, error) {
		if transition.IsGap() {
			lastBeforeGap, err := transition.TransitionLocal.Plus(-1, civil.Nanos)
			if err != nil {
				return civil.OffsetDateTime{}, err
			}
			return civil.NewOffsetDateTime(lastBeforeGap, transition.OffsetBefore), nil
		}
		return civil.NewOffsetDateTime(local, transition.OffsetAfter), nil
	},
}

// PostGapPreOverlapResolver resolves a gap by shifting local forward by the
// gap's duration (and using offset_after), and an overlap to offset_before.
var PostGapPreOverlapResolver Resolver = resolverFunc{
	name: "PostGapPreOverlap",
	fn: func(local civil.LocalDateTime, transition Transition, rules *Rules, zoneID string) (civil.OffsetDateTime, error) {
		if transition.IsGap() {
			d := transition.Duration()
			shifted, err := local.Plus(d.Seconds(), civil.Seconds)
			if err != nil {
				return civil.OffsetDateTime{}, err
			}
			return civil.NewOffsetDateTime(shifted, transition.OffsetAfter), nil
		}
		return civil.NewOffsetDateTime(local, transition.OffsetBefore), nil
	},
}

// PushForwardResolver behaves like PostGapPreOverlapResolver for gaps; for
// overlaps it resolves to offset_before.
var PushForwardResolver Resolver = resolverFunc{
	name: "PushForward",
	fn: func(local civil.LocalDateTime, transition Transition, rules *Rules, zoneID string) (civil.OffsetDateTime, error) {
		return PostGapPreOverlapResolver.Resolve(local, transition, rules, zoneID)
	},
}

// RetainOffsetResolver returns a Resolver that, given the offset a
// ZonedDateTime held before being adjusted, keeps that offset if it is
// still valid, and otherwise falls back to PostGapPreOverlapResolver. This
// is the policy used by WithZoneSameLocal and by field/date-based
// arithmetic on ZonedDateTime.
func RetainOffsetResolver(priorOffset civil.ZoneOffset) Resolver {
	return resolverFunc{
		name: "RetainOffset",
		fn: func(local civil.LocalDateTime, transition Transition, rules *Rules, zoneID string) (civil.OffsetDateTime, error) {
			if !transition.IsGap() {
				for _, o := range rules.ValidOffsets(local) {
					if o.Equal(priorOffset) {
						return civil.NewOffsetDateTime(local, priorOffset), nil
					}
				}
			}
			return PostGapPreOverlapResolver.Resolve(local, transition, rules, zoneID)
		},
	}
}
