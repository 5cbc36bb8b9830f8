// Package tz implements the time-zone rules engine: ZoneRules, the
// transition and recurring-rule data model, the resolver protocol, ZoneId,
// and ZonedDateTime.
package tz

import (
	"fmt"

	"github.com/civiltime/civiltime/civil"
)

// DateTimeNonexistentError reports that a strict resolver encountered a
// local date-time that falls in a gap (it never occurred under the zone's
// rules).
type DateTimeNonexistentError struct {
	Local civil.LocalDateTime
	Zone  string
}

func (e *DateTimeNonexistentError) Error() string {
	return fmt.Sprintf("%s does not exist in zone %s (gap)", e.Local, e.Zone)
}

// DateTimeAmbiguousError reports that a strict resolver encountered a local
// date-time that falls in an overlap (it occurred twice).
type DateTimeAmbiguousError struct {
	Local civil.LocalDateTime
	Zone  string
}

func (e *DateTimeAmbiguousError) Error() string {
	return fmt.Sprintf("%s is ambiguous in zone %s (overlap)", e.Local, e.Zone)
}

// OffsetInvalidForZoneError reports that an explicit offset was rejected by
// a zone's rules for a given local date-time.
type OffsetInvalidForZoneError struct {
	Offset civil.ZoneOffset
	Local  civil.LocalDateTime
	Zone   string
}

func (e *OffsetInvalidForZoneError) Error() string {
	return fmt.Sprintf("offset %s is not valid for %s in zone %s", e.Offset, e.Local, e.Zone)
}

// UnknownZoneError reports that a zone identifier has no entry in the
// registry.
type UnknownZoneError struct {
	ID string
}

func (e *UnknownZoneError) Error() string { return fmt.Sprintf("unknown time zone %q", e.ID) }

// ResolverBrokenError reports that a Resolver implementation returned an
// offset not present in valid_offsets(local) — a programmer error in a
// custom resolver, not a data problem.
type ResolverBrokenError struct {
	Local civil.LocalDateTime
	Zone  string
}

func (e *ResolverBrokenError) Error() string {
	return fmt.Sprintf("resolver returned an offset invalid for %s in zone %s", e.Local, e.Zone)
}
