package tz

import "github.com/civiltime/civiltime/civil"

// ZonedDateTime is a LocalDateTime, ZoneOffset, and ID together, maintaining
// the invariant that the offset is one of the offsets valid_offsets(local)
// returns under the zone's rules.
type ZonedDateTime struct {
	local  civil.LocalDateTime
	offset civil.ZoneOffset
	zone   ID
}

// Local returns the wall-clock local date-time component.
func (z ZonedDateTime) Local() civil.LocalDateTime { return z.local }

// Offset returns the UTC offset in force.
func (z ZonedDateTime) Offset() civil.ZoneOffset { return z.offset }

// Zone returns the zone identifier.
func (z ZonedDateTime) Zone() ID { return z.zone }

// ToInstant returns the instant z denotes.
func (z ZonedDateTime) ToInstant() civil.Instant {
	return civil.NewOffsetDateTime(z.local, z.offset).ToInstant()
}

// ToOffsetDateTime returns the (local, offset) pair, discarding the zone.
func (z ZonedDateTime) ToOffsetDateTime() civil.OffsetDateTime {
	return civil.NewOffsetDateTime(z.local, z.offset)
}

func verifyAndBuild(odt civil.OffsetDateTime, rules *Rules, zone ID) (ZonedDateTime, error) {
	local := odt.LocalDateTime()
	offset := odt.Offset()
	valid := false
	for _, o := range rules.ValidOffsets(local) {
		if o.Equal(offset) {
			valid = true
			break
		}
	}
	if !valid {
		return ZonedDateTime{}, &ResolverBrokenError{Local: local, Zone: zone.String()}
	}
	return ZonedDateTime{local: local, offset: offset, zone: zone}, nil
}

// Of builds a ZonedDateTime for local in zone. If local has exactly one
// valid offset it is used directly; otherwise resolver decides.
func Of(local civil.LocalDateTime, zone ID, resolver Resolver) (ZonedDateTime, error) {
	rules, err := zone.Rules()
	if err != nil {
		return ZonedDateTime{}, err
	}
	valid := rules.ValidOffsets(local)
	if len(valid) == 1 {
		return ZonedDateTime{local: local, offset: valid[0], zone: zone}, nil
	}
	transition, ok := rules.TransitionAt(local)
	if !ok {
		// len(valid) == 0 with no transition found cannot happen for a
		// well-formed Rules; treat defensively as a broken resolver
		// input rather than panicking.
		return ZonedDateTime{}, &ResolverBrokenError{Local: local, Zone: zone.String()}
	}
	odt, err := resolver.Resolve(local, transition, rules, zone.String())
	if err != nil {
		return ZonedDateTime{}, err
	}
	return verifyAndBuild(odt, rules, zone)
}

// OfInstant builds the ZonedDateTime that zone sees at instant.
func OfInstant(instant civil.Instant, zone ID) (ZonedDateTime, error) {
	rules, err := zone.Rules()
	if err != nil {
		return ZonedDateTime{}, err
	}
	offset := rules.OffsetAtInstant(instant)
	local := instant.AtOffset(offset).LocalDateTime()
	return ZonedDateTime{local: local, offset: offset, zone: zone}, nil
}

// OfOffsetDateTime builds a ZonedDateTime from an explicit (local, offset)
// pair, failing if the offset is not valid for local under zone's rules
//.
func OfOffsetDateTime(odt civil.OffsetDateTime, zone ID) (ZonedDateTime, error) {
	rules, err := zone.Rules()
	if err != nil {
		return ZonedDateTime{}, err
	}
	local := odt.LocalDateTime()
	valid := rules.ValidOffsets(local)
	if len(valid) == 0 {
		return ZonedDateTime{}, &DateTimeNonexistentError{Local: local, Zone: zone.String()}
	}
	for _, o := range valid {
		if o.Equal(odt.Offset()) {
			return ZonedDateTime{local: local, offset: odt.Offset(), zone: zone}, nil
		}
	}
	return ZonedDateTime{}, &OffsetInvalidForZoneError{Offset: odt.Offset(), Local: local, Zone: zone.String()}
}

// WithZoneSameLocal returns z re-zoned to newZone, keeping the local
// date-time fields and resolving with RetainOffset: the current offset is
// kept if still valid, otherwise PostGapPreOverlap decides.
func (z ZonedDateTime) WithZoneSameLocal(newZone ID) (ZonedDateTime, error) {
	return Of(z.local, newZone, RetainOffsetResolver(z.offset))
}

// WithZoneSameInstant returns z re-zoned to newZone, keeping the instant it
// denotes (round-tripping through the instant, so the local fields change).
func (z ZonedDateTime) WithZoneSameInstant(newZone ID) (ZonedDateTime, error) {
	return OfInstant(z.ToInstant(), newZone)
}

// WithEarlierOffsetAtOverlap returns z with the earlier (offset_before) of
// the two offsets at an overlap, unchanged if z.local is not in an
// overlap.
func (z ZonedDateTime) WithEarlierOffsetAtOverlap() (ZonedDateTime, error) {
	rules, err := z.zone.Rules()
	if err != nil {
		return ZonedDateTime{}, err
	}
	t, ok := rules.TransitionAt(z.local)
	if !ok || !t.IsOverlap() {
		return z, nil
	}
	return ZonedDateTime{local: z.local, offset: t.OffsetBefore, zone: z.zone}, nil
}

// WithLaterOffsetAtOverlap returns z with the later (offset_after) of the
// two offsets at an overlap, unchanged if z.local is not in an overlap.
func (z ZonedDateTime) WithLaterOffsetAtOverlap() (ZonedDateTime, error) {
	rules, err := z.zone.Rules()
	if err != nil {
		return ZonedDateTime{}, err
	}
	t, ok := rules.TransitionAt(z.local)
	if !ok || !t.IsOverlap() {
		return z, nil
	}
	return ZonedDateTime{local: z.local, offset: t.OffsetAfter, zone: z.zone}, nil
}

// Plus applies amount of unit as wall-clock (date-based) arithmetic: the
// local date-time is adjusted, then re-resolved with RetainOffset so a DST
// shift is preserved where possible. This is distinct from PlusDuration's
// absolute (elapsed-time) arithmetic.
func (z ZonedDateTime) Plus(amount int64, unit civil.Unit) (ZonedDateTime, error) {
	newLocal, err := z.local.Plus(amount, unit)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return Of(newLocal, z.zone, RetainOffsetResolver(z.offset))
}

// Minus applies -amount of unit as wall-clock arithmetic.
func (z ZonedDateTime) Minus(amount int64, unit civil.Unit) (ZonedDateTime, error) {
	return z.Plus(-amount, unit)
}

// PlusDuration adds d to the instant z denotes, then re-derives the local
// date-time at the (possibly new) offset in force — absolute arithmetic
// that never invokes a resolver.
func (z ZonedDateTime) PlusDuration(d civil.Duration) (ZonedDateTime, error) {
	instant, err := z.ToInstant().Plus(d)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return OfInstant(instant, z.zone)
}

// MinusDuration subtracts d from the instant z denotes.
func (z ZonedDateTime) MinusDuration(d civil.Duration) (ZonedDateTime, error) {
	return z.PlusDuration(d.Negated())
}

// With returns a copy of z with field f set to value, re-resolved with
// RetainOffset (field mutation is wall-clock arithmetic, like Plus).
func (z ZonedDateTime) With(f civil.Field, value int64) (ZonedDateTime, error) {
	newLocal, err := z.local.With(f, value)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return Of(newLocal, z.zone, RetainOffsetResolver(z.offset))
}

func (z ZonedDateTime) String() string {
	t := z.local.Time()
	ts := t.String()
	if t.Second() == 0 && t.Nano() == 0 {
		ts += ":00"
	}
	return z.local.Date().String() + "T" + ts + z.offset.String() + "[" + z.zone.String() + "]"
}
