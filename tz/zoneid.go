package tz

import "github.com/civiltime/civiltime/civil"

// ID names a time zone: either a fixed ZoneOffset, or a textual region
// identifier (e.g. "Europe/Paris") resolved through the process registry.
// Two region IDs with different text but the same underlying Rules compare
// unequal as IDs: aliasing does not imply identity.
type ID struct {
	text   string
	offset civil.ZoneOffset
	fixed  bool
}

// OfOffset wraps offset as a fixed-offset ID, whose text is the offset's
// canonical form.
func OfOffset(offset civil.ZoneOffset) ID {
	return ID{text: offset.ID(), offset: offset, fixed: true}
}

// ParseZoneID validates text against the registry (after alias resolution)
// and returns the corresponding ID, or UnknownZoneError if it does not
// resolve and is not a valid offset string.
func ParseZoneID(text string) (ID, error) {
	if off, err := civil.ParseZoneOffset(text); err == nil {
		return OfOffset(off), nil
	}
	resolved := DefaultAliasTable.Resolve(text)
	if off, err := civil.ParseZoneOffset(resolved); err == nil {
		return ID{text: text, offset: off, fixed: true}, nil
	}
	if _, ok := defaultRegistry.lookup(resolved); !ok {
		return ID{}, &UnknownZoneError{ID: text}
	}
	return ID{text: text}, nil
}

// UnsafeZoneID returns text as a region ID without validating it against
// the registry, for round-trip parsing of identifiers that may reference a
// zone the current process has not loaded.
func UnsafeZoneID(text string) ID {
	if off, err := civil.ParseZoneOffset(text); err == nil {
		return OfOffset(off)
	}
	return ID{text: text}
}

// String returns the identifier's canonical text.
func (id ID) String() string { return id.text }

// IsFixedOffset reports whether id names a fixed offset rather than a
// region.
func (id ID) IsFixedOffset() bool { return id.fixed }

// Equal reports whether id and other have identical text (not whether
// their rules are the same — see the ID type's doc on aliasing).
func (id ID) Equal(other ID) bool { return id.text == other.text }

// Rules resolves id to its Rules via the registry (or, for a fixed offset,
// builds a FixedRules directly without touching the registry).
func (id ID) Rules() (*Rules, error) {
	if id.fixed {
		return FixedRules(id.offset), nil
	}
	resolved := DefaultAliasTable.Resolve(id.text)
	if off, err := civil.ParseZoneOffset(resolved); err == nil {
		return FixedRules(off), nil
	}
	rules, ok := defaultRegistry.lookup(resolved)
	if !ok {
		return nil, &UnknownZoneError{ID: id.text}
	}
	return rules, nil
}
