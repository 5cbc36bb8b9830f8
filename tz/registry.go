package tz

import "sync/atomic"

// registry is a process-wide, read-mostly map of zone identifier to Rules.
// A full reload swaps the map behind a single atomic pointer:
// existing Rules values already handed out to callers remain valid, since
// Rules is immutable once constructed.
type registry struct {
	zones atomic.Pointer[map[string]*Rules]
}

func newRegistry() *registry {
	r := &registry{}
	empty := map[string]*Rules{}
	r.zones.Store(&empty)
	return r
}

func (r *registry) lookup(id string) (*Rules, bool) {
	zones := *r.zones.Load()
	rules, ok := zones[id]
	return rules, ok
}

// Load atomically replaces the registry's contents with zones.
func (r *registry) Load(zones map[string]*Rules) {
	snapshot := make(map[string]*Rules, len(zones))
	for k, v := range zones {
		snapshot[k] = v
	}
	r.zones.Store(&snapshot)
}

// IDs returns the zone identifiers currently loaded.
func (r *registry) IDs() []string {
	zones := *r.zones.Load()
	ids := make([]string, 0, len(zones))
	for id := range zones {
		ids = append(ids, id)
	}
	return ids
}

// defaultRegistry backs ParseZoneID and ID.Rules. It is empty until
// LoadRegistry fills it, for example with the zones zonefile.Decode returns,
// or with a scoped set of zones in tests.
var defaultRegistry = newRegistry()

// LoadRegistry replaces the process-wide zone registry's contents. Intended
// to be called once at start-up with the zones decoded from a zone-rules
// file, or by tests that need a scoped set of zones.
func LoadRegistry(zones map[string]*Rules) { defaultRegistry.Load(zones) }

// RegisteredZoneIDs returns the zone identifiers currently loaded in the
// process-wide registry.
func RegisteredZoneIDs() []string { return defaultRegistry.IDs() }
