// Package registry implements the Spec Registry: the static, read-only
// tables mapping a (TLV type, parent context) pair to the metadata the
// Enricher and Value Converter need to make sense of it.
//
// Two disjoint namespaces exist: the top-level TLV table (types 1-255 at
// the root of a config file) and a family of per-parent sub-TLV tables.
// The same sub-TLV number means different things under different parents
// (sub-TLV 6 under parent 24 is "QoS Parameter Set Type"; top-level TLV 6
// is "CM Message Integrity Check") and [LookupSub] never falls back to the
// top-level table to resolve that ambiguity.
package registry

import (
	"sync"

	"github.com/tlvkit/docsis"
)

// versionOrder gives DOCSIS versions a total order for [LookupTopLevelAt].
// VersionMTA is a parallel track: it only matches itself or VersionAny, it
// is never "newer" or "older" than a DOCSIS version.
var versionOrder = map[docsis.Version]int{
	docsis.Version1_0: 0,
	docsis.Version1_1: 1,
	docsis.Version2_0: 2,
	docsis.Version3_0: 3,
	docsis.Version3_1: 4,
}

var (
	mu       sync.RWMutex
	topLevel = map[byte]docsis.Spec{}
	subTLVs  = map[byte]map[byte]docsis.Spec{}
)

// LookupTopLevel resolves a root-level TLV type to its [docsis.Spec].
func LookupTopLevel(t byte) (docsis.Spec, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := topLevel[t]
	return s, ok
}

// LookupSub resolves a sub-TLV type within a specific parent's namespace.
// There is no fallback to the top-level table: an absent entry must be
// treated by the caller as "unknown", never silently reinterpreted as the
// top-level meaning of the same number.
func LookupSub(parent, t byte) (docsis.Spec, bool) {
	mu.RLock()
	defer mu.RUnlock()
	ns, ok := subTLVs[parent]
	if !ok {
		return docsis.Spec{}, false
	}
	s, ok := ns[t]
	return s, ok
}

// LookupTopLevelAt resolves t like [LookupTopLevel] but additionally
// reports not-found if the spec's IntroducedVersion postdates version.
// VersionAny disables the version gate.
func LookupTopLevelAt(t byte, version docsis.Version) (docsis.Spec, bool) {
	s, ok := LookupTopLevel(t)
	if !ok {
		return docsis.Spec{}, false
	}
	if !versionAllows(s.IntroducedVersion, version) {
		return docsis.Spec{}, false
	}
	return s, true
}

func versionAllows(introduced, requested docsis.Version) bool {
	if requested == docsis.VersionAny {
		return true
	}
	if introduced == docsis.VersionMTA || requested == docsis.VersionMTA {
		return introduced == requested
	}
	introducedRank, ok1 := versionOrder[introduced]
	requestedRank, ok2 := versionOrder[requested]
	if !ok1 || !ok2 {
		return true
	}
	return introducedRank <= requestedRank
}

// RegisterVendorTLV adds or replaces a top-level spec for a vendor-defined
// TLV number. It is intended for the reserved vendor range (200-254), but
// is not restricted to it, since a calling application may also want to
// document a private extension outside that range. Safe for concurrent
// use with lookups.
func RegisterVendorTLV(t byte, spec docsis.Spec) {
	mu.Lock()
	defer mu.Unlock()
	topLevel[t] = spec
}

// registerTopLevel is used by the table-building init functions in this
// package; it is not exported because the built-in tables are meant to be
// complete at package-init time, with RegisterVendorTLV as the only
// supported extension point afterward.
func registerTopLevel(t byte, spec docsis.Spec) {
	topLevel[t] = spec
}

// registerSubTable installs an entire per-parent sub-TLV namespace.
func registerSubTable(parent byte, ns map[byte]docsis.Spec) {
	subTLVs[parent] = ns
}
