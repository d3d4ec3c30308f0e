package main

import "fmt"

// Tier is a DataJoint table tier. It selects the base class of the
// generated declaration (dj.Manual, dj.Lookup, ...) and implies how the
// table is populated.
type Tier int

const (
	TierManual Tier = iota
	TierLookup
	TierImported
	TierComputed
	TierPart
)

var tierNames = [...]string{"Manual", "Lookup", "Imported", "Computed", "Part"}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// MarshalText serializes a tier as its DataJoint class name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t Tier) MarshalYAML() (any, error) {
	return t.String(), nil
}

// parseTier maps a tier name to its Tier. Names are case-sensitive and must
// match the DataJoint class names exactly.
func parseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if s == name {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tier %q (must be one of: Manual, Lookup, Imported, Computed, Part)", s)
}
