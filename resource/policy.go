package resource

import "fmt"

// Policy decides what happens to the result of a request that was superseded
// by a newer one before it completed.
type Policy int

const (
	// SuppressStale cancels a superseded request and drops its result, so the
	// state always belongs to the latest key.
	SuppressStale Policy = iota
	// LastResolvedWins lets every request run to completion and applies
	// results in completion order. A slow early request can overwrite the
	// result of a later one.
	LastResolvedWins
)

var policyNames = map[Policy]string{
	SuppressStale:    "suppress-stale",
	LastResolvedWins: "last-resolved-wins",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses the name of a policy as printed by String.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown stale policy %q (want %s or %s)",
		s, SuppressStale, LastResolvedWins)
}
