package resource

import (
	"fmt"
	"sort"
	"strings"
)

// Amounts maps resource keys to counts.
type Amounts map[string]uint

// Of builds an Amounts from typed pairs.
func Of(pairs map[Type]uint) Amounts {
	a := make(Amounts, len(pairs))
	for t, n := range pairs {
		a[t.Key()] = n
	}
	return a
}

// Add accumulates delta, inserting missing keys at zero.
func (a Amounts) Add(delta Amounts) {
	for key, n := range delta {
		if _, ok := a[key]; !ok {
			a[key] = 0
		}
		a[key] += n
	}
}

// Covers reports whether a holds at least every amount in cost.
func (a Amounts) Covers(cost Amounts) bool {
	for key, n := range cost {
		if a[key] < n {
			return false
		}
	}
	return true
}

// Subtract removes cost. Callers check Covers first.
func (a Amounts) Subtract(cost Amounts) {
	for key, n := range cost {
		a[key] -= n
	}
}

func (a Amounts) Get(t Type) uint {
	return a[t.Key()]
}

func (a Amounts) Copy() Amounts {
	c := make(Amounts, len(a))
	for key, n := range a {
		c[key] = n
	}
	return c
}

// String prints the amounts sorted by key, e.g. "stone:2 wood:3".
func (a Amounts) String() string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprintf("%s:%d", key, a[key])
	}
	return strings.Join(parts, " ")
}
