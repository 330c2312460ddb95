package rooms

import (
	"errors"
	"fmt"

	"caverna/resource"
)

var ErrUnknownRoom = errors.New("unknown room")

// Tier is the colour class of a furnishing tile.
type Tier int

const (
	Ginger Tier = iota // Dwellings
	Green              // Material and food furnishings
	Yellow             // Bonus point furnishings
)

func (t Tier) String() string {
	switch t {
	case Ginger:
		return "ginger"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Slots describes which resources a room can keep and how many of them.
type Slots struct {
	Types []resource.Type
	Size  uint
}

// Accepts reports whether r may be kept in these slots.
func (s Slots) Accepts(r resource.Type) bool {
	for _, t := range s.Types {
		if t == r {
			return true
		}
	}
	return false
}

// Room is an immutable catalog entry.
type Room struct {
	Name       string
	Tier       Tier
	GnomeSlots uint
	Unique     bool
	Slots      Slots
	Price      resource.Amounts
	Points     int
}

// Resolve looks up a room by name.
func Resolve(name string) (Room, error) {
	i, ok := catalogIndex[name]
	if !ok {
		return Room{}, fmt.Errorf("%w: %q", ErrUnknownRoom, name)
	}
	return catalog[i], nil
}

// All returns every room in catalog order.
func All() []Room {
	out := make([]Room, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns every room name in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, r := range catalog {
		names[i] = r.Name
	}
	return names
}

var catalogIndex = func() map[string]int {
	index := make(map[string]int, len(catalog))
	for i, r := range catalog {
		if _, dup := index[r.Name]; dup {
			panic("duplicate room " + r.Name)
		}
		index[r.Name] = i
	}
	return index
}()
