package resource

import (
	"errors"
	"fmt"
)

var ErrUnknownResource = errors.New("unknown resource")

// Type represents a kind of good a player can hold.
type Type int

const (
	Gem Type = iota
	Food
	Gold
	Stone
	Wood
	Coal
	Sheep
	Hippo
	Dog
	Donkey
	Cow
	Wheat
	Pumpkin
)

var keys = []string{
	"gem", "food", "gold", "stone", "wood", "coal", "sheep",
	"hippo", "dog", "donkey", "cow", "wheat", "pumpkin",
}

// All lists every resource in declaration order.
var All = []Type{Gem, Food, Gold, Stone, Wood, Coal, Sheep, Hippo, Dog, Donkey, Cow, Wheat, Pumpkin}

// TribalAnimals are the farm animals that need room slots and are scored as a set.
var TribalAnimals = []Type{Sheep, Hippo, Donkey, Cow}

// Key returns the lowercase key used in resource maps.
func (t Type) Key() string {
	if t < 0 || int(t) >= len(keys) {
		return fmt.Sprintf("resource(%d)", int(t))
	}
	return keys[t]
}

func (t Type) String() string {
	return t.Key()
}

func (t Type) IsTribalAnimal() bool {
	for _, a := range TribalAnimals {
		if a == t {
			return true
		}
	}
	return false
}

// Parse resolves a resource key.
func Parse(key string) (Type, error) {
	for i, k := range keys {
		if k == key {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResource, key)
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.Key()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
