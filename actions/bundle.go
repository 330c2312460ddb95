package actions

import (
	"fmt"

	"caverna/game"
)

// Actions is one candidate outcome of a move: the actions that apply together.
type Actions struct {
	Move  string
	Args  map[string]string
	Items []Action
}

// New creates a bundle for move.
func New(move string, items ...Action) Actions {
	return Actions{Move: move, Items: items}
}

// With returns a copy of the bundle with items appended.
func (a Actions) With(items ...Action) Actions {
	c := a
	c.Items = append(append([]Action(nil), a.Items...), items...)
	return c
}

// WithArg returns a copy of the bundle carrying an extra argument.
func (a Actions) WithArg(key, value string) Actions {
	c := a
	c.Args = make(map[string]string, len(a.Args)+1)
	for k, v := range a.Args {
		c.Args[k] = v
	}
	c.Args[key] = value
	return c
}

// Apply runs every item in order. Either all of them take effect or, on the first error,
// none of them do.
func (a Actions) Apply(g *game.Game) error {
	scratch := g.Copy()
	for i, item := range a.Items {
		if err := item.apply(scratch); err != nil {
			return fmt.Errorf("%s: action %d (%s): %w", a.Move, i, item.Describe(), err)
		}
	}
	*g = *scratch
	return nil
}

func (a Actions) Describe() []string {
	out := make([]string, len(a.Items))
	for i, item := range a.Items {
		out[i] = item.Describe()
	}
	return out
}

func (a Actions) IsEmpty() bool {
	return len(a.Items) == 0
}
