package balance

import (
	"fmt"
	"math"

	"caverna/actions"
	"caverna/game"
)

// Weight scores a candidate bundle for player against the current snapshot. It never
// mutates g.
func Weight(g *game.Game, player string, cfg Config, bundle actions.Actions) (int, error) {
	f, err := features(g, player)
	if err != nil {
		return 0, err
	}
	score := func(tables map[string]Weights, kind, name string) (float64, error) {
		w, ok := tables[name]
		if !ok {
			return 0, fmt.Errorf("%w: no %s table for %s", ErrMissingFeature, kind, name)
		}
		return calculate(w, f)
	}

	var total float64
	for _, item := range bundle.Items {
		switch a := item.(type) {
		case actions.UpdateResources:
			for _, key := range sortedKeys(a.Delta) {
				v, err := score(cfg.Resources, "resource", key)
				if err != nil {
					return 0, err
				}
				total += float64(a.Delta[key]) * v
			}
		case actions.SpendResources:
			for _, key := range sortedKeys(a.Cost) {
				v, err := score(cfg.Resources, "resource", key)
				if err != nil {
					return 0, err
				}
				total -= float64(a.Cost[key]) * v
			}
		case actions.BuildRooms:
			for _, r := range a.Rooms {
				v, err := score(cfg.Rooms, "room", r.Room)
				if err != nil {
					return 0, err
				}
				total += v
			}
		default:
			if item.Name() == "" {
				continue
			}
			v, err := score(cfg.Actions, "action", item.Name())
			if err != nil {
				return 0, err
			}
			switch a := item.(type) {
			case actions.AddFines:
				v *= float64(a.Count)
			case actions.ArmWarrior:
				v *= float64(a.Level)
			}
			total += v
		}
	}
	return int(math.Round(total)), nil
}
