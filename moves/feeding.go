package moves

import (
	"caverna/actions"
	"caverna/game"
	"caverna/meta"
	"caverna/resource"
)

const FEEDING = "feeding"

// FeedingActions lists the harvest candidates of a player. There is always at least one.
func FeedingActions(g *game.Game, player string, status game.FeedingStatus) []actions.Actions {
	base := actions.New(FEEDING).WithArg("hall_slot", "").WithArg("room_slot", "")
	p, err := g.Player(player)
	if err != nil || status == game.NoFeeding {
		return []actions.Actions{base}
	}
	feed := feedItems(p, status)
	breed := breedItems(p)

	switch status {
	case game.FeedingOrBreeding:
		return []actions.Actions{base.With(feed...), base.With(breed...)}
	case game.Normal:
		return []actions.Actions{base.With(append(feed, breed...)...)}
	default:
		return []actions.Actions{base.With(feed...)}
	}
}

func feedItems(p *game.Player, status game.FeedingStatus) []actions.Action {
	perAdult, perChild := uint(meta.FOOD_PER_GNOME), uint(meta.FOOD_PER_CHILD)
	if status == game.FeedByOne {
		perAdult = 1
	}
	need := uint(p.Gnomes)*perAdult + uint(p.ChildGnomes)*perChild
	food := p.Resources.Get(resource.Food)
	if need == 0 {
		return nil
	}
	if food >= need {
		return []actions.Action{actions.SpendResources{Player: p.Name, Cost: resource.Amounts{"food": need}}}
	}
	var items []actions.Action
	if food > 0 {
		items = append(items, actions.SpendResources{Player: p.Name, Cost: resource.Amounts{"food": food}})
	}
	return append(items, actions.AddFines{Player: p.Name, Count: int(need - food)})
}

func breedItems(p *game.Player) []actions.Action {
	born := resource.Amounts{}
	for _, animal := range resource.TribalAnimals {
		if p.Resources.Get(animal) >= 2 && p.ClearSlotsFor(animal) > 0 {
			born[animal.Key()] = 1
		}
	}
	if len(born) == 0 {
		return nil
	}
	return []actions.Action{actions.UpdateResources{Player: p.Name, Delta: born}}
}
