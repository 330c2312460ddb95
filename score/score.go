package score

import (
	"caverna/game"
	"caverna/meta"
	"caverna/resource"
	"caverna/rooms"
)

// Final counts the end-of-game points of a player.
func Final(g *game.Game, player string) (int, error) {
	p, err := g.Player(player)
	if err != nil {
		return 0, err
	}
	points := 0
	for key, n := range p.Resources {
		r, err := resource.Parse(key)
		if err != nil {
			return 0, err
		}
		points += resourcePoints(r, n)
	}
	for _, placed := range p.Rooms {
		room, err := rooms.Resolve(placed.Room)
		if err != nil {
			return 0, err
		}
		points += room.Points
	}
	points += p.Gnomes + p.ChildGnomes
	for _, animal := range resource.TribalAnimals {
		if p.Resources.Get(animal) == 0 {
			points -= meta.MISSING_ANIMAL_PENALTY
		}
	}
	points -= meta.FINE_PENALTY * p.Fines
	return points, nil
}

func resourcePoints(r resource.Type, n uint) int {
	switch r {
	case resource.Dog, resource.Pumpkin, resource.Gold, resource.Sheep,
		resource.Hippo, resource.Donkey, resource.Cow, resource.Gem:
		return int(n)
	case resource.Wheat:
		return int((n + 1) / 2)
	}
	return 0
}
