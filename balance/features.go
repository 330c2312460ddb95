package balance

import (
	"errors"
	"fmt"

	"caverna/game"
	"caverna/resource"
	"caverna/rooms"
)

var ErrMissingFeature = errors.New("missing feature weight")

const (
	BIAS                   = "bias"
	TURN                   = "turn"
	FREE_GNOME_SLOTS_COUNT = "free_gnome_slots_count"
	FREE_SLOTS_FOR_ROOM    = "free_slots_for_room"
	FREE_SLOTS_FOR_FIELD   = "free_slots_for_field"
	FREE_SLOTS_FOR_CAVERNS = "free_slots_for_caverns"
	FREE_SLOTS_FOR_MINES   = "free_slots_for_mines"
	NEIGHBOURS_WITH_FIELDS = "neighbours_with_fields"
	GREEN_ROOMS_COUNT      = "green_rooms_count"
	YELLOW_ROOMS_COUNT     = "yellow_rooms_count"
	GINGER_ROOMS_COUNT     = "ginger_rooms_count"
	WARRIOR_GNOMES_COUNT   = "warrior_gnomes_count"
	PEACEFUL_GNOMES_COUNT  = "peaceful_gnomes_count"
	MAX_WARRIOR_LEVEL      = "max_warrior_level"
	FINES_COUNT            = "fines_count"
	FREE_ROOMS_COUNT       = "free_rooms_count"
	FREE_HALLS_COUNT       = "free_halls_count"
	FREE_MINE_HALLS_COUNT  = "free_mine_halls_count"
	FREE_FIELDS_COUNT      = "free_fields_count"
)

func ResourceFeature(r resource.Type) string   { return "resource_" + r.Key() }
func MaxSlotsFeature(r resource.Type) string   { return "max_slots_for_" + r.Key() }
func ClearSlotsFeature(r resource.Type) string { return "clear_slots_for_" + r.Key() }

// FeatureNames lists every feature a weight table must carry, in a stable order.
func FeatureNames() []string {
	names := []string{
		BIAS, TURN, FREE_GNOME_SLOTS_COUNT, FREE_SLOTS_FOR_ROOM, FREE_SLOTS_FOR_FIELD,
		FREE_SLOTS_FOR_CAVERNS, FREE_SLOTS_FOR_MINES, NEIGHBOURS_WITH_FIELDS,
		GREEN_ROOMS_COUNT, YELLOW_ROOMS_COUNT, GINGER_ROOMS_COUNT,
		WARRIOR_GNOMES_COUNT, PEACEFUL_GNOMES_COUNT, MAX_WARRIOR_LEVEL, FINES_COUNT,
		FREE_ROOMS_COUNT, FREE_HALLS_COUNT, FREE_MINE_HALLS_COUNT, FREE_FIELDS_COUNT,
	}
	for _, r := range resource.All {
		names = append(names, ResourceFeature(r), MaxSlotsFeature(r), ClearSlotsFeature(r))
	}
	return names
}

// features measures the board of one player.
func features(g *game.Game, player string) (map[string]float64, error) {
	p, err := g.Player(player)
	if err != nil {
		return nil, err
	}
	freeFields := 0
	for _, f := range p.Fields {
		if f.Kind == game.Field {
			freeFields++
		}
	}
	f := map[string]float64{
		BIAS:                   1,
		TURN:                   float64(g.Turn),
		FREE_GNOME_SLOTS_COUNT: float64(p.FreeGnomeSlots()),
		FREE_SLOTS_FOR_ROOM:    float64(p.FreeRoomSlots()),
		FREE_SLOTS_FOR_FIELD:   float64(p.FreeFieldSlots()),
		FREE_SLOTS_FOR_CAVERNS: float64(len(p.CavernSlots())),
		FREE_SLOTS_FOR_MINES:   float64(len(p.MineSlots())),
		NEIGHBOURS_WITH_FIELDS: float64(len(p.FieldNeighbourSlots())),
		GREEN_ROOMS_COUNT:      float64(p.TierCount(rooms.Green)),
		YELLOW_ROOMS_COUNT:     float64(p.TierCount(rooms.Yellow)),
		GINGER_ROOMS_COUNT:     float64(p.TierCount(rooms.Ginger)),
		WARRIOR_GNOMES_COUNT:   float64(p.WarriorCount()),
		PEACEFUL_GNOMES_COUNT:  float64(p.PeacefulGnomes()),
		MAX_WARRIOR_LEVEL:      float64(p.MaxWarriorLevel()),
		FINES_COUNT:            float64(p.Fines),
		FREE_ROOMS_COUNT:       float64(p.FreeCaverns(game.Room)),
		FREE_HALLS_COUNT:       float64(p.FreeCaverns(game.Hall)),
		FREE_MINE_HALLS_COUNT:  float64(p.FreeCaverns(game.MineHall)),
		FREE_FIELDS_COUNT:      float64(freeFields),
	}
	for _, r := range resource.All {
		f[ResourceFeature(r)] = float64(p.Resources.Get(r))
		f[MaxSlotsFeature(r)] = float64(p.MaxSlotsFor(r))
		f[ClearSlotsFeature(r)] = float64(p.ClearSlotsFor(r))
	}
	return f, nil
}

// Calculate is the weighted linear sum of the player's features.
func Calculate(w Weights, g *game.Game, player string) (float64, error) {
	f, err := features(g, player)
	if err != nil {
		return 0, err
	}
	return calculate(w, f)
}

func calculate(w Weights, f map[string]float64) (float64, error) {
	var total float64
	for _, name := range FeatureNames() {
		weight, ok := w[name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingFeature, name)
		}
		total += weight * f[name]
	}
	return total, nil
}
