package moves

import (
	"strconv"

	"caverna/actions"
	"caverna/game"
	"caverna/resource"
	"caverna/rooms"
)

func init() {
	register(
		driftMining{},
		accumulating{name: LOGGING, refill: func(g *game.Game, cfg Config) resource.Amounts {
			if g.Moves.Accumulated(LOGGING).Get(resource.Wood) == 0 {
				return resource.Amounts{"wood": cfg.Logging.WoodIncr}
			}
			return resource.Amounts{"wood": cfg.Logging.SecondaryWoodIncr}
		}},
		accumulating{name: WOOD_GATHERING, refill: func(_ *game.Game, cfg Config) resource.Amounts {
			return resource.Amounts{"wood": cfg.WoodGathering.WoodIncr}
		}},
		excavation{},
		supplies{},
		accumulating{name: CLEARING, refill: func(_ *game.Game, cfg Config) resource.Amounts {
			return resource.Amounts{"wood": cfg.Clearing.WoodIncr}
		}},
		startingPlayer{},
		accumulating{name: RUBY_MINING, refill: func(g *game.Game, cfg Config) resource.Amounts {
			if g.Turn <= cfg.RubyMining.FromTurn {
				return nil
			}
			return resource.Amounts{"gem": cfg.RubyMining.GemIncr}
		}},
		housework{},
		slashAndBurn{},
		accumulating{name: SHEEP_FARMING, refill: func(_ *game.Game, cfg Config) resource.Amounts {
			return resource.Amounts{"sheep": cfg.SheepFarming.SheepIncr}
		}},
		blacksmithing{},
		stub(ORE_MINE_CONSTRUCTION),
		familyGrowth(WISH_FOR_CHILDREN),
		accumulating{name: DONKEY_FARMING, refill: func(_ *game.Game, cfg Config) resource.Amounts {
			return resource.Amounts{"donkey": cfg.DonkeyFarming.DonkeyIncr}
		}},
		stub(RUBY_MINE_CONSTRUCTION),
		stub(ORE_DELIVERY),
		familyGrowth(FAMILY_LIFE),
		stub(ADVENTURE),
		stub(RUBY_DELIVERY),
		stub(ORE_TRADING),
	)
}

// accumulating moves gather goods every round until a player claims them.
type accumulating struct {
	name   string
	refill func(g *game.Game, cfg Config) resource.Amounts
}

func (m accumulating) Name() string { return m.name }

func (m accumulating) Actions(g *game.Game, _ Config) []actions.Actions {
	return []actions.Actions{m.take(g)}
}

func (m accumulating) take(g *game.Game) actions.Actions {
	return actions.New(m.name,
		actions.UpdateResources{Player: g.Next, Delta: g.Moves.Accumulated(m.name).Copy()},
		actions.CollectMove{Move: m.name},
	)
}

func (m accumulating) OnNextTurn(g *game.Game, cfg Config) {
	if delta := m.refill(g, cfg); len(delta) > 0 {
		g.Moves.Add(m.name, delta)
	}
}

// driftMining pays a fixed amount of stone.
type driftMining struct{}

func (driftMining) Name() string { return DRIFT_MINING }

func (driftMining) Actions(g *game.Game, cfg Config) []actions.Actions {
	return []actions.Actions{actions.New(DRIFT_MINING,
		actions.UpdateResources{Player: g.Next, Delta: resource.Amounts{"stone": cfg.DriftMining.StoneIncr}},
	)}
}

func (driftMining) OnNextTurn(*game.Game, Config) {}

// excavation accumulates stone and may dig a new cavern.
type excavation struct{}

func (excavation) Name() string { return EXCAVATION }

func (excavation) base() accumulating {
	return accumulating{name: EXCAVATION, refill: func(_ *game.Game, cfg Config) resource.Amounts {
		return resource.Amounts{"stone": cfg.Excavation.StoneIncr}
	}}
}

func (e excavation) Actions(g *game.Game, cfg Config) []actions.Actions {
	stone := e.base().take(g)
	candidates := []actions.Actions{stone}
	p, err := g.Player(g.Next)
	if err != nil {
		return candidates
	}
	if slots := p.CavernSlots(); len(slots) > 0 {
		dig := stone.With(actions.BuildCaverns{
			Player:  p.Name,
			Caverns: []game.PlacedCavern{{Position: slots[0], Kind: game.Room}},
		}).WithArg("cavern_slot", strconv.Itoa(slots[0]))
		candidates = append(candidates, dig)
	}
	return candidates
}

func (e excavation) OnNextTurn(g *game.Game, cfg Config) {
	e.base().OnNextTurn(g, cfg)
}

type supplies struct{}

func (supplies) Name() string { return SUPPLIES }

func (supplies) Actions(g *game.Game, cfg Config) []actions.Actions {
	s := cfg.Supplies
	return []actions.Actions{actions.New(SUPPLIES,
		actions.UpdateResources{Player: g.Next, Delta: resource.Amounts{
			"stone": s.Stone, "wood": s.Wood, "coal": s.Coal, "food": s.Food, "gold": s.Gold,
		}},
	)}
}

func (supplies) OnNextTurn(*game.Game, Config) {}

// startingPlayer pays flat gems and coal, the food piled up on it, and the first seat.
type startingPlayer struct{}

func (startingPlayer) Name() string { return STARTING_PLAYER }

func (startingPlayer) Actions(g *game.Game, cfg Config) []actions.Actions {
	goods := resource.Amounts{"gem": cfg.StartingPlayer.Gem, "coal": cfg.StartingPlayer.Coal}
	goods.Add(g.Moves.Accumulated(STARTING_PLAYER))
	return []actions.Actions{actions.New(STARTING_PLAYER,
		actions.UpdateResources{Player: g.Next, Delta: goods},
		actions.CollectMove{Move: STARTING_PLAYER},
		actions.SetFirstPlayer{Player: g.Next},
	)}
}

func (startingPlayer) OnNextTurn(g *game.Game, cfg Config) {
	g.Moves.Add(STARTING_PLAYER, resource.Amounts{"food": cfg.StartingPlayer.FoodIncr})
}

// housework brings dogs and lets the player buy one furnishing.
type housework struct{}

func (housework) Name() string { return HOUSEWORK }

func (housework) Actions(g *game.Game, cfg Config) []actions.Actions {
	dogs := actions.New(HOUSEWORK,
		actions.UpdateResources{Player: g.Next, Delta: resource.Amounts{"dog": cfg.Housework.Dogs}},
	)
	candidates := []actions.Actions{dogs}
	p, err := g.Player(g.Next)
	if err != nil {
		return candidates
	}
	slots := p.FreeFurnishingSlots()
	if len(slots) == 0 {
		return candidates
	}
	for _, room := range rooms.All() {
		if room.Unique && p.HasRoom(room.Name) {
			continue
		}
		if !p.Resources.Covers(room.Price) {
			continue
		}
		furnish := dogs.With(
			actions.SpendResources{Player: p.Name, Cost: room.Price},
			actions.BuildRooms{Player: p.Name, Rooms: []game.PlacedRoom{{Position: slots[0], Room: room.Name}}},
		).WithArg("room_slot", strconv.Itoa(slots[0]))
		candidates = append(candidates, furnish)
	}
	return candidates
}

func (housework) OnNextTurn(*game.Game, Config) {}

// slashAndBurn turns forest into a field.
type slashAndBurn struct{}

func (slashAndBurn) Name() string { return SLASH_AND_BURN }

func (slashAndBurn) Actions(g *game.Game, _ Config) []actions.Actions {
	p, err := g.Player(g.Next)
	if err != nil {
		return []actions.Actions{actions.New(SLASH_AND_BURN)}
	}
	slots := p.FieldNeighbourSlots()
	if len(slots) == 0 {
		return []actions.Actions{actions.New(SLASH_AND_BURN)}
	}
	return []actions.Actions{actions.New(SLASH_AND_BURN,
		actions.BuildFields{Player: p.Name, Fields: []game.PlacedField{{Position: slots[0], Kind: game.Field}}},
	)}
}

func (slashAndBurn) OnNextTurn(*game.Game, Config) {}

// blacksmithing forges a weapon from coal for an unarmed gnome.
type blacksmithing struct{}

func (blacksmithing) Name() string { return BLACKSMITHING }

func (blacksmithing) Actions(g *game.Game, cfg Config) []actions.Actions {
	candidates := []actions.Actions{actions.New(BLACKSMITHING)}
	p, err := g.Player(g.Next)
	if err != nil || p.PeacefulGnomes() == 0 {
		return candidates
	}
	level := min(int(p.Resources.Get(resource.Coal)), cfg.Blacksmithing.MaxLevel)
	if level <= 0 {
		return candidates
	}
	return append(candidates, actions.New(BLACKSMITHING,
		actions.SpendResources{Player: p.Name, Cost: resource.Amounts{"coal": uint(level)}},
		actions.ArmWarrior{Player: p.Name, Level: level},
	))
}

func (blacksmithing) OnNextTurn(*game.Game, Config) {}

// familyGrowth moves add a child when a dwelling has room for it.
type familyGrowth string

func (m familyGrowth) Name() string { return string(m) }

func (m familyGrowth) Actions(g *game.Game, _ Config) []actions.Actions {
	p, err := g.Player(g.Next)
	if err != nil || p.FreeGnomeSlots() == 0 {
		return []actions.Actions{actions.New(string(m))}
	}
	return []actions.Actions{actions.New(string(m), actions.SpawnGnome{Player: p.Name})}
}

func (familyGrowth) OnNextTurn(*game.Game, Config) {}

// stub moves can be claimed but do nothing yet.
type stub string

func (m stub) Name() string { return string(m) }

func (m stub) Actions(*game.Game, Config) []actions.Actions {
	return []actions.Actions{actions.New(string(m))}
}

func (stub) OnNextTurn(*game.Game, Config) {}
