package actions

import (
	"fmt"

	"caverna/game"
	"caverna/resource"
	"caverna/utils"
)

// Names of the player actions weighed by the evaluator. Bookkeeping actions have no name.
const (
	UPDATE_RESOURCES = "update_resources"
	SPEND_RESOURCES  = "spend_resources"
	BUILD_ROOMS      = "build_rooms"
	BUILD_FIELDS     = "build_fields"
	BUILD_CAVERNS    = "build_caverns"
	SPAWN_GNOME      = "spawn_gnome"
	FIRST_PLAYER     = "first_player"
	FINES            = "fines"
	ARM_WARRIOR      = "arm_warrior"
)

// Weighted lists the player actions scored from the action weight table.
var Weighted = []string{BUILD_FIELDS, BUILD_CAVERNS, SPAWN_GNOME, FIRST_PLAYER, FINES, ARM_WARRIOR}

// Action is one atomic state change. Only this package can implement it.
type Action interface {
	Name() string
	Describe() string
	apply(g *game.Game) error
}

type UpdateResources struct {
	Player string
	Delta  resource.Amounts
}

func (a UpdateResources) Name() string { return UPDATE_RESOURCES }
func (a UpdateResources) Describe() string {
	return fmt.Sprintf("%s receives %s", a.Player, a.Delta)
}
func (a UpdateResources) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	p.ChangeResources(a.Delta)
	return nil
}

type SpendResources struct {
	Player string
	Cost   resource.Amounts
}

func (a SpendResources) Name() string { return SPEND_RESOURCES }
func (a SpendResources) Describe() string {
	return fmt.Sprintf("%s pays %s", a.Player, a.Cost)
}
func (a SpendResources) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	return p.SpendResources(a.Cost)
}

type BuildRooms struct {
	Player string
	Rooms  []game.PlacedRoom
}

func (a BuildRooms) Name() string { return BUILD_ROOMS }
func (a BuildRooms) Describe() string {
	return fmt.Sprintf("%s furnishes %v", a.Player, a.Rooms)
}
func (a BuildRooms) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	return p.AddRooms(a.Rooms)
}

type BuildFields struct {
	Player string
	Fields []game.PlacedField
}

func (a BuildFields) Name() string { return BUILD_FIELDS }
func (a BuildFields) Describe() string {
	return fmt.Sprintf("%s places fields %v", a.Player, a.Fields)
}
func (a BuildFields) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	return p.AddFields(a.Fields)
}

type BuildCaverns struct {
	Player  string
	Caverns []game.PlacedCavern
}

func (a BuildCaverns) Name() string { return BUILD_CAVERNS }
func (a BuildCaverns) Describe() string {
	return fmt.Sprintf("%s digs %v", a.Player, a.Caverns)
}
func (a BuildCaverns) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	return p.AddCaverns(a.Caverns)
}

type SpawnGnome struct {
	Player string
}

func (a SpawnGnome) Name() string     { return SPAWN_GNOME }
func (a SpawnGnome) Describe() string { return fmt.Sprintf("%s gets a child", a.Player) }
func (a SpawnGnome) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	p.SpawnNewGnome()
	return nil
}

// SetFirstPlayer makes Player start the next round.
type SetFirstPlayer struct {
	Player string
}

func (a SetFirstPlayer) Name() string     { return FIRST_PLAYER }
func (a SetFirstPlayer) Describe() string { return fmt.Sprintf("%s starts next round", a.Player) }
func (a SetFirstPlayer) apply(g *game.Game) error {
	if _, err := g.Player(a.Player); err != nil {
		return err
	}
	g.FirstMove = a.Player
	return nil
}

type AddFines struct {
	Player string
	Count  int
}

func (a AddFines) Name() string     { return FINES }
func (a AddFines) Describe() string { return fmt.Sprintf("%s is fined %d", a.Player, a.Count) }
func (a AddFines) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	p.Fines += a.Count
	return nil
}

// ArmWarrior hands a weapon of Level to an unarmed gnome.
type ArmWarrior struct {
	Player string
	Level  int
}

func (a ArmWarrior) Name() string { return ARM_WARRIOR }
func (a ArmWarrior) Describe() string {
	return fmt.Sprintf("%s arms a warrior at level %d", a.Player, a.Level)
}
func (a ArmWarrior) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	if p.PeacefulGnomes() == 0 {
		return fmt.Errorf("%w: %s has no unarmed gnome", game.ErrNoFreeGnome, a.Player)
	}
	p.Warriors = append(p.Warriors, a.Level)
	return nil
}

// ReorderPlayers rotates the seating so that Player sits first.
type ReorderPlayers struct {
	Player string
}

func (a ReorderPlayers) Name() string     { return "" }
func (a ReorderPlayers) Describe() string { return fmt.Sprintf("%s moves first", a.Player) }
func (a ReorderPlayers) apply(g *game.Game) error {
	i := utils.FindIndex(g.Order, a.Player)
	if i < 0 {
		return fmt.Errorf("%w: %q", game.ErrPlayerNotFound, a.Player)
	}
	g.Order = utils.Rotate(g.Order, i)
	return nil
}

type ReserveGnome struct {
	Player string
}

func (a ReserveGnome) Name() string     { return "" }
func (a ReserveGnome) Describe() string { return fmt.Sprintf("%s places a gnome", a.Player) }
func (a ReserveGnome) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	return p.ReserveGnome()
}

// BlockMove claims a move for the rest of the round.
type BlockMove struct {
	Player string
	Move   string
}

func (a BlockMove) Name() string     { return "" }
func (a BlockMove) Describe() string { return fmt.Sprintf("%s claims %s", a.Player, a.Move) }
func (a BlockMove) apply(g *game.Game) error {
	p, err := g.Player(a.Player)
	if err != nil {
		return err
	}
	p.Moves = append(p.Moves, a.Move)
	g.AvailableMoves = utils.Remove(g.AvailableMoves, a.Move)
	return nil
}

// ReleaseMoves returns every claimed move to the pool.
type ReleaseMoves struct{}

func (a ReleaseMoves) Name() string     { return "" }
func (a ReleaseMoves) Describe() string { return "claimed moves are released" }
func (a ReleaseMoves) apply(g *game.Game) error {
	for _, name := range g.Order {
		p, err := g.Player(name)
		if err != nil {
			return err
		}
		for _, move := range p.Moves {
			if !utils.Contains(g.AvailableMoves, move) {
				g.AvailableMoves = append(g.AvailableMoves, move)
			}
		}
		p.Moves = nil
	}
	return nil
}

// ReturnGnomes brings every placed gnome home.
type ReturnGnomes struct{}

func (a ReturnGnomes) Name() string     { return "" }
func (a ReturnGnomes) Describe() string { return "gnomes return home" }
func (a ReturnGnomes) apply(g *game.Game) error {
	for _, p := range g.Players {
		p.ReturnGnomes()
	}
	return nil
}

// OpenNewMove unlocks a move for the coming rounds.
type OpenNewMove struct {
	Move string
}

func (a OpenNewMove) Name() string     { return "" }
func (a OpenNewMove) Describe() string { return fmt.Sprintf("%s is unlocked", a.Move) }
func (a OpenNewMove) apply(g *game.Game) error {
	if !utils.Contains(g.AvailableMoves, a.Move) {
		g.AvailableMoves = append(g.AvailableMoves, a.Move)
	}
	return nil
}

// CollectMove empties the goods accumulated on a move.
type CollectMove struct {
	Move string
}

func (a CollectMove) Name() string     { return "" }
func (a CollectMove) Describe() string { return fmt.Sprintf("%s is emptied", a.Move) }
func (a CollectMove) apply(g *game.Game) error {
	g.Moves.Take(a.Move)
	return nil
}

type ChangeStatus struct {
	Status game.Status
}

func (a ChangeStatus) Name() string     { return "" }
func (a ChangeStatus) Describe() string { return fmt.Sprintf("status becomes %s", a.Status) }
func (a ChangeStatus) apply(g *game.Game) error {
	g.Status = a.Status
	return nil
}

type SetFeedingStatus struct {
	Status game.FeedingStatus
}

func (a SetFeedingStatus) Name() string { return "" }
func (a SetFeedingStatus) Describe() string {
	return fmt.Sprintf("feeding becomes %s", a.Status)
}
func (a SetFeedingStatus) apply(g *game.Game) error {
	g.FeedingStatus = a.Status
	return nil
}

// NextUser hands the turn to Player.
type NextUser struct {
	Player string
}

func (a NextUser) Name() string     { return "" }
func (a NextUser) Describe() string { return fmt.Sprintf("%s is next", a.Player) }
func (a NextUser) apply(g *game.Game) error {
	if _, err := g.Player(a.Player); err != nil {
		return err
	}
	g.Next = a.Player
	return nil
}

type IncreaseTurn struct{}

func (a IncreaseTurn) Name() string     { return "" }
func (a IncreaseTurn) Describe() string { return "next round" }
func (a IncreaseTurn) apply(g *game.Game) error {
	g.Turn++
	return nil
}
