package game

import (
	"fmt"

	"caverna/meta"
	"caverna/resource"
	"caverna/rooms"
)

// Player is the dwarf family of one seat.
type Player struct {
	Name        string           `yaml:"name"`
	Gnomes      int              `yaml:"gnomes"`
	ChildGnomes int              `yaml:"child_gnomes"`
	MovedGnomes int              `yaml:"moved_gnomes"`
	Fines       int              `yaml:"fines"`
	Caverns     []PlacedCavern   `yaml:"caverns"`
	Rooms       []PlacedRoom     `yaml:"rooms"`
	Fields      []PlacedField    `yaml:"fields"`
	Resources   resource.Amounts `yaml:"resources"`
	Moves       []string         `yaml:"moves"`    // Moves claimed this round
	Warriors    []int            `yaml:"warriors"` // Weapon level per armed gnome
}

// NewPlayer creates a player living in the entry level dwelling.
func NewPlayer(name string, gnomes int) *Player {
	return &Player{
		Name:      name,
		Gnomes:    gnomes,
		Caverns:   []PlacedCavern{{Position: 0, Kind: Room}},
		Rooms:     []PlacedRoom{{Position: 0, Room: rooms.ENTRY_LEVEL_DWELLING}},
		Resources: resource.Amounts{},
	}
}

func (p Player) Copy() *Player {
	c := p
	c.Caverns = append([]PlacedCavern(nil), p.Caverns...)
	c.Rooms = append([]PlacedRoom(nil), p.Rooms...)
	c.Fields = append([]PlacedField(nil), p.Fields...)
	c.Resources = p.Resources.Copy()
	c.Moves = append([]string(nil), p.Moves...)
	c.Warriors = append([]int(nil), p.Warriors...)
	return &c
}

// ChangeResources adds delta to the player's goods.
func (p *Player) ChangeResources(delta resource.Amounts) {
	if p.Resources == nil {
		p.Resources = resource.Amounts{}
	}
	p.Resources.Add(delta)
}

// SpendResources removes cost, leaving the player untouched when it is not affordable.
func (p *Player) SpendResources(cost resource.Amounts) error {
	if !p.Resources.Covers(cost) {
		return fmt.Errorf("%w: %s needs %s, has %s", ErrInsufficientResources, p.Name, cost, p.Resources)
	}
	p.Resources.Subtract(cost)
	return nil
}

func (p *Player) AddRooms(placed []PlacedRoom) error {
	positions := make([]int, len(placed))
	for i, r := range placed {
		room, err := rooms.Resolve(r.Room)
		if err != nil {
			return err
		}
		if room.Unique && (p.HasRoom(r.Room) || countRoom(placed, r.Room) > 1) {
			return fmt.Errorf("%w: %s already owns %s", ErrUniqueRoom, p.Name, r.Room)
		}
		positions[i] = r.Position
	}
	occupied := make([]int, len(p.Rooms))
	for i, r := range p.Rooms {
		occupied[i] = r.Position
	}
	if err := checkPositions(occupied, positions); err != nil {
		return fmt.Errorf("room for %s: %w", p.Name, err)
	}
	p.Rooms = append(p.Rooms, placed...)
	return nil
}

func (p *Player) AddFields(placed []PlacedField) error {
	positions := make([]int, len(placed))
	for i, f := range placed {
		positions[i] = f.Position
	}
	if err := checkPositions(p.fieldPositions(), positions); err != nil {
		return fmt.Errorf("field for %s: %w", p.Name, err)
	}
	p.Fields = append(p.Fields, placed...)
	return nil
}

func (p *Player) AddCaverns(placed []PlacedCavern) error {
	positions := make([]int, len(placed))
	for i, c := range placed {
		positions[i] = c.Position
	}
	if err := checkPositions(p.cavernPositions(), positions); err != nil {
		return fmt.Errorf("cavern for %s: %w", p.Name, err)
	}
	p.Caverns = append(p.Caverns, placed...)
	return nil
}

func countRoom(placed []PlacedRoom, name string) int {
	n := 0
	for _, r := range placed {
		if r.Room == name {
			n++
		}
	}
	return n
}

// checkPositions fails when an incoming position is already occupied or repeated.
func checkPositions(occupied, incoming []int) error {
	taken := toSet(occupied)
	for _, pos := range incoming {
		if pos < 0 || pos >= Board.Slots {
			return fmt.Errorf("position %d outside the board", pos)
		}
		if _, ok := taken[pos]; ok {
			return fmt.Errorf("%w: %d", ErrPositionTaken, pos)
		}
		taken[pos] = struct{}{}
	}
	return nil
}

func (p *Player) SpawnNewGnome() {
	p.ChildGnomes++
}

// ReserveGnome places one free adult gnome on an action space.
func (p *Player) ReserveGnome() error {
	if p.MovedGnomes >= p.Gnomes {
		return fmt.Errorf("%w: %s", ErrNoFreeGnome, p.Name)
	}
	p.MovedGnomes++
	return nil
}

// ReturnGnomes brings every gnome home and lets children grow up.
func (p *Player) ReturnGnomes() {
	p.MovedGnomes = 0
	p.Gnomes += p.ChildGnomes
	p.ChildGnomes = 0
}

func (p *Player) FreeGnomes() int {
	return max(p.Gnomes-p.MovedGnomes, 0)
}

// FreeGnomeSlots is the dwelling capacity not yet used by adults or children.
func (p *Player) FreeGnomeSlots() int {
	capacity := 0
	for _, placed := range p.Rooms {
		if r, err := rooms.Resolve(placed.Room); err == nil {
			capacity += int(r.GnomeSlots)
		}
	}
	return max(capacity-p.Gnomes-p.ChildGnomes, 0)
}

func (p *Player) FreeRoomSlots() int {
	return meta.GRID_SLOTS - len(p.Caverns)
}

func (p *Player) FreeFieldSlots() int {
	return meta.GRID_SLOTS - len(p.Fields)
}

func (p *Player) TierCount(tier rooms.Tier) int {
	count := 0
	for _, placed := range p.Rooms {
		if r, err := rooms.Resolve(placed.Room); err == nil && r.Tier == tier {
			count++
		}
	}
	return count
}

// MaxSlotsFor is the storage capacity of the player's rooms for r.
func (p *Player) MaxSlotsFor(r resource.Type) int {
	total := 0
	for _, placed := range p.Rooms {
		room, err := rooms.Resolve(placed.Room)
		if err == nil && room.Slots.Accepts(r) {
			total += int(room.Slots.Size)
		}
	}
	return total
}

func (p *Player) ClearSlotsFor(r resource.Type) int {
	return max(p.MaxSlotsFor(r)-int(p.Resources.Get(r)), 0)
}

func (p *Player) WarriorCount() int {
	return len(p.Warriors)
}

func (p *Player) PeacefulGnomes() int {
	return max(p.Gnomes-len(p.Warriors), 0)
}

func (p *Player) MaxWarriorLevel() int {
	level := 0
	for _, w := range p.Warriors {
		level = max(level, w)
	}
	return level
}

// FreeCaverns counts caverns of kind with no furnishing on them.
func (p *Player) FreeCaverns(kind InsideElement) int {
	furnished := make(map[int]struct{}, len(p.Rooms))
	for _, r := range p.Rooms {
		furnished[r.Position] = struct{}{}
	}
	count := 0
	for _, c := range p.Caverns {
		if _, ok := furnished[c.Position]; c.Kind == kind && !ok {
			count++
		}
	}
	return count
}

// FreeFurnishingSlots returns empty room caverns where a furnishing fits, ascending.
func (p *Player) FreeFurnishingSlots() []int {
	furnished := make(map[int]struct{}, len(p.Rooms))
	for _, r := range p.Rooms {
		furnished[r.Position] = struct{}{}
	}
	var slots []int
	for _, c := range p.Caverns {
		if _, ok := furnished[c.Position]; c.Kind == Room && !ok {
			slots = append(slots, c.Position)
		}
	}
	return sortedKeys(toSet(slots))
}

// CavernSlots are the positions where a new cave tile can be dug.
func (p *Player) CavernSlots() []int {
	return Board.AvailableSlots(p.cavernPositions())
}

// MineSlots are the pairs of positions where a twin mine tile fits.
func (p *Player) MineSlots() [][2]int {
	return Board.AvailablePairSlots(p.cavernPositions())
}

// FieldNeighbourSlots are the positions where a new forest tile can be placed.
// An empty forest starts at position 0.
func (p *Player) FieldNeighbourSlots() []int {
	if len(p.Fields) == 0 {
		return []int{0}
	}
	return Board.AvailableSlots(p.fieldPositions())
}

func (p *Player) cavernPositions() []int {
	out := make([]int, len(p.Caverns))
	for i, c := range p.Caverns {
		out[i] = c.Position
	}
	return out
}

func (p *Player) fieldPositions() []int {
	out := make([]int, len(p.Fields))
	for i, f := range p.Fields {
		out[i] = f.Position
	}
	return out
}

// HasRoom reports whether the player already built the named room.
func (p *Player) HasRoom(name string) bool {
	for _, r := range p.Rooms {
		if r.Room == name {
			return true
		}
	}
	return false
}
