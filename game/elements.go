package game

// InsideElement is a tile placed on the cave side of a player board.
type InsideElement int

const (
	Room InsideElement = iota
	Hall
	MineHall
	Mine
	GemMine
)

var insideNames = []string{"room", "hall", "mine_hall", "mine", "gem_mine"}

func (e InsideElement) String() string {
	return enumName(insideNames, int(e), "inside")
}

func (e InsideElement) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *InsideElement) UnmarshalText(text []byte) error {
	i, err := enumIndex(insideNames, string(text), "inside element")
	*e = InsideElement(i)
	return err
}

// OutsideElement is a tile placed on the forest side of a player board.
type OutsideElement int

const (
	Meadow OutsideElement = iota
	Field
	Fence
)

var outsideNames = []string{"meadow", "field", "fence"}

func (e OutsideElement) String() string {
	return enumName(outsideNames, int(e), "outside")
}

func (e OutsideElement) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *OutsideElement) UnmarshalText(text []byte) error {
	i, err := enumIndex(outsideNames, string(text), "outside element")
	*e = OutsideElement(i)
	return err
}

// PlacedCavern is a cave tile at a board position.
type PlacedCavern struct {
	Position int           `yaml:"position"`
	Kind     InsideElement `yaml:"kind"`
}

// PlacedRoom is a furnishing, named after its catalog entry, at a board position.
type PlacedRoom struct {
	Position int    `yaml:"position"`
	Room     string `yaml:"room"`
}

// PlacedField is a forest tile at a board position.
type PlacedField struct {
	Position int            `yaml:"position"`
	Kind     OutsideElement `yaml:"kind"`
}
