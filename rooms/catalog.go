package rooms

import "caverna/resource"

const (
	ENTRY_LEVEL_DWELLING = "entry_level_dwelling"
	DWELLING             = "dwelling"
	SIMPLE_DWELLING1     = "simple_dwelling1"
	SIMPLE_DWELLING2     = "simple_dwelling2"
	MIXED_DWELLING       = "mixed_dwelling"
	COUPLE_DWELLING      = "couple_dwelling"
	ADDITIONAL_DWELLING  = "additional_dwelling"

	CARPENTER         = "carpenter"
	STONE_CARVER      = "stone_carver"
	BLACKSMITH        = "blacksmith"
	MINER             = "miner"
	BUILDER           = "builder"
	BREEDING_CAVE     = "breeding_cave"
	SLAUGHTERING_CAVE = "slaughtering_cave"

	WEAVING_PARLOR   = "weaving_parlor"
	MILKING_PARLOR   = "milking_parlor"
	STATE_PARLOR     = "state_parlor"
	STONE_STORAGE    = "stone_storage"
	MAIN_STORAGE     = "main_storage"
	TREASURE_CHAMBER = "treasure_chamber"
)

var tribal = resource.TribalAnimals

// GLOBAL DATA. Prices and points follow the printed furnishing tiles; bonus conditions of
// yellow tiles are folded into their flat points.
var catalog = []Room{
	{
		Name:       ENTRY_LEVEL_DWELLING,
		Tier:       Ginger,
		GnomeSlots: 2,
		Unique:     true,
		Slots:      Slots{Types: tribal, Size: 2},
		Price:      resource.Amounts{"gold": 0},
	},
	{
		Name:       DWELLING,
		Tier:       Ginger,
		GnomeSlots: 1,
		Price:      resource.Amounts{"wood": 4, "stone": 3},
		Points:     3,
	},
	{
		Name:       SIMPLE_DWELLING1,
		Tier:       Ginger,
		GnomeSlots: 1,
		Unique:     true,
		Price:      resource.Amounts{"wood": 4, "stone": 2},
	},
	{
		Name:       SIMPLE_DWELLING2,
		Tier:       Ginger,
		GnomeSlots: 1,
		Unique:     true,
		Price:      resource.Amounts{"wood": 3, "stone": 3},
	},
	{
		Name:       MIXED_DWELLING,
		Tier:       Ginger,
		GnomeSlots: 1,
		Unique:     true,
		Slots:      Slots{Types: tribal, Size: 2},
		Price:      resource.Amounts{"wood": 3, "stone": 3},
		Points:     4,
	},
	{
		Name:       COUPLE_DWELLING,
		Tier:       Ginger,
		GnomeSlots: 2,
		Unique:     true,
		Price:      resource.Amounts{"wood": 8, "stone": 6},
		Points:     5,
	},
	{
		Name:       ADDITIONAL_DWELLING,
		Tier:       Ginger,
		GnomeSlots: 1,
		Unique:     true,
		Price:      resource.Amounts{"wood": 8, "stone": 6},
		Points:     5,
	},
	{Name: CARPENTER, Tier: Green, Unique: true, Price: resource.Amounts{"stone": 1}},
	{Name: STONE_CARVER, Tier: Green, Unique: true, Price: resource.Amounts{"wood": 1}, Points: 1},
	{Name: BLACKSMITH, Tier: Green, Unique: true, Price: resource.Amounts{"wood": 1, "coal": 2}, Points: 3},
	{Name: MINER, Tier: Green, Unique: true, Price: resource.Amounts{"wood": 1, "stone": 1}, Points: 3},
	{Name: BUILDER, Tier: Green, Unique: true, Price: resource.Amounts{"stone": 1}, Points: 2},
	{
		Name:   BREEDING_CAVE,
		Tier:   Green,
		Unique: true,
		Slots:  Slots{Types: tribal, Size: 4},
		Price:  resource.Amounts{"wood": 1, "stone": 1},
		Points: 2,
	},
	{Name: SLAUGHTERING_CAVE, Tier: Green, Unique: true, Price: resource.Amounts{"wood": 2, "stone": 2}, Points: 2},
	{Name: WEAVING_PARLOR, Tier: Yellow, Unique: true, Price: resource.Amounts{"wood": 2, "stone": 1}, Points: 2},
	{Name: MILKING_PARLOR, Tier: Yellow, Unique: true, Price: resource.Amounts{"wood": 2, "stone": 2}, Points: 3},
	{Name: STATE_PARLOR, Tier: Yellow, Unique: true, Price: resource.Amounts{"gold": 5, "stone": 3}, Points: 6},
	{Name: STONE_STORAGE, Tier: Yellow, Unique: true, Price: resource.Amounts{"wood": 3, "coal": 1}, Points: 3},
	{Name: MAIN_STORAGE, Tier: Yellow, Unique: true, Price: resource.Amounts{"wood": 2, "stone": 1}, Points: 4},
	{Name: TREASURE_CHAMBER, Tier: Yellow, Unique: true, Price: resource.Amounts{"wood": 1, "stone": 1}, Points: 3},
}
