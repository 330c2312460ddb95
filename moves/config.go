package moves

import "caverna/meta"

// Config holds the static yields of every move.
type Config struct {
	DriftMining    DriftMining    `yaml:"drift_mining"`
	Logging        Logging        `yaml:"logging"`
	WoodGathering  WoodGathering  `yaml:"wood_gathering"`
	Excavation     Excavation     `yaml:"excavation"`
	Clearing       Clearing       `yaml:"clearing"`
	Supplies       Supplies       `yaml:"supplies"`
	StartingPlayer StartingPlayer `yaml:"starting_player"`
	RubyMining     RubyMining     `yaml:"ruby_mining"`
	SheepFarming   SheepFarming   `yaml:"sheep_farming"`
	DonkeyFarming  DonkeyFarming  `yaml:"donkey_farming"`
	Housework      Housework      `yaml:"housework"`
	Blacksmithing  Blacksmithing  `yaml:"blacksmithing"`
}

type DriftMining struct {
	StoneIncr uint `yaml:"stone_incr"`
}

// Logging pays WoodIncr onto an empty space and SecondaryWoodIncr otherwise.
type Logging struct {
	WoodIncr          uint `yaml:"wood_incr"`
	SecondaryWoodIncr uint `yaml:"secondary_wood_incr"`
}

type WoodGathering struct {
	WoodIncr uint `yaml:"wood_incr"`
}

type Excavation struct {
	StoneIncr uint `yaml:"stone_incr"`
}

type Clearing struct {
	WoodIncr uint `yaml:"wood_incr"`
}

type Supplies struct {
	Stone uint `yaml:"stone"`
	Wood  uint `yaml:"wood"`
	Coal  uint `yaml:"coal"`
	Food  uint `yaml:"food"`
	Gold  uint `yaml:"gold"`
}

type StartingPlayer struct {
	Gem      uint `yaml:"gem"`
	Coal     uint `yaml:"coal"`
	FoodIncr uint `yaml:"food_incr"`
}

// RubyMining starts accumulating gems once the turn passes FromTurn.
type RubyMining struct {
	GemIncr  uint `yaml:"gem_incr"`
	FromTurn int  `yaml:"from_turn"`
}

type SheepFarming struct {
	SheepIncr uint `yaml:"sheep_incr"`
}

type DonkeyFarming struct {
	DonkeyIncr uint `yaml:"donkey_incr"`
}

type Housework struct {
	Dogs uint `yaml:"dogs"`
}

type Blacksmithing struct {
	MaxLevel int `yaml:"max_level"`
}

func DefaultConfig() Config {
	return Config{
		DriftMining:    DriftMining{StoneIncr: 1},
		Logging:        Logging{WoodIncr: 3, SecondaryWoodIncr: 1},
		WoodGathering:  WoodGathering{WoodIncr: 1},
		Excavation:     Excavation{StoneIncr: 1},
		Clearing:       Clearing{WoodIncr: 1},
		Supplies:       Supplies{Stone: 1, Wood: 1, Coal: 1, Food: 1, Gold: 2},
		StartingPlayer: StartingPlayer{Gem: 1, Coal: 1, FoodIncr: 1},
		RubyMining:     RubyMining{GemIncr: 1, FromTurn: 2},
		SheepFarming:   SheepFarming{SheepIncr: 1},
		DonkeyFarming:  DonkeyFarming{DonkeyIncr: 1},
		Housework:      Housework{Dogs: 1},
		Blacksmithing:  Blacksmithing{MaxLevel: meta.MAX_WARRIOR_LEVEL},
	}
}
