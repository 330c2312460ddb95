package balance

import (
	"sort"

	"caverna/actions"
	"caverna/resource"
	"caverna/rooms"

	"golang.org/x/exp/rand"
)

// Weights maps feature names to coefficients.
type Weights map[string]float64

func (w Weights) Copy() Weights {
	c := make(Weights, len(w))
	for k, v := range w {
		c[k] = v
	}
	return c
}

// Config is the strategy of one agent: a weight table per action, resource and room.
type Config struct {
	Actions   map[string]Weights `yaml:"actions"`
	Resources map[string]Weights `yaml:"resources"`
	Rooms     map[string]Weights `yaml:"rooms"`
}

func (c Config) Copy() Config {
	return Config{
		Actions:   copyTables(c.Actions),
		Resources: copyTables(c.Resources),
		Rooms:     copyTables(c.Rooms),
	}
}

func copyTables(tables map[string]Weights) map[string]Weights {
	out := make(map[string]Weights, len(tables))
	for name, w := range tables {
		out[name] = w.Copy()
	}
	return out
}

// GenerateWeights returns a zero table holding exactly the expected features.
func GenerateWeights() Weights {
	w := Weights{}
	for _, name := range FeatureNames() {
		w[name] = 0
	}
	return w
}

// Generate returns a zero config with a table for every action, resource and room.
func Generate() Config {
	cfg := Config{
		Actions:   map[string]Weights{},
		Resources: map[string]Weights{},
		Rooms:     map[string]Weights{},
	}
	for _, name := range actions.Weighted {
		cfg.Actions[name] = GenerateWeights()
	}
	for _, r := range resource.All {
		cfg.Resources[r.Key()] = GenerateWeights()
	}
	for _, name := range rooms.Names() {
		cfg.Rooms[name] = GenerateWeights()
	}
	return cfg
}

var resourceValues = map[resource.Type]float64{
	resource.Gem:     1.5,
	resource.Food:    0.8,
	resource.Gold:    1,
	resource.Stone:   0.6,
	resource.Wood:    0.6,
	resource.Coal:    0.5,
	resource.Sheep:   1,
	resource.Hippo:   1,
	resource.Dog:     1,
	resource.Donkey:  1,
	resource.Cow:     1,
	resource.Wheat:   0.5,
	resource.Pumpkin: 1,
}

// Default is a hand-tuned baseline strategy.
func Default() Config {
	cfg := Generate()
	for r, value := range resourceValues {
		w := cfg.Resources[r.Key()]
		w[BIAS] = value
		w[ResourceFeature(r)] = -0.02
		if r.IsTribalAnimal() {
			w[ClearSlotsFeature(r)] = 0.3
		}
	}
	cfg.Resources[resource.Food.Key()][FINES_COUNT] = 0.2

	for _, room := range rooms.All() {
		w := cfg.Rooms[room.Name]
		w[BIAS] = float64(room.Points) + 2*float64(room.GnomeSlots)
		w[TURN] = -0.1
	}

	cfg.Actions[actions.SPAWN_GNOME][BIAS] = 5
	cfg.Actions[actions.SPAWN_GNOME][TURN] = -0.3
	cfg.Actions[actions.BUILD_FIELDS][BIAS] = 1
	cfg.Actions[actions.BUILD_CAVERNS][BIAS] = 1
	cfg.Actions[actions.BUILD_CAVERNS][FREE_ROOMS_COUNT] = -0.5
	cfg.Actions[actions.FIRST_PLAYER][BIAS] = 0.5
	cfg.Actions[actions.FINES][BIAS] = -3
	cfg.Actions[actions.ARM_WARRIOR][BIAS] = 0.3
	return cfg
}

// Mutate returns a perturbed copy of cfg. Every weight changes with probability rate by
// a normal step of deviation sigma. Tables are visited in sorted order so a seeded rng
// gives reproducible results.
func Mutate(cfg Config, rng *rand.Rand, rate, sigma float64) Config {
	out := cfg.Copy()
	for _, tables := range []map[string]Weights{out.Actions, out.Resources, out.Rooms} {
		for _, name := range sortedKeys(tables) {
			w := tables[name]
			for _, feature := range sortedKeys(w) {
				if rng.Float64() < rate {
					w[feature] += rng.NormFloat64() * sigma
				}
			}
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
