package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"caverna/balance"
	"caverna/game"
	"caverna/moves"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "config.yml"

// App locates every file the command line tools read and write.
type App struct {
	Folder       string    `yaml:"folder"`
	MovesFile    string    `yaml:"moves_file"`
	BalanceFiles [2]string `yaml:"balance_files"` // Strategies of p1 and p2
	GameFile     string    `yaml:"game_file"`
	Database     string    `yaml:"database"`
	Output       string    `yaml:"output"` // Root of experiment CSV folders
	LogLevel     string    `yaml:"log_level"`
}

func Defaults() App {
	return App{
		Folder:       "data",
		MovesFile:    "moves.yml",
		BalanceFiles: [2]string{"balance_p1.yml", "balance_p2.yml"},
		GameFile:     "game.yml",
		Database:     "caverna.db",
		Output:       "experiments",
		LogLevel:     "info",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (App, error) {
	app := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return app, nil
	}
	if err != nil {
		return app, err
	}
	if err := yaml.Unmarshal(data, &app); err != nil {
		return app, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return app, nil
}

func (a App) Save(path string) error {
	return writeYAML(path, a)
}

// Path resolves a file name inside the data folder.
func (a App) Path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(a.Folder, file)
}

// LoadMoves reads move yields, falling back to the built-in ones when path is missing.
func LoadMoves(path string) (moves.Config, error) {
	cfg := moves.DefaultConfig()
	found, err := readYAML(path, &cfg)
	if err != nil || !found {
		return moves.DefaultConfig(), err
	}
	return cfg, nil
}

func SaveMoves(path string, cfg moves.Config) error {
	return writeYAML(path, cfg)
}

// LoadBalance reads a strategy, falling back to the built-in one when path is missing.
func LoadBalance(path string) (balance.Config, error) {
	var cfg balance.Config
	found, err := readYAML(path, &cfg)
	if err != nil {
		return balance.Config{}, err
	}
	if !found {
		return balance.Default(), nil
	}
	return cfg, nil
}

func SaveBalance(path string, cfg balance.Config) error {
	return writeYAML(path, cfg)
}

func LoadGame(path string) (*game.Game, error) {
	var g game.Game
	found, err := readYAML(path, &g)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no game at %s: %w", path, os.ErrNotExist)
	}
	if g.Moves == nil {
		g.Moves = game.MovesData{}
	}
	return &g, nil
}

func SaveGame(path string, g *game.Game) error {
	return writeYAML(path, g)
}

func readYAML(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return true, nil
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
