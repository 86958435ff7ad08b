package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Game     *GameSettings
	Entities *EntitiesConfig
	Campaign *Campaign
}

// Loader loads game configuration from JSON and YAML files using fs.FS
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from. Map files referenced by
// stages are resolved against it.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameSettings, error) {
	var cfg GameSettings
	if err := l.readJSON("game.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.readJSON("entities.json", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate entities.json: %w", err)
	}
	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.readJSON("stages/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadCampaign loads campaign.yaml
func (l *Loader) LoadCampaign() (*Campaign, error) {
	data, err := fs.ReadFile(l.fsys, "campaign.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign.yaml: %w", err)
	}

	var c Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse campaign.yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate campaign.yaml: %w", err)
	}

	return &c, nil
}

// LoadAll loads all base configurations (game, entities, campaign)
func (l *Loader) LoadAll() (*GameConfig, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	campaign, err := l.LoadCampaign()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Game:     game,
		Entities: entities,
		Campaign: campaign,
	}, nil
}
