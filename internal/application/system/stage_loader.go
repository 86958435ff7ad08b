package system

import (
	"fmt"
	"io/fs"

	"github.com/younwookim/shadowgrove/internal/domain/entity"
	"github.com/younwookim/shadowgrove/internal/infrastructure/config"
	"github.com/younwookim/shadowgrove/internal/infrastructure/tmx"
)

// LoadStage converts a StageConfig into a Stage entity. Stages naming a map
// are read from fsys through the TMX loader; the JSON spawn list and player
// spawn, when given, are merged on top.
func LoadStage(cfg *config.StageConfig, fsys fs.FS) (*entity.Stage, error) {
	var stage *entity.Stage
	if cfg.Map != "" {
		if fsys == nil {
			return nil, fmt.Errorf("failed to load stage %s: map %s needs a filesystem", cfg.ID, cfg.Map)
		}
		var err error
		stage, err = tmx.LoadStage(fsys, cfg.Map)
		if err != nil {
			return nil, fmt.Errorf("failed to load stage %s: %w", cfg.ID, err)
		}
		if cfg.PlayerSpawn.X != 0 || cfg.PlayerSpawn.Y != 0 {
			stage.SpawnX, stage.SpawnY = cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y
		}
	} else {
		if cfg.Size.TileSize <= 0 {
			return nil, fmt.Errorf("failed to load stage %s: tile size must be positive", cfg.ID)
		}
		stage = loadASCIIStage(cfg)
	}

	stage.ID = cfg.ID
	for _, es := range cfg.Enemies {
		spawn := entity.Spawn{Kind: entity.Kind(es.Type), X: es.X, Y: es.Y}
		for _, p := range es.Patrol {
			spawn.Patrol = append(spawn.Patrol, entity.Point{X: p.X, Y: p.Y})
		}
		stage.Spawns = append(stage.Spawns, spawn)
	}

	return stage, nil
}

func loadASCIIStage(cfg *config.StageConfig) *entity.Stage {
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		// One tile per rune, so multi-byte symbols keep columns aligned
		for x, char := range []rune(row) {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "water":
				tileType = entity.TileWater
			default:
				tileType = entity.TileEmpty
			}

			tiles[y][x] = entity.Tile{Type: tileType, Solid: mapping.Solid}
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
}
