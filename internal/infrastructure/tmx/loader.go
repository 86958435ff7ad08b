// Package tmx turns Tiled maps into stages.
//
// A map provides a tile layer named "collisions" (any non-empty tile is
// solid), a "PlayerSpawn" object group with one object, and an "Enemies"
// object group whose objects carry a "kind" property and an optional
// "patrol" property of the form "x1,y1;x2,y2;...".
package tmx

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/shadowgrove/internal/domain/entity"
)

const (
	collisionLayer   = "collisions"
	playerSpawnGroup = "PlayerSpawn"
	enemiesGroup     = "Enemies"
)

// LoadStage parses the TMX file at path within fsys
func LoadStage(fsys fs.FS, path string) (*entity.Stage, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load TMX %s: %w", path, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("failed to load TMX %s: tiles must be square, got %dx%d",
			path, levelMap.TileWidth, levelMap.TileHeight)
	}

	stage := &entity.Stage{
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: levelMap.TileWidth,
		Tiles:    make([][]entity.Tile, levelMap.Height),
	}
	for y := range stage.Tiles {
		stage.Tiles[y] = make([]entity.Tile, levelMap.Width)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != collisionLayer {
			continue
		}
		// Infinite maps keep their tiles in chunks and leave Tiles empty
		if want := levelMap.Width * levelMap.Height; len(layer.Tiles) < want {
			return nil, fmt.Errorf("failed to load TMX %s: %s layer has %d tiles, want %d (infinite maps are not supported)",
				path, collisionLayer, len(layer.Tiles), want)
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				stage.Tiles[y][x] = entity.Tile{Type: entity.TileWall, Solid: true}
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case playerSpawnGroup:
			if len(og.Objects) > 0 {
				stage.SpawnX = og.Objects[0].X
				stage.SpawnY = og.Objects[0].Y
			}
		case enemiesGroup:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					return nil, fmt.Errorf("failed to load TMX %s: enemy object %d has no kind", path, o.ID)
				}
				patrol, err := parsePatrol(o.Properties.GetString("patrol"))
				if err != nil {
					return nil, fmt.Errorf("failed to load TMX %s: enemy object %d: %w", path, o.ID, err)
				}
				stage.Spawns = append(stage.Spawns, entity.Spawn{
					Kind:   entity.Kind(kind),
					X:      o.X,
					Y:      o.Y,
					Patrol: patrol,
				})
			}
		}
	}

	return stage, nil
}

func parsePatrol(s string) ([]entity.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var points []entity.Point
	for _, pair := range strings.Split(s, ";") {
		xy := strings.Split(strings.TrimSpace(pair), ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("bad patrol point %q", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad patrol x in %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad patrol y in %q: %w", pair, err)
		}
		points = append(points, entity.Point{X: x, Y: y})
	}
	return points, nil
}
