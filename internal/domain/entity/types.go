package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileWater
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Spawn places one enemy when a stage loads
type Spawn struct {
	Kind   Kind
	X, Y   float64
	Patrol []Point
}

// Stage represents the current level's tile data and spawns
type Stage struct {
	ID       string
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   float64
	SpawnY   float64
	Spawns   []Spawn
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py float64) Tile {
	if px < 0 || py < 0 {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.GetTile(int(px)/s.TileSize, int(py)/s.TileSize)
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py float64) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// PixelSize returns the stage extent in pixels
func (s *Stage) PixelSize() (w, h int) {
	return s.Width * s.TileSize, s.Height * s.TileSize
}

// Contains reports whether r lies fully inside the stage
func (s *Stage) Contains(r Rect) bool {
	w, h := s.PixelSize()
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= float64(w) && r.Y+r.H <= float64(h)
}
