package config

// StageConfig is the root config for stage JSON files. The collision layer
// comes either from Layers (ASCII rows) or from the TMX file named by Map.
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	Map         string                       `json:"map,omitempty"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Enemies     []EnemySpawnConfig           `json:"enemies"`
}

type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
}

type EnemySpawnConfig struct {
	Type   string           `json:"type"`
	X      float64          `json:"x"`
	Y      float64          `json:"y"`
	Patrol []PositionConfig `json:"patrol,omitempty"`
}
