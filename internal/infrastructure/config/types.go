package config

// GameSettings is the root config for game.json
type GameSettings struct {
	Display  DisplayConfig  `json:"display"`
	Combat   CombatConfig   `json:"combat"`
	AI       AIConfig       `json:"ai"`
	Feedback FeedbackConfig `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// CombatConfig holds the hit resolution rules
type CombatConfig struct {
	PlayerWindow WindowConfig `json:"playerWindow"`
	EnemyWindow  WindowConfig `json:"enemyWindow"`
	Knockback    float64      `json:"knockback"`
	// ArcDegrees limits player hits to a cone around the facing; 0 disables it
	ArcDegrees float64 `json:"arcDegrees"`
}

// WindowConfig is a damage window as fractions of the attack clip length
type WindowConfig struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// AIConfig holds the timings shared by every enemy archetype
type AIConfig struct {
	IdleDuration     float64 `json:"idleDuration"`
	PatrolTolerance  float64 `json:"patrolTolerance"`
	PatrolWait       float64 `json:"patrolWait"`
	HitStun          float64 `json:"hitStun"`
	DeathDuration    float64 `json:"deathDuration"`
	AttackDuration   float64 `json:"attackDuration"`
	StandoffDeadband float64 `json:"standoffDeadband"`
	BackoffFactor    float64 `json:"backoffFactor"`
}

type FeedbackConfig struct {
	Hitstop     HitstopConfig     `json:"hitstop"`
	ScreenShake ScreenShakeConfig `json:"screenShake"`
}

type HitstopConfig struct {
	Enabled    bool `json:"enabled"`
	Frames     int  `json:"frames"`
	KillFrames int  `json:"killFrames"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
	Decay     float64 `json:"decay"`
}
