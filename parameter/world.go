package parameter

// World dimensions at the reference resolution (scale 1.0)
const (
	WorldWidth  = 1920.0
	WorldHeight = 1200.0
)

// Safe spawn rectangle as fractions of world dimensions
const (
	// SafeAreaMargin is the inset of the safe rectangle from each edge
	SafeAreaMargin = 0.05
	// SafeAreaExtent is the safe rectangle size relative to the world
	SafeAreaExtent = 0.90
)

// Spawn-point search
const (
	// SpawnFudgePlayer inflates player radius during spawn search
	SpawnFudgePlayer = 2.0
	// SpawnFudgeDefault inflates every other radius during spawn search
	SpawnFudgeDefault = 1.1
	// SpawnPointMaxAttempts bounds rejection sampling before giving up
	SpawnPointMaxAttempts = 1000
)

// Actor construction
const (
	// PolygonSegments is the vertex count of the circle outline used to settle the final radius
	PolygonSegments = 100
)

// Players
const (
	PlayerCount = 4
	PlayerLife  = 100.0
	// DamageScalar converts mass times ramming speed into damage
	DamageScalar = 0.001
)

// Initial population
const (
	InitialOzone = 30
)

// Focal point easing, fraction of the remaining distance covered per second
const (
	FocalEaseRate = 2.0
)
