package parameter

// Spawn timers, in seconds
const (
	FreeRadicalsDelay        = 10.0
	GreenhouseGasesDelay     = 1.0
	FreeRadicalsInitialDelay = 5.0
	GreenhouseInitialDelay   = 2.0
)

// Population caps checked before each timed spawn
const (
	FreeRadicalCap   = 5
	GreenhouseGasCap = 15
)

// Spawn columns for timed arrivals, reference units
const (
	SpawnColumnLeft  = 950.0
	SpawnColumnRight = 1250.0
)

// Spawn rows for timed arrivals, reference units
const (
	SpawnRowWater  = 1450.0
	SpawnRowFirst  = 1500.0
	SpawnRowSecond = 1550.0
	SpawnRowThird  = 1600.0
	SpawnRowFourth = 1650.0
)
