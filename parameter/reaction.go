package parameter

// Field coefficients, applied per frame without dt scaling
const (
	FieldDefault = 0.01
	FieldStrong  = 0.025
)

// Half-reaction threshold: touches on the same counter before a bond fires
const (
	HalfReactionThreshold = 2
)

// Unbond kinematics
const (
	// UnbondSlowFactor scales velocity and direction of the first fragment
	UnbondSlowFactor = 0.5
	// UnbondFastFactor scales velocity and direction of the last fragment
	UnbondFastFactor = 2.0
)

// Unbond fragment x-offsets, reference units
const (
	UnbondOffsetO2      = 45.0
	UnbondOffsetHH      = 10.0
	UnbondOffsetN2      = 30.0
	UnbondOffsetO3      = 70.0
	UnbondOffsetCO2     = 70.0
	UnbondOffsetOH      = 50.0
	UnbondOffsetNO      = 55.0
	UnbondOffsetH2O     = 30.0
	UnbondOffsetCH2     = 25.0
	UnbondOffsetCH4Near = 25.0
	UnbondOffsetCH4Far  = 40.0
	UnbondOffsetN2O     = 45.0
)
