package parameter

// Audio cue names shared by the simulation and the cue player
const (
	CueTouch     = "asteroidTouch"
	CueBond      = "bond"
	CueUnbond    = "unbond"
	CuePlayerHit = "playerHit"
)
