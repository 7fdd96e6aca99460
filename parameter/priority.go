package parameter

// System priorities, lower runs first
const (
	PriorityActor   = 10
	PriorityMotion  = 20
	PriorityEffect  = 30
	PriorityFocal   = 40
	PrioritySpawn   = 50
	PriorityCensus  = 60
	PriorityCleanup = 900 // Final, after every system has seen dead actors
)
