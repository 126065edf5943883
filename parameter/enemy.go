package parameter

// Protester tiers
const (
	RegularProtesterHitPoints  = 5
	HardcoreProtesterHitPoints = 20

	// Bribe score reward per tier
	RegularBribeScore  = 25
	HardcoreBribeScore = 50
)

// Protester behaviour
const (
	// PatrolMinSteps and PatrolMaxSteps bound a chosen patrol leg (inclusive)
	PatrolMinSteps = 8
	PatrolMaxSteps = 60

	// PerpendicularTurnTicks is how long a protester must go without a perpendicular turn before considering one
	PerpendicularTurnTicks = 200

	// ShoutRadius is the reach of a shout, also the distance below which pursuit stops
	ShoutRadius = 4.0
	// ShoutIntervalTicks is the minimum number of active ticks between shouts
	ShoutIntervalTicks = 15
	// ShoutDamage is the player hit point loss per shout
	ShoutDamage = 2
	// ShoutRestTicks is the minimum rest imposed after a shout
	ShoutRestTicks = 15

	// BribeRadius is how close a protester must be to a dropped nugget
	BribeRadius = 3.0
)

// Spawn policy
const (
	MaxProtesters           = 15
	BaseProtesters          = 2
	ProtesterSpawnTicksBase = 200
	ProtesterSpawnTicksMin  = 25
	HardcoreChanceBase      = 30
	HardcoreChancePerLevel  = 10
	HardcoreChanceMax       = 90
)
