package parameter

// Player (digger)
const (
	PlayerStartX = 30
	PlayerStartY = 60

	PlayerHitPoints  = 10
	PlayerStartWater = 5
	PlayerStartSonar = 1
	PlayerStartGold  = 0

	// SonarRadius reveals hidden entities around the player
	SonarRadius = 12.0

	// SquirtSpawnOffset is how far ahead of the player a squirt appears
	SquirtSpawnOffset = 4
	// SquirtRange is the number of cells a squirt travels before it evaporates
	SquirtRange = 4
	// SquirtDamage is hit points removed from each protester in SquirtHitRadius
	SquirtDamage    = 2
	SquirtHitRadius = 3.0
)
