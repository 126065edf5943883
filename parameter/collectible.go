package parameter

// Pickup radii
const (
	// PickupRadius triggers collection by the player
	PickupRadius = 3.0
	// RevealRadius makes a hidden pickup visible without collecting it
	RevealRadius = 4.0
)

// Score values and effects
const (
	BarrelScore    = 1000
	GoldScore      = 10
	SonarKitScore  = 75
	WaterPoolScore = 100

	SonarKitCharges  = 2
	WaterPoolRefill  = 5
	GoldNuggetAmount = 1

	// DroppedGoldLifetime is the tick count before an unclaimed bribe vanishes
	DroppedGoldLifetime = 100

	// SonarKitX, SonarKitY is where sonar kits always appear
	SonarKitX = 0
	SonarKitY = 60
)

// Goodie spawning
const (
	// GoodieChanceBase and GoodieChancePerLevel form the 1-in-N per-tick goodie roll
	GoodieChanceBase     = 300
	GoodieChancePerLevel = 25
	// SonarKitOneIn is the sonar share of goodie rolls
	SonarKitOneIn = 5
	// WaterPlacementAttempts bounds the random search for a water pool site
	WaterPlacementAttempts = 100
	// GoodieLifetimeMin and GoodieLifetimeBase give max(min, base - 10*level)
	GoodieLifetimeMin      = 100
	GoodieLifetimeBase     = 300
	GoodieLifetimePerLevel = 10
)

// Initial distribution
const (
	// ItemSpacing is the minimum anchor distance between distributed items
	ItemSpacing = 6.0

	BoulderMinY = 20
	BoulderMaxY = 56
	ItemMaxY    = 56

	MaxBoulders  = 9
	MinGold      = 2
	BaseGold     = 5
	BaseBarrels  = 2
	MaxBarrels   = 21
	BaseBoulders = 2
)
