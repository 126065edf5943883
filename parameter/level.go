package parameter

// Level-scaled formulas. Level numbering starts at 0.

// ProtesterRestTicks is the idle delay between protester moves
func ProtesterRestTicks(level int) int {
	return max(0, 3-level/4)
}

// ProtesterStunTicks is the freeze imposed by a non-fatal hit or a hardcore bribe
func ProtesterStunTicks(level int) int {
	return max(50, 100-level*10)
}

// HardcoreTrackingHops bounds how far a hardcore protester can sense the player
func HardcoreTrackingHops(level int) int {
	return 16 + level*2
}

// TargetProtesters is the population cap for a level
func TargetProtesters(level int) int {
	return min(MaxProtesters, BaseProtesters+int(float64(level)*1.5))
}

// ProtesterSpawnInterval is the tick gap between protester arrivals
func ProtesterSpawnInterval(level int) int {
	return max(ProtesterSpawnTicksMin, ProtesterSpawnTicksBase-level)
}

// HardcoreChance is the percentage of spawns that are hardcore
func HardcoreChance(level int) int {
	return min(HardcoreChanceMax, level*HardcoreChancePerLevel+HardcoreChanceBase)
}

// GoodieChance is N in the per-tick 1-in-N goodie roll
func GoodieChance(level int) int {
	return level*GoodieChancePerLevel + GoodieChanceBase
}

// GoodieLifetime is the tick count before a sonar kit or water pool evaporates
func GoodieLifetime(level int) int {
	return max(GoodieLifetimeMin, GoodieLifetimeBase-GoodieLifetimePerLevel*level)
}

// BoulderCount, GoldCount and BarrelCount size the initial distribution
func BoulderCount(level int) int {
	return min(level/2+BaseBoulders, MaxBoulders)
}

func GoldCount(level int) int {
	return max(BaseGold-level/2, MinGold)
}

func BarrelCount(level int) int {
	return min(BaseBarrels+level, MaxBarrels)
}
