package parameter

// Boulder
const (
	// BoulderTeeterTicks is how long an unsupported boulder wobbles before falling
	BoulderTeeterTicks = 30

	// BoulderDamage is applied to every agent within BoulderHitRadius after each fall step
	BoulderDamage    = 100
	BoulderHitRadius = 3.0
)
