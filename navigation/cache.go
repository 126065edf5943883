package navigation

// FlowFieldCache holds a field anchored at a fixed target and recomputes it lazily
type FlowFieldCache struct {
	Field *FlowField

	TargetX, TargetY int

	// PendingUpdate latches true on any terrain or hazard change, cleared after compute
	PendingUpdate bool

	// Computes counts recomputations, exposed for tests and diagnostics
	Computes int
}

// NewFlowFieldCache creates a cache that computes on first Refresh
func NewFlowFieldCache(width, height, targetX, targetY int) *FlowFieldCache {
	return &FlowFieldCache{
		Field:         NewFlowField(width, height),
		TargetX:       targetX,
		TargetY:       targetY,
		PendingUpdate: true,
	}
}

// MarkDirty forces recomputation on the next Refresh
func (c *FlowFieldCache) MarkDirty() {
	c.PendingUpdate = true
}

// Refresh recomputes the field if dirty, returns true if it recomputed
func (c *FlowFieldCache) Refresh(isBlocked WallChecker) bool {
	if !c.PendingUpdate && c.Field.Valid {
		return false
	}
	c.Field.Compute(c.TargetX, c.TargetY, isBlocked)
	c.PendingUpdate = false
	c.Computes++
	return true
}

// GetDistance returns cached hop count
func (c *FlowFieldCache) GetDistance(x, y int) int {
	return c.Field.GetDistance(x, y)
}

// IsValid returns true if field has valid data
func (c *FlowFieldCache) IsValid() bool {
	return c.Field.Valid
}
