package buffer

const (
	// growthFactor is the multiplier applied to an Array's capacity when it is full.
	growthFactor = 2
)
