package scheduler

// GridConfig describes the candidate slot grid for a single day: an operating
// window [OpenMinute, CloseMinute) walked at a fixed granularity.
type GridConfig struct {
	OpenMinute     int // minutes from midnight, inclusive
	CloseMinute    int // minutes from midnight, exclusive
	GranularityMin int
}

// DefaultGrid is the 08:00-24:00 window at 30-minute granularity.
var DefaultGrid = GridConfig{OpenMinute: 480, CloseMinute: 1440, GranularityMin: 30}

// Validate checks the grid bounds.
func (g GridConfig) Validate() error {
	if g.GranularityMin <= 0 {
		return NewValidationError("slot granularity must be positive, got %d", g.GranularityMin)
	}
	if g.OpenMinute < 0 || g.CloseMinute > 1440 || g.OpenMinute >= g.CloseMinute {
		return NewValidationError("invalid operating window [%d, %d)", g.OpenMinute, g.CloseMinute)
	}
	return nil
}

// SlotStarts enumerates the candidate start minutes for one day in ascending
// order. The sequence is cheap to build and regenerated per call.
func (g GridConfig) SlotStarts() []int {
	starts := make([]int, 0, (g.CloseMinute-g.OpenMinute)/g.GranularityMin)
	for m := g.OpenMinute; m < g.CloseMinute; m += g.GranularityMin {
		starts = append(starts, m)
	}
	return starts
}
