package calc

import "github.com/bstrimzi/battlefactory/internal/rng"

// critChance maps a (clamped 0..4) crit stage to a (numerator,
// denominator) chance pair.
var critChance = [5][2]int{
	{1, 16}, {1, 8}, {1, 4}, {1, 3}, {1, 2},
}

// ClampCritStage caps a crit stage at the Gen-III maximum of 4.
func ClampCritStage(stage int) int {
	if stage < 0 {
		return 0
	}
	if stage > 4 {
		return 4
	}
	return stage
}

// RollCritical consumes one RNG draw and reports whether the hit is
// critical, given a (clamped) crit stage.
func RollCritical(src *rng.Source, critStage int) bool {
	c := critChance[ClampCritStage(critStage)]
	return src.Chance(uint16(c[0]), uint16(c[1]))
}
