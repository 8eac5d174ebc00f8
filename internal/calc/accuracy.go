package calc

import "github.com/bstrimzi/battlefactory/internal/rng"

// CheckAccuracy resolves whether a move hits. baseAccuracy==0 means the
// move never misses and consumes no RNG draw (e.g. Dragon Rage, status
// moves like Swords Dance). Otherwise exactly one draw in [0,100) is
// consumed and the move hits iff the draw is less than the effective
// accuracy.
func CheckAccuracy(src *rng.Source, baseAccuracy, accuracyStage, evasionStage int) bool {
	if baseAccuracy == 0 {
		return true
	}
	eff := EffectiveAccuracy(baseAccuracy, accuracyStage, evasionStage)
	draw := src.RandBelow(100)
	return int(draw) < eff
}
