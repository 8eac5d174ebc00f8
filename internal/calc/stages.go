package calc

// statStageRatio is indexed by stage+6 (0..12), giving (numerator,
// denominator) pairs for stat stages -6..+6.
var statStageRatio = [13][2]int{
	{10, 40}, {10, 35}, {10, 30}, {10, 25}, {10, 20}, {10, 15},
	{10, 10},
	{15, 10}, {20, 10}, {25, 10}, {30, 10}, {35, 10}, {40, 10},
}

// accuracyStageRatio / evasionStageRatio are indexed by stage+6, giving the
// accuracy-side and evasion-side (numerator, denominator) pairs used to
// build the effective-accuracy ratio.
var accuracyStageRatio = [13][2]int{
	{3, 9}, {3, 8}, {3, 7}, {3, 6}, {3, 5}, {3, 4},
	{3, 3},
	{4, 3}, {5, 3}, {6, 3}, {7, 3}, {8, 3}, {9, 3},
}

// ClampStage clamps a stat/accuracy/evasion stage to the legal [-6,+6]
// range.
func ClampStage(stage int) int {
	if stage < -6 {
		return -6
	}
	if stage > 6 {
		return 6
	}
	return stage
}

// ApplyStatStage applies a stat's stage multiplier to a base stat value.
func ApplyStatStage(stat, stage int) int {
	r := statStageRatio[ClampStage(stage)+6]
	return stat * r[0] / r[1]
}

// EffectiveSpeed applies the speed stat's stage and halves it (floor
// division) if the mon is paralysed. Quick Claw never factors into this
// calculation — it is an orchestrator-level tie-break signal applied
// separately.
func EffectiveSpeed(speed, speedStage int, paralysed bool) int {
	s := ApplyStatStage(speed, speedStage)
	if paralysed {
		s = s / 4
	}
	return s
}

// EffectiveAccuracy combines a move's base accuracy with the attacker's
// accuracy stage and the defender's evasion stage, clamped to 100. A base
// accuracy of 0 means "never misses" and the caller must not consume an
// RNG draw for it.
func EffectiveAccuracy(baseAccuracy, accuracyStage, evasionStage int) int {
	if baseAccuracy == 0 {
		return 0
	}
	accR := accuracyStageRatio[ClampStage(accuracyStage)+6]
	evaR := accuracyStageRatio[ClampStage(evasionStage)+6]
	eff := baseAccuracy * accR[0] * evaR[1] / (accR[1] * evaR[0])
	if eff > 100 {
		eff = 100
	}
	return eff
}
