package calc

import (
	"github.com/bstrimzi/battlefactory/internal/data"
	"github.com/bstrimzi/battlefactory/internal/rng"
)

// DamageParams are the fully-resolved inputs to the damage formula. Item
// hooks (e.g. Choice Band, Scope Lens) mutate a value like this just
// before CalculateDamage runs — see internal/ops.CalculateDamage.
type DamageParams struct {
	Level int
	Power int

	Attack       int
	Defense      int
	AttackStage  int
	DefenseStage int

	MoveType                       data.Type
	AttackerType1, AttackerType2   data.Type
	DefenderType1, DefenderType2   data.Type

	CritStage int

	// SkipRandom bypasses the random-variance roll (used by deterministic
	// test fixtures, mirroring the original engine's smoke-test flag).
	SkipRandom bool
}

// Result is the outcome of one damage calculation.
type Result struct {
	Damage        uint16
	Effectiveness int // scaled so 100 == neutral (data.DualNeutral)
	Critical      bool
}

// CalculateDamage runs the nine-step Gen-III damage pipeline described in
// the engine's design: resolve crit, apply stat stages (crits ignore a
// negative attacker stage / positive defender stage), base power formula,
// crit multiplier, STAB, type effectiveness, random variance, the
// zero-effectiveness floor, and u16 saturation.
func CalculateDamage(src *rng.Source, p DamageParams) Result {
	critical := RollCritical(src, p.CritStage)

	atkStage := p.AttackStage
	defStage := p.DefenseStage
	if critical {
		if atkStage < 0 {
			atkStage = 0
		}
		if defStage > 0 {
			defStage = 0
		}
	}
	atk := ApplyStatStage(p.Attack, atkStage)
	def := ApplyStatStage(p.Defense, defStage)
	if def < 1 {
		def = 1
	}
	if atk < 1 {
		atk = 1
	}

	base := ((2*p.Level/5 + 2) * p.Power * atk) / def / 50
	base += 2

	dmg := int64(base)
	if critical {
		dmg *= 2
	}

	if p.MoveType == p.AttackerType1 || (p.AttackerType2 != data.TypeNone && p.MoveType == p.AttackerType2) {
		dmg = dmg * 3 / 2
	}

	eff := data.TypeEffectiveness(p.MoveType, p.DefenderType1, p.DefenderType2)
	dmg = dmg * int64(eff) / data.DualNeutral

	if !p.SkipRandom {
		draw := src.RandBelow(16)
		dmg = dmg * int64(100-draw) / 100
	}

	if eff != 0 && dmg < 1 {
		dmg = 1
	}
	if eff == 0 {
		dmg = 0
	}
	if dmg > 0xFFFF {
		dmg = 0xFFFF
	}

	return Result{Damage: uint16(dmg), Effectiveness: eff, Critical: critical}
}
