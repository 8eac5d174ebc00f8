package calc

import (
	"testing"

	"github.com/bstrimzi/battlefactory/internal/data"
	"github.com/bstrimzi/battlefactory/internal/rng"
)

// TestBaseDamageFormulaLevel50Power40 reproduces the canonical level-50,
// power-40, equal-100-stats worked example with the standard Gen-III
// formula used throughout this package: base damage before STAB is 19, and
// 28 once the same-type-attack bonus is applied. These numbers diverge
// from some published walkthroughs of this exact example (which give 12
// and 18) — recomputing the formula's own arithmetic by hand against the
// stated inputs consistently yields 19/28, so the engine and its tests
// both target the value the formula actually produces.
func TestBaseDamageFormulaLevel50Power40(t *testing.T) {
	level, power, atk, def := 50, 40, 100, 100
	base := ((2*level/5+2)*power*atk)/def/50 + 2
	if base != 19 {
		t.Fatalf("base damage = %d, want 19", base)
	}
	stab := base * 3 / 2
	if stab != 28 {
		t.Fatalf("STAB-applied damage = %d, want 28", stab)
	}
}

func TestCalculateDamageZeroEffectivenessDealsNoDamage(t *testing.T) {
	src := rng.New(12345)
	res := CalculateDamage(src, DamageParams{
		Level: 50, Power: 40, Attack: 100, Defense: 100,
		MoveType: data.TypeNormal, DefenderType1: data.TypeGhost,
		SkipRandom: true,
	})
	if res.Damage != 0 {
		t.Errorf("Normal vs Ghost should deal 0 damage, got %d", res.Damage)
	}
	if res.Effectiveness != 0 {
		t.Errorf("expected 0 effectiveness, got %d", res.Effectiveness)
	}
}

func TestCalculateDamageMinimumOneIfNotImmune(t *testing.T) {
	src := rng.New(1)
	res := CalculateDamage(src, DamageParams{
		Level: 1, Power: 1, Attack: 1, Defense: 255,
		MoveType: data.TypeNormal, DefenderType1: data.TypeRock, DefenderType2: data.TypeSteel,
		SkipRandom: true,
	})
	if res.Damage < 1 {
		t.Errorf("non-immune hit must deal at least 1 damage even when the formula rounds to 0, got %d", res.Damage)
	}
	if res.Effectiveness == 0 {
		t.Fatalf("test fixture invalid: Rock/Steel should be not-very-effective, not immune, against Normal")
	}
}

// TestCalculateDamageWithinExpectedBounds exercises the full formula
// (crit roll + variance roll both consuming real RNG draws) and checks the
// result falls within the two ranges the formula can legally produce — the
// non-critical 84%-100%-of-base range, or exactly double that for a
// critical hit — rather than asserting a single exact value that depends
// on the RNG's internal draw sequence.
func TestCalculateDamageWithinExpectedBounds(t *testing.T) {
	src := rng.New(777)
	p := DamageParams{
		Level: 50, Power: 40, Attack: 100, Defense: 100,
		MoveType: data.TypeNormal, AttackerType1: data.TypeNormal,
		DefenderType1: data.TypeNormal,
	}
	res := CalculateDamage(src, p)

	base := ((2*p.Level/5+2)*p.Power*p.Attack)/p.Defense/50 + 2
	stab := base * 3 / 2
	minNonCrit := stab * 85 / 100
	maxNonCrit := stab
	minCrit := stab * 2 * 85 / 100
	maxCrit := stab * 2

	inNonCritRange := int(res.Damage) >= minNonCrit && int(res.Damage) <= maxNonCrit
	inCritRange := int(res.Damage) >= minCrit && int(res.Damage) <= maxCrit
	if !inNonCritRange && !inCritRange {
		t.Errorf("damage %d outside both non-crit [%d,%d] and crit [%d,%d] ranges",
			res.Damage, minNonCrit, maxNonCrit, minCrit, maxCrit)
	}
	if res.Critical && !inCritRange {
		t.Errorf("Critical=true but damage %d not in crit range [%d,%d]", res.Damage, minCrit, maxCrit)
	}
	if !res.Critical && !inNonCritRange {
		t.Errorf("Critical=false but damage %d not in non-crit range [%d,%d]", res.Damage, minNonCrit, maxNonCrit)
	}
}

func TestCalculateDamageSaturatesAtUint16Max(t *testing.T) {
	src := rng.New(2)
	res := CalculateDamage(src, DamageParams{
		Level: 100, Power: 250, Attack: 999, Defense: 1,
		MoveType: data.TypeNormal, AttackerType1: data.TypeNormal,
		DefenderType1: data.TypeNormal,
		SkipRandom:    true,
	})
	if res.Damage > 0xFFFF {
		t.Errorf("damage must saturate at uint16 max, got %d", res.Damage)
	}
}
