package calc

import "testing"

func TestCalcStatsNeutralNature(t *testing.T) {
	base := BaseStats{HP: 100, Attack: 100, Defense: 100, Speed: 100, SpAttack: 100, SpDefense: 100}
	iv := PerfectIVs()
	ev := EVSpread{}
	neutral := NatureMod{AttackNum: 10, AttackDen: 10, DefenseNum: 10, DefenseDen: 10,
		SpeedNum: 10, SpeedDen: 10, SpAtkNum: 10, SpAtkDen: 10, SpDefNum: 10, SpDefDen: 10}

	got := CalcStats(base, iv, ev, 50, neutral, false)

	wantHP := ((2*100+31+0)*50/100) + 50 + 10
	if got.HP != wantHP {
		t.Errorf("HP = %d, want %d", got.HP, wantHP)
	}
	wantOther := ((2*100+31+0)*50/100) + 5
	if got.Attack != wantOther {
		t.Errorf("Attack = %d, want %d", got.Attack, wantOther)
	}
}

func TestCalcStatsShedinjaForcesOneHP(t *testing.T) {
	base := BaseStats{HP: 1, Attack: 90, Defense: 45, Speed: 40, SpAttack: 30, SpDefense: 30}
	iv := PerfectIVs()
	ev := EVSpread{}
	neutral := NatureMod{AttackNum: 10, AttackDen: 10, DefenseNum: 10, DefenseDen: 10,
		SpeedNum: 10, SpeedDen: 10, SpAtkNum: 10, SpAtkDen: 10, SpDefNum: 10, SpDefDen: 10}

	got := CalcStats(base, iv, ev, 100, neutral, true)

	if got.HP != 1 {
		t.Errorf("Shedinja HP = %d, want 1", got.HP)
	}
}

func TestCalcStatsNatureRaisesAndLowers(t *testing.T) {
	base := BaseStats{Attack: 100, Defense: 100}
	iv := IVSpread{}
	ev := EVSpread{}
	adamant := NatureMod{AttackNum: 11, AttackDen: 10, DefenseNum: 9, DefenseDen: 10}

	got := CalcStats(base, iv, ev, 100, adamant, false)

	raw := ((2*100)*100/100) + 5
	wantAttack := raw * 11 / 10
	wantDefense := raw * 9 / 10
	if got.Attack != wantAttack {
		t.Errorf("Attack = %d, want %d", got.Attack, wantAttack)
	}
	if got.Defense != wantDefense {
		t.Errorf("Defense = %d, want %d", got.Defense, wantDefense)
	}
	if wantAttack <= wantDefense {
		t.Fatalf("test fixture invalid: expected raised attack to exceed lowered defense")
	}
}
