// Package calc implements the pure Generation-III calculation kernels:
// stat derivation, stat-stage multipliers, effective speed, accuracy, type
// effectiveness lookups and the damage formula. Every function here is a
// deterministic function of its arguments (or of an explicit *rand.Rand
// draw) — no battle state is read or written.
package calc

// BaseStats are a species' six base stat values, in HP/Atk/Def/Spd/SpAtk/
// SpDef order.
type BaseStats struct {
	HP, Attack, Defense, Speed, SpAttack, SpDefense int
}

// IVSpread holds the six individual values, each in [0,31].
type IVSpread struct {
	HP, Attack, Defense, Speed, SpAttack, SpDefense int
}

// PerfectIVs returns the all-31 spread used by rental Pokémon.
func PerfectIVs() IVSpread {
	return IVSpread{31, 31, 31, 31, 31, 31}
}

// EVSpread holds the six effort values, each in [0,255], summing to at
// most 510.
type EVSpread struct {
	HP, Attack, Defense, Speed, SpAttack, SpDefense int
}

// Stats is a fully derived stat block at a given level.
type Stats struct {
	HP, Attack, Defense, Speed, SpAttack, SpDefense int
}

// NatureModFunc abstracts the nature-modifier lookup so this package does
// not need to import the data package's Nature type directly (keeps calc
// dependency-free of game-data specifics beyond plain integers).
type NatureMod struct {
	AttackNum, AttackDen     int
	DefenseNum, DefenseDen   int
	SpeedNum, SpeedDen       int
	SpAtkNum, SpAtkDen       int
	SpDefNum, SpDefDen       int
}

// CalcStats derives the six final stats from base stats, IVs, EVs, level
// and a resolved nature modifier. isShedinja forces HP to exactly 1
// regardless of the formula (Shedinja's signature quirk).
func CalcStats(base BaseStats, iv IVSpread, ev EVSpread, level int, nat NatureMod, isShedinja bool) Stats {
	hp := ((2*base.HP + iv.HP + ev.HP/4) * level / 100) + level + 10
	if isShedinja {
		hp = 1
	}

	other := func(baseStat, ivStat, evStat, num, den int) int {
		raw := ((2*baseStat + ivStat + evStat/4) * level / 100) + 5
		return raw * num / den
	}

	return Stats{
		HP:        hp,
		Attack:    other(base.Attack, iv.Attack, ev.Attack, nat.AttackNum, nat.AttackDen),
		Defense:   other(base.Defense, iv.Defense, ev.Defense, nat.DefenseNum, nat.DefenseDen),
		Speed:     other(base.Speed, iv.Speed, ev.Speed, nat.SpeedNum, nat.SpeedDen),
		SpAttack:  other(base.SpAttack, iv.SpAttack, ev.SpAttack, nat.SpAtkNum, nat.SpAtkDen),
		SpDefense: other(base.SpDefense, iv.SpDefense, ev.SpDefense, nat.SpDefNum, nat.SpDefDen),
	}
}
