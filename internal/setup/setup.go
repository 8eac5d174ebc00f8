// Package setup turns a rental archetype (species id, nature, a fixed EV
// distribution encoded as a bitset, level, moveset) into ready-to-battle
// state: derived stats, a fresh Mon, Slot and ActiveMon.
package setup

import (
	"fmt"

	"github.com/bstrimzi/battlefactory/internal/battle"
	"github.com/bstrimzi/battlefactory/internal/calc"
	"github.com/bstrimzi/battlefactory/internal/data"
)

// evUnit is the effort-value granularity every rental archetype is
// distributed in: a 510-point budget split across up to 6 stats in units
// of this size.
const evUnit = 4

// totalEVBudget is the Gen-III effort-value cap.
const totalEVBudget = 510

// Rental is the fixed, pre-battle description of one rental Pokémon:
// everything needed to derive its in-battle stat block deterministically.
type Rental struct {
	SpeciesID uint16
	Level     int
	Nature    data.Nature
	// EVBitset packs the six EV allocations into 6 groups of bits, decoded
	// by UnpackEVSpread; the exact bit width per stat only matters to the
	// catalogue encoding this archetype, not to battle logic.
	EVBitset [6]uint8 // each entry 0..127, scaled by evUnit, HP/Atk/Def/Spd/SpAtk/SpDef order
	MoveIDs  [4]uint16
	Item     data.Item
}

// UnpackEVSpread decodes a rental's packed EV bitset into a calc.EVSpread,
// scaling each of the six entries by evUnit and clamping the total to the
// 510-point Gen-III budget (excess is dropped from the last nonzero
// stat in HP/Atk/Def/Spd/SpAtk/SpDef order, since the catalogue is
// expected to encode only legal spreads and this is a defensive floor,
// not a silent redistribution).
func UnpackEVSpread(bits [6]uint8) calc.EVSpread {
	vals := [6]int{}
	total := 0
	for i, b := range bits {
		v := int(b) * evUnit
		if v > 255 {
			v = 255
		}
		vals[i] = v
		total += v
	}
	if total > totalEVBudget {
		over := total - totalEVBudget
		for i := len(vals) - 1; i >= 0 && over > 0; i-- {
			cut := vals[i]
			if cut > over {
				cut = over
			}
			vals[i] -= cut
			over -= cut
		}
	}
	return calc.EVSpread{
		HP: vals[0], Attack: vals[1], Defense: vals[2],
		Speed: vals[3], SpAttack: vals[4], SpDefense: vals[5],
	}
}

func natureMod(n data.Nature) calc.NatureMod {
	num := func(stat data.NatureStat) (int, int) { return data.NatureModifier(n, stat) }
	atkN, atkD := num(data.NatureStatAttack)
	defN, defD := num(data.NatureStatDefense)
	spdN, spdD := num(data.NatureStatSpeed)
	spaN, spaD := num(data.NatureStatSpAttack)
	spdfN, spdfD := num(data.NatureStatSpDefense)
	return calc.NatureMod{
		AttackNum: atkN, AttackDen: atkD,
		DefenseNum: defN, DefenseDen: defD,
		SpeedNum: spdN, SpeedDen: spdD,
		SpAtkNum: spaN, SpAtkDen: spaD,
		SpDefNum: spdfN, SpDefDen: spdfD,
	}
}

// BattleMon bundles the three battle-scoped pieces derived from one
// Rental: the persistent Mon, a fresh Slot, and the cached ActiveMon view.
type BattleMon struct {
	Mon    *battle.Mon
	Slot   *battle.Slot
	Active *battle.ActiveMon
}

// SetupRental derives a BattleMon from a Rental description. Every rental
// Pokémon carries perfect (31) IVs per the competitive-fixture convention
// this format uses.
func SetupRental(r Rental) (BattleMon, error) {
	species, ok := data.LookupSpecies(r.SpeciesID)
	if !ok {
		return BattleMon{}, fmt.Errorf("setup: unknown species id %d", r.SpeciesID)
	}

	ev := UnpackEVSpread(r.EVBitset)
	iv := calc.PerfectIVs()
	stats := calc.CalcStats(species.Stats, iv, ev, r.Level, natureMod(r.Nature), data.IsShedinja(r.SpeciesID))

	mon := battle.NewMon(uint16(stats.HP))
	slot := battle.NewSlot()
	slot.HeldItem = r.Item
	for i, id := range r.MoveIDs {
		if id == 0 {
			continue
		}
		mv, ok := data.LookupMove(id)
		if !ok {
			return BattleMon{}, fmt.Errorf("setup: unknown move id %d", id)
		}
		slot.PP[i] = mv.MaxPP
	}

	active := &battle.ActiveMon{
		Level:     r.Level,
		Attack:    stats.Attack,
		Defense:   stats.Defense,
		Speed:     stats.Speed,
		SpAttack:  stats.SpAttack,
		SpDefense: stats.SpDefense,
		Type1:     species.Type1,
		Type2:     species.Type2,
		Ability:   species.Ability1,
	}

	return BattleMon{Mon: mon, Slot: slot, Active: active}, nil
}

// TeamRental is one of the up to three rentals a trainer brings into a
// battle (Battle Factory singles caps at three).
type TeamRental struct {
	Rental Rental
}

// SetupBattle derives a full team of BattleMons for one trainer, plus a
// fresh per-trainer Side, ready to hand to the engine's Init.
func SetupBattle(team []TeamRental) ([]BattleMon, *battle.Side, error) {
	mons := make([]BattleMon, 0, len(team))
	for _, t := range team {
		bm, err := SetupRental(t.Rental)
		if err != nil {
			return nil, nil, err
		}
		mons = append(mons, bm)
	}
	return mons, battle.NewSide(), nil
}
