// Package ops implements the canonical atomic operations every registered
// effect composes from. Each constructor returns a dsl.Op whose Run
// closure mutates a *battle.Context using internal/calc and internal/data;
// none of them know about any other op or about move identity beyond what
// the context already carries.
package ops

import (
	"github.com/bstrimzi/battlefactory/internal/battle"
	"github.com/bstrimzi/battlefactory/internal/calc"
	"github.com/bstrimzi/battlefactory/internal/data"
	"github.com/bstrimzi/battlefactory/internal/dsl"
	"github.com/bstrimzi/battlefactory/internal/item"
)

func statDomains() dsl.DomainMask {
	return dsl.Domains(dsl.DomainSlot)
}

// FireItemPreDamageCalc runs the attacker's held-item hook just before the
// damage formula resolves (Choice Band's attack boost, Scope Lens' crit
// bump) — it is a pipeline op in its own right so it lands between
// CheckAccuracy and CalculateDamage rather than outside the pipeline
// entirely.
func FireItemPreDamageCalc() dsl.Op {
	return dsl.Op{
		Name:        "FireItemPreDamageCalc",
		InputStage:  dsl.AccuracyResolved,
		OutputStage: dsl.AccuracyResolved,
		Domains:     dsl.Domains(dsl.DomainSlot, dsl.DomainTransient),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed {
				return
			}
			item.FirePreDamageCalc(ctx)
		},
	}
}

// FireItemPreDamageApply runs the defender's held-item hook just before
// damage is subtracted from HP (Focus Band's survive-at-1 roll), so it
// must run strictly after CalculateDamage and strictly before ApplyDamage.
func FireItemPreDamageApply() dsl.Op {
	return dsl.Op{
		Name:        "FireItemPreDamageApply",
		InputStage:  dsl.DamageCalculated,
		OutputStage: dsl.DamageCalculated,
		Domains:     dsl.Domains(dsl.DomainMon, dsl.DomainTransient),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed || ctx.Result.Failed {
				return
			}
			item.FirePreDamageApply(ctx)
		},
	}
}

// FireItemPostDamageApply runs both combatants' post-damage hooks (King's
// Rock's flinch roll, Shell Bell's drain) right after HP is subtracted.
func FireItemPostDamageApply() dsl.Op {
	return dsl.Op{
		Name:        "FireItemPostDamageApply",
		InputStage:  dsl.DamageApplied,
		OutputStage: dsl.DamageApplied,
		Domains:     dsl.Domains(dsl.DomainMon, dsl.DomainSlot, dsl.DomainTransient),
		Run: func(ctx *battle.Context) {
			item.FirePostDamageApply(ctx)
		},
	}
}

// CheckAccuracy rolls the move's accuracy against the attacker's accuracy
// stage and the defender's evasion stage, writing ctx.Result.Missed. A
// base accuracy of 0 ("never misses") consumes no RNG draw.
func CheckAccuracy() dsl.Op {
	return dsl.Op{
		Name:        "CheckAccuracy",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.AccuracyResolved,
		Domains:     dsl.Domains(dsl.DomainSlot, dsl.DomainTransient),
		Run: func(ctx *battle.Context) {
			accStage := ctx.Attacker.Slot.Stage(battle.StatAccuracy)
			evaStage := ctx.Defender.Slot.Stage(battle.StatEvasion)
			hit := calc.CheckAccuracy(ctx.RNG, ctx.Move.Accuracy, accStage, evaStage)
			ctx.Result.Missed = !hit
		},
	}
}

// CalculateDamage runs the full damage formula and writes
// ctx.Result.Damage / Effectiveness / Critical. It is a no-op if the move
// already missed.
func CalculateDamage() dsl.Op {
	return dsl.Op{
		Name:        "CalculateDamage",
		InputStage:  dsl.AccuracyResolved,
		OutputStage: dsl.DamageCalculated,
		Domains:     dsl.Domains(dsl.DomainSlot, dsl.DomainTransient),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed {
				return
			}
			atk := ctx.Attacker
			def := ctx.Defender
			attack := atk.Active.Attack
			defense := def.Active.Defense
			if !ctx.Move.Type.IsPhysical() {
				attack = atk.Active.SpAttack
				defense = def.Active.SpDefense
			}
			if ctx.Override.Attack != 0 {
				attack = ctx.Override.Attack
			}
			if ctx.Override.Defense != 0 {
				defense = ctx.Override.Defense
			}
			atkStatKind := battle.StatAttack
			defStatKind := battle.StatDefense
			if !ctx.Move.Type.IsPhysical() {
				atkStatKind = battle.StatSpAttack
				defStatKind = battle.StatSpDefense
			}
			res := calc.CalculateDamage(ctx.RNG, calc.DamageParams{
				Level:         atk.Active.Level,
				Power:         ctx.EffectivePower(),
				Attack:        attack,
				Defense:       defense,
				AttackStage:   atk.Slot.Stage(atkStatKind),
				DefenseStage:  def.Slot.Stage(defStatKind),
				MoveType:      ctx.Move.Type,
				AttackerType1: atk.Active.Type1,
				AttackerType2: atk.Active.Type2,
				DefenderType1: def.Active.Type1,
				DefenderType2: def.Active.Type2,
				CritStage:     critStageFor(ctx),
			})
			ctx.Result.Damage = res.Damage
			ctx.Result.Effectiveness = res.Effectiveness
			ctx.Result.Critical = res.Critical
			if res.Effectiveness == 0 {
				ctx.Result.Failed = true
			}
		},
	}
}

// critStageFor sums every source of bonus critical-hit stage: Focus
// Energy's volatile (+2) plus any transient bonus an item hook staged for
// this move (Scope Lens's +1). High-crit-ratio moves and signature items
// (Lucky Punch, Stick) are not modeled in the fixed move/item tables.
func critStageFor(ctx *battle.Context) int {
	stage := 0
	if ctx.Attacker.Slot.HasVolatile(battle.VolFocusEnergy) {
		stage += 2
	}
	stage += ctx.Override.CritStageBonus
	return calc.ClampCritStage(stage)
}

// SetFixedDamage sets a flat, formula-bypassing damage amount (Dragon
// Rage / Sonic Boom style fixed-damage moves).
func SetFixedDamage(amount uint16) dsl.Op {
	return dsl.Op{
		Name:        "SetFixedDamage",
		InputStage:  dsl.AccuracyResolved,
		OutputStage: dsl.DamageCalculated,
		Domains:     dsl.Domains(dsl.DomainTransient),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed {
				return
			}
			ctx.Result.Damage = amount
			ctx.Result.Effectiveness = data.DualNeutral
		},
	}
}

// ApplyDamage subtracts ctx.Result.Damage from the defender's current HP
// and records it against the per-turn damage-taken tracking the defender's
// slot keeps (used by Counter/Mirror Coat-style lookback, out of scope
// here but tracked for future use).
func ApplyDamage() dsl.Op {
	return dsl.Op{
		Name:        "ApplyDamage",
		InputStage:  dsl.DamageCalculated,
		OutputStage: dsl.DamageApplied,
		Domains:     dsl.Domains(dsl.DomainMon, dsl.DomainSlot),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed || ctx.Result.Failed || ctx.Result.Damage == 0 {
				return
			}
			def := ctx.Defender
			def.Mon.ApplyDamage(ctx.Result.Damage)
			if ctx.Move.Type.IsPhysical() {
				def.Slot.PhysicalDamageTaken = ctx.Result.Damage
			} else {
				def.Slot.SpecialDamageTaken = ctx.Result.Damage
			}
			def.Slot.DamageTakenBySlot[ctx.Attacker.SlotID] = uint8(ctx.Attacker.SlotID)
		},
	}
}

// DrainHP heals the attacker by numerator/denominator of the damage just
// dealt (Absorb-style moves).
func DrainHP(numerator, denominator uint16) dsl.Op {
	return dsl.Op{
		Name:        "DrainHP",
		InputStage:  dsl.DamageApplied,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainMon),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed || ctx.Result.Damage == 0 {
				return
			}
			amount := uint32(ctx.Result.Damage) * uint32(numerator) / uint32(denominator)
			if amount == 0 {
				amount = 1
			}
			ctx.Attacker.Mon.Heal(uint16(amount))
		},
	}
}

// DrainHalfHP is DrainHP(1,2), the common Mega Drain/Giga Drain ratio.
func DrainHalfHP() dsl.Op { return DrainHP(1, 2) }

// Recoil damages the attacker by numerator/denominator of the damage just
// dealt (Take Down/Double-Edge/Submission-style moves).
func Recoil(numerator, denominator uint16) dsl.Op {
	return dsl.Op{
		Name:        "Recoil",
		InputStage:  dsl.DamageApplied,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainMon),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed || ctx.Result.Damage == 0 {
				return
			}
			amount := uint32(ctx.Result.Damage) * uint32(numerator) / uint32(denominator)
			if amount == 0 {
				amount = 1
			}
			ctx.Attacker.Mon.ApplyDamage(uint16(amount))
		},
	}
}

// RecoilQuarter is Recoil(1,4), the Take Down/Double-Edge/Submission ratio.
func RecoilQuarter() dsl.Op { return Recoil(1, 4) }

// HealUser restores numerator/denominator of the user's max HP.
func HealUser(numerator, denominator uint16) dsl.Op {
	return dsl.Op{
		Name:        "HealUser",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainMon),
		Run: func(ctx *battle.Context) {
			amount := uint32(ctx.Attacker.Mon.MaxHP) * uint32(numerator) / uint32(denominator)
			ctx.Attacker.Mon.Heal(uint16(amount))
		},
	}
}

// HealHalf is HealUser(1,2), the Recover/Soft-Boiled/Milk Drink ratio.
func HealHalf() dsl.Op { return HealUser(1, 2) }

// CheckFaint marks the defender's FaintChecked transition; the engine
// reads Mon.IsFainted() after the pipeline completes to decide whether a
// switch-in is required. It exists as an explicit op so every composition
// passes through FaintChecked even when no damage was dealt.
func CheckFaint() dsl.Op {
	return dsl.Op{
		Name:        "CheckFaint",
		InputStage:  dsl.DamageApplied,
		OutputStage: dsl.FaintChecked,
		Domains:     dsl.Domains(dsl.DomainTransient),
		Run:         func(ctx *battle.Context) {},
	}
}

// CheckFaintAfterEffect is CheckFaint positioned after EffectApplied, for
// compositions where a secondary effect (recoil, drain) can itself cause
// a faint that must still be observed before Terminus.
func CheckFaintAfterEffect() dsl.Op {
	return dsl.Op{
		Name:        "CheckFaintAfterEffect",
		InputStage:  dsl.EffectApplied,
		OutputStage: dsl.FaintChecked,
		Domains:     dsl.Domains(dsl.DomainTransient),
		Run:         func(ctx *battle.Context) {},
	}
}

func modifyStage(slot *battle.Slot, kind battle.StatKind, delta int) {
	slot.SetStage(kind, calc.ClampStage(slot.Stage(kind)+delta))
}

// ModifyUserStat changes the attacker's own stat stage by delta.
func ModifyUserStat(kind battle.StatKind, delta int) dsl.Op {
	return dsl.Op{
		Name:        "ModifyUserStat",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     statDomains(),
		Run: func(ctx *battle.Context) {
			modifyStage(ctx.Attacker.Slot, kind, delta)
		},
	}
}

// ModifyDefenderStat unconditionally changes the defender's stat stage by
// delta (used when the move's own accuracy check is the only gate, e.g.
// Growl-family non-chance stat moves routed through the accuracy stage).
func ModifyDefenderStat(kind battle.StatKind, delta int) dsl.Op {
	return dsl.Op{
		Name:        "ModifyDefenderStat",
		InputStage:  dsl.AccuracyResolved,
		OutputStage: dsl.EffectApplied,
		Domains:     statDomains(),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed || ctx.DefenderHasSubstitute() {
				return
			}
			modifyStage(ctx.Defender.Slot, kind, delta)
		},
	}
}

// TryModifyDefenderStat rolls chancePercent (0-100) and, on success,
// changes the defender's stat stage by delta — the secondary-effect shape
// used by moves like Rock Slide's (Gen-III doesn't have this exact one,
// but Poison Sting-style chance secondaries reuse this same op against
// ApplyStatus instead).
func TryModifyDefenderStat(kind battle.StatKind, delta int, chancePercent int) dsl.Op {
	return dsl.Op{
		Name:        "TryModifyDefenderStat",
		InputStage:  dsl.DamageApplied,
		OutputStage: dsl.EffectApplied,
		Domains:     statDomains(),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed || ctx.DefenderHasSubstitute() {
				return
			}
			if !ctx.RNG.Chance(uint16(chancePercent), 100) {
				return
			}
			modifyStage(ctx.Defender.Slot, kind, delta)
		},
	}
}

// ResetAllStats (Haze) zeroes every stat/accuracy/evasion stage on both
// active slots.
func ResetAllStats() dsl.Op {
	return dsl.Op{
		Name:        "ResetAllStats",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     statDomains(),
		Run: func(ctx *battle.Context) {
			for _, c := range ctx.AllSlots {
				c.Slot.Stages = [7]int{}
			}
		},
	}
}

// sleepDuration rolls a Gen-III sleep timer of 1-3 turns (inclusive),
// consuming one RNG draw.
func sleepDuration(src interface{ RandBelow(uint16) uint16 }) int {
	return int(src.RandBelow(3)) + 1
}

// ApplyStatus applies status unconditionally to the defender if it has no
// status already and no substitute is blocking it.
func ApplyStatus(status data.Status) dsl.Op {
	return dsl.Op{
		Name:        "ApplyStatusMove",
		InputStage:  dsl.AccuracyResolved,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainMon),
		Run: func(ctx *battle.Context) {
			applyStatusTo(ctx, ctx.Defender, status, 100)
		},
	}
}

// TryApplyStatus rolls chancePercent and, on success, applies status to
// the defender as a move's secondary effect (e.g. Poison Hit's 30%
// poison chance).
func TryApplyStatus(status data.Status, chancePercent int) dsl.Op {
	return dsl.Op{
		Name:        "TryApplyStatus",
		InputStage:  dsl.DamageApplied,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainMon),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed || ctx.Result.Failed {
				return
			}
			if !ctx.RNG.Chance(uint16(chancePercent), 100) {
				return
			}
			applyStatusTo(ctx, ctx.Defender, status, 100)
		},
	}
}

// TryApplyStatusFromMove is TryApplyStatus but reads its chance from the
// resolving move's own EffectChance field at runtime rather than a
// compile-time constant, so one composition serves every move that uses
// this secondary-status shape regardless of its specific percentage.
func TryApplyStatusFromMove(status data.Status) dsl.Op {
	return dsl.Op{
		Name:        "TryApplyStatusFromMove",
		InputStage:  dsl.DamageApplied,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainMon),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed || ctx.Result.Failed {
				return
			}
			if ctx.Move == nil || ctx.Move.EffectChance <= 0 {
				return
			}
			if !ctx.RNG.Chance(uint16(ctx.Move.EffectChance), 100) {
				return
			}
			applyStatusTo(ctx, ctx.Defender, status, 100)
		},
	}
}

func applyStatusTo(ctx *battle.Context, target *battle.Combatant, status data.Status, gatePercent int) {
	if ctx.DefenderHasSubstitute() && target == ctx.Defender {
		return
	}
	if target.Mon.Status != data.StatusNone {
		return
	}
	target.Mon.Status = status
	if status == data.StatusSleep {
		target.Mon.SleepTurns = sleepDuration(ctx.RNG)
	}
	if status == data.StatusToxic {
		target.Mon.ToxicTurns = 1
	}
	ctx.Result.StatusApplied = true
}

// TryApplyFlinch rolls chancePercent and sets the defender's flinch
// volatile on success. Flinch only prevents the flinched slot's action
// if it has not already moved this turn — the orchestrator checks that.
func TryApplyFlinch(chancePercent int) dsl.Op {
	return dsl.Op{
		Name:        "TryApplyFlinch",
		InputStage:  dsl.DamageApplied,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSlot),
		Run: func(ctx *battle.Context) {
			if ctx.Result.Missed || ctx.Result.Failed {
				return
			}
			if !ctx.RNG.Chance(uint16(chancePercent), 100) {
				return
			}
			ctx.Defender.Slot.SetVolatile(battle.VolFlinched)
		},
	}
}

// BeginCharge marks the attacker as mid-charge for a two-turn move
// (Sky Attack, Dig, etc), recording the real move id being charged.
func BeginCharge(moveID uint16) dsl.Op {
	return dsl.Op{
		Name:        "BeginCharge",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSlot),
		Run: func(ctx *battle.Context) {
			ctx.Attacker.Slot.SetVolatile(battle.VolCharging)
			ctx.Attacker.Slot.ChargingMove = moveID
		},
	}
}

// ClearCharge clears the charging state, called once the charged turn's
// attack resolves.
func ClearCharge() dsl.Op {
	return dsl.Op{
		Name:        "ClearCharge",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSlot),
		Run: func(ctx *battle.Context) {
			ctx.Attacker.Slot.ClearVolatile(battle.VolCharging)
			ctx.Attacker.Slot.ChargingMove = 0
		},
	}
}

const weatherDuration = 5

// SetWeather sets the field's weather for the standard five-turn duration.
func SetWeather(w data.Weather) dsl.Op {
	return dsl.Op{
		Name:        "SetWeather",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainField),
		Run: func(ctx *battle.Context) {
			ctx.Field.Weather = w
			ctx.Field.WeatherTurns = weatherDuration
		},
	}
}

const (
	screenDuration    = 5
	safeguardDuration = 5
	mistDuration      = 5
)

// SetReflect raises the attacker's side's physical-damage screen.
func SetReflect() dsl.Op {
	return dsl.Op{
		Name:        "SetReflect",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSide),
		Run: func(ctx *battle.Context) {
			if ctx.Attacker.Side.HasReflect() {
				ctx.Result.Failed = true
				return
			}
			ctx.Attacker.Side.ReflectTurns = screenDuration
		},
	}
}

// SetLightScreen raises the attacker's side's special-damage screen.
func SetLightScreen() dsl.Op {
	return dsl.Op{
		Name:        "SetLightScreen",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSide),
		Run: func(ctx *battle.Context) {
			if ctx.Attacker.Side.HasLightScreen() {
				ctx.Result.Failed = true
				return
			}
			ctx.Attacker.Side.LightScreenTurns = screenDuration
		},
	}
}

// SetSafeguard protects the attacker's side from status conditions.
func SetSafeguard() dsl.Op {
	return dsl.Op{
		Name:        "SetSafeguard",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSide),
		Run: func(ctx *battle.Context) {
			ctx.Attacker.Side.SafeguardTurns = safeguardDuration
		},
	}
}

// SetMist protects the attacker's side from stat drops.
func SetMist() dsl.Op {
	return dsl.Op{
		Name:        "SetMist",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSide),
		Run: func(ctx *battle.Context) {
			ctx.Attacker.Side.MistTurns = mistDuration
		},
	}
}

const maxSpikesLayers = 3

// AddSpikes layers one more Spikes entry hazard on the defender's side, up
// to the three-layer cap.
func AddSpikes() dsl.Op {
	return dsl.Op{
		Name:        "AddSpikes",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSide),
		Run: func(ctx *battle.Context) {
			if ctx.Defender.Side.SpikesLayers >= maxSpikesLayers {
				ctx.Result.Failed = true
				return
			}
			ctx.Defender.Side.SpikesLayers++
		},
	}
}

// SetMagicCoat arms the attacker to reflect the next status move targeted
// at it back at its user.
func SetMagicCoat() dsl.Op {
	return dsl.Op{
		Name:        "SetMagicCoat",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSlot),
		Run: func(ctx *battle.Context) {
			ctx.Attacker.Slot.BounceMove = true
		},
	}
}

// RequestBatonPass signals the engine that the attacker is switching out
// while carrying its baton-pass-eligible volatiles forward.
func RequestBatonPass() dsl.Op {
	return dsl.Op{
		Name:        "RequestBatonPass",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainTransient),
		Run: func(ctx *battle.Context) {
			ctx.Result.SwitchOut = true
			ctx.Result.BatonPass = true
		},
	}
}

// MarkPursuitReady records that the attacker used Pursuit against an
// opponent that declared a switch this turn, which the orchestrator uses
// to resolve the move before the switch completes.
func MarkPursuitReady() dsl.Op {
	return dsl.Op{
		Name:        "MarkPursuitReady",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.Genesis,
		Domains:     dsl.Domains(dsl.DomainTransient),
		Run: func(ctx *battle.Context) {
			ctx.Result.PursuitIntercept = true
			ctx.Result.PursuitUserSlotID = ctx.Attacker.SlotID
		},
	}
}

const perishSongTurns = 3

// ApplyPerishSong sets the perish-song countdown on every active
// combatant that does not already have one running.
func ApplyPerishSong() dsl.Op {
	return dsl.Op{
		Name:        "ApplyPerishSong",
		InputStage:  dsl.Genesis,
		OutputStage: dsl.EffectApplied,
		Domains:     dsl.Domains(dsl.DomainSlot),
		Run: func(ctx *battle.Context) {
			for _, c := range ctx.AllSlots {
				if !c.Slot.HasVolatile(battle.VolPerishSong) {
					c.Slot.SetVolatile(battle.VolPerishSong)
					c.Slot.PerishCount = perishSongTurns
				}
			}
		},
	}
}
