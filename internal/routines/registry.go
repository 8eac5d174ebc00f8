// Package routines holds the effect registry: the map from a move's
// EffectTag to its compiled dsl.Effect. Any tag absent from the registry
// resolves to the basic Hit composition, satisfying the engine's
// fallback contract without requiring every one of the real Gen-III
// effect identifiers to be modeled.
package routines

import (
	"github.com/bstrimzi/battlefactory/internal/battle"
	"github.com/bstrimzi/battlefactory/internal/data"
	"github.com/bstrimzi/battlefactory/internal/dsl"
	"github.com/bstrimzi/battlefactory/internal/ops"
)

var fullDomains = dsl.Domains(dsl.DomainField, dsl.DomainSide, dsl.DomainSlot, dsl.DomainMon)

func compile(name string, root dsl.Node) dsl.Effect {
	return dsl.Compile(name, fullDomains, root)
}

var registry = map[data.EffectTag]dsl.Effect{}

// damagingChain is the common accuracy/damage/item-hook spine every
// straightforward attacking move shares: item hooks are ops in their own
// right so they land at the exact pipeline stage they need (just before
// the damage formula, just before it is applied, just after).
func damagingChain() []dsl.Node {
	return []dsl.Node{
		ops.CheckAccuracy(),
		ops.FireItemPreDamageCalc(),
		ops.CalculateDamage(),
		ops.FireItemPreDamageApply(),
		ops.ApplyDamage(),
		ops.FireItemPostDamageApply(),
	}
}

func init() {
	registry[data.EffectHit] = compile("Hit", Seq(append(damagingChain(),
		ops.CheckFaint(),
	)...))

	registry[data.EffectAbsorb] = compile("Absorb", Seq(append(damagingChain(),
		ops.DrainHalfHP(),
		ops.CheckFaintAfterEffect(),
	)...))

	recoilComposition := Seq(append(damagingChain(),
		ops.RecoilQuarter(),
		ops.CheckFaintAfterEffect(),
	)...)
	registry[data.EffectRecoil] = compile("Recoil", recoilComposition)
	registry[data.EffectDoubleEdge] = compile("DoubleEdge", recoilComposition)
	registry[data.EffectSubmission] = compile("Submission", recoilComposition)

	registry[data.EffectDragonRage] = compile("DragonRage", Seq(
		ops.CheckAccuracy(),
		ops.SetFixedDamage(40),
		ops.ApplyDamage(),
		ops.FireItemPostDamageApply(),
		ops.CheckFaint(),
	))

	registry[data.EffectPoisonHit] = compile("PoisonHit", Seq(append(damagingChain(),
		ops.TryApplyStatusFromMove(data.StatusPoison),
		ops.CheckFaint(),
	)...))

	registry[data.EffectRestoreHP] = compile("RestoreHP", Seq(
		ops.HealHalf(),
	))

	registry[data.EffectHaze] = compile("Haze", Seq(
		ops.ResetAllStats(),
	))

	registry[data.EffectAtkUp2] = compile("AtkUp2", Seq(
		ops.ModifyUserStat(battle.StatAttack, 2),
	))

	registry[data.EffectAtkDown] = compile("AtkDown", Seq(
		ops.CheckAccuracy(),
		ops.ModifyDefenderStat(battle.StatAttack, -1),
	))

	registry[data.EffectPoison] = compile("Poison", Seq(
		ops.CheckAccuracy(),
		ops.ApplyStatus(data.StatusPoison),
	))

	registry[data.EffectLightScreen] = compile("LightScreen", Seq(
		ops.SetLightScreen(),
	))

	registry[data.EffectReflect] = compile("Reflect", Seq(
		ops.SetReflect(),
	))

	registry[data.EffectSandstorm] = compile("Sandstorm", Seq(
		ops.SetWeather(data.WeatherSandstorm),
	))

	registry[data.EffectSunnyDay] = compile("SunnyDay", Seq(
		ops.SetWeather(data.WeatherSun),
	))

	registry[data.EffectRainDance] = compile("RainDance", Seq(
		ops.SetWeather(data.WeatherRain),
	))

	registry[data.EffectHail] = compile("Hail", Seq(
		ops.SetWeather(data.WeatherHail),
	))

	// Sky Attack charges on the first turn (no damage resolves) and
	// attacks on the second; the orchestrator re-enters this same
	// composition on the charge turn's follow-up, so the charging check
	// gates the whole attack half behind "charge already satisfied".
	registry[data.EffectSkyAttack] = compile("SkyAttack", Seq(
		Match(isChargeTurn, ops.BeginCharge(data.MoveSkyAttack)),
		Match(isAttackTurn, Seq(append([]dsl.Node{ops.ClearCharge()}, append(damagingChain(),
			ops.TryApplyFlinch(30),
			ops.CheckFaintAfterEffect(),
		)...)...)),
	))

	registry[data.EffectBatonPass] = compile("BatonPass", Seq(
		ops.RequestBatonPass(),
	))

	registry[data.EffectPursuit] = compile("Pursuit", Seq(append([]dsl.Node{ops.MarkPursuitReady()}, append(damagingChain(),
		ops.CheckFaint(),
	)...)...))

	registry[data.EffectPerishSong] = compile("PerishSong", Seq(
		ops.ApplyPerishSong(),
	))

	registry[data.EffectMagicCoat] = compile("MagicCoat", Seq(
		ops.SetMagicCoat(),
	))
}

func isChargeTurn(ctx *battle.Context) bool {
	return !ctx.Attacker.Slot.HasVolatile(battle.VolCharging)
}

func isAttackTurn(ctx *battle.Context) bool {
	return ctx.Attacker.Slot.HasVolatile(battle.VolCharging)
}

// Lookup returns the compiled effect for tag, falling back to the basic
// Hit composition for any tag the registry does not recognize.
func Lookup(tag data.EffectTag) dsl.Effect {
	if e, ok := registry[tag]; ok {
		return e
	}
	return registry[data.EffectHit]
}

// re-exported composition primitives so callers of this package never
// need to import internal/dsl directly for the common case.
var (
	Seq   = dsl.Seq
	Match = dsl.Match
)
