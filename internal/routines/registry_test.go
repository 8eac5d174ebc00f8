package routines

import (
	"testing"

	"github.com/bstrimzi/battlefactory/internal/data"
)

func TestLookupFallsBackToHitForUnknownTag(t *testing.T) {
	unknown := data.EffectTag("SPLASH")
	got := Lookup(unknown)
	want := Lookup(data.EffectHit)
	if got.Name != want.Name {
		t.Errorf("Lookup(unknown) = %q, want fallback to %q", got.Name, want.Name)
	}
}

func TestLookupReturnsRegisteredEffect(t *testing.T) {
	eff := Lookup(data.EffectRecoil)
	if eff.Name != "Recoil" {
		t.Errorf("Lookup(EffectRecoil).Name = %q, want %q", eff.Name, "Recoil")
	}
}

func TestAllRegisteredEffectsCompiledWithoutPanicking(t *testing.T) {
	// init() already ran by the time this test executes; a bad composition
	// would have panicked at package load, so this just asserts the
	// registry actually populated every tag it claims to.
	tags := []data.EffectTag{
		data.EffectHit, data.EffectAbsorb, data.EffectRecoil, data.EffectDoubleEdge,
		data.EffectSubmission, data.EffectDragonRage, data.EffectPoisonHit,
		data.EffectRestoreHP, data.EffectHaze, data.EffectAtkUp2, data.EffectAtkDown,
		data.EffectPoison, data.EffectLightScreen, data.EffectReflect, data.EffectSandstorm,
		data.EffectSunnyDay, data.EffectRainDance, data.EffectHail, data.EffectSkyAttack,
		data.EffectBatonPass, data.EffectPursuit, data.EffectPerishSong, data.EffectMagicCoat,
	}
	for _, tag := range tags {
		if _, ok := registry[tag]; !ok {
			t.Errorf("tag %v missing from registry", tag)
		}
	}
}
