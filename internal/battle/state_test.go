package battle

import (
	"testing"

	"github.com/bstrimzi/battlefactory/internal/data"
)

func TestMonApplyDamageClampsAtZero(t *testing.T) {
	m := NewMon(50)
	m.ApplyDamage(100)
	if m.CurrentHP != 0 {
		t.Errorf("CurrentHP = %d, want 0", m.CurrentHP)
	}
	if !m.IsFainted() {
		t.Error("mon at 0 HP should report fainted")
	}
}

func TestMonHealClampsAtMaxHP(t *testing.T) {
	m := NewMon(50)
	m.ApplyDamage(40)
	m.Heal(100)
	if m.CurrentHP != 50 {
		t.Errorf("CurrentHP = %d, want 50 (clamped to max)", m.CurrentHP)
	}
}

func TestMonOnSwitchInResetsToxicCounter(t *testing.T) {
	m := NewMon(100)
	m.Status = data.StatusToxic
	m.ToxicTurns = 5
	m.OnSwitchIn()
	if m.ToxicTurns != 1 {
		t.Errorf("ToxicTurns after switch-in = %d, want 1", m.ToxicTurns)
	}
}

func TestSlotStageRoundTrip(t *testing.T) {
	s := NewSlot()
	s.SetStage(StatAttack, 3)
	if got := s.Stage(StatAttack); got != 3 {
		t.Errorf("Stage(StatAttack) = %d, want 3", got)
	}
}

func TestSlotVolatileFlags(t *testing.T) {
	s := NewSlot()
	if s.HasVolatile(VolConfused) {
		t.Fatal("fresh slot should have no volatiles")
	}
	s.SetVolatile(VolConfused)
	if !s.HasVolatile(VolConfused) {
		t.Error("VolConfused should be set")
	}
	s.ClearVolatile(VolConfused)
	if s.HasVolatile(VolConfused) {
		t.Error("VolConfused should be cleared")
	}
}

func TestResetOnSwitchOutDropsVolatilesWithoutBatonPass(t *testing.T) {
	s := NewSlot()
	s.SetStage(StatAttack, 6)
	s.SetVolatile(VolLeechSeed)
	s.SetVolatile(VolConfused)

	fresh := s.ResetOnSwitchOut(false)

	if fresh.Stage(StatAttack) != 0 {
		t.Error("non-baton-pass switch should reset stat stages")
	}
	if fresh.HasVolatile(VolLeechSeed) || fresh.HasVolatile(VolConfused) {
		t.Error("non-baton-pass switch should clear all volatiles")
	}
}

func TestResetOnSwitchOutCarriesBatonPassSubset(t *testing.T) {
	s := NewSlot()
	s.SetStage(StatAttack, 6)
	s.SetVolatile(VolLeechSeed)  // carried
	s.SetVolatile(VolFlinched)   // not carried

	fresh := s.ResetOnSwitchOut(true)

	if fresh.Stage(StatAttack) != 6 {
		t.Error("baton pass should carry stat stages")
	}
	if !fresh.HasVolatile(VolLeechSeed) {
		t.Error("baton pass should carry leech seed")
	}
	if fresh.HasVolatile(VolFlinched) {
		t.Error("baton pass should not carry flinch")
	}
}

func TestHasSubstituteRequiresHPRemaining(t *testing.T) {
	s := NewSlot()
	s.SetVolatile(VolSubstitute)
	s.SubstituteHP = 0
	if s.HasSubstitute() {
		t.Error("substitute with 0 HP should report false")
	}
	s.SubstituteHP = 10
	if !s.HasSubstitute() {
		t.Error("substitute with HP remaining should report true")
	}
}

func TestSideScreenTimers(t *testing.T) {
	s := NewSide()
	if s.HasReflect() {
		t.Fatal("fresh side should have no reflect")
	}
	s.ReflectTurns = 2
	if !s.HasReflect() {
		t.Error("HasReflect should be true with turns remaining")
	}
	s.TickScreens()
	if s.ReflectTurns != 1 {
		t.Errorf("ReflectTurns after tick = %d, want 1", s.ReflectTurns)
	}
	s.TickScreens()
	if s.HasReflect() {
		t.Error("reflect should expire once turns reach 0")
	}
}

func TestFieldWeatherTicksDownAndClears(t *testing.T) {
	f := NewField()
	f.Weather = data.WeatherRain
	f.WeatherTurns = 1
	f.TickWeather()
	if f.Weather != data.WeatherNone {
		t.Errorf("weather should clear once turns reach 0, got %v", f.Weather)
	}
}
