package battle

import (
	"github.com/bstrimzi/battlefactory/internal/data"
	"github.com/bstrimzi/battlefactory/internal/rng"
)

// EffectResult is the mutable per-move scratch the pipeline writes into.
// It is reset at the start of every move resolution.
type EffectResult struct {
	Missed        bool
	Damage        uint16
	Effectiveness int
	Critical      bool
	StatusApplied bool
	Failed        bool

	SwitchOut         bool
	BatonPass         bool
	PursuitIntercept  bool
	PursuitUserSlotID int
}

// DamageOverride lets an op (or an item hook acting on it) override power,
// attack or defense before CalculateDamage resolves. Zero means "no
// override, use the move's own value".
type DamageOverride struct {
	Power   int
	Attack  int
	Defense int

	// CritStageBonus adds to the attacker's critical-hit stage on top of
	// its volatile-derived sources (e.g. Scope Lens's +1).
	CritStageBonus int
}

// Combatant bundles everything the context needs about one side's active
// battler: its persistent Mon state, its per-position Slot state, its
// derived ActiveMon stat cache, and the Side it belongs to.
type Combatant struct {
	SlotID int
	Side   *Side
	Slot   *Slot
	Mon    *Mon
	Active *ActiveMon
}

// Context is the blackboard threaded through one move's resolution. Its
// attacker/defender pointers are re-aimed by the orchestrator every time
// the acting side changes — see internal/engine.Engine.setAttacker.
type Context struct {
	RNG   *rng.Source
	Field *Field

	Attacker *Combatant
	Defender *Combatant

	Move *data.Move

	Result   EffectResult
	Override DamageOverride

	// All active slots/mons this battle, for operations that sweep every
	// combatant (Perish Song, Haze). Singles battles populate exactly two
	// entries.
	AllSlots []*Combatant

	LoopIteration int
}

// ResetForMove clears the per-move scratch before a new move resolves.
func (c *Context) ResetForMove(move *data.Move) {
	c.Move = move
	c.Result = EffectResult{PursuitUserSlotID: -1}
	c.Override = DamageOverride{}
	c.LoopIteration = 0
}

// EffectivePower returns the move's power unless DamageOverride.Power is
// set, in which case the override wins (item hooks / transient ops use
// this to inject a just-in-time power change).
func (c *Context) EffectivePower() int {
	if c.Override.Power != 0 {
		return c.Override.Power
	}
	if c.Move != nil {
		return c.Move.Power
	}
	return 0
}

func (c *Context) DefenderHasSubstitute() bool {
	return c.Defender != nil && c.Defender.Slot != nil && c.Defender.Slot.HasSubstitute()
}
