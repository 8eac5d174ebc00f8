// Package item implements the held-item hook system: a small table of
// event kinds, dispatched by item id, that let a handful of held items
// perturb move resolution at fixed points without every op needing to
// know about items at all.
package item

import (
	"github.com/bstrimzi/battlefactory/internal/battle"
	"github.com/bstrimzi/battlefactory/internal/data"
)

// EventKind is one of the five points in move/turn resolution an item
// handler can hook.
type EventKind uint8

const (
	OnPreDamageCalc EventKind = iota
	OnPreDamageApply
	OnPostDamageApply
	OnTurnStart
	OnTurnEnd
)

// Handler mutates ctx and/or holder in response to one event. holder is
// the combatant carrying the item, which may be the attacker or the
// defender depending on the event.
type Handler func(ctx *battle.Context, holder *battle.Combatant)

var handlers = map[data.Item]map[EventKind]Handler{
	data.ItemScopeLens: {
		OnPreDamageCalc: func(ctx *battle.Context, holder *battle.Combatant) {
			ctx.Override.CritStageBonus++
		},
	},
	data.ItemChoiceBand: {
		OnPreDamageCalc: func(ctx *battle.Context, holder *battle.Combatant) {
			if !ctx.Move.Type.IsPhysical() {
				return
			}
			base := holder.Active.Attack
			ctx.Override.Attack = base + base/2
		},
	},
	data.ItemFocusBand: {
		OnPreDamageApply: func(ctx *battle.Context, holder *battle.Combatant) {
			if ctx.Result.Damage < holder.Mon.CurrentHP {
				return
			}
			if !ctx.RNG.Chance(12, 100) {
				return
			}
			if holder.Mon.CurrentHP > 1 {
				ctx.Result.Damage = holder.Mon.CurrentHP - 1
			}
		},
	},
	data.ItemKingsRock: {
		OnPostDamageApply: func(ctx *battle.Context, holder *battle.Combatant) {
			if ctx.Result.Missed || ctx.Result.Damage == 0 {
				return
			}
			if ctx.Defender.Slot.HasVolatile(battle.VolFlinched) {
				return
			}
			if ctx.RNG.Chance(10, 100) {
				ctx.Defender.Slot.SetVolatile(battle.VolFlinched)
			}
		},
	},
	data.ItemShellBell: {
		OnPostDamageApply: func(ctx *battle.Context, holder *battle.Combatant) {
			if ctx.Result.Damage == 0 {
				return
			}
			amount := uint32(ctx.Result.Damage) / 8
			if amount == 0 {
				amount = 1
			}
			holder.Mon.Heal(uint16(amount))
		},
	},
	data.ItemLeftovers: {
		OnTurnEnd: func(ctx *battle.Context, holder *battle.Combatant) {
			if holder.Mon.IsFainted() {
				return
			}
			amount := uint32(holder.Mon.MaxHP) / 16
			if amount == 0 {
				amount = 1
			}
			holder.Mon.Heal(uint16(amount))
		},
	},
	data.ItemQuickClaw: {
		OnTurnStart: func(ctx *battle.Context, holder *battle.Combatant) {
			if ctx.RNG.Chance(20, 100) {
				holder.Slot.SetVolatile(battle.VolCharged)
			}
		},
	},
}

func lookup(i data.Item, kind EventKind) (Handler, bool) {
	byKind, ok := handlers[i]
	if !ok {
		return nil, false
	}
	h, ok := byKind[kind]
	return h, ok
}

// FirePreDamageCalc runs the attacker's item hook, if any, just before the
// damage formula resolves — the attacker's own held item is the only one
// eligible here (Choice Band, Scope Lens both act on the attacker).
func FirePreDamageCalc(ctx *battle.Context) {
	fire(ctx, ctx.Attacker, OnPreDamageCalc)
}

// FirePreDamageApply runs the defender's item hook, if any, just before
// damage is subtracted from HP (Focus Band's survive-at-1 check).
func FirePreDamageApply(ctx *battle.Context) {
	fire(ctx, ctx.Defender, OnPreDamageApply)
}

// FirePostDamageApply runs both combatants' post-damage hooks (King's
// Rock on the attacker's side, Shell Bell on the attacker, in practice
// both keyed off the attacker holding the item).
func FirePostDamageApply(ctx *battle.Context) {
	fire(ctx, ctx.Attacker, OnPostDamageApply)
	fire(ctx, ctx.Defender, OnPostDamageApply)
}

// FireTurnStart runs every active combatant's turn-start hook (Quick Claw).
func FireTurnStart(ctx *battle.Context) {
	for _, c := range ctx.AllSlots {
		fire(ctx, c, OnTurnStart)
	}
}

// FireTurnEnd runs every active combatant's turn-end hook (Leftovers).
func FireTurnEnd(ctx *battle.Context) {
	for _, c := range ctx.AllSlots {
		fire(ctx, c, OnTurnEnd)
	}
}

func fire(ctx *battle.Context, holder *battle.Combatant, kind EventKind) {
	if holder == nil || holder.Slot == nil || holder.Slot.ItemConsumed {
		return
	}
	h, ok := lookup(holder.Slot.HeldItem, kind)
	if !ok {
		return
	}
	h(ctx, holder)
}
