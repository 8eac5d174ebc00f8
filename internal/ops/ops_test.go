package ops

import (
	"testing"

	"github.com/bstrimzi/battlefactory/internal/battle"
)

func TestCritStageForSumsFocusEnergyAndOverrideBonus(t *testing.T) {
	slot := battle.NewSlot()
	ctx := &battle.Context{Attacker: &battle.Combatant{Slot: slot}}

	if got := critStageFor(ctx); got != 0 {
		t.Errorf("critStageFor with no bonuses = %d, want 0", got)
	}

	slot.SetVolatile(battle.VolFocusEnergy)
	if got := critStageFor(ctx); got != 2 {
		t.Errorf("critStageFor with Focus Energy = %d, want 2", got)
	}

	ctx.Override.CritStageBonus = 1
	if got := critStageFor(ctx); got != 3 {
		t.Errorf("critStageFor with Focus Energy + a +1 item bonus = %d, want 3", got)
	}
}

func TestCritStageForClampsAtFour(t *testing.T) {
	slot := battle.NewSlot()
	slot.SetVolatile(battle.VolFocusEnergy)
	ctx := &battle.Context{
		Attacker: &battle.Combatant{Slot: slot},
		Override: battle.DamageOverride{CritStageBonus: 5},
	}
	if got := critStageFor(ctx); got != 4 {
		t.Errorf("critStageFor = %d, want clamped to 4", got)
	}
}

func TestMarkPursuitReadyRecordsAttackerSlot(t *testing.T) {
	ctx := &battle.Context{Attacker: &battle.Combatant{SlotID: 1}}
	MarkPursuitReady().Run(ctx)
	if !ctx.Result.PursuitIntercept {
		t.Error("PursuitIntercept should be set")
	}
	if ctx.Result.PursuitUserSlotID != 1 {
		t.Errorf("PursuitUserSlotID = %d, want 1", ctx.Result.PursuitUserSlotID)
	}
}

func TestSetMagicCoatArmsBounceMoveNotTheRetiredVolatile(t *testing.T) {
	slot := battle.NewSlot()
	ctx := &battle.Context{Attacker: &battle.Combatant{Slot: slot}}
	SetMagicCoat().Run(ctx)
	if !slot.BounceMove {
		t.Error("SetMagicCoat should arm Slot.BounceMove")
	}
}
