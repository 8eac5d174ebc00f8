package engine

import (
	"github.com/bstrimzi/battlefactory/internal/battle"
	"github.com/bstrimzi/battlefactory/internal/setup"
)

// partyMon is one of a trainer's (up to three) rental Pokémon: the
// persistent Mon plus the move ids and cached stat view rebuilt at
// switch-in time.
type partyMon struct {
	mon     *battle.Mon
	active  *battle.ActiveMon
	moveIDs [4]uint16
}

// Team is one trainer's full party plus the battle-wide Side state and a
// pointer to whichever party member is currently active.
type Team struct {
	Party  []*partyMon
	Side   *battle.Side
	Active int // index into Party
	Slot   *battle.Slot
	SlotID int
}

// newTeam builds a Team from setup-derived BattleMons, starting with
// party member 0 active.
func newTeam(slotID int, mons []setup.BattleMon, moveIDs [][4]uint16) *Team {
	party := make([]*partyMon, len(mons))
	for i, bm := range mons {
		party[i] = &partyMon{mon: bm.Mon, active: bm.Active, moveIDs: moveIDs[i]}
	}
	t := &Team{Party: party, Side: battle.NewSide(), Active: 0, SlotID: slotID}
	t.Slot = mons[0].Slot
	return t
}

func (t *Team) activeMon() *partyMon { return t.Party[t.Active] }

// AllFainted reports whether every party member has fainted — the
// battle-over condition for this trainer.
func (t *Team) AllFainted() bool {
	for _, p := range t.Party {
		if !p.mon.IsFainted() {
			return false
		}
	}
	return true
}

// firstAvailable returns the index of the first non-fainted, non-active
// party member, or -1 if none remain.
func (t *Team) firstAvailable() int {
	for i, p := range t.Party {
		if i != t.Active && !p.mon.IsFainted() {
			return i
		}
	}
	return -1
}

// switchTo replaces the active slot with a fresh one (carrying the
// baton-pass subset when requested) and makes index the new active party
// member.
func (t *Team) switchTo(index int, carryBatonPass bool) {
	fresh := t.Slot.ResetOnSwitchOut(carryBatonPass)
	t.Active = index
	t.Slot = fresh
	t.activeMon().mon.OnSwitchIn()
}

func (t *Team) combatant() *battle.Combatant {
	return &battle.Combatant{
		SlotID: t.SlotID,
		Side:   t.Side,
		Slot:   t.Slot,
		Mon:    t.activeMon().mon,
		Active: t.activeMon().active,
	}
}
