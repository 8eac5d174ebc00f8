package setup

import (
	"testing"

	"github.com/bstrimzi/battlefactory/internal/data"
)

func TestUnpackEVSpreadScalesByUnit(t *testing.T) {
	ev := UnpackEVSpread([6]uint8{10, 0, 0, 0, 0, 0})
	if ev.HP != 40 {
		t.Errorf("HP = %d, want 40 (10*4)", ev.HP)
	}
}

func TestUnpackEVSpreadClampsTotalBudget(t *testing.T) {
	// 100 units * 4 = 400 per stat; three stats at max would total 1200,
	// far over the 510 budget, so the decoder must trim the excess.
	ev := UnpackEVSpread([6]uint8{100, 100, 100, 0, 0, 0})
	total := ev.HP + ev.Attack + ev.Defense + ev.Speed + ev.SpAttack + ev.SpDefense
	if total > totalEVBudget {
		t.Errorf("total EVs = %d, want <= %d", total, totalEVBudget)
	}
}

func TestUnpackEVSpreadClampsPerStatAt255(t *testing.T) {
	ev := UnpackEVSpread([6]uint8{0, 100, 0, 0, 0, 0})
	if ev.Attack != 255 {
		t.Errorf("Attack = %d, want clamped to 255", ev.Attack)
	}
}

func TestSetupRentalUnknownSpeciesErrors(t *testing.T) {
	_, err := SetupRental(Rental{SpeciesID: 65535, Level: 50, Nature: data.NatureHardy})
	if err == nil {
		t.Fatal("expected an error for an unknown species id")
	}
}

func TestSetupRentalUnknownMoveErrors(t *testing.T) {
	_, err := SetupRental(Rental{
		SpeciesID: data.SpeciesBulbasaur, Level: 50, Nature: data.NatureHardy,
		MoveIDs: [4]uint16{65535, 0, 0, 0},
	})
	if err == nil {
		t.Fatal("expected an error for an unknown move id")
	}
}

func TestSetupRentalShedinjaForcesOneHP(t *testing.T) {
	bm, err := SetupRental(Rental{
		SpeciesID: data.SpeciesShedinja, Level: 50, Nature: data.NatureHardy,
	})
	if err != nil {
		t.Fatalf("SetupRental error: %v", err)
	}
	if bm.Mon.MaxHP != 1 {
		t.Errorf("Shedinja MaxHP = %d, want 1", bm.Mon.MaxHP)
	}
	if bm.Mon.CurrentHP != 1 {
		t.Errorf("Shedinja CurrentHP = %d, want 1", bm.Mon.CurrentHP)
	}
}

func TestSetupRentalFillsPPFromMoveset(t *testing.T) {
	bm, err := SetupRental(Rental{
		SpeciesID: data.SpeciesBulbasaur, Level: 50, Nature: data.NatureHardy,
		MoveIDs: [4]uint16{data.MoveTackle, 0, 0, 0},
	})
	if err != nil {
		t.Fatalf("SetupRental error: %v", err)
	}
	if bm.Slot.PP[0] != 35 {
		t.Errorf("PP[0] = %d, want 35 (Tackle's max PP)", bm.Slot.PP[0])
	}
	if bm.Slot.PP[1] != 0 {
		t.Errorf("PP[1] = %d, want 0 (empty move slot)", bm.Slot.PP[1])
	}
}

func TestSetupBattleBuildsTeamAndFreshSide(t *testing.T) {
	team := []TeamRental{
		{Rental: Rental{SpeciesID: data.SpeciesBulbasaur, Level: 50, Nature: data.NatureHardy}},
		{Rental: Rental{SpeciesID: data.SpeciesGyarados, Level: 50, Nature: data.NatureHardy}},
	}
	mons, side, err := SetupBattle(team)
	if err != nil {
		t.Fatalf("SetupBattle error: %v", err)
	}
	if len(mons) != 2 {
		t.Errorf("len(mons) = %d, want 2", len(mons))
	}
	if side == nil {
		t.Fatal("expected a fresh Side, got nil")
	}
	if side.HasReflect() {
		t.Error("a fresh side should start with no reflect")
	}
}
