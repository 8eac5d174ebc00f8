package engine

import (
	"testing"

	"github.com/bstrimzi/battlefactory/internal/data"
	"github.com/bstrimzi/battlefactory/internal/setup"
)

func oneMonTeam(t *testing.T, speciesID uint16, moveIDs [4]uint16) []setup.BattleMon {
	t.Helper()
	bm, err := setup.SetupRental(setup.Rental{
		SpeciesID: speciesID, Level: 50, Nature: data.NatureHardy, MoveIDs: moveIDs,
	})
	if err != nil {
		t.Fatalf("SetupRental error: %v", err)
	}
	return []setup.BattleMon{bm}
}

func newTestEngine(t *testing.T, p1Moves, p2Moves [4]uint16) *Engine {
	t.Helper()
	p1 := oneMonTeam(t, data.SpeciesBulbasaur, p1Moves)
	p2 := oneMonTeam(t, data.SpeciesGyarados, p2Moves)
	e, err := Init(42, p1, p2, [][4]uint16{p1Moves}, [][4]uint16{p2Moves})
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	return e
}

func twoMonTeam(t *testing.T, speciesID uint16, moveIDs [4]uint16) []setup.BattleMon {
	t.Helper()
	bm, err := setup.SetupRental(setup.Rental{
		SpeciesID: speciesID, Level: 50, Nature: data.NatureHardy, MoveIDs: moveIDs,
	})
	if err != nil {
		t.Fatalf("SetupRental error: %v", err)
	}
	bm2, err := setup.SetupRental(setup.Rental{
		SpeciesID: speciesID, Level: 50, Nature: data.NatureHardy,
	})
	if err != nil {
		t.Fatalf("SetupRental error: %v", err)
	}
	return []setup.BattleMon{bm, bm2}
}

func TestInitRejectsEmptyTeam(t *testing.T) {
	_, err := Init(1, nil, []setup.BattleMon{}, nil, nil)
	if err == nil {
		t.Fatal("expected an error for an empty team")
	}
}

func TestExecuteResolvesAMoveEachSide(t *testing.T) {
	moves := [4]uint16{data.MoveTackle, 0, 0, 0}
	e := newTestEngine(t, moves, moves)

	results, err := e.Execute(
		Action{Kind: ActionMove, MoveSlot: 0},
		Action{Kind: ActionMove, MoveSlot: 0},
	)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2 (one move per side)", len(results))
	}
	if e.TurnNumber() != 1 {
		t.Errorf("TurnNumber() = %d, want 1", e.TurnNumber())
	}
}

func TestExecuteAfterBattleOverErrors(t *testing.T) {
	moves := [4]uint16{data.MoveTackle, 0, 0, 0}
	e := newTestEngine(t, moves, moves)
	e.outcome = Player1Wins

	_, err := e.Execute(Action{Kind: ActionMove, MoveSlot: 0}, Action{Kind: ActionMove, MoveSlot: 0})
	if err == nil {
		t.Fatal("expected an error calling Execute after the battle already resolved")
	}
}

func TestQuickAttackOutprioritizesTackle(t *testing.T) {
	p1Moves := [4]uint16{data.MoveQuickAttack, 0, 0, 0}
	p2Moves := [4]uint16{data.MoveTackle, 0, 0, 0}
	e := newTestEngine(t, p1Moves, p2Moves)

	order, err := e.determineOrder(
		Action{Kind: ActionMove, MoveSlot: 0},
		Action{Kind: ActionMove, MoveSlot: 0},
	)
	if err != nil {
		t.Fatalf("determineOrder error: %v", err)
	}
	if order[0].slot != 0 {
		t.Errorf("expected slot 0 (Quick Attack, priority 1) to move first, order = %+v", order)
	}
}

func TestSwitchActionResolvesBeforeMovesRegardlessOfSpeed(t *testing.T) {
	p1Moves := [4]uint16{data.MoveTackle, 0, 0, 0}
	p2Moves := [4]uint16{data.MoveTackle, 0, 0, 0}
	e := newTestEngine(t, p1Moves, p2Moves)

	order, err := e.determineOrder(
		Action{Kind: ActionSwitch, TeamIndex: 0},
		Action{Kind: ActionMove, MoveSlot: 0},
	)
	if err != nil {
		t.Fatalf("determineOrder error: %v", err)
	}
	if order[0].slot != 0 {
		t.Errorf("expected the switch action to resolve first, order = %+v", order)
	}
}

func TestCanActReturnsFalseWhileFrozen(t *testing.T) {
	moves := [4]uint16{data.MoveTackle, 0, 0, 0}
	e := newTestEngine(t, moves, moves)
	mon := e.Teams[0].activeMon().mon
	mon.Status = data.StatusFreeze
	if canAct(mon) {
		t.Error("a frozen mon should not be able to act")
	}
}

func TestCanActCountsDownSleepTurns(t *testing.T) {
	moves := [4]uint16{data.MoveTackle, 0, 0, 0}
	e := newTestEngine(t, moves, moves)
	mon := e.Teams[0].activeMon().mon
	mon.Status = data.StatusSleep
	mon.SleepTurns = 2

	if canAct(mon) {
		t.Error("a mon with sleep turns remaining should not act yet")
	}
	if mon.SleepTurns != 1 {
		t.Errorf("SleepTurns = %d, want 1 after one failed wake check", mon.SleepTurns)
	}
	if canAct(mon) {
		t.Error("still asleep with 1 turn remaining, should not act")
	}
	if !canAct(mon) {
		t.Error("sleep turns exhausted, mon should now be able to act")
	}
}

func TestOutcomeResolvesWhenWholePartyFaints(t *testing.T) {
	moves := [4]uint16{data.MoveTackle, 0, 0, 0}
	e := newTestEngine(t, moves, moves)
	e.Teams[1].activeMon().mon.ApplyDamage(e.Teams[1].activeMon().mon.CurrentHP)

	e.checkFaintsAndForceSwitches()

	if e.Outcome() != Player1Wins {
		t.Errorf("Outcome() = %v, want Player1Wins once team 2's only mon faints", e.Outcome())
	}
}

func TestMagicCoatBouncesStatusMoveBackOntoItsUser(t *testing.T) {
	p1Moves := [4]uint16{data.MoveMagicCoat, 0, 0, 0}
	p2Moves := [4]uint16{data.MovePoisonPowder, 0, 0, 0}
	e := newTestEngine(t, p1Moves, p2Moves)

	results, err := e.Execute(
		Action{Kind: ActionMove, MoveSlot: 0},
		Action{Kind: ActionMove, MoveSlot: 0},
	)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	bounced := results[1]
	if bounced.MoveID != data.MovePoisonPowder {
		t.Fatalf("results[1].MoveID = %d, want Poison Powder", bounced.MoveID)
	}
	if bounced.AttackerSlot != 0 {
		t.Errorf("AttackerSlot = %d, want 0 (bounced back onto the Magic Coat user)", bounced.AttackerSlot)
	}
	if e.Teams[0].Slot.BounceMove {
		t.Error("BounceMove should be consumed once a move bounces off it")
	}
}

func TestPursuitInterceptsASwitchWithDoublePower(t *testing.T) {
	p1Moves := [4]uint16{data.MovePursuit, 0, 0, 0}
	p2Moves := [4]uint16{data.MoveTackle, 0, 0, 0}
	p1 := oneMonTeam(t, data.SpeciesBulbasaur, p1Moves)
	p2 := twoMonTeam(t, data.SpeciesGyarados, p2Moves)
	e, err := Init(42, p1, p2, [][4]uint16{p1Moves}, [][4]uint16{p2Moves, p2Moves})
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}

	results, err := e.Execute(
		Action{Kind: ActionMove, MoveSlot: 0},
		Action{Kind: ActionSwitch, TeamIndex: 1},
	)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1 (only the intercepted Pursuit logs a move result)", len(results))
	}

	got := results[0]
	if got.MoveID != data.MovePursuit {
		t.Fatalf("results[0].MoveID = %d, want Pursuit", got.MoveID)
	}
	if !got.Intercepted {
		t.Error("Intercepted should be true for a switch-triggered Pursuit")
	}
	if got.AttackerSlot != 0 {
		t.Errorf("AttackerSlot = %d, want 0 (the pursuer)", got.AttackerSlot)
	}
	if got.Damage == 0 {
		t.Error("Pursuit should have dealt damage to the switching target before it left")
	}

	if e.Teams[1].Active != 1 {
		t.Errorf("Teams[1].Active = %d, want 1 (the switch still completes after the intercept)", e.Teams[1].Active)
	}
}
