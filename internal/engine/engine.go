// Package engine is the synchronous, dependency-free turn orchestrator:
// it owns the two Teams and the Field, decides move order, drives each
// resolving move through the dsl pipeline compiled from its registered
// effect, fires item hooks around it, and applies the once-per-turn
// upkeep (weather, status damage, screen/perish-song countdowns).
//
// The state machine below is imperative, not type-state-encoded — Go has
// no zero-cost way to forbid calling Execute out of order at compile
// time, so Engine tracks its own TurnGenesis..TurnTerminus stage and
// asserts on misuse instead.
package engine

import (
	"fmt"

	"github.com/bstrimzi/battlefactory/internal/battle"
	"github.com/bstrimzi/battlefactory/internal/calc"
	"github.com/bstrimzi/battlefactory/internal/data"
	"github.com/bstrimzi/battlefactory/internal/dsl"
	"github.com/bstrimzi/battlefactory/internal/item"
	"github.com/bstrimzi/battlefactory/internal/rng"
	"github.com/bstrimzi/battlefactory/internal/routines"
	"github.com/bstrimzi/battlefactory/internal/setup"
)

// TurnStage tracks the orchestrator's own progress through one turn,
// mirroring the move pipeline's stage-tracking idiom at the turn level.
type TurnStage uint8

const (
	TurnGenesis TurnStage = iota
	PriorityDetermined
	ActionsResolving
	ActionsResolved
	TurnEnd
	TurnTerminus
)

// MoveResult is a user-facing summary of one resolved move, useful for
// building an observation/log response without exposing engine internals.
type MoveResult struct {
	AttackerSlot int
	MoveID       uint16
	Missed       bool
	Damage       uint16
	Critical     bool
	Fainted      bool
	Intercepted  bool
}

// Engine drives exactly one Battle-Factory singles match between two
// Teams.
type Engine struct {
	RNG   *rng.Source
	Field *battle.Field

	Teams [2]*Team

	turnNumber int
	stage      TurnStage
	outcome    Outcome

	log []MoveResult
}

// Init builds a fresh Engine from each side's setup-derived party. seed
// follows the rng package's contract (0 == platform entropy).
func Init(seed uint32, p1Mons, p2Mons []setup.BattleMon, p1Moves, p2Moves [][4]uint16) (*Engine, error) {
	if len(p1Mons) == 0 || len(p2Mons) == 0 {
		return nil, fmt.Errorf("engine: both teams need at least one Pokémon")
	}
	e := &Engine{
		RNG:   rng.New(seed),
		Field: battle.NewField(),
	}
	e.Teams[0] = newTeam(0, p1Mons, p1Moves)
	e.Teams[1] = newTeam(1, p2Mons, p2Moves)
	return e, nil
}

// Outcome returns the battle's current terminal state.
func (e *Engine) Outcome() Outcome { return e.outcome }

// TurnNumber returns the count of turns fully resolved so far.
func (e *Engine) TurnNumber() int { return e.turnNumber }

// Execute resolves one full turn given each trainer's declared action,
// advancing TurnGenesis through TurnTerminus. It returns an error only
// for programmer misuse (calling Execute after the battle is already
// over, or an action referencing an illegal move/party slot).
func (e *Engine) Execute(p1Action, p2Action Action) ([]MoveResult, error) {
	if e.outcome != Ongoing {
		return nil, fmt.Errorf("engine: Execute called after battle already resolved")
	}
	e.stage = TurnGenesis
	e.log = nil

	for _, t := range e.Teams {
		t.Slot.ClearTurnFlags()
	}

	item.FireTurnStart(e.contextFor(0))

	order, err := e.determineOrder(p1Action, p2Action)
	if err != nil {
		return nil, err
	}
	e.stage = PriorityDetermined

	actionsBySlot := [2]Action{p1Action, p2Action}
	executed := [2]bool{}

	e.stage = ActionsResolving
	for _, entry := range order {
		if e.outcome != Ongoing {
			break
		}
		if executed[entry.slot] {
			continue
		}
		if e.Teams[entry.slot].activeMon().mon.IsFainted() {
			continue
		}

		if entry.action.Kind == ActionSwitch {
			other := 1 - entry.slot
			if !executed[other] && !e.Teams[other].activeMon().mon.IsFainted() {
				otherAction := actionsBySlot[other]
				if mv, ok := e.moveFor(other, otherAction.MoveSlot); ok &&
					otherAction.Kind == ActionMove && mv.Effect == data.EffectPursuit {
					switcher := e.Teams[entry.slot].activeMon().mon
					e.executeActionWithOverride(other, otherAction, mv.Power*2)
					executed[other] = true
					e.checkFaintsAndForceSwitches()
					if switcher.IsFainted() {
						executed[entry.slot] = true
						continue
					}
				}
			}
		}

		if e.outcome != Ongoing {
			break
		}
		if e.Teams[entry.slot].activeMon().mon.IsFainted() {
			continue
		}
		e.executeAction(entry.slot, entry.action)
		executed[entry.slot] = true
		e.checkFaintsAndForceSwitches()
	}
	e.stage = ActionsResolved

	if e.outcome == Ongoing {
		e.endOfTurnUpkeep()
	}
	e.stage = TurnEnd

	e.turnNumber++
	e.stage = TurnTerminus

	return e.log, nil
}

type orderEntry struct {
	slot   int
	action Action
}

// determineOrder ranks the two declared actions by priority bracket, then
// effective speed (applying paralysis and stat stages), then a Quick Claw
// override, then an RNG coin flip for a true tie.
func (e *Engine) determineOrder(p1, p2 Action) ([]orderEntry, error) {
	pri := func(slot int, a Action) int {
		if a.Kind == ActionSwitch || a.Kind == ActionRun {
			return 6 // switches/run resolve before any move
		}
		mv, ok := e.moveFor(slot, a.MoveSlot)
		if !ok {
			return 0
		}
		return mv.Priority
	}
	speed := func(slot int) int {
		t := e.Teams[slot]
		paralysed := t.activeMon().mon.Status == data.StatusParalysis
		return calc.EffectiveSpeed(t.activeMon().active.Speed, t.Slot.Stage(battle.StatSpeed), paralysed)
	}
	quickClaw := func(slot int) bool {
		return e.Teams[slot].Slot.HasVolatile(battle.VolCharged)
	}

	p1Pri, p2Pri := pri(0, p1), pri(1, p2)
	entries := []orderEntry{{0, p1}, {1, p2}}

	first := 0
	switch {
	case p1Pri != p2Pri:
		if p2Pri > p1Pri {
			first = 1
		}
	case quickClaw(0) != quickClaw(1):
		if quickClaw(1) {
			first = 1
		}
	case speed(0) != speed(1):
		if speed(1) > speed(0) {
			first = 1
		}
	default:
		if !e.RNG.CoinFlip() {
			first = 1
		}
	}
	if first == 1 {
		entries[0], entries[1] = entries[1], entries[0]
	}
	return entries, nil
}

func (e *Engine) moveFor(slot, moveSlotIdx int) (data.Move, bool) {
	t := e.Teams[slot]
	if moveSlotIdx < 0 || moveSlotIdx >= len(t.activeMon().moveIDs) {
		return data.Move{}, false
	}
	id := t.activeMon().moveIDs[moveSlotIdx]
	if id == 0 {
		return data.Move{}, false
	}
	return data.LookupMove(id)
}

func (e *Engine) contextFor(actingSlot int) *battle.Context {
	other := 1 - actingSlot
	attacker := e.Teams[actingSlot].combatant()
	defender := e.Teams[other].combatant()
	return &battle.Context{
		RNG:      e.RNG,
		Field:    e.Field,
		Attacker: attacker,
		Defender: defender,
		AllSlots: []*battle.Combatant{e.Teams[0].combatant(), e.Teams[1].combatant()},
	}
}

// executeAction runs one trainer's declared action: a switch, a run
// (forfeit), or a move resolved through its compiled effect pipeline.
func (e *Engine) executeAction(slot int, a Action) {
	e.executeActionWithOverride(slot, a, 0)
}

// executeActionWithOverride is executeAction's full implementation, plus a
// powerOverride hook the Pursuit intercept uses to double the pursuer's
// power for its out-of-order dispatch (0 means "use the move's own power").
func (e *Engine) executeActionWithOverride(slot int, a Action, powerOverride int) {
	t := e.Teams[slot]
	switch a.Kind {
	case ActionSwitch:
		if a.TeamIndex >= 0 && a.TeamIndex < len(t.Party) && !t.Party[a.TeamIndex].mon.IsFainted() {
			t.switchTo(a.TeamIndex, false)
		}
		return
	case ActionRun:
		if slot == 0 {
			e.outcome = Player2Wins
		} else {
			e.outcome = Player1Wins
		}
		return
	}

	if t.Slot.HasVolatile(battle.VolFlinched) {
		return
	}
	if !canAct(t.activeMon().mon) {
		return
	}

	mv, ok := e.moveFor(slot, a.MoveSlot)
	if !ok {
		return
	}
	t.Slot.MovedThisTurn = true
	t.Slot.LastMoveUsed = mv.ID

	// Magic Coat bounce: a magic-coat-affected move cast at a slot that
	// armed bounce_move this turn reflects back onto its own user —
	// reassign which side is attacker/defender for this dispatch only.
	ctxSlot := slot
	other := 1 - slot
	if mv.Has(data.FlagMagicCoatAffected) && e.Teams[other].Slot.BounceMove {
		e.Teams[other].Slot.BounceMove = false
		ctxSlot = other
	}

	ctx := e.contextFor(ctxSlot)
	ctx.ResetForMove(&mv)
	if powerOverride != 0 {
		ctx.Override.Power = powerOverride
	}

	effect := routines.Lookup(mv.Effect)
	p := dsl.NewPipeline(effect)
	p.Run(ctx)

	attackerSlot := ctxSlot
	if ctx.Result.PursuitIntercept {
		attackerSlot = ctx.Result.PursuitUserSlotID
	}

	e.log = append(e.log, MoveResult{
		AttackerSlot: attackerSlot,
		MoveID:       mv.ID,
		Missed:       ctx.Result.Missed,
		Damage:       ctx.Result.Damage,
		Critical:     ctx.Result.Critical,
		Fainted:      e.Teams[1-ctxSlot].activeMon().mon.IsFainted(),
		Intercepted:  ctx.Result.PursuitIntercept && powerOverride != 0,
	})

	if ctx.Result.SwitchOut && !e.Teams[ctxSlot].activeMon().mon.IsFainted() {
		if next := e.Teams[ctxSlot].firstAvailable(); next != -1 {
			e.Teams[ctxSlot].switchTo(next, ctx.Result.BatonPass)
		}
	}
}

// canAct reports whether a status condition prevents the active mon from
// moving this turn: sleeping, frozen, or full paralysis (the 25% chance
// is rolled here since it is a per-turn gate, not a move effect).
func canAct(m *battle.Mon) bool {
	switch m.Status {
	case data.StatusSleep:
		if m.SleepTurns > 0 {
			m.SleepTurns--
		}
		return m.SleepTurns == 0
	case data.StatusFreeze:
		return false
	default:
		return true
	}
}

// checkFaintsAndForceSwitches auto-switches in the next available party
// member for any side whose active mon just fainted, and resolves the
// battle outcome if a whole party is down.
func (e *Engine) checkFaintsAndForceSwitches() {
	for slot, t := range e.Teams {
		if !t.activeMon().mon.IsFainted() {
			continue
		}
		if t.AllFainted() {
			if slot == 0 {
				e.outcome = Player2Wins
			} else {
				e.outcome = Player1Wins
			}
			continue
		}
		if next := t.firstAvailable(); next != -1 {
			t.switchTo(next, false)
		}
	}
}

// endOfTurnUpkeep applies weather/status damage, item turn-end hooks, and
// decrements every per-turn countdown (screens, weather, perish song).
func (e *Engine) endOfTurnUpkeep() {
	ctx := e.contextFor(0)
	item.FireTurnEnd(ctx)

	for _, t := range e.Teams {
		m := t.activeMon().mon
		if m.IsFainted() {
			continue
		}
		applyResidualStatus(m)
		applyWeatherDamage(m, t.activeMon().active, e.Field.Weather)
	}
	e.checkFaintsAndForceSwitches()

	for _, t := range e.Teams {
		t.Side.TickScreens()
		if t.Slot.HasVolatile(battle.VolPerishSong) {
			t.Slot.PerishCount--
			if t.Slot.PerishCount <= 0 {
				t.activeMon().mon.ApplyDamage(t.activeMon().mon.CurrentHP)
			}
		}
	}
	e.checkFaintsAndForceSwitches()
	e.Field.TickWeather()
}

func applyResidualStatus(m *battle.Mon) {
	switch m.Status {
	case data.StatusPoison:
		dealResidual(m, m.MaxHP/8)
	case data.StatusBurn:
		dealResidual(m, m.MaxHP/8)
	case data.StatusToxic:
		amount := uint32(m.MaxHP) * uint32(m.ToxicTurns) / 16
		if amount > 0xFFFF {
			amount = 0xFFFF
		}
		dealResidual(m, uint16(amount))
		m.ToxicTurns++
	}
}

func dealResidual(m *battle.Mon, amount uint16) {
	if amount == 0 {
		amount = 1
	}
	m.ApplyDamage(amount)
}

func applyWeatherDamage(m *battle.Mon, active *battle.ActiveMon, w data.Weather) {
	immune := func() bool {
		switch w {
		case data.WeatherSandstorm:
			return active.Type1 == data.TypeRock || active.Type2 == data.TypeRock ||
				active.Type1 == data.TypeGround || active.Type2 == data.TypeGround ||
				active.Type1 == data.TypeSteel || active.Type2 == data.TypeSteel
		case data.WeatherHail:
			return active.Type1 == data.TypeIce || active.Type2 == data.TypeIce
		default:
			return true
		}
	}
	if w != data.WeatherSandstorm && w != data.WeatherHail {
		return
	}
	if immune() {
		return
	}
	dealResidual(m, m.MaxHP/16)
}
