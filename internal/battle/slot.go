package battle

import "github.com/bstrimzi/battlefactory/internal/data"

// Volatile is a 32-bit bitset of per-slot volatile conditions, cleared on
// switch-out except for the subset baton-pass carries (see CopyForBatonPass).
type Volatile uint32

const (
	VolConfused Volatile = 1 << iota
	VolInfatuated
	VolFocusEnergy
	VolSubstitute
	VolLeechSeed
	VolCursed
	VolNightmare
	VolTrapped
	VolWrapped
	VolTormented
	VolDisabled
	VolTaunted
	VolEncored
	VolCharging
	VolSemiInvulnerable
	VolDestinyBond
	VolGrudge
	VolIngrained
	VolYawn
	VolPerishSong
	VolLockOn
	VolCharged
	VolDefenseCurl
	VolRage
	VolForesight
	VolBide
	VolUproar
	VolTransformed
	VolProtected
	VolEnduredLastTurn
	VolFlinched
)

// batonPassVolatiles is the subset of volatile flags baton-pass preserves
// across a switch, per the data-model lifecycle rules.
const batonPassVolatiles = VolConfused | VolFocusEnergy | VolSubstitute |
	VolLeechSeed | VolCursed | VolTrapped | VolIngrained | VolPerishSong | VolLockOn

// StatKind enumerates the seven stages a slot tracks.
type StatKind uint8

const (
	StatAttack StatKind = iota
	StatDefense
	StatSpeed
	StatSpAttack
	StatSpDefense
	StatAccuracy
	StatEvasion
)

// Slot is per-battle-position state, cleared on switch-out except for a
// small baton-pass-preserved subset.
type Slot struct {
	Stages [7]int

	Volatiles Volatile

	ConfusionTurns int
	WrapTurns      int
	TauntTurns     int
	DisableTurns   int
	EncoreTurns    int
	PerishCount    int
	StockpileCount int
	FuryCutterPow  int
	RolloutHits    int
	YawnTurns      int

	SubstituteHP uint16

	DisabledMove  uint16
	EncoredMove   uint16
	LastMoveUsed  uint16
	ChargingMove  uint16

	PhysicalDamageTaken uint16
	SpecialDamageTaken  uint16
	DamageTakenBySlot   [maxBattleSlots]uint8 // 0xFF == none

	InfatuatedWithSlot uint8 // 0xFF == none
	LeechSeedTarget    uint8
	TrappedBySlot      uint8

	IsFirstTurn    bool
	MovedThisTurn  bool
	BounceMove     bool

	HeldItem      data.Item
	ItemConsumed  bool
}

const NoSlot uint8 = 0xFF

func NewSlot() *Slot {
	s := &Slot{
		DamageTakenBySlot:  [maxBattleSlots]uint8{NoSlot, NoSlot},
		InfatuatedWithSlot: NoSlot,
		LeechSeedTarget:    NoSlot,
		TrappedBySlot:      NoSlot,
		IsFirstTurn:        true,
	}
	return s
}

func (s *Slot) Stage(k StatKind) int      { return s.Stages[k] }
func (s *Slot) SetStage(k StatKind, v int) { s.Stages[k] = v }

func (s *Slot) HasVolatile(v Volatile) bool { return s.Volatiles&v != 0 }
func (s *Slot) SetVolatile(v Volatile)      { s.Volatiles |= v }
func (s *Slot) ClearVolatile(v Volatile)    { s.Volatiles &^= v }

// ClearTurnFlags resets the per-turn scratch flags. Called at the start of
// every turn by the orchestrator.
func (s *Slot) ClearTurnFlags() {
	s.MovedThisTurn = false
	s.BounceMove = false
	s.PhysicalDamageTaken = 0
	s.SpecialDamageTaken = 0
	s.DamageTakenBySlot = [maxBattleSlots]uint8{NoSlot, NoSlot}
	s.ClearVolatile(VolFlinched)
	s.ClearVolatile(VolCharged)
}

// ResetOnSwitchOut zeroes the slot, preserving only the baton-pass subset
// when carryBatonPass is true.
func (s *Slot) ResetOnSwitchOut(carryBatonPass bool) *Slot {
	fresh := NewSlot()
	if carryBatonPass {
		fresh.Stages = s.Stages
		fresh.Volatiles = s.Volatiles & batonPassVolatiles
		fresh.SubstituteHP = s.SubstituteHP
		fresh.PerishCount = s.PerishCount
		fresh.LeechSeedTarget = s.LeechSeedTarget
	}
	return fresh
}

func (s *Slot) HasSubstitute() bool { return s.HasVolatile(VolSubstitute) && s.SubstituteHP > 0 }
