// Package battle holds the four battle-state scopes (Field, Side, Slot,
// Mon) and the Context blackboard that atomic operations and effects
// mutate. None of these types know how to resolve a move themselves — that
// behavior lives in internal/ops, internal/routines and internal/engine.
package battle

import "github.com/bstrimzi/battlefactory/internal/data"

// FutureSightSlot tracks one pending delayed-damage hit.
type FutureSightSlot struct {
	TurnsUntilLand int
	AttackerSlotID int
	Damage         uint16
	MoveID         uint16
	Active         bool
}

// WishSlot tracks one pending delayed heal.
type WishSlot struct {
	TurnsUntilHeal int
	HPToRestore    uint16
	Active         bool
}

const maxBattleSlots = 2

// Field is the singleton battle-wide state scope.
type Field struct {
	Weather      data.Weather
	WeatherTurns int // 0 turns remaining with Weather != None means permanent

	FutureSight [maxBattleSlots]FutureSightSlot
	Wish        [maxBattleSlots]WishSlot
}

func NewField() *Field {
	return &Field{}
}

// TickWeather decrements the weather counter at turn-end, clearing the
// weather once it reaches zero. A WeatherTurns of zero when weather is
// already set is treated as "permanent" and never decremented further.
func (f *Field) TickWeather() {
	if f.Weather == data.WeatherNone || f.WeatherTurns == 0 {
		return
	}
	f.WeatherTurns--
	if f.WeatherTurns == 0 {
		f.Weather = data.WeatherNone
	}
}
