package storage

import (
	"time"

	"gorm.io/gorm"
)

// Trainer is a registered player identity, authenticated via Google OAuth
// (see internal/api.AuthHandler). Win/loss counters accumulate across
// every hosted battle session the trainer finishes.
type Trainer struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Email       string `gorm:"uniqueIndex"`
	DisplayName string
	BattlesWon  int
	BattlesLost int
}

// RentalArchetype is one pre-built Battle Factory rental set a trainer can
// pick for a side of a battle: a fixed species/nature/EV-spread/moveset/item
// combination, matching setup.Rental's shape so the catalogue can be fed
// straight into setup.SetupRental without translation.
type RentalArchetype struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string `gorm:"uniqueIndex"`
	SpeciesID uint16
	Level     int
	Nature    uint8
	EV1       uint8
	EV2       uint8
	EV3       uint8
	EV4       uint8
	EV5       uint8
	EV6       uint8
	Move1     uint16
	Move2     uint16
	Move3     uint16
	Move4     uint16
	Item      uint16
}

// BattleSession is one hosted, persisted Battle Factory match: the two
// sides' chosen rental archetypes, the RNG seed the match was initialized
// with, and a running turn log sufficient to reconstruct or replay the
// match. The live in-memory engine.Engine is rebuilt from this record on
// every HTTP request rather than held resident between requests, so a
// session survives a process restart (see internal/api's battle handler).
type BattleSession struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Trainer1Email string
	Trainer2Email string

	Trainer1RentalIDs string // comma-separated RentalArchetype IDs, up to 3
	Trainer2RentalIDs string

	Seed uint32

	// ActionsLogJSON is the JSON-encoded history of every (trainer1Action,
	// trainer2Action) pair submitted so far, in turn order. Replaying these
	// through a freshly-initialized engine.Engine is how ExecuteTurn
	// reconstructs current state without holding the engine resident
	// between HTTP requests.
	ActionsLogJSON string

	// TurnLogJSON is the JSON-encoded []engine.MoveResult history the
	// engine produced, kept for clients that only want to display results
	// without replaying the engine themselves.
	TurnLogJSON string

	TurnNumber int
	Outcome    uint8 // mirrors engine.Outcome

	// ActionDeadline is when the background sweep will force-finish this
	// session if no turn has been submitted (see cmd/battlefactoryd's
	// sweep ticker).
	ActionDeadline time.Time
}
