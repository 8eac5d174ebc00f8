package storage

import "time"

// Repository is the storage boundary the HTTP shell depends on: trainer
// identity, the rental-archetype catalogue, and hosted battle sessions.
// None of these methods know anything about move resolution — that stays
// entirely inside internal/engine; this package only persists and
// reconstructs its inputs and outputs.
type Repository interface {
	// GetOrCreateTrainerByEmail looks up a trainer by email, creating one
	// with the given display name on first login.
	GetOrCreateTrainerByEmail(email, displayName string) (*Trainer, error)
	GetTrainerByEmail(email string) (*Trainer, error)
	RecordBattleResult(winnerEmail, loserEmail string) error
	GetTopTrainers(limit int) ([]Trainer, error)

	ListRentalArchetypes() ([]RentalArchetype, error)
	GetRentalArchetypeByID(id uint) (*RentalArchetype, error)
	GetRentalArchetypesByIDs(ids []uint) ([]RentalArchetype, error)

	CreateBattleSession(s *BattleSession) error
	GetBattleSessionByID(id uint) (*BattleSession, error)
	UpdateBattleSession(s *BattleSession) error
	// FindTimedOutSessions returns in-progress sessions whose action
	// deadline is at or before now, for the background sweep to resolve.
	FindTimedOutSessions(now time.Time) ([]BattleSession, error)
}
