package storage

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps an already-migrated *gorm.DB as a Repository.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetOrCreateTrainerByEmail(email, displayName string) (*Trainer, error) {
	var t Trainer
	err := r.db.Where("email = ?", email).First(&t).Error
	if err == nil {
		return &t, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	t = Trainer{Email: email, DisplayName: displayName}
	if err := r.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *sqliteRepository) GetTrainerByEmail(email string) (*Trainer, error) {
	var t Trainer
	if err := r.db.Where("email = ?", email).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// RecordBattleResult increments the winner's and loser's running totals. A
// blank loserEmail (an opponent who was never a registered trainer, or a
// bot side) simply skips that half of the update.
func (r *sqliteRepository) RecordBattleResult(winnerEmail, loserEmail string) error {
	if winnerEmail != "" {
		if err := r.db.Model(&Trainer{}).Where("email = ?", winnerEmail).
			UpdateColumn("battles_won", gorm.Expr("battles_won + 1")).Error; err != nil {
			return err
		}
	}
	if loserEmail != "" {
		if err := r.db.Model(&Trainer{}).Where("email = ?", loserEmail).
			UpdateColumn("battles_lost", gorm.Expr("battles_lost + 1")).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *sqliteRepository) GetTopTrainers(limit int) ([]Trainer, error) {
	if limit <= 0 {
		limit = 10
	}
	var trainers []Trainer
	if err := r.db.Order("battles_won DESC").Order("battles_lost ASC").Limit(limit).Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *sqliteRepository) ListRentalArchetypes() ([]RentalArchetype, error) {
	var archetypes []RentalArchetype
	if err := r.db.Order("name").Find(&archetypes).Error; err != nil {
		return nil, err
	}
	return archetypes, nil
}

func (r *sqliteRepository) GetRentalArchetypeByID(id uint) (*RentalArchetype, error) {
	var a RentalArchetype
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *sqliteRepository) GetRentalArchetypesByIDs(ids []uint) ([]RentalArchetype, error) {
	var archetypes []RentalArchetype
	if err := r.db.Where("id IN ?", ids).Find(&archetypes).Error; err != nil {
		return nil, err
	}
	return archetypes, nil
}

func (r *sqliteRepository) CreateBattleSession(s *BattleSession) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetBattleSessionByID(id uint) (*BattleSession, error) {
	var s BattleSession
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateBattleSession(s *BattleSession) error {
	return r.db.Save(s).Error
}

func (r *sqliteRepository) FindTimedOutSessions(now time.Time) ([]BattleSession, error) {
	var sessions []BattleSession
	err := r.db.Where("outcome = ? AND action_deadline <= ?", 0, now).Find(&sessions).Error
	return sessions, err
}

// EncodeTurnLog JSON-encodes a turn-result log for BattleSession.TurnLogJSON.
func EncodeTurnLog(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeTurnLog decodes a BattleSession.TurnLogJSON value into dst (a
// pointer to a slice of engine.MoveResult, kept generic here since storage
// must not import engine).
func DecodeTurnLog(raw string, dst interface{}) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}
