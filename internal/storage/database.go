package storage

import (
	"github.com/bstrimzi/battlefactory/internal/data"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database at dataSourceName, migrates the
// three storage-owned tables, and seeds the default rental-archetype
// catalogue on a fresh database.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Trainer{}, &RentalArchetype{}, &BattleSession{}); err != nil {
		return nil, err
	}

	seedDefaultRentalArchetypes(db)
	return db, nil
}

// seedDefaultRentalArchetypes inserts a small starter catalogue the first
// time the database is created. The catalogue only ever grows through an
// operator-run import, never through player traffic, so this only needs to
// run once per fresh database.
func seedDefaultRentalArchetypes(db *gorm.DB) {
	var count int64
	db.Model(&RentalArchetype{}).Count(&count)
	if count > 0 {
		return
	}

	perfectEV := uint8(63) // 63*4 == 252, the single-stat competitive max
	defaults := []RentalArchetype{
		{
			Name: "Gyarados (Dragon Dance)", SpeciesID: data.SpeciesGyarados, Level: 50,
			Nature: uint8(data.NatureAdamant), EV2: perfectEV, EV3: perfectEV,
			Move1: data.MoveTackle, Move2: data.MoveDragonRage,
			Item: uint16(data.ItemLeftovers),
		},
		{
			Name: "Bulbasaur (Utility)", SpeciesID: data.SpeciesBulbasaur, Level: 50,
			Nature: uint8(data.NatureBold), EV1: perfectEV, EV3: perfectEV,
			Move1: data.MoveTackle, Move2: data.MoveRainDance,
			Item: uint16(data.ItemLeftovers),
		},
	}
	db.Create(&defaults)
}
