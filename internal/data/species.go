package data

import "github.com/bstrimzi/battlefactory/internal/calc"

// Species is one entry of the fixed Pokédex table used by rental setup.
type Species struct {
	ID       uint16
	Name     string
	Stats    calc.BaseStats
	Type1    Type
	Type2    Type
	Ability1 Ability
	Ability2 Ability // AbilityNone if the species has only one slot
}

const (
	SpeciesBulbasaur uint16 = 1
	SpeciesCharmander uint16 = 4
	SpeciesSquirtle  uint16 = 7
	SpeciesPikachu   uint16 = 25
	SpeciesGyarados  uint16 = 130
	SpeciesSnorlax   uint16 = 143
	SpeciesShedinja  uint16 = 292
	SpeciesTyranitar uint16 = 248
	SpeciesSalamence uint16 = 373
	SpeciesMetagross uint16 = 376
)

var speciesTable = map[uint16]Species{
	SpeciesBulbasaur: {
		ID: SpeciesBulbasaur, Name: "Bulbasaur",
		Stats: calc.BaseStats{HP: 45, Attack: 49, Defense: 49, Speed: 45, SpAttack: 65, SpDefense: 65},
		Type1: TypeGrass, Type2: TypePoison,
	},
	SpeciesCharmander: {
		ID: SpeciesCharmander, Name: "Charmander",
		Stats: calc.BaseStats{HP: 39, Attack: 52, Defense: 43, Speed: 65, SpAttack: 60, SpDefense: 50},
		Type1: TypeFire, Type2: TypeNone,
	},
	SpeciesSquirtle: {
		ID: SpeciesSquirtle, Name: "Squirtle",
		Stats: calc.BaseStats{HP: 44, Attack: 48, Defense: 65, Speed: 43, SpAttack: 50, SpDefense: 64},
		Type1: TypeWater, Type2: TypeNone,
	},
	SpeciesPikachu: {
		ID: SpeciesPikachu, Name: "Pikachu",
		Stats: calc.BaseStats{HP: 35, Attack: 55, Defense: 30, Speed: 90, SpAttack: 50, SpDefense: 40},
		Type1: TypeElectric, Type2: TypeNone,
	},
	SpeciesGyarados: {
		ID: SpeciesGyarados, Name: "Gyarados",
		Stats: calc.BaseStats{HP: 95, Attack: 125, Defense: 79, Speed: 81, SpAttack: 60, SpDefense: 100},
		Type1: TypeWater, Type2: TypeFlying,
	},
	SpeciesSnorlax: {
		ID: SpeciesSnorlax, Name: "Snorlax",
		Stats: calc.BaseStats{HP: 160, Attack: 110, Defense: 65, Speed: 30, SpAttack: 65, SpDefense: 110},
		Type1: TypeNormal, Type2: TypeNone,
	},
	SpeciesShedinja: {
		ID: SpeciesShedinja, Name: "Shedinja",
		Stats: calc.BaseStats{HP: 1, Attack: 90, Defense: 45, Speed: 40, SpAttack: 30, SpDefense: 30},
		Type1: TypeBug, Type2: TypeGhost,
	},
	SpeciesTyranitar: {
		ID: SpeciesTyranitar, Name: "Tyranitar",
		Stats: calc.BaseStats{HP: 100, Attack: 134, Defense: 110, Speed: 61, SpAttack: 95, SpDefense: 100},
		Type1: TypeRock, Type2: TypeDark,
	},
	SpeciesSalamence: {
		ID: SpeciesSalamence, Name: "Salamence",
		Stats: calc.BaseStats{HP: 95, Attack: 135, Defense: 80, Speed: 100, SpAttack: 110, SpDefense: 80},
		Type1: TypeDragon, Type2: TypeFlying,
	},
	SpeciesMetagross: {
		ID: SpeciesMetagross, Name: "Metagross",
		Stats: calc.BaseStats{HP: 80, Attack: 135, Defense: 130, Speed: 70, SpAttack: 95, SpDefense: 90},
		Type1: TypeSteel, Type2: TypePsychic,
	},
}

// LookupSpecies returns the species table entry for id.
func LookupSpecies(id uint16) (Species, bool) {
	s, ok := speciesTable[id]
	return s, ok
}

// IsShedinja reports whether id is Shedinja, whose HP is forced to 1
// regardless of the stat formula.
func IsShedinja(id uint16) bool { return id == SpeciesShedinja }

// AllSpecies returns every entry of the fixed Pokédex table, for listing
// endpoints that let a client browse available rental species.
func AllSpecies() []Species {
	out := make([]Species, 0, len(speciesTable))
	for _, s := range speciesTable {
		out = append(out, s)
	}
	return out
}
