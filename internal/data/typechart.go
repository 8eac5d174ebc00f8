package data

// numTypes is the number of entries in the Type enum (including TypeNone).
const numTypes = 18

// typeMult is the per-cell effectiveness multiplier, scaled by ten so it
// can be represented as an integer: 0=immune, 5=not-very-effective (0.5x),
// 10=neutral (1x), 20=super-effective (2x).
type typeMult = uint8

const (
	multImmune uint8 = 0
	multHalf   uint8 = 5
	multNormal uint8 = 10
	multDouble uint8 = 20
)

var typeChart [numTypes][numTypes]typeMult

func setChart(attacker Type, mult uint8, defenders ...Type) {
	for _, d := range defenders {
		typeChart[attacker][d] = mult
	}
}

func init() {
	for a := 0; a < numTypes; a++ {
		for d := 0; d < numTypes; d++ {
			typeChart[a][d] = multNormal
		}
	}

	setChart(TypeNormal, multHalf, TypeRock, TypeSteel)
	setChart(TypeNormal, multImmune, TypeGhost)

	setChart(TypeFighting, multDouble, TypeNormal, TypeRock, TypeSteel, TypeIce, TypeDark)
	setChart(TypeFighting, multHalf, TypePoison, TypeFlying, TypePsychic, TypeBug)
	setChart(TypeFighting, multImmune, TypeGhost)

	setChart(TypeFlying, multDouble, TypeFighting, TypeBug, TypeGrass)
	setChart(TypeFlying, multHalf, TypeRock, TypeSteel, TypeElectric)

	setChart(TypePoison, multDouble, TypeGrass)
	setChart(TypePoison, multHalf, TypePoison, TypeGround, TypeRock, TypeGhost)
	setChart(TypePoison, multImmune, TypeSteel)

	setChart(TypeGround, multDouble, TypePoison, TypeRock, TypeSteel, TypeFire, TypeElectric)
	setChart(TypeGround, multHalf, TypeBug, TypeGrass)
	setChart(TypeGround, multImmune, TypeFlying)

	setChart(TypeRock, multDouble, TypeFlying, TypeBug, TypeFire, TypeIce)
	setChart(TypeRock, multHalf, TypeFighting, TypeGround, TypeSteel)

	setChart(TypeBug, multDouble, TypeGrass, TypePsychic, TypeDark)
	setChart(TypeBug, multHalf, TypeFighting, TypeFlying, TypePoison, TypeGhost, TypeSteel, TypeFire)

	setChart(TypeGhost, multDouble, TypeGhost, TypePsychic)
	setChart(TypeGhost, multHalf, TypeDark)
	setChart(TypeGhost, multImmune, TypeNormal)

	setChart(TypeSteel, multDouble, TypeRock, TypeIce)
	setChart(TypeSteel, multHalf, TypeSteel, TypeFire, TypeWater, TypeElectric)

	setChart(TypeFire, multDouble, TypeBug, TypeSteel, TypeGrass, TypeIce)
	setChart(TypeFire, multHalf, TypeRock, TypeFire, TypeWater, TypeDragon)

	setChart(TypeWater, multDouble, TypeGround, TypeRock, TypeFire)
	setChart(TypeWater, multHalf, TypeWater, TypeGrass, TypeDragon)

	setChart(TypeGrass, multDouble, TypeGround, TypeRock, TypeWater)
	setChart(TypeGrass, multHalf, TypeFlying, TypePoison, TypeBug, TypeSteel, TypeFire, TypeGrass, TypeDragon)

	setChart(TypeElectric, multDouble, TypeFlying, TypeWater)
	setChart(TypeElectric, multHalf, TypeGrass, TypeElectric, TypeDragon)
	setChart(TypeElectric, multImmune, TypeGround)

	setChart(TypePsychic, multDouble, TypeFighting, TypePoison)
	setChart(TypePsychic, multHalf, TypeSteel, TypePsychic)
	setChart(TypePsychic, multImmune, TypeDark)

	setChart(TypeIce, multDouble, TypeFlying, TypeGround, TypeGrass, TypeDragon)
	setChart(TypeIce, multHalf, TypeSteel, TypeFire, TypeWater, TypeIce)

	setChart(TypeDragon, multDouble, TypeDragon)
	setChart(TypeDragon, multHalf, TypeSteel)

	setChart(TypeDark, multDouble, TypeGhost, TypePsychic)
	setChart(TypeDark, multHalf, TypeFighting, TypeDark)
}

// DualNeutral is the baseline combined-effectiveness value for a
// single-neutral-type matchup (10*10).
const DualNeutral = 100

// TypeEffectiveness returns the combined multiplier (scaled so 100 means
// 1x) of moveType against a defender with def1/def2 (def2 may be TypeNone).
func TypeEffectiveness(moveType, def1, def2 Type) int {
	m1 := int(typeChart[moveType][def1])
	m2 := int(typeChart[moveType][def2])
	return m1 * m2
}
