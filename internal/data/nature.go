package data

// NatureStat identifies one of the five non-HP stats a nature can boost or
// hinder.
type NatureStat uint8

const (
	NatureStatAttack NatureStat = iota
	NatureStatDefense
	NatureStatSpeed
	NatureStatSpAttack
	NatureStatSpDefense
)

// natureRow holds the raised and lowered stat for one nature; both equal
// means neutral (all five multipliers are 1.0).
type natureRow struct {
	raised, lowered NatureStat
	neutral         bool
}

var natureTable = [25]natureRow{
	NatureHardy:   {neutral: true},
	NatureLonely:  {raised: NatureStatAttack, lowered: NatureStatDefense},
	NatureBrave:   {raised: NatureStatAttack, lowered: NatureStatSpeed},
	NatureAdamant: {raised: NatureStatAttack, lowered: NatureStatSpAttack},
	NatureNaughty: {raised: NatureStatAttack, lowered: NatureStatSpDefense},
	NatureBold:    {raised: NatureStatDefense, lowered: NatureStatAttack},
	NatureDocile:  {neutral: true},
	NatureRelaxed: {raised: NatureStatDefense, lowered: NatureStatSpeed},
	NatureImpish:  {raised: NatureStatDefense, lowered: NatureStatSpAttack},
	NatureLax:     {raised: NatureStatDefense, lowered: NatureStatSpDefense},
	NatureTimid:   {raised: NatureStatSpeed, lowered: NatureStatAttack},
	NatureHasty:   {raised: NatureStatSpeed, lowered: NatureStatDefense},
	NatureSerious: {neutral: true},
	NatureJolly:   {raised: NatureStatSpeed, lowered: NatureStatSpAttack},
	NatureNaive:   {raised: NatureStatSpeed, lowered: NatureStatSpDefense},
	NatureModest:  {raised: NatureStatSpAttack, lowered: NatureStatAttack},
	NatureMild:    {raised: NatureStatSpAttack, lowered: NatureStatDefense},
	NatureQuiet:   {raised: NatureStatSpAttack, lowered: NatureStatSpeed},
	NatureBashful: {neutral: true},
	NatureRash:    {raised: NatureStatSpAttack, lowered: NatureStatSpDefense},
	NatureCalm:    {raised: NatureStatSpDefense, lowered: NatureStatAttack},
	NatureGentle:  {raised: NatureStatSpDefense, lowered: NatureStatDefense},
	NatureSassy:   {raised: NatureStatSpDefense, lowered: NatureStatSpeed},
	NatureCareful: {raised: NatureStatSpDefense, lowered: NatureStatSpAttack},
	NatureQuirky:  {neutral: true},
}

// NatureModifier returns the nature multiplier, expressed as a
// numerator/denominator pair over 10 (9/10, 10/10 or 11/10), for the given
// stat under the given nature.
func NatureModifier(n Nature, stat NatureStat) (num, den int) {
	row := natureTable[n]
	den = 10
	switch {
	case row.neutral || row.raised == row.lowered:
		return 10, den
	case row.raised == stat:
		return 11, den
	case row.lowered == stat:
		return 9, den
	default:
		return 10, den
	}
}
