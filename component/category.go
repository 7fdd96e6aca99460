package component

// Category groups species for census totals, field tables and spawn rules
// Uses bitmask pattern so a species can belong to several groups
type Category uint16

const (
	CatNone Category = 0

	// CatAtom marks single-element atoms
	CatAtom Category = 1 << iota

	// CatJoint marks bonded intermediates (O2, N2, HH, CH2)
	CatJoint

	// CatGreenhouse marks greenhouse gases (O3, H2O, N2O, CO2, CH4)
	CatGreenhouse

	// CatFreeRadical marks free radicals (NO, CFC1, CFC2, OH)
	CatFreeRadical

	// CatPole marks the four compass poles
	CatPole

	// CatRepel marks repel points
	CatRepel

	// CatPlayer marks player agents
	CatPlayer

	// CatHalogen marks atoms that repel everything movable
	CatHalogen
)

const (
	// CatEmitter covers stationary field sources
	CatEmitter = CatPole | CatRepel

	// CatMolecule covers anything that can be unbonded
	CatMolecule = CatJoint | CatGreenhouse | CatFreeRadical
)

// Has reports whether every bit of flag is set
func (c Category) Has(flag Category) bool {
	return c&flag == flag
}

// Any reports whether at least one bit of flag is set
func (c Category) Any(flag Category) bool {
	return c&flag != 0
}
