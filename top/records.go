package top

import (
	"fmt"
	"math"
)

//The record types. All of them are plain data, built by the decoders and
//never mutated afterwards. Optional trailing coefficients are kept as a
//prefix slice: len(Coeffs)==0 means none given, 2 means c0,c1, 3 means
//c0..c2 and 6 means the full c0..c5 set.

// Atom is one line of a [ atoms ] section: one atom of a molecule type.
type Atom struct {
	ID          int
	Type        string
	ResNr       int
	ResName     string
	Name        string
	ChargeGroup int
	Charge      float64
}

// Bond is one line of a [ bonds ] section.
type Bond struct {
	AI, AJ int
	Func   int
	Coeffs []float64
}

// Pair is one line of a [ pairs ] section. Pairs are bond-shaped.
type Pair struct {
	AI, AJ int
	Func   int
	Coeffs []float64
}

// Angle is one line of an [ angles ] section.
type Angle struct {
	AI, AJ, AK int
	Func       int
	Coeffs     []float64
}

// Dihedral is one line of a [ dihedrals ] section.
type Dihedral struct {
	AI, AJ, AK, AL int
	Func           int
	Coeffs         []float64
}

// Defaults is the single data line of the mandatory [ defaults ] section of
// a force field. GenPairs, FudgeLJ and FudgeQQ are optional in the format
// and keep their zero values when absent.
type Defaults struct {
	NBFunc   int
	CombRule int
	GenPairs string
	FudgeLJ  float64
	FudgeQQ  float64
}

// AtomType is one line of an [ atomtypes ] section. V and W hold the last
// two columns: sigma/epsilon or C6/C12 depending on the combination rule in
// Defaults; this package does not convert between the two. AtNum is 0 when
// the atomic-number column is absent (6-column files).
type AtomType struct {
	Name   string
	AtNum  int
	Mass   float64
	Charge float64
	Ptype  string
	V, W   float64
}

// NonbondedParam is one line of a [ nonbond_params ] section.
type NonbondedParam struct {
	Names [2]string
	Func  int
	V, W  float64
}

// BondType is one line of a [ bondtypes ] section.
type BondType struct {
	Names  [2]string
	Func   int
	Coeffs []float64
}

// AngleType is one line of an [ angletypes ] section.
type AngleType struct {
	Names  [3]string
	Func   int
	Coeffs []float64
}

// DihedralType is one line of a [ dihedraltypes ] section.
type DihedralType struct {
	Names  [4]string
	Func   int
	Coeffs []float64
}

// MolTop is one [ moleculetype ] occurrence: its header (name and exclusion
// count) and every bonded record up to the next [ moleculetype ].
type MolTop struct {
	Name      string
	NrExcl    int
	Atoms     []*Atom
	Bonds     []*Bond
	Pairs     []*Pair
	Angles    []*Angle
	Dihedrals []*Dihedral
}

// ForceField aggregates the per-type parameter records of one or more
// parameter files. Defaults is always present; the other categories are nil
// when their sections never occur.
type ForceField struct {
	Defaults        *Defaults
	AtomTypes       []*AtomType
	NonbondedParams []*NonbondedParam
	BondTypes       []*BondType
	AngleTypes      []*AngleType
	DihedralTypes   []*DihedralType
}

//Dihedral coefficient arity is tied to the function type. Funcs 3 and 5
//(Ryckaert-Bellemans and Fourier) carry the full c0..c5 set. Funcs 4 and 9
//(periodic impropers/proper multiples) carry c0, c1 and an integral
//multiplicity in c2, and never c3..c5. The check runs before the record is
//built, so no invalid record ever reaches a collection.

func validDihedralCoeffs(fn int, coeffs []float64, forcefield bool) error {
	switch fn {
	case 3, 5:
		if len(coeffs) != 6 {
			return fmt.Errorf("dihedral func %d requires all of c0..c5, got %d coefficients", fn, len(coeffs))
		}
	case 4, 9:
		if len(coeffs) > 3 {
			return fmt.Errorf("dihedral func %d forbids c3..c5, got %d coefficients", fn, len(coeffs))
		}
		if forcefield && len(coeffs) != 3 {
			return fmt.Errorf("dihedraltype func %d requires c0, c1 and a multiplicity in c2, got %d coefficients", fn, len(coeffs))
		}
		if len(coeffs) == 3 && coeffs[2] != math.Trunc(coeffs[2]) {
			return fmt.Errorf("dihedral func %d requires an integral multiplicity in c2, got %v", fn, coeffs[2])
		}
	default:
		if forcefield {
			return fmt.Errorf("unsupported func %d for a dihedraltype", fn)
		}
		if len(coeffs) > 3 {
			return fmt.Errorf("dihedral func %d forbids c3..c5, got %d coefficients", fn, len(coeffs))
		}
	}
	return nil
}

// NewDihedral validates fn against the given coefficients and builds a
// topology dihedral. ids must hold the four atom ids, in order.
func NewDihedral(ids []int, fn int, coeffs []float64) (*Dihedral, error) {
	if len(ids) != 4 {
		return nil, fmt.Errorf("dihedral needs 4 atom ids, got %d", len(ids))
	}
	if err := validDihedralCoeffs(fn, coeffs, false); err != nil {
		return nil, err
	}
	return &Dihedral{AI: ids[0], AJ: ids[1], AK: ids[2], AL: ids[3], Func: fn, Coeffs: coeffs}, nil
}

// NewDihedralType is the force-field counterpart of NewDihedral. It is
// stricter: funcs other than 3, 4, 5 and 9 are rejected outright.
func NewDihedralType(names [4]string, fn int, coeffs []float64) (*DihedralType, error) {
	if err := validDihedralCoeffs(fn, coeffs, true); err != nil {
		return nil, err
	}
	return &DihedralType{Names: names, Func: fn, Coeffs: coeffs}, nil
}
