package top

import (
	"fmt"
	"strconv"
)

//Per-section decoders. Each one scopes the normalized content to its own
//section name, decodes every data line of every occurrence, and applies the
//token-arity rules of its record kind. An absent section is not an error:
//the decoders return nil, nil so the builders can treat whole categories as
//optional. A present section with a line that matches no arity rule aborts
//with a format error naming that line.

func blockLen(blocks [][]string) int {
	n := 0
	for _, b := range blocks {
		n += len(b)
	}
	return n
}

// DecodeAtoms decodes every [ atoms ] section occurrence in content.
func DecodeAtoms(content []string) ([]*Atom, error) {
	blocks, err := SectionBlocks(content, "atoms")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*Atom, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			a, err := atomFromLine(line)
			if err != nil {
				return nil, fmt.Errorf("in [ atoms ] line %q: %w", line, err)
			}
			ret = append(ret, a)
		}
	}
	return ret, nil
}

func atomFromLine(s string) (A *Atom, err error) {
	defer func() {
		if r := recover(); r != nil {
			A = nil
			err = fmt.Errorf("%s", r)
		}
	}()
	l := fi(cleanString(s))
	if len(l) < 7 {
		return nil, fmt.Errorf("atom line has %d fields, 7 needed", len(l))
	}
	A = new(Atom)
	A.ID, err = strconv.Atoi(l[0])
	qerr(err)
	A.Type = l[1]
	A.ResNr, err = strconv.Atoi(l[2])
	qerr(err)
	A.ResName = l[3]
	A.Name = l[4]
	A.ChargeGroup, err = strconv.Atoi(l[5])
	qerr(err)
	A.Charge, err = strconv.ParseFloat(l[6], 64)
	qerr(err)
	return A, nil
}

// DecodeBonds decodes every [ bonds ] section occurrence in content.
func DecodeBonds(content []string) ([]*Bond, error) {
	blocks, err := SectionBlocks(content, "bonds")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*Bond, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			ids, fn, coeffs, err := bondShapedFromLine(line)
			if err != nil {
				return nil, fmt.Errorf("in [ bonds ] line %q: %w", line, err)
			}
			ret = append(ret, &Bond{AI: ids[0], AJ: ids[1], Func: fn, Coeffs: coeffs})
		}
	}
	return ret, nil
}

// DecodePairs decodes every [ pairs ] section occurrence in content. Pair
// lines follow the same arity ladder as bond lines.
func DecodePairs(content []string) ([]*Pair, error) {
	blocks, err := SectionBlocks(content, "pairs")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*Pair, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			ids, fn, coeffs, err := bondShapedFromLine(line)
			if err != nil {
				return nil, fmt.Errorf("in [ pairs ] line %q: %w", line, err)
			}
			ret = append(ret, &Pair{AI: ids[0], AJ: ids[1], Func: fn, Coeffs: coeffs})
		}
	}
	return ret, nil
}

//The arity ladder for 2-atom records:
//5 fields carry both coefficients, 3 or 4 carry the ids and the func only,
//and 2 just the ids, with the func defaulting to 1.
func bondShapedFromLine(s string) (ids []int, fn int, coeffs []float64, err error) {
	l := fi(cleanString(s))
	switch {
	case len(l) == 5:
		ids, err = parseints(l[:2]...)
		if err != nil {
			return nil, 0, nil, err
		}
		fn, err = strconv.Atoi(l[2])
		if err != nil {
			return nil, 0, nil, err
		}
		coeffs, err = parsefloats(l[3:]...)
		if err != nil {
			return nil, 0, nil, err
		}
	case len(l) == 3 || len(l) == 4:
		ids, err = parseints(l[:2]...)
		if err != nil {
			return nil, 0, nil, err
		}
		fn, err = strconv.Atoi(l[2])
		if err != nil {
			return nil, 0, nil, err
		}
	case len(l) == 2:
		ids, err = parseints(l...)
		if err != nil {
			return nil, 0, nil, err
		}
		fn = 1
	default:
		return nil, 0, nil, fmt.Errorf("line has %d fields, 2 to 5 supported", len(l))
	}
	return ids, fn, coeffs, nil
}

// DecodeAngles decodes every [ angles ] section occurrence in content.
// 6 fields carry both coefficients; anything down to 4 carries the three
// ids and the func only.
func DecodeAngles(content []string) ([]*Angle, error) {
	blocks, err := SectionBlocks(content, "angles")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*Angle, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			a, err := angleFromLine(line)
			if err != nil {
				return nil, fmt.Errorf("in [ angles ] line %q: %w", line, err)
			}
			ret = append(ret, a)
		}
	}
	return ret, nil
}

func angleFromLine(s string) (*Angle, error) {
	l := fi(cleanString(s))
	if len(l) < 4 {
		return nil, fmt.Errorf("angle line has %d fields, at least 4 needed", len(l))
	}
	ids, err := parseints(l[:3]...)
	if err != nil {
		return nil, err
	}
	fn, err := strconv.Atoi(l[3])
	if err != nil {
		return nil, err
	}
	A := &Angle{AI: ids[0], AJ: ids[1], AK: ids[2], Func: fn}
	if len(l) == 6 {
		A.Coeffs, err = parsefloats(l[4:]...)
		if err != nil {
			return nil, err
		}
	}
	return A, nil
}

// DecodeDihedrals decodes every [ dihedrals ] section occurrence in
// content. 11 fields carry the full c0..c5 set, 8 carry c0..c2, and any
// other count falls back to the four ids and the func with no coefficients.
// The func/coefficient invariant is checked on every record.
func DecodeDihedrals(content []string) ([]*Dihedral, error) {
	blocks, err := SectionBlocks(content, "dihedrals")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*Dihedral, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			d, err := dihedralFromLine(line)
			if err != nil {
				return nil, fmt.Errorf("in [ dihedrals ] line %q: %w", line, err)
			}
			ret = append(ret, d)
		}
	}
	return ret, nil
}

func dihedralFromLine(s string) (*Dihedral, error) {
	l := fi(cleanString(s))
	if len(l) < 5 {
		return nil, fmt.Errorf("dihedral line has %d fields, at least 5 needed", len(l))
	}
	ids, err := parseints(l[:4]...)
	if err != nil {
		return nil, err
	}
	fn, err := strconv.Atoi(l[4])
	if err != nil {
		return nil, err
	}
	var coeffs []float64
	if len(l) == 8 || len(l) == 11 {
		coeffs, err = parsefloats(l[5:]...)
		if err != nil {
			return nil, err
		}
	}
	return NewDihedral(ids, fn, coeffs)
}

// DecodeDefaults decodes the single data line of the first [ defaults ]
// section in content. The first two fields are mandatory; gen-pairs and the
// fudge factors keep their zero values when the line stops early.
func DecodeDefaults(content []string) (D *Defaults, err error) {
	blocks, err := SectionBlocks(content, "defaults")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(blocks[0]) == 0 {
		return nil, fmt.Errorf("[ defaults ] section present but empty")
	}
	defer func() {
		if r := recover(); r != nil {
			D = nil
			err = fmt.Errorf("in [ defaults ] line %q: %s", blocks[0][0], r)
		}
	}()
	l := fi(cleanString(blocks[0][0]))
	if len(l) < 2 {
		return nil, fmt.Errorf("in [ defaults ] line %q: %d fields, at least 2 needed", blocks[0][0], len(l))
	}
	D = new(Defaults)
	D.NBFunc, err = strconv.Atoi(l[0])
	qerr(err)
	D.CombRule, err = strconv.Atoi(l[1])
	qerr(err)
	if len(l) > 2 {
		D.GenPairs = l[2]
	}
	if len(l) > 3 {
		D.FudgeLJ, err = strconv.ParseFloat(l[3], 64)
		qerr(err)
	}
	if len(l) > 4 {
		D.FudgeQQ, err = strconv.ParseFloat(l[4], 64)
		qerr(err)
	}
	return D, nil
}

// DecodeAtomTypes decodes every [ atomtypes ] section occurrence in
// content. 7-field lines carry the atomic number in the second column;
// 6-field lines don't, and the AtNum field stays 0.
func DecodeAtomTypes(content []string) ([]*AtomType, error) {
	blocks, err := SectionBlocks(content, "atomtypes")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*AtomType, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			a, err := atomTypeFromLine(line)
			if err != nil {
				return nil, fmt.Errorf("in [ atomtypes ] line %q: %w", line, err)
			}
			ret = append(ret, a)
		}
	}
	return ret, nil
}

func atomTypeFromLine(s string) (A *AtomType, err error) {
	defer func() {
		if r := recover(); r != nil {
			A = nil
			err = fmt.Errorf("%s", r)
		}
	}()
	l := fi(cleanString(s))
	if len(l) != 6 && len(l) != 7 {
		return nil, fmt.Errorf("atomtype line has %d fields, 6 or 7 supported", len(l))
	}
	A = new(AtomType)
	A.Name = l[0]
	if len(l) == 7 {
		A.AtNum, err = strconv.Atoi(l[1])
		qerr(err)
		l = l[2:]
	} else {
		l = l[1:]
	}
	A.Mass, err = strconv.ParseFloat(l[0], 64)
	qerr(err)
	A.Charge, err = strconv.ParseFloat(l[1], 64)
	qerr(err)
	A.Ptype = l[2]
	A.V, err = strconv.ParseFloat(l[3], 64)
	qerr(err)
	A.W, err = strconv.ParseFloat(l[4], 64)
	qerr(err)
	return A, nil
}

// DecodeNonbondedParams decodes every [ nonbond_params ] section occurrence
// in content.
func DecodeNonbondedParams(content []string) ([]*NonbondedParam, error) {
	blocks, err := SectionBlocks(content, "nonbond_params")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*NonbondedParam, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			p, err := nonbondedFromLine(line)
			if err != nil {
				return nil, fmt.Errorf("in [ nonbond_params ] line %q: %w", line, err)
			}
			ret = append(ret, p)
		}
	}
	return ret, nil
}

func nonbondedFromLine(s string) (*NonbondedParam, error) {
	l := fi(cleanString(s))
	if len(l) != 5 {
		return nil, fmt.Errorf("nonbond_params line has %d fields, 5 needed", len(l))
	}
	fn, err := strconv.Atoi(l[2])
	if err != nil {
		return nil, err
	}
	vw, err := parsefloats(l[3:]...)
	if err != nil {
		return nil, err
	}
	return &NonbondedParam{Names: [2]string{l[0], l[1]}, Func: fn, V: vw[0], W: vw[1]}, nil
}

// DecodeBondTypes decodes every [ bondtypes ] section occurrence in
// content. The arity ladder mirrors bonds, keyed by atom-type names, except
// that the func column is never optional.
func DecodeBondTypes(content []string) ([]*BondType, error) {
	blocks, err := SectionBlocks(content, "bondtypes")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*BondType, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			l := fi(cleanString(line))
			if len(l) < 3 || len(l) > 5 {
				return nil, fmt.Errorf("in [ bondtypes ] line %q: %d fields, 3 to 5 supported", line, len(l))
			}
			fn, err := strconv.Atoi(l[2])
			if err != nil {
				return nil, fmt.Errorf("in [ bondtypes ] line %q: %w", line, err)
			}
			B := &BondType{Names: [2]string{l[0], l[1]}, Func: fn}
			if len(l) == 5 {
				B.Coeffs, err = parsefloats(l[3:]...)
				if err != nil {
					return nil, fmt.Errorf("in [ bondtypes ] line %q: %w", line, err)
				}
			}
			ret = append(ret, B)
		}
	}
	return ret, nil
}

// DecodeAngleTypes decodes every [ angletypes ] section occurrence in
// content.
func DecodeAngleTypes(content []string) ([]*AngleType, error) {
	blocks, err := SectionBlocks(content, "angletypes")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*AngleType, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			l := fi(cleanString(line))
			if len(l) < 4 || len(l) > 6 {
				return nil, fmt.Errorf("in [ angletypes ] line %q: %d fields, 4 to 6 supported", line, len(l))
			}
			fn, err := strconv.Atoi(l[3])
			if err != nil {
				return nil, fmt.Errorf("in [ angletypes ] line %q: %w", line, err)
			}
			A := &AngleType{Names: [3]string{l[0], l[1], l[2]}, Func: fn}
			if len(l) == 6 {
				A.Coeffs, err = parsefloats(l[4:]...)
				if err != nil {
					return nil, fmt.Errorf("in [ angletypes ] line %q: %w", line, err)
				}
			}
			ret = append(ret, A)
		}
	}
	return ret, nil
}

// DecodeDihedralTypes decodes every [ dihedraltypes ] section occurrence in
// content. Unlike topology dihedrals, there is no ids+func fallback: a line
// must carry 8 or 11 fields, and the func/coefficient invariant is checked
// on every record.
func DecodeDihedralTypes(content []string) ([]*DihedralType, error) {
	blocks, err := SectionBlocks(content, "dihedraltypes")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*DihedralType, 0, blockLen(blocks))
	for _, b := range blocks {
		for _, line := range b {
			d, err := dihedralTypeFromLine(line)
			if err != nil {
				return nil, fmt.Errorf("in [ dihedraltypes ] line %q: %w", line, err)
			}
			ret = append(ret, d)
		}
	}
	return ret, nil
}

func dihedralTypeFromLine(s string) (*DihedralType, error) {
	l := fi(cleanString(s))
	if len(l) != 8 && len(l) != 11 {
		return nil, fmt.Errorf("dihedraltype line has %d fields, 8 or 11 supported", len(l))
	}
	fn, err := strconv.Atoi(l[4])
	if err != nil {
		return nil, err
	}
	coeffs, err := parsefloats(l[5:]...)
	if err != nil {
		return nil, err
	}
	return NewDihedralType([4]string{l[0], l[1], l[2], l[3]}, fn, coeffs)
}

//The moleculetype header is a single data line: the molecule name, and
//optionally the exclusion count.
func molTypeHeaderFromBlock(block []string) (name string, nrexcl int, err error) {
	if len(block) == 0 {
		return "", 0, fmt.Errorf("[ moleculetype ] section present but empty")
	}
	l := fi(cleanString(block[0]))
	if len(l) == 0 {
		return "", 0, fmt.Errorf("[ moleculetype ] header line %q has no fields", block[0])
	}
	name = l[0]
	if len(l) > 1 {
		nrexcl, err = strconv.Atoi(l[1])
		if err != nil {
			return "", 0, fmt.Errorf("in [ moleculetype ] line %q: %w", block[0], err)
		}
	}
	return name, nrexcl, nil
}
