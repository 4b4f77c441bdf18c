package top

import "fmt"

// ReadMolTops builds one MolTop per [ moleculetype ] occurrence in the
// given inline lines plus files, in file order. Each occurrence owns the
// lines from its header up to the next [ moleculetype ] header or the end
// of the content, and its atom/bond/pair/angle/dihedral sections are
// decoded against that sub-range only, so records of one molecule are never
// attributed to another. Returns nil, nil if no [ moleculetype ] occurs.
func ReadMolTops(inline []string, files []string) ([]*MolTop, error) {
	content, err := Normalize(inline, files, ffMarks...)
	if err != nil {
		return nil, err
	}
	starts, _, err := FindSections(content, "moleculetype")
	if err != nil {
		if IsNoSection(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]*MolTop, 0, len(starts))
	for i, s := range starts {
		end := len(content)
		if i < len(starts)-1 {
			end = starts[i+1]
		}
		m, err := molTopFromRange(content[s:end])
		if err != nil {
			return nil, err
		}
		ret = append(ret, m)
	}
	return ret, nil
}

//molTopFromRange decodes one molecule type from its own sub-range of the
//content, starting at its [ moleculetype ] header.
func molTopFromRange(sub []string) (*MolTop, error) {
	blocks, err := SectionBlocks(sub, "moleculetype")
	if err != nil {
		return nil, err
	}
	M := new(MolTop)
	M.Name, M.NrExcl, err = molTypeHeaderFromBlock(blocks[0])
	if err != nil {
		return nil, err
	}
	M.Atoms, err = DecodeAtoms(sub)
	if err != nil {
		return nil, fmt.Errorf("in moleculetype %s: %w", M.Name, err)
	}
	M.Bonds, err = DecodeBonds(sub)
	if err != nil {
		return nil, fmt.Errorf("in moleculetype %s: %w", M.Name, err)
	}
	M.Pairs, err = DecodePairs(sub)
	if err != nil {
		return nil, fmt.Errorf("in moleculetype %s: %w", M.Name, err)
	}
	M.Angles, err = DecodeAngles(sub)
	if err != nil {
		return nil, fmt.Errorf("in moleculetype %s: %w", M.Name, err)
	}
	M.Dihedrals, err = DecodeDihedrals(sub)
	if err != nil {
		return nil, fmt.Errorf("in moleculetype %s: %w", M.Name, err)
	}
	return M, nil
}
