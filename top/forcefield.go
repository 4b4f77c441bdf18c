package top

import "fmt"

// ReadForceField builds a ForceField from inline topology lines (content of
// a root top file outside its system/molecules sections) plus zero or more
// parameter files, read in order after the inline lines. The input is
// normalized once with the force-field variant (';' comments, '*' banners
// and #include directives dropped), then each category is decoded against
// that single normalized content. [ defaults ] is mandatory; every other
// category is left nil when its section never occurs.
func ReadForceField(inline []string, files []string) (*ForceField, error) {
	content, err := Normalize(inline, files, ffMarks...)
	if err != nil {
		return nil, err
	}
	F := new(ForceField)
	F.Defaults, err = DecodeDefaults(content)
	if err != nil {
		return nil, err
	}
	if F.Defaults == nil {
		return nil, fmt.Errorf("force field content has no [ defaults ] section")
	}
	F.AtomTypes, err = DecodeAtomTypes(content)
	if err != nil {
		return nil, err
	}
	F.NonbondedParams, err = DecodeNonbondedParams(content)
	if err != nil {
		return nil, err
	}
	F.BondTypes, err = DecodeBondTypes(content)
	if err != nil {
		return nil, err
	}
	F.AngleTypes, err = DecodeAngleTypes(content)
	if err != nil {
		return nil, err
	}
	F.DihedralTypes, err = DecodeDihedralTypes(content)
	if err != nil {
		return nil, err
	}
	return F, nil
}
