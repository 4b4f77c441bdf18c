package top

import (
	"strings"
	"testing"
)

func TestBondArity(Te *testing.T) {
	content := []string{
		"[ bonds ]",
		"1 2 1 0.470 1250.0 ; full",
		"3 4 1 0.470",
		"5 6 2",
		"7 8",
	}
	bonds, err := DecodeBonds(content)
	if err != nil {
		Te.Fatal(err)
	}
	if len(bonds) != 4 {
		Te.Fatalf("read %d bonds instead of 4", len(bonds))
	}
	if b := bonds[0]; b.AI != 1 || b.AJ != 2 || b.Func != 1 || len(b.Coeffs) != 2 || b.Coeffs[1] != 1250.0 {
		Te.Errorf("wrong full bond %+v", b)
	}
	if b := bonds[1]; b.Func != 1 || b.Coeffs != nil {
		Te.Errorf("4-field bond should have no coefficients: %+v", b)
	}
	if b := bonds[2]; b.Func != 2 || b.Coeffs != nil {
		Te.Errorf("wrong 3-field bond %+v", b)
	}
	if b := bonds[3]; b.Func != 1 {
		Te.Errorf("2-field bond should default to func 1: %+v", b)
	}
	if _, err = DecodeBonds([]string{"[ bonds ]", "1"}); err == nil {
		Te.Error("no error for a 1-field bond line")
	}
	if _, err = DecodeBonds([]string{"[ bonds ]", "1 2 1 0.470 1250.0 3.0"}); err == nil {
		Te.Error("no error for a 6-field bond line")
	}
	//absent section is none, not an error
	bonds, err = DecodeBonds([]string{"[ atoms ]", "1 C 1 UREA C1 1 0.0"})
	if bonds != nil || err != nil {
		Te.Errorf("absent [ bonds ]: got %v, %v", bonds, err)
	}
}

func TestAngleArity(Te *testing.T) {
	angles, err := DecodeAngles([]string{"[ angles ]", "1 2 3 2 120.0 25.0", "4 5 6 2", "7 8 9 1 120.0"})
	if err != nil {
		Te.Fatal(err)
	}
	if len(angles[0].Coeffs) != 2 || angles[1].Coeffs != nil || angles[2].Coeffs != nil {
		Te.Errorf("wrong angle coefficients: %+v", angles)
	}
	if _, err = DecodeAngles([]string{"[ angles ]", "1 2 3"}); err == nil {
		Te.Error("no error for an angle line without func")
	}
}

func TestDihedralInvariant(Te *testing.T) {
	ids := "1 2 3 4 "
	good := []string{
		ids + "3 1.0 2.0 3.0 4.0 5.0 6.0", //R-B, all six
		ids + "5 1.0 2.0 3.0 4.0 5.0 6.0",
		ids + "4 180.0 10.0 2.0", //periodic, integral multiplicity
		ids + "9 180.0 10.0 3.0",
		ids + "1 180.0 10.0", //7 fields: falls back to ids+func
		ids + "1",            //5 fields: ids+func
	}
	ds, err := DecodeDihedrals(append([]string{"[ dihedrals ]"}, good...))
	if err != nil {
		Te.Fatal(err)
	}
	if len(ds[0].Coeffs) != 6 || len(ds[2].Coeffs) != 3 {
		Te.Errorf("wrong coefficient counts: %+v", ds)
	}
	if ds[4].Coeffs != nil || ds[4].Func != 1 {
		Te.Errorf("7-field dihedral should fall back to ids+func: %+v", ds[4])
	}
	bad := map[string]string{
		ids + "3 1.0 2.0 3.0":             "func 3 without all six coefficients",
		ids + "5 1.0 2.0 3.0":             "func 5 without all six coefficients",
		ids + "4 1.0 2.0 3.0 4.0 5.0 6.0": "func 4 with c3..c5",
		ids + "9 180.0 10.0 2.5":          "func 9 with a non-integral multiplicity",
		ids + "1 1.0 2.0 3.0 4.0 5.0 6.0": "func 1 with c3..c5",
		"1 2 3 4":                         "no func field",
	}
	for line, what := range bad {
		if _, err := DecodeDihedrals([]string{"[ dihedrals ]", line}); err == nil {
			Te.Errorf("no error for %s (%q)", what, line)
		}
	}
}

func TestDihedralTypes(Te *testing.T) {
	content := []string{
		"[ dihedraltypes ]",
		"GL1 C1 C1 C1 9 180.0 10.0 2.0",
		"C1 C1 C1 C1 3 1.0 2.0 3.0 4.0 5.0 6.0",
	}
	dts, err := DecodeDihedralTypes(content)
	if err != nil {
		Te.Fatal(err)
	}
	if dts[0].Names != [4]string{"GL1", "C1", "C1", "C1"} || dts[0].Func != 9 {
		Te.Errorf("wrong dihedraltype %+v", dts[0])
	}
	bad := map[string]string{
		"A B C D 1 180.0 10.0 2.0": "unsupported func",
		"A B C D 9 180.0 10.0":     "7 fields",
		"A B C D 4 180.0":          "6 fields",
		"A B C D 3 1.0 2.0 3.0":    "func 3 with 8 fields",
		"A B C D 9 1 2 3 4 5 6":    "func 9 with c3..c5",
	}
	for line, what := range bad {
		if _, err := DecodeDihedralTypes([]string{"[ dihedraltypes ]", line}); err == nil {
			Te.Errorf("no error for a dihedraltype line with %s (%q)", what, line)
		}
	}
}

func TestAtomTypes(Te *testing.T) {
	content := []string{
		"[ atomtypes ]",
		"P5 72.0 0.000 A 0.24145E-00 0.26027E-02 ; 6 fields",
		"C1 6 72.0 0.000 A 0.23690E-00 0.26027E-02",
	}
	ats, err := DecodeAtomTypes(content)
	if err != nil {
		Te.Fatal(err)
	}
	if ats[0].AtNum != 0 || ats[0].Name != "P5" || ats[0].Mass != 72.0 || ats[0].W != 0.26027e-02 {
		Te.Errorf("wrong 6-field atomtype %+v", ats[0])
	}
	if ats[1].AtNum != 6 || ats[1].Ptype != "A" {
		Te.Errorf("wrong 7-field atomtype %+v", ats[1])
	}
	if _, err = DecodeAtomTypes([]string{"[ atomtypes ]", "P5 72.0 0.000 A 0.1"}); err == nil {
		Te.Error("no error for a 5-field atomtype line")
	}
}

func TestAtoms(Te *testing.T) {
	atoms, err := DecodeAtoms([]string{"[ atoms ]", "10 C 100 UREA C1 1 -0.683"})
	if err != nil {
		Te.Fatal(err)
	}
	a := atoms[0]
	if a.ID != 10 || a.Type != "C" || a.ResNr != 100 || a.ResName != "UREA" ||
		a.Name != "C1" || a.ChargeGroup != 1 || a.Charge != -0.683 {
		Te.Errorf("wrong atom %+v", a)
	}
	_, err = DecodeAtoms([]string{"[ atoms ]", "XX C 100 UREA C1 1 -0.683"})
	if err == nil {
		Te.Error("no error for a non-numeric atom id")
	} else if !strings.Contains(err.Error(), "XX") {
		Te.Errorf("error doesn't name the bad line: %v", err)
	}
}

func TestDefaults(Te *testing.T) {
	D, err := DecodeDefaults([]string{"[ defaults ]", "1 2 yes 0.5 0.8333"})
	if err != nil {
		Te.Fatal(err)
	}
	if D.NBFunc != 1 || D.CombRule != 2 || D.GenPairs != "yes" || D.FudgeLJ != 0.5 || D.FudgeQQ != 0.8333 {
		Te.Errorf("wrong defaults %+v", D)
	}
	D, err = DecodeDefaults([]string{"[ defaults ]", "1 1"})
	if err != nil {
		Te.Fatal(err)
	}
	if D.GenPairs != "" || D.FudgeLJ != 0 || D.FudgeQQ != 0 {
		Te.Errorf("missing trailing fields should stay zero: %+v", D)
	}
	D, err = DecodeDefaults([]string{"[ atoms ]", "1 C 1 U C1 1 0.0"})
	if D != nil || err != nil {
		Te.Errorf("absent [ defaults ]: got %v, %v", D, err)
	}
	if _, err = DecodeDefaults([]string{"[ defaults ]"}); err == nil {
		Te.Error("no error for an empty [ defaults ] section")
	}
}
