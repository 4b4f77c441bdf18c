package top

import (
	"reflect"
	"testing"
)

func TestFindSections(Te *testing.T) {
	content := []string{
		"[ moleculetype ]",
		"DOPC 1",
		"[ atoms ]",
		"1 Q0 1 DOPC NC3 1 1.0",
		"[ moleculetype ]",
		"DPPC 1",
		"[ATOMS]", //case and spacing shouldn't matter
		"1 Q0 1 DPPC NC3 1 1.0",
		"2 Qa 1 DPPC PO4 2 -1.0",
	}
	starts, headers, err := FindSections(content, "moleculetype")
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(starts, []int{0, 4}) {
		Te.Errorf("wrong starts %v", starts)
	}
	if !reflect.DeepEqual(headers, []int{0, 2, 4, 6}) {
		Te.Errorf("wrong headers %v", headers)
	}
	//each block must end at the next header of _any_ name, not at the
	//next occurrence of the same name.
	if end := blockEnd(headers, 0, len(content)); end != 2 {
		Te.Errorf("first moleculetype block ends at %d, want 2", end)
	}
	if end := blockEnd(headers, 4, len(content)); end != 6 {
		Te.Errorf("second moleculetype block ends at %d, want 6", end)
	}
	blocks, err := SectionBlocks(content, "atoms")
	if err != nil {
		Te.Fatal(err)
	}
	if len(blocks) != 2 || len(blocks[0]) != 1 || len(blocks[1]) != 2 {
		Te.Errorf("wrong atoms blocks %v", blocks)
	}
}

func TestFindSectionsAbsent(Te *testing.T) {
	content := []string{"[ atoms ]", "1 Q0 1 DOPC NC3 1 1.0"}
	_, _, err := FindSections(content, "bonds")
	if err == nil {
		Te.Fatal("no error for an absent section")
	}
	if !IsNoSection(err) {
		Te.Errorf("absent section reported as %T: %v", err, err)
	}
	var nse *NoSectionError = err.(*NoSectionError)
	if nse.Section() != "bonds" {
		Te.Errorf("wrong section in error: %s", nse.Section())
	}
	//present-but-empty is not absent
	blocks, err := SectionBlocks([]string{"[ bonds ]"}, "bonds")
	if err != nil {
		Te.Fatalf("present-but-empty section reported absent: %v", err)
	}
	if len(blocks) != 1 || len(blocks[0]) != 0 {
		Te.Errorf("wrong blocks for an empty section: %v", blocks)
	}
}

func TestNormalize(Te *testing.T) {
	inline := []string{
		"; a full-line comment",
		"",
		"  [ defaults ]  ",
		"1 1 ; trailing comments stay here, cleanString handles them later",
		"* a banner",
		"#include \"foo.itp\"",
	}
	got, err := Normalize(inline, nil)
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{"[ defaults ]", "1 1 ; trailing comments stay here, cleanString handles them later",
		"* a banner", "#include \"foo.itp\""}
	if !reflect.DeepEqual(got, want) {
		Te.Errorf("default variant: got %q", got)
	}
	got, err = Normalize(inline, nil, ffMarks...)
	if err != nil {
		Te.Fatal(err)
	}
	want = want[:2]
	if !reflect.DeepEqual(got, want) {
		Te.Errorf("force-field variant: got %q", got)
	}
	//missing files abort
	if _, err = Normalize(nil, []string{"../test/no_such_file.itp"}); err == nil {
		Te.Error("no error for a missing file")
	}
}
