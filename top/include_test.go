package top

import (
	"path/filepath"
	"strings"
	"testing"

	moltop "github.com/rmera/moltop"
)

func TestResolveIncludes(Te *testing.T) {
	root := "../test/nested/a.top"
	raw, err := moltop.FileLines(root)
	if err != nil {
		Te.Fatal(err)
	}
	paths, err := ResolveIncludes(root, raw)
	if err != nil {
		Te.Fatal(err)
	}
	if len(paths) != 2 {
		Te.Fatalf("resolved %d paths instead of 2: %v", len(paths), paths)
	}
	//b.itp comes from a.top, c.itp from inside b.itp, resolved against
	//b's own directory. Both must come back absolute.
	for i, want := range []string{"b.itp", "c.itp"} {
		if !filepath.IsAbs(paths[i]) {
			Te.Errorf("path %q is not absolute", paths[i])
		}
		if filepath.Base(paths[i]) != want {
			Te.Errorf("path %d is %q, want base %q", i, paths[i], want)
		}
	}
	if filepath.Dir(paths[1]) != filepath.Dir(paths[0]) {
		Te.Errorf("second-level include not resolved against its including file: %v", paths)
	}
}

func TestResolveIncludesMissing(Te *testing.T) {
	_, err := ResolveIncludes("../test/ghost.top", []string{`#include "no_such.itp"`})
	if err == nil {
		Te.Fatal("no error for a missing included file")
	}
}

func TestResolveIncludesQuoting(Te *testing.T) {
	//trailing comments and quotes are stripped from the directive, and
	//non-directive lines are ignored; the named file must still exist.
	raw := []string{
		"; some comment",
		`#include "toppar/martini_v2.2.itp" ; the main parameter file`,
		"[ system ]",
		"whatever",
	}
	paths, err := ResolveIncludes("../test/system.top", raw)
	if err != nil {
		Te.Fatal(err)
	}
	if len(paths) != 1 || !strings.HasSuffix(paths[0], filepath.Join("test", "toppar", "martini_v2.2.itp")) {
		Te.Errorf("wrong resolution %v", paths)
	}
}
