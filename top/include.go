package top

import (
	"fmt"
	"path/filepath"
	"strings"

	moltop "github.com/rmera/moltop"
)

//Include resolution works on raw lines, before comment filtering: the
//directives are recognized by their leading marker, and the force-field
//normalization variant would have dropped them already.

//extractIncludes returns the paths named by the #include directives in
//lines, resolved against dir (the directory of the file the lines came
//from) and made absolute. The path token is the last field after removing
//any trailing comment, with one level of quoting stripped.
func extractIncludes(dir string, lines []string) ([]string, error) {
	var paths []string
	for _, v := range lines {
		l := strings.Trim(v, "\n\t ")
		if !strings.HasPrefix(l, IncludeMark) {
			continue
		}
		f := fi(cleanString(l))
		if len(f) < 2 {
			return nil, fmt.Errorf("include directive %q has no path", v)
		}
		p := strings.Trim(f[len(f)-1], "\"'")
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		p, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// ResolveIncludes scans the raw lines of the file rootfile for #include
// directives and returns the referenced paths, resolved relative to the
// directory of the file each directive appears in, as absolute paths. Each
// first-level include is opened and scanned once for its own directives, so
// two levels of nesting are fully expanded; paths discovered at the second
// level are appended but not re-scanned (run the resolver on them for
// deeper chains). Repeated paths are kept, not deduplicated. A first-level
// file that does not exist aborts with the error of opening it. Include
// cycles are not detected; callers must supply acyclic include graphs.
func ResolveIncludes(rootfile string, rawlines []string) ([]string, error) {
	paths, err := extractIncludes(filepath.Dir(rootfile), rawlines)
	if err != nil {
		return nil, err
	}
	for _, p := range paths[:len(paths):len(paths)] { //one pass over the first level only
		raw, err := moltop.FileLines(p)
		if err != nil {
			return nil, err
		}
		sub, err := extractIncludes(filepath.Dir(p), raw)
		if err != nil {
			return nil, err
		}
		paths = append(paths, sub...)
	}
	return paths, nil
}
