package top

import (
	"strings"

	moltop "github.com/rmera/moltop"
)

//Line normalization. Every parser in this package works on a flat slice of
//content lines: trimmed, with blank lines and marker-prefixed lines removed.

// CommentMark starts a Gromacs comment, full-line or trailing.
const CommentMark = ";"

// IncludeMark starts an include directive.
const IncludeMark = "#include"

//topMarks is what gets dropped when reading a top file for its own sections.
//ffMarks is the stricter variant used when concatenating parameter files into
//one force field: decorative '*' banners and the include directives themselves
//must not end up inside section blocks.
var topMarks = []string{CommentMark}
var ffMarks = []string{CommentMark, "*", IncludeMark}

func appendClean(dst, raw []string, drop []string) []string {
	for _, v := range raw {
		l := strings.Trim(v, "\n\t ")
		if l == "" {
			continue
		}
		dropped := false
		for _, m := range drop {
			if strings.HasPrefix(l, m) {
				dropped = true
				break
			}
		}
		if !dropped {
			dst = append(dst, l)
		}
	}
	return dst
}

// Normalize concatenates the given in-memory lines and the full contents of
// the given files, in that order, into one normalized line sequence: each
// line is trimmed, and empty lines and lines starting with any of the drop
// markers are removed. With no markers given, only ';' comments are dropped.
// Either inline or files may be nil. A missing file aborts with its error.
func Normalize(inline []string, files []string, drop ...string) ([]string, error) {
	if len(drop) == 0 {
		drop = topMarks
	}
	ret := make([]string, 0, len(inline))
	ret = appendClean(ret, inline, drop)
	for _, f := range files {
		raw, err := moltop.FileLines(f)
		if err != nil {
			return nil, err
		}
		ret = appendClean(ret, raw, drop)
	}
	return ret, nil
}
