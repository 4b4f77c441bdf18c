package top

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	moltop "github.com/rmera/moltop"
)

// ErrPulledTwice reports a second pull on an already-populated aggregate
// field of a Topology.
var ErrPulledTwice = errors.New("aggregate already populated")

// MoleculeCount is one line of the [ molecules ] section: a molecule-type
// name and how many instances of it the system contains. The same name may
// appear on several lines; each keeps its own entry.
type MoleculeCount struct {
	Name  string
	Count int
}

// Topology is the root aggregate read from a top file. System, Molecules,
// IncludeITPs and Inline are populated eagerly by TopFileRead. The force
// field and the molecule topologies are pulled on demand, each at most
// once.
type Topology struct {
	System      string
	Molecules   []MoleculeCount
	IncludeITPs []string //resolved absolute paths, nil if no #include lines
	Inline      []string //normalized content outside system/molecules/includes
	filename    string
	ff          *ForceField
	ffPulled    bool
	mols        []*MolTop
	molsPulled  bool
}

// TopFileRead reads the root topology file name: the system name from
// [ system ], the ordered molecule counts from [ molecules ], the resolved
// include list, and the inline residual (every other normalized line, which
// downstream builders treat as directly-embedded force-field/topology
// content).
func TopFileRead(name string) (*Topology, error) {
	raw, err := moltop.FileLines(name)
	if err != nil {
		return nil, err
	}
	content := appendClean(make([]string, 0, len(raw)), raw, topMarks)
	T := new(Topology)
	T.filename = name
	skip := make(map[int]bool) //content indices that are not inline content

	sstarts, headers, err := FindSections(content, "system")
	if err != nil {
		return nil, decorate(err, "TopFileRead")
	}
	s := sstarts[0]
	if blockEnd(headers, s, len(content)) <= s+1 {
		return nil, fmt.Errorf("top file %s: [ system ] section has no name line", name)
	}
	T.System = content[s+1]
	skip[s] = true
	skip[s+1] = true

	mstarts, headers, err := FindSections(content, "molecules")
	if err != nil {
		return nil, decorate(err, "TopFileRead")
	}
	for _, m := range mstarts {
		skip[m] = true
		for i := m + 1; i < blockEnd(headers, m, len(content)); i++ {
			l := fi(cleanString(content[i]))
			if len(l) < 2 {
				return nil, fmt.Errorf("top file %s: in [ molecules ] line %q: name and count needed", name, content[i])
			}
			count, err := strconv.Atoi(l[1])
			if err != nil {
				return nil, fmt.Errorf("top file %s: in [ molecules ] line %q: %v", name, content[i], err)
			}
			T.Molecules = append(T.Molecules, MoleculeCount{Name: l[0], Count: count})
			skip[i] = true
		}
	}

	T.IncludeITPs, err = ResolveIncludes(name, raw)
	if err != nil {
		return nil, err
	}

	for i, v := range content {
		if skip[i] || strings.HasPrefix(v, IncludeMark) {
			continue
		}
		T.Inline = append(T.Inline, v)
	}
	return T, nil
}

// MolNames returns the set of molecule names referenced by the
// [ molecules ] section, deduplicated, in declaration order.
func (T *Topology) MolNames() []string {
	seen := make(map[string]bool, len(T.Molecules))
	ret := make([]string, 0, len(T.Molecules))
	for _, m := range T.Molecules {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		ret = append(ret, m.Name)
	}
	return ret
}

// PullForceField builds the force field from the inline content plus the
// resolved include files, stores it in the receiver and returns it. It can
// run only once per Topology; a second call returns ErrPulledTwice without
// touching the stored result.
func (T *Topology) PullForceField() (*ForceField, error) {
	if T.ffPulled {
		return nil, fmt.Errorf("top file %s: force field: %w", T.filename, ErrPulledTwice)
	}
	ff, err := ReadForceField(T.Inline, T.IncludeITPs)
	if err != nil {
		return nil, err
	}
	T.ff = ff
	T.ffPulled = true
	return ff, nil
}

// PullMolTops builds the molecule topologies from the inline content plus
// the resolved include files, stores them in the receiver and returns them.
// It can run only once per Topology; a second call returns ErrPulledTwice
// without touching the stored result. Every [ moleculetype ] occurrence
// found is returned, whether or not the [ molecules ] section references
// it; use MolNames to filter on the caller's side.
func (T *Topology) PullMolTops() ([]*MolTop, error) {
	if T.molsPulled {
		return nil, fmt.Errorf("top file %s: molecule topologies: %w", T.filename, ErrPulledTwice)
	}
	mols, err := ReadMolTops(T.Inline, T.IncludeITPs)
	if err != nil {
		return nil, err
	}
	T.mols = mols
	T.molsPulled = true
	return mols, nil
}

// ForceField returns the pulled force field, or nil before PullForceField.
func (T *Topology) ForceField() *ForceField { return T.ff }

// MolTops returns the pulled molecule topologies, or nil before
// PullMolTops.
func (T *Topology) MolTops() []*MolTop { return T.mols }

//decorate adds the caller to the trail of errors that support it and
//returns the error unchanged otherwise.
func decorate(err error, caller string) error {
	if e, ok := err.(moltop.Error); ok {
		e.Decorate(caller)
	}
	return err
}
