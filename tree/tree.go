package tree

import "fmt"

// BranchSpec describes one branch of the lineage before construction.
//
// Label must be unique within the tree. Parent is the label of the parent
// branch, or the empty string for the root. Len is the branch duration in
// discrete pseudotime bins and must be positive.
type BranchSpec struct {
	Label  string
	Parent string
	Len    int
}

// Branch is one record of the branch arena.
//
// Parent is the arena index of the parent branch, or NoParent for the root.
// Children holds arena indices in spec order. Offset is the global pseudotime
// of the branch's first bin (sum of ancestor lengths).
type Branch struct {
	Label    string
	Len      int
	Parent   int
	Children []int
	Offset   int
}

// NoParent is the Parent value of the root branch.
const NoParent = -1

// Tree is the immutable lineage structure shared by all simulator stages.
type Tree struct {
	branches []Branch
	index    map[string]int
	order    []int // topological: every parent precedes its children
	root     int
	genes    int
	bins     int
	maxTime  int
}

// New validates specs and builds the branch arena.
//
// geneCount is fixed for the simulation run and is carried by the tree so
// that every downstream stage agrees on the matrix width.
func New(specs []BranchSpec, geneCount int) (*Tree, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no branches", ErrInvalidTopology)
	}
	if geneCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadGeneCount, geneCount)
	}

	t := &Tree{
		branches: make([]Branch, len(specs)),
		index:    make(map[string]int, len(specs)),
		root:     NoParent,
		genes:    geneCount,
	}

	// Pass 1: lengths, labels, root detection.
	for i, s := range specs {
		if s.Len <= 0 {
			return nil, fmt.Errorf("%w: branch %q has length %d", ErrNonPositiveLength, s.Label, s.Len)
		}
		if s.Label == "" {
			return nil, fmt.Errorf("%w: empty branch label", ErrInvalidTopology)
		}
		if _, dup := t.index[s.Label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBranch, s.Label)
		}
		t.index[s.Label] = i
		t.branches[i] = Branch{Label: s.Label, Len: s.Len, Parent: NoParent}
		t.bins += s.Len

		if s.Parent == "" {
			if t.root != NoParent {
				return nil, fmt.Errorf("%w: multiple roots (%q and %q)",
					ErrInvalidTopology, t.branches[t.root].Label, s.Label)
			}
			t.root = i
		}
	}
	if t.root == NoParent {
		return nil, fmt.Errorf("%w: no root branch", ErrInvalidTopology)
	}

	// Pass 2: resolve parents, record children.
	for i, s := range specs {
		if s.Parent == "" {
			continue
		}
		p, ok := t.index[s.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: branch %q references unknown parent %q",
				ErrInvalidTopology, s.Label, s.Parent)
		}
		if p == i {
			return nil, fmt.Errorf("%w: branch %q is its own parent", ErrInvalidTopology, s.Label)
		}
		t.branches[i].Parent = p
		t.branches[p].Children = append(t.branches[p].Children, i)
	}

	// Pass 3: walk down from the root. Anything not reached sits on a cycle
	// or in a disconnected component.
	t.order = make([]int, 0, len(specs))
	queue := []int{t.root}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		t.order = append(t.order, i)

		br := &t.branches[i]
		if br.Parent != NoParent {
			br.Offset = t.branches[br.Parent].Offset + t.branches[br.Parent].Len
		}
		if end := br.Offset + br.Len; end > t.maxTime {
			t.maxTime = end
		}
		queue = append(queue, br.Children...)
	}
	if len(t.order) != len(specs) {
		return nil, fmt.Errorf("%w: %d of %d branches unreachable from root %q",
			ErrInvalidTopology, len(specs)-len(t.order), len(specs), t.branches[t.root].Label)
	}

	return t, nil
}

// NumBranches returns the number of branches in the arena.
func (t *Tree) NumBranches() int { return len(t.branches) }

// GeneCount returns the number of genes declared at construction time.
func (t *Tree) GeneCount() int { return t.genes }

// TotalBins returns the number of (branch, bin) addresses over the whole tree.
func (t *Tree) TotalBins() int { return t.bins }

// MaxTime returns the largest global pseudotime reached by any branch end.
func (t *Tree) MaxTime() int { return t.maxTime }

// Root returns the arena index of the root branch.
func (t *Tree) Root() int { return t.root }

// Branch returns a copy of the branch record at arena index i.
// The Children slice is cloned, so callers cannot mutate the tree through it.
func (t *Tree) Branch(i int) (Branch, error) {
	if i < 0 || i >= len(t.branches) {
		return Branch{}, fmt.Errorf("%w: index %d", ErrBranchNotFound, i)
	}
	br := t.branches[i]
	br.Children = append([]int(nil), br.Children...)

	return br, nil
}

// Index returns the arena index for a branch label.
func (t *Tree) Index(label string) (int, error) {
	i, ok := t.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBranchNotFound, label)
	}

	return i, nil
}

// Order returns the branch indices in topological order (every parent before
// its children). The returned slice is a copy.
func (t *Tree) Order() []int {
	return append([]int(nil), t.order...)
}

// Labels returns all branch labels in arena order. The slice is a copy.
func (t *Tree) Labels() []string {
	out := make([]string, len(t.branches))
	for i := range t.branches {
		out[i] = t.branches[i].Label
	}

	return out
}
