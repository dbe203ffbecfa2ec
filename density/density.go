package density

import (
	"fmt"
	"math"

	"lineagesim/tree"
)

// Map holds raw, caller-authored weights: branch label → one non-negative
// weight per pseudotime bin of that branch. Weights are proportional
// probabilities, not pre-normalized.
type Map map[string][]float64

// Normalized is a read-only, tree-wide probability distribution over
// (branch, bin) addresses. Total mass is 1; zero bins remain exactly zero.
type Normalized struct {
	tree    *tree.Tree
	weights [][]float64 // [branch arena index][bin]
	cum     []float64   // cumulative mass over the flattened bin axis
	addr    [][2]int    // flat index → (branch, bin)
}

// Uniform returns the default density: equal mass on every bin of every
// branch.
func Uniform(t *tree.Tree) (*Normalized, error) {
	if t == nil {
		return nil, ErrNilTree
	}

	m := make(Map, t.NumBranches())
	for i := 0; i < t.NumBranches(); i++ {
		br, _ := t.Branch(i)
		w := make([]float64, br.Len)
		for k := range w {
			w[k] = 1
		}
		m[br.Label] = w
	}

	return Normalize(t, m)
}

// Normalize validates m against t and rescales all weights by the global sum
// so the tree-wide mass is 1. Relative shape within and between branches is
// preserved, and zeros are carried through untouched.
//
// Every branch of the tree must be covered: a partially specified map is
// rejected with ErrDensityShape rather than silently zero-filled.
func Normalize(t *tree.Tree, m Map) (*Normalized, error) {
	if t == nil {
		return nil, ErrNilTree
	}

	// Shape checks: unknown branches first, then coverage + bin counts.
	for label := range m {
		if _, err := t.Index(label); err != nil {
			return nil, fmt.Errorf("%w: branch %q is not part of the tree", ErrDensityShape, label)
		}
	}

	nd := &Normalized{
		tree:    t,
		weights: make([][]float64, t.NumBranches()),
		cum:     make([]float64, 0, t.TotalBins()),
		addr:    make([][2]int, 0, t.TotalBins()),
	}

	var total float64
	for i := 0; i < t.NumBranches(); i++ {
		br, _ := t.Branch(i)
		w, ok := m[br.Label]
		if !ok {
			return nil, fmt.Errorf("%w: branch %q has no density", ErrDensityShape, br.Label)
		}
		if len(w) != br.Len {
			return nil, fmt.Errorf("%w: branch %q has %d bins, density has %d",
				ErrDensityShape, br.Label, br.Len, len(w))
		}
		for k, v := range w {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, fmt.Errorf("%w: branch %q bin %d has weight %v",
					ErrDensityValue, br.Label, k, v)
			}
			total += v
		}
		nd.weights[i] = append([]float64(nil), w...)
	}
	if total == 0 {
		return nil, ErrDegenerateDensity
	}

	// Global divide. A zero weight divided stays exactly zero.
	var run float64
	for i := range nd.weights {
		for k := range nd.weights[i] {
			nd.weights[i][k] /= total
			run += nd.weights[i][k]
			nd.cum = append(nd.cum, run)
			nd.addr = append(nd.addr, [2]int{i, k})
		}
	}

	return nd, nil
}

// Tree returns the tree this density was normalized against.
func (nd *Normalized) Tree() *tree.Tree { return nd.tree }

// Weight returns the normalized mass of one (branch, bin) address.
func (nd *Normalized) Weight(branch, bin int) (float64, error) {
	if branch < 0 || branch >= len(nd.weights) {
		return 0, fmt.Errorf("%w: branch index %d", ErrDensityShape, branch)
	}
	if bin < 0 || bin >= len(nd.weights[branch]) {
		return 0, fmt.Errorf("%w: bin %d on branch index %d", ErrDensityShape, bin, branch)
	}

	return nd.weights[branch][bin], nil
}

// BranchMass returns the total normalized mass of one branch.
func (nd *Normalized) BranchMass(label string) (float64, error) {
	i, err := nd.tree.Index(label)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, v := range nd.weights[i] {
		sum += v
	}

	return sum, nil
}

// Total returns the tree-wide mass (1 up to floating-point error).
func (nd *Normalized) Total() float64 {
	if len(nd.cum) == 0 {
		return 0
	}

	return nd.cum[len(nd.cum)-1]
}

// FlatLen returns the number of (branch, bin) addresses on the flattened axis.
func (nd *Normalized) FlatLen() int { return len(nd.cum) }

// Cumulative returns a copy of the cumulative mass over the flattened bin
// axis, in arena order. Entry i is the mass of all addresses ≤ i; a zero bin
// repeats its predecessor's value, giving it zero width under inverse-CDF
// lookup.
func (nd *Normalized) Cumulative() []float64 {
	return append([]float64(nil), nd.cum...)
}

// Address maps a flattened index back to its (branch arena index, bin).
func (nd *Normalized) Address(flat int) (branch, bin int, err error) {
	if flat < 0 || flat >= len(nd.addr) {
		return 0, 0, fmt.Errorf("%w: flat index %d", ErrDensityShape, flat)
	}

	return nd.addr[flat][0], nd.addr[flat][1], nil
}
