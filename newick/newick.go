package newick

import (
	"errors"
	"fmt"
	"strings"

	"lineagesim/tree"
)

// Sentinel errors returned by Parse.
var (
	// ErrEmptyInput indicates empty or whitespace-only input.
	ErrEmptyInput = errors.New("newick: empty input")

	// ErrSyntax indicates a structural problem in the notation.
	ErrSyntax = errors.New("newick: syntax error")

	// ErrBadLength indicates a missing, non-integer or non-positive
	// branch length.
	ErrBadLength = errors.New("newick: bad branch length")
)

// node is one parsed subtree before flattening into specs.
type node struct {
	label    string
	length   int
	children []*node
}

// parser is a single-pass cursor over the input string.
type parser struct {
	s    string
	pos  int
	auto int // counter for synthesized labels
}

// Parse converts one newick string into branch specs for tree.New.
// Specs are emitted parent-first, so the root is always specs[0].
func Parse(s string) ([]tree.BranchSpec, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyInput
	}

	p := &parser{s: s}
	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eat(';') {
		return nil, p.syntaxf("expected ';'")
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, p.syntaxf("trailing input after ';'")
	}

	specs := make([]tree.BranchSpec, 0, p.auto+1)
	flatten(root, "", &specs)
	return specs, nil
}

// parseNode parses "(child,child,...)label:len" or "label:len".
func (p *parser) parseNode() (*node, error) {
	p.skipSpace()
	n := &node{}

	if p.eat('(') {
		for {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, child)

			p.skipSpace()
			if p.eat(',') {
				continue
			}
			break
		}
		if !p.eat(')') {
			return nil, p.syntaxf("expected ',' or ')'")
		}
	}

	p.skipSpace()
	n.label = p.readLabel()
	if n.label == "" {
		p.auto++
		n.label = fmt.Sprintf("node%d", p.auto)
	}

	length, err := p.readLength()
	if err != nil {
		return nil, err
	}
	n.length = length
	return n, nil
}

// readLabel consumes a run of label characters (possibly empty).
func (p *parser) readLabel() string {
	start := p.pos
	for p.pos < len(p.s) && isLabelByte(p.s[p.pos]) {
		p.pos++
	}
	return p.s[start:p.pos]
}

// readLength consumes ":<positive integer>".
func (p *parser) readLength() (int, error) {
	p.skipSpace()
	if !p.eat(':') {
		return 0, fmt.Errorf("%w: at offset %d: missing ':<length>'", ErrBadLength, p.pos)
	}
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("%w: at offset %d: length must be a positive integer", ErrBadLength, start)
	}
	if p.pos < len(p.s) && (p.s[p.pos] == '.' || p.s[p.pos] == 'e' || p.s[p.pos] == 'E') {
		return 0, fmt.Errorf("%w: at offset %d: fractional lengths are not supported", ErrBadLength, start)
	}

	n := 0
	for _, c := range p.s[start:p.pos] {
		n = n*10 + int(c-'0')
		if n > 1<<30 {
			return 0, fmt.Errorf("%w: at offset %d: length overflows", ErrBadLength, start)
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: at offset %d: length must be positive", ErrBadLength, start)
	}
	return n, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// eat consumes c when it is the next byte.
func (p *parser) eat(c byte) bool {
	if p.pos < len(p.s) && p.s[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) syntaxf(msg string) error {
	return fmt.Errorf("%w: at offset %d: %s", ErrSyntax, p.pos, msg)
}

func isLabelByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '.', c == '-':
		return true
	}
	return false
}

// flatten emits n and its subtree as specs, parent before children.
func flatten(n *node, parent string, out *[]tree.BranchSpec) {
	*out = append(*out, tree.BranchSpec{Label: n.label, Parent: parent, Len: n.length})
	for _, c := range n.children {
		flatten(c, n.label, out)
	}
}
