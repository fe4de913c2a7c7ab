// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgquery

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// ParseGroupingSets parses a compact notation for the grouping-set items
// of a GROUP BY clause, with columns written as sort/group refs:
//
//	rollup(1,2), cube(3,(4,5)), sets((1),(2),()), (1,2), 3, ()
//
// "grouping sets" is accepted as a synonym of "sets".
func ParseGroupingSets(s string) ([]*GroupingSet, error) {
	p := groupingParser{in: s}
	var res []*GroupingSet
	for {
		gs, err := p.item()
		if err != nil {
			return nil, err
		}
		res = append(res, gs)
		if !p.accept(',') {
			break
		}
	}
	if p.skipSpace(); p.pos != len(p.in) {
		return nil, p.errorf("unexpected %q", p.in[p.pos:])
	}
	return res, nil
}

type groupingParser struct {
	in  string
	pos int
}

func (p *groupingParser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.Newf(format, args...), "grouping sets at offset %d", errors.Safe(p.pos))
}

func (p *groupingParser) skipSpace() {
	for p.pos < len(p.in) && unicode.IsSpace(rune(p.in[p.pos])) {
		p.pos++
	}
}

func (p *groupingParser) peek() byte {
	p.skipSpace()
	if p.pos < len(p.in) {
		return p.in[p.pos]
	}
	return 0
}

func (p *groupingParser) accept(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *groupingParser) expect(c byte) error {
	if !p.accept(c) {
		return p.errorf("expected %q", c)
	}
	return nil
}

func (p *groupingParser) word() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) && (unicode.IsLetter(rune(p.in[p.pos])) || p.in[p.pos] == '_') {
		p.pos++
	}
	return strings.ToLower(p.in[start:p.pos])
}

func (p *groupingParser) ref() (uint32, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) && p.in[p.pos] >= '0' && p.in[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errorf("expected a sort/group ref")
	}
	v, err := strconv.ParseUint(p.in[start:p.pos], 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, "parsing sort/group ref")
	}
	return uint32(v), nil
}

// item parses one grouping set of any kind.
func (p *groupingParser) item() (*GroupingSet, error) {
	c := p.peek()
	switch {
	case c == '(':
		return p.simple()
	case c >= '0' && c <= '9':
		ref, err := p.ref()
		if err != nil {
			return nil, err
		}
		return &GroupingSet{Kind: GroupingSetSimple, Refs: []uint32{ref}}, nil
	}

	var kind GroupingSetKind
	switch w := p.word(); w {
	case "rollup":
		kind = GroupingSetRollup
	case "cube":
		kind = GroupingSetCube
	case "sets":
		kind = GroupingSetSets
	case "grouping":
		if p.word() != "sets" {
			return nil, p.errorf(`expected "sets"`)
		}
		kind = GroupingSetSets
	default:
		return nil, p.errorf("unexpected %q", w)
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	gs := &GroupingSet{Kind: kind}
	for {
		var elem *GroupingSet
		var err error
		if kind == GroupingSetSets {
			elem, err = p.item()
		} else {
			elem, err = p.rollupElem()
		}
		if err != nil {
			return nil, err
		}
		gs.Content = append(gs.Content, elem)
		if !p.accept(',') {
			break
		}
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return gs, nil
}

// rollupElem parses an element of ROLLUP or CUBE: a ref or a parenthesized
// non-empty list of refs.
func (p *groupingParser) rollupElem() (*GroupingSet, error) {
	if p.peek() == '(' {
		gs, err := p.simple()
		if err != nil {
			return nil, err
		}
		if gs.Kind == GroupingSetEmpty {
			return nil, p.errorf("empty element in ROLLUP or CUBE")
		}
		return gs, nil
	}
	ref, err := p.ref()
	if err != nil {
		return nil, err
	}
	return &GroupingSet{Kind: GroupingSetSimple, Refs: []uint32{ref}}, nil
}

// simple parses "()" or "(ref, ...)".
func (p *groupingParser) simple() (*GroupingSet, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	if p.accept(')') {
		return &GroupingSet{Kind: GroupingSetEmpty}, nil
	}
	gs := &GroupingSet{Kind: GroupingSetSimple}
	for {
		ref, err := p.ref()
		if err != nil {
			return nil, err
		}
		gs.Refs = append(gs.Refs, ref)
		if !p.accept(',') {
			break
		}
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return gs, nil
}

// FormatGroupingSets renders grouping sets in the notation accepted by
// ParseGroupingSets.
func FormatGroupingSets(sets []*GroupingSet) string {
	var b strings.Builder
	for i, gs := range sets {
		if i > 0 {
			b.WriteString(", ")
		}
		formatGroupingSet(&b, gs)
	}
	return b.String()
}

func formatGroupingSet(b *strings.Builder, gs *GroupingSet) {
	switch gs.Kind {
	case GroupingSetEmpty:
		b.WriteString("()")
		return
	case GroupingSetSimple:
		b.WriteByte('(')
		for i, r := range gs.Refs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatUint(uint64(r), 10))
		}
		b.WriteByte(')')
		return
	case GroupingSetRollup:
		b.WriteString("rollup(")
	case GroupingSetCube:
		b.WriteString("cube(")
	case GroupingSetSets:
		b.WriteString("sets(")
	default:
		b.WriteString("unknown(")
	}
	for i, c := range gs.Content {
		if i > 0 {
			b.WriteByte(',')
		}
		formatGroupingSet(b, c)
	}
	b.WriteByte(')')
}
