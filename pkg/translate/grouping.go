// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/pgquery"
)

// GroupColumns records the distinct sort/group refs met while expanding a
// GROUP BY clause. Refs are numbered in the order they are first seen; the
// numbering is later used to assign column ids to grouping columns.
type GroupColumns struct {
	// Pos maps a position to the sort/group ref first seen at it.
	Pos map[uint32]uint32
	// Refs holds every ref seen so far.
	Refs *bitset.BitSet
}

// NewGroupColumns returns an empty GroupColumns.
func NewGroupColumns() *GroupColumns {
	return &GroupColumns{Pos: make(map[uint32]uint32), Refs: bitset.New(0)}
}

// OrderedRefs returns the refs in the order they were first seen.
func (g *GroupColumns) OrderedRefs() []uint32 {
	res := make([]uint32, len(g.Pos))
	for pos, ref := range g.Pos {
		res[pos] = ref
	}
	return res
}

// UpdateGroupColMapping records ref if it has not been seen before, at the
// next free position.
func UpdateGroupColMapping(groupColPos map[uint32]uint32, groupCols *bitset.BitSet, ref uint32) {
	if groupCols.Test(uint(ref)) {
		return
	}
	groupColPos[uint32(groupCols.Count())] = ref
	groupCols.Set(uint(ref))
}

// ColumnAttnosForGroupBy expands the GROUP BY clause of a query into the
// list of grouping sets it computes, each a set of sort/group refs.
//
// Without grouping sets the GROUP BY list forms the only set. Otherwise
// each grouping-set item expands to a list of sets, and successive items
// combine by pairwise union. When distinct is set, duplicate sets of the
// final list are removed, keeping the first occurrence; duplicates are
// never removed from intermediate lists.
//
// Every ref met is recorded in groupCols.
func ColumnAttnosForGroupBy(
	groupClause []*pgquery.SortGroupClause,
	groupingSets []*pgquery.GroupingSet,
	distinct bool,
	numCols uint32,
	groupCols *GroupColumns,
) ([]*bitset.BitSet, error) {
	if len(groupingSets) == 0 {
		refs := make([]uint32, len(groupClause))
		for i, gc := range groupClause {
			refs[i] = gc.TLESortGroupRef
		}
		return []*bitset.BitSet{attnoSetForGroupingSet(refs, numCols, groupCols)}, nil
	}

	var res []*bitset.BitSet
	for _, gs := range groupingSets {
		var cur []*bitset.BitSet
		var err error
		switch gs.Kind {
		case pgquery.GroupingSetEmpty:
			cur = []*bitset.BitSet{bitset.New(0)}
		case pgquery.GroupingSetRollup:
			cur = groupingSetsForRollup(gs, numCols, groupCols)
		case pgquery.GroupingSetCube:
			cur = groupingSetsForCube(gs, numCols, groupCols)
		case pgquery.GroupingSetSets:
			cur, err = groupingSetsForSets(gs, numCols, groupCols)
		case pgquery.GroupingSetSimple:
			cur = []*bitset.BitSet{attnoSetForGroupingSet(gs.Refs, numCols, groupCols)}
		default:
			err = gperr.UnrecognizedValue("grouping set kind", gs.Kind)
		}
		if err != nil {
			return nil, err
		}

		// Several grouping-set items group by the pairwise unions of their
		// sets.
		if res == nil {
			res = cur
			continue
		}
		combined := make([]*bitset.BitSet, 0, len(res)*len(cur))
		for _, acc := range res {
			for _, s := range cur {
				combined = append(combined, acc.Union(s))
			}
		}
		res = combined
	}

	if distinct {
		res = dedupGroupingSets(res)
	}
	return res, nil
}

// dedupGroupingSets removes sets equal to an earlier set of the list.
func dedupGroupingSets(sets []*bitset.BitSet) []*bitset.BitSet {
	res := make([]*bitset.BitSet, 0, len(sets))
	for _, s := range sets {
		dup := false
		for _, seen := range res {
			if sameRefs(seen, s) {
				dup = true
				break
			}
		}
		if !dup {
			res = append(res, s.Clone())
		}
	}
	return res
}

// sameRefs compares the contents of two sets, ignoring their capacity.
func sameRefs(a, b *bitset.BitSet) bool {
	return a.Count() == b.Count() && a.IsSuperSet(b)
}

// groupingSetsForSets expands GROUPING SETS (...) into one set per element.
// Only empty and simple elements are supported.
func groupingSetsForSets(
	gs *pgquery.GroupingSet, numCols uint32, groupCols *GroupColumns,
) ([]*bitset.BitSet, error) {
	res := make([]*bitset.BitSet, 0, len(gs.Content))
	for _, elem := range gs.Content {
		switch elem.Kind {
		case pgquery.GroupingSetEmpty:
			res = append(res, bitset.New(uint(numCols)))
		case pgquery.GroupingSetSimple:
			res = append(res, attnoSetForGroupingSet(elem.Refs, numCols, groupCols))
		default:
			return nil, gperr.NewUnsupportedFeature("nested grouping set")
		}
	}
	return res, nil
}

// groupingSetsForRollup expands ROLLUP (e1, ..., ek) into the k+1 sets
// {}, e1, e1+e2, ..., e1+...+ek, in that order. The order matters: a
// UnionAll of the per-set aggregates matches the distribution of every
// child against that of the first one.
func groupingSetsForRollup(
	gs *pgquery.GroupingSet, numCols uint32, groupCols *GroupColumns,
) []*bitset.BitSet {
	res := make([]*bitset.BitSet, 0, len(gs.Content)+1)
	res = append(res, bitset.New(0))
	cur := bitset.New(0)
	for _, elem := range gs.Content {
		assertSimple(elem)
		cur.InPlaceUnion(attnoSetForGroupingSet(elem.Refs, numCols, groupCols))
		res = append(res, cur.Clone())
	}
	return res
}

// groupingSetsForCube expands CUBE (e1, ..., ek) into its 2^k subsets. It
// starts from {} and, for each element, appends the union of the element
// with every set built so far.
func groupingSetsForCube(
	gs *pgquery.GroupingSet, numCols uint32, groupCols *GroupColumns,
) []*bitset.BitSet {
	res := []*bitset.BitSet{bitset.New(0)}
	for _, elem := range gs.Content {
		assertSimple(elem)
		n := len(res)
		for i := 0; i < n; i++ {
			res = append(res, res[i].Union(attnoSetForGroupingSet(elem.Refs, numCols, groupCols)))
		}
	}
	return res
}

func assertSimple(gs *pgquery.GroupingSet) {
	if gs.Kind != pgquery.GroupingSetSimple {
		panic(errors.AssertionFailedf("expected a simple grouping set, found %s", gs.Kind))
	}
}

// attnoSetForGroupingSet returns the set of the given refs and records them
// in groupCols.
func attnoSetForGroupingSet(refs []uint32, numCols uint32, groupCols *GroupColumns) *bitset.BitSet {
	bs := bitset.New(uint(numCols))
	for _, ref := range refs {
		bs.Set(uint(ref))
		UpdateGroupColMapping(groupCols.Pos, groupCols.Refs, ref)
	}
	return bs
}

// GroupingColIDs returns the column ids of the refs of a grouping set, in
// ref order.
func GroupingColIDs(set *bitset.BitSet, refToColID map[int32]dxl.ColumnID) ([]dxl.ColumnID, error) {
	var res []dxl.ColumnID
	if set == nil {
		return res, nil
	}
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		id, err := ColID(int32(i), refToColID)
		if err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, nil
}

// FormatGroupingSet renders a set of refs as "{1,3}".
func FormatGroupingSet(set *bitset.BitSet) string {
	b := []byte{'{'}
	first := true
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if !first {
			b = append(b, ',')
		}
		first = false
		b = strconv.AppendUint(b, uint64(i), 10)
	}
	return string(append(b, '}'))
}
