// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate

import (
	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/pgquery"
	"github.com/lib/pq/oid"
)

// unnamedColumn is the name given to output columns the query left
// unnamed.
const unnamedColumn = "?column?"

// GenerateColIDs returns one column id per non-junk entry of targetList,
// which projects the input columns described by inputTypes, inputColIDs
// and isOuterRef positionally. An entry keeps the id of its input column
// when it has the same type and the input column is not an outer
// reference; otherwise it gets a fresh id.
func GenerateColIDs(
	targetList []*pgquery.TargetEntry,
	inputTypes []md.MDId,
	inputColIDs []dxl.ColumnID,
	isOuterRef []bool,
	idgen *dxl.IDGenerator,
) []dxl.ColumnID {
	if len(inputTypes) != len(inputColIDs) || len(inputTypes) != len(isOuterRef) {
		panic(errors.AssertionFailedf("mismatched input arrays: %d types, %d ids, %d flags",
			len(inputTypes), len(inputColIDs), len(isOuterRef)))
	}
	var res []dxl.ColumnID
	pos := 0
	for _, te := range targetList {
		if te.ResJunk {
			continue
		}
		if pos >= len(inputTypes) {
			panic(errors.AssertionFailedf("target list has more than %d columns", len(inputTypes)))
		}
		if inputTypes[pos].OID != pgquery.ExprType(te.Expr) || isOuterRef[pos] {
			res = append(res, idgen.Next())
		} else {
			res = append(res, inputColIDs[pos])
		}
		pos++
	}
	return res
}

// FixUnknownTypeConstant coerces the untyped literals of a set operation
// input to the type of the matching column of outputTargetList, the
// target list of the set operation.
//
// The query is copied before the first change. If it has no untyped
// literals, or outputTargetList is nil, the query itself is returned.
func FixUnknownTypeConstant(
	q *pgquery.Query, outputTargetList []*pgquery.TargetEntry,
) (*pgquery.Query, error) {
	if outputTargetList == nil {
		return q, nil
	}
	var newQuery *pgquery.Query
	colPos := 0
	for pos, te := range q.TargetList {
		if te.ResJunk {
			continue
		}
		if c, ok := te.Expr.(*pgquery.Const); ok && c.ConstType == oid.T_unknown {
			if newQuery == nil {
				newQuery = pgquery.CopyQuery(q)
			}
			newEntry := newQuery.TargetList[pos]
			targetType := TargetListReturnType(outputTargetList, colPos)
			coerced, err := pgquery.CoerceToCommonType(newEntry.Expr, targetType, "UNION/INTERSECT/EXCEPT")
			if err != nil {
				return nil, err
			}
			newEntry.Expr = coerced
		}
		colPos++
	}
	if newQuery == nil {
		return q, nil
	}
	return newQuery, nil
}

// TargetListReturnType returns the type of the colPos-th non-junk entry of
// targetList, or InvalidOid if there is no such entry.
func TargetListReturnType(targetList []*pgquery.TargetEntry, colPos int) oid.Oid {
	i := 0
	for _, te := range targetList {
		if te.ResJunk {
			continue
		}
		if i == colPos {
			return pgquery.ExprType(te.Expr)
		}
		i++
	}
	return pgquery.InvalidOid
}

// ColumnDescrsFromTargetList returns one column descriptor per entry of
// targetList, skipping junk entries unless keepResJunked is set. colIDs
// holds the id of each kept entry.
func ColumnDescrsFromTargetList(
	targetList []*pgquery.TargetEntry, colIDs []dxl.ColumnID, keepResJunked bool,
) []*dxl.ColumnDescr {
	var res []*dxl.ColumnDescr
	for _, te := range targetList {
		if te.ResJunk && !keepResJunked {
			continue
		}
		if len(res) >= len(colIDs) {
			panic(errors.AssertionFailedf("more output columns than the %d column ids", len(colIDs)))
		}
		res = append(res, ColumnDescrFromTargetEntry(te, colIDs[len(res)], int32(len(res)+1)))
	}
	if len(res) != len(colIDs) {
		panic(errors.AssertionFailedf("%d output columns for %d column ids", len(res), len(colIDs)))
	}
	return res
}

// PosInTargetList returns the output positions of the entries of
// targetList that are part of the output.
func PosInTargetList(targetList []*pgquery.TargetEntry, keepResJunked bool) []int {
	var res []int
	for _, te := range targetList {
		if te.ResJunk && !keepResJunked {
			continue
		}
		res = append(res, len(res))
	}
	return res
}

// ColumnDescrFromTargetEntry returns the descriptor of the column produced
// by te at attribute number pos.
func ColumnDescrFromTargetEntry(te *pgquery.TargetEntry, colID dxl.ColumnID, pos int32) *dxl.ColumnDescr {
	name := te.ResName
	if name == "" {
		name = unnamedColumn
	}
	return &dxl.ColumnDescr{
		Name:         name,
		ID:           colID,
		AttrNum:      pos,
		TypeID:       md.GeneralID(pgquery.ExprType(te.Expr)),
		TypeModifier: pgquery.ExprTypeMod(te.Expr),
	}
}
