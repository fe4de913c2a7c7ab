// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate

import (
	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/pgquery"
)

// ColID returns the column id mapped to index.
func ColID(index int32, colIDs map[int32]dxl.ColumnID) (dxl.ColumnID, error) {
	id, ok := colIDs[index]
	if !ok {
		return 0, gperr.AttributeNotFound(index)
	}
	return id, nil
}

// OutputColIDs returns the column id of every entry of targetList, looked
// up by the entry's position.
func OutputColIDs(
	targetList []*pgquery.TargetEntry, attnoToColID map[int32]dxl.ColumnID,
) ([]dxl.ColumnID, error) {
	res := make([]dxl.ColumnID, 0, len(targetList))
	for _, te := range targetList {
		id, err := ColID(int32(te.ResNo), attnoToColID)
		if err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, nil
}

// VarKey identifies the column referenced by a Var at a given query level.
type VarKey struct {
	QueryLevel uint32
	VarNo      int32
	AttNo      int32
}

// VarColIDMapping maps the columns visible at each query level to their
// column ids.
type VarColIDMapping map[VarKey]dxl.ColumnID

// Add records the column id of a column.
func (m VarColIDMapping) Add(level uint32, varNo, attNo int32, id dxl.ColumnID) {
	m[VarKey{QueryLevel: level, VarNo: varNo, AttNo: attNo}] = id
}

// ColIDForVar returns the column id of the column v refers to, from a
// query at queryLevel. Vars referencing an outer query are resolved
// against the level they reference.
func (m VarColIDMapping) ColIDForVar(queryLevel uint32, v *pgquery.Var) (dxl.ColumnID, error) {
	if v.VarLevelsUp > queryLevel {
		panic(errors.AssertionFailedf("var references level %d above level %d", v.VarLevelsUp, queryLevel))
	}
	key := VarKey{QueryLevel: queryLevel - v.VarLevelsUp, VarNo: v.VarNo, AttNo: v.VarAttNo}
	id, ok := m[key]
	if !ok {
		return 0, gperr.AttributeNotFound(v.VarAttNo)
	}
	return id, nil
}

// ColIDForVar returns the column id of attribute attNo of range table
// entry varNo at queryLevel.
func ColIDForVar(
	queryLevel uint32, varNo, attNo int32, typeID md.MDId, mapping VarColIDMapping,
) (dxl.ColumnID, error) {
	v := &pgquery.Var{VarNo: varNo, VarAttNo: attNo, VarType: typeID.OID, VarTypMod: -1}
	return mapping.ColIDForVar(queryLevel, v)
}

// TargetEntryMapping maps output column ids back to the target entries
// that produce them.
type TargetEntryMapping map[dxl.ColumnID]*pgquery.TargetEntry

// ColIDsToAttnos returns the target list positions of the given columns.
func ColIDsToAttnos(colIDs []dxl.ColumnID, mapping TargetEntryMapping) ([]int16, error) {
	res := make([]int16, len(colIDs))
	for i, id := range colIDs {
		te, ok := mapping[id]
		if !ok {
			return nil, gperr.AttributeNotFound(id)
		}
		res[i] = te.ResNo
	}
	return res, nil
}

// MakeNewToOldColMapping returns a map from each of oldColIDs to the
// column id at the same position of newColIDs.
func MakeNewToOldColMapping(oldColIDs, newColIDs []dxl.ColumnID) map[dxl.ColumnID]dxl.ColumnID {
	if len(oldColIDs) != len(newColIDs) {
		panic(errors.AssertionFailedf("%d old columns for %d new columns", len(oldColIDs), len(newColIDs)))
	}
	res := make(map[dxl.ColumnID]dxl.ColumnID, len(oldColIDs))
	for i, old := range oldColIDs {
		if _, ok := res[old]; ok {
			panic(errors.AssertionFailedf("duplicate column %d", old))
		}
		res[old] = newColIDs[i]
	}
	return res
}
