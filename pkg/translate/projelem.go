// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate

import (
	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/lib/pq/oid"
)

// DummyProjectElem returns a projection element that renames column
// inputColID to outputColID.
func DummyProjectElem(inputColID, outputColID dxl.ColumnID, descr *dxl.ColumnDescr) *dxl.Node {
	ident := &dxl.ScalarIdent{ColRef: dxl.ColRef{
		Name:         descr.Name,
		ID:           inputColID,
		TypeID:       descr.TypeID,
		TypeModifier: descr.TypeModifier,
	}}
	return dxl.NewNode(
		&dxl.ScalarProjElem{ColID: outputColID, Alias: descr.Name},
		dxl.NewNode(ident),
	)
}

// ProjElemConstNull returns a projection element defining a fresh column
// named after col, whose value is a NULL of col's type.
func ProjElemConstNull(acc md.Accessor, idgen *dxl.IDGenerator, col *md.Column) (*dxl.Node, error) {
	if col.IsSystemColumn() {
		panic(errors.AssertionFailedf("system column %s", col.Name))
	}
	return ProjElemConstNullForType(acc, col.TypeID, idgen.Next(), col.Name)
}

// ProjElemConstNullForType returns a projection element defining column
// colID, named name, whose value is a NULL of the given type. An empty
// name stands for an unnamed column.
func ProjElemConstNullForType(
	acc md.Accessor, typeID md.MDId, colID dxl.ColumnID, name string,
) (*dxl.Node, error) {
	if name == "" {
		name = unnamedColumn
	}
	datum, err := nullDatum(acc, typeID)
	if err != nil {
		return nil, err
	}
	return dxl.NewNode(
		&dxl.ScalarProjElem{ColID: colID, Alias: name},
		dxl.NewNode(&dxl.ScalarConstValue{Datum: datum}),
	), nil
}

func nullDatum(acc md.Accessor, typeID md.MDId) (dxl.Datum, error) {
	if typeID.Kind == md.MDIdGeneral {
		switch typeID.OID {
		case oid.T_int2:
			return &dxl.DatumInt2{Type: typeID, Null: true}, nil
		case oid.T_int4:
			return &dxl.DatumInt4{Type: typeID, Null: true}, nil
		case oid.T_int8:
			return &dxl.DatumInt8{Type: typeID, Null: true}, nil
		case oid.T_bool:
			return &dxl.DatumBool{Type: typeID, Null: true}, nil
		case oid.T_oid:
			return &dxl.DatumOid{Type: typeID, Null: true}, nil
		}
	}
	if _, err := acc.RetrieveType(typeID); err != nil {
		return nil, err
	}
	return &dxl.DatumGeneric{Type: typeID, TypeModifier: md.DefaultTypeModifier, Null: true}, nil
}

// ProjElemFromInt8Const returns a bigint constant.
func ProjElemFromInt8Const(acc md.Accessor, val int64) (*dxl.Node, error) {
	typ, err := acc.RetrieveType(md.GeneralID(oid.T_int8))
	if err != nil {
		return nil, err
	}
	return dxl.NewNode(&dxl.ScalarConstValue{Datum: &dxl.DatumInt8{Type: typ.ID, Value: val}}), nil
}

// HasOrderedAggRefInProjList returns true if projList computes an
// aggregate with an ORDER BY inside the call.
func HasOrderedAggRefInProjList(projList *dxl.Node) bool {
	assertOperator(projList, dxl.ScalarProjListOp)
	for _, elem := range projList.Children {
		child := elem.Child(0)
		if child.Operator() == dxl.ScalarAggrefOp && child.Child(int(dxl.AggrefOrder)).Arity() > 0 {
			return true
		}
	}
	return false
}

// HasProjElem returns true if some element of projList is computed by an
// operator of the given kind.
func HasProjElem(projList *dxl.Node, op dxl.Operator) bool {
	assertOperator(projList, dxl.ScalarProjListOp)
	for _, elem := range projList.Children {
		assertOperator(elem, dxl.ScalarProjElemOp)
		if elem.Child(0).Operator() == op {
			return true
		}
	}
	return false
}

// IsDuplicateSensitiveMotion returns true for redistribute and random
// motions flagged as sensitive to duplicates. Other motions never are.
func IsDuplicateSensitiveMotion(m *dxl.Motion) bool {
	switch m.Operator() {
	case dxl.PhysicalRedistributeMotionOp, dxl.PhysicalRandomMotionOp:
		return m.DuplicateSensitive
	}
	return false
}

// AssertErrorMsgs returns the error messages of an assert constraint list.
func AssertErrorMsgs(list *dxl.Node) []string {
	assertOperator(list, dxl.ScalarAssertConstraintListOp)
	res := make([]string, len(list.Children))
	for i, c := range list.Children {
		res[i] = c.Op.(*dxl.ScalarAssertConstraint).ErrorMsg
	}
	return res
}

// MarkOuterRefs clears isOuterRef[i] for every column colIDs[i] defined by
// a node of the tree rooted at n. The caller sets every flag beforehand.
func MarkOuterRefs(colIDs []dxl.ColumnID, isOuterRef []bool, n *dxl.Node) {
	if len(colIDs) != len(isOuterRef) {
		panic(errors.AssertionFailedf("%d columns for %d flags", len(colIDs), len(isOuterRef)))
	}
	for i, id := range colIDs {
		if isOuterRef[i] && n.DefinesColumn(id) {
			isOuterRef[i] = false
		}
	}
	for _, c := range n.Children {
		MarkOuterRefs(colIDs, isOuterRef, c)
	}
}

func assertOperator(n *dxl.Node, op dxl.Operator) {
	if n == nil || n.Operator() != op {
		panic(errors.AssertionFailedf("expected %s node", op))
	}
}
