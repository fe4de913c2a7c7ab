// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dxl_test

import (
	"testing"

	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/lib/pq/oid"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator(t *testing.T) {
	g := dxl.NewIDGenerator(5)
	require.Equal(t, dxl.ColumnID(5), g.Current())
	require.Equal(t, dxl.ColumnID(5), g.Next())
	require.Equal(t, dxl.ColumnID(6), g.Next())
	require.Equal(t, dxl.ColumnID(7), g.Current())

	require.Panics(t, func() { dxl.NewIDGenerator(0) })
}

func TestTableDescr(t *testing.T) {
	td := &dxl.TableDescr{ID: md.RelID(16384), Name: "orders"}
	td.AddColumn(&dxl.ColumnDescr{Name: "id", ID: 1, AttrNum: 1, TypeID: md.GeneralID(oid.T_int8), TypeModifier: -1})
	td.AddColumn(&dxl.ColumnDescr{Name: "code", ID: 2, AttrNum: 3, TypeID: md.GeneralID(oid.T_text), TypeModifier: 12})

	require.Equal(t, 2, td.Arity())
	require.Equal(t, "code", td.ColumnAt(1).Name)
	require.True(t, td.DefinesColumn(2))
	require.False(t, td.DefinesColumn(3))
	require.Panics(t, func() { td.ColumnAt(2) })

	require.Equal(t, "orders [1.16384.1.0]", td.String())
	require.Equal(t, "id:1(attno=1 type=0.20.1.0)", td.ColumnAt(0).String())
	require.Equal(t, "code:2(attno=3 type=0.25.1.0 typmod=12)", td.ColumnAt(1).String())
}

func TestDefinesColumn(t *testing.T) {
	tvf := &dxl.LogicalTVF{Name: "f", Columns: []*dxl.ColumnDescr{{Name: "x", ID: 4}}}
	require.True(t, dxl.NewNode(tvf).DefinesColumn(4))
	require.False(t, dxl.NewNode(tvf).DefinesColumn(5))

	pe := &dxl.ScalarProjElem{ColID: 9, Alias: "y"}
	require.True(t, dxl.NewNode(pe).DefinesColumn(9))

	// Operators that are not column definers define nothing.
	require.False(t, dxl.NewNode(&dxl.ScalarProjList{}).DefinesColumn(9))
}

func TestMotion(t *testing.T) {
	m := dxl.NewMotion(dxl.PhysicalRandomMotionOp, true)
	require.Equal(t, dxl.PhysicalRandomMotionOp, m.Operator())
	require.Panics(t, func() { dxl.NewMotion(dxl.LogicalGetOp, false) })
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "LeftAntiSemiJoinNotIn", dxl.JoinLeftAntiSemijoinNotIn.String())
	require.Equal(t, "NoMovement", dxl.IndexScanNoMovement.String())
	require.Equal(t, "DifferenceAll", dxl.SetOpDifferenceAll.String())
	require.Equal(t, "NotExists", dxl.SubPlanNotExists.String())
	require.Equal(t, "Hypothetical", dxl.AggrefHypothetical.String())
	require.Equal(t, "JoinType(42)", dxl.JoinType(42).String())
	require.Equal(t, "ScalarAggref", dxl.ScalarAggrefOp.String())
}

func TestFormat(t *testing.T) {
	int4 := md.GeneralID(oid.T_int4)
	tree := dxl.NewNode(&dxl.ScalarProjList{},
		dxl.NewNode(&dxl.ScalarProjElem{ColID: 7, Alias: "b"},
			dxl.NewNode(&dxl.ScalarConstValue{Datum: &dxl.DatumInt4{Type: int4, Null: true}}),
		),
		dxl.NewNode(&dxl.ScalarProjElem{ColID: 8, Alias: "a"},
			dxl.NewNode(&dxl.ScalarIdent{ColRef: dxl.ColRef{Name: "a", ID: 1, TypeID: int4}}),
		),
	)
	const expected = `ScalarProjList
 ├── ScalarProjElem b:7
 │    └── ScalarConst 0.23.1.0 NULL
 └── ScalarProjElem a:8
      └── ScalarIdent a:1
`
	require.Equal(t, expected, dxl.Format(tree))

	agg := dxl.NewAggrefNode(&dxl.ScalarAggref{FuncID: md.GeneralID(2100)}, nil, nil,
		[]*dxl.Node{dxl.NewNode(&dxl.ScalarConstValue{Datum: &dxl.DatumInt8{Type: md.GeneralID(oid.T_int8), Value: 3}})}, nil)
	const expectedAgg = `ScalarAggref 0.2100.1.0 kind=Normal
 ├── ScalarValuesList
 ├── ScalarValuesList
 ├── ScalarValuesList
 │    └── ScalarConst 0.20.1.0 3
 └── ScalarValuesList
`
	require.Equal(t, expectedAgg, dxl.Format(agg))
}
