// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/pgquery"
	"github.com/gpdb/gpopt/pkg/translate"
	"github.com/lib/pq/oid"
	"github.com/stretchr/testify/require"
)

func varOf(attNo int32, typ oid.Oid) *pgquery.Var {
	return &pgquery.Var{VarNo: 1, VarAttNo: attNo, VarType: typ, VarTypMod: -1}
}

func TestGenerateColIDs(t *testing.T) {
	targetList := []*pgquery.TargetEntry{
		{Expr: varOf(1, oid.T_int4), ResNo: 1, ResName: "a"},
		{Expr: varOf(2, oid.T_int8), ResNo: 2, ResName: "b"},
		{Expr: varOf(3, oid.T_text), ResNo: 3, ResJunk: true},
		{Expr: varOf(3, oid.T_text), ResNo: 4, ResName: "c"},
	}
	inputTypes := []md.MDId{md.GeneralID(oid.T_int4), md.GeneralID(oid.T_int4), md.GeneralID(oid.T_text)}
	inputColIDs := []dxl.ColumnID{10, 11, 12}

	idgen := dxl.NewIDGenerator(50)
	ids := translate.GenerateColIDs(targetList, inputTypes, inputColIDs, []bool{false, false, true}, idgen)
	// Same type keeps the input id; a type change or an outer reference
	// takes a fresh one. The junk entry takes nothing.
	require.Equal(t, []dxl.ColumnID{10, 50, 51}, ids)

	require.Panics(t, func() {
		translate.GenerateColIDs(targetList, inputTypes, inputColIDs[:2], []bool{false, false, false}, idgen)
	})
	require.Panics(t, func() {
		translate.GenerateColIDs(targetList, inputTypes[:1], inputColIDs[:1], []bool{false}, idgen)
	})
}

func TestFixUnknownTypeConstant(t *testing.T) {
	q := &pgquery.Query{TargetList: []*pgquery.TargetEntry{
		{Expr: varOf(1, oid.T_int4), ResNo: 1, ResName: "a"},
		{Expr: varOf(2, oid.T_int4), ResNo: 2, ResJunk: true},
		{Expr: &pgquery.Const{ConstType: oid.T_unknown, ConstTypMod: -1, Value: "x"}, ResNo: 3, ResName: "b"},
	}}
	output := []*pgquery.TargetEntry{
		{Expr: varOf(1, oid.T_int4), ResNo: 1},
		{Expr: varOf(2, oid.T_text), ResNo: 2},
	}

	res, err := translate.FixUnknownTypeConstant(q, output)
	require.NoError(t, err)
	require.NotSame(t, q, res)
	require.Equal(t, &pgquery.Const{ConstType: oid.T_text, ConstTypMod: -1, Value: "x"}, res.TargetList[2].Expr)
	// The input query is left untouched.
	require.Equal(t, oid.T_unknown, q.TargetList[2].Expr.(*pgquery.Const).ConstType)

	again, err := translate.FixUnknownTypeConstant(res, output)
	require.NoError(t, err)
	require.Same(t, res, again)

	same, err := translate.FixUnknownTypeConstant(q, nil)
	require.NoError(t, err)
	require.Same(t, q, same)
}

func TestFixUnknownTypeConstantInvalidTarget(t *testing.T) {
	q := &pgquery.Query{TargetList: []*pgquery.TargetEntry{
		{Expr: &pgquery.Const{ConstType: oid.T_unknown, Value: "x"}, ResNo: 1},
		{Expr: &pgquery.Const{ConstType: oid.T_unknown, Value: "y"}, ResNo: 2},
	}}
	// The output target list is shorter than the input.
	output := []*pgquery.TargetEntry{{Expr: varOf(1, oid.T_text), ResNo: 1}}
	_, err := translate.FixUnknownTypeConstant(q, output)
	require.Error(t, err)
}

func TestTargetListReturnType(t *testing.T) {
	tl := []*pgquery.TargetEntry{
		{Expr: varOf(1, oid.T_int4), ResJunk: true},
		{Expr: varOf(2, oid.T_text)},
	}
	require.Equal(t, oid.T_text, translate.TargetListReturnType(tl, 0))
	require.Equal(t, pgquery.InvalidOid, translate.TargetListReturnType(tl, 1))
}

func TestColumnDescrsFromTargetList(t *testing.T) {
	tl := []*pgquery.TargetEntry{
		{Expr: &pgquery.Var{VarType: oid.T_text, VarTypMod: 20}, ResNo: 1, ResName: "name"},
		{Expr: varOf(2, oid.T_int4), ResNo: 2, ResJunk: true},
		{Expr: &pgquery.Const{ConstType: oid.T_int8, ConstTypMod: -1}, ResNo: 3},
	}

	cols := translate.ColumnDescrsFromTargetList(tl, []dxl.ColumnID{7, 8}, false)
	require.Equal(t, []*dxl.ColumnDescr{
		{Name: "name", ID: 7, AttrNum: 1, TypeID: md.GeneralID(oid.T_text), TypeModifier: 20},
		{Name: "?column?", ID: 8, AttrNum: 2, TypeID: md.GeneralID(oid.T_int8), TypeModifier: -1},
	}, cols)

	cols = translate.ColumnDescrsFromTargetList(tl, []dxl.ColumnID{7, 8, 9}, true)
	require.Len(t, cols, 3)
	require.Equal(t, int32(3), cols[2].AttrNum)

	require.Panics(t, func() { translate.ColumnDescrsFromTargetList(tl, []dxl.ColumnID{7}, false) })

	require.Equal(t, []int{0, 1}, translate.PosInTargetList(tl, false))
	require.Equal(t, []int{0, 1, 2}, translate.PosInTargetList(tl, true))
}

func TestColIDMappings(t *testing.T) {
	attnoToColID := map[int32]dxl.ColumnID{1: 10, 2: 20}

	id, err := translate.ColID(2, attnoToColID)
	require.NoError(t, err)
	require.Equal(t, dxl.ColumnID(20), id)
	_, err = translate.ColID(3, attnoToColID)
	require.True(t, errors.Is(err, gperr.ErrAttributeNotFound))
	require.True(t, gperr.IsInconsistentState(err))

	tl := []*pgquery.TargetEntry{{ResNo: 2}, {ResNo: 1}}
	ids, err := translate.OutputColIDs(tl, attnoToColID)
	require.NoError(t, err)
	require.Equal(t, []dxl.ColumnID{20, 10}, ids)
	_, err = translate.OutputColIDs([]*pgquery.TargetEntry{{ResNo: 5}}, attnoToColID)
	require.True(t, errors.Is(err, gperr.ErrAttributeNotFound))

	teMap := translate.TargetEntryMapping{10: tl[1], 20: tl[0]}
	attnos, err := translate.ColIDsToAttnos([]dxl.ColumnID{20, 10}, teMap)
	require.NoError(t, err)
	require.Equal(t, []int16{2, 1}, attnos)
	_, err = translate.ColIDsToAttnos([]dxl.ColumnID{30}, teMap)
	require.True(t, errors.Is(err, gperr.ErrAttributeNotFound))

	require.Equal(t,
		map[dxl.ColumnID]dxl.ColumnID{1: 5, 2: 6},
		translate.MakeNewToOldColMapping([]dxl.ColumnID{1, 2}, []dxl.ColumnID{5, 6}))
	require.Panics(t, func() { translate.MakeNewToOldColMapping([]dxl.ColumnID{1}, nil) })
}

func TestVarColIDMapping(t *testing.T) {
	m := translate.VarColIDMapping{}
	m.Add(0, 1, 1, 100)
	m.Add(1, 1, 1, 200)

	id, err := m.ColIDForVar(1, &pgquery.Var{VarNo: 1, VarAttNo: 1})
	require.NoError(t, err)
	require.Equal(t, dxl.ColumnID(200), id)

	// An outer reference resolves against the level it points to.
	id, err = m.ColIDForVar(1, &pgquery.Var{VarNo: 1, VarAttNo: 1, VarLevelsUp: 1})
	require.NoError(t, err)
	require.Equal(t, dxl.ColumnID(100), id)

	id, err = translate.ColIDForVar(0, 1, 1, md.GeneralID(oid.T_int4), m)
	require.NoError(t, err)
	require.Equal(t, dxl.ColumnID(100), id)

	_, err = translate.ColIDForVar(0, 1, 2, md.GeneralID(oid.T_int4), m)
	require.True(t, errors.Is(err, gperr.ErrAttributeNotFound))

	require.Panics(t, func() { _, _ = m.ColIDForVar(0, &pgquery.Var{VarLevelsUp: 1}) })
}
