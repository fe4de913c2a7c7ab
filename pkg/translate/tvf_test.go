// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/md/mdcatalog"
	"github.com/gpdb/gpopt/pkg/pgquery"
	"github.com/gpdb/gpopt/pkg/translate"
	"github.com/lib/pq/oid"
	"github.com/stretchr/testify/require"
)

func funcRTE(alias string, colNames []string, fns ...*pgquery.RangeTblFunction) *pgquery.RangeTblEntry {
	return &pgquery.RangeTblEntry{
		Kind:      pgquery.RTEFunction,
		ERef:      &pgquery.Alias{AliasName: alias, ColNames: colNames},
		Functions: fns,
	}
}

func call(funcID, resultType oid.Oid, args ...pgquery.Expr) *pgquery.RangeTblFunction {
	return &pgquery.RangeTblFunction{
		FuncExpr: &pgquery.FuncExpr{FuncID: funcID, FuncResultType: resultType, FuncRetSet: true, Args: args},
	}
}

type colSummary struct {
	Name    string
	AttrNum int32
	Type    oid.Oid
	TypMod  int32
}

func summarize(cols []*dxl.ColumnDescr) []colSummary {
	res := make([]colSummary, len(cols))
	for i, c := range cols {
		res[i] = colSummary{Name: c.Name, AttrNum: c.AttrNum, Type: c.TypeID.OID, TypMod: c.TypeModifier}
	}
	return res
}

func TestLogicalTVF(t *testing.T) {
	acc := loadCatalog(t)
	resolver := pgquery.NewTypeResolver(acc)

	int4Array := &pgquery.Var{VarNo: 1, VarAttNo: 1, VarType: oid.T__int4, VarTypMod: -1}

	withColDefs := call(17101, oid.T_record, &pgquery.Const{ConstType: oid.T_text})
	withColDefs.FuncColTypes = []oid.Oid{oid.T_text, oid.T_int4}
	withColDefs.FuncColTypMods = []int32{12, -1}

	testCases := []struct {
		name     string
		rte      *pgquery.RangeTblEntry
		funcID   oid.Oid
		fnName   string
		expected []colSummary
	}{
		{
			name:   "scalar return type",
			rte:    funcRTE("g", []string{"g"}, call(mdcatalog.FuncGenerateSeries, oid.T_int4)),
			funcID: mdcatalog.FuncGenerateSeries,
			fnName: "generate_series",
			expected: []colSummary{
				{Name: "generate_series", AttrNum: 1, Type: oid.T_int4, TypMod: -1},
			},
		},
		{
			name:   "column definition list",
			rte:    funcRTE("kv", []string{"key", "val"}, withColDefs),
			funcID: 17101,
			fnName: "kv",
			expected: []colSummary{
				{Name: "key", AttrNum: 1, Type: oid.T_text, TypMod: 12},
				{Name: "val", AttrNum: 2, Type: oid.T_int4, TypMod: -1},
			},
		},
		{
			name:   "composite return type",
			rte:    funcRTE("p", []string{"first", "second"}, call(17100, 16500)),
			funcID: 17100,
			fnName: "pairs",
			expected: []colSummary{
				{Name: "first", AttrNum: 1, Type: oid.T_int4, TypMod: -1},
				{Name: "second", AttrNum: 2, Type: oid.T_text, TypMod: 14},
			},
		},
		{
			name:   "output arguments",
			rte:    funcRTE("kv", []string{"k", "v"}, call(17101, oid.T_record, &pgquery.Const{ConstType: oid.T_text})),
			funcID: 17101,
			fnName: "kv",
			expected: []colSummary{
				{Name: "k", AttrNum: 1, Type: oid.T_text, TypMod: -1},
				{Name: "v", AttrNum: 2, Type: oid.T_int4, TypMod: -1},
			},
		},
		{
			name:   "polymorphic output arguments",
			rte:    funcRTE("e", []string{"elem", "n"}, call(17102, oid.T_record, int4Array)),
			funcID: 17102,
			fnName: "expand",
			expected: []colSummary{
				{Name: "elem", AttrNum: 1, Type: oid.T_int4, TypMod: -1},
				{Name: "n", AttrNum: 2, Type: oid.T_int4, TypMod: -1},
			},
		},
		{
			name:   "sequence function",
			rte:    funcRTE("s", []string{"nextval"}, call(mdcatalog.FuncNextval, oid.T_int8)),
			funcID: mdcatalog.FuncNextval,
			fnName: "nextval",
			expected: []colSummary{
				{Name: "nextval", AttrNum: 1, Type: oid.T_int8, TypMod: -1},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			idgen := dxl.NewIDGenerator(100)
			tvf, err := translate.LogicalTVF(acc, idgen, resolver, tc.rte)
			require.NoError(t, err)
			require.Equal(t, md.GeneralID(tc.funcID), tvf.FuncID)
			require.Equal(t, tc.fnName, tvf.Name)
			if diff := cmp.Diff(tc.expected, summarize(tvf.Columns)); diff != "" {
				t.Errorf("unexpected columns (-want +got):\n%s", diff)
			}
			for i, c := range tvf.Columns {
				require.Equal(t, dxl.ColumnID(100+i), c.ID)
			}
		})
	}
}

func TestLogicalTVFConst(t *testing.T) {
	acc := loadCatalog(t)
	resolver := pgquery.NewTypeResolver(acc)

	rte := funcRTE("p", nil, &pgquery.RangeTblFunction{
		FuncExpr: &pgquery.Const{ConstType: 16500, ConstTypMod: -1},
	})
	tvf, err := translate.LogicalTVF(acc, dxl.NewIDGenerator(1), resolver, rte)
	require.NoError(t, err)
	require.False(t, tvf.FuncID.IsValid())
	require.Equal(t, md.GeneralID(16500), tvf.ReturnTypeID)
	require.Equal(t, []colSummary{
		{Name: "first", AttrNum: 1, Type: oid.T_int4, TypMod: -1},
		{Name: "second", AttrNum: 2, Type: oid.T_text, TypMod: 14},
	}, summarize(tvf.Columns))

	rte = funcRTE("c", nil, &pgquery.RangeTblFunction{
		FuncExpr: &pgquery.Const{ConstType: oid.T_text, ConstTypMod: 8, Value: "x"},
	})
	tvf, err = translate.LogicalTVF(acc, dxl.NewIDGenerator(1), resolver, rte)
	require.NoError(t, err)
	require.False(t, tvf.FuncID.IsValid())
	require.Equal(t, []colSummary{{Name: "c", AttrNum: 1, Type: oid.T_text, TypMod: 8}}, summarize(tvf.Columns))
}

func TestLogicalTVFErrors(t *testing.T) {
	acc := loadCatalog(t)
	resolver := pgquery.NewTypeResolver(acc)

	t.Run("multiple functions", func(t *testing.T) {
		rte := funcRTE("f", nil,
			call(mdcatalog.FuncGenerateSeries, oid.T_int4), call(mdcatalog.FuncGenerateSeries, oid.T_int4))
		_, err := translate.LogicalTVF(acc, dxl.NewIDGenerator(1), resolver, rte)
		require.Equal(t, "Multi-argument UNNEST() or TABLE()", gperr.UnsupportedFeatureName(err))

		_, err = translate.LogicalTVF(acc, dxl.NewIDGenerator(1), resolver, funcRTE("f", nil))
		require.True(t, gperr.IsUnsupportedFeature(err))
	})

	t.Run("single-row volatile", func(t *testing.T) {
		_, err := translate.LogicalTVF(acc, dxl.NewIDGenerator(1), resolver, funcRTE("t", []string{"t"}, call(17103, oid.T_int4)))
		require.Equal(t, "SIRV functions", gperr.UnsupportedFeatureName(err))
	})

	t.Run("unresolvable polymorphic type", func(t *testing.T) {
		arg := &pgquery.Const{ConstType: oid.T_unknown}
		_, err := translate.LogicalTVF(acc, dxl.NewIDGenerator(1), resolver, funcRTE("e", []string{"elem", "n"}, call(17102, oid.T_record, arg)))
		require.True(t, errors.Is(err, gperr.ErrUnrecognizedType))
		require.True(t, gperr.IsInconsistentState(err))
		require.Contains(t, err.Error(), "could not determine actual argument/return type for polymorphic function")
	})

	t.Run("unknown function", func(t *testing.T) {
		_, err := translate.LogicalTVF(acc, dxl.NewIDGenerator(1), resolver, funcRTE("f", []string{"f"}, call(424242, oid.T_int4)))
		require.True(t, errors.Is(err, gperr.ErrObjectNotFound))
	})
}

func TestIsSirvFunc(t *testing.T) {
	acc := loadCatalog(t)
	for _, tc := range []struct {
		funcID oid.Oid
		sirv   bool
	}{
		{mdcatalog.FuncNextval, false},
		{mdcatalog.FuncCurrval, false},
		{mdcatalog.FuncSetval, false},
		{mdcatalog.FuncRandom, true},
		{17103, true},
		{mdcatalog.FuncGenerateSeries, false},
		{mdcatalog.FuncLower, false},
	} {
		sirv, err := translate.IsSirvFunc(acc, tc.funcID)
		require.NoError(t, err)
		require.Equal(t, tc.sirv, sirv, "function %d", tc.funcID)
	}
}

// recordingResolver records the arguments it is called with and resolves
// every polymorphic type to int8.
type recordingResolver struct {
	argTypes []oid.Oid
	argModes []pgquery.ArgMode
}

func (r *recordingResolver) ResolvePolymorphicArgTypes(
	argTypes []oid.Oid, argModes []pgquery.ArgMode, _ *pgquery.FuncExpr,
) bool {
	r.argTypes = append([]oid.Oid(nil), argTypes...)
	r.argModes = append([]pgquery.ArgMode(nil), argModes...)
	for i := range argTypes {
		if md.IsPolymorphicType(argTypes[i]) {
			argTypes[i] = oid.T_int8
		}
	}
	return true
}

func TestResolvePolymorphicTypes(t *testing.T) {
	ids := func(oids ...oid.Oid) []md.MDId {
		res := make([]md.MDId, len(oids))
		for i, o := range oids {
			res[i] = md.GeneralID(o)
		}
		return res
	}
	r := &recordingResolver{}
	// Only as many declared inputs as the call passes are considered.
	fn := &pgquery.FuncExpr{Args: []pgquery.Expr{&pgquery.Const{ConstType: oid.T_int8}}}
	res, err := translate.ResolvePolymorphicTypes(
		r, ids(oid.T_anyelement, oid.T_text), ids(oid.T_anyelement, oid.T_int4), fn)
	require.NoError(t, err)
	require.Equal(t, ids(oid.T_int8, oid.T_text), res)
	require.Equal(t, []oid.Oid{oid.T_anyelement, oid.T_anyelement, oid.T_text}, r.argTypes)
	require.Equal(t, []pgquery.ArgMode{pgquery.ArgModeIn, pgquery.ArgModeTable, pgquery.ArgModeTable}, r.argModes)

	require.True(t, translate.ContainsPolymorphicTypes(ids(oid.T_text, oid.T_anyarray)))
	require.False(t, translate.ContainsPolymorphicTypes(ids(oid.T_text, oid.T__int4)))
}

func TestCompositeColumnDescrs(t *testing.T) {
	acc := loadCatalog(t)
	typ, err := acc.RetrieveType(md.GeneralID(16500))
	require.NoError(t, err)

	cols, err := translate.ExpandCompositeType(acc, typ)
	require.NoError(t, err)
	require.Len(t, cols, 2)

	int4, err := acc.RetrieveType(md.GeneralID(oid.T_int4))
	require.NoError(t, err)
	require.Panics(t, func() { _, _ = translate.ExpandCompositeType(acc, int4) })
}
