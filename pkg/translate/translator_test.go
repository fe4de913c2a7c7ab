// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/config"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/md/mdcatalog"
	"github.com/gpdb/gpopt/pkg/pgquery"
	"github.com/gpdb/gpopt/pkg/translate"
	"github.com/lib/pq/oid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestTranslator(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.FirstColumnID = 100
	tr := translate.NewTranslator(loadCatalog(t), cfg)
	m := tr.Metrics()

	td, isDistributed, err := tr.TableDescr(ctx, relRTE(16384, ""), 0)
	require.NoError(t, err)
	require.True(t, isDistributed)
	require.Equal(t, dxl.ColumnID(100), td.ColumnAt(0).ID)
	require.Equal(t, 1.0, testutil.ToFloat64(m.TablesTranslated))

	// Column ids keep increasing across calls.
	tvf, err := tr.LogicalTVF(ctx, funcRTE("g", []string{"g"}, call(mdcatalog.FuncGenerateSeries, oid.T_int4)))
	require.NoError(t, err)
	require.Equal(t, dxl.ColumnID(104), tvf.Columns[0].ID)
	require.Equal(t, dxl.ColumnID(105), tr.IDGenerator().Current())
	require.Equal(t, 1.0, testutil.ToFloat64(m.TVFsTranslated))

	_, _, err = tr.TableDescr(ctx, relRTE(16390, ""), 0)
	require.True(t, gperr.IsUnsupportedFeature(err))
	_, err = tr.LogicalTVF(ctx, funcRTE("t", []string{"t"}, call(17103, oid.T_int4)))
	require.True(t, gperr.IsUnsupportedFeature(err))
	_, err = tr.LogicalTVF(ctx, funcRTE("t", []string{"t"}, call(17103, oid.T_int4)))
	require.True(t, gperr.IsUnsupportedFeature(err))

	require.Equal(t, 1.0, testutil.ToFloat64(m.Fallbacks.WithLabelValues("Queries on master-only tables")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Fallbacks.WithLabelValues("SIRV functions")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.TablesTranslated))

	idx, err := tr.IndexDescr(ctx, md.GeneralID(17200))
	require.NoError(t, err)
	require.Equal(t, "orders_id_idx", idx.Name)
}

func TestTranslatorCatchesAssertions(t *testing.T) {
	ctx := context.Background()
	tr := translate.NewTranslator(mdcatalog.New(), config.Default())

	tl := []*pgquery.TargetEntry{{Expr: varOf(1, oid.T_int4), ResNo: 1}}
	_, err := tr.GenerateColIDs(ctx, tl, []md.MDId{md.GeneralID(oid.T_int4)}, nil, nil)
	require.Error(t, err)
	require.True(t, errors.IsAssertionFailure(err))
	require.False(t, gperr.IsUnsupportedFeature(err))

	ids, err := tr.GenerateColIDs(ctx, tl, []md.MDId{md.GeneralID(oid.T_int4)}, []dxl.ColumnID{7}, []bool{false})
	require.NoError(t, err)
	require.Equal(t, []dxl.ColumnID{7}, ids)

	// A function entry without output column names trips an assertion,
	// returned as an error.
	rte := funcRTE("kv", nil, call(17101, oid.T_record))
	_, err = translate.NewTranslator(loadCatalog(t), config.Default()).LogicalTVF(ctx, rte)
	require.True(t, errors.IsAssertionFailure(err))
}

func TestTranslatorQueries(t *testing.T) {
	ctx := context.Background()
	tr := translate.NewTranslator(mdcatalog.New(), config.Default(),
		translate.WithPermissionChecker(pgquery.ACLChecker{Grants: map[uint32]uint32{16384: pgquery.ACLSelect}}))

	sets, err := pgquery.ParseGroupingSets("cube(1,2)")
	require.NoError(t, err)
	groupCols := translate.NewGroupColumns()
	res, err := tr.GroupingSets(ctx, &pgquery.Query{GroupingSets: sets}, 4, groupCols)
	require.NoError(t, err)
	require.Len(t, res, 4)
	require.Equal(t, []uint32{1, 2}, groupCols.OrderedRefs())

	q := &pgquery.Query{TargetList: []*pgquery.TargetEntry{
		{Expr: &pgquery.Const{ConstType: oid.T_unknown, Value: "x"}, ResNo: 1},
	}}
	fixed, err := tr.FixUnknownTypeConstant(ctx, q, []*pgquery.TargetEntry{{Expr: varOf(1, oid.T_text), ResNo: 1}})
	require.NoError(t, err)
	require.Equal(t, oid.T_text, pgquery.ExprType(fixed.TargetList[0].Expr))

	rt := []*pgquery.RangeTblEntry{relRTE(16384, "")}
	require.NoError(t, tr.CheckRTEPermissions(ctx, rt))
	rt = append(rt, relRTE(16392, ""))
	require.True(t, errors.Is(tr.CheckRTEPermissions(ctx, rt), pgquery.ErrPermissionDenied))

	// Without a checker every range table is accepted.
	require.NoError(t, translate.NewTranslator(mdcatalog.New(), config.Default()).CheckRTEPermissions(ctx, rt))
}

func TestTranslatorResolver(t *testing.T) {
	r := &recordingResolver{}
	tr := translate.NewTranslator(loadCatalog(t), config.Default(), translate.WithResolver(r))
	arg := &pgquery.Const{ConstType: oid.T_unknown}
	tvf, err := tr.LogicalTVF(context.Background(), funcRTE("e", []string{"elem", "n"}, call(17102, oid.T_record, arg)))
	require.NoError(t, err)
	require.Equal(t, md.GeneralID(oid.T_int8), tvf.Columns[0].TypeID)
	require.NotEmpty(t, r.argTypes)
}

func TestTranslatorScalarExpr(t *testing.T) {
	ctx := context.Background()
	tr := translate.NewTranslator(mdcatalog.New(), config.Default())
	mapping := translate.VarColIDMapping{}
	mapping.Add(0, 1, 1, 42)

	lower := &pgquery.FuncExpr{
		FuncID: mdcatalog.FuncLower, FuncResultType: oid.T_text,
		Args: []pgquery.Expr{varOf(1, oid.T_text)},
	}
	e, err := tr.ScalarExpr(ctx, lower, 0, mapping)
	require.NoError(t, err)
	require.Equal(t, "ScalarFunc (lower)", e.Op.String())
	require.Equal(t, "ScalarIdent (42)", e.Children[0].Op.String())

	// A call without a result type trips an assertion.
	_, err = tr.ScalarExpr(ctx, &pgquery.FuncExpr{FuncID: mdcatalog.FuncLower}, 0, mapping)
	require.True(t, errors.IsAssertionFailure(err), "%+v", err)

	lower.Args[0] = varOf(2, oid.T_text)
	_, err = tr.ScalarExpr(ctx, lower, 0, mapping)
	require.True(t, errors.Is(err, gperr.ErrAttributeNotFound))

	_, err = tr.ScalarExpr(ctx, &pgquery.OpExpr{OpNo: 96}, 0, mapping)
	require.Equal(t, 1.0, testutil.ToFloat64(tr.Metrics().Fallbacks.WithLabelValues("operator expressions")))
}

func TestMetricsRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := translate.NewMetrics()
	require.NoError(t, m.Register(reg))
	require.Error(t, m.Register(reg))

	tr := translate.NewTranslator(mdcatalog.New(), config.Default(), translate.WithMetrics(m))
	require.Same(t, m, tr.Metrics())
}
