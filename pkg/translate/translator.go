// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package translate converts the structures of a parsed host query into
// DXL descriptors: table and index descriptors, table functions, grouping
// sets, and the column id bookkeeping that ties target lists to DXL
// columns.
//
// The functions of the package raise assertion failures as panics. The
// Translator wraps the main entry points, recovering those panics as
// errors and recording unsupported-feature fallbacks.
package translate

import (
	"context"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/gpdb/gpopt/pkg/config"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/operators"
	"github.com/gpdb/gpopt/pkg/pgquery"
	"github.com/gpdb/gpopt/pkg/util/log"
)

// Translator translates the structures of one host query. All column ids
// it hands out come from a single generator, so a Translator must not be
// shared between queries or goroutines.
type Translator struct {
	acc      md.Accessor
	cfg      config.Translator
	idgen    *dxl.IDGenerator
	resolver pgquery.PolymorphicResolver
	perms    pgquery.PermissionChecker
	metrics  *Metrics
}

// Option configures a Translator.
type Option func(*Translator)

// WithResolver sets the resolver used for polymorphic table functions.
func WithResolver(r pgquery.PolymorphicResolver) Option {
	return func(t *Translator) { t.resolver = r }
}

// WithPermissionChecker sets the checker used by CheckRTEPermissions.
func WithPermissionChecker(c pgquery.PermissionChecker) Option {
	return func(t *Translator) { t.perms = c }
}

// WithMetrics sets the metrics updated by the translator.
func WithMetrics(m *Metrics) Option {
	return func(t *Translator) { t.metrics = m }
}

// NewTranslator returns a Translator reading metadata from acc.
func NewTranslator(acc md.Accessor, cfg config.Translator, opts ...Option) *Translator {
	t := &Translator{
		acc:   acc,
		cfg:   cfg,
		idgen: dxl.NewIDGenerator(dxl.ColumnID(cfg.FirstColumnID)),
	}
	for _, o := range opts {
		o(t)
	}
	if t.resolver == nil {
		t.resolver = pgquery.NewTypeResolver(acc)
	}
	if t.metrics == nil {
		t.metrics = NewMetrics()
	}
	return t
}

// IDGenerator returns the generator of the translator's column ids.
func (t *Translator) IDGenerator() *dxl.IDGenerator {
	return t.idgen
}

// Metrics returns the translator's metrics.
func (t *Translator) Metrics() *Metrics {
	return t.metrics
}

// finish converts a recovered panic into an error and records fallbacks.
// It must be deferred with the address of the caller's error result.
func (t *Translator) finish(ctx context.Context, r interface{}, err *error) {
	if r != nil {
		*err = gpopt.CatchOptimizerError(r)
	}
	if *err == nil {
		return
	}
	if feature := gperr.UnsupportedFeatureName(*err); feature != "" {
		t.metrics.Fallbacks.WithLabelValues(feature).Inc()
		log.VEventf(ctx, 1, "falling back to the planner: %s", feature)
		return
	}
	if errors.IsAssertionFailure(*err) {
		log.Errorf(ctx, "%+v", *err)
	}
}

// TableDescr builds the descriptor of the relation referenced by rte. See
// the TableDescr function.
func (t *Translator) TableDescr(
	ctx context.Context, rte *pgquery.RangeTblEntry, assignedQueryIDForTargetRel uint32,
) (td *dxl.TableDescr, isDistributed bool, err error) {
	ctx = logtags.AddTag(ctx, "rel", rte.RelID)
	defer func() { t.finish(ctx, recover(), &err) }()
	td, isDistributed, err = TableDescr(t.acc, t.idgen, t.cfg, rte, assignedQueryIDForTargetRel)
	if err != nil {
		return nil, false, err
	}
	t.metrics.TablesTranslated.Inc()
	if log.V(2) {
		log.Infof(ctx, "table %s: %d columns, distributed=%t", td, td.Arity(), isDistributed)
	}
	return td, isDistributed, nil
}

// IndexDescr builds the descriptor of an index.
func (t *Translator) IndexDescr(ctx context.Context, id md.MDId) (_ *dxl.IndexDescr, err error) {
	ctx = logtags.AddTag(ctx, "index", id)
	defer func() { t.finish(ctx, recover(), &err) }()
	return IndexDescr(t.acc, id)
}

// LogicalTVF translates a function range table entry.
func (t *Translator) LogicalTVF(
	ctx context.Context, rte *pgquery.RangeTblEntry,
) (tvf *dxl.LogicalTVF, err error) {
	defer func() { t.finish(ctx, recover(), &err) }()
	if rte.ERef != nil {
		ctx = logtags.AddTag(ctx, "tvf", rte.ERef.AliasName)
	}
	tvf, err = LogicalTVF(t.acc, t.idgen, t.resolver, rte)
	if err != nil {
		return nil, err
	}
	t.metrics.TVFsTranslated.Inc()
	log.VEventf(ctx, 2, "table function %s: %d columns", tvf.Name, tvf.Arity())
	return tvf, nil
}

// GroupingSets expands the GROUP BY clause of q. The refs met are recorded
// in groupCols.
func (t *Translator) GroupingSets(
	ctx context.Context, q *pgquery.Query, numCols uint32, groupCols *GroupColumns,
) (sets []*bitset.BitSet, err error) {
	defer func() { t.finish(ctx, recover(), &err) }()
	return ColumnAttnosForGroupBy(q.GroupClause, q.GroupingSets, q.GroupDistinct, numCols, groupCols)
}

// GenerateColIDs returns the column ids of a target list computed over an
// input with the given columns. See the GenerateColIDs function.
func (t *Translator) GenerateColIDs(
	ctx context.Context,
	targetList []*pgquery.TargetEntry,
	inputTypes []md.MDId,
	inputColIDs []dxl.ColumnID,
	isOuterRef []bool,
) (ids []dxl.ColumnID, err error) {
	defer func() { t.finish(ctx, recover(), &err) }()
	return GenerateColIDs(targetList, inputTypes, inputColIDs, isOuterRef, t.idgen), nil
}

// FixUnknownTypeConstant retypes the unknown-typed constants of q. See the
// FixUnknownTypeConstant function.
func (t *Translator) FixUnknownTypeConstant(
	ctx context.Context, q *pgquery.Query, outputTargetList []*pgquery.TargetEntry,
) (res *pgquery.Query, err error) {
	defer func() { t.finish(ctx, recover(), &err) }()
	return FixUnknownTypeConstant(q, outputTargetList)
}

// ScalarExpr builds the scalar expression computing e at the given query
// level. Vars are resolved through mapping.
func (t *Translator) ScalarExpr(
	ctx context.Context, e pgquery.Expr, queryLevel uint32, mapping VarColIDMapping,
) (res *operators.Expr, err error) {
	defer func() { t.finish(ctx, recover(), &err) }()
	return operators.Build(t.acc, e, func(v *pgquery.Var) (dxl.ColumnID, error) {
		return mapping.ColIDForVar(queryLevel, v)
	})
}

// CheckRTEPermissions verifies the privileges required by a range table.
// Without a permission checker every range table is accepted.
func (t *Translator) CheckRTEPermissions(
	ctx context.Context, rangeTable []*pgquery.RangeTblEntry,
) error {
	if t.perms == nil {
		return nil
	}
	if err := CheckRTEPermissions(t.perms, rangeTable); err != nil {
		log.VEventf(ctx, 1, "permission check failed: %v", err)
		return err
	}
	return nil
}
