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
	"github.com/lib/pq/oid"
)

// Sequence functions are volatile but are allowed in table function calls
// so that DML on tables with sequence defaults does not fall back to the
// planner. The planner makes the same exemption.
const (
	nextvalOid oid.Oid = 1574
	currvalOid oid.Oid = 1575
	setvalOid  oid.Oid = 1576
)

// IsSirvFunc returns true if the function is a single-row volatile
// function: volatile and not set-returning. The planner evaluates such
// calls in an InitPlan, which the optimizer does not support.
func IsSirvFunc(acc md.Accessor, funcID oid.Oid) (bool, error) {
	switch funcID {
	case nextvalOid, currvalOid, setvalOid:
		return false, nil
	}
	fn, err := acc.RetrieveFunc(md.GeneralID(funcID))
	if err != nil {
		return false, err
	}
	return !fn.ReturnsSet && fn.Stability == md.FuncVolatile, nil
}

// LogicalTVF translates a function range table entry into a logical table
// function.
//
// The output columns are, in order of preference: the column definition
// list of the query, the columns of the relation backing a composite
// return type, the output arguments declared in the catalog (with
// polymorphic types resolved against the call), or a single column of the
// scalar return type named after the function.
func LogicalTVF(
	acc md.Accessor,
	idgen *dxl.IDGenerator,
	resolver pgquery.PolymorphicResolver,
	rte *pgquery.RangeTblEntry,
) (*dxl.LogicalTVF, error) {
	// ROWS FROM with several calls would need a join on ordinality, which
	// the optimizer does not build.
	if len(rte.Functions) != 1 {
		return nil, gperr.NewUnsupportedFeature("Multi-argument UNNEST() or TABLE()")
	}
	rtfunc := rte.Functions[0]

	// A call folded to a constant becomes a function with an invalid id.
	if c, ok := rtfunc.FuncExpr.(*pgquery.Const); ok {
		return constTVF(acc, idgen, rte, c)
	}

	call, ok := rtfunc.FuncExpr.(*pgquery.FuncExpr)
	if !ok {
		panic(errors.AssertionFailedf("unexpected table function expression %T", rtfunc.FuncExpr))
	}
	sirv, err := IsSirvFunc(acc, call.FuncID)
	if err != nil {
		return nil, err
	}
	if sirv {
		return nil, gperr.NewUnsupportedFeature("SIRV functions")
	}

	funcID := md.GeneralID(call.FuncID)
	retTypeID := md.GeneralID(call.FuncResultType)
	retType, err := acc.RetrieveType(retTypeID)
	if err != nil {
		return nil, err
	}
	fn, err := acc.RetrieveFunc(funcID)
	if err != nil {
		return nil, err
	}

	var cols []*dxl.ColumnDescr
	switch {
	case rtfunc.FuncColTypes != nil:
		// The function returns record and the query supplied the columns.
		cols = recordColumnDescrs(idgen, rte.ERef.ColNames, rtfunc.FuncColTypes, rtfunc.FuncColTypMods)

	case retType.IsComposite && retType.BaseRelID.IsValid():
		// The function returns a table type or a user-defined row type.
		cols, err = CompositeColumnDescrs(acc, idgen, retType)

	case fn.OutputArgTypes != nil:
		// The function returns record with output columns declared in the
		// catalog.
		outTypes := fn.OutputArgTypes
		if ContainsPolymorphicTypes(outTypes) {
			outTypes, err = ResolvePolymorphicTypes(resolver, outTypes, fn.ArgTypes, call)
			if err != nil {
				return nil, err
			}
		}
		cols = outArgColumnDescrs(idgen, rte.ERef.ColNames, outTypes)

	default:
		// Table functions do not describe the type modifier of their result.
		cols = baseColumnDescrs(idgen, retTypeID, md.DefaultTypeModifier, fn.Name)
	}
	if err != nil {
		return nil, err
	}

	return &dxl.LogicalTVF{
		FuncID:       funcID,
		ReturnTypeID: retTypeID,
		Name:         fn.Name,
		Columns:      cols,
	}, nil
}

func constTVF(
	acc md.Accessor, idgen *dxl.IDGenerator, rte *pgquery.RangeTblEntry, c *pgquery.Const,
) (*dxl.LogicalTVF, error) {
	retTypeID := md.GeneralID(c.ConstType)
	typ, err := acc.RetrieveType(retTypeID)
	if err != nil {
		return nil, err
	}
	name := rte.ERef.AliasName

	var cols []*dxl.ColumnDescr
	if typ.IsComposite {
		cols, err = CompositeColumnDescrs(acc, idgen, typ)
		if err != nil {
			return nil, err
		}
	} else {
		cols = baseColumnDescrs(idgen, retTypeID, c.ConstTypMod, name)
	}
	return &dxl.LogicalTVF{
		FuncID:       md.GeneralID(pgquery.InvalidOid),
		ReturnTypeID: retTypeID,
		Name:         name,
		Columns:      cols,
	}, nil
}

// ContainsPolymorphicTypes returns true if any of the types is polymorphic.
func ContainsPolymorphicTypes(types []md.MDId) bool {
	for _, t := range types {
		if md.IsPolymorphicType(t.OID) {
			return true
		}
	}
	return false
}

// ResolvePolymorphicTypes replaces the polymorphic types among a
// function's output argument types with the concrete types implied by the
// call. inputArgTypes are the declared input argument types; only as many
// as the call passes are considered.
func ResolvePolymorphicTypes(
	resolver pgquery.PolymorphicResolver,
	outArgTypes []md.MDId,
	inputArgTypes []md.MDId,
	call *pgquery.FuncExpr,
) ([]md.MDId, error) {
	numArgs := len(inputArgTypes)
	if len(call.Args) < numArgs {
		numArgs = len(call.Args)
	}
	total := numArgs + len(outArgTypes)

	argTypes := make([]oid.Oid, 0, total)
	argModes := make([]pgquery.ArgMode, 0, total)
	for _, t := range inputArgTypes[:numArgs] {
		argTypes = append(argTypes, t.OID)
		argModes = append(argModes, pgquery.ArgModeIn)
	}
	for _, t := range outArgTypes {
		argTypes = append(argTypes, t.OID)
		argModes = append(argModes, pgquery.ArgModeTable)
	}

	if !resolver.ResolvePolymorphicArgTypes(argTypes, argModes, call) {
		return nil, gperr.UnrecognizedType(
			"could not determine actual argument/return type for polymorphic function")
	}

	resolved := make([]md.MDId, len(outArgTypes))
	for i, t := range argTypes[numArgs:] {
		resolved[i] = md.GeneralID(t)
	}
	return resolved, nil
}

// ExpandCompositeType returns the non-system columns of the relation
// backing a composite type.
func ExpandCompositeType(acc md.Accessor, typ *md.Type) ([]*md.Column, error) {
	if !typ.IsComposite {
		panic(errors.AssertionFailedf("type %s is not composite", typ.ID))
	}
	rel, err := acc.RetrieveRel(typ.BaseRelID)
	if err != nil {
		return nil, err
	}
	cols := make([]*md.Column, 0, len(rel.Columns))
	for i := range rel.Columns {
		if col := &rel.Columns[i]; !col.IsSystemColumn() {
			cols = append(cols, col)
		}
	}
	return cols, nil
}

// CompositeColumnDescrs returns one column per field of a composite type,
// numbered from 1.
func CompositeColumnDescrs(
	acc md.Accessor, idgen *dxl.IDGenerator, typ *md.Type,
) ([]*dxl.ColumnDescr, error) {
	fields, err := ExpandCompositeType(acc, typ)
	if err != nil {
		return nil, err
	}
	cols := make([]*dxl.ColumnDescr, len(fields))
	for i, f := range fields {
		cols[i] = &dxl.ColumnDescr{
			Name:         f.Name,
			ID:           idgen.Next(),
			AttrNum:      int32(i + 1),
			TypeID:       f.TypeID,
			TypeModifier: f.TypeModifier,
		}
	}
	return cols, nil
}

// recordColumnDescrs builds the columns of a column definition list.
func recordColumnDescrs(
	idgen *dxl.IDGenerator, names []string, types []oid.Oid, typmods []int32,
) []*dxl.ColumnDescr {
	if len(names) < len(types) {
		panic(errors.AssertionFailedf("%d column names for %d column types", len(names), len(types)))
	}
	cols := make([]*dxl.ColumnDescr, len(types))
	for i, t := range types {
		typmod := md.DefaultTypeModifier
		if i < len(typmods) {
			typmod = typmods[i]
		}
		cols[i] = &dxl.ColumnDescr{
			Name:         names[i],
			ID:           idgen.Next(),
			AttrNum:      int32(i + 1),
			TypeID:       md.GeneralID(t),
			TypeModifier: typmod,
		}
	}
	return cols
}

// outArgColumnDescrs builds the columns of a function's declared output
// arguments. Table functions do not describe the type modifiers of their
// output columns.
func outArgColumnDescrs(idgen *dxl.IDGenerator, names []string, types []md.MDId) []*dxl.ColumnDescr {
	if len(names) != len(types) {
		panic(errors.AssertionFailedf("%d column names for %d output arguments", len(names), len(types)))
	}
	cols := make([]*dxl.ColumnDescr, len(types))
	for i, t := range types {
		cols[i] = &dxl.ColumnDescr{
			Name:         names[i],
			ID:           idgen.Next(),
			AttrNum:      int32(i + 1),
			TypeID:       t,
			TypeModifier: md.DefaultTypeModifier,
		}
	}
	return cols
}

// baseColumnDescrs builds the single column of a function returning a
// scalar type.
func baseColumnDescrs(
	idgen *dxl.IDGenerator, typeID md.MDId, typmod int32, name string,
) []*dxl.ColumnDescr {
	return []*dxl.ColumnDescr{{
		Name:         name,
		ID:           idgen.Next(),
		AttrNum:      1,
		TypeID:       typeID,
		TypeModifier: typmod,
	}}
}
