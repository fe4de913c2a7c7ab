// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package operators

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/pgquery"
)

// ScalarFunc is a call to a catalog function.
//
// Two calls are the same operation when they call the same function with
// the same return type. The remaining fields are derived from the catalog
// or describe how the call was written.
type ScalarFunc struct {
	funcID             md.MDId
	returnTypeID       md.MDId
	returnTypeModifier int32
	name               string
	format             pgquery.CoercionForm
	variadic           bool

	// Cached from the catalog.
	stability   md.FuncStability
	returnsSet  bool
	strict      bool
	returnsBool bool
}

var _ Operator = (*ScalarFunc)(nil)

// NewScalarFunc returns a call to function funcID returning retTypeID. The
// function and its return type are looked up once, here.
func NewScalarFunc(
	acc md.Accessor,
	funcID, retTypeID md.MDId,
	typmod int32,
	name string,
	format pgquery.CoercionForm,
	variadic bool,
) (*ScalarFunc, error) {
	if !funcID.IsValid() {
		panic(errors.AssertionFailedf("invalid function id %s", funcID))
	}
	if !retTypeID.IsValid() {
		panic(errors.AssertionFailedf("invalid return type id %s", retTypeID))
	}
	fn, err := acc.RetrieveFunc(funcID)
	if err != nil {
		return nil, err
	}
	returnsBool, err := md.IsBoolType(acc, retTypeID)
	if err != nil {
		return nil, err
	}
	return &ScalarFunc{
		funcID:             funcID,
		returnTypeID:       retTypeID,
		returnTypeModifier: typmod,
		name:               name,
		format:             format,
		variadic:           variadic,
		stability:          fn.Stability,
		returnsSet:         fn.ReturnsSet,
		strict:             fn.Strict,
		returnsBool:        returnsBool,
	}, nil
}

// ID is part of the Operator interface.
func (*ScalarFunc) ID() OperatorID { return ScalarFuncOp }

// FuncID returns the id of the called function.
func (f *ScalarFunc) FuncID() md.MDId { return f.funcID }

// TypeID is part of the Operator interface.
func (f *ScalarFunc) TypeID() md.MDId { return f.returnTypeID }

// TypeModifier returns the type modifier of the result.
func (f *ScalarFunc) TypeModifier() int32 { return f.returnTypeModifier }

// Name returns the display name of the function.
func (f *ScalarFunc) Name() string { return f.name }

// Stability returns the stability of the function.
func (f *ScalarFunc) Stability() md.FuncStability { return f.stability }

// ReturnsSet returns true for set-returning functions.
func (f *ScalarFunc) ReturnsSet() bool { return f.returnsSet }

// IsStrict returns true if the function returns null whenever an argument
// is null.
func (f *ScalarFunc) IsStrict() bool { return f.strict }

// ReturnsBool returns true if the function returns a boolean.
func (f *ScalarFunc) ReturnsBool() bool { return f.returnsBool }

// FuncFormat returns how the call was written.
func (f *ScalarFunc) FuncFormat() pgquery.CoercionForm { return f.format }

// IsVariadic returns true if the call passes a variadic array.
func (f *ScalarFunc) IsVariadic() bool { return f.variadic }

// HashValue is part of the Operator interface.
func (f *ScalarFunc) HashValue() uint64 {
	return md.CombineHashes(
		ScalarFuncOp.Hash(),
		md.CombineHashes(f.funcID.Hash(), f.returnTypeID.Hash()),
	)
}

// Matches is part of the Operator interface.
func (f *ScalarFunc) Matches(other Operator) bool {
	if other.ID() != ScalarFuncOp {
		return false
	}
	o := other.(*ScalarFunc)
	return o.funcID == f.funcID && o.returnTypeID == f.returnTypeID
}

// HasNonScalarFunction is part of the Operator interface.
func (f *ScalarFunc) HasNonScalarFunction(children []*Expr) bool {
	return f.returnsSet || childHasNonScalarFunction(children)
}

// EvalBool is part of the Operator interface.
func (f *ScalarFunc) EvalBool(children []BoolEvalResult) BoolEvalResult {
	if f.strict {
		return EberNullOnAnyNullChild(children)
	}
	return EberAny
}

// SafeFormat implements redact.SafeFormatter.
func (f *ScalarFunc) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s (%s)", ScalarFuncOp, f.name)
}

func (f *ScalarFunc) String() string { return redact.StringWithoutMarkers(f) }
