// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package operators holds the scalar operators of the optimizer's
// expression algebra. Operators are immutable once built and are compared
// and hashed many times during optimization, so they cache whatever
// metadata those checks need at construction.
package operators

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/gpdb/gpopt/pkg/md"
)

// OperatorID identifies the kind of an operator.
type OperatorID uint8

const (
	UnknownOp OperatorID = iota

	// ScalarIdentOp references a column.
	ScalarIdentOp
	// ScalarConstOp is a constant.
	ScalarConstOp
	// ScalarFuncOp calls a catalog function.
	ScalarFuncOp

	numOperators
)

var opNames = [...]string{
	UnknownOp:     "Unknown",
	ScalarIdentOp: "ScalarIdent",
	ScalarConstOp: "ScalarConst",
	ScalarFuncOp:  "ScalarFunc",
}

func (op OperatorID) String() string {
	if op >= numOperators {
		return fmt.Sprintf("OperatorID(%d)", op)
	}
	return opNames[op]
}

// SafeValue implements redact.SafeValue.
func (OperatorID) SafeValue() {}

// Hash returns the hash of the operator kind. It is the starting point of
// every operator's HashValue.
func (op OperatorID) Hash() uint64 {
	return xxhash.Sum64([]byte{byte(op)})
}

// Operator is a node of the scalar expression algebra, without its
// children.
type Operator interface {
	// ID returns the kind of the operator.
	ID() OperatorID

	// TypeID returns the type of the value the operator computes.
	TypeID() md.MDId

	// HashValue returns a hash consistent with Matches.
	HashValue() uint64

	// Matches returns true if other is the same operation as this one.
	Matches(other Operator) bool

	// HasNonScalarFunction returns true if the operator, applied to the
	// given children, can return more than one row per input row.
	HasNonScalarFunction(children []*Expr) bool

	// EvalBool returns what is statically known about the operator's
	// boolean result given what is known about the results of its
	// children.
	EvalBool(children []BoolEvalResult) BoolEvalResult

	String() string
}

// BoolEvalResult is the statically known outcome of evaluating a scalar
// expression as a boolean.
type BoolEvalResult uint8

const (
	// EberAny means nothing is known.
	EberAny BoolEvalResult = iota
	EberTrue
	EberFalse
	EberNull
	// EberNotTrue means the result is either false or null.
	EberNotTrue
)

var eberNames = [...]string{
	EberAny:     "any",
	EberTrue:    "true",
	EberFalse:   "false",
	EberNull:    "null",
	EberNotTrue: "not-true",
}

func (r BoolEvalResult) String() string {
	if int(r) < len(eberNames) {
		return eberNames[r]
	}
	return fmt.Sprintf("BoolEvalResult(%d)", r)
}

// SafeValue implements redact.SafeValue.
func (BoolEvalResult) SafeValue() {}

// EberNullOnAnyNullChild is the result of a null-propagating operator: null
// if any child is known to be null, unknown otherwise.
func EberNullOnAnyNullChild(children []BoolEvalResult) BoolEvalResult {
	for _, c := range children {
		if c == EberNull {
			return EberNull
		}
	}
	return EberAny
}

// childHasNonScalarFunction is the default HasNonScalarFunction: an
// operator returns several rows if one of its children does.
func childHasNonScalarFunction(children []*Expr) bool {
	for _, c := range children {
		if c.HasNonScalarFunction() {
			return true
		}
	}
	return false
}
