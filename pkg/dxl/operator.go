// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package dxl defines the DXL node descriptors the translator produces:
// column, table and index descriptors, and the scalar, logical and physical
// operators that make up a DXL tree.
package dxl

import "fmt"

// Operator identifies the kind of a DXL node.
type Operator uint8

const (
	UnknownOp Operator = iota

	// -- Scalar operators --

	// ScalarIdentOp references a column.
	ScalarIdentOp
	// ScalarConstValueOp is a constant.
	ScalarConstValueOp
	// ScalarProjElemOp defines a column from its single child expression.
	ScalarProjElemOp
	// ScalarProjListOp is the list of ScalarProjElem children of a project.
	ScalarProjListOp
	// ScalarAggrefOp is an aggregate call. It always has one ScalarValuesList
	// child per AggrefChild.
	ScalarAggrefOp
	ScalarValuesListOp
	ScalarAssertConstraintOp
	ScalarAssertConstraintListOp

	// -- Logical operators --

	LogicalGetOp
	LogicalTVFOp

	// -- Physical operators --

	PhysicalGatherMotionOp
	PhysicalBroadcastMotionOp
	PhysicalRedistributeMotionOp
	PhysicalRandomMotionOp
	PhysicalRoutedDistributeMotionOp

	// This should be last.
	numOperators
)

var operatorNames = [numOperators]string{
	UnknownOp:                        "Unknown",
	ScalarIdentOp:                    "ScalarIdent",
	ScalarConstValueOp:               "ScalarConst",
	ScalarProjElemOp:                 "ScalarProjElem",
	ScalarProjListOp:                 "ScalarProjList",
	ScalarAggrefOp:                   "ScalarAggref",
	ScalarValuesListOp:               "ScalarValuesList",
	ScalarAssertConstraintOp:         "ScalarAssertConstraint",
	ScalarAssertConstraintListOp:     "ScalarAssertConstraintList",
	LogicalGetOp:                     "LogicalGet",
	LogicalTVFOp:                     "LogicalTVF",
	PhysicalGatherMotionOp:           "GatherMotion",
	PhysicalBroadcastMotionOp:        "BroadcastMotion",
	PhysicalRedistributeMotionOp:     "RedistributeMotion",
	PhysicalRandomMotionOp:           "RandomMotion",
	PhysicalRoutedDistributeMotionOp: "RoutedDistributeMotion",
}

func (op Operator) String() string {
	if op >= numOperators {
		return fmt.Sprintf("operator(%d)", op)
	}
	return operatorNames[op]
}

// SafeValue implements redact.SafeValue.
func (Operator) SafeValue() {}

// Op is the payload of a DXL node.
type Op interface {
	// Operator returns the kind of the node.
	Operator() Operator
}

// ColumnDefiner is implemented by operators that produce columns. Nodes
// whose operator does not implement it define no columns.
type ColumnDefiner interface {
	// DefinesColumn returns true if the operator produces the column with
	// the given id.
	DefinesColumn(id ColumnID) bool
}

// Node is a DXL tree node: an operator and its ordered children.
type Node struct {
	Op       Op
	Children []*Node
}

// NewNode returns a node with the given operator and children.
func NewNode(op Op, children ...*Node) *Node {
	return &Node{Op: op, Children: children}
}

// Operator returns the kind of the node's operator.
func (n *Node) Operator() Operator {
	return n.Op.Operator()
}

// Arity returns the number of children.
func (n *Node) Arity() int {
	return len(n.Children)
}

// Child returns the i-th child.
func (n *Node) Child(i int) *Node {
	return n.Children[i]
}

// AddChild appends a child.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// DefinesColumn returns true if the node's operator produces the given
// column. It does not look at the children.
func (n *Node) DefinesColumn(id ColumnID) bool {
	if d, ok := n.Op.(ColumnDefiner); ok {
		return d.DefinesColumn(id)
	}
	return false
}
