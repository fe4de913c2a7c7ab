// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package pgquery models the parts of the host database's analyzed query
// tree that the DXL translator reads, together with the host routines the
// translator defers to: expression typing, deep copies, coercion of untyped
// literals and resolution of polymorphic function signatures.
package pgquery

import "github.com/lib/pq/oid"

// Expr is a scalar expression node.
type Expr interface {
	exprNode()
}

// Const is a literal.
type Const struct {
	ConstType   oid.Oid
	ConstTypMod int32
	ConstIsNull bool
	// Value is the literal in its text form.
	Value string
}

// Var references a column of a range table entry.
type Var struct {
	// VarNo is the 1-based index of the range table entry.
	VarNo     int32
	VarAttNo  int32
	VarType   oid.Oid
	VarTypMod int32
	// VarLevelsUp is the number of query levels above this one that the
	// referenced range table belongs to.
	VarLevelsUp uint32
}

// CoercionForm records how a function call was written.
type CoercionForm uint8

const (
	CoerceExplicitCall CoercionForm = iota
	CoerceExplicitCast
	CoerceImplicitCast
)

// FuncExpr is a function call.
type FuncExpr struct {
	FuncID         oid.Oid
	FuncResultType oid.Oid
	FuncRetSet     bool
	FuncVariadic   bool
	FuncFormat     CoercionForm
	Args           []Expr
}

// OpExpr is an operator invocation.
type OpExpr struct {
	OpNo         oid.Oid
	OpResultType oid.Oid
	Args         []Expr
}

// RelabelType is a binary-compatible cast.
type RelabelType struct {
	Arg          Expr
	ResultType   oid.Oid
	ResultTypMod int32
}

// SubLinkType is the kind of a sub-select appearing in an expression.
type SubLinkType uint8

const (
	ExistsSubLink SubLinkType = iota
	AllSubLink
	AnySubLink
	RowCompareSubLink
	ExprSubLink
	MultiExprSubLink
	ArraySubLink
	CTESubLink
	NotExistsSubLink
)

// SubLink is a sub-select appearing in an expression.
type SubLink struct {
	SubLinkType SubLinkType
	TestExpr    Expr
	SubSelect   *Query
	// ResultType is the type of the sub-select's single output column, used
	// for EXPR sublinks.
	ResultType oid.Oid
}

func (*Const) exprNode()       {}
func (*Var) exprNode()         {}
func (*FuncExpr) exprNode()    {}
func (*OpExpr) exprNode()      {}
func (*RelabelType) exprNode() {}
func (*SubLink) exprNode()     {}

// TargetEntry is one entry of a query's target list.
type TargetEntry struct {
	Expr Expr
	// ResNo is the 1-based position of the entry.
	ResNo   int16
	ResName string
	// ResSortGroupRef is non-zero when the entry is referenced by a sort,
	// group or window clause.
	ResSortGroupRef uint32
	// ResJunk entries are needed for evaluation but are not part of the
	// result.
	ResJunk bool
}

// SortGroupClause is an ORDER BY, GROUP BY, PARTITION BY or DISTINCT item.
type SortGroupClause struct {
	TLESortGroupRef uint32
	EqOp            oid.Oid
	SortOp          oid.Oid
	NullsFirst      bool
	Hashable        bool
}

// GroupingSetKind is the kind of a grouping set.
type GroupingSetKind uint8

const (
	GroupingSetEmpty GroupingSetKind = iota
	GroupingSetSimple
	GroupingSetRollup
	GroupingSetCube
	GroupingSetSets
)

var groupingSetKindNames = [...]string{
	GroupingSetEmpty:  "EMPTY",
	GroupingSetSimple: "SIMPLE",
	GroupingSetRollup: "ROLLUP",
	GroupingSetCube:   "CUBE",
	GroupingSetSets:   "SETS",
}

func (k GroupingSetKind) String() string {
	if int(k) < len(groupingSetKindNames) {
		return groupingSetKindNames[k]
	}
	return "UNKNOWN"
}

// SafeValue implements redact.SafeValue.
func (GroupingSetKind) SafeValue() {}

// GroupingSet is one item of a GROUP BY clause with grouping sets.
//
// SIMPLE sets list the sort/group refs of their columns in Refs. ROLLUP,
// CUBE and SETS list their elements in Content; the elements of ROLLUP and
// CUBE are always SIMPLE.
type GroupingSet struct {
	Kind    GroupingSetKind
	Content []*GroupingSet
	Refs    []uint32
}

// WindowClause is a named or inline window specification.
type WindowClause struct {
	Name            string
	PartitionClause []*SortGroupClause
	OrderClause     []*SortGroupClause
	WinRef          uint32
}

// Alias is a name given to a range table entry and, optionally, its
// columns.
type Alias struct {
	AliasName string
	ColNames  []string
}

// RTEKind is the kind of a range table entry.
type RTEKind uint8

const (
	RTERelation RTEKind = iota
	RTESubquery
	RTEJoin
	RTEFunction
	RTEValues
	RTECTE
)

// RangeTblFunction is one function call of a function range table entry.
type RangeTblFunction struct {
	FuncExpr Expr
	// FuncColTypes, FuncColTypMods and FuncColNames are set when the call
	// returns record and the query supplied a column definition list.
	FuncColTypes   []oid.Oid
	FuncColTypMods []int32
	FuncColNames   []string
}

// Permission bits of RangeTblEntry.RequiredPerms.
const (
	ACLInsert uint32 = 1 << 0
	ACLSelect uint32 = 1 << 1
	ACLUpdate uint32 = 1 << 2
	ACLDelete uint32 = 1 << 3
)

// RangeTblEntry is an entry of a query's range table.
type RangeTblEntry struct {
	Kind RTEKind
	// RelID is set for relation entries.
	RelID oid.Oid
	// Alias is the user-written alias, if any.
	Alias *Alias
	// ERef is the effective alias: the user alias or the generated one.
	ERef *Alias
	// Functions is set for function entries.
	Functions     []*RangeTblFunction
	CheckAsUser   uint32
	RelLockMode   int32
	RequiredPerms uint32
	Subquery      *Query
}

// SetOperation is the kind of a set operation.
type SetOperation uint8

const (
	SetOpNone SetOperation = iota
	SetOpUnion
	SetOpIntersect
	SetOpExcept
)

// JoinType is the kind of a join in the host query tree.
type JoinType uint8

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinFull
	JoinRight
	JoinSemi
	JoinAnti
	JoinUniqueOuter
	JoinUniqueInner
	JoinLASJNotIn
)

// ScanDirection is the direction of a scan in the host executor.
type ScanDirection int8

const (
	BackwardScanDirection   ScanDirection = -1
	NoMovementScanDirection ScanDirection = 0
	ForwardScanDirection    ScanDirection = 1
)

// Query is an analyzed query.
type Query struct {
	TargetList    []*TargetEntry
	RangeTable    []*RangeTblEntry
	Quals         Expr
	GroupClause   []*SortGroupClause
	GroupingSets  []*GroupingSet
	GroupDistinct bool
	WindowClause  []*WindowClause
	SortClause    []*SortGroupClause
	HasSubLinks   bool
}
