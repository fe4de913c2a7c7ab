// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package md

import "github.com/lib/pq/oid"

// DefaultTypeModifier is the type modifier of columns and values whose type
// takes no modifier.
const DefaultTypeModifier int32 = -1

// DistributionPolicy describes how the rows of a relation are spread across
// segments.
type DistributionPolicy uint8

const (
	// DistributionMasterOnly stores the relation on the coordinator only.
	DistributionMasterOnly DistributionPolicy = iota
	// DistributionHash places rows by the hash of the distribution key.
	DistributionHash
	// DistributionRandom places rows round-robin.
	DistributionRandom
	// DistributionReplicated stores a full copy on every segment.
	DistributionReplicated
	// DistributionUniversal is available everywhere, e.g. generate_series.
	DistributionUniversal
)

var distributionNames = [...]string{
	DistributionMasterOnly: "master-only",
	DistributionHash:       "hash",
	DistributionRandom:     "random",
	DistributionReplicated: "replicated",
	DistributionUniversal:  "universal",
}

func (p DistributionPolicy) String() string {
	if int(p) < len(distributionNames) {
		return distributionNames[p]
	}
	return "unknown"
}

// SafeValue implements redact.SafeValue.
func (DistributionPolicy) SafeValue() {}

// IsDistributed returns true for policies that spread rows over segments.
func (p DistributionPolicy) IsDistributed() bool {
	switch p {
	case DistributionHash, DistributionRandom, DistributionReplicated:
		return true
	}
	return false
}

// StorageType is the storage format of a relation.
type StorageType uint8

const (
	StorageHeap StorageType = iota
	StorageAppendOnlyRows
	StorageAppendOnlyCols
	StorageForeign
	StorageSentinel
)

var storageNames = [...]string{
	StorageHeap:           "heap",
	StorageAppendOnlyRows: "ao_row",
	StorageAppendOnlyCols: "ao_column",
	StorageForeign:        "foreign",
}

func (s StorageType) String() string {
	if s < StorageSentinel {
		return storageNames[s]
	}
	return "unknown"
}

// SafeValue implements redact.SafeValue.
func (StorageType) SafeValue() {}

// FuncStability is the volatility class of a function.
type FuncStability uint8

const (
	// FuncImmutable functions always return the same result for the same
	// arguments.
	FuncImmutable FuncStability = iota
	// FuncStable functions return the same result for the same arguments
	// within a single statement.
	FuncStable
	// FuncVolatile functions may return a different result on every call
	// and may have side effects.
	FuncVolatile
)

var stabilityNames = [...]string{
	FuncImmutable: "immutable",
	FuncStable:    "stable",
	FuncVolatile:  "volatile",
}

func (s FuncStability) String() string {
	if int(s) < len(stabilityNames) {
		return stabilityNames[s]
	}
	return "unknown"
}

// SafeValue implements redact.SafeValue.
func (FuncStability) SafeValue() {}

// TypeInfo classifies the builtin types the optimizer treats specially.
type TypeInfo uint8

const (
	TypeGeneric TypeInfo = iota
	TypeBool
	TypeInt2
	TypeInt4
	TypeInt8
	TypeOid
)

// Column describes a column of a relation.
type Column struct {
	Name         string
	AttrNum      int32
	TypeID       MDId
	TypeModifier int32
	Dropped      bool
	Nullable     bool
	// Length is the fixed width of the column type, or -1 for variable width.
	Length int32
}

// IsSystemColumn returns true for system columns such as ctid or
// gp_segment_id, which have negative attribute numbers.
func (c *Column) IsSystemColumn() bool {
	return c.AttrNum < 0
}

// Relation describes a table.
type Relation struct {
	ID           MDId
	Name         string
	Columns      []Column
	Distribution DistributionPolicy
	Storage      StorageType
	// CheckConstraints lists the ids of the relation's CHECK constraints.
	CheckConstraints []MDId
	// ChildPartitions lists the ids of leaf and intermediate partitions of a
	// partitioned relation.
	ChildPartitions []MDId
}

// ColumnCount returns the number of columns, including dropped and system
// columns.
func (r *Relation) ColumnCount() int {
	return len(r.Columns)
}

// Column returns the column at the given ordinal.
func (r *Relation) Column(ord int) *Column {
	return &r.Columns[ord]
}

// Type describes a data type.
type Type struct {
	ID   MDId
	Name string
	Info TypeInfo
	// IsComposite is true for row types.
	IsComposite bool
	// BaseRelID identifies the relation backing a composite type. It is
	// invalid for composite types without a backing relation (e.g. record).
	BaseRelID MDId
	// ElemTypeID is valid for array types and identifies the element type.
	ElemTypeID MDId
	// ArrayTypeID identifies the array type whose elements are of this type.
	ArrayTypeID MDId
	IsEnum      bool
	Length      int32
}

// IsBool returns true for the builtin boolean type.
func (t *Type) IsBool() bool {
	return t.Info == TypeBool
}

// Function describes a function.
type Function struct {
	ID           MDId
	Name         string
	ReturnTypeID MDId
	ReturnsSet   bool
	Stability    FuncStability
	// Strict functions return NULL whenever any argument is NULL.
	Strict bool
	// ArgTypes are the declared input argument types.
	ArgTypes []MDId
	// OutputArgTypes are the declared OUT / TABLE argument types, or nil if
	// the function declares none.
	OutputArgTypes []MDId
}

// Index describes an index.
type Index struct {
	ID   MDId
	Name string
	// RelID identifies the indexed relation.
	RelID MDId
}

// IsPolymorphicType returns true for the pseudo-types that stand for "any
// type", resolved per call from the actual arguments.
func IsPolymorphicType(o oid.Oid) bool {
	switch o {
	case oid.T_anyelement, oid.T_anyarray, oid.T_anynonarray, oid.T_anyenum, oid.T_anyrange:
		return true
	}
	return false
}
