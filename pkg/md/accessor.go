// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package md defines the metadata the translator reads from the host
// catalog: object ids, the descriptions of relations, types, functions and
// indexes, and the Accessor interface that serves them.
package md

// Accessor is a read-only view of the host catalog. Implementations return
// an error marked with gperr.ErrObjectNotFound when an id is unknown.
//
// Objects returned by an Accessor must not be modified.
type Accessor interface {
	// RetrieveRel returns the relation with the given id.
	RetrieveRel(id MDId) (*Relation, error)
	// RetrieveType returns the type with the given id.
	RetrieveType(id MDId) (*Type, error)
	// RetrieveFunc returns the function with the given id.
	RetrieveFunc(id MDId) (*Function, error)
	// RetrieveIndex returns the index with the given id.
	RetrieveIndex(id MDId) (*Index, error)
}

// IsBoolType returns true if the given type is the builtin boolean type.
func IsBoolType(acc Accessor, typeID MDId) (bool, error) {
	typ, err := acc.RetrieveType(typeID)
	if err != nil {
		return false, err
	}
	return typ.IsBool(), nil
}
