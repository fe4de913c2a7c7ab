// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package mdcatalog implements md.Accessor over a static, in-memory set of
// catalog objects. It is used by tests and by the dxlt tool, which loads the
// objects from a YAML file.
package mdcatalog

import (
	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
)

// Catalog is a static md.Accessor. The zero value is not usable; use New.
type Catalog struct {
	rels    map[md.MDId]*md.Relation
	types   map[md.MDId]*md.Type
	funcs   map[md.MDId]*md.Function
	indexes map[md.MDId]*md.Index
}

var _ md.Accessor = (*Catalog)(nil)

// New returns a catalog holding the builtin types and functions.
func New() *Catalog {
	c := NewEmpty()
	for i := range builtinTypes {
		typ := builtinTypes[i]
		c.mustAdd(c.AddType(&typ))
	}
	for i := range builtinFuncs {
		fn := builtinFuncs[i]
		c.mustAdd(c.AddFunc(&fn))
	}
	return c
}

// NewEmpty returns a catalog with no objects.
func NewEmpty() *Catalog {
	return &Catalog{
		rels:    make(map[md.MDId]*md.Relation),
		types:   make(map[md.MDId]*md.Type),
		funcs:   make(map[md.MDId]*md.Function),
		indexes: make(map[md.MDId]*md.Index),
	}
}

func (c *Catalog) mustAdd(err error) {
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "adding builtin object"))
	}
}

// AddRelation adds a relation to the catalog.
func (c *Catalog) AddRelation(rel *md.Relation) error {
	if err := checkNew(rel.ID, md.MDIdRel, c.rels[rel.ID] != nil); err != nil {
		return err
	}
	c.rels[rel.ID] = rel
	return nil
}

// AddType adds a type to the catalog.
func (c *Catalog) AddType(typ *md.Type) error {
	if err := checkNew(typ.ID, md.MDIdGeneral, c.types[typ.ID] != nil); err != nil {
		return err
	}
	c.types[typ.ID] = typ
	return nil
}

// AddFunc adds a function to the catalog.
func (c *Catalog) AddFunc(fn *md.Function) error {
	if err := checkNew(fn.ID, md.MDIdGeneral, c.funcs[fn.ID] != nil); err != nil {
		return err
	}
	c.funcs[fn.ID] = fn
	return nil
}

// AddIndex adds an index to the catalog.
func (c *Catalog) AddIndex(idx *md.Index) error {
	if err := checkNew(idx.ID, md.MDIdGeneral, c.indexes[idx.ID] != nil); err != nil {
		return err
	}
	c.indexes[idx.ID] = idx
	return nil
}

func checkNew(id md.MDId, kind md.MDIdKind, exists bool) error {
	if !id.IsValid() {
		return errors.Newf("invalid object id %s", id)
	}
	if id.Kind != kind {
		return errors.Newf("object id %s has the wrong kind", id)
	}
	if exists {
		return errors.Newf("duplicate object id %s", id)
	}
	return nil
}

// RetrieveRel is part of the md.Accessor interface.
func (c *Catalog) RetrieveRel(id md.MDId) (*md.Relation, error) {
	if rel, ok := c.rels[id]; ok {
		return rel, nil
	}
	return nil, gperr.ObjectNotFound("relation", id)
}

// RetrieveType is part of the md.Accessor interface.
func (c *Catalog) RetrieveType(id md.MDId) (*md.Type, error) {
	if typ, ok := c.types[id]; ok {
		return typ, nil
	}
	return nil, gperr.ObjectNotFound("type", id)
}

// RetrieveFunc is part of the md.Accessor interface.
func (c *Catalog) RetrieveFunc(id md.MDId) (*md.Function, error) {
	if fn, ok := c.funcs[id]; ok {
		return fn, nil
	}
	return nil, gperr.ObjectNotFound("function", id)
}

// RetrieveIndex is part of the md.Accessor interface.
func (c *Catalog) RetrieveIndex(id md.MDId) (*md.Index, error) {
	if idx, ok := c.indexes[id]; ok {
		return idx, nil
	}
	return nil, gperr.ObjectNotFound("index", id)
}
