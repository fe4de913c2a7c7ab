// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package mdcatalog

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/lib/pq/oid"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Types     []typeEntry     `yaml:"types"`
	Relations []relationEntry `yaml:"relations"`
	Functions []functionEntry `yaml:"functions"`
	Indexes   []indexEntry    `yaml:"indexes"`
}

type typeEntry struct {
	OID          oid.Oid `yaml:"oid"`
	Name         string  `yaml:"name"`
	Composite    bool    `yaml:"composite"`
	BaseRelation oid.Oid `yaml:"base_relation"`
	Elem         oid.Oid `yaml:"elem"`
	Array        oid.Oid `yaml:"array"`
	Enum         bool    `yaml:"enum"`
	Length       int32   `yaml:"length"`
}

type columnEntry struct {
	Name    string  `yaml:"name"`
	AttNum  int32   `yaml:"attno"`
	Type    oid.Oid `yaml:"type"`
	TypeMod *int32  `yaml:"typmod"`
	Dropped bool    `yaml:"dropped"`
	NotNull bool    `yaml:"not_null"`
	Length  int32   `yaml:"length"`
}

type relationEntry struct {
	OID          oid.Oid       `yaml:"oid"`
	Name         string        `yaml:"name"`
	Distribution string        `yaml:"distribution"`
	Storage      string        `yaml:"storage"`
	Columns      []columnEntry `yaml:"columns"`
	Checks       []oid.Oid     `yaml:"check_constraints"`
	Partitions   []oid.Oid     `yaml:"partitions"`
}

type functionEntry struct {
	OID        oid.Oid   `yaml:"oid"`
	Name       string    `yaml:"name"`
	ReturnType oid.Oid   `yaml:"return_type"`
	ReturnsSet bool      `yaml:"returns_set"`
	Stability  string    `yaml:"stability"`
	Strict     bool      `yaml:"strict"`
	ArgTypes   []oid.Oid `yaml:"arg_types"`
	OutTypes   []oid.Oid `yaml:"output_arg_types"`
}

type indexEntry struct {
	OID      oid.Oid `yaml:"oid"`
	Name     string  `yaml:"name"`
	Relation oid.Oid `yaml:"relation"`
}

// LoadYAML reads a catalog file and adds its objects to a catalog that
// already holds the builtins.
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog %s", path)
	}
	c := New()
	if err := c.ParseYAML(data); err != nil {
		return nil, errors.Wrapf(err, "loading catalog %s", path)
	}
	return c, nil
}

// ParseYAML adds the objects described by data to the catalog.
func (c *Catalog) ParseYAML(data []byte) error {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return errors.Wrap(err, "parsing catalog")
	}

	for _, t := range f.Types {
		typ := &md.Type{
			ID:          md.GeneralID(t.OID),
			Name:        t.Name,
			IsComposite: t.Composite,
			IsEnum:      t.Enum,
			Length:      t.Length,
		}
		if t.BaseRelation != 0 {
			typ.BaseRelID = md.RelID(t.BaseRelation)
		}
		if t.Elem != 0 {
			typ.ElemTypeID = md.GeneralID(t.Elem)
		}
		if t.Array != 0 {
			typ.ArrayTypeID = md.GeneralID(t.Array)
		}
		if err := c.AddType(typ); err != nil {
			return errors.Wrapf(err, "type %q", t.Name)
		}
	}

	for _, r := range f.Relations {
		rel, err := r.relation()
		if err != nil {
			return errors.Wrapf(err, "relation %q", r.Name)
		}
		if err := c.AddRelation(rel); err != nil {
			return errors.Wrapf(err, "relation %q", r.Name)
		}
	}

	for _, fe := range f.Functions {
		stab, err := parseStability(fe.Stability)
		if err != nil {
			return errors.Wrapf(err, "function %q", fe.Name)
		}
		fn := &md.Function{
			ID:             md.GeneralID(fe.OID),
			Name:           fe.Name,
			ReturnTypeID:   md.GeneralID(fe.ReturnType),
			ReturnsSet:     fe.ReturnsSet,
			Stability:      stab,
			Strict:         fe.Strict,
			ArgTypes:       generalIDs(fe.ArgTypes),
			OutputArgTypes: generalIDs(fe.OutTypes),
		}
		if err := c.AddFunc(fn); err != nil {
			return errors.Wrapf(err, "function %q", fe.Name)
		}
	}

	for _, ie := range f.Indexes {
		idx := &md.Index{ID: md.GeneralID(ie.OID), Name: ie.Name, RelID: md.RelID(ie.Relation)}
		if _, err := c.RetrieveRel(idx.RelID); err != nil {
			return errors.Wrapf(err, "index %q", ie.Name)
		}
		if err := c.AddIndex(idx); err != nil {
			return errors.Wrapf(err, "index %q", ie.Name)
		}
	}
	return nil
}

func (r *relationEntry) relation() (*md.Relation, error) {
	rel := &md.Relation{ID: md.RelID(r.OID), Name: r.Name}
	switch r.Distribution {
	case "", "hash":
		rel.Distribution = md.DistributionHash
	case "random":
		rel.Distribution = md.DistributionRandom
	case "replicated":
		rel.Distribution = md.DistributionReplicated
	case "master-only", "masteronly":
		rel.Distribution = md.DistributionMasterOnly
	case "universal":
		rel.Distribution = md.DistributionUniversal
	default:
		return nil, errors.Newf("unknown distribution policy %q", r.Distribution)
	}
	switch r.Storage {
	case "", "heap":
		rel.Storage = md.StorageHeap
	case "ao_row":
		rel.Storage = md.StorageAppendOnlyRows
	case "ao_column":
		rel.Storage = md.StorageAppendOnlyCols
	case "foreign":
		rel.Storage = md.StorageForeign
	default:
		return nil, errors.Newf("unknown storage type %q", r.Storage)
	}
	rel.Columns = make([]md.Column, len(r.Columns))
	for i, ce := range r.Columns {
		col := md.Column{
			Name:         ce.Name,
			AttrNum:      ce.AttNum,
			TypeID:       md.GeneralID(ce.Type),
			TypeModifier: md.DefaultTypeModifier,
			Dropped:      ce.Dropped,
			Nullable:     !ce.NotNull,
			Length:       ce.Length,
		}
		if col.AttrNum == 0 {
			col.AttrNum = int32(i + 1)
		}
		if ce.TypeMod != nil {
			col.TypeModifier = *ce.TypeMod
		}
		rel.Columns[i] = col
	}
	for _, o := range r.Checks {
		rel.CheckConstraints = append(rel.CheckConstraints, md.GeneralID(o))
	}
	for _, o := range r.Partitions {
		rel.ChildPartitions = append(rel.ChildPartitions, md.RelID(o))
	}
	return rel, nil
}

func parseStability(s string) (md.FuncStability, error) {
	switch s {
	case "", "immutable":
		return md.FuncImmutable, nil
	case "stable":
		return md.FuncStable, nil
	case "volatile":
		return md.FuncVolatile, nil
	}
	return 0, errors.Newf("unknown stability %q", s)
}

func generalIDs(oids []oid.Oid) []md.MDId {
	if oids == nil {
		return nil
	}
	return ids(oids...)
}
