// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate

import (
	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/config"
	"github.com/gpdb/gpopt/pkg/dxl"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/pgquery"
)

// IndexDescr returns the descriptor of the index with the given id.
func IndexDescr(acc md.Accessor, id md.MDId) (*dxl.IndexDescr, error) {
	idx, err := acc.RetrieveIndex(id)
	if err != nil {
		return nil, err
	}
	return &dxl.IndexDescr{ID: id, Name: idx.Name}, nil
}

// TableDescr returns the descriptor of the relation referenced by rte. The
// descriptor is named after the entry's alias if there is one. It has one
// column per non-dropped column of the relation, in catalog order, each
// with a fresh id from idgen.
//
// The second result reports whether the relation is distributed, i.e. has
// a hash, random or replicated distribution policy.
func TableDescr(
	acc md.Accessor,
	idgen *dxl.IDGenerator,
	cfg config.Translator,
	rte *pgquery.RangeTblEntry,
	assignedQueryIDForTargetRel uint32,
) (_ *dxl.TableDescr, isDistributed bool, _ error) {
	id := md.RelID(rte.RelID)
	rel, err := acc.RetrieveRel(id)
	if err != nil {
		return nil, false, err
	}

	name := rel.Name
	if rte.Alias != nil {
		name = rte.Alias.AliasName
	}
	td := &dxl.TableDescr{
		ID:                          id,
		Name:                        name,
		CheckAsUser:                 rte.CheckAsUser,
		LockMode:                    dxl.LockMode(rte.RelLockMode),
		RequiredPerms:               rte.RequiredPerms,
		AssignedQueryIDForTargetRel: assignedQueryIDForTargetRel,
	}

	isDistributed = rel.Distribution.IsDistributed()
	if rel.Distribution == md.DistributionMasterOnly &&
		rel.Storage != md.StorageForeign &&
		!cfg.EnableMasterOnlyQueries {
		// Master-only tables are mostly catalog tables, which are seldom
		// analyzed.
		return nil, false, gperr.NewUnsupportedFeature("Queries on master-only tables")
	}

	for i := range rel.Columns {
		col := &rel.Columns[i]
		if col.Dropped {
			continue
		}
		var width uint32
		if col.Length > 0 {
			width = uint32(col.Length)
		}
		td.AddColumn(&dxl.ColumnDescr{
			Name:         col.Name,
			ID:           idgen.Next(),
			AttrNum:      col.AttrNum,
			TypeID:       col.TypeID,
			TypeModifier: col.TypeModifier,
			Width:        width,
		})
	}
	return td, isDistributed, nil
}

// ColumnDescrAt returns the column of table at ordinal pos. The first
// column cannot be requested this way.
func ColumnDescrAt(table *dxl.TableDescr, pos int) *dxl.ColumnDescr {
	if pos == 0 || pos >= table.Arity() {
		panic(errors.AssertionFailedf("column position %d out of range (0, %d)", pos, table.Arity()))
	}
	return table.ColumnAt(pos)
}
