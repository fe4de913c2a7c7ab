// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gpdb/gpopt/pkg/gpopt/gperr"
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/gpdb/gpopt/pkg/pgquery"
)

// RelHasConstraints returns true if the relation has a CHECK constraint or
// a NOT NULL user column.
func RelHasConstraints(rel *md.Relation) bool {
	if len(rel.CheckConstraints) > 0 {
		return true
	}
	for i := range rel.Columns {
		if col := &rel.Columns[i]; !col.IsSystemColumn() && !col.Nullable {
			return true
		}
	}
	return false
}

// NumNonSystemColumns returns the number of user columns of the relation,
// dropped ones included.
func NumNonSystemColumns(rel *md.Relation) int {
	n := 0
	for i := range rel.Columns {
		if !rel.Columns[i].IsSystemColumn() {
			n++
		}
	}
	return n
}

// IsCompositeConst returns true if the call was folded to a constant of a
// composite type.
func IsCompositeConst(acc md.Accessor, rtfunc *pgquery.RangeTblFunction) (bool, error) {
	c, ok := rtfunc.FuncExpr.(*pgquery.Const)
	if !ok {
		return false, nil
	}
	typ, err := acc.RetrieveType(md.GeneralID(c.ConstType))
	if err != nil {
		return false, err
	}
	return typ.IsComposite, nil
}

// RelContainsForeignPartitions returns true if a partition of rel is a
// foreign table.
func RelContainsForeignPartitions(acc md.Accessor, rel *md.Relation) (bool, error) {
	for _, id := range rel.ChildPartitions {
		part, err := acc.RetrieveRel(id)
		if err != nil {
			return false, err
		}
		if part.Storage == md.StorageForeign {
			return true, nil
		}
	}
	return false, nil
}

// HasSubquery returns true if e contains a sub-select.
func HasSubquery(e pgquery.Expr) bool {
	return pgquery.ContainsSubLink(e)
}

// CheckRTEPermissions verifies the privileges required by a range table.
func CheckRTEPermissions(checker pgquery.PermissionChecker, rangeTable []*pgquery.RangeTblEntry) error {
	return checker.CheckRTPermissions(rangeTable)
}

// ParseInt64 parses a base 10 integer attribute value.
func ParseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "invalid integer attribute %q", s), gperr.ErrUnrecognizedValue)
	}
	return v, nil
}

// ParseInt32 parses a base 10 integer attribute value that fits 32 bits.
func ParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "invalid integer attribute %q", s), gperr.ErrUnrecognizedValue)
	}
	return int32(v), nil
}
