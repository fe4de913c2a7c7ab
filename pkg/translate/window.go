// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package translate

import "github.com/gpdb/gpopt/pkg/pgquery"

// WindowSpecTargetEntry returns the first entry of targetList that
// computes e and is referenced by the ORDER BY or PARTITION BY of a window
// clause, or nil.
func WindowSpecTargetEntry(
	e pgquery.Expr, windowClauses []*pgquery.WindowClause, targetList []*pgquery.TargetEntry,
) *pgquery.TargetEntry {
	for _, te := range pgquery.FindMatchingMembersInTargetList(e, targetList) {
		if IsReferencedInWindowSpec(te, windowClauses) {
			return te
		}
	}
	return nil
}

// IsReferencedInWindowSpec returns true if te is an ORDER BY or PARTITION
// BY column of one of the window clauses.
func IsReferencedInWindowSpec(te *pgquery.TargetEntry, windowClauses []*pgquery.WindowClause) bool {
	for _, wc := range windowClauses {
		if IsSortingColumn(te, wc.OrderClause) || IsSortingColumn(te, wc.PartitionClause) {
			return true
		}
	}
	return false
}

// IsSortingColumn returns true if te is referenced by one of the clauses.
func IsSortingColumn(te *pgquery.TargetEntry, clauses []*pgquery.SortGroupClause) bool {
	for _, c := range clauses {
		if te.ResSortGroupRef == c.TLESortGroupRef {
			return true
		}
	}
	return false
}

// GroupingColumnTargetEntry returns the first entry of targetList that
// computes e and is a grouping column, or nil.
func GroupingColumnTargetEntry(
	e pgquery.Expr, groupClause []*pgquery.SortGroupClause, targetList []*pgquery.TargetEntry,
) *pgquery.TargetEntry {
	for _, te := range pgquery.FindMatchingMembersInTargetList(e, targetList) {
		if IsGroupingColumnEntry(te, groupClause) {
			return te
		}
	}
	return nil
}

// IsGroupingColumn returns true if targetList has an entry computing e
// that is a grouping column.
func IsGroupingColumn(
	e pgquery.Expr, groupClause []*pgquery.SortGroupClause, targetList []*pgquery.TargetEntry,
) bool {
	return GroupingColumnTargetEntry(e, groupClause, targetList) != nil
}

// IsGroupingColumnEntry returns true if te is referenced by the GROUP BY
// clause.
func IsGroupingColumnEntry(te *pgquery.TargetEntry, groupClause []*pgquery.SortGroupClause) bool {
	for _, gc := range groupClause {
		if te.ResSortGroupRef == gc.TLESortGroupRef {
			return true
		}
	}
	return false
}
