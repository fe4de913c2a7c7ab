// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package pgquery

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// PermissionChecker verifies that the current user holds the privileges
// that range table entries require.
type PermissionChecker interface {
	CheckRTPermissions(rangeTable []*RangeTblEntry) error
}

// ErrPermissionDenied marks errors returned by ACLChecker.
var ErrPermissionDenied = errors.New("permission denied")

// ACLChecker is a PermissionChecker backed by a static grant table mapping
// relation ids to the permission bits granted to the current user.
type ACLChecker struct {
	Grants map[uint32]uint32
}

var _ PermissionChecker = ACLChecker{}

// CheckRTPermissions is part of the PermissionChecker interface. Entries
// other than relations require no privileges.
func (c ACLChecker) CheckRTPermissions(rangeTable []*RangeTblEntry) error {
	for _, rte := range rangeTable {
		if rte.Kind != RTERelation || rte.RequiredPerms == 0 {
			continue
		}
		granted := c.Grants[uint32(rte.RelID)]
		if missing := rte.RequiredPerms &^ granted; missing != 0 {
			return errors.Mark(
				errors.Newf("permission denied for relation %d", redact.Safe(uint32(rte.RelID))),
				ErrPermissionDenied,
			)
		}
	}
	return nil
}
