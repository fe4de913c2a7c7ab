// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package md

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/redact"
	"github.com/lib/pq/oid"
)

// MDIdKind distinguishes the catalog namespace an MDId refers to.
type MDIdKind uint8

const (
	// MDIdGeneral identifies types, functions, operators and indexes.
	MDIdGeneral MDIdKind = iota
	// MDIdRel identifies relations.
	MDIdRel
)

// MDId identifies a catalog object. MDIds are small comparable values, so
// they are passed and stored by value; two MDIds are equal exactly when ==
// holds.
type MDId struct {
	Kind MDIdKind
	OID  oid.Oid
}

// InvalidMDId is the sentinel id that refers to no object.
var InvalidMDId = MDId{}

// GeneralID returns the MDId of the type, function or index with the given
// object id.
func GeneralID(o oid.Oid) MDId {
	return MDId{Kind: MDIdGeneral, OID: o}
}

// RelID returns the MDId of the relation with the given object id.
func RelID(o oid.Oid) MDId {
	return MDId{Kind: MDIdRel, OID: o}
}

// IsValid returns true if the id refers to a catalog object.
func (id MDId) IsValid() bool {
	return id.OID != oid.Oid(0)
}

// Hash returns a hash of the id, stable across processes.
func (id MDId) Hash() uint64 {
	var buf [5]byte
	buf[0] = byte(id.Kind)
	binary.LittleEndian.PutUint32(buf[1:], uint32(id.OID))
	return xxhash.Sum64(buf[:])
}

// String implements fmt.Stringer. The format mirrors the DXL serialization
// of GPDB ids: "0.<oid>.1.0".
func (id MDId) String() string {
	return fmt.Sprintf("%d.%d.1.0", id.Kind, id.OID)
}

// SafeFormat implements redact.SafeFormatter. Object ids carry no user data.
func (id MDId) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%d.%d.1.0", redact.Safe(id.Kind), redact.Safe(uint32(id.OID)))
}

// CombineHashes mixes two hash values. It is used to build the hash of a
// composite key out of the hashes of its parts.
func CombineHashes(h1, h2 uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], h1)
	binary.LittleEndian.PutUint64(buf[8:], h2)
	return xxhash.Sum64(buf[:])
}
