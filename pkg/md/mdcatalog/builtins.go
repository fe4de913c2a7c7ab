// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package mdcatalog

import (
	"github.com/gpdb/gpopt/pkg/md"
	"github.com/lib/pq/oid"
)

// Object ids of builtin functions referenced by the translator and tests.
const (
	FuncNextval        oid.Oid = 1574
	FuncCurrval        oid.Oid = 1575
	FuncSetval         oid.Oid = 1576
	FuncRandom         oid.Oid = 1598
	FuncGenerateSeries oid.Oid = 1067
	FuncUnnest         oid.Oid = 2331
	FuncLower          oid.Oid = 870
	FuncInt4Eq         oid.Oid = 65
)

func scalarType(o oid.Oid, name string, info md.TypeInfo, length int32, arr oid.Oid) md.Type {
	t := md.Type{ID: md.GeneralID(o), Name: name, Info: info, Length: length}
	if arr != 0 {
		t.ArrayTypeID = md.GeneralID(arr)
	}
	return t
}

func arrayType(o oid.Oid, name string, elem oid.Oid) md.Type {
	return md.Type{ID: md.GeneralID(o), Name: name, ElemTypeID: md.GeneralID(elem), Length: -1}
}

var builtinTypes = []md.Type{
	scalarType(oid.T_bool, "bool", md.TypeBool, 1, oid.T__bool),
	scalarType(oid.T_int2, "int2", md.TypeInt2, 2, oid.T__int2),
	scalarType(oid.T_int4, "int4", md.TypeInt4, 4, oid.T__int4),
	scalarType(oid.T_int8, "int8", md.TypeInt8, 8, oid.T__int8),
	scalarType(oid.T_oid, "oid", md.TypeOid, 4, oid.T__oid),
	scalarType(oid.T_float8, "float8", md.TypeGeneric, 8, oid.T__float8),
	scalarType(oid.T_text, "text", md.TypeGeneric, -1, oid.T__text),
	scalarType(oid.T_unknown, "unknown", md.TypeGeneric, -2, 0),
	{ID: md.GeneralID(oid.T_record), Name: "record", IsComposite: true, Length: -1, ArrayTypeID: md.GeneralID(oid.T__record)},
	scalarType(oid.T_anyelement, "anyelement", md.TypeGeneric, 4, 0),
	scalarType(oid.T_anyarray, "anyarray", md.TypeGeneric, -1, 0),
	scalarType(oid.T_anynonarray, "anynonarray", md.TypeGeneric, 4, 0),
	scalarType(oid.T_anyenum, "anyenum", md.TypeGeneric, 4, 0),
	scalarType(oid.T_anyrange, "anyrange", md.TypeGeneric, -1, 0),
	arrayType(oid.T__bool, "_bool", oid.T_bool),
	arrayType(oid.T__int2, "_int2", oid.T_int2),
	arrayType(oid.T__int4, "_int4", oid.T_int4),
	arrayType(oid.T__int8, "_int8", oid.T_int8),
	arrayType(oid.T__oid, "_oid", oid.T_oid),
	arrayType(oid.T__float8, "_float8", oid.T_float8),
	arrayType(oid.T__text, "_text", oid.T_text),
	arrayType(oid.T__record, "_record", oid.T_record),
}

func ids(oids ...oid.Oid) []md.MDId {
	res := make([]md.MDId, len(oids))
	for i, o := range oids {
		res[i] = md.GeneralID(o)
	}
	return res
}

var builtinFuncs = []md.Function{
	{
		ID: md.GeneralID(FuncNextval), Name: "nextval", ReturnTypeID: md.GeneralID(oid.T_int8),
		Stability: md.FuncVolatile, Strict: true, ArgTypes: ids(oid.T_oid),
	},
	{
		ID: md.GeneralID(FuncCurrval), Name: "currval", ReturnTypeID: md.GeneralID(oid.T_int8),
		Stability: md.FuncVolatile, Strict: true, ArgTypes: ids(oid.T_oid),
	},
	{
		ID: md.GeneralID(FuncSetval), Name: "setval", ReturnTypeID: md.GeneralID(oid.T_int8),
		Stability: md.FuncVolatile, Strict: true, ArgTypes: ids(oid.T_oid, oid.T_int8),
	},
	{
		ID: md.GeneralID(FuncRandom), Name: "random", ReturnTypeID: md.GeneralID(oid.T_float8),
		Stability: md.FuncVolatile, Strict: true,
	},
	{
		ID: md.GeneralID(FuncGenerateSeries), Name: "generate_series", ReturnTypeID: md.GeneralID(oid.T_int4),
		ReturnsSet: true, Stability: md.FuncImmutable, Strict: true, ArgTypes: ids(oid.T_int4, oid.T_int4),
	},
	{
		ID: md.GeneralID(FuncUnnest), Name: "unnest", ReturnTypeID: md.GeneralID(oid.T_anyelement),
		ReturnsSet: true, Stability: md.FuncImmutable, Strict: true, ArgTypes: ids(oid.T_anyarray),
	},
	{
		ID: md.GeneralID(FuncLower), Name: "lower", ReturnTypeID: md.GeneralID(oid.T_text),
		Stability: md.FuncImmutable, Strict: true, ArgTypes: ids(oid.T_text),
	},
	{
		ID: md.GeneralID(FuncInt4Eq), Name: "int4eq", ReturnTypeID: md.GeneralID(oid.T_bool),
		Stability: md.FuncImmutable, Strict: true, ArgTypes: ids(oid.T_int4, oid.T_int4),
	},
}
