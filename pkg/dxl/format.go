// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package dxl

import (
	"fmt"
	"strings"
)

// Format renders a DXL tree in the indented style used by optimizer test
// output:
//
//	ScalarProjList
//	 └── ScalarProjElem b:7
//	      └── ScalarConst 0.23.1.0 NULL
func Format(n *Node) string {
	var b strings.Builder
	formatNode(&b, n, "", " ")
	return b.String()
}

func formatNode(b *strings.Builder, n *Node, first, rest string) {
	b.WriteString(first)
	b.WriteString(describe(n.Op))
	b.WriteByte('\n')
	for i, c := range n.Children {
		if i == len(n.Children)-1 {
			formatNode(b, c, rest+"└── ", rest+"     ")
		} else {
			formatNode(b, c, rest+"├── ", rest+"│    ")
		}
	}
}

func describe(op Op) string {
	switch t := op.(type) {
	case *ScalarIdent:
		return fmt.Sprintf("%s %s:%d", t.Operator(), t.ColRef.Name, t.ColRef.ID)
	case *ScalarConstValue:
		return fmt.Sprintf("%s %s", t.Operator(), formatDatum(t.Datum))
	case *ScalarProjElem:
		return fmt.Sprintf("%s %s:%d", t.Operator(), t.Alias, t.ColID)
	case *ScalarAggref:
		return fmt.Sprintf("%s %s kind=%s", t.Operator(), t.FuncID, t.Kind)
	case *ScalarAssertConstraint:
		return fmt.Sprintf("%s %q", t.Operator(), t.ErrorMsg)
	case *LogicalGet:
		return fmt.Sprintf("%s %s %s", t.Operator(), t.Table, formatColumns(t.Table.Columns()))
	case *LogicalTVF:
		return fmt.Sprintf("%s %s [%s] %s", t.Operator(), t.Name, t.FuncID, formatColumns(t.Columns))
	case *Motion:
		if t.DuplicateSensitive {
			return fmt.Sprintf("%s duplicate-sensitive", t.Operator())
		}
		return t.Operator().String()
	}
	return op.Operator().String()
}

func formatColumns(cols []*ColumnDescr) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%d", c.Name, c.ID)
	}
	b.WriteByte(')')
	return b.String()
}

func formatDatum(d Datum) string {
	if d.IsNull() {
		return fmt.Sprintf("%s NULL", d.TypeID())
	}
	switch t := d.(type) {
	case *DatumBool:
		return fmt.Sprintf("%s %t", t.Type, t.Value)
	case *DatumInt2:
		return fmt.Sprintf("%s %d", t.Type, t.Value)
	case *DatumInt4:
		return fmt.Sprintf("%s %d", t.Type, t.Value)
	case *DatumInt8:
		return fmt.Sprintf("%s %d", t.Type, t.Value)
	case *DatumOid:
		return fmt.Sprintf("%s %d", t.Type, t.Value)
	case *DatumGeneric:
		return fmt.Sprintf("%s %x", t.Type, t.Value)
	}
	return fmt.Sprintf("%s ?", d.TypeID())
}
