// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// dxlt runs the DXL translator on objects of a YAML catalog and prints the
// descriptors it produces.
//
// Exit status is 3 when the translator reports an unsupported feature,
// meaning the host planner would handle the query, and 1 on any other
// error.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
