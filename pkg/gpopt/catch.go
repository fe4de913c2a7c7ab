// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package gpopt holds pieces shared by every layer of the optimizer
// front-end: the panic boundary used by the translator and the operator
// algebra.
package gpopt

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

// CatchOptimizerError converts a value recovered from a panic raised by
// optimizer code into an error. This allows the optimizer to propagate
// assertion failures internally as panics without adding error checks
// everywhere. It must be passed the result of recover(), called directly
// from a deferred function:
//
//	defer func() {
//	  if r := recover(); r != nil {
//	    err = gpopt.CatchOptimizerError(r)
//	  }
//	}()
//
// This is only possible because the translator does not update shared
// state and does not manipulate locks.
func CatchOptimizerError(r interface{}) error {
	if r == nil {
		return nil
	}
	err, ok := r.(error)
	if !ok {
		// Not an error object. For serious internal errors e.g. in the scheduler,
		// bad goroutine state, allocator problem etc, the go runtime throws a
		// string which does not implement error. So in this case we suspect we are
		// not able to recover, and must crash.
		panic(r)
	}
	if errors.HasInterface(err, (*runtime.Error)(nil)) {
		// Convert runtime errors to assertion failures, which include stacks.
		return errors.HandleAsAssertionFailure(err)
	}
	return err
}
