// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/highscored/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
		{fault.AlreadyBound, true, false, false, false},
		{fault.KeyNotFound, false, false, true, false},
		{fault.PlayerNotFound, false, false, true, false},
		{fault.ReadError, false, false, false, true},
		{fault.WriteError, false, false, false, true},
		{fault.InvalidName, false, true, false, false},
		{fault.InvalidPortNumber, false, true, false, false},
		{fault.CertificateFileExists, true, false, false, false},
		{fault.KeyFileExists, true, false, false, false},
		{fault.AlreadyInitialised, true, false, false, false},
		{fault.NotInitialised, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// distinct instances must not compare equal even within a class
func TestIdentity(t *testing.T) {
	if error(fault.KeyNotFound) == error(fault.PlayerNotFound) {
		t.Error("key not found must differ from player not found")
	}
	if fault.ReadError.Error() == fault.WriteError.Error() {
		t.Error("read and write errors must have distinct text")
	}
}
