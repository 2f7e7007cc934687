// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/highscored/fault"
)

// Transaction - all-or-nothing update of one or more pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Get(Handle, []byte) ([]byte, bool, error)
	Has(Handle, []byte) (bool, error)
	InUse() bool
	Put(Handle, []byte, []byte) error
}

// TransactionImpl - the transaction over the database batches
type TransactionImpl struct {
	sync.Mutex
	inUse      bool
	dataAccess []Access
}

func newTransaction(dataAccess []Access) Transaction {
	return &TransactionImpl{
		inUse:      false,
		dataAccess: dataAccess,
	}
}

// Begin - start a new transaction, only one may be active
func (t *TransactionImpl) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyActive
	}

	for i, da := range t.dataAccess {
		if err := da.Begin(); nil != err {
			for _, started := range t.dataAccess[:i] {
				started.Abort()
			}
			return err
		}
	}

	t.inUse = true
	return nil
}

// Put - stage a key/value pair in a pool
func (t *TransactionImpl) Put(h Handle, key []byte, value []byte) error {
	if !t.InUse() {
		return fault.TransactionNotActive
	}
	return h.put(key, value)
}

// Get - read a value, including anything staged by this transaction
func (t *TransactionImpl) Get(h Handle, key []byte) ([]byte, bool, error) {
	return h.Get(key)
}

// Has - check if a key exists, including anything staged by this transaction
func (t *TransactionImpl) Has(h Handle, key []byte) (bool, error) {
	return h.Has(key)
}

// InUse - true between Begin and Commit/Abort
func (t *TransactionImpl) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.inUse
}

// Commit - write all staged data and end the transaction
//
// on failure nothing staged is kept and the transaction is ended
func (t *TransactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotActive
	}

	var err error
	for _, da := range t.dataAccess {
		if err = da.Commit(); nil != err {
			break
		}
	}

	t.release()
	return err
}

// Abort - discard all staged data and end the transaction
func (t *TransactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()

	t.release()
}

func (t *TransactionImpl) release() {
	for _, da := range t.dataAccess {
		da.Abort()
	}
	t.inUse = false
}
