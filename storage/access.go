// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/highscored/fault"
)

// Access - batched access to a single database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	DumpTx() []byte
	Get([]byte) ([]byte, bool, error)
	Has([]byte) (bool, error)
	InUse() bool
	Put([]byte, []byte) error
}

// AccessData - the batch, its cache overlay and the database it is written to
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

// commits must reach stable storage before they are reported
var syncWrite = &ldb_opt.WriteOptions{
	Sync: true,
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - mark the batch as in use
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyActive
	}

	d.inUse = true
	return nil
}

// Put - stage a key/value pair
func (d *AccessData) Put(key []byte, value []byte) error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotActive
	}

	d.cache.Set(string(key), value)
	d.batch.Put(key, value)
	return nil
}

// Commit - write the whole batch to the database in one operation
//
// the batch stays in use until Abort is called
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotActive
	}

	return d.db.Write(d.batch, syncWrite)
}

// DumpTx - the raw contents of the current batch
func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

// Get - read a value, staged values take precedence over the database
//
// second parameter is false if the key was not found
func (d *AccessData) Get(key []byte) ([]byte, bool, error) {
	if val, found := d.cache.Get(string(key)); found {
		return val, true, nil
	}

	val, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	}
	if nil != err {
		return nil, false, err
	}
	return val, true, nil
}

// Has - check if a key is staged or stored
func (d *AccessData) Has(key []byte) (bool, error) {
	if _, found := d.cache.Get(string(key)); found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// InUse - true between Begin and Abort
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()

	return d.inUse
}

// Abort - discard anything staged and release the batch
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
