// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/highscored/fault"
)

// Handle - the access methods of a single pool
//
// writes are only possible through a Transaction
type Handle interface {
	Get([]byte) ([]byte, bool, error)
	Has([]byte) (bool, error)
	put([]byte, []byte) error
}

// PoolHandle - handle for a storage pool
type PoolHandle struct {
	prefix     byte
	dataAccess Access
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// stage a key/value bytes pair in the current batch
func (p *PoolHandle) put(key []byte, value []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p.dataAccess {
		return fault.DatabaseIsNotSet
	}
	return p.dataAccess.Put(p.prefixKey(key), value)
}

// Get - read a value for a given key
//
// second parameter is false if record was not found
func (p *PoolHandle) Get(key []byte) ([]byte, bool, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p.dataAccess {
		return nil, false, fault.DatabaseIsNotSet
	}
	return p.dataAccess.Get(p.prefixKey(key))
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == p.dataAccess {
		return false, fault.DatabaseIsNotSet
	}
	return p.dataAccess.Has(p.prefixKey(key))
}
