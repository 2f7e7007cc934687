// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/storage"
)

// Slot - reference to a bound record
//
// only valid for the directory that produced it
type Slot struct {
	key string
}

// Key - the name the slot is bound to
func (s Slot) Key() string {
	return s.key
}

// Directory - the operations on a set of named slots
type Directory interface {
	Resolve(string) (Slot, error)
	Bind(string, Value) (Slot, error)
	Read(Slot) (Value, error)
	Write(Slot, Value) error
}

type directoryImpl struct {
	log  *logger.L
	trx  storage.Transaction
	pool storage.Handle
}

// New - a directory over one pool
func New(log *logger.L, trx storage.Transaction, pool storage.Handle) Directory {
	return &directoryImpl{
		log:  log,
		trx:  trx,
		pool: pool,
	}
}

// Resolve - find the slot bound to a key
func (d *directoryImpl) Resolve(key string) (Slot, error) {
	if "" == key {
		return Slot{}, fault.InvalidKey
	}

	found, err := d.trx.Has(d.pool, []byte(key))
	if nil != err {
		d.log.Errorf("resolve key: %q  error: %s", key, err)
		return Slot{}, fault.ReadError
	}
	if !found {
		return Slot{}, fault.KeyNotFound
	}
	return Slot{key: key}, nil
}

// Bind - create a slot for a new key holding an initial value
func (d *directoryImpl) Bind(key string, initial Value) (Slot, error) {
	if "" == key {
		return Slot{}, fault.InvalidKey
	}

	found, err := d.trx.Has(d.pool, []byte(key))
	if nil != err {
		d.log.Errorf("bind key: %q  error: %s", key, err)
		return Slot{}, fault.ReadError
	}
	if found {
		return Slot{}, fault.AlreadyBound
	}

	record, err := initial.pack()
	if nil != err {
		d.log.Errorf("bind key: %q  error: %s", key, err)
		return Slot{}, fault.WriteError
	}

	err = d.trx.Put(d.pool, []byte(key), record)
	if nil != err {
		d.log.Errorf("bind key: %q  error: %s", key, err)
		return Slot{}, fault.WriteError
	}

	d.log.Debugf("bind key: %q  value: %s", key, initial)
	return Slot{key: key}, nil
}

// Read - the current value of a slot
func (d *directoryImpl) Read(slot Slot) (Value, error) {
	if "" == slot.key {
		return Value{}, fault.InvalidKey
	}

	record, found, err := d.trx.Get(d.pool, []byte(slot.key))
	if nil != err {
		d.log.Errorf("read key: %q  error: %s", slot.key, err)
		return Value{}, fault.ReadError
	}
	if !found {
		d.log.Errorf("read key: %q  error: bound slot has no record", slot.key)
		return Value{}, fault.ReadError
	}

	value, err := unpack(record)
	if nil != err {
		d.log.Errorf("read key: %q  error: %s", slot.key, err)
		return Value{}, fault.ReadError
	}
	return value, nil
}

// Write - replace the value of a slot
//
// the new value must have the same kind as the current one
func (d *directoryImpl) Write(slot Slot, value Value) error {
	if "" == slot.key {
		return fault.InvalidKey
	}

	current, err := d.Read(slot)
	if nil != err {
		return err
	}
	if current.Kind() != value.Kind() {
		d.log.Errorf("write key: %q  value: %s  error: kind differs from current: %s", slot.key, value, current)
		return fault.WriteError
	}

	record, err := value.pack()
	if nil != err {
		d.log.Errorf("write key: %q  error: %s", slot.key, err)
		return fault.WriteError
	}

	err = d.trx.Put(d.pool, []byte(slot.key), record)
	if nil != err {
		d.log.Errorf("write key: %q  error: %s", slot.key, err)
		return fault.WriteError
	}

	d.log.Debugf("write key: %q  value: %s", slot.key, value)
	return nil
}
