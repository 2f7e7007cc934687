// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/highscored/directory"
	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/fixtures"
	"github.com/bitmark-inc/highscored/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	database := fixtures.TempDatabase("directory")
	if err := storage.Initialise(database, storage.ReadWrite); nil != err {
		panic(err)
	}

	result := m.Run()

	storage.Finalise()
	os.RemoveAll(database)
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func setupTestDirectory(t *testing.T) (directory.Directory, storage.Transaction) {
	trx := storage.DBTransaction()
	if err := trx.Begin(); nil != err {
		t.Fatalf("begin with error: %s", err)
	}
	return directory.New(logger.New(fixtures.LogCategory), trx, storage.Pool.Players), trx
}

func TestResolveUnbound(t *testing.T) {
	d, trx := setupTestDirectory(t)
	defer trx.Abort()

	_, err := d.Resolve("never-bound")
	assert.Equal(t, fault.KeyNotFound, err, "unbound key resolved")
}

func TestBindThenResolve(t *testing.T) {
	d, trx := setupTestDirectory(t)
	defer trx.Abort()

	bound, err := d.Bind("alice", directory.IntegerValue(10))
	assert.Nil(t, err, "wrong Bind")
	assert.Equal(t, "alice", bound.Key(), "wrong slot key")

	resolved, err := d.Resolve("alice")
	assert.Nil(t, err, "bound key not resolved in same transaction")
	assert.Equal(t, bound, resolved, "resolve returned a different slot")

	again, _ := d.Resolve("alice")
	assert.Equal(t, resolved, again, "resolve is not stable")

	v, err := d.Read(resolved)
	assert.Nil(t, err, "wrong Read")
	score, ok := v.Integer()
	assert.True(t, ok, "not an integer")
	assert.Equal(t, int64(10), score, "wrong initial value")
}

func TestBindTwice(t *testing.T) {
	d, trx := setupTestDirectory(t)

	_, err := d.Bind("bound-twice", directory.IntegerValue(1))
	assert.Nil(t, err, "first Bind")
	assert.Nil(t, trx.Commit(), "commit")

	d, trx = setupTestDirectory(t)
	defer trx.Abort()

	_, err = d.Bind("bound-twice", directory.IntegerValue(2))
	assert.Equal(t, fault.AlreadyBound, err, "second Bind")

	slot, _ := d.Resolve("bound-twice")
	v, _ := d.Read(slot)
	score, _ := v.Integer()
	assert.Equal(t, int64(1), score, "second Bind changed the value")
}

func TestWrite(t *testing.T) {
	d, trx := setupTestDirectory(t)

	slot, _ := d.Bind("writer", directory.IntegerValue(3))
	err := d.Write(slot, directory.IntegerValue(30))
	assert.Nil(t, err, "wrong Write")

	v, _ := d.Read(slot)
	score, _ := v.Integer()
	assert.Equal(t, int64(30), score, "write not visible in same transaction")

	assert.Nil(t, trx.Commit(), "commit")

	d, trx = setupTestDirectory(t)
	defer trx.Abort()

	slot, err = d.Resolve("writer")
	assert.Nil(t, err, "committed key not resolved")
	v, _ = d.Read(slot)
	score, _ = v.Integer()
	assert.Equal(t, int64(30), score, "committed write lost")
}

func TestWriteChangingKind(t *testing.T) {
	d, trx := setupTestDirectory(t)
	defer trx.Abort()

	slot, _ := d.Bind("typed", directory.IntegerValue(5))
	err := d.Write(slot, directory.StringValue("five"))
	assert.Equal(t, fault.WriteError, err, "kind change accepted")

	v, _ := d.Read(slot)
	score, ok := v.Integer()
	assert.True(t, ok, "kind changed")
	assert.Equal(t, int64(5), score, "value changed")
}

func TestAbortDiscardsBind(t *testing.T) {
	d, trx := setupTestDirectory(t)

	_, err := d.Bind("discarded", directory.StringValue("x"))
	assert.Nil(t, err, "wrong Bind")
	trx.Abort()

	d, trx = setupTestDirectory(t)
	defer trx.Abort()

	_, err = d.Resolve("discarded")
	assert.Equal(t, fault.KeyNotFound, err, "aborted bind persisted")
}

func TestWriteOutsideTransaction(t *testing.T) {
	d, trx := setupTestDirectory(t)
	slot, _ := d.Bind("outside", directory.IntegerValue(1))
	assert.Nil(t, trx.Commit(), "commit")

	err := d.Write(slot, directory.IntegerValue(2))
	assert.Equal(t, fault.WriteError, err, "write without transaction")

	_, err = d.Bind("outside-new", directory.IntegerValue(1))
	assert.Equal(t, fault.WriteError, err, "bind without transaction")
}

func TestEmptyKey(t *testing.T) {
	d, trx := setupTestDirectory(t)
	defer trx.Abort()

	_, err := d.Resolve("")
	assert.Equal(t, fault.InvalidKey, err, "empty key resolved")

	_, err = d.Bind("", directory.IntegerValue(0))
	assert.Equal(t, fault.InvalidKey, err, "empty key bound")

	_, err = d.Read(directory.Slot{})
	assert.Equal(t, fault.InvalidKey, err, "zero slot read")

	err = d.Write(directory.Slot{}, directory.IntegerValue(0))
	assert.Equal(t, fault.InvalidKey, err, "zero slot written")
}

func TestPoolsAreSeparate(t *testing.T) {
	trx := storage.DBTransaction()
	if err := trx.Begin(); nil != err {
		t.Fatalf("begin with error: %s", err)
	}
	defer trx.Abort()

	log := logger.New(fixtures.LogCategory)
	globals := directory.New(log, trx, storage.Pool.Globals)
	players := directory.New(log, trx, storage.Pool.Players)

	_, err := globals.Bind("shared-name", directory.IntegerValue(1))
	assert.Nil(t, err, "bind globals")

	_, err = players.Resolve("shared-name")
	assert.Equal(t, fault.KeyNotFound, err, "globals key visible to players")

	_, err = players.Bind("shared-name", directory.IntegerValue(2))
	assert.Nil(t, err, "players bind collided with globals")
}

func TestWriteUnreadableRecord(t *testing.T) {
	trx := storage.DBTransaction()
	if err := trx.Begin(); nil != err {
		t.Fatalf("begin with error: %s", err)
	}
	defer trx.Abort()

	log := logger.New(fixtures.LogCategory)
	globals := directory.New(log, trx, storage.Pool.Globals)
	players := directory.New(log, trx, storage.Pool.Players)

	// bound in another pool so players holds no record for it
	slot, err := globals.Bind("globals-only", directory.IntegerValue(1))
	assert.Nil(t, err, "bind globals")

	err = players.Write(slot, directory.IntegerValue(2))
	assert.Equal(t, fault.ReadError, err, "missing record not reported as read error")

	err = trx.Put(storage.Pool.Players, []byte("corrupt"), []byte{0xee})
	assert.Nil(t, err, "put corrupt record")

	corrupt, err := players.Resolve("corrupt")
	assert.Nil(t, err, "corrupt key not resolved")

	err = players.Write(corrupt, directory.IntegerValue(3))
	assert.Equal(t, fault.ReadError, err, "corrupt record not reported as read error")
}
