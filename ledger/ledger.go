// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - personal and global best scores
//
// the global record lives in its own directory, so no player name
// can ever refer to one of its keys
package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/highscored/directory"
	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/storage"
)

// keys of the global record
const (
	BestScoreKey = "best_score"
	HolderKey    = "holder"
)

// GlobalRecord - the best score accepted so far and who first reached it
type GlobalRecord struct {
	Score  int64
	Holder string
}

// Ledger - score operations, each one is a single storage transaction
type Ledger interface {
	Bootstrap() error
	Submit(string, int64) error
	Get(string) (int64, error)
	Best() (GlobalRecord, error)
}

type ledgerImpl struct {
	sync.Mutex

	log     *logger.L
	trx     storage.Transaction
	globals directory.Directory
	players directory.Directory
}

// New - a ledger keeping the global record and the player records in
// separate pools
func New(log *logger.L, trx storage.Transaction, globals storage.Handle, players storage.Handle) Ledger {
	return &ledgerImpl{
		log:     log,
		trx:     trx,
		globals: directory.New(log, trx, globals),
		players: directory.New(log, trx, players),
	}
}

// Bootstrap - create any missing global record keys
//
// safe to call on every start
func (l *ledgerImpl) Bootstrap() error {
	l.Lock()
	defer l.Unlock()

	initial := []struct {
		key   string
		value directory.Value
	}{
		{BestScoreKey, directory.IntegerValue(0)},
		{HolderKey, directory.StringValue("")},
	}

	if err := l.trx.Begin(); nil != err {
		l.log.Errorf("bootstrap begin error: %s", err)
		return err
	}

	for _, item := range initial {
		_, err := l.globals.Resolve(item.key)
		if nil == err {
			continue
		}
		if fault.KeyNotFound != err {
			l.trx.Abort()
			return err
		}

		if _, err := l.globals.Bind(item.key, item.value); nil != err {
			l.trx.Abort()
			return err
		}
		l.log.Infof("bootstrap: %s = %s", item.key, item.value)
	}

	if err := l.trx.Commit(); nil != err {
		l.log.Errorf("bootstrap commit error: %s", err)
		return fault.WriteError
	}
	return nil
}

// Submit - offer a score for a player
//
// the player record is created on first submission; the player and
// global bests only change when the value is strictly greater, so the
// first player to reach a score keeps the global record on a tie
func (l *ledgerImpl) Submit(name string, value int64) error {
	if "" == name {
		return fault.InvalidName
	}

	l.Lock()
	defer l.Unlock()

	if err := l.trx.Begin(); nil != err {
		l.log.Errorf("submit begin error: %s", err)
		return err
	}

	if err := l.submit(name, value); nil != err {
		l.log.Warnf("submit name: %q  value: %d  error: %s", name, value, err)
		l.trx.Abort()
		return err
	}

	if err := l.trx.Commit(); nil != err {
		l.log.Errorf("submit name: %q  value: %d  commit error: %s", name, value, err)
		return fault.WriteError
	}
	return nil
}

// stage all updates for one submission in the open transaction
func (l *ledgerImpl) submit(name string, value int64) error {
	bestSlot, err := l.globals.Resolve(BestScoreKey)
	if nil != err {
		return err
	}
	best, err := readInteger(l.globals, bestSlot)
	if nil != err {
		return err
	}

	if value > best {
		holderSlot, err := l.globals.Resolve(HolderKey)
		if nil != err {
			return err
		}
		if err := l.globals.Write(bestSlot, directory.IntegerValue(value)); nil != err {
			return err
		}
		if err := l.globals.Write(holderSlot, directory.StringValue(name)); nil != err {
			return err
		}
		l.log.Infof("new best score: %d  holder: %q  previous: %d", value, name, best)
	}

	playerSlot, err := l.players.Resolve(name)
	if fault.KeyNotFound == err {
		_, err = l.players.Bind(name, directory.IntegerValue(value))
		return err
	}
	if nil != err {
		return err
	}

	score, err := readInteger(l.players, playerSlot)
	if nil != err {
		return err
	}
	if value > score {
		return l.players.Write(playerSlot, directory.IntegerValue(value))
	}
	return nil
}

// Get - the best score a player has submitted
func (l *ledgerImpl) Get(name string) (int64, error) {
	if "" == name {
		return 0, fault.InvalidName
	}

	l.Lock()
	defer l.Unlock()

	slot, err := l.players.Resolve(name)
	if fault.KeyNotFound == err {
		return 0, fault.PlayerNotFound
	}
	if nil != err {
		return 0, err
	}
	return readInteger(l.players, slot)
}

// Best - the current global record
func (l *ledgerImpl) Best() (GlobalRecord, error) {
	l.Lock()
	defer l.Unlock()

	bestSlot, err := l.globals.Resolve(BestScoreKey)
	if nil != err {
		return GlobalRecord{}, err
	}
	holderSlot, err := l.globals.Resolve(HolderKey)
	if nil != err {
		return GlobalRecord{}, err
	}

	score, err := readInteger(l.globals, bestSlot)
	if nil != err {
		return GlobalRecord{}, err
	}

	v, err := l.globals.Read(holderSlot)
	if nil != err {
		return GlobalRecord{}, err
	}
	holder, ok := v.Text()
	if !ok {
		l.log.Errorf("global key: %q  holds: %s  expected a string", HolderKey, v)
		return GlobalRecord{}, fault.ReadError
	}

	return GlobalRecord{
		Score:  score,
		Holder: holder,
	}, nil
}

func readInteger(d directory.Directory, slot directory.Slot) (int64, error) {
	v, err := d.Read(slot)
	if nil != err {
		return 0, err
	}
	i, ok := v.Integer()
	if !ok {
		return 0, fault.ReadError
	}
	return i, nil
}
