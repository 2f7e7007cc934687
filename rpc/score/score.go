// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/ledger"
	"github.com/bitmark-inc/highscored/rpc/ratelimit"
)

// Score - type for RPC calls
type Score struct {
	Log     *logger.L
	Limiter *ratelimit.Adjustable
	Ledger  ledger.Ledger
}

// New - create the score service
func New(log *logger.L, limiter *ratelimit.Adjustable, l ledger.Ledger) *Score {
	return &Score{
		Log:     log,
		Limiter: limiter,
		Ledger:  l,
	}
}

// ---

// SubmitArguments - a score offered by a player
type SubmitArguments struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// SubmitReply - empty on success
type SubmitReply struct{}

// Submit - record a score, updating the personal and global bests
func (s *Score) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := s.Limiter.Limit(); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Name {
		return fault.InvalidName
	}

	s.Log.Infof("Score.Submit: name: %q  value: %d", arguments.Name, arguments.Value)

	return s.Ledger.Submit(arguments.Name, arguments.Value)
}

// ---

// GetArguments - the player to query
type GetArguments struct {
	Name string `json:"name"`
}

// GetReply - the best score of the player
type GetReply struct {
	Name  string `json:"name"`
	Score int64  `json:"score"`
}

// Get - best score submitted by a player
func (s *Score) Get(arguments *GetArguments, reply *GetReply) error {
	if err := s.Limiter.Limit(); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Name {
		return fault.InvalidName
	}

	s.Log.Debugf("Score.Get: name: %q", arguments.Name)

	score, err := s.Ledger.Get(arguments.Name)
	if nil != err {
		return err
	}

	reply.Name = arguments.Name
	reply.Score = score
	return nil
}

// ---

// BestArguments - empty arguments for best request
type BestArguments struct{}

// BestReply - the global record
type BestReply struct {
	Score  int64  `json:"score"`
	Holder string `json:"holder"`
}

// Best - highest score accepted and the first player to reach it
func (s *Score) Best(_ *BestArguments, reply *BestReply) error {
	if err := s.Limiter.Limit(); nil != err {
		return err
	}

	record, err := s.Ledger.Best()
	if nil != err {
		return err
	}

	reply.Score = record.Score
	reply.Holder = record.Holder
	return nil
}
