// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/fixtures"
	"github.com/bitmark-inc/highscored/ledger"
	"github.com/bitmark-inc/highscored/rpc/mocks"
	"github.com/bitmark-inc/highscored/rpc/ratelimit"
	"github.com/bitmark-inc/highscored/rpc/score"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func setupTestScore(t *testing.T) (*score.Score, *mocks.MockLedger, *gomock.Controller) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctl)

	s := score.New(
		logger.New(fixtures.LogCategory),
		ratelimit.NewAdjustable(1000, 100),
		l,
	)
	return s, l, ctl
}

func TestScoreSubmit(t *testing.T) {
	s, l, ctl := setupTestScore(t)
	defer ctl.Finish()

	l.EXPECT().Submit("alice", int64(10)).Return(nil).Times(1)

	var reply score.SubmitReply
	err := s.Submit(&score.SubmitArguments{Name: "alice", Value: 10}, &reply)
	assert.Nil(t, err, "wrong Submit")
}

func TestScoreSubmitError(t *testing.T) {
	s, l, ctl := setupTestScore(t)
	defer ctl.Finish()

	l.EXPECT().Submit("alice", int64(10)).Return(fault.KeyNotFound).Times(1)

	var reply score.SubmitReply
	err := s.Submit(&score.SubmitArguments{Name: "alice", Value: 10}, &reply)
	assert.Equal(t, fault.KeyNotFound, err, "wrong error")
}

func TestScoreSubmitEmptyName(t *testing.T) {
	s, _, ctl := setupTestScore(t)
	defer ctl.Finish()

	var reply score.SubmitReply
	err := s.Submit(&score.SubmitArguments{Value: 10}, &reply)
	assert.Equal(t, fault.InvalidName, err, "empty name accepted")
}

func TestScoreGet(t *testing.T) {
	s, l, ctl := setupTestScore(t)
	defer ctl.Finish()

	l.EXPECT().Get("alice").Return(int64(10), nil).Times(1)

	var reply score.GetReply
	err := s.Get(&score.GetArguments{Name: "alice"}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, score.GetReply{Name: "alice", Score: 10}, reply, "wrong reply")
}

func TestScoreGetUnknownPlayer(t *testing.T) {
	s, l, ctl := setupTestScore(t)
	defer ctl.Finish()

	l.EXPECT().Get("carol").Return(int64(0), fault.PlayerNotFound).Times(1)

	var reply score.GetReply
	err := s.Get(&score.GetArguments{Name: "carol"}, &reply)
	assert.Equal(t, fault.PlayerNotFound, err, "wrong error")
	assert.Equal(t, score.GetReply{}, reply, "reply set on error")
}

func TestScoreBest(t *testing.T) {
	s, l, ctl := setupTestScore(t)
	defer ctl.Finish()

	l.EXPECT().Best().Return(ledger.GlobalRecord{Score: 15, Holder: "bob"}, nil).Times(1)

	var reply score.BestReply
	err := s.Best(&score.BestArguments{}, &reply)
	assert.Nil(t, err, "wrong Best")
	assert.Equal(t, score.BestReply{Score: 15, Holder: "bob"}, reply, "wrong reply")
}

func TestScoreRateLimiting(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	s := score.New(
		logger.New(fixtures.LogCategory),
		ratelimit.NewAdjustable(0.01, 1),
		l,
	)

	l.EXPECT().Get("alice").Return(int64(1), nil).Times(1)

	var reply score.GetReply
	assert.Nil(t, s.Get(&score.GetArguments{Name: "alice"}, &reply), "first request")

	err := s.Get(&score.GetArguments{Name: "alice"}, &reply)
	assert.Equal(t, fault.RateLimiting, err, "second request not limited")
}
