// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/highscored/counter"
	"github.com/bitmark-inc/highscored/ledger"
	"github.com/bitmark-inc/highscored/rpc/node"
	"github.com/bitmark-inc/highscored/rpc/ratelimit"
	"github.com/bitmark-inc/highscored/rpc/score"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, l ledger.Ledger, limiter *ratelimit.Adjustable) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(score.New(log, limiter, l))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
