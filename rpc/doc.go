// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - the client facing side of highscored
//
// Score and Node services are registered on one net/rpc server that
// speaks the JSON-RPC codec over TLS connections, and optionally over
// HTTPS POST to /highscore/rpc
package rpc
