// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - count connections that are currently being served
package counter

import (
	"sync/atomic"
)

// Counter - number of active connections
type Counter uint64

// Admit - count one more connection if that stays within maximum
//
// returns false and leaves the count unchanged when the limit is reached
func (c *Counter) Admit(maximum uint64) bool {
	if atomic.AddUint64((*uint64)(c), 1) <= maximum {
		return true
	}
	atomic.AddUint64((*uint64)(c), ^uint64(0))
	return false
}

// Release - a connection admitted earlier has finished
func (c *Counter) Release() {
	atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current number of connections
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
