// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket limiting of RPC requests
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/highscored/fault"
)

// longest a request will be held back before it is refused
const maximumDelay = 5 * time.Second

// Limit - wait for a token for a single request
//
// a request that would wait too long is refused and its
// reservation returned to the bucket
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	delay := r.Delay()
	if delay > maximumDelay {
		r.Cancel()
		return fault.RateLimiting
	}
	time.Sleep(delay)
	return nil
}

// Adjustable - a limiter whose rate and burst can change while in use
type Adjustable struct {
	sync.RWMutex
	limiter *rate.Limiter
}

// NewAdjustable - create a limiter of limit requests/second
func NewAdjustable(limit float64, burst int) *Adjustable {
	return &Adjustable{
		limiter: rate.NewLimiter(rate.Limit(limit), burst),
	}
}

// Limit - as the package Limit on the current limiter
func (a *Adjustable) Limit() error {
	a.RLock()
	limiter := a.limiter
	a.RUnlock()

	return Limit(limiter)
}

// Set - replace the rate and burst
//
// the new bucket starts full
func (a *Adjustable) Set(limit float64, burst int) {
	a.Lock()
	a.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	a.Unlock()
}

// Current - the rate and burst in use
func (a *Adjustable) Current() (float64, int) {
	a.RLock()
	defer a.RUnlock()

	return float64(a.limiter.Limit()), a.limiter.Burst()
}
