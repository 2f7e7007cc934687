// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/highscored/counter"
	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/ledger"
	"github.com/bitmark-inc/highscored/rpc/certificate"
	"github.com/bitmark-inc/highscored/rpc/handler"
	"github.com/bitmark-inc/highscored/rpc/listeners"
	"github.com/bitmark-inc/highscored/rpc/ratelimit"
	"github.com/bitmark-inc/highscored/rpc/server"
)

const (
	tlsName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	limiter   *ratelimit.Adjustable
	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of active client RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, l ledger.Ledger) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if err := checkRate(log, rpcConfiguration.RateLimit, rpcConfiguration.RateBurst); nil != err {
		return err
	}
	globalData.limiter = ratelimit.NewAdjustable(rpcConfiguration.RateLimit, rpcConfiguration.RateBurst)

	tlsConfig, certificateFingerprint, err := certificate.Load(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcServer := server.Create(log, version, &connectionCountRPC, l, globalData.limiter)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		rpcServer,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	started := make([]listeners.Listener, 0, 2)
	ok := false
	defer func() {
		if !ok {
			for _, s := range started {
				_ = s.Close()
			}
		}
	}()

	if err := rpcListener.Serve(); nil != err {
		_ = rpcListener.Close()
		return err
	}
	started = append(started, rpcListener)

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, fingerprint, err := certificate.Load(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

		hdlr := handler.New(log, rpcServer, time.Now(), version, httpsConfiguration.MaximumConnections)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			return err
		}
		if err := httpsListener.Serve(); nil != err {
			_ = httpsListener.Close()
			return err
		}
		started = append(started, httpsListener)
	} else {
		log.Infof("disable: %s", httpsName)
	}

	globalData.listeners = started

	// all data initialised
	ok = true
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Errorf("close listener error: %s", err)
		}
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// SetRateLimit - change the Score request rate while running
func SetRateLimit(limit float64, burst int) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if err := checkRate(globalData.log, limit, burst); nil != err {
		return err
	}

	currentLimit, currentBurst := globalData.limiter.Current()
	if currentLimit == limit && currentBurst == burst {
		return nil
	}

	globalData.limiter.Set(limit, burst)
	globalData.log.Infof("rate limit: %g/s  burst: %d  was: %g/s  burst: %d", limit, burst, currentLimit, currentBurst)
	return nil
}

func checkRate(log *logger.L, limit float64, burst int) error {
	if limit <= 0 || burst < 1 {
		log.Errorf("invalid %s rate limit: %g  burst: %d", tlsName, limit, burst)
		return fault.MissingParameters
	}
	return nil
}
