// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/highscored/counter"
	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/util"
)

const (
	logName = "client_rpc"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	RateLimit          float64  `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst          int      `gluamapper:"rate_burst" json:"rate_burst"`
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	networks       []string
	addresses      []string
	listeners      []net.Listener

	// accept loops and connection goroutines
	active sync.WaitGroup

	connLock sync.Mutex
	closing  bool
	conns    map[net.Conn]struct{}
}

// NewRPC - validate the configuration and prepare a JSON-RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		conns:          make(map[net.Conn]struct{}),
	}

	// validate all listen addresses
	for _, listen := range configuration.Listen {
		network, address, err := util.ListenAddress(listen)
		if nil != err {
			log.Errorf("%s listen: %q  error: %s", logName, listen, err)
			return nil, err
		}
		r.networks = append(r.networks, network)
		r.addresses = append(r.addresses, address)
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return r, nil
}

// Serve - listen on every address and serve each connection in its own goroutine
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	r.connLock.Lock()
	r.closing = false
	r.connLock.Unlock()

	for i, address := range r.addresses {
		r.log.Infof("starting RPC server: %s", address)
		l, err := tls.Listen(r.networks[i], address, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		r.active.Add(1)
		go r.accept(l)
	}
	return nil
}

// Close - stop accepting, drop open connections and wait for every
// goroutine started by Serve to return
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()

	var err error
	for _, l := range r.listeners {
		if e := l.Close(); nil != e && nil == err {
			err = e
		}
	}
	r.listeners = nil

	r.connLock.Lock()
	r.closing = true
	for conn := range r.conns {
		_ = conn.Close()
	}
	r.connLock.Unlock()

	r.active.Wait()
	return err
}

func (r *rpcListener) accept(listen net.Listener) {
	defer r.active.Done()

	for {
		conn, err := listen.Accept()
		if err != nil {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}
		if !r.count.Admit(r.maxConnections) {
			r.log.Warnf("rpc connection from: %s refused: limit: %d reached", conn.RemoteAddr(), r.maxConnections)
			_ = conn.Close()
			continue
		}
		if !r.track(conn) {
			r.count.Release()
			_ = conn.Close()
			continue
		}

		r.active.Add(1)
		go func() {
			defer r.active.Done()
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			r.untrack(conn)
			r.count.Release()
		}()
	}
}

// false once Close has started
func (r *rpcListener) track(conn net.Conn) bool {
	r.connLock.Lock()
	defer r.connLock.Unlock()

	if r.closing {
		return false
	}
	r.conns[conn] = struct{}{}
	return true
}

func (r *rpcListener) untrack(conn net.Conn) {
	r.connLock.Lock()
	delete(r.conns, conn)
	r.connLock.Unlock()
}
