// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/rpc/handler"
	"github.com/bitmark-inc/highscored/util"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log       *logger.L
	networks  []string
	addresses []string
	tlsConfig *tls.Config
	mux       *http.ServeMux
	servers   []*http.Server
	bound     []net.Listener
	active    sync.WaitGroup
}

// NewHTTPS - prepare the HTTPS bridge to the RPC server
//
// returns a nil listener when no listen address is configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	h := &httpsListener{
		log:       log,
		tlsConfig: tlsConfig,
	}

	for _, listen := range configuration.Listen {
		network, address, err := util.ListenAddress(listen)
		if nil != err {
			log.Errorf("%s listen: %q  error: %s", httpsLogName, listen, err)
			return nil, err
		}
		h.networks = append(h.networks, network)
		h.addresses = append(h.addresses, address)
	}

	// create access control
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(ip))
			if nil != err {
				log.Errorf("%s allow: %q  error: %s", httpsLogName, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}

	hdlr.SetAllow(local)

	h.mux = http.NewServeMux()
	h.mux.HandleFunc("/highscore/rpc", hdlr.RPC)
	h.mux.HandleFunc("/highscore/details", hdlr.Details)
	h.mux.HandleFunc("/", hdlr.Root)

	return h, nil
}

// Serve - bind every address then serve in background
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	cfg := h.tlsConfig.Clone()
	cfg.NextProtos = []string{"http/1.1"}

	for i, address := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpsLogName, address)

		ln, err := net.Listen(h.networks[i], address)
		if err != nil {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)
		h.bound = append(h.bound, ln)

		h.active.Add(1)
		go func(l net.Listener) {
			defer h.active.Done()
			err := s.Serve(tls.NewListener(l, cfg))
			if http.ErrServerClosed != err {
				h.log.Errorf("%s serve error: %s", httpsLogName, err)
			}
		}(ln)
	}

	return nil
}

// Close - stop all HTTPS servers and wait for their serve goroutines
func (h *httpsListener) Close() error {
	h.Lock()
	defer h.Unlock()

	var err error
	for _, s := range h.servers {
		if e := s.Close(); nil != e && nil == err {
			err = e
		}
	}
	h.servers = nil

	// a server closed before its goroutine started has not taken ownership
	for _, l := range h.bound {
		_ = l.Close()
	}
	h.bound = nil

	h.active.Wait()
	return err
}
