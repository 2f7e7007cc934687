// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP access to the JSON-RPC server
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/highscored/counter"
)

// Handler - the HTTP endpoints
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	log            *logger.L
	server         *rpc.Server
	start          time.Time
	version        string
	allow          map[string][]*net.IPNet
	maxConnections uint64
	count          counter.Counter
}

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// New - create the HTTP handler for an RPC server
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maxConnections uint64) Handler {
	return &handler{
		log:            log,
		server:         server,
		start:          start,
		version:        version,
		allow:          make(map[string][]*net.IPNet),
		maxConnections: maxConnections,
	}
}

// SetAllow - the CIDR ranges permitted for each restricted path
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Admit(h.maxConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	if nil == r.Body {
		sendInternalServerError(w)
		return
	}

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Warnf("http rpc error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// Details - GET the same information as Node.Info
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.isAllowed("details", r) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !h.count.Admit(h.maxConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	type theReply struct {
		Version     string `json:"version"`
		Uptime      string `json:"uptime"`
		Connections uint64 `json:"connections"`
	}

	reply := theReply{
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
		Connections: h.count.Uint64(),
	}

	sendReply(w, reply)
}

// check the remote address against the allow list of a path
func (h *handler) isAllowed(path string, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "Too Many Requests", http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
