// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/highscored/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func CanonicalIPandPort(hostPort string) (string, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", fault.InvalidIpAddress
	}

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return "", fault.InvalidIpAddress
	}

	numericPort, err := parsePort(port)
	if nil != err {
		return "", err
	}

	return net.JoinHostPort(IP.String(), strconv.Itoa(numericPort)), nil
}

// ListenAddress - network and address suitable for net.Listen
//
// "*:PORT" listens on every interface of both IPv4 and IPv6
func ListenAddress(listen string) (network string, address string, err error) {
	listen = strings.TrimSpace(listen)

	if strings.HasPrefix(listen, "*:") {
		numericPort, err := parsePort(listen[2:])
		if nil != err {
			return "", "", err
		}
		return "tcp", net.JoinHostPort("::", strconv.Itoa(numericPort)), nil
	}

	address, err = CanonicalIPandPort(listen)
	if nil != err {
		return "", "", err
	}
	if '[' == address[0] {
		return "tcp6", address, nil
	}
	return "tcp4", address, nil
}

func parsePort(port string) (int, error) {
	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return 0, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return 0, fault.InvalidPortNumber
	}
	return numericPort, nil
}
