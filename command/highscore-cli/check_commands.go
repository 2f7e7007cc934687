// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net"
	"strings"

	"github.com/bitmark-inc/highscored/util"
)

// connect is required, and must be HOST:PORT
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	// literal IP addresses are canonicalised, host names are left alone
	if canonical, err := util.CanonicalIPandPort(connect); nil == err {
		return canonical, nil
	}
	host, port, err := net.SplitHostPort(connect)
	if nil != err || "" == host || "" == port {
		return "", ErrInvalidConnect
	}
	return connect, nil
}

// player name is required
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredName
	}
	return name, nil
}
