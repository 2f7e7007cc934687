// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common set up for package tests
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - route all logging to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// TempDatabase - a fresh directory name for a test database
//
// the caller removes it with os.RemoveAll
func TempDatabase(name string) string {
	d, err := ioutil.TempDir("", "highscored-"+name)
	if nil != err {
		panic(err)
	}
	return d
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

var tlsPair struct {
	sync.Once
	certificate string
	key         string
}

// TLSKeyPair - a self signed PEM certificate and private key
//
// generated once per test binary
func TLSKeyPair() (certificate string, key string) {
	tlsPair.Do(func() {
		cert, k, err := certgen.NewTLSCertPair("highscored test", time.Now().Add(24*time.Hour), false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		tlsPair.certificate = string(cert)
		tlsPair.key = string(k)
	})
	return tlsPair.certificate, tlsPair.key
}
