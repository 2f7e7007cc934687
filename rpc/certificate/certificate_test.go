// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/fixtures"
	"github.com/bitmark-inc/highscored/rpc/certificate"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func TestGet(t *testing.T) {
	cer, key := fixtures.TLSKeyPair()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalidPair(t *testing.T) {
	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "invalid pair accepted")
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "highscored-certificate")
	if nil != err {
		t.Fatalf("temp dir with error: %s", err)
	}
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	log := logger.New(fixtures.LogCategory)

	_, _, err = certificate.Load(log, "test", certificateFile, keyFile)
	assert.Equal(t, fault.MissingParameters, err, "missing files accepted")

	cer, key := fixtures.TLSKeyPair()
	_ = ioutil.WriteFile(certificateFile, []byte(cer), 0600)
	_ = ioutil.WriteFile(keyFile, []byte(key), 0600)

	_, fromFiles, err := certificate.Load(log, "test", certificateFile, keyFile)
	assert.Nil(t, err, "wrong Load")

	_, fromText, _ := certificate.Get(log, "test", cer, key)
	assert.Equal(t, fromText, fromFiles, "fingerprint differs")
}
