// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/highscored/fault"
)

func TestMakeSelfSignedCertificate(t *testing.T) {
	dir, err := ioutil.TempDir("", "highscored-cert")
	if nil != err {
		t.Fatalf("temp dir with error: %s", err)
	}
	defer os.RemoveAll(dir)

	certificateFile := getFilenameWithDirectory([]string{dir}, rpcCertificateKeyFilename)
	keyFile := getFilenameWithDirectory([]string{dir}, rpcPrivateKeyFilename)
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), certificateFile, "wrong certificate file")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), keyFile, "wrong key file")

	err = makeSelfSignedCertificate("rpc", certificateFile, keyFile, true, []string{"127.0.0.1"})
	assert.Nil(t, err, "wrong makeSelfSignedCertificate")

	_, err = tls.LoadX509KeyPair(certificateFile, keyFile)
	assert.Nil(t, err, "generated pair does not load")

	info, err := os.Stat(keyFile)
	if assert.Nil(t, err, "key file missing") {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "wrong key permissions")
	}

	err = makeSelfSignedCertificate("rpc", certificateFile, keyFile, true, nil)
	assert.Equal(t, fault.CertificateFileExists, err, "certificate overwritten")

	os.Remove(certificateFile)
	err = makeSelfSignedCertificate("rpc", certificateFile, keyFile, true, nil)
	assert.Equal(t, fault.KeyFileExists, err, "key overwritten")
}

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "rpc.crt", getFilenameWithDirectory(nil, "rpc.crt"), "no directory")
	assert.Equal(t, "rpc.crt", getFilenameWithDirectory([]string{""}, "rpc.crt"), "blank directory")
	assert.Equal(t, filepath.Join("keys", "rpc.crt"), getFilenameWithDirectory([]string{"keys/", "127.0.0.1"}, "rpc.crt"), "with directory")
}
