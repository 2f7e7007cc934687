// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS set up for the RPC listeners
package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/util"
	"github.com/bitmark-inc/logger"
)

// Get - TLS configuration and fingerprint for a PEM encoded key pair
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - as Get, but reading the key pair from files
func Load(log *logger.L, name, certificateFileName, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if !util.FileExists(certificateFileName) {
		log.Errorf("%s certificate: %q does not exist", name, certificateFileName)
		return nil, fin, fault.MissingParameters
	}
	if !util.FileExists(keyFileName) {
		log.Errorf("%s private key: %q does not exist", name, keyFileName)
		return nil, fin, fault.MissingParameters
	}

	certificate, err := util.ReadTextFile(certificateFileName)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFileName, err)
		return nil, fin, err
	}
	key, err := util.ReadTextFile(keyFileName)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFileName, err)
		return nil, fin, err
	}

	return Get(log, name, certificate, key)
}

// Fingerprint - SHA3-256 of a DER certificate
//
// openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
