// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/fixtures"
	"github.com/bitmark-inc/highscored/rpc"
	"github.com/bitmark-inc/highscored/rpc/listeners"
	"github.com/bitmark-inc/highscored/rpc/mocks"
	"github.com/bitmark-inc/highscored/rpc/score"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

// write the test key pair where the configuration expects it
func writeKeyPair(t *testing.T) (string, string, func()) {
	dir, err := ioutil.TempDir("", "highscored-rpc")
	if nil != err {
		t.Fatalf("temp dir with error: %s", err)
	}

	cer, key := fixtures.TLSKeyPair()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	_ = ioutil.WriteFile(certificateFile, []byte(cer), 0600)
	_ = ioutil.WriteFile(keyFile, []byte(key), 0600)

	return certificateFile, keyFile, func() {
		os.RemoveAll(dir)
	}
}

func TestInitialise(t *testing.T) {
	certificateFile, keyFile, teardown := writeKeyPair(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Get("alice").Return(int64(10), nil).Times(1)

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
		RateLimit:          100,
		RateBurst:          10,
	}

	err := rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "1.0", l)
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "1.0", l)
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var reply score.GetReply
	err = client.Call("Score.Get", &score.GetArguments{Name: "alice"}, &reply)
	assert.Nil(t, err, "wrong Score.Get")
	assert.Equal(t, int64(10), reply.Score, "wrong score")
	client.Close()

	assert.Nil(t, rpc.SetRateLimit(50, 5), "wrong SetRateLimit")
	assert.Equal(t, fault.MissingParameters, rpc.SetRateLimit(0, 5), "zero rate accepted")

	assert.Nil(t, rpc.Finalise(), "wrong Finalise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "second Finalise")
	assert.Equal(t, fault.NotInitialised, rpc.SetRateLimit(50, 5), "SetRateLimit after Finalise")
}

func TestInitialiseInvalidRate(t *testing.T) {
	certificateFile, keyFile, teardown := writeKeyPair(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:2150"},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
		RateLimit:          10,
		RateBurst:          0,
	}

	err := rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "1.0", mocks.NewMockLedger(ctl))
	assert.Equal(t, fault.MissingParameters, err, "zero burst accepted")
}

func TestInitialiseMissingCertificate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:2150"},
		Certificate:        "/nonexistent/rpc.crt",
		PrivateKey:         "/nonexistent/rpc.key",
		RateLimit:          10,
		RateBurst:          10,
	}

	err := rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "1.0", mocks.NewMockLedger(ctl))
	assert.Equal(t, fault.MissingParameters, err, "missing certificate accepted")
}

func TestFinaliseClosesOpenConnections(t *testing.T) {
	certificateFile, keyFile, teardown := writeKeyPair(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Get("bob").Return(int64(7), nil).Times(1)

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
		RateLimit:          100,
		RateBurst:          10,
	}

	err := rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "1.0", l)
	assert.Nil(t, err, "wrong Initialise")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply score.GetReply
	err = client.Call("Score.Get", &score.GetArguments{Name: "bob"}, &reply)
	assert.Nil(t, err, "wrong Score.Get")

	// the connection is still open, Finalise must drop it before returning
	assert.Nil(t, rpc.Finalise(), "wrong Finalise")

	err = client.Call("Score.Get", &score.GetArguments{Name: "bob"}, &reply)
	assert.NotNil(t, err, "call served after Finalise")

	_, err = tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	assert.NotNil(t, err, "dial accepted after Finalise")
}
