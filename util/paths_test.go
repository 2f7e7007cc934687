// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/highscored/util"
)

func TestAbsolutePath(t *testing.T) {
	assert.Equal(t, "/data/highscored.leveldb", util.AbsolutePath("/data", "highscored.leveldb"), "relative path")
	assert.Equal(t, "/var/log", util.AbsolutePath("/data", "/var/log/"), "absolute path")
	assert.Equal(t, "/data/log", util.AbsolutePath("/data/sub", "../log"), "path not cleaned")
}

func TestFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "highscored-util")
	if nil != err {
		t.Fatalf("temp dir with error: %s", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "file.txt")
	assert.False(t, util.FileExists(name), "missing file exists")

	_, err = util.ReadTextFile(name)
	assert.NotNil(t, err, "read missing file")

	_ = ioutil.WriteFile(name, []byte("content"), 0600)
	assert.True(t, util.FileExists(name), "file not found")

	text, err := util.ReadTextFile(name)
	assert.Nil(t, err, "read file")
	assert.Equal(t, "content", text, "wrong content")
}
