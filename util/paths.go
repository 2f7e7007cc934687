// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - small helpers shared by the commands and servers
package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

// AbsolutePath - name relative to directory unless it is already absolute
//
// the result is always cleaned
func AbsolutePath(directory string, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(directory, name)
}

// FileExists - true if name can be stat'ed
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// ReadTextFile - whole content of a small text file such as a PEM certificate
func ReadTextFile(name string) (string, error) {
	data, err := ioutil.ReadFile(name)
	if nil != err {
		return "", err
	}
	return string(data), nil
}
