// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	c := newCache()

	_, found := c.Get("missing")
	assert.False(t, found, "empty cache found a key")

	c.Set("key", []byte("value"))
	value, found := c.Get("key")
	assert.True(t, found, "key not cached")
	assert.Equal(t, []byte("value"), value, "wrong cached value")

	c.Set("key", []byte("replaced"))
	value, _ = c.Get("key")
	assert.Equal(t, []byte("replaced"), value, "value not replaced")

	c.Clear()
	_, found = c.Get("key")
	assert.False(t, found, "Clear kept a key")
}
