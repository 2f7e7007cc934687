// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package directory - named slots held in a single storage pool
//
// a key is bound once to a slot holding one typed value; afterwards
// the slot may be read and overwritten with a value of the same type
// but never rebound or removed
//
// every operation runs through the storage transaction given to New,
// so writes only reach the database when that transaction commits
package directory
