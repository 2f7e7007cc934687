// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes are staged in a single batch and only reach the
// database when the transaction commits, so a transaction is either
// applied completely or not at all.  Reads made during a transaction
// observe the values staged earlier in the same transaction.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. name         = UTF-8 bytes of a directory key
// 4. slot         = tag byte ++ payload
//                   'I' ++ big endian int64 (8 bytes)
//                   'S' ++ UTF-8 bytes
//
// Version:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32 (4 bytes)
//
// Globals:
//
//   G ++ name                  - global record slots (best_score, holder)
//                                data: slot
//
// Players:
//
//   P ++ name                  - player best score
//                                data: slot
package storage
