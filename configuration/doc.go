// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read settings from a Lua script
//
// the script runs with the standard Lua libraries loaded and the
// global arg[0] set to its own file name; its final statement must
// return a table.  Table keys select struct fields by their
// "gluamapper" tag
package configuration
