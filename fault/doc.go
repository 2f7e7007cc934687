// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - shared error values
//
// every error is a package level value of one of four class types so
// callers compare with == or test the class with the IsErr* functions
package fault
