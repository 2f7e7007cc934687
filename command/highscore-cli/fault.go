// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/highscored/fault"
)

// common errors - keep in alphabetic order
var (
	ErrInvalidConnect  = fault.InvalidError("connect must be HOST:PORT")
	ErrRequiredConnect = fault.InvalidError("connect is required")
	ErrRequiredName    = fault.InvalidError("player name is required")
	ErrRequiredValue   = fault.InvalidError("score value is required")
)
