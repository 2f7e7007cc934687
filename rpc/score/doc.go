// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package score - RPC service for submitting and querying scores
//
// methods:
//   Score.Submit   {"name": string, "value": int64}  ->  {}
//   Score.Get      {"name": string}                  ->  {"name": string, "score": int64}
//   Score.Best     {}                                ->  {"score": int64, "holder": string}
package score
