// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/highscored/rpc/node"
)

// GetInfo - request status from highscored
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.client.Call("Node.Info", &node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}
