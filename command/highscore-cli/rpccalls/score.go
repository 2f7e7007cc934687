// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/highscored/fault"
	"github.com/bitmark-inc/highscored/rpc/score"
)

// SubmitReply - JSON data to output after a committed submission
type SubmitReply struct {
	Name      string `json:"name"`
	Value     int64  `json:"value"`
	Committed bool   `json:"committed"`
}

// Submit - send a score
//
// the server replies only once the submission is committed; the
// resulting personal best is reported by Get
func (c *Client) Submit(name string, value int64) (*SubmitReply, error) {
	if "" == name {
		return nil, fault.InvalidName
	}

	arguments := score.SubmitArguments{
		Name:  name,
		Value: value,
	}
	c.printJson("Submit Request", arguments)

	var reply score.SubmitReply
	if err := c.client.Call("Score.Submit", &arguments, &reply); nil != err {
		return nil, err
	}

	return &SubmitReply{
		Name:      name,
		Value:     value,
		Committed: true,
	}, nil
}

// Get - the best score of one player
func (c *Client) Get(name string) (*score.GetReply, error) {
	if "" == name {
		return nil, fault.InvalidName
	}

	arguments := score.GetArguments{
		Name: name,
	}
	c.printJson("Get Request", arguments)

	var reply score.GetReply
	if err := c.client.Call("Score.Get", &arguments, &reply); nil != err {
		return nil, err
	}

	c.printJson("Get Reply", reply)
	return &reply, nil
}

// Best - the global best score and its holder
func (c *Client) Best() (*score.BestReply, error) {
	var reply score.BestReply
	if err := c.client.Call("Score.Best", &score.BestArguments{}, &reply); nil != err {
		return nil, err
	}

	c.printJson("Best Reply", reply)
	return &reply, nil
}
