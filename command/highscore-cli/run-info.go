// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/highscored/command/highscore-cli/rpccalls"
)

type infoReply struct {
	Connection string `json:"_connection"`
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
	RPCs       uint64 `json:"rpcs"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	printJson(m.w, infoReply{
		Connection: m.connect,
		Version:    response.Version,
		Uptime:     response.Uptime,
		RPCs:       response.RPCs,
	})
	return nil
}
