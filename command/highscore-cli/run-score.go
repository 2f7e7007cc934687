// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/highscored/command/highscore-cli/rpccalls"
)

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}
	if !c.IsSet("value") {
		return ErrRequiredValue
	}
	value := c.Int64("value")

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(name, value)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(name)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Best()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
