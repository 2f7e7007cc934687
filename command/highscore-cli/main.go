// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

const defaultConnect = "127.0.0.1:2150"

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "highscore-cli"
	app.Usage = "submit and query scores on a highscored"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " highscored host/IP and port, `HOST:PORT`",
			EnvVar: "HIGHSCORE_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "submit",
			Usage:     "submit a score for a player (use get for the resulting best)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*player `NAME`",
				},
				cli.Int64Flag{
					Name:  "value, s",
					Value: 0,
					Usage: "*score `VALUE`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "get",
			Usage:     "best score of a player",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*player `NAME`",
				},
			},
			Action: runGet,
		},
		{
			Name:   "best",
			Usage:  "global best score and its holder",
			Action: runBest,
		},
		{
			Name:   "info",
			Usage:  "display highscored status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display highscore-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		m := &metadata{
			connect: connect,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		if m.verbose {
			fmt.Fprintf(m.e, "connect: %q\n", m.connect)
		}
		c.App.Metadata["config"] = m
		return nil
	}

	return app
}
