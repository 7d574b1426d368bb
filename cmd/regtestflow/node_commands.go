package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/neverDefined/regtestflow/regtest"
)

func nodeCommands() *cli.Command {
	dataDirFlag := &cli.StringFlag{
		Name:    "datadir",
		Value:   regtest.DefaultDataDir,
		Usage:   "bitcoind data directory",
		EnvVars: []string{"REGTESTFLOW_DATADIR"},
	}

	return &cli.Command{
		Name:  "node",
		Usage: "Manage a local bitcoind regtest node",
		Subcommands: []*cli.Command{
			{
				Name:  "start",
				Usage: "Start bitcoind and wait for RPC to answer",
				Flags: append(rpcFlags(), dataDirFlag,
					&cli.StringSliceFlag{
						Name:  "extra-arg",
						Usage: "Additional bitcoind argument (repeatable)",
					},
				),
				Action: func(c *cli.Context) error {
					cfg := configFromContext(c)
					cfg.DataDir = c.String("datadir")
					cfg.ExtraArgs = c.StringSlice("extra-arg")
					if err := regtest.NewNode(cfg).Start(); err != nil {
						return err
					}
					fmt.Printf("bitcoind running at %s (datadir %s)\n", cfg.Host, cfg.DataDir)
					return nil
				},
			},
			{
				Name:  "stop",
				Usage: "Stop the running bitcoind",
				Flags: rpcFlags(),
				Action: func(c *cli.Context) error {
					cfg := configFromContext(c)
					if err := regtest.NewNode(cfg).Stop(); err != nil {
						return err
					}
					fmt.Println("bitcoind stopped")
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "Check whether bitcoind is answering RPC calls",
				Flags: rpcFlags(),
				Action: func(c *cli.Context) error {
					cfg := configFromContext(c)
					running, err := regtest.NewNode(cfg).IsRunning()
					if err != nil {
						return err
					}
					if running {
						fmt.Printf("bitcoind is running at %s\n", cfg.Host)
					} else {
						fmt.Printf("bitcoind is not running at %s\n", cfg.Host)
					}
					return nil
				},
			},
		},
	}
}
