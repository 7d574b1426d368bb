package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// A .env alongside the binary may carry RPC credentials; absence is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "regtestflow",
		Usage:   "Drive a Bitcoin Core regtest node through a funded wallet-to-wallet transfer",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Creates or loads two wallets on a regtest node, mines coinbase rewards
to maturity, sends a fixed amount between the wallets, confirms it, and
writes a ten-line report of the confirmed transaction.`,
		Commands: []*cli.Command{
			runCommand(),
			nodeCommands(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
