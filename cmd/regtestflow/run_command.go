package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/neverDefined/regtestflow/flow"
	"github.com/neverDefined/regtestflow/regtest"
)

// rpcFlags are shared by every command that talks to the node.
func rpcFlags() []cli.Flag {
	defaults := regtest.DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "rpc-host",
			Value:   defaults.Host,
			Usage:   "RPC endpoint as host:port",
			EnvVars: []string{"REGTESTFLOW_RPC_HOST"},
		},
		&cli.StringFlag{
			Name:    "rpc-user",
			Value:   defaults.User,
			Usage:   "RPC username",
			EnvVars: []string{"REGTESTFLOW_RPC_USER"},
		},
		&cli.StringFlag{
			Name:    "rpc-pass",
			Value:   defaults.Pass,
			Usage:   "RPC password",
			EnvVars: []string{"REGTESTFLOW_RPC_PASS"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{"REGTESTFLOW_LOG_LEVEL"},
		},
	}
}

func runCommand() *cli.Command {
	defaults := regtest.DefaultConfig()
	flags := append(rpcFlags(),
		&cli.StringFlag{
			Name:    "miner-wallet",
			Value:   defaults.MinerWallet,
			Usage:   "Wallet that mines and funds the transfer",
			EnvVars: []string{"REGTESTFLOW_MINER_WALLET"},
		},
		&cli.StringFlag{
			Name:    "trader-wallet",
			Value:   defaults.TraderWallet,
			Usage:   "Wallet that receives the transfer",
			EnvVars: []string{"REGTESTFLOW_TRADER_WALLET"},
		},
		&cli.Float64Flag{
			Name:    "amount",
			Value:   defaults.SendAmount,
			Usage:   "Transfer amount in BTC",
			EnvVars: []string{"REGTESTFLOW_AMOUNT"},
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   defaults.OutputPath,
			Usage:   "Path of the ten-line report file",
			EnvVars: []string{"REGTESTFLOW_OUT"},
		},
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Execute the full transfer workflow against a running node",
		Flags: flags,
		Action: func(c *cli.Context) error {
			cfg := configFromContext(c)
			cfg.MinerWallet = c.String("miner-wallet")
			cfg.TraderWallet = c.String("trader-wallet")
			cfg.SendAmount = c.Float64("amount")
			cfg.OutputPath = c.String("out")

			logger := setupLogger(c.String("log-level"))
			logger.Info("starting transfer workflow",
				"host", cfg.Host,
				"miner_wallet", cfg.MinerWallet,
				"trader_wallet", cfg.TraderWallet,
				"amount_btc", cfg.SendAmount,
			)
			return flow.Run(cfg, logger)
		},
	}
}

// configFromContext applies the shared RPC flags over the defaults.
func configFromContext(c *cli.Context) *regtest.Config {
	cfg := regtest.DefaultConfig()
	cfg.Host = c.String("rpc-host")
	cfg.User = c.String("rpc-user")
	cfg.Pass = c.String("rpc-pass")
	return cfg
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
