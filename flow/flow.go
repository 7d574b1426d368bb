// Package flow implements the regtest transfer workflow: fund a miner
// wallet to coinbase maturity, send a fixed amount to a trader wallet,
// confirm it, trace the confirmed transaction back to its funding output,
// and write the ten-line report.
package flow

import (
	"fmt"
	"log/slog"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/neverDefined/regtestflow/regtest"
)

// WalletClient is the wallet surface the stages run against. It is
// satisfied by *regtest.WalletSession and mocked in tests.
type WalletClient interface {
	Name() string
	NewAddress(label string) (string, error)
	Balance() (btcutil.Amount, error)
	MineToAddress(count int64, addr string) ([]string, error)
	Send(addr string, amount float64) (string, error)
	MempoolEntry(txid string) (*btcjson.GetMempoolEntryResult, error)
	Transaction(txid string) (*regtest.WalletTransaction, error)
}

// TxFetcher is the slice of WalletClient the extraction stage needs.
type TxFetcher interface {
	Transaction(txid string) (*regtest.WalletTransaction, error)
}

// Run executes the whole workflow against the configured node and writes
// the report. Every stage failure aborts the run; mined blocks and sent
// transactions are external side effects and are never rolled back.
func Run(cfg *regtest.Config, logger *slog.Logger) error {
	sess, err := regtest.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("rpc session: %w", err)
	}
	defer sess.Close()

	if err := sess.HealthCheck(); err != nil {
		return fmt.Errorf("rpc session: %w", err)
	}

	for _, name := range []string{cfg.MinerWallet, cfg.TraderWallet} {
		status, err := sess.EnsureWallet(name)
		if err != nil {
			return fmt.Errorf("wallet setup: %w", err)
		}
		logger.Info("wallet ready", "wallet", name, "status", status.String())
	}

	miner, err := sess.Wallet(cfg.MinerWallet)
	if err != nil {
		return fmt.Errorf("wallet setup: %w", err)
	}
	trader, err := sess.Wallet(cfg.TraderWallet)
	if err != nil {
		return fmt.Errorf("wallet setup: %w", err)
	}

	funding, err := Fund(miner, logger)
	if err != nil {
		return fmt.Errorf("funding stage: %w", err)
	}

	transfer, err := Transfer(miner, trader, funding.MiningAddress, cfg.SendAmount, logger)
	if err != nil {
		return fmt.Errorf("transfer stage: %w", err)
	}

	report, err := Extract(miner, transfer.TxID, transfer.TraderAddress)
	if err != nil {
		return fmt.Errorf("extraction stage: %w", err)
	}

	if err := report.WriteFile(cfg.OutputPath); err != nil {
		return fmt.Errorf("report write: %w", err)
	}
	logger.Info("report written", "path", cfg.OutputPath, "txid", report.TxID)
	return nil
}
