package flow

import (
	"fmt"
	"log/slog"
)

const receiveLabel = "Received"

// TransferResult identifies the confirmed transfer for extraction.
type TransferResult struct {
	TxID          string
	TraderAddress string
}

// Transfer sends the fixed amount from the miner wallet to a fresh
// trader address, logs the mempool entry while the transaction is
// unconfirmed, and mines exactly one confirming block to the miner's
// mining address. Every RPC failure here is fatal; nothing is retried.
func Transfer(miner, trader WalletClient, miningAddr string, amount float64, logger *slog.Logger) (*TransferResult, error) {
	traderAddr, err := trader.NewAddress(receiveLabel)
	if err != nil {
		return nil, fmt.Errorf("receiving address: %w", err)
	}

	txid, err := miner.Send(traderAddr, amount)
	if err != nil {
		return nil, fmt.Errorf("send %v BTC to %s: %w", amount, traderAddr, err)
	}
	logger.Info("sent transfer",
		"from", miner.Name(),
		"to", trader.Name(),
		"address", traderAddr,
		"amount_btc", amount,
		"txid", txid,
	)

	// Observational only: the entry is logged, never branched on.
	entry, err := miner.MempoolEntry(txid)
	if err != nil {
		return nil, fmt.Errorf("mempool entry %s: %w", txid, err)
	}
	logger.Info("mempool entry",
		"txid", txid,
		"vsize", entry.VSize,
		"weight", entry.Weight,
		"fee_btc", entry.Fee,
		"time", entry.Time,
	)

	if _, err := miner.MineToAddress(1, miningAddr); err != nil {
		return nil, fmt.Errorf("confirm block: %w", err)
	}
	return &TransferResult{TxID: txid, TraderAddress: traderAddr}, nil
}
