package flow

import (
	"fmt"
	"log/slog"

	"github.com/btcsuite/btcd/btcutil"
)

const (
	// coinbaseMaturity is the number of confirmations a coinbase output
	// needs before it is spendable.
	coinbaseMaturity = 100

	// fundingBlockCap bounds the funding loop so it cannot produce more
	// than a handful of mature outputs if the balance never shows up.
	fundingBlockCap = 110

	miningLabel = "Mining Reward"
)

// FundingResult is what the later stages need from the funding stage.
type FundingResult struct {
	MiningAddress string
	BlocksMined   int
	Balance       btcutil.Amount
}

// Fund gives the miner wallet one spendable coinbase reward: it mines
// single blocks to a fresh address until at least maturity+1 blocks are
// produced and the wallet reports a strictly positive balance. One block
// at a time keeps the number of mature outputs minimal.
func Fund(miner WalletClient, logger *slog.Logger) (*FundingResult, error) {
	addr, err := miner.NewAddress(miningLabel)
	if err != nil {
		return nil, fmt.Errorf("mining address: %w", err)
	}

	balance, err := miner.Balance()
	if err != nil {
		return nil, fmt.Errorf("wallet balance: %w", err)
	}

	mined := 0
	for mined < coinbaseMaturity+1 || balance <= 0 {
		if mined >= fundingBlockCap {
			return nil, fmt.Errorf("no spendable balance after mining %d blocks", mined)
		}
		if _, err := miner.MineToAddress(1, addr); err != nil {
			return nil, fmt.Errorf("generate block: %w", err)
		}
		mined++
		if balance, err = miner.Balance(); err != nil {
			return nil, fmt.Errorf("wallet balance: %w", err)
		}
	}

	logger.Info("funding complete",
		"wallet", miner.Name(),
		"mining_address", addr,
		"blocks_mined", mined,
		"balance_btc", balance.ToBTC(),
	)
	return &FundingResult{
		MiningAddress: addr,
		BlocksMined:   mined,
		Balance:       balance,
	}, nil
}
