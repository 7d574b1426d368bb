package flow

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/neverDefined/regtestflow/regtest"
)

// fakeWallet implements WalletClient for stage tests. It is behavior
// focused: it simulates just enough wallet state (coinbase maturity, one
// outgoing send) and returns what it is configured with.
type fakeWallet struct {
	name    string
	addrs   []string
	addrIdx int

	preFunded   btcutil.Amount
	neverMature bool
	mined       []string // mining address per generated block

	sendTxID   string
	sentTo     string
	sentAmount float64

	mempool map[string]*btcjson.GetMempoolEntryResult
	txs     map[string]*regtest.WalletTransaction
	txCalls []string

	errNewAddress error
	errBalance    error
	errMine       error
	errSend       error
	errMempool    error
}

func (f *fakeWallet) Name() string { return f.name }

func (f *fakeWallet) NewAddress(label string) (string, error) {
	if f.errNewAddress != nil {
		return "", f.errNewAddress
	}
	if f.addrIdx >= len(f.addrs) {
		return "", fmt.Errorf("fakeWallet %s: no addresses configured", f.name)
	}
	addr := f.addrs[f.addrIdx]
	f.addrIdx++
	return addr, nil
}

func (f *fakeWallet) Balance() (btcutil.Amount, error) {
	if f.errBalance != nil {
		return 0, f.errBalance
	}
	bal := f.preFunded
	if f.neverMature {
		return bal, nil
	}
	if mature := len(f.mined) - coinbaseMaturity; mature > 0 {
		bal += btcutil.Amount(mature) * 50 * btcutil.SatoshiPerBitcoin
	}
	return bal, nil
}

func (f *fakeWallet) MineToAddress(count int64, addr string) ([]string, error) {
	if f.errMine != nil {
		return nil, f.errMine
	}
	blocks := make([]string, count)
	for i := range blocks {
		f.mined = append(f.mined, addr)
		blocks[i] = fmt.Sprintf("block-%d", len(f.mined))
	}
	return blocks, nil
}

func (f *fakeWallet) Send(addr string, amount float64) (string, error) {
	if f.errSend != nil {
		return "", f.errSend
	}
	f.sentTo = addr
	f.sentAmount = amount
	return f.sendTxID, nil
}

func (f *fakeWallet) MempoolEntry(txid string) (*btcjson.GetMempoolEntryResult, error) {
	if f.errMempool != nil {
		return nil, f.errMempool
	}
	entry, ok := f.mempool[txid]
	if !ok {
		return nil, fmt.Errorf("transaction %s not in mempool", txid)
	}
	return entry, nil
}

func (f *fakeWallet) Transaction(txid string) (*regtest.WalletTransaction, error) {
	f.txCalls = append(f.txCalls, txid)
	tx, ok := f.txs[txid]
	if !ok {
		return nil, fmt.Errorf("unknown transaction %s", txid)
	}
	return tx, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func f64(v float64) *float64 { return &v }

func i64(v int64) *int64 { return &v }

var (
	_ WalletClient = (*fakeWallet)(nil)
	_ WalletClient = (*regtest.WalletSession)(nil)
)
