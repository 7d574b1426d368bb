package regtest

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"
)

// WalletSession wraps a wallet-scoped RPC client with the handful of
// calls the transfer workflow needs. Addresses cross the boundary as
// strings; they are decoded against the regtest parameters on the way in.
type WalletSession struct {
	name   string
	client *rpcclient.Client
	params *chaincfg.Params
}

func newWalletSession(name string, client *rpcclient.Client) *WalletSession {
	return &WalletSession{
		name:   name,
		client: client,
		params: &chaincfg.RegressionNetParams,
	}
}

// Name returns the wallet name this session is scoped to.
func (w *WalletSession) Name() string { return w.name }

// Client exposes the underlying rpcclient for calls not wrapped here.
func (w *WalletSession) Client() *rpcclient.Client { return w.client }

// NewAddress generates a fresh receiving address under the given label.
func (w *WalletSession) NewAddress(label string) (string, error) {
	addr, err := w.client.GetNewAddress(label)
	if err != nil {
		return "", fmt.Errorf("getnewaddress for %q: %w", w.name, err)
	}
	return addr.EncodeAddress(), nil
}

// Balance returns the wallet's spendable balance across all accounts.
func (w *WalletSession) Balance() (btcutil.Amount, error) {
	balance, err := w.client.GetBalance("*")
	if err != nil {
		return 0, fmt.Errorf("getbalance for %q: %w", w.name, err)
	}
	return balance, nil
}

// MineToAddress generates count blocks paying the coinbase reward to
// addr, returning the block hashes.
func (w *WalletSession) MineToAddress(count int64, addr string) ([]string, error) {
	address, err := btcutil.DecodeAddress(addr, w.params)
	if err != nil {
		return nil, fmt.Errorf("decode mining address %q: %w", addr, err)
	}
	hashes, err := w.client.GenerateToAddress(count, address, nil)
	if err != nil {
		return nil, fmt.Errorf("generatetoaddress: %w", err)
	}
	blocks := make([]string, len(hashes))
	for i, h := range hashes {
		blocks[i] = h.String()
	}
	return blocks, nil
}

// Send transfers amount BTC from this wallet to addr and returns the
// transaction id. Fee selection and change are left to the wallet.
func (w *WalletSession) Send(addr string, amount float64) (string, error) {
	address, err := btcutil.DecodeAddress(addr, w.params)
	if err != nil {
		return "", fmt.Errorf("decode destination address %q: %w", addr, err)
	}
	amt, err := btcutil.NewAmount(amount)
	if err != nil {
		return "", fmt.Errorf("invalid amount %v: %w", amount, err)
	}
	hash, err := w.client.SendToAddress(address, amt)
	if err != nil {
		return "", fmt.Errorf("sendtoaddress from %q: %w", w.name, err)
	}
	return hash.String(), nil
}

// MempoolEntry fetches the mempool entry for an unconfirmed transaction.
func (w *WalletSession) MempoolEntry(txid string) (*btcjson.GetMempoolEntryResult, error) {
	entry, err := w.client.GetMempoolEntry(txid)
	if err != nil {
		return nil, fmt.Errorf("getmempoolentry %s: %w", txid, err)
	}
	return entry, nil
}

// Transaction fetches a wallet transaction in verbose form, including
// the decoded inputs and outputs. rpcclient's GetTransaction wrapper
// cannot request the decoded variant, so this goes through RawRequest.
func (w *WalletSession) Transaction(txid string) (*WalletTransaction, error) {
	params := []json.RawMessage{
		json.RawMessage(fmt.Sprintf(`"%s"`, txid)),
		json.RawMessage(`null`),
		json.RawMessage(`true`),
	}
	resp, err := w.client.RawRequest("gettransaction", params)
	if err != nil {
		return nil, fmt.Errorf("gettransaction %s: %w", txid, err)
	}
	var tx WalletTransaction
	if err := json.Unmarshal(resp, &tx); err != nil {
		return nil, fmt.Errorf("decode gettransaction %s: %w", txid, err)
	}
	return &tx, nil
}
