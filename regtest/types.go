package regtest

// Typed results for the wallet RPC calls that rpcclient has no verbose
// wrapper for. Fields bitcoind may omit are pointers so that "absent" is
// distinguishable from a legitimate zero.

// WalletTransaction is the result of `gettransaction <txid> null true`,
// i.e. with the decoded raw transaction included.
type WalletTransaction struct {
	TxID          string              `json:"txid"`
	Amount        float64             `json:"amount"`
	Fee           *float64            `json:"fee,omitempty"`
	Confirmations int64               `json:"confirmations"`
	BlockHash     string              `json:"blockhash,omitempty"`
	BlockHeight   *int64              `json:"blockheight,omitempty"`
	BlockIndex    int64               `json:"blockindex,omitempty"`
	BlockTime     int64               `json:"blocktime,omitempty"`
	Time          int64               `json:"time"`
	TimeReceived  int64               `json:"timereceived"`
	Details       []TransactionDetail `json:"details"`
	Hex           string              `json:"hex"`
	Decoded       *RawTransaction     `json:"decoded,omitempty"`
}

// TransactionDetail is one entry of a wallet transaction's details array.
type TransactionDetail struct {
	Address  string   `json:"address"`
	Category string   `json:"category"`
	Amount   float64  `json:"amount"`
	Label    string   `json:"label"`
	Vout     uint32   `json:"vout"`
	Fee      *float64 `json:"fee,omitempty"`
}

// RawTransaction is the decoded form of a transaction as bitcoind reports
// it inside a verbose gettransaction response.
type RawTransaction struct {
	TxID     string `json:"txid"`
	Hash     string `json:"hash"`
	Version  int32  `json:"version"`
	Size     int32  `json:"size"`
	VSize    int32  `json:"vsize"`
	Weight   int32  `json:"weight"`
	LockTime uint32 `json:"locktime"`
	Vin      []Vin  `json:"vin"`
	Vout     []Vout `json:"vout"`
}

// Vin is a transaction input. Coinbase inputs carry Coinbase and no TxID.
type Vin struct {
	TxID     string `json:"txid,omitempty"`
	Vout     uint32 `json:"vout"`
	Coinbase string `json:"coinbase,omitempty"`
	Sequence uint32 `json:"sequence"`
}

// Vout is a transaction output. Value is in BTC.
type Vout struct {
	Value        *float64     `json:"value,omitempty"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// ScriptPubKey describes an output's locking script. Address is only
// present for standard script types; Asm always carries the assembly text.
type ScriptPubKey struct {
	Asm     string `json:"asm,omitempty"`
	Desc    string `json:"desc,omitempty"`
	Hex     string `json:"hex,omitempty"`
	Type    string `json:"type,omitempty"`
	Address string `json:"address,omitempty"`
}
