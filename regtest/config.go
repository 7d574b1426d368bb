package regtest

import (
	"fmt"
)

// Default connection settings for a local regtest node. These match the
// values bitcoind is started with by Node.Start, so the zero-setup path
// works out of the box.
const (
	DefaultHost    = "127.0.0.1:18443"
	DefaultUser    = "user"
	DefaultPass    = "pass"
	DefaultDataDir = "./bitcoind_regtest"
)

// Config holds everything the session manager and node lifecycle need:
// the RPC endpoint, the two wallet names, the transfer amount, and where
// the report goes. There is no hidden global state; callers construct a
// Config (usually from DefaultConfig plus CLI flags) and pass it in.
type Config struct {
	// Host is the RPC endpoint as host:port, without a scheme or wallet path.
	Host string

	// User and Pass are the RPC basic-auth credentials.
	User string
	Pass string

	// Network is the chain to run against. Only "regtest" is exercised,
	// but the value feeds straight into bitcoind's network flag.
	Network string

	// DataDir is the bitcoind data directory used when this process
	// manages the node itself.
	DataDir string

	// ExtraArgs are appended verbatim to the bitcoind command line.
	ExtraArgs []string

	// MinerWallet funds the transfer by mining; TraderWallet receives it.
	MinerWallet  string
	TraderWallet string

	// SendAmount is the transfer value in BTC.
	SendAmount float64

	// OutputPath is where the ten-line report is written.
	OutputPath string
}

// DefaultConfig returns the stock regtest setup: local node, default
// credentials, Miner/Trader wallets, a 20 BTC transfer, and out.txt in
// the working directory.
func DefaultConfig() *Config {
	return &Config{
		Host:         DefaultHost,
		User:         DefaultUser,
		Pass:         DefaultPass,
		Network:      "regtest",
		DataDir:      DefaultDataDir,
		MinerWallet:  "Miner",
		TraderWallet: "Trader",
		SendAmount:   20.0,
		OutputPath:   "out.txt",
	}
}

// Copy returns an independent copy, so callers can tweak a config
// without mutating the one they derived it from.
func (c *Config) Copy() *Config {
	dup := *c
	dup.ExtraArgs = append([]string(nil), c.ExtraArgs...)
	return &dup
}

// Validate reports the first problem that would make the run fail in a
// confusing way later.
func (c *Config) Validate() error {
	switch {
	case c.Host == "":
		return fmt.Errorf("rpc host is required")
	case c.User == "" || c.Pass == "":
		return fmt.Errorf("rpc credentials are required")
	case c.MinerWallet == "" || c.TraderWallet == "":
		return fmt.Errorf("both wallet names are required")
	case c.MinerWallet == c.TraderWallet:
		return fmt.Errorf("miner and trader wallets must differ, both are %q", c.MinerWallet)
	case c.SendAmount <= 0:
		return fmt.Errorf("send amount must be positive, got %v", c.SendAmount)
	case c.OutputPath == "":
		return fmt.Errorf("output path is required")
	}
	return nil
}
