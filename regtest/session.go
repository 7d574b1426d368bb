package regtest

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/rpcclient"
)

// WalletStatus reports how EnsureWallet made a wallet available.
type WalletStatus int

const (
	// WalletCreated means the wallet did not exist and was created.
	WalletCreated WalletStatus = iota
	// WalletLoaded means the wallet already existed; a load was attempted
	// best-effort since it may have been loaded already.
	WalletLoaded
)

func (s WalletStatus) String() string {
	switch s {
	case WalletCreated:
		return "created"
	case WalletLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("WalletStatus(%d)", int(s))
	}
}

// Session manages the RPC connections for one run: a node-level client
// plus one client per wallet, scoped via the /wallet/<name> endpoint.
// Sessions are safe for concurrent use, though the workflow itself is
// strictly sequential.
type Session struct {
	cfg  *Config
	node *rpcclient.Client

	mu      sync.Mutex
	wallets map[string]*WalletSession
}

// connConfig builds the rpcclient configuration for the node endpoint,
// or for a wallet endpoint when name is non-empty.
func connConfig(cfg *Config, wallet string) *rpcclient.ConnConfig {
	host := cfg.Host
	if wallet != "" {
		host = cfg.Host + "/wallet/" + wallet
	}
	return &rpcclient.ConnConfig{
		Host:         host,
		User:         cfg.User,
		Pass:         cfg.Pass,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
}

// NewSession connects the node-level client. Wallet clients are created
// on first use via Wallet.
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	node, err := rpcclient.New(connConfig(cfg, ""), nil)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Host, err)
	}
	return &Session{
		cfg:     cfg,
		node:    node,
		wallets: make(map[string]*WalletSession),
	}, nil
}

// Client exposes the node-level rpcclient for calls the session does not
// wrap.
func (s *Session) Client() *rpcclient.Client { return s.node }

// HealthCheck verifies the node is reachable and answering.
func (s *Session) HealthCheck() error {
	if _, err := s.node.GetBlockCount(); err != nil {
		return fmt.Errorf("node health check: %w", err)
	}
	return nil
}

// EnsureWallet makes a named wallet available: it creates the wallet,
// and when the wallet already exists it falls back to loading it. The
// load is best-effort because bitcoind keeps wallets loaded across RPC
// sessions and reports a re-load as an error. Any creation failure other
// than "already exists" is returned and should abort the run.
func (s *Session) EnsureWallet(name string) (WalletStatus, error) {
	_, err := s.node.CreateWallet(name)
	if err == nil {
		return WalletCreated, nil
	}
	if !isWalletExistsErr(err) {
		return 0, fmt.Errorf("create wallet %q: %w", name, err)
	}
	_, _ = s.node.LoadWallet(name)
	return WalletLoaded, nil
}

// UnloadWallet unloads a wallet, mostly useful for test cleanup.
func (s *Session) UnloadWallet(name string) error {
	if err := s.node.UnloadWallet(&name); err != nil {
		return fmt.Errorf("unload wallet %q: %w", name, err)
	}
	return nil
}

// Wallet returns the session for a named wallet, connecting it on first
// use. The wallet should already be available via EnsureWallet.
func (s *Session) Wallet(name string) (*WalletSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ws, ok := s.wallets[name]; ok {
		return ws, nil
	}
	client, err := rpcclient.New(connConfig(s.cfg, name), nil)
	if err != nil {
		return nil, fmt.Errorf("connect wallet %q: %w", name, err)
	}
	ws := newWalletSession(name, client)
	s.wallets[name] = ws
	return ws, nil
}

// Close shuts down the node client and every wallet client.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ws := range s.wallets {
		ws.client.Shutdown()
	}
	s.wallets = make(map[string]*WalletSession)
	s.node.Shutdown()
}

// isWalletExistsErr reports whether a createwallet failure means the
// wallet is already on disk. bitcoind signals this as a generic wallet
// error (code -4), so the message is checked as well; the plain substring
// fallback covers errors the transport did not surface as an RPCError.
func isWalletExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Code == btcjson.ErrRPCWallet &&
			strings.Contains(rpcErr.Message, "already exists")
	}
	return strings.Contains(err.Error(), "already exists")
}
