package regtest

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
)

// Node manages the lifecycle of a bitcoind regtest process for the
// configured endpoint. The transfer workflow itself only needs a running
// node; Node exists so the CLI and the integration tests can bring one
// up without an external script.
type Node struct {
	cfg *Config

	// mu prevents concurrent start/stop attempts against the same
	// data directory.
	mu sync.Mutex
}

const (
	readyPollInterval = 250 * time.Millisecond
	readyTimeout      = 30 * time.Second
)

// NewNode returns a lifecycle manager for the node described by cfg.
func NewNode(cfg *Config) *Node {
	return &Node{cfg: cfg}
}

// args builds the bitcoind command line from the config. The fallback
// fee is required on regtest or sendtoaddress refuses to estimate one.
func (n *Node) args() []string {
	args := []string{
		"-" + n.cfg.Network,
		"-daemon",
		"-datadir=" + n.cfg.DataDir,
		"-rpcuser=" + n.cfg.User,
		"-rpcpassword=" + n.cfg.Pass,
		"-fallbackfee=0.0001",
	}
	if _, port, err := net.SplitHostPort(n.cfg.Host); err == nil {
		args = append(args, "-rpcport="+port)
	}
	return append(args, n.cfg.ExtraArgs...)
}

// Start launches bitcoind as a daemon and waits until RPC answers.
// Starting an already-running node is a no-op.
func (n *Node) Start() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.answering() {
		return nil
	}

	if err := os.MkdirAll(n.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create datadir %s: %w", n.cfg.DataDir, err)
	}

	cmd := exec.Command("bitcoind", n.args()...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to start bitcoind: %v: %s", err, string(output))
	}

	return n.waitReady()
}

// Stop asks the node to shut down via the RPC stop command.
func (n *Node) Stop() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	client, err := rpcclient.New(connConfig(n.cfg, ""), nil)
	if err != nil {
		return fmt.Errorf("connect for shutdown: %w", err)
	}
	defer client.Shutdown()

	if _, err := client.RawRequest("stop", nil); err != nil {
		return fmt.Errorf("failed to stop bitcoind: %w", err)
	}
	return nil
}

// IsRunning reports whether the node is up and answering RPC calls.
func (n *Node) IsRunning() (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.answering(), nil
}

// answering probes the RPC endpoint with a getblockcount. Callers hold mu.
func (n *Node) answering() bool {
	client, err := rpcclient.New(connConfig(n.cfg, ""), nil)
	if err != nil {
		return false
	}
	defer client.Shutdown()

	_, err = client.GetBlockCount()
	return err == nil
}

// waitReady polls until the freshly started daemon accepts RPC calls.
// Callers hold mu.
func (n *Node) waitReady() error {
	client, err := rpcclient.New(connConfig(n.cfg, ""), nil)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", n.cfg.Host, err)
	}
	defer client.Shutdown()

	deadline := time.Now().Add(readyTimeout)
	for {
		if _, err := client.GetBlockCount(); err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("bitcoind did not become ready within %s", readyTimeout)
		}
		time.Sleep(readyPollInterval)
	}
}
