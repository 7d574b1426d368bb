package flow

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neverDefined/regtestflow/regtest"
)

// TestRPC_FullWorkflow runs the whole flow against a throwaway bitcoind
// and checks the report contract end to end.
func TestRPC_FullWorkflow(t *testing.T) {
	if _, err := exec.LookPath("bitcoind"); err != nil {
		t.Skip("bitcoind not installed; skipping live workflow test")
	}

	cfg := regtest.DefaultConfig()
	cfg.Host = "127.0.0.1:19445"
	cfg.DataDir = t.TempDir()
	cfg.OutputPath = filepath.Join(t.TempDir(), "out.txt")

	node := regtest.NewNode(cfg)
	require.NoError(t, node.Start())
	defer node.Stop()

	require.NoError(t, Run(cfg, testLogger()))

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 10)

	// txid and input address come from the node, never the sentinels.
	assert.Len(t, lines[0], 64)
	assert.NotEqual(t, "unknown", lines[1])

	// On a fresh chain the transfer spends a single 50 BTC coinbase
	// output and pays exactly the configured amount.
	assert.Equal(t, "50", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "bcrt1"), "recipient address should be a regtest bech32 address, got %s", lines[3])
	assert.Equal(t, "20", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "bcrt1"), "change address should be a regtest bech32 address, got %s", lines[5])

	change, err := strconv.ParseFloat(lines[6], 64)
	require.NoError(t, err)
	assert.Greater(t, change, 29.0)
	assert.Less(t, change, 30.0)

	fee, err := strconv.ParseFloat(lines[7], 64)
	require.NoError(t, err)
	assert.Negative(t, fee)

	height, err := strconv.Atoi(lines[8])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, height, 102)

	assert.Len(t, lines[9], 64)

	// Re-running extraction on the confirmed transaction must be
	// idempotent: same txid, identical report.
	sess, err := regtest.NewSession(cfg)
	require.NoError(t, err)
	defer sess.Close()
	miner, err := sess.Wallet(cfg.MinerWallet)
	require.NoError(t, err)

	first, err := Extract(miner, lines[0], lines[3])
	require.NoError(t, err)
	second, err := Extract(miner, lines[0], lines[3])
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, lines, first.Lines())
}
