package flow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullReport() *Report {
	return &Report{
		TxID:             testTxID,
		InputAddress:     minerAddr,
		InputAmount:      50.0,
		RecipientAddress: traderAddr,
		RecipientAmount:  20.0,
		ChangeAddress:    changeAddr,
		ChangeAmount:     29.9999859,
		Fee:              -0.0000141,
		BlockHeight:      102,
		BlockHash:        "3ba2b4e6c68d8a8ad94a2d186e8a1e1a1d7a7e8f4f2c55e1a27a4d5b3c9f41aa",
	}
}

func TestReport_LinesFixedOrder(t *testing.T) {
	lines := fullReport().Lines()
	assert.Equal(t, []string{
		testTxID,
		minerAddr,
		"50",
		traderAddr,
		"20",
		changeAddr,
		"29.9999859",
		"-0.0000141",
		"102",
		"3ba2b4e6c68d8a8ad94a2d186e8a1e1a1d7a7e8f4f2c55e1a27a4d5b3c9f41aa",
	}, lines)
}

func TestReport_DefaultsStillProduceTenLines(t *testing.T) {
	report := &Report{
		TxID:         testTxID,
		InputAddress: "unknown",
		BlockHash:    "unknown",
	}
	lines := report.Lines()
	require.Len(t, lines, 10)
	assert.Equal(t, "unknown", lines[1])
	assert.Equal(t, "0", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "0", lines[7])
	assert.Equal(t, "0", lines[8])
	assert.Equal(t, "unknown", lines[9])
}

func TestReport_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	report := fullReport()
	require.NoError(t, report.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasSuffix(content, "\n"), "report ends with a newline")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	assert.Equal(t, report.Lines(), lines)
}

func TestReport_WriteFileTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than the report\n"), 0o644))

	report := fullReport()
	require.NoError(t, report.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(report.Lines(), "\n")+"\n", string(data))
}

func TestReport_WriteFileErrorIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := fullReport().WriteFile(path)
	require.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20.0, "20"},
		{50.0, "50"},
		{0, "0"},
		{29.9999859, "29.9999859"},
		{-0.0000141, "-0.0000141"},
		{0.00000001, "0.00000001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in), "formatAmount(%v)", tt.in)
	}
}
