package flow

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Report is the extracted result of one confirmed transfer. It is built
// once per run and written once; fields that could not be resolved hold
// their sentinel defaults ("unknown", empty string, zero).
type Report struct {
	TxID             string
	InputAddress     string
	InputAmount      float64
	RecipientAddress string
	RecipientAmount  float64
	ChangeAddress    string
	ChangeAmount     float64
	Fee              float64
	BlockHeight      int64
	BlockHash        string
}

// Lines returns the report in its fixed ten-line order.
func (r *Report) Lines() []string {
	return []string{
		r.TxID,
		r.InputAddress,
		formatAmount(r.InputAmount),
		r.RecipientAddress,
		formatAmount(r.RecipientAmount),
		r.ChangeAddress,
		formatAmount(r.ChangeAmount),
		formatAmount(r.Fee),
		strconv.FormatInt(r.BlockHeight, 10),
		r.BlockHash,
	}
}

// WriteFile writes the ten lines to path, creating or truncating it.
func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.WriteString(strings.Join(r.Lines(), "\n") + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// formatAmount renders an amount the way the node reports it: the
// shortest decimal form that round-trips, no fixed precision (20.0
// becomes "20", fees keep their full fractional digits).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
