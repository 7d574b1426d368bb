package flow

import (
	"fmt"

	"github.com/neverDefined/regtestflow/regtest"
)

// unknownField is the sentinel for string fields the node did not provide.
const unknownField = "unknown"

// Extract builds the report for a confirmed transaction: fee, block
// metadata, the funding output behind the first input, and the outputs
// classified as recipient or change. Extraction is best-effort by
// design — fields the node omits fall back to sentinels rather than
// failing the run — and idempotent: the same txid yields the same report.
func Extract(txs TxFetcher, txid, recipientAddr string) (*Report, error) {
	tx, err := txs.Transaction(txid)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction %s: %w", txid, err)
	}

	report := &Report{
		TxID:         txid,
		InputAddress: unknownField,
		BlockHash:    unknownField,
	}
	if tx.Fee != nil {
		report.Fee = *tx.Fee
	}
	if tx.BlockHeight != nil {
		report.BlockHeight = *tx.BlockHeight
	}
	if tx.BlockHash != "" {
		report.BlockHash = tx.BlockHash
	}

	if err := resolveInput(txs, tx, report); err != nil {
		return nil, err
	}
	classifyOutputs(tx, recipientAddr, report)
	return report, nil
}

// resolveInput traces the first input to the output it spends and fills
// in the input address and amount. A transaction without a traceable
// input (coinbase, or missing decoded detail) leaves the sentinels in
// place; only a failed RPC fetch is an error.
func resolveInput(txs TxFetcher, tx *regtest.WalletTransaction, report *Report) error {
	if tx.Decoded == nil || len(tx.Decoded.Vin) == 0 {
		return nil
	}
	in := tx.Decoded.Vin[0]
	if in.TxID == "" {
		return nil
	}

	funding, err := txs.Transaction(in.TxID)
	if err != nil {
		return fmt.Errorf("fetch funding transaction %s: %w", in.TxID, err)
	}
	if funding.Decoded == nil || int(in.Vout) >= len(funding.Decoded.Vout) {
		return nil
	}

	out := funding.Decoded.Vout[in.Vout]
	report.InputAddress = ResolveScriptAddress(&out.ScriptPubKey)
	if out.Value != nil {
		report.InputAmount = *out.Value
	}
	return nil
}

// ResolveScriptAddress picks the display form of an output's destination:
// the structured address when the node provides one, the script assembly
// text otherwise, and "unknown" when the script carries neither.
func ResolveScriptAddress(spk *regtest.ScriptPubKey) string {
	switch {
	case spk == nil:
		return unknownField
	case spk.Address != "":
		return spk.Address
	case spk.Asm != "":
		return spk.Asm
	default:
		return unknownField
	}
}

// classifyOutputs walks the decoded outputs and records the recipient
// output (address equals recipientAddr) and the change output (any other
// address). Outputs without a numeric value or a structured address are
// skipped. The loop keeps the LAST match per category; a transaction with
// several non-recipient outputs reports only the final one, change is not
// aggregated. Known limitation, kept to match the established report
// contract.
func classifyOutputs(tx *regtest.WalletTransaction, recipientAddr string, report *Report) {
	if tx.Decoded == nil {
		return
	}
	for _, out := range tx.Decoded.Vout {
		if out.Value == nil || out.ScriptPubKey.Address == "" {
			continue
		}
		if out.ScriptPubKey.Address == recipientAddr {
			report.RecipientAddress = out.ScriptPubKey.Address
			report.RecipientAmount = *out.Value
		} else {
			report.ChangeAddress = out.ScriptPubKey.Address
			report.ChangeAmount = *out.Value
		}
	}
}
