package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmagro/zechub-cli/internal/chain"
	"github.com/dmagro/zechub-cli/internal/format"
)

// TxTypeFormatter prints a transaction classification.
type TxTypeFormatter struct {
	Classification chain.Classification
}

func (f *TxTypeFormatter) Format(w io.Writer) error {
	c := f.Classification
	fmt.Fprintf(w, "%s %s\n", format.Bold("Transaction:"), c.TxID)
	fmt.Fprintf(w, "%s %s\n", format.Bold("Type:"), format.Cyan(c.Kind.Describe()))
	pools := "none"
	if len(c.Pools) > 0 {
		pools = strings.Join(c.Pools, ", ")
	}
	_, err := fmt.Fprintf(w, "%s %s\n\n", format.Bold("Pools:"), pools)
	return err
}

// DateFormatter prints when a block or transaction was mined. A zero
// Timestamp means the item is not in a block yet.
type DateFormatter struct {
	Subject   string // "Block 419200", "Transaction abcd..."
	Timestamp int64
	Now       time.Time
}

func (f *DateFormatter) Format(w io.Writer) error {
	if f.Timestamp == 0 {
		_, err := fmt.Fprintf(w, "%s %s\n\n", format.Bold(f.Subject+":"), format.Yellow("unconfirmed (still in the mempool)"))
		return err
	}
	when := format.FormatTimestampAt(f.Timestamp, f.Now)
	if f.Now.IsZero() {
		when = format.FormatTimestamp(f.Timestamp)
	}
	_, err := fmt.Fprintf(w, "%s %s\n\n", format.Bold(f.Subject+" mined:"), when)
	return err
}

// MnemonicFormatter prints a recovery phrase as a numbered grid.
type MnemonicFormatter struct {
	Words []string
}

func (f *MnemonicFormatter) Format(w io.Writer) error {
	const perRow = 4
	fmt.Fprintf(w, "%s\n", format.Bold(fmt.Sprintf("%d-word mnemonic", len(f.Words))))
	for i, word := range f.Words {
		fmt.Fprint(w, format.PadRight(fmt.Sprintf("%2d. %s", i+1, word), 16))
		if (i+1)%perRow == 0 || i == len(f.Words)-1 {
			fmt.Fprintln(w)
		}
	}
	_, err := fmt.Fprintf(w, "%s\n\n", format.Yellow("Generated locally and never sent to the node. Store it offline."))
	return err
}
