package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/zechub-cli/internal/format"
	"github.com/dmagro/zechub-cli/internal/supply"
)

// ChainSupplyFormatter prints the chain-wide pool breakdown.
type ChainSupplyFormatter struct {
	Supply supply.ChainSupply
}

func (f *ChainSupplyFormatter) Format(w io.Writer) error {
	s := f.Supply
	fmt.Fprintf(w, "%s %s  %s #%s\n", format.Bold("Chain:"), s.Chain, format.Bold("Height:"), format.FormatNumber(s.Height))
	fmt.Fprintf(w, "%s %s\n\n", format.Bold("Size of Zebra node on disk:"), format.FormatBytes(s.SizeOnDisk))

	tbl := poolTable(w, s.PoolValues)
	tbl.AddRow("Total Supply", format.FormatZEC(s.Total))
	tbl.AddRow("Shielded Supply", format.FormatZEC(s.Shielded))
	tbl.Print()

	_, err := fmt.Fprintln(w)
	return err
}

// BlockSupplyFormatter prints the pool breakdown recorded at one block.
type BlockSupplyFormatter struct {
	Supply supply.BlockSupply
}

func (f *BlockSupplyFormatter) Format(w io.Writer) error {
	fmt.Fprintf(w, "%s #%s\n\n", format.Bold("At block:"), format.FormatNumber(f.Supply.Height))

	poolTable(w, f.Supply.PoolValues).Print()

	_, err := fmt.Fprintln(w)
	return err
}

func poolTable(w io.Writer, p supply.PoolValues) table.Table {
	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Pool", "ZEC").WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	tbl.AddRow("Transparent Pool", format.FormatZEC(p.Transparent))
	tbl.AddRow("Sprout Pool", format.FormatZEC(p.Sprout))
	tbl.AddRow("Sapling Pool", format.FormatZEC(p.Sapling))
	tbl.AddRow("Orchard Pool", format.FormatZEC(p.Orchard))
	tbl.AddRow("Lockbox", format.FormatZEC(p.Lockbox))
	return tbl
}
