package commands

import "context"

// Operation is one menu entry. Prompt is the free-text argument label; an
// empty Prompt means the operation takes no argument.
type Operation struct {
	Name   string // subcommand name
	Label  string // menu label
	Short  string // subcommand help
	Prompt string
	Run    func(ctx context.Context, s *Session, arg string) error
}

// TakesArg reports whether the operation needs a block or txid.
func (op Operation) TakesArg() bool { return op.Prompt != "" }

const (
	blockPrompt = "Enter your block (height or hash)"
	txidPrompt  = "Enter your txid"
)

// ExitLabel is the last menu entry.
const ExitLabel = "Exit"

// Catalogue returns the operations in menu order.
func Catalogue() []Operation {
	return []Operation{
		{Name: "mnemonic", Label: "Display Mnemonic", Short: "Generate a 24-word BIP-39 recovery phrase", Run: DisplayMnemonic},
		{Name: "mempool", Label: "Visualize Mempool", Short: "Show the node's mempool", Run: VisualizeMempool},
		{Name: "chain", Label: "Blockchain Detail", Short: "Show getblockchaininfo", Run: BlockchainDetail},
		{Name: "supply", Label: "Extract Supply Info", Short: "Show ZEC supply by value pool", Run: SupplyInfo},
		{Name: "supply-at", Label: "Extract Supply Info at Block", Short: "Show ZEC supply by value pool at a block", Prompt: blockPrompt, Run: SupplyAtBlock},
		{Name: "txs", Label: "List Transactions of Block", Short: "List a block's txids, newest first", Prompt: blockPrompt, Run: ListTransactions},
		{Name: "tx", Label: "Transaction Detail", Short: "Show a decoded transaction", Prompt: txidPrompt, Run: TransactionDetail},
		{Name: "tx-type", Label: "Transaction Type", Short: "Classify a transaction by the pools it touches", Prompt: txidPrompt, Run: TransactionType},
		{Name: "tx-date", Label: "Transaction Date", Short: "Show when a transaction was mined", Prompt: txidPrompt, Run: TransactionDate},
		{Name: "block", Label: "Block Detail", Short: "Show a decoded block", Prompt: blockPrompt, Run: BlockDetail},
		{Name: "block-date", Label: "Block Date", Short: "Show when a block was mined", Prompt: blockPrompt, Run: BlockDate},
		{Name: "peers", Label: "Peer Details", Short: "List connected peer addresses", Run: PeerDetails},
	}
}

// MenuLabels returns the operation labels followed by ExitLabel.
func MenuLabels(ops []Operation) []string {
	labels := make([]string, 0, len(ops)+1)
	for _, op := range ops {
		labels = append(labels, op.Label)
	}
	return append(labels, ExitLabel)
}
