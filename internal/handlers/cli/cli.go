package cli

import (
	"context"
	"os"

	"github.com/sahilsutar/txledger/internal/txhistory"
	"github.com/sahilsutar/txledger/internal/txledger"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the txledger CLI application.
//
// It registers all available commands, including:
//
//   - `ingest`: Fetches, classifies and records a transaction by its hash.
//   - `history`: Lists the recorded transactions involving an address.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - ing: The txledger service implementation used by the ingest command.
//   - hist: The txhistory service implementation used by the history command.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, ing txledger.Service, hist txhistory.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txledger",
		Description:           "Command-line interface for ingesting and querying classified blockchain transactions.",
		Usage:                 "txledger [command] [flags]",
		Commands: []*cli.Command{
			ingestTransactionCommand(ing),
			listTransactionHistoryCommand(hist),
		},
	}

	return app.Run(ctx, os.Args)
}
