package cli

import (
	"context"

	"github.com/sahilsutar/txledger/internal/txhistory"

	"github.com/urfave/cli/v3"
)

// listTransactionHistoryCommand returns a CLI command that lists the recorded
// transactions where a given address appears as sender or recipient, most
// recent first.
//
// Usage example:
//
//	txledger history --address 0xABC123... --limit 20
func listTransactionHistoryCommand(hist txhistory.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "List the recorded transactions involving an address, most recent first.",
		Usage:       "Queries the ledger by address. Must provide the address; limit is optional.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Account address to query (0x-prefixed, 42 characters)",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of records to return (defaults to 50)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				address = c.String("address")
				limit   = c.Int("limit")
			)

			records, err := hist.History(ctx, address, int(limit))
			if err != nil {
				return err
			}

			return printRecord(c, records)
		},
	}
}
