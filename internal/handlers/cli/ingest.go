package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sahilsutar/txledger/internal/txledger"

	"github.com/urfave/cli/v3"
)

// ingestTransactionCommand returns a CLI command that fetches a transaction by
// hash, classifies it and records it in the ledger.
//
// Usage example:
//
//	txledger ingest --hash 0xABC123...
func ingestTransactionCommand(ing txledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "ingest",
		Description: "Fetch a transaction by hash, classify it and record it in the ledger.",
		Usage:       "Ingests a single transaction. Must provide the transaction hash.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Transaction hash to ingest (0x-prefixed, 66 characters)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			hash := c.String("hash")

			res, err := ing.Ingest(ctx, hash)
			if err != nil {
				if errors.Is(err, txledger.ErrTransactionNotMined) {
					fmt.Fprintf(c.Writer, "transaction %s is not mined yet, try again later\n", hash)
					return nil
				}

				return err
			}

			if res.AlreadyLogged {
				fmt.Fprintf(c.Writer, "transaction %s is already recorded\n", hash)
				return nil
			}

			return printRecord(c, res.Record)
		},
	}
}

// printRecord writes a single transaction record to the command's output
// stream as indented JSON.
func printRecord(c *cli.Command, record any) error {
	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Writer, string(out))
	return err
}
