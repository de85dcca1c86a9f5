package txledger

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/sahilsutar/txledger/internal/pkg/logger"
	"github.com/sahilsutar/txledger/internal/pkg/resilience/retry"
	"github.com/shopspring/decimal"
)

// receiptStatusSuccess is the chain's execution success sentinel.
const receiptStatusSuccess = int64(1)

// classify produces a normalized TransactionRecord for the given canonical
// identifier. It is a pure function of the identifier at a point in time:
// it reads the chain but performs no persistence and keeps no state.
//
// It fails with ErrTransactionNotMined when no receipt exists yet. Asset
// resolution failures are recovered locally by falling back to a sentinel
// asset name; they never abort the classification.
func (s *service) classify(ctx context.Context, identifier string) (TransactionRecord, error) {
	var receipt Receipt
	err := s.readChain(ctx, func() error {
		r, err := s.chain.TransactionReceipt(ctx, identifier)
		if err != nil {
			if errors.Is(err, ErrTransactionNotMined) {
				return retry.Unrecoverable(err)
			}
			return err
		}

		receipt = r
		return nil
	})
	if err != nil {
		return TransactionRecord{}, err
	}

	var block BlockHeader
	err = s.readChain(ctx, func() error {
		b, err := s.chain.BlockByNumber(ctx, receipt.BlockNumber)
		if err != nil {
			return err
		}

		block = b
		return nil
	})
	if err != nil {
		return TransactionRecord{}, err
	}

	var body TransactionBody
	err = s.readChain(ctx, func() error {
		t, err := s.chain.TransactionByHash(ctx, identifier)
		if err != nil {
			return err
		}

		body = t
		return nil
	})
	if err != nil {
		return TransactionRecord{}, err
	}

	var (
		amount    = "0"
		assetName string
		recipient = receipt.To
	)

	if isNativeTransfer(body.Input) {
		amount = scaleAmount(body.Value.BigInt(), nativeCoinDecimals)
		assetName = s.nativeSymbol
	} else if entry, found := findTransferLog(receipt); found {
		transfer := decodeTransferLog(entry)

		// The event's beneficiary wins over the receipt's top-level "to":
		// when the top-level recipient is a router contract, the true
		// beneficiary only appears in the event.
		recipient = transfer.To

		asset, err := s.assets.ResolveAsset(ctx, entry.Address)
		if err != nil {
			logger.Warn(ctx, "asset resolution failed, recording with sentinel name",
				"tx.hash", identifier,
				"token.contract", entry.Address,
				"error", err,
			)

			// Without decimals the raw value cannot be scaled honestly,
			// so it is stored undivided.
			amount = transfer.RawValue.String()
			assetName = assetNameUnknown
		} else {
			amount = scaleAmount(transfer.RawValue, asset.Decimals)
			assetName = asset.Symbol
		}
	} else {
		assetName = assetNameContractCall
	}

	if recipient == "" {
		recipient = receipt.To
	}

	status := StatusFailed
	if receipt.Status.Int() == receiptStatusSuccess {
		status = StatusSuccess
	}

	return TransactionRecord{
		Identifier:  identifier,
		Sender:      strings.ToLower(receipt.From),
		Recipient:   strings.ToLower(recipient),
		Amount:      amount,
		AssetName:   assetName,
		BlockHeight: receipt.BlockNumber.Int(),
		Status:      status,
		ObservedAt:  time.Unix(block.Timestamp.Int(), 0).UTC(),
	}, nil
}

// readChain runs a single chain read, applying the configured retry policy
// when one is set.
func (s *service) readChain(ctx context.Context, read func() error) error {
	if s.retry == nil {
		return read()
	}

	return s.retry.Execute(ctx, read)
}

// isNativeTransfer reports whether the transaction carries no call data and
// is therefore a plain value transfer of the native coin.
func isNativeTransfer(input string) bool {
	return input == "" || input == "0x"
}

// scaleAmount converts a raw on-chain integer into a human-readable decimal
// string by shifting the decimal point left by the asset's precision. The
// shift is exact; no floating-point arithmetic is involved.
func scaleAmount(raw *big.Int, decimals uint8) string {
	return decimal.NewFromBigInt(raw, -int32(decimals)).String()
}
