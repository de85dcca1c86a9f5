package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sahilsutar/txledger/internal/txledger"
	txledgertest "github.com/sahilsutar/txledger/internal/txledger/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

const testHash = "0x3b198bfd5d2907285af009e9ae84a0ecd63677110d89d7e030251acb87f6487e"

func TestIngestTransactionCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockService := txledgertest.NewService(t)

		// Act
		cmd := ingestTransactionCommand(mockService)

		// Assert
		assert.Equal(t, "ingest", cmd.Name)
		assert.Len(t, cmd.Flags, 1)

		hashFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "hash", hashFlag.Name)
		assert.True(t, hashFlag.Required)
	})

	t.Run("should print the stored record on first ingestion", func(t *testing.T) {
		// Arrange
		mockService := txledgertest.NewService(t)
		ctx := t.Context()

		record := txledger.TransactionRecord{
			Identifier:  testHash,
			Sender:      "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			Recipient:   "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			Amount:      "1.5",
			AssetName:   "BNB",
			BlockHeight: 16,
			Status:      txledger.StatusSuccess,
			ObservedAt:  time.Unix(1_756_500_000, 0).UTC(),
		}
		mockService.EXPECT().Ingest(mock.Anything, testHash).Return(txledger.IngestResult{Record: record}, nil).Once()

		var out bytes.Buffer
		app := &cli.Command{
			Writer:   &out,
			Commands: []*cli.Command{ingestTransactionCommand(mockService)},
		}

		// Act
		err := app.Run(ctx, []string{"test", "ingest", "--hash", testHash})

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out.String(), testHash)
		assert.Contains(t, out.String(), "1.5")
		assert.Contains(t, out.String(), "BNB")
	})

	t.Run("should report an already recorded transaction without failing", func(t *testing.T) {
		// Arrange
		mockService := txledgertest.NewService(t)
		ctx := t.Context()

		mockService.EXPECT().Ingest(mock.Anything, testHash).Return(txledger.IngestResult{AlreadyLogged: true}, nil).Once()

		var out bytes.Buffer
		app := &cli.Command{
			Writer:   &out,
			Commands: []*cli.Command{ingestTransactionCommand(mockService)},
		}

		// Act
		err := app.Run(ctx, []string{"test", "ingest", "--hash", testHash})

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out.String(), "already recorded")
	})

	t.Run("should report a not yet mined transaction without failing", func(t *testing.T) {
		// Arrange
		mockService := txledgertest.NewService(t)
		ctx := t.Context()

		mockService.EXPECT().Ingest(mock.Anything, testHash).Return(txledger.IngestResult{}, txledger.ErrTransactionNotMined).Once()

		var out bytes.Buffer
		app := &cli.Command{
			Writer:   &out,
			Commands: []*cli.Command{ingestTransactionCommand(mockService)},
		}

		// Act
		err := app.Run(ctx, []string{"test", "ingest", "--hash", testHash})

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out.String(), "not mined yet")
	})

	t.Run("should return error when the service fails", func(t *testing.T) {
		// Arrange
		mockService := txledgertest.NewService(t)
		ctx := t.Context()
		expectedError := errors.New("service error")

		mockService.EXPECT().Ingest(mock.Anything, testHash).Return(txledger.IngestResult{}, expectedError).Once()

		app := &cli.Command{
			Commands: []*cli.Command{ingestTransactionCommand(mockService)},
		}

		// Act
		err := app.Run(ctx, []string{"test", "ingest", "--hash", testHash})

		// Assert
		assert.ErrorIs(t, err, expectedError)
	})
}
