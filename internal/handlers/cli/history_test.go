package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sahilsutar/txledger/internal/txledger"
	txhistorytest "github.com/sahilsutar/txledger/internal/txhistory/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

const testAddress = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func TestListTransactionHistoryCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockService := txhistorytest.NewService(t)

		// Act
		cmd := listTransactionHistoryCommand(mockService)

		// Assert
		assert.Equal(t, "history", cmd.Name)
		assert.Len(t, cmd.Flags, 2)

		addressFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "address", addressFlag.Name)
		assert.True(t, addressFlag.Required)

		limitFlag := cmd.Flags[1].(*cli.IntFlag)
		assert.Equal(t, "limit", limitFlag.Name)
		assert.False(t, limitFlag.Required)
	})

	t.Run("should print the records involving the address", func(t *testing.T) {
		// Arrange
		mockService := txhistorytest.NewService(t)
		ctx := t.Context()

		records := []txledger.TransactionRecord{
			{
				Identifier: "0x3b198bfd5d2907285af009e9ae84a0ecd63677110d89d7e030251acb87f6487e",
				Sender:     testAddress,
				Recipient:  "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
				Amount:     "1.5",
				AssetName:  "USDT",
				Status:     txledger.StatusSuccess,
				ObservedAt: time.Unix(1_756_500_000, 0).UTC(),
			},
		}
		mockService.EXPECT().History(mock.Anything, testAddress, 20).Return(records, nil).Once()

		var out bytes.Buffer
		app := &cli.Command{
			Writer:   &out,
			Commands: []*cli.Command{listTransactionHistoryCommand(mockService)},
		}

		// Act
		err := app.Run(ctx, []string{"test", "history", "--address", testAddress, "--limit", "20"})

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out.String(), "USDT")
		assert.Contains(t, out.String(), testAddress)
	})

	t.Run("should pass a zero limit through when the flag is omitted", func(t *testing.T) {
		// Arrange
		mockService := txhistorytest.NewService(t)
		ctx := t.Context()

		mockService.EXPECT().History(mock.Anything, testAddress, 0).Return(nil, nil).Once()

		var out bytes.Buffer
		app := &cli.Command{
			Writer:   &out,
			Commands: []*cli.Command{listTransactionHistoryCommand(mockService)},
		}

		// Act
		err := app.Run(ctx, []string{"test", "history", "--address", testAddress})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should return error when the service fails", func(t *testing.T) {
		// Arrange
		mockService := txhistorytest.NewService(t)
		ctx := t.Context()
		expectedError := errors.New("service error")

		mockService.EXPECT().History(mock.Anything, testAddress, 0).Return(nil, expectedError).Once()

		app := &cli.Command{
			Commands: []*cli.Command{listTransactionHistoryCommand(mockService)},
		}

		// Act
		err := app.Run(ctx, []string{"test", "history", "--address", testAddress})

		// Assert
		assert.ErrorIs(t, err, expectedError)
	})

	t.Run("should fail when the address flag is missing", func(t *testing.T) {
		// Arrange
		mockService := txhistorytest.NewService(t)
		ctx := t.Context()

		app := &cli.Command{
			Commands: []*cli.Command{listTransactionHistoryCommand(mockService)},
		}

		// Act
		err := app.Run(ctx, []string{"test", "history"})

		// Assert
		assert.Error(t, err)
	})
}
