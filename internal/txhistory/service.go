// Package txhistory exposes the ledger's address history query: the ordered
// list of recorded transactions in which an address appears as sender or
// recipient.
package txhistory

import (
	"context"
	"strings"

	"github.com/sahilsutar/txledger/internal/pkg/validator"
	"github.com/sahilsutar/txledger/internal/txledger"
)

// defaultHistoryLimit caps the result set when the caller does not provide a
// positive limit.
const defaultHistoryLimit = 50

// Service answers address history queries against the ledger.
type Service interface {
	// History returns the records involving the given address, most recent
	// confirming time first. The address comparison is case-insensitive:
	// the input is canonicalized before querying, and the ledger only ever
	// stores lowercase addresses. A non-positive limit falls back to the
	// default of 50.
	History(ctx context.Context, address string, limit int) ([]txledger.TransactionRecord, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	ledger LedgerStorage
}

var _ Service = (*service)(nil)

// New creates a history service backed by the given ledger storage.
func New(ls LedgerStorage) *service {
	return &service{
		ledger: ls,
	}
}

// historyRequest is the validated query input.
type historyRequest struct {
	Address string `validate:"required,len=42,startswith=0x"`
	Limit   int
}

// buildHistoryRequest canonicalizes and validates the raw query input.
func buildHistoryRequest(address string, limit int) (historyRequest, error) {
	req := historyRequest{
		Address: strings.ToLower(strings.TrimSpace(address)),
		Limit:   limit,
	}

	return req, validator.Validate(req)
}

// History implements the Service interface.
func (s *service) History(ctx context.Context, address string, limit int) ([]txledger.TransactionRecord, error) {
	req, err := buildHistoryRequest(address, limit)
	if err != nil {
		return nil, err
	}

	if req.Limit <= 0 {
		req.Limit = defaultHistoryLimit
	}

	return s.ledger.ListByAddress(ctx, req.Address, req.Limit)
}
