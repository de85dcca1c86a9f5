// Package txledger implements the transaction ingestion and classification
// pipeline: given a transaction hash, it fetches the on-chain receipt and
// metadata, determines whether the transaction moved native coin or a token,
// resolves the transferred asset's display name and decimal-adjusted amount,
// and persists the result exactly once regardless of how many times ingestion
// is requested concurrently for the same hash.
package txledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sahilsutar/txledger/internal/pkg/logger"
	"github.com/sahilsutar/txledger/internal/pkg/resilience/retry"
	"github.com/sahilsutar/txledger/internal/pkg/validator"
)

// defaultNativeSymbol labels plain value transfers when no symbol is
// configured.
const defaultNativeSymbol = "BNB"

// defaultClaimTTL bounds how long an ingest claim can block a retry when the
// claiming instance dies mid-flight.
const defaultClaimTTL = time.Minute

// IngestResult is the outcome of an ingestion request. Exactly one of the two
// shapes is meaningful: AlreadyLogged set with a zero Record, or a populated
// Record for a freshly stored transaction.
type IngestResult struct {
	AlreadyLogged bool              // The identifier was recorded before; nothing was written
	Record        TransactionRecord // The stored record, when freshly ingested
}

// Service is the ingestion boundary exposed to hosting layers.
type Service interface {
	// Ingest records the transaction with the given hash exactly once.
	//
	// It returns an IngestResult with AlreadyLogged set when the hash was
	// recorded before (the chain is not re-read), or with the stored record
	// on first ingestion. ErrTransactionNotMined is returned untouched when
	// the transaction has no receipt yet; callers should retry later.
	Ingest(ctx context.Context, hash string) (IngestResult, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	chain  ChainReader
	assets AssetResolver
	ledger LedgerStorage

	guard        IdempotencyGuard
	retry        retry.Retry
	nativeSymbol string
	claimTTL     time.Duration
}

var _ Service = (*service)(nil)

// config holds the optional settings applied by New.
type config struct {
	guard        IdempotencyGuard
	retry        retry.Retry
	nativeSymbol string
	claimTTL     time.Duration
}

// Option configures the ingestion service.
type Option func(*config)

// New creates the ingestion service from its three collaborators: the chain
// reader, the asset resolver, and the ledger storage. Optional behavior
// (idempotency guard, retry policy, native coin symbol) is supplied through
// functional options.
func New(cr ChainReader, ar AssetResolver, ls LedgerStorage, opts ...Option) *service {
	cfg := config{
		guard:        nopIdempotencyGuard{},
		retry:        nil,
		nativeSymbol: defaultNativeSymbol,
		claimTTL:     defaultClaimTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain:        cr,
		assets:       ar,
		ledger:       ls,
		guard:        cfg.guard,
		retry:        cfg.retry,
		nativeSymbol: cfg.nativeSymbol,
		claimTTL:     cfg.claimTTL,
	}
}

// WithIdempotencyGuard installs a distributed claim guard that skips
// redundant chain reads when the same hash is ingested concurrently across
// instances. Without it, duplicates are absorbed by the ledger upsert alone.
func WithIdempotencyGuard(g IdempotencyGuard) Option {
	return func(c *config) {
		c.guard = g
	}
}

// WithRetry applies the given retry policy to every individual chain read.
// A missing receipt is never retried through it; "not yet mined" is the
// caller's retry, not ours.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithNativeSymbol sets the display symbol recorded for plain value
// transfers of the chain's native coin. Default: "BNB".
func WithNativeSymbol(symbol string) Option {
	return func(c *config) {
		c.nativeSymbol = symbol
	}
}

// WithClaimTTL bounds the lifetime of an ingest claim held by the
// idempotency guard. Default: one minute.
func WithClaimTTL(d time.Duration) Option {
	return func(c *config) {
		c.claimTTL = d
	}
}

// ingestRequest is the validated ingestion input.
type ingestRequest struct {
	Hash string `validate:"required,len=66,startswith=0x"`
}

// buildIngestRequest canonicalizes and validates the raw hash input.
func buildIngestRequest(hash string) (ingestRequest, error) {
	req := ingestRequest{
		Hash: strings.ToLower(strings.TrimSpace(hash)),
	}

	return req, validator.Validate(req)
}

// Ingest implements the Service interface.
//
// The existence check and the eventual upsert are deliberately not one atomic
// transaction: two concurrent ingestions of the same unseen hash may both
// pass the check, both classify, and both upsert. The ledger's last-write-wins
// upsert makes that race converge to a single stored record with no error
// surfaced to either caller.
func (s *service) Ingest(ctx context.Context, hash string) (IngestResult, error) {
	req, err := buildIngestRequest(hash)
	if err != nil {
		return IngestResult{}, err
	}
	identifier := req.Hash

	claimed := false
	if err := s.guard.ClaimIngest(ctx, identifier, s.claimTTL); err != nil {
		switch {
		case errors.Is(err, ErrIngestAlreadyFinished):
			return IngestResult{AlreadyLogged: true}, nil
		case errors.Is(err, ErrIngestInProgress):
			// Another instance is mid-flight on the same hash. Proceeding is
			// safe (the upsert converges) and keeps the guard advisory.
		default:
			return IngestResult{}, err
		}
	} else {
		claimed = true
	}

	exists, err := s.ledger.Exists(ctx, identifier)
	if err != nil {
		s.releaseClaim(ctx, identifier, claimed)
		return IngestResult{}, err
	}

	if exists {
		if claimed {
			if err := s.guard.MarkIngestComplete(ctx, identifier); err != nil {
				logger.Warn(ctx, "failed to mark ingestion complete", "tx.hash", identifier, "error", err)
			}
		}
		return IngestResult{AlreadyLogged: true}, nil
	}

	record, err := s.classify(ctx, identifier)
	if err != nil {
		s.releaseClaim(ctx, identifier, claimed)
		return IngestResult{}, err
	}

	stored, err := s.ledger.Upsert(ctx, record)
	if err != nil {
		s.releaseClaim(ctx, identifier, claimed)
		return IngestResult{}, err
	}

	if claimed {
		if err := s.guard.MarkIngestComplete(ctx, identifier); err != nil {
			logger.Warn(ctx, "failed to mark ingestion complete", "tx.hash", identifier, "error", err)
		}
	}

	logger.Info(ctx, "transaction recorded",
		"tx.hash", stored.Identifier,
		"tx.asset", stored.AssetName,
		"tx.amount", stored.Amount,
		"tx.status", stored.Status,
	)

	return IngestResult{Record: stored}, nil
}

// releaseClaim drops an in-progress guard claim after a failed ingestion so
// the identifier can be retried without waiting out the TTL. Guard failures
// here are logged, not surfaced: the original error matters more.
func (s *service) releaseClaim(ctx context.Context, identifier string, claimed bool) {
	if !claimed {
		return
	}

	if err := s.guard.ReleaseIngestClaim(ctx, identifier); err != nil {
		logger.Warn(ctx, "failed to release ingest claim", "tx.hash", identifier, "error", err)
	}
}
