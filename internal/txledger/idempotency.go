package txledger

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrIngestInProgress indicates that another instance is currently
	// ingesting the same transaction.
	ErrIngestInProgress = errors.New("ingestion still in progress")

	// ErrIngestAlreadyFinished indicates that the transaction has already
	// been ingested and recorded.
	ErrIngestAlreadyFinished = errors.New("ingestion already finished")
)

// IdempotencyGuard coordinates concurrent ingestion of the same transaction
// identifier across instances, typically backed by durable or distributed
// storage (e.g., Redis).
//
// The guard is strictly an optimization: it shaves redundant chain reads when
// the same identifier is ingested concurrently. Correctness never depends on
// it; the ledger's upsert alone guarantees that duplicate ingestions converge
// to a single stored record.
type IdempotencyGuard interface {
	// ClaimIngest attempts to claim exclusive rights to ingest the given
	// identifier. The claim is time-bound via ttl so a crashed instance
	// cannot block the identifier forever.
	//
	// Returns nil if the claim was acquired, ErrIngestInProgress if another
	// instance holds the claim, ErrIngestAlreadyFinished if the identifier
	// was fully ingested before, or any other error on guard failure.
	ClaimIngest(ctx context.Context, identifier string, ttl time.Duration) error

	// MarkIngestComplete records that the identifier was fully ingested,
	// making future claims report ErrIngestAlreadyFinished.
	MarkIngestComplete(ctx context.Context, identifier string) error

	// ReleaseIngestClaim drops an in-progress claim without marking it
	// complete, so the identifier can be retried immediately. Used when
	// classification fails recoverably (e.g., the transaction is not mined
	// yet).
	ReleaseIngestClaim(ctx context.Context, identifier string) error
}

// nopIdempotencyGuard treats every identifier as unclaimed. It never stores
// state and is the default when no guard is configured; duplicate concurrent
// ingestions are then absorbed by the ledger upsert alone.
type nopIdempotencyGuard struct{}

var _ IdempotencyGuard = (*nopIdempotencyGuard)(nil)

func (nopIdempotencyGuard) ClaimIngest(ctx context.Context, identifier string, ttl time.Duration) error {
	return nil
}

func (nopIdempotencyGuard) MarkIngestComplete(ctx context.Context, identifier string) error {
	return nil
}

func (nopIdempotencyGuard) ReleaseIngestClaim(ctx context.Context, identifier string) error {
	return nil
}
