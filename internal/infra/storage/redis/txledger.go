package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sahilsutar/txledger/internal/txledger"

	"github.com/redis/go-redis/v9"
)

const (
	// ingestKeyPrefix is the Redis key namespace used to track ingest claims
	// per transaction identifier.
	ingestKeyPrefix = "txledger"

	// ingestClaimDone is the terminal value stored once an identifier has
	// been fully ingested, making future claims unnecessary.
	ingestClaimDone = "done"
)

// ingestClaimKey builds the Redis key tracking the ingest state of a single
// transaction identifier.
//
// Format: "txledger:ingest:{identifier}"
func ingestClaimKey(identifier string) string {
	return fmt.Sprintf("%s:ingest:%s", ingestKeyPrefix, identifier)
}

// ClaimIngest attempts to claim exclusive rights to ingest the given
// identifier.
//
// Behavior:
//   - If the key is already marked "done", it returns txledger.ErrIngestAlreadyFinished.
//   - If the key exists but is not "done", it returns txledger.ErrIngestInProgress.
//   - Otherwise it reserves the claim with an empty value and the given TTL.
//
// The TTL bounds how long a crashed instance can block the identifier.
func (c *client) ClaimIngest(ctx context.Context, identifier string, ttl time.Duration) error {
	key := ingestClaimKey(identifier)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == ingestClaimDone {
		return txledger.ErrIngestAlreadyFinished
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return txledger.ErrIngestInProgress
	}

	return nil
}

// MarkIngestComplete marks the identifier as fully ingested by setting the
// claim key to "done" with no expiration, so it is never reprocessed.
func (c *client) MarkIngestComplete(ctx context.Context, identifier string) error {
	key := ingestClaimKey(identifier)
	return c.conn.Set(ctx, key, ingestClaimDone, 0).Err()
}

// ReleaseIngestClaim drops an in-progress claim so the identifier can be
// retried immediately (used when classification fails recoverably). A key
// already marked "done" is left untouched.
func (c *client) ReleaseIngestClaim(ctx context.Context, identifier string) error {
	key := ingestClaimKey(identifier)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	if val == ingestClaimDone {
		return nil
	}

	return c.conn.Del(ctx, key).Err()
}

// Ensure the client satisfies the IdempotencyGuard interface at compile time.
var _ txledger.IdempotencyGuard = (*client)(nil)
