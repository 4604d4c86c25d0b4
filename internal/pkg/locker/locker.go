package locker

import (
	"context"
	"fmt"
	"time"

	"rental-service/internal/pkg/errors"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// Locker serialises read-then-write sequences that span several queries.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type redsyncLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func New(client *redis.Client, expiry time.Duration) Locker {
	return &redsyncLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
	}
}

func (l *redsyncLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex(key,
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(20),
		redsync.WithRetryDelay(50*time.Millisecond),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.Conflict(fmt.Sprintf("resource %s is busy, try again", key))
	}

	return func() {
		// a failed unlock only means the lock already expired
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

func CarKey(carID int64) string {
	return fmt.Sprintf("lock:car:%d", carID)
}

func BookingPaymentKey(bookingID int64) string {
	return fmt.Sprintf("lock:booking-payment:%d", bookingID)
}
