package implementation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFileStore struct {
	calls int
	err   error
}

// SignedURL reports a distinct expiry per signing so cache hits are visible.
func (s *countingFileStore) SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, time.Time, error) {
	s.calls++
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return "https://signed/" + objectPath, time.Unix(int64(s.calls), 0).Add(ttl), nil
}

func TestCachedFileStore_ReusesURL(t *testing.T) {
	ctx := context.Background()
	next := &countingFileStore{}
	store := NewCachedFileStore(next)
	ttl := 15 * time.Minute

	for i := 0; i < 3; i++ {
		url, expiresAt, err := store.SignedURL(ctx, "worker_documents/w1/hojaDeVida/cv.pdf", ttl)
		require.NoError(t, err)
		assert.Equal(t, "https://signed/worker_documents/w1/hojaDeVida/cv.pdf", url)
		assert.Equal(t, time.Unix(1, 0).Add(ttl), expiresAt, "a hit keeps the expiry of the first signing")
	}
	assert.Equal(t, 1, next.calls)

	_, expiresAt, err := store.SignedURL(ctx, "worker_documents/w1/hojaDeVida/cv.pdf", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls, "a different ttl signs again")
	assert.Equal(t, time.Unix(2, 0).Add(time.Hour), expiresAt)
}

func TestCachedFileStore_DoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	next := &countingFileStore{err: errors.New("boom")}
	store := NewCachedFileStore(next)

	_, _, err := store.SignedURL(ctx, "a.pdf", time.Minute)
	assert.Error(t, err)
	_, _, err = store.SignedURL(ctx, "a.pdf", time.Minute)
	assert.Error(t, err)
	assert.Equal(t, 2, next.calls)
}
