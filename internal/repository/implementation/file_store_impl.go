package implementation

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/patrickmn/go-cache"
)

type firebaseFileStore struct {
	bucket *gcs.BucketHandle
}

// NewFirebaseFileStore signs URLs against the app's default storage bucket.
func NewFirebaseFileStore(ctx context.Context, app *firebase.App) (contract.FileStore, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}
	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}
	return &firebaseFileStore{bucket: bucket}, nil
}

func (s *firebaseFileStore) SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, time.Time, error) {
	expires := time.Now().Add(ttl)
	url, err := s.bucket.SignedURL(objectPath, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: expires,
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: sign %s: %v", entity.ErrStoreUnavailable, objectPath, err)
	}
	return url, expires, nil
}

type s3FileStore struct {
	presigner  *s3.PresignClient
	bucketName string
}

// NewS3FileStore presigns GET requests for objects mirrored to an S3 bucket.
func NewS3FileStore(ctx context.Context, bucketName, region string) (contract.FileStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	return &s3FileStore{
		presigner:  s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucketName: bucketName,
	}, nil
}

func (s *s3FileStore) SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, time.Time, error) {
	expires := time.Now().Add(ttl)
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectPath),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: presign %s: %v", entity.ErrStoreUnavailable, objectPath, err)
	}
	return req.URL, expires, nil
}

// cachedFileStore reuses a signed URL for most of its lifetime so repeated
// document views do not re-sign. A hit reports the original expiry.
type cachedFileStore struct {
	next  contract.FileStore
	cache *cache.Cache
}

type signedURL struct {
	url       string
	expiresAt time.Time
}

func NewCachedFileStore(next contract.FileStore) contract.FileStore {
	return &cachedFileStore{
		next:  next,
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (s *cachedFileStore) SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, time.Time, error) {
	key := fmt.Sprintf("%s|%d", objectPath, ttl)
	if x, found := s.cache.Get(key); found {
		hit := x.(signedURL)
		return hit.url, hit.expiresAt, nil
	}

	url, expiresAt, err := s.next.SignedURL(ctx, objectPath, ttl)
	if err != nil {
		return "", time.Time{}, err
	}

	// expire the memo well before the URL itself does
	if memo := ttl * 4 / 5; memo > 0 {
		s.cache.Set(key, signedURL{url: url, expiresAt: expiresAt}, memo)
	}
	return url, expiresAt, nil
}
