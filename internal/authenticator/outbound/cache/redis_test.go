package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/authenticator/internal/authenticator/entity"
	"github.com/shandysiswandi/authenticator/internal/pkg/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client, instrument.NewNoop(), ""), mr
}

func TestSaveCredentialWritesAllFields(t *testing.T) {
	store, mr := newTestRedis(t)
	ctx := context.Background()

	cred := entity.Credential{Secret: "JBSWY3DPEHPK3PXP", QRCodeURL: "otpauth://totp/A:alice?secret=JBSWY3DPEHPK3PXP", QRCodeImage: "data:image/png;base64,AA=="}

	ack, err := store.SaveCredential(ctx, "alice", cred)
	require.NoError(t, err)
	assert.Equal(t, "authenticator:credential:alice", ack.Key)
	assert.Equal(t, int64(3), ack.FieldsAdded)

	assert.Equal(t, cred.Secret, mr.HGet(ack.Key, entity.FieldSecret))
	assert.Equal(t, cred.QRCodeURL, mr.HGet(ack.Key, entity.FieldQRCodeURL))
	assert.Equal(t, cred.QRCodeImage, mr.HGet(ack.Key, entity.FieldQRCodeImage))

	// overwrite reports no new fields
	ack, err = store.SaveCredential(ctx, "alice", entity.Credential{Secret: "S2", QRCodeURL: "u2", QRCodeImage: "i2"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), ack.FieldsAdded)
	assert.Equal(t, "S2", mr.HGet(ack.Key, entity.FieldSecret))
}

func TestGetCredential(t *testing.T) {
	store, mr := newTestRedis(t)
	ctx := context.Background()

	_, err := store.GetCredential(ctx, "unknown-user")
	assert.ErrorIs(t, err, entity.ErrNotEnrolled)

	mr.HSet("authenticator:credential:bob", entity.FieldSecret, "JBSWY3DPEHPK3PXP", entity.FieldQRCodeURL, "otpauth://x")

	got, err := store.GetCredential(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, &entity.Credential{Secret: "JBSWY3DPEHPK3PXP", QRCodeURL: "otpauth://x"}, got)
}

func TestCustomPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedis(client, instrument.NewNoop(), "otp:")
	ack, err := store.SaveCredential(context.Background(), "carol", entity.Credential{Secret: "S"})
	require.NoError(t, err)
	assert.Equal(t, "otp:carol", ack.Key)
	assert.True(t, mr.Exists("otp:carol"))
}

func TestStorageErrors(t *testing.T) {
	store, mr := newTestRedis(t)
	mr.Close()
	ctx := context.Background()

	var serr *entity.StorageError

	_, err := store.SaveCredential(ctx, "alice", entity.Credential{Secret: "S"})
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "HSET", serr.Op)

	_, err = store.GetCredential(ctx, "alice")
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "HGETALL", serr.Op)

	err = store.Ping(ctx)
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "PING", serr.Op)
}

func TestConcurrentSavesLeaveOneIntactRecord(t *testing.T) {
	store, _ := newTestRedis(t)
	ctx := context.Background()

	creds := []entity.Credential{
		{Secret: "AAAA", QRCodeURL: "otpauth://a?secret=AAAA", QRCodeImage: "img-a"},
		{Secret: "BBBB", QRCodeURL: "otpauth://b?secret=BBBB", QRCodeImage: "img-b"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		cred := creds[i%2]
		wg.Go(func() {
			_, err := store.SaveCredential(ctx, "alice", cred)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	got, err := store.GetCredential(ctx, "alice")
	require.NoError(t, err)
	assert.Contains(t, creds, *got)
}
