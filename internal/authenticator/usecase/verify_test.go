package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shandysiswandi/authenticator/internal/authenticator/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enroll(t *testing.T, f *fixture, userID string) string {
	t.Helper()
	out, err := f.uc.Enroll(context.Background(), EnrollInput{UserID: userID})
	require.NoError(t, err)
	return out.Secret
}

func TestVerify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	aliceSecret := enroll(t, f, "alice")
	bobSecret := enroll(t, f, "bob")
	enroll(t, f, "carol")

	current, err := f.totp.GenerateCode(aliceSecret, testNow)
	require.NoError(t, err)
	previous, err := f.totp.GenerateCode(aliceSecret, testNow.Add(-30*time.Second))
	require.NoError(t, err)
	stale, err := f.totp.GenerateCode(bobSecret, testNow.Add(60*time.Second))
	require.NoError(t, err)

	tests := []struct {
		name   string
		userID string
		code   string
		want   bool
	}{
		{name: "alice current code", userID: "alice", code: current, want: true},
		{name: "alice previous step within skew", userID: "alice", code: previous, want: true},
		{name: "bob code two steps ahead", userID: "bob", code: stale, want: false},
		{name: "carol malformed code", userID: "carol", code: "12ab", want: false},
		{name: "carol empty code", userID: "carol", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.uc.Verify(ctx, VerifyInput{UserID: tt.userID, Code: tt.code})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyUnknownUser(t *testing.T) {
	f := newFixture(t)

	ok, err := f.uc.Verify(context.Background(), VerifyInput{UserID: "unknown-user", Code: "123456"})
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, entity.ErrNotEnrolled)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestVerifyRecordWithoutSecret(t *testing.T) {
	f := newFixture(t)
	f.mr.HSet("authenticator:credential:dave", entity.FieldQRCodeURL, "otpauth://totp/x")

	_, err := f.uc.Verify(context.Background(), VerifyInput{UserID: "dave", Code: "123456"})
	assert.ErrorIs(t, err, entity.ErrNotEnrolled)
}

func TestVerifyStorageError(t *testing.T) {
	f := newFixture(t)
	f.mr.Close()

	_, err := f.uc.Verify(context.Background(), VerifyInput{UserID: "alice", Code: "123456"})
	var serr *entity.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "HGETALL", serr.Op)
	assert.Equal(t, http.StatusServiceUnavailable, statusOf(t, err))
}

func TestVerifyRejectsEmptyUserID(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Verify(context.Background(), VerifyInput{UserID: " ", Code: "123456"})
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
}

func TestVerifyPublishesResult(t *testing.T) {
	f := newFixture(t)
	secret := enroll(t, f, "alice")
	code, err := f.totp.GenerateCode(secret, testNow)
	require.NoError(t, err)

	_, err = f.uc.Verify(context.Background(), VerifyInput{UserID: "alice", Code: code})
	require.NoError(t, err)
	_, err = f.uc.Verify(context.Background(), VerifyInput{UserID: "alice", Code: "000000x"})
	require.NoError(t, err)

	require.NoError(t, f.gm.Wait())
	assert.ElementsMatch(t, []VerifiedEvent{
		{UserID: "alice", Valid: true, VerifiedAt: testNow},
		{UserID: "alice", Valid: false, VerifiedAt: testNow},
	}, f.msg.verified)
}
