package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSigner_RoundTrip(t *testing.T) {
	signer := NewSessionSigner("test-secret", time.Hour)

	token, err := signer.Sign(42)
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, time.Hour, signer.TTL())
}

func TestSessionSigner_RejectsOtherSecret(t *testing.T) {
	token, err := NewSessionSigner("a", time.Hour).Sign(1)
	require.NoError(t, err)

	_, err = NewSessionSigner("b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionSigner_RejectsExpired(t *testing.T) {
	signer := NewSessionSigner("k", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	signer.now = func() time.Time { return issued }
	token, err := signer.Sign(1)
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionSigner_RejectsGarbage(t *testing.T) {
	_, err := NewSessionSigner("k", time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionCookies(t *testing.T) {
	opts := CookieOptions{Name: "sess", Secure: true}

	w := httptest.NewRecorder()
	SetSessionCookie(w, opts, "tok", 24*time.Hour)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sess", cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, 86400, cookies[0].MaxAge)

	w = httptest.NewRecorder()
	ClearSessionCookie(w, opts)
	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
