package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordNeverPlaintext(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	// A second hash of the same input differs: bcrypt salts per hash.
	again, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, hash, again)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.True(t, CheckPassword(hash, "s3cret"))
	require.False(t, CheckPassword(hash, "wrong"))
	require.False(t, CheckPassword("not-a-hash", "s3cret"))
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	signed, err := tokens.Issue("u1", true)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	id, err := tokens.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "u1", id.UserID)
	require.True(t, id.IsAdmin)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokens("secret-a", time.Hour).Issue("u1", false)
	require.NoError(t, err)

	_, err = NewTokens("secret-b", time.Hour).Verify(signed)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)
	signed, err := tokens.Issue("u1", false)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.Error(t, err)
}

func TestMiddlewareAttachesIdentity(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	signed, err := tokens.Issue("u1", false)
	require.NoError(t, err)

	var got *Identity
	var flag bool
	h := tokens.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
		flag = IsAuthenticated(r.Context())
	}))

	req := httptest.NewRequest("POST", "/graphql", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, flag)
	require.NotNil(t, got)
	require.Equal(t, "u1", got.UserID)
}

func TestMiddlewareIgnoresBadToken(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	var flag bool
	h := tokens.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flag = IsAuthenticated(r.Context())
	}))

	for _, header := range []string{"", "Bearer junk", "Basic abc"} {
		req := httptest.NewRequest("POST", "/graphql", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.False(t, flag, "header %q must not authenticate", header)
		require.Equal(t, http.StatusOK, rec.Code, "request must still be served")
	}
}
