package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	// Missing file reads as an empty session
	s, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, s.Token)
	assert.Nil(t, s.User)
	assert.Empty(t, store.Token())

	saved := &Session{
		Token: "abc123",
		User:  &types.AuthorizedUser{ID: 7, Name: "Chef Test", Email: "chef@test.com", Role: types.RoleChef},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", loaded.Token)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "chef@test.com", loaded.User.Email)
	assert.Equal(t, "abc123", store.Token())

	require.NoError(t, store.Clear())
	s, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, s.Token)

	// Clearing twice is fine
	assert.NoError(t, store.Clear())
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(&Session{Token: "x"}))

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := store.Load()
	assert.Error(t, err)
	assert.Empty(t, store.Token())
}

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore()
	assert.Empty(t, store.Token())

	require.NoError(t, store.Save(&Session{Token: "tok"}))
	assert.Equal(t, "tok", store.Token())

	s, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)

	// Mutating the loaded copy does not affect the store
	s.Token = "changed"
	assert.Equal(t, "tok", store.Token())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()

	var nilSession *Session
	assert.True(t, nilSession.Expired(now))
	assert.True(t, (&Session{}).Expired(now))

	live := &Session{Token: signedToken(t, now.Add(time.Hour))}
	assert.False(t, live.Expired(now))

	stale := &Session{Token: signedToken(t, now.Add(-time.Hour))}
	assert.True(t, stale.Expired(now))

	// Tokens the parser cannot read are left to the backend to reject
	opaque := &Session{Token: "not-a-jwt"}
	assert.False(t, opaque.Expired(now))
}
