package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func memberToken(t *testing.T) string {
	return signToken(t, jwt.MapClaims{
		"id":         float64(42),
		"nome":       "Ana Souza",
		"tipo":       "membro",
		"fotoPerfil": "https://cdn.example/ana.jpg",
	})
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestStoreLoad(t *testing.T) {
	t.Run("Should start unknown and resolve to anonymous without a file", func(t *testing.T) {
		store := newTestStore(t)
		assert.Equal(t, StatusUnknown, store.Status())
		require.NoError(t, store.Load())
		assert.Equal(t, StatusAnonymous, store.Status())
		_, ok := store.Current()
		assert.False(t, ok)
	})

	t.Run("Should restore the session from a persisted token", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Login(memberToken(t))
		require.NoError(t, err)

		restored := NewStore(store.path)
		require.NoError(t, restored.Load())
		assert.Equal(t, StatusAuthenticated, restored.Status())
		user, ok := restored.Current()
		require.True(t, ok)
		assert.Equal(t, "42", user.ID)
		assert.Equal(t, "Ana Souza", user.Name)
		assert.Equal(t, RoleMember, user.Role)
		assert.Equal(t, "https://cdn.example/ana.jpg", user.ProfilePicture)
	})

	t.Run("Should fail closed on a malformed token", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"token":"not-a-jwt"}`), 0o600))
		store := NewStore(path)
		require.NoError(t, store.Load())
		assert.Equal(t, StatusAnonymous, store.Status())
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err), "credentials file should be cleared")
	})

	t.Run("Should fail closed on unreadable credential contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")
		require.NoError(t, os.WriteFile(path, []byte("{{"), 0o600))
		store := NewStore(path)
		require.NoError(t, store.Load())
		assert.Equal(t, StatusAnonymous, store.Status())
	})
}

func TestStoreLogin(t *testing.T) {
	t.Run("Should decode claims and persist the token", func(t *testing.T) {
		store := newTestStore(t)
		user, err := store.Login(memberToken(t))
		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", user.Name)
		assert.Equal(t, StatusAuthenticated, store.Status())
		assert.NotEmpty(t, store.Token())
		_, err = os.Stat(store.path)
		assert.NoError(t, err)
	})

	t.Run("Should reject a token without an id claim", func(t *testing.T) {
		store := newTestStore(t)
		token := signToken(t, jwt.MapClaims{"nome": "Sem ID"})
		_, err := store.Login(token)
		assert.Error(t, err)
		assert.Equal(t, StatusUnknown, store.Status())
	})

	t.Run("Should accept string user ids", func(t *testing.T) {
		store := newTestStore(t)
		token := signToken(t, jwt.MapClaims{"id": "abc-1", "nome": "X", "tipo": "nutricionista"})
		user, err := store.Login(token)
		require.NoError(t, err)
		assert.Equal(t, "abc-1", user.ID)
		assert.True(t, user.IsNutritionist())
	})
}

func TestStoreLogout(t *testing.T) {
	t.Run("Should clear token and identity", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Login(memberToken(t))
		require.NoError(t, err)
		require.NoError(t, store.Logout())
		assert.Equal(t, StatusAnonymous, store.Status())
		assert.Empty(t, store.Token())
		_, err = os.Stat(store.path)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestStoreProfilePicture(t *testing.T) {
	t.Run("Should persist the override and prefer it over the claim", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Login(memberToken(t))
		require.NoError(t, err)
		require.NoError(t, store.SetProfilePicture("https://cdn.example/new.jpg"))

		user, ok := store.Current()
		require.True(t, ok)
		assert.Equal(t, "https://cdn.example/new.jpg", user.ProfilePicture)

		restored := NewStore(store.path)
		require.NoError(t, restored.Load())
		user, ok = restored.Current()
		require.True(t, ok)
		assert.Equal(t, "https://cdn.example/new.jpg", user.ProfilePicture)
	})

	t.Run("Should refuse without an active session", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Load())
		assert.Error(t, store.SetProfilePicture("x"))
	})
}
