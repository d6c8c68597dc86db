package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinapi/models"
)

func TestFileStore_Load_MissingFile(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "db.json"))

	doc, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Users)
	assert.Empty(t, doc.Users)
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")
	st := NewFileStore(path)

	doc := models.NewDocument()
	doc.Add(&models.User{ID: "bqNiw", UserName: "alice", CoinBalance: 100})
	doc.Add(&models.User{ID: "x7Kp2", UserName: "bob", CoinBalance: 70})
	require.NoError(t, st.Save(ctx, doc))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Users, 2)

	// Insertion order survives the round trip
	assert.Equal(t, "alice", loaded.Users[0].UserName)
	assert.Equal(t, "bob", loaded.Users[1].UserName)
	assert.Equal(t, int64(70), loaded.Users[1].CoinBalance)
}

func TestFileStore_Save_Layout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")
	st := NewFileStore(path)

	doc := models.NewDocument()
	doc.Add(&models.User{ID: "bqNiw", UserName: "alice", CoinBalance: 100})
	require.NoError(t, st.Save(ctx, doc))

	// The persisted layout is one top-level "users" array
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "users")

	var users []map[string]any
	require.NoError(t, json.Unmarshal(raw["users"], &users))
	require.Len(t, users, 1)
	assert.Equal(t, "bqNiw", users[0]["id"])
	assert.Equal(t, "alice", users[0]["userName"])
	assert.Equal(t, float64(100), users[0]["coinBalance"])
}

func TestFileStore_Save_Overwrites(t *testing.T) {
	ctx := context.Background()
	st := NewFileStore(filepath.Join(t.TempDir(), "db.json"))

	doc := models.NewDocument()
	doc.Add(&models.User{ID: "bqNiw", UserName: "alice", CoinBalance: 100})
	require.NoError(t, st.Save(ctx, doc))

	doc.Users[0].CoinBalance = 30
	require.NoError(t, st.Save(ctx, doc))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Users, 1)
	assert.Equal(t, int64(30), loaded.Users[0].CoinBalance)
}

func TestFileStore_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := NewFileStore(path)
	_, err := st.Load(context.Background())
	assert.ErrorContains(t, err, "failed to decode document file")
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	doc := models.NewDocument()
	doc.Add(&models.User{ID: "bqNiw", UserName: "alice", CoinBalance: 100})
	require.NoError(t, st.Save(ctx, doc))

	// Mutating the caller's copy never reaches the store
	doc.Users[0].CoinBalance = 0

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100), loaded.Users[0].CoinBalance)

	// Mutating a loaded copy never reaches the store either
	loaded.Users[0].CoinBalance = 0
	reloaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100), reloaded.Users[0].CoinBalance)
}
