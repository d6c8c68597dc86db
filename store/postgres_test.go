package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinapi/models"
	"coinapi/store/testutil"
)

func TestPostgresStore_LoadEmpty(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	doc, err := testDB.Store.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, doc.Users)
	assert.Empty(t, doc.Users)
}

func TestPostgresStore_SaveAndLoad(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	doc := models.NewDocument()
	doc.Add(&models.User{ID: "bqNiw", UserName: "alice", CoinBalance: 100})
	doc.Add(&models.User{ID: "x7Kp2", UserName: "bob", CoinBalance: 70})
	require.NoError(t, testDB.Store.Save(ctx, doc))

	loaded, err := testDB.Store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Users, 2)
	assert.Equal(t, "alice", loaded.Users[0].UserName)
	assert.Equal(t, "bob", loaded.Users[1].UserName)
	assert.Equal(t, int64(70), loaded.Users[1].CoinBalance)
}

func TestPostgresStore_Save_Overwrites(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	doc := models.NewDocument()
	doc.Add(&models.User{ID: "bqNiw", UserName: "alice", CoinBalance: 100})
	require.NoError(t, testDB.Store.Save(ctx, doc))

	doc.Users[0].CoinBalance = 30
	doc.Add(&models.User{ID: "x7Kp2", UserName: "bob", CoinBalance: 170})
	require.NoError(t, testDB.Store.Save(ctx, doc))

	loaded, err := testDB.Store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Users, 2)
	assert.Equal(t, int64(30), loaded.Users[0].CoinBalance)
	assert.Equal(t, int64(170), loaded.Users[1].CoinBalance)
}
