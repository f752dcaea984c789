package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebell/internal/domain"
)

func TestInMemoryStoreActiveByWarehouse(t *testing.T) {
	store := NewInMemoryStore()
	store.Put(domain.User{Name: "carol", DefaultWarehouse: "WH-Main", Enabled: true})
	store.Put(domain.User{Name: "dave", DefaultWarehouse: "WH-Main", Enabled: false})
	store.Put(domain.User{Name: "erin", DefaultWarehouse: "WH-Cold", Enabled: true})

	users, err := store.ActiveByWarehouse(context.Background(), "WH-Main")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "carol", users[0].Name)

	empty, err := store.ActiveByWarehouse(context.Background(), "WH-None")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
