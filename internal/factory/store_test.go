package factory

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/court-booking/internal/config"
)

func TestNewStore_Memory(t *testing.T) {
	store, err := NewStore(context.Background(), &config.Config{StorageType: config.StorageMemory}, zerolog.Nop())
	require.NoError(t, err)

	v, err := store.System.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "in-memory store", v)
	assert.NoError(t, store.Close())
}

func TestNewStore_Unknown(t *testing.T) {
	_, err := NewStore(context.Background(), &config.Config{StorageType: "mongo"}, zerolog.Nop())
	assert.Error(t, err)
}
