package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_NoURL(t *testing.T) {
	conn, err := Connect(context.Background(), "", "app")
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrNoURL)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://localhost:5432", "app")
	assert.Error(t, err)
}

func TestConnect_IsLazy(t *testing.T) {
	// nothing listens on this port; Connect must still succeed
	conn, err := Connect(context.Background(), "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100", "shop")
	require.NoError(t, err)
	assert.Equal(t, "shop", conn.DB.Name())
	assert.NoError(t, conn.Close(context.Background()))
}
