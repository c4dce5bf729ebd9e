package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoopShareCache(t *testing.T) {
	var c ShareCache = NoopShareCache{}
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "abcdefghij", uuid.New()))

	id, ok, err := c.Get(ctx, "abcdefghij")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)

	assert.NoError(t, c.Delete(ctx, "abcdefghij"))
}

func TestShareKey(t *testing.T) {
	assert.Equal(t, "share:abc", shareKey("abc"))
}
