package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New(true)

	etag := c.Set("k", []byte("value"), time.Minute)
	require.NotEmpty(t, etag)

	data, gotETag, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), data)
	assert.Equal(t, etag, gotETag)
}

func TestCache_Expiry(t *testing.T) {
	c := New(true)

	c.Set("k", []byte("value"), -time.Second)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_Disabled(t *testing.T) {
	c := New(false)

	etag := c.Set("k", []byte("value"), time.Minute)
	assert.NotEmpty(t, etag, "ETag is still computed when caching is off")

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("value"))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"other"`, etag))
}
