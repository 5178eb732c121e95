package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := New(time.Minute, "/grade")

	key := Key("/grade", []byte(`{"essay_text":"hello"}`))
	c.Set(key, []byte(`{"ok":true}`))

	data, found := c.Get(key)
	require.True(t, found)
	assert.Equal(t, []byte(`{"ok":true}`), data)
}

func TestGetMissingKey(t *testing.T) {
	c := New(time.Minute, "/grade")

	_, found := c.Get("no-such-key")
	assert.False(t, found)
}

func TestExpiredItemNotReturned(t *testing.T) {
	c := New(time.Millisecond, "/grade")

	key := Key("/grade", []byte("body"))
	c.Set(key, []byte("data"))

	time.Sleep(5 * time.Millisecond)

	_, found := c.Get(key)
	assert.False(t, found)
}

func TestKeyDistinguishesPaths(t *testing.T) {
	body := []byte(`{"essay_text":"same body"}`)
	assert.NotEqual(t, Key("/grade", body), Key("/analyze", body))
	assert.Equal(t, Key("/grade", body), Key("/grade", body))
}

func TestDeleteAndClear(t *testing.T) {
	c := New(time.Minute, "/grade")

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	assert.Equal(t, 2, c.Size())

	c.Delete("a")
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestStats(t *testing.T) {
	c := New(time.Minute, "/grade")
	c.Set("a", []byte("1"))

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_items"])
	assert.Equal(t, 60.0, stats["ttl_seconds"])
}
