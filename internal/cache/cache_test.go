package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pmurley/link-tracker/internal/view"
)

func TestCache_StorePerSession(t *testing.T) {
	c := New(time.Minute)

	a, created := c.Store("a")
	assert.True(t, created)

	again, created := c.Store("a")
	assert.False(t, created)
	assert.Same(t, a, again)

	b, _ := c.Store("b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, c.Sessions())
}

func TestCache_Expiry(t *testing.T) {
	c := New(20 * time.Millisecond)

	first, _ := c.Store("a")
	first.Dispatch(view.PageChanged{Page: 1})
	time.Sleep(40 * time.Millisecond)

	second, created := c.Store("a")
	assert.True(t, created)
	assert.NotSame(t, first, second)
}

func TestCache_DropAndFlush(t *testing.T) {
	c := New(time.Minute)
	c.Store("a")
	c.Store("b")

	c.Drop("a")
	assert.Equal(t, 1, c.Sessions())

	c.Flush()
	assert.Zero(t, c.Sessions())
}
