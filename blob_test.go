package brush

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlob(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	b := NewBlob(data)
	assert.Equal(t, data, b.Bytes())
	assert.Equal(t, 4, b.Len())
	assert.NotZero(t, b.ID())

	b2 := NewBlob(nil)
	assert.NotEqual(t, b.ID(), b2.ID())
	assert.Zero(t, b2.Len())

	// copies share the identity
	c := b
	assert.Equal(t, b.ID(), c.ID())
}

func TestBlobZeroValue(t *testing.T) {
	var b Blob
	assert.Nil(t, b.Bytes())
	assert.Zero(t, b.ID())
	_, ok := b.Downgrade().Upgrade()
	assert.False(t, ok)

	var w WeakBlob
	_, ok = w.Upgrade()
	assert.False(t, ok)
}

func TestWeakBlobUpgrade(t *testing.T) {
	b := NewBlob([]byte{1, 2, 3})
	id := b.ID()
	w := b.Downgrade()
	assert.Equal(t, id, w.ID())

	up, ok := w.Upgrade()
	assert.True(t, ok)
	assert.Equal(t, id, up.ID())
	assert.Equal(t, []byte{1, 2, 3}, up.Bytes())
}

func TestWeakBlobExpires(t *testing.T) {
	b := NewBlob(make([]byte, 128))
	w := b.Downgrade()
	id := b.ID()

	// drop the only strong reference
	b = Blob{}
	_ = b
	runtime.GC()

	_, ok := w.Upgrade()
	assert.False(t, ok, "weak blob still upgradable after the last strong reference was dropped")
	assert.Equal(t, id, w.ID())
}
