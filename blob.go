package brush

import (
	"sync/atomic"
	"weak"
)

var lastBlobID atomic.Uint64

// Blob is an immutable byte buffer that can be shared by multiple
// owners. The buffer stays alive for as long as any Blob referring to
// it does. Every buffer has a unique ID, which renderers use as a
// cache key for derived resources.
//
// The zero value is an empty blob with ID 0.
type Blob struct {
	data *blobData
}

type blobData struct {
	id    uint64
	bytes []byte
}

// NewBlob returns a blob wrapping data. The caller must not modify
// data afterwards.
func NewBlob(data []byte) Blob {
	return Blob{
		data: &blobData{
			id:    lastBlobID.Add(1),
			bytes: data,
		},
	}
}

// Bytes returns the underlying buffer. Callers must not modify it.
func (b Blob) Bytes() []byte {
	if b.data == nil {
		return nil
	}
	return b.data.bytes
}

func (b Blob) Len() int {
	return len(b.Bytes())
}

// ID returns the unique identifier of the underlying buffer.
func (b Blob) ID() uint64 {
	if b.data == nil {
		return 0
	}
	return b.data.id
}

// Downgrade returns a weak reference to the buffer. The weak reference
// doesn't keep the buffer alive.
func (b Blob) Downgrade() WeakBlob {
	if b.data == nil {
		return WeakBlob{}
	}
	return WeakBlob{
		ptr: weak.Make(b.data),
		id:  b.data.id,
	}
}

// WeakBlob is a non-owning reference to a [Blob]'s buffer. It can be
// upgraded to a strong reference for as long as at least one Blob
// still refers to the buffer.
type WeakBlob struct {
	ptr weak.Pointer[blobData]
	id  uint64
}

// Upgrade returns a blob for the referenced buffer. The second return
// value is false if the buffer has already been reclaimed.
func (w WeakBlob) Upgrade() (Blob, bool) {
	data := w.ptr.Value()
	if data == nil {
		return Blob{}, false
	}
	return Blob{data: data}, true
}

// ID returns the unique identifier of the referenced buffer. It
// remains valid after the buffer has been reclaimed, but will not be
// reused by another blob.
func (w WeakBlob) ID() uint64 {
	return w.id
}
