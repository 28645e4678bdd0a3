package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// buffer is a reference-counted element store shared by an owning tensor and
// every view derived from it. Each live descriptor holds one reference; the
// elements are dropped when the last reference is released.
type buffer struct {
	data     []float64
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer creates a new reference-counted buffer with refCount = 1.
func newBuffer(n int) *buffer {
	buf := &buffer{
		data: make([]float64, n),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for derived views).
func (b *buffer) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (b *buffer) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// refs reports the current number of live descriptors on the buffer.
func (b *buffer) refs() int {
	return int(b.refCount.Load())
}

// Tensor is a strided, row-major array of float64 elements.
//
// A tensor either owns its buffer (created by New and friends) or aliases
// the buffer of another tensor (created by SubView or Reshape). Views keep
// the buffer alive through its reference count, so releasing the owner
// while a view is still in use never leaves the view dangling.
type Tensor struct {
	buf      *buffer
	shape    Shape
	strides  []int // in elements
	offset   int   // first element of this descriptor within buf
	owns     bool
	released bool
}

// New allocates an owning tensor with the given shape.
//
// Element content is unspecified until the caller fills it (FillZeros,
// FillOnes, Set or FromSlice).
func New(shape ...int) (*Tensor, error) {
	s := Shape(shape)
	n, err := s.checkedNumElements()
	if err != nil {
		return nil, err
	}
	return &Tensor{
		buf:     newBuffer(n),
		shape:   s.Clone(),
		strides: s.ComputeStrides(),
		owns:    true,
	}, nil
}

// FromSlice creates an owning tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape ...int) (*Tensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != t.NumElements() {
		t.release()
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d",
			t.shape, t.NumElements(), len(data))
	}
	copy(t.buf.data, data)
	return t, nil
}

// alias builds a view descriptor over t's buffer.
func (t *Tensor) alias(shape Shape, offset int) *Tensor {
	t.buf.addRef()
	return &Tensor{
		buf:     t.buf,
		shape:   shape,
		strides: shape.ComputeStrides(),
		offset:  offset,
		owns:    false,
	}
}

// check reports ErrReleased for nil or released descriptors.
func (t *Tensor) check() error {
	if t == nil {
		return errors.Wrap(ErrReleased, "nil tensor")
	}
	if t.released {
		return ErrReleased
	}
	return nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's strides in elements.
func (t *Tensor) Strides() []int {
	return t.strides
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return Float64
}

// ElementWidth returns the byte width of one element.
func (t *Tensor) ElementWidth() int {
	return Float64.Size()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// ByteSize returns the bytes addressed by this descriptor.
func (t *Tensor) ByteSize() int {
	return t.NumElements() * t.ElementWidth()
}

// ByteOffset returns the position of this descriptor's first element within
// the underlying buffer, in bytes. Always 0 for owning tensors.
func (t *Tensor) ByteOffset() int {
	return t.offset * t.ElementWidth()
}

// Owns reports whether the tensor owns its buffer (false for views).
func (t *Tensor) Owns() bool {
	return t.owns
}

// Released reports whether Release has been called on this descriptor.
func (t *Tensor) Released() bool {
	return t == nil || t.released
}

// SharesStorage reports whether t and other address the same buffer.
func (t *Tensor) SharesStorage(other *Tensor) bool {
	return t != nil && other != nil && t.buf != nil && t.buf == other.buf
}

// Data returns the elements addressed by this tensor in row-major order.
// The slice aliases the buffer (zero-copy); writes are visible to every
// tensor sharing the storage. Returns nil for released tensors.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	if t.check() != nil {
		return nil
	}
	return t.buf.data[t.offset : t.offset+t.NumElements()]
}

// Release drops this descriptor's reference to its buffer. The elements are
// freed once the owner and every view have been released. Releasing twice
// returns ErrReleased.
func (t *Tensor) Release() error {
	if err := t.check(); err != nil {
		return err
	}
	t.release()
	return nil
}

func (t *Tensor) release() {
	t.released = true
	t.buf.release()
	t.buf = nil
}

// Clone returns an owning deep copy of the tensor.
func (t *Tensor) Clone() (*Tensor, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	out, err := New(t.shape...)
	if err != nil {
		return nil, err
	}
	copy(out.buf.data, t.Data())
	return out, nil
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	if t == nil {
		return "Tensor(nil)"
	}
	kind := "owning"
	if !t.owns {
		kind = "view"
	}
	if t.released {
		kind = "released"
	}
	return fmt.Sprintf("Tensor[%s]%v (%s)", Float64, []int(t.shape), kind)
}
