package serial

import (
	"sync"

	"go.uber.org/atomic"
)

// readBufferSize is the scratch buffer size used for real-port reads. A read
// returns at most this many bytes per call.
const readBufferSize = 1024

// BufferPool manages reusable byte buffers for read operations.
type BufferPool struct {
	pool sync.Pool
	size int

	gets    atomic.Int64
	puts    atomic.Int64
	creates atomic.Int64
}

// NewBufferPool creates a buffer pool with fixed-size buffers.
func NewBufferPool(bufferSize int) *BufferPool {
	bp := &BufferPool{
		size: bufferSize,
	}
	bp.pool = sync.Pool{
		New: func() interface{} {
			bp.creates.Add(1)
			return make([]byte, bufferSize)
		},
	}
	return bp
}

// Get retrieves a buffer from the pool.
func (bp *BufferPool) Get() []byte {
	bp.gets.Add(1)
	return bp.pool.Get().([]byte)
}

// Put returns a buffer to the pool. Stale port data must not leak into the
// next read, so the buffer is cleared first.
func (bp *BufferPool) Put(buf []byte) {
	if len(buf) != bp.size {
		return // don't pool incorrectly sized buffers
	}
	bp.puts.Add(1)

	clear(buf)
	bp.pool.Put(buf)
}

// Stats returns pool usage statistics.
func (bp *BufferPool) Stats() PoolStats {
	return PoolStats{
		Size:    bp.size,
		Gets:    bp.gets.Load(),
		Puts:    bp.puts.Load(),
		Creates: bp.creates.Load(),
	}
}

// PoolStats contains buffer pool usage statistics.
type PoolStats struct {
	Size    int   // Buffer size managed by this pool
	Gets    int64 // Number of Get() calls
	Puts    int64 // Number of Put() calls
	Creates int64 // Number of new buffers created
}

// HitRatio returns the cache hit ratio (0.0 to 1.0).
func (ps PoolStats) HitRatio() float64 {
	if ps.Gets == 0 {
		return 0.0
	}
	return 1.0 - (float64(ps.Creates) / float64(ps.Gets))
}
