package pool

import "sync"

// ChunkPool manages a pool of fixed-size byte slices used by the streaming
// copy loop, so every operation does not allocate a fresh chunk buffer.
type ChunkPool struct {
	size int       // Size of each chunk in bytes.
	pool sync.Pool // Thread-safe pool of chunks.
}

// NewChunkPool creates a new chunk pool with a specified chunk size.
func NewChunkPool(size int) *ChunkPool {
	return &ChunkPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Get retrieves a chunk from the pool. The chunk's length equals the pool's
// configured size; contents are unspecified.
func (cp *ChunkPool) Get() []byte {
	return *cp.pool.Get().(*[]byte)
}

// Put returns a chunk to the pool. Chunks of the wrong size are dropped.
func (cp *ChunkPool) Put(buf []byte) {
	if len(buf) != cp.size {
		return
	}
	cp.pool.Put(&buf)
}

// Size returns the configured chunk size in bytes.
func (cp *ChunkPool) Size() int {
	return cp.size
}
