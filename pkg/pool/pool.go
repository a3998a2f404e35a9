// Package pool provides byte-buffer pooling for the topology builder to
// reduce allocations during adjacency compression.
//
// Building a Topology's compressed pages (pkg/topology's
// compressPerSourcePages) takes one byte buffer per page from GetByteBuffer
// while delta-varlong encoding each source's sorted target list. Those
// buffers become the Topology's pages and are never passed to
// PutByteBuffer, so that call site draws fresh buffers from the pool's
// New function rather than reusing returned ones.
//
// Usage:
//
//	buf := pool.GetByteBuffer()
//	defer pool.PutByteBuffer(buf)
//	buf = append(buf, encodedBytes...)
package pool

import "sync"

// Config configures buffer pooling behavior.
type Config struct {
	// Enabled controls whether pooling is active.
	Enabled bool
	// MaxSize limits the capacity of a buffer kept in the pool; larger
	// buffers are dropped instead of pooled to bound worst-case retention.
	MaxSize int
}

var globalConfig = Config{
	Enabled: true,
	MaxSize: 1 << 20, // 1 MiB
}

// Configure sets global pool configuration. Should be called early during
// initialization, before any GetByteBuffer calls.
func Configure(cfg Config) {
	globalConfig = cfg
}

// IsEnabled returns whether pooling is active.
func IsEnabled() bool {
	return globalConfig.Enabled
}

var byteBufferPool = sync.Pool{
	New: func() any {
		return make([]byte, 0, 1024)
	},
}

// GetByteBuffer returns a zero-length byte slice from the pool, ready to be
// appended to. Call PutByteBuffer when done with it.
func GetByteBuffer() []byte {
	if !globalConfig.Enabled {
		return make([]byte, 0, 1024)
	}
	return byteBufferPool.Get().([]byte)[:0]
}

// PutByteBuffer returns a buffer to the pool. Buffers larger than
// Config.MaxSize are dropped rather than pooled.
func PutByteBuffer(buf []byte) {
	if !globalConfig.Enabled || cap(buf) > globalConfig.MaxSize {
		return
	}
	byteBufferPool.Put(buf[:0])
}
