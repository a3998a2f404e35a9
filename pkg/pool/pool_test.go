package pool

import "testing"

func TestConfigure(t *testing.T) {
	orig := globalConfig
	defer Configure(orig)

	t.Run("enable pooling", func(t *testing.T) {
		Configure(Config{Enabled: true, MaxSize: 500})
		if !IsEnabled() {
			t.Error("IsEnabled() = false, want true")
		}
		if globalConfig.MaxSize != 500 {
			t.Errorf("MaxSize = %d, want 500", globalConfig.MaxSize)
		}
	})

	t.Run("disable pooling", func(t *testing.T) {
		Configure(Config{Enabled: false, MaxSize: 1000})
		if IsEnabled() {
			t.Error("IsEnabled() = true, want false")
		}
	})
}

func TestGetByteBufferReturnsZeroLength(t *testing.T) {
	Configure(Config{Enabled: true, MaxSize: 1 << 20})
	buf := GetByteBuffer()
	if len(buf) != 0 {
		t.Fatalf("len(buf) = %d, want 0", len(buf))
	}
	buf = append(buf, 1, 2, 3)
	PutByteBuffer(buf)

	reused := GetByteBuffer()
	if len(reused) != 0 {
		t.Fatalf("len(reused) = %d, want 0", len(reused))
	}
}

func TestPutByteBufferDropsOversizedBuffers(t *testing.T) {
	Configure(Config{Enabled: true, MaxSize: 8})
	big := make([]byte, 0, 64)
	PutByteBuffer(big) // should not panic; oversized buffers are simply dropped
}

func TestDisabledPoolAllocatesFresh(t *testing.T) {
	Configure(Config{Enabled: false, MaxSize: 1 << 20})
	defer Configure(Config{Enabled: true, MaxSize: 1 << 20})

	buf := GetByteBuffer()
	if cap(buf) == 0 {
		t.Fatal("expected a usable buffer even when pooling is disabled")
	}
}
