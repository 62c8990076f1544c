package bumpalloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaMetrics(t *testing.T) {
	a := NewArena(1024)

	require.Zero(t, a.SizeInUse())
	require.Zero(t, a.NumChunks())
	require.Zero(t, a.Capacity())
	require.Zero(t, a.Utilization())
	require.Zero(t, a.RemainingInCurrentChunk())
	require.Equal(t, 1024, a.ChunkSize())

	a.Allocate(100, 1)
	a.Allocate(200, 1)

	require.Equal(t, 300, a.SizeInUse())
	require.Equal(t, 1024, a.Capacity())
	require.Equal(t, 724, a.RemainingInCurrentChunk())

	utilization := a.Utilization()
	require.Greater(t, utilization, 0.0)
	require.LessOrEqual(t, utilization, 1.0)

	a.AllocBytes(2000) // forces a second, oversized chunk
	require.Equal(t, 2, a.NumChunks())
	require.Greater(t, a.Capacity(), 1024)

	metrics := a.Metrics()
	require.Equal(t, a.SizeInUse(), metrics.SizeInUse)
	require.Equal(t, a.Capacity(), metrics.Capacity)
	require.Equal(t, a.NumChunks(), metrics.NumChunks)
	require.Equal(t, a.ChunkSize(), metrics.ChunkSize)
	require.Equal(t, a.Utilization(), metrics.Utilization)
}

func TestMetricsAfterReset(t *testing.T) {
	a := NewArena(1024)

	a.AllocBytes(500)
	require.NotZero(t, a.SizeInUse())
	require.NotZero(t, a.Utilization())

	a.Reset()
	require.Zero(t, a.SizeInUse())
	require.Zero(t, a.Utilization())
	require.Equal(t, 1, a.NumChunks())
	require.Equal(t, 1024, a.Capacity())
	require.Equal(t, 1024, a.RemainingInCurrentChunk())
}

func TestMetricsAfterRelease(t *testing.T) {
	a := NewArena(1024)
	a.AllocBytes(100)

	a.Release()

	require.Zero(t, a.SizeInUse())
	require.Zero(t, a.NumChunks())
	require.Zero(t, a.Capacity())
	require.Zero(t, a.Utilization())
	require.Zero(t, a.RemainingInCurrentChunk())
}

func TestUtilizationFull(t *testing.T) {
	a := NewArena(100)

	a.Allocate(100, 1)
	rem := a.RemainingInCurrentChunk()
	require.NotZero(t, rem, "oversized chunks carry alignment padding")

	a.Allocate(rem, 1)
	require.Equal(t, 1.0, a.Utilization())
	require.Zero(t, a.RemainingInCurrentChunk())
}

func TestSafeArenaMetrics(t *testing.T) {
	s := NewSafeArena(2048)

	s.AllocBytes(300)

	require.NotZero(t, s.SizeInUse())
	require.Equal(t, 1, s.NumChunks())
	require.Equal(t, 2048, s.Capacity())
	require.Equal(t, 2048, s.ChunkSize())
	require.NotZero(t, s.RemainingInCurrentChunk())

	utilization := s.Utilization()
	require.Greater(t, utilization, 0.0)
	require.LessOrEqual(t, utilization, 1.0)

	metrics := s.Metrics()
	require.Equal(t, 2048, metrics.ChunkSize)
	require.NotZero(t, metrics.SizeInUse)
}

func BenchmarkMetrics(b *testing.B) {
	a := NewArena(1 << 20)
	for i := 0; i < 100; i++ {
		a.AllocBytes(1000)
	}

	b.Run("SizeInUse", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.SizeInUse()
		}
	})

	b.Run("RemainingInCurrentChunk", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.RemainingInCurrentChunk()
		}
	})

	b.Run("Metrics", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Metrics()
		}
	})
}
