package bumpalloc

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	metricNames := []string{
		"bumpalloc_bytes_in_use",
		"bumpalloc_capacity_bytes",
		"bumpalloc_chunks",
		"bumpalloc_utilization_ratio",
	}

	a := NewArena(1024)
	c := NewCollector("test", a.Metrics)

	expected := `
# HELP bumpalloc_bytes_in_use Bytes handed out by the arena, alignment padding included.
# TYPE bumpalloc_bytes_in_use gauge
bumpalloc_bytes_in_use{arena="test"} 0
# HELP bumpalloc_capacity_bytes Total payload bytes of the arena's chunks.
# TYPE bumpalloc_capacity_bytes gauge
bumpalloc_capacity_bytes{arena="test"} 0
# HELP bumpalloc_chunks Number of chunks in the arena's chain.
# TYPE bumpalloc_chunks gauge
bumpalloc_chunks{arena="test"} 0
# HELP bumpalloc_utilization_ratio Bytes in use divided by capacity.
# TYPE bumpalloc_utilization_ratio gauge
bumpalloc_utilization_ratio{arena="test"} 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), metricNames...))

	// 300 of 1024 bytes in use.
	a.Allocate(100, 1)
	a.Allocate(200, 1)
	expected = `
# HELP bumpalloc_bytes_in_use Bytes handed out by the arena, alignment padding included.
# TYPE bumpalloc_bytes_in_use gauge
bumpalloc_bytes_in_use{arena="test"} 300
# HELP bumpalloc_capacity_bytes Total payload bytes of the arena's chunks.
# TYPE bumpalloc_capacity_bytes gauge
bumpalloc_capacity_bytes{arena="test"} 1024
# HELP bumpalloc_chunks Number of chunks in the arena's chain.
# TYPE bumpalloc_chunks gauge
bumpalloc_chunks{arena="test"} 1
# HELP bumpalloc_utilization_ratio Bytes in use divided by capacity.
# TYPE bumpalloc_utilization_ratio gauge
bumpalloc_utilization_ratio{arena="test"} 0.29296875
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), metricNames...))

	// Release drops everything back to zero.
	a.Release()
	expected = `
# HELP bumpalloc_bytes_in_use Bytes handed out by the arena, alignment padding included.
# TYPE bumpalloc_bytes_in_use gauge
bumpalloc_bytes_in_use{arena="test"} 0
# HELP bumpalloc_capacity_bytes Total payload bytes of the arena's chunks.
# TYPE bumpalloc_capacity_bytes gauge
bumpalloc_capacity_bytes{arena="test"} 0
# HELP bumpalloc_chunks Number of chunks in the arena's chain.
# TYPE bumpalloc_chunks gauge
bumpalloc_chunks{arena="test"} 0
# HELP bumpalloc_utilization_ratio Bytes in use divided by capacity.
# TYPE bumpalloc_utilization_ratio gauge
bumpalloc_utilization_ratio{arena="test"} 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), metricNames...))
}

func TestCollectorRegisters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()

	a := NewArena(1024)
	sa := NewSafeArena(2048)

	require.NoError(t, reg.Register(NewCollector("plain", a.Metrics)))
	require.NoError(t, reg.Register(NewCollector("safe", sa.Metrics)))

	a.AllocBytes(64)
	sa.AllocBytes(64)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 4)
}
