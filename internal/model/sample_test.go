package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryUsedPercent(t *testing.T) {
	tests := []struct {
		name string
		mem  Memory
		want float64
	}{
		{
			name: "half used",
			mem:  Memory{TotalKB: 16000000, AvailableKB: 8000000},
			want: 50,
		},
		{
			name: "all available",
			mem:  Memory{TotalKB: 1000, AvailableKB: 1000},
			want: 0,
		},
		{
			name: "none available",
			mem:  Memory{TotalKB: 1000, AvailableKB: 0},
			want: 100,
		},
		{
			name: "zero total does not divide by zero",
			mem:  Memory{},
			want: 0,
		},
		{
			name: "available above total clamps to zero used",
			mem:  Memory{TotalKB: 1000, AvailableKB: 2000},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mem.UsedPercent()
			assert.InDelta(t, tt.want, got, 0.01)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestCPUUsagePercent(t *testing.T) {
	tests := []struct {
		name string
		prev CPUTimes
		cur  CPUTimes
		want float64
	}{
		{
			name: "half busy",
			prev: CPUTimes{},
			cur:  CPUTimes{User: 300, System: 200, Idle: 400, Iowait: 100},
			want: 50,
		},
		{
			name: "fully idle interval",
			prev: CPUTimes{Idle: 100},
			cur:  CPUTimes{Idle: 600},
			want: 0,
		},
		{
			name: "fully busy interval",
			prev: CPUTimes{User: 100, Idle: 100},
			cur:  CPUTimes{User: 600, Idle: 100},
			want: 100,
		},
		{
			name: "no delta yields zero not NaN",
			prev: CPUTimes{User: 100, Idle: 100},
			cur:  CPUTimes{User: 100, Idle: 100},
			want: 0,
		},
		{
			name: "counter wrap clamps to zero",
			prev: CPUTimes{User: 900, Idle: 100},
			cur:  CPUTimes{User: 100, Idle: 100},
			want: 0,
		},
		{
			name: "iowait counts as idle",
			prev: CPUTimes{},
			cur:  CPUTimes{User: 250, Idle: 500, Iowait: 250},
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CPUUsagePercent(tt.prev, tt.cur)
			assert.InDelta(t, tt.want, got, 0.1)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestCPUTimesTotals(t *testing.T) {
	c := CPUTimes{User: 1, Nice: 2, System: 3, Idle: 4, Iowait: 5, IRQ: 6, SoftIRQ: 7}
	assert.Equal(t, uint64(9), c.IdleTime())
	assert.Equal(t, uint64(28), c.TotalTime())
}

func TestDiskUsedPercent(t *testing.T) {
	d := Disk{Mountpoint: "/", TotalBytes: 1000, FreeBytes: 250}
	assert.Equal(t, uint64(750), d.UsedBytes())
	assert.InDelta(t, 75.0, d.UsedPercent(), 0.01)

	zero := Disk{Mountpoint: "/empty"}
	assert.Equal(t, 0.0, zero.UsedPercent())
}
