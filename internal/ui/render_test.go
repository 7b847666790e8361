package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"termistat/internal/model"
)

func TestFillCells(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		want    int
	}{
		{name: "half fills half", percent: 50.0, width: 40, want: 20},
		{name: "full fills all", percent: 100.0, width: 40, want: 40},
		{name: "zero fills none", percent: 0.0, width: 40, want: 0},
		{name: "overflow clamps to width", percent: 120.0, width: 40, want: 40},
		{name: "negative clamps to zero", percent: -5.0, width: 40, want: 0},
		{name: "fraction truncates", percent: 59.9, width: 40, want: 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fillCells(tt.percent, tt.width))
		})
	}
}

func TestBarSeverity(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		inverted bool
		want     severity
	}{
		{name: "normal low", percent: 0, want: severityLow},
		{name: "normal just under mid", percent: 59.9, want: severityLow},
		{name: "normal mid boundary", percent: 60.0, want: severityMid},
		{name: "normal just under high", percent: 84.9, want: severityMid},
		{name: "normal high boundary", percent: 85.0, want: severityHigh},
		{name: "normal full", percent: 100, want: severityHigh},
		{name: "inverted empty is danger", percent: 29.9, inverted: true, want: severityHigh},
		{name: "inverted mid boundary", percent: 30.0, inverted: true, want: severityMid},
		{name: "inverted just under good", percent: 74.9, inverted: true, want: severityMid},
		{name: "inverted good boundary", percent: 75.0, inverted: true, want: severityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, barSeverity(tt.percent, tt.inverted))
		})
	}
}

func TestProgressBarFormat(t *testing.T) {
	bar := ProgressBar(50.0, 40, false)
	assert.True(t, strings.HasPrefix(bar, "["))
	assert.True(t, strings.HasSuffix(bar, "] 50.0%"))

	assert.True(t, strings.HasSuffix(ProgressBar(33.333, 40, false), "] 33.3%"), "one decimal digit")
	assert.NotPanics(t, func() { ProgressBar(250.0, 40, false) })
	assert.NotPanics(t, func() { ProgressBar(-10.0, 40, true) })
}

func TestMemorySection(t *testing.T) {
	out := MemorySection(model.Memory{TotalKB: 16000000, AvailableKB: 8000000}, 40)
	assert.Contains(t, out, "Memory")
	assert.Contains(t, out, "Used: 7812 MB / 15625 MB")
	assert.Contains(t, out, "50.0%")
	assert.NotContains(t, out, "Swap:", "no swap line without swap")

	withSwap := MemorySection(model.Memory{
		TotalKB: 16000000, AvailableKB: 8000000, SwapTotalKB: 2097152, SwapUsedKB: 1048576,
	}, 40)
	assert.Contains(t, withSwap, "Swap: 1024 MB / 2048 MB")
}

func TestCPUSectionSuppressesUnavailableReadings(t *testing.T) {
	out := CPUSection(model.CPU{UsagePercent: 12.5, TempC: -1, FanRPM: -1}, 40)
	assert.Contains(t, out, "Usage:")
	assert.NotContains(t, out, "Temp:")
	assert.NotContains(t, out, "Fan:")
	assert.NotContains(t, out, "-1")
}

func TestCPUSectionWithSensors(t *testing.T) {
	out := CPUSection(model.CPU{
		UsagePercent: 42.0,
		TempC:        45.5,
		FanRPM:       1200,
		Cores:        8,
		Load1:        0.52, Load5: 0.48, Load15: 0.33,
		HasLoad: true,
	}, 40)
	assert.Contains(t, out, "CPU (8 cores)")
	assert.Contains(t, out, "Temp: 45.5 °C")
	assert.Contains(t, out, "Fan:  1200 RPM")
	assert.Contains(t, out, "Load: 0.52 0.48 0.33")
}

func TestBatterySection(t *testing.T) {
	out := BatterySection(model.Battery{CapacityPercent: 80, Status: "Charging", Available: true}, 40)
	assert.Contains(t, out, "Charging")
	assert.Contains(t, out, "80.0%")

	missing := BatterySection(model.Battery{}, 40)
	assert.Contains(t, missing, "Battery info not available")
}

func TestDiskSection(t *testing.T) {
	out := DiskSection([]model.Disk{
		{Mountpoint: "/", TotalBytes: 1 << 30, FreeBytes: 1 << 29},
	})
	assert.Contains(t, out, "/: 512 MB / 1024 MB (50.0%)")
}

func TestNetworkSection(t *testing.T) {
	ifaces := []model.NetInterface{
		{Name: "eth0", RxBytes: 5242880, TxBytes: 2097152},
	}

	out := NetworkSection(ifaces, "")
	assert.Contains(t, out, "eth0 → RX: 5120 KB, TX: 2048 KB")
	assert.NotContains(t, out, "WiFi Signal")

	withWifi := NetworkSection(ifaces, "Signal level=-54 dBm")
	assert.Contains(t, withWifi, "WiFi Signal: Signal level=-54 dBm")
}

func TestRenderSectionsOrder(t *testing.T) {
	out := renderSections(model.Zero(), 40)
	mem := strings.Index(out, "Memory")
	cpu := strings.Index(out, "CPU")
	bat := strings.Index(out, "Battery")
	disk := strings.Index(out, "Disks")
	net := strings.Index(out, "Network")

	assert.True(t, mem >= 0 && mem < cpu, "Memory before CPU")
	assert.True(t, cpu < bat, "CPU before Battery")
	assert.True(t, bat < disk, "Battery before Disks")
	assert.True(t, disk < net, "Disks before Network")
}
