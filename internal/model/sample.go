package model

import "time"

// Memory holds the two /proc/meminfo counters the dashboard cares about,
// in kilobytes, plus best-effort swap totals.
type Memory struct {
	TotalKB     uint64
	AvailableKB uint64
	SwapTotalKB uint64
	SwapUsedKB  uint64
}

func (m Memory) UsedKB() uint64 {
	if m.AvailableKB > m.TotalKB {
		return 0
	}
	return m.TotalKB - m.AvailableKB
}

// UsedPercent reports 0 when the total is unknown rather than dividing by zero.
func (m Memory) UsedPercent() float64 {
	if m.TotalKB == 0 {
		return 0
	}
	return float64(m.UsedKB()) * 100 / float64(m.TotalKB)
}

// CPUTimes is one aggregate snapshot of the first /proc/stat line, in jiffies.
type CPUTimes struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	Iowait  uint64
	IRQ     uint64
	SoftIRQ uint64
}

func (c CPUTimes) IdleTime() uint64 {
	return c.Idle + c.Iowait
}

func (c CPUTimes) TotalTime() uint64 {
	return c.User + c.Nice + c.System + c.IRQ + c.SoftIRQ + c.IdleTime()
}

// CPUUsagePercent derives busy percent from two consecutive snapshots.
// A zero or backwards total delta (first sample, counter wrap) yields 0,
// and the result is clamped into [0,100].
func CPUUsagePercent(prev, cur CPUTimes) float64 {
	curTotal, prevTotal := cur.TotalTime(), prev.TotalTime()
	if curTotal <= prevTotal {
		return 0
	}
	dTotal := float64(curTotal - prevTotal)
	dIdle := float64(int64(cur.IdleTime()) - int64(prev.IdleTime()))
	usage := 100 * (dTotal - dIdle) / dTotal
	if usage < 0 {
		return 0
	}
	if usage > 100 {
		return 100
	}
	return usage
}

// CPU is the rendered CPU state for one cycle. TempC and FanRPM use -1 as the
// "no reading" sentinel and are never shown in that case.
type CPU struct {
	UsagePercent float64
	TempC        float64
	FanRPM       int
	Cores        int
	Load1        float64
	Load5        float64
	Load15       float64
	HasLoad      bool
}

// Battery mirrors /sys/class/power_supply/BAT0; Available is false when
// either source file could not be opened.
type Battery struct {
	CapacityPercent int
	Status          string
	Available       bool
}

// Disk is one mounted filesystem retained by the mount filter.
type Disk struct {
	Mountpoint string
	TotalBytes uint64
	FreeBytes  uint64
}

func (d Disk) UsedBytes() uint64 {
	if d.FreeBytes > d.TotalBytes {
		return 0
	}
	return d.TotalBytes - d.FreeBytes
}

func (d Disk) UsedPercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.UsedBytes()) * 100 / float64(d.TotalBytes)
}

// NetInterface carries the rx/tx byte counters of one /proc/net/dev row.
type NetInterface struct {
	Name    string
	RxBytes uint64
	TxBytes uint64
}

// Host is banner context, best-effort.
type Host struct {
	Hostname string
	Uptime   time.Duration
}

// Sample is the full per-cycle snapshot handed from the sampler to the UI.
type Sample struct {
	Timestamp  time.Time
	Host       Host
	Memory     Memory
	CPU        CPU
	Battery    Battery
	Disks      []Disk
	Interfaces []NetInterface
	WifiSignal string
}

// Zero returns an empty sample for initialization.
func Zero() Sample {
	return Sample{Timestamp: time.Now(), CPU: CPU{TempC: -1, FanRPM: -1}}
}
