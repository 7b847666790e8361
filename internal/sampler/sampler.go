// Package sampler assembles one model.Sample per refresh tick. It owns the
// only cross-cycle state in the program: the previous CPU times snapshot.
package sampler

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"termistat/internal/model"
)

// Source is the raw-reading surface the sampler draws from each cycle.
// *probe.Probe implements it; tests substitute a stub.
type Source interface {
	Memory() model.Memory
	CPUTimes() model.CPUTimes
	Temperature() float64
	FanRPM() int
	Battery() model.Battery
	DiskMounts() []model.Disk
	NetworkInterfaces() []model.NetInterface
	WirelessSignal(ctx context.Context) string
}

// Sampler emits Samples built from the Source plus best-effort gopsutil reads.
type Sampler struct {
	Interval time.Duration
	Wireless bool

	src     Source
	prevCPU model.CPUTimes
	primed  bool
}

func New(src Source, interval time.Duration, wireless bool) *Sampler {
	return &Sampler{Interval: interval, Wireless: wireless, src: src}
}

// Stream returns a channel receiving snapshots until ctx is done. The first
// sample is sent immediately so the dashboard is populated before the first
// full interval elapses.
func (s *Sampler) Stream(ctx context.Context) <-chan model.Sample {
	ch := make(chan model.Sample)
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		defer close(ch)

		send := func(t time.Time) bool {
			select {
			case ch <- s.Sample(ctx, t):
				return true
			case <-ctx.Done():
				return false
			}
		}
		if !send(time.Now()) {
			return
		}
		for {
			select {
			case t := <-ticker.C:
				if !send(t) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Sample reads every metric family once. The first call has no previous CPU
// snapshot and reports 0% usage.
func (s *Sampler) Sample(ctx context.Context, now time.Time) model.Sample {
	cur := s.src.CPUTimes()
	var usage float64
	if s.primed {
		usage = model.CPUUsagePercent(s.prevCPU, cur)
	}
	s.prevCPU = cur
	s.primed = true

	m := s.src.Memory()
	if swap, err := mem.SwapMemory(); err == nil {
		m.SwapTotalKB = swap.Total / 1024
		m.SwapUsedKB = swap.Used / 1024
	}

	c := model.CPU{
		UsagePercent: usage,
		TempC:        s.src.Temperature(),
		FanRPM:       s.src.FanRPM(),
	}
	if cores, err := cpu.Counts(true); err == nil {
		c.Cores = cores
	}
	if avg, err := load.Avg(); err == nil {
		c.Load1, c.Load5, c.Load15 = avg.Load1, avg.Load5, avg.Load15
		c.HasLoad = true
	}

	var h model.Host
	if info, err := host.Info(); err == nil {
		h.Hostname = info.Hostname
		h.Uptime = time.Duration(info.Uptime) * time.Second
	}

	var wifi string
	if s.Wireless {
		wifi = s.src.WirelessSignal(ctx)
	}

	return model.Sample{
		Timestamp:  now,
		Host:       h,
		Memory:     m,
		CPU:        c,
		Battery:    s.src.Battery(),
		Disks:      s.src.DiskMounts(),
		Interfaces: s.src.NetworkInterfaces(),
		WifiSignal: wifi,
	}
}
