// Package probe reads the raw kernel-exposed sources behind each dashboard
// section. Every reader is best-effort: missing files or hardware degrade to
// sentinels (-1, zero values, empty strings) and never return an error to the
// render loop.
package probe

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"termistat/internal/model"
)

// fanCandidates is how many fanN_input files are tried per hwmon entry.
const fanCandidates = 5

// Probe reads procfs/sysfs with overridable roots so tests can point it at
// fixture trees, and with the statfs and wireless calls injectable.
type Probe struct {
	procRoot string
	sysRoot  string
	statfs   func(path string) (total, free uint64, err error)
	wireless func(ctx context.Context) (string, error)
}

func New() *Probe {
	return &Probe{
		procRoot: "/proc",
		sysRoot:  "/sys",
		statfs:   statfsBytes,
		wireless: iwconfigOutput,
	}
}

// Memory parses MemTotal and MemAvailable (KB). Keys that never appear, or an
// unreadable meminfo, leave the corresponding field at zero.
func (p *Probe) Memory() model.Memory {
	var m model.Memory
	f, err := os.Open(filepath.Join(p.procRoot, "meminfo"))
	if err != nil {
		return m
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			m.TotalKB = firstUint(line[len("MemTotal:"):])
		case strings.HasPrefix(line, "MemAvailable:"):
			m.AvailableKB = firstUint(line[len("MemAvailable:"):])
		}
	}
	return m
}

// CPUTimes reads the aggregate counters from the first /proc/stat line.
// Anything short of a label plus seven integers yields a zero sample.
func (p *Probe) CPUTimes() model.CPUTimes {
	var c model.CPUTimes
	f, err := os.Open(filepath.Join(p.procRoot, "stat"))
	if err != nil {
		return c
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return c
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < 8 {
		return c
	}
	vals := make([]uint64, 7)
	for i := range vals {
		v, err := strconv.ParseUint(fields[i+1], 10, 64)
		if err != nil {
			return model.CPUTimes{}
		}
		vals[i] = v
	}
	c.User, c.Nice, c.System, c.Idle, c.Iowait, c.IRQ, c.SoftIRQ =
		vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6]
	return c
}

// Temperature returns thermal_zone0 in °C, or -1 when the zone is absent.
func (p *Probe) Temperature() float64 {
	b, err := os.ReadFile(filepath.Join(p.sysRoot, "class/thermal/thermal_zone0/temp"))
	if err != nil {
		return -1
	}
	milli, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return -1
	}
	return float64(milli) / 1000
}

// FanRPM scans every hwmon entry for fan1_input..fan5_input and returns the
// first strictly positive reading. Entries without a readable name file are
// skipped; a 0 RPM reading counts as no signal.
func (p *Probe) FanRPM() int {
	base := filepath.Join(p.sysRoot, "class/hwmon")
	entries, err := os.ReadDir(base)
	if err != nil {
		return -1
	}
	for _, entry := range entries {
		dir := filepath.Join(base, entry.Name())
		if _, err := os.ReadFile(filepath.Join(dir, "name")); err != nil {
			continue
		}
		for i := 1; i <= fanCandidates; i++ {
			b, err := os.ReadFile(filepath.Join(dir, "fan"+strconv.Itoa(i)+"_input"))
			if err != nil {
				continue
			}
			rpm, err := strconv.Atoi(strings.TrimSpace(string(b)))
			if err == nil && rpm > 0 {
				return rpm
			}
		}
	}
	return -1
}

// Battery reads BAT0 capacity and status. Both files must open for the
// reading to count as available.
func (p *Probe) Battery() model.Battery {
	dir := filepath.Join(p.sysRoot, "class/power_supply/BAT0")
	capBytes, err := os.ReadFile(filepath.Join(dir, "capacity"))
	if err != nil {
		return model.Battery{Status: "Unknown"}
	}
	statusBytes, err := os.ReadFile(filepath.Join(dir, "status"))
	if err != nil {
		return model.Battery{Status: "Unknown"}
	}
	capacity, _ := strconv.Atoi(strings.TrimSpace(string(capBytes)))
	status, _, _ := strings.Cut(string(statusBytes), "\n")
	return model.Battery{
		CapacityPercent: capacity,
		Status:          strings.TrimSpace(status),
		Available:       true,
	}
}

// DiskMounts enumerates /proc/mounts and stats each retained mountpoint.
// The filter drops any mountpoint whose path contains "/dev" or "/sys"
// anywhere in the string; that is a substring match, so a real mount like
// /mnt/devtools is dropped too. Mounts whose stat fails, or that report a
// zero total, are skipped.
func (p *Probe) DiskMounts() []model.Disk {
	f, err := os.Open(filepath.Join(p.procRoot, "mounts"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var disks []model.Disk
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		mountpoint := fields[1]
		if strings.Contains(mountpoint, "/dev") || strings.Contains(mountpoint, "/sys") {
			continue
		}
		total, free, err := p.statfs(mountpoint)
		if err != nil || total == 0 {
			continue
		}
		disks = append(disks, model.Disk{
			Mountpoint: mountpoint,
			TotalBytes: total,
			FreeBytes:  free,
		})
	}
	return disks
}

// NetworkInterfaces parses /proc/net/dev: two header lines, then one row per
// interface. After the colon, rx_bytes is the first field and tx_bytes the
// ninth. Rows that are too short or non-numeric are skipped.
func (p *Probe) NetworkInterfaces() []model.NetInterface {
	f, err := os.Open(filepath.Join(p.procRoot, "net/dev"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var ifaces []model.NetInterface
	sc := bufio.NewScanner(f)
	for i := 0; sc.Scan(); i++ {
		if i < 2 {
			continue
		}
		name, rest, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 9 {
			continue
		}
		rx, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		tx, err := strconv.ParseUint(fields[8], 10, 64)
		if err != nil {
			continue
		}
		ifaces = append(ifaces, model.NetInterface{
			Name:    strings.ReplaceAll(name, " ", ""),
			RxBytes: rx,
			TxBytes: tx,
		})
	}
	return ifaces
}

// WirelessSignal runs the wireless status command and returns the tail of the
// first output line containing "Signal level=", starting at the marker.
// A missing tool, non-zero exit, or absent marker all yield "".
func (p *Probe) WirelessSignal(ctx context.Context) string {
	out, err := p.wireless(ctx)
	if err != nil && out == "" {
		return ""
	}
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if idx := strings.Index(line, "Signal level="); idx >= 0 {
			return strings.TrimSpace(line[idx:])
		}
	}
	return ""
}

func statfsBytes(path string) (total, free uint64, err error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, 0, err
	}
	bsize := uint64(st.Bsize)
	return st.Blocks * bsize, st.Bfree * bsize, nil
}

func iwconfigOutput(ctx context.Context) (string, error) {
	return runCmd(ctx, 2*time.Second, "iwconfig")
}

func firstUint(s string) uint64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	v, _ := strconv.ParseUint(fields[0], 10, 64)
	return v
}
