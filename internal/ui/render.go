package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termistat/internal/model"
)

// ANSI palette, kept to the basic 16 colors for terminal compatibility.
const (
	colorDanger  lipgloss.Color = "1" // red
	colorSuccess lipgloss.Color = "2" // green
	colorWarning lipgloss.Color = "3" // yellow
	colorMuted   lipgloss.Color = "8" // bright black
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	subtleStyle = lipgloss.NewStyle().Foreground(colorMuted)

	successCell = lipgloss.NewStyle().Background(colorSuccess)
	warningCell = lipgloss.NewStyle().Background(colorWarning)
	dangerCell  = lipgloss.NewStyle().Background(colorDanger)
	emptyCell   = lipgloss.NewStyle().Background(colorMuted)
)

type severity int

const (
	severityLow  severity = iota // success
	severityMid                  // warning
	severityHigh                 // danger
)

// barSeverity picks the fill color tier. Normal bars escalate with usage;
// inverted bars (battery) treat a high percentage as healthy.
func barSeverity(percent float64, inverted bool) severity {
	if inverted {
		switch {
		case percent < 30:
			return severityHigh
		case percent < 75:
			return severityMid
		default:
			return severityLow
		}
	}
	switch {
	case percent < 60:
		return severityLow
	case percent < 85:
		return severityMid
	default:
		return severityHigh
	}
}

// fillCells truncates percent*width/100 and clamps the result into [0,width]
// so out-of-range percentages cannot overflow the bar.
func fillCells(percent float64, width int) int {
	filled := int(percent * float64(width) / 100)
	if filled < 0 {
		return 0
	}
	if filled > width {
		return width
	}
	return filled
}

// ProgressBar renders a bracketed fixed-width bar with a one-decimal percent
// suffix. Filled cells are colored background blocks, the remainder a muted
// filler.
func ProgressBar(percent float64, width int, inverted bool) string {
	filled := fillCells(percent, width)
	fill := successCell
	switch barSeverity(percent, inverted) {
	case severityMid:
		fill = warningCell
	case severityHigh:
		fill = dangerCell
	}

	var b strings.Builder
	b.WriteString("[")
	if filled > 0 {
		b.WriteString(fill.Render(strings.Repeat(" ", filled)))
	}
	if filled < width {
		b.WriteString(emptyCell.Render(strings.Repeat(" ", width-filled)))
	}
	fmt.Fprintf(&b, "] %.1f%%", percent)
	return b.String()
}

// Title renders a section header.
func Title(name string) string {
	return titleStyle.Render("==== " + name + " ====")
}

// MemorySection prints used/total in integer-truncated MB, a swap line when
// swap exists, and the usage bar.
func MemorySection(m model.Memory, width int) string {
	lines := []string{
		Title("Memory"),
		fmt.Sprintf("Used: %d MB / %d MB", m.UsedKB()/1024, m.TotalKB/1024),
	}
	if m.SwapTotalKB > 0 {
		lines = append(lines, fmt.Sprintf("Swap: %d MB / %d MB", m.SwapUsedKB/1024, m.SwapTotalKB/1024))
	}
	lines = append(lines, ProgressBar(m.UsedPercent(), width, false))
	return strings.Join(lines, "\n")
}

// CPUSection prints the usage bar, then load, temperature, and fan lines,
// each only when a reading exists.
func CPUSection(c model.CPU, width int) string {
	title := "CPU"
	if c.Cores > 0 {
		title = fmt.Sprintf("CPU (%d cores)", c.Cores)
	}
	lines := []string{
		Title(title),
		"Usage: " + ProgressBar(c.UsagePercent, width, false),
	}
	if c.HasLoad {
		lines = append(lines, fmt.Sprintf("Load: %.2f %.2f %.2f", c.Load1, c.Load5, c.Load15))
	}
	if c.TempC > 0 {
		lines = append(lines, fmt.Sprintf("Temp: %.1f °C", c.TempC))
	}
	if c.FanRPM > 0 {
		lines = append(lines, fmt.Sprintf("Fan:  %d RPM", c.FanRPM))
	}
	return strings.Join(lines, "\n")
}

// BatterySection shows status and an inverted-color bar, or a placeholder
// when no battery is exposed.
func BatterySection(b model.Battery, width int) string {
	if !b.Available {
		return Title("Battery") + "\nBattery info not available"
	}
	return strings.Join([]string{
		Title("Battery"),
		b.Status,
		ProgressBar(float64(b.CapacityPercent), width, true),
	}, "\n")
}

// DiskSection lists each retained mount with used/total in MB and percent.
func DiskSection(disks []model.Disk) string {
	lines := []string{Title("Disks")}
	for _, d := range disks {
		lines = append(lines, fmt.Sprintf("%s: %d MB / %d MB (%.1f%%)",
			d.Mountpoint,
			d.UsedBytes()/(1024*1024),
			d.TotalBytes/(1024*1024),
			d.UsedPercent()))
	}
	return strings.Join(lines, "\n")
}

// NetworkSection lists per-interface rx/tx in KB and appends the wireless
// signal line when one was found.
func NetworkSection(ifaces []model.NetInterface, wifi string) string {
	lines := []string{Title("Network")}
	for _, i := range ifaces {
		lines = append(lines, fmt.Sprintf("%s → RX: %d KB, TX: %d KB",
			i.Name, i.RxBytes/1024, i.TxBytes/1024))
	}
	if wifi != "" {
		lines = append(lines, "", "WiFi Signal: "+wifi)
	}
	return strings.Join(lines, "\n")
}

// sections is the fixed render order of the dashboard.
var sections = []func(model.Sample, int) string{
	func(s model.Sample, w int) string { return MemorySection(s.Memory, w) },
	func(s model.Sample, w int) string { return CPUSection(s.CPU, w) },
	func(s model.Sample, w int) string { return BatterySection(s.Battery, w) },
	func(s model.Sample, _ int) string { return DiskSection(s.Disks) },
	func(s model.Sample, _ int) string { return NetworkSection(s.Interfaces, s.WifiSignal) },
}

func renderSections(s model.Sample, width int) string {
	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		parts = append(parts, section(s, width))
	}
	return strings.Join(parts, "\n\n")
}
