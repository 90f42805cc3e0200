package domain

import "fmt"

type Health struct {
	CPUPercent  float64 `json:"cpu_percent"`
	MemPercent  float64 `json:"mem_percent"`
	DiskPercent float64 `json:"disk_percent"`
}

func (h Health) Summary() string {
	return fmt.Sprintf("CPU %s%% • RAM %s%% • Disk %s%%", formatPercent(h.CPUPercent), formatPercent(h.MemPercent), formatPercent(h.DiskPercent))
}

func formatPercent(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
