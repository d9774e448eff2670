package system_healthcheck

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthStatus struct {
	Status string      `json:"status"`
	System *SystemInfo `json:"system"`
}

type SystemInfo struct {
	Hostname        string  `json:"hostname"`
	Platform        string  `json:"platform"`
	UptimeSeconds   uint64  `json:"uptimeSeconds"`
	MemoryTotalMB   uint64  `json:"memoryTotalMb"`
	MemoryUsedMB    uint64  `json:"memoryUsedMb"`
	MemoryUsedPct   float64 `json:"memoryUsedPct"`
	DiskFreeGB      float64 `json:"diskFreeGb"`
	DiskUsedPercent float64 `json:"diskUsedPercent"`
}

type HealthcheckService struct{}

func (s *HealthcheckService) GetHealthStatus() (*HealthStatus, error) {
	hostInfo, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	memoryInfo, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory info: %w", err)
	}

	diskInfo, err := disk.Usage("/")
	if err != nil {
		return nil, fmt.Errorf("failed to read disk usage: %w", err)
	}

	return &HealthStatus{
		Status: "ok",
		System: &SystemInfo{
			Hostname:        hostInfo.Hostname,
			Platform:        hostInfo.Platform,
			UptimeSeconds:   hostInfo.Uptime,
			MemoryTotalMB:   memoryInfo.Total / 1024 / 1024,
			MemoryUsedMB:    memoryInfo.Used / 1024 / 1024,
			MemoryUsedPct:   memoryInfo.UsedPercent,
			DiskFreeGB:      float64(diskInfo.Free) / 1024 / 1024 / 1024,
			DiskUsedPercent: diskInfo.UsedPercent,
		},
	}, nil
}
