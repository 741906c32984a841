package system_healthcheck

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"gorm.io/gorm"
)

type HealthReport struct {
	Status          string  `json:"status"`
	Database        string  `json:"database"`
	MemoryUsagePct  float64 `json:"memoryUsagePercent"`
	DiskUsagePct    float64 `json:"diskUsagePercent"`
	DiskFreeBytes   uint64  `json:"diskFreeBytes"`
	MemoryFreeBytes uint64  `json:"memoryFreeBytes"`
}

type HealthcheckService struct {
	db *gorm.DB
}

func NewHealthcheckService(db *gorm.DB) *HealthcheckService {
	return &HealthcheckService{db: db}
}

// Check reports liveness of the database plus host memory and disk pressure.
// The report is degraded, not failed, when the system stats cannot be read.
func (s *HealthcheckService) Check(ctx context.Context) (*HealthReport, bool) {
	report := &HealthReport{
		Status:   "ok",
		Database: "ok",
	}
	healthy := true

	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		report.Database = "unreachable"
		report.Status = "unhealthy"
		healthy = false
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		report.MemoryUsagePct = vm.UsedPercent
		report.MemoryFreeBytes = vm.Available
	}

	if usage, err := disk.Usage("/"); err == nil {
		report.DiskUsagePct = usage.UsedPercent
		report.DiskFreeBytes = usage.Free
	}

	return report, healthy
}
