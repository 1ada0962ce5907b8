// SPDX-License-Identifier: MIT

package hostinfo

import (
	"errors"
	"fmt"
	"strings"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	gmem "github.com/shirou/gopsutil/v4/mem"
)

// ErrNoCPUInfo is returned when the platform reports no CPU entries.
var ErrNoCPUInfo = errors.New("hostinfo: no CPU information")

const mib = 1024 * 1024

// Info is a compact host description.
type Info struct {
	CPUModel    string  // model name of the first reported CPU
	LogicalCPUs int     // logical cores (hyperthreads included)
	MHz         float64 // nominal frequency of the first CPU, 0 if unknown
	TotalMemory uint64  // bytes of physical memory
}

// String renders e.g. "Intel(R) Xeon(R) CPU @ 2.20GHz, 8 cores, 2200.00 MHz, 32096 MiB".
// The model and frequency are omitted when unknown (common on ARM and in containers).
func (i Info) String() string {
	parts := make([]string, 0, 4)
	if model := strings.TrimSpace(i.CPUModel); model != "" {
		parts = append(parts, model)
	}
	parts = append(parts, fmt.Sprintf("%d cores", i.LogicalCPUs))
	if i.MHz > 0 {
		parts = append(parts, fmt.Sprintf("%.2f MHz", i.MHz))
	}
	parts = append(parts, fmt.Sprintf("%d MiB", i.TotalMemory/mib))

	return strings.Join(parts, ", ")
}

// Probe reads CPU and memory details through gopsutil.
func Probe() (Info, error) {
	var info Info

	cpus, err := gcpu.Info()
	if err != nil {
		return info, fmt.Errorf("hostinfo: cpu info: %w", err)
	}
	if len(cpus) == 0 {
		return info, ErrNoCPUInfo
	}
	info.CPUModel = cpus[0].ModelName
	info.MHz = cpus[0].Mhz

	if info.LogicalCPUs, err = gcpu.Counts(true); err != nil {
		return info, fmt.Errorf("hostinfo: cpu counts: %w", err)
	}

	vm, err := gmem.VirtualMemory()
	if err != nil {
		return info, fmt.Errorf("hostinfo: memory: %w", err)
	}
	info.TotalMemory = vm.Total

	return info, nil
}
