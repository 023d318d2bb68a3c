package main

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// sysInfo describes the machine a run happened on.
type sysInfo struct {
	Platform string
	CPU      string
	Cores    int
	Memory   string
}

// probeHost collects sysInfo. Fields that cannot be read stay empty; the
// first error is returned alongside whatever was collected.
func probeHost(ctx context.Context) (sysInfo, error) {
	var (
		info  sysInfo
		first error
	)
	keep := func(err error) {
		if first == nil {
			first = err
		}
	}

	if h, err := host.InfoWithContext(ctx); err != nil {
		keep(fmt.Errorf("host: %w", err))
	} else {
		info.Platform = h.Platform + " " + h.PlatformVersion
	}
	if cs, err := cpu.InfoWithContext(ctx); err != nil {
		keep(fmt.Errorf("cpu: %w", err))
	} else if len(cs) > 0 {
		info.CPU = cs[0].ModelName
	}
	if n, err := cpu.CountsWithContext(ctx, true); err != nil {
		keep(fmt.Errorf("cpu count: %w", err))
	} else {
		info.Cores = n
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		keep(fmt.Errorf("memory: %w", err))
	} else {
		info.Memory = fmt.Sprintf("%d GB", vm.Total/1024/1024/1024)
	}

	return info, first
}

func logHost(ctx context.Context, logger log.Logger) {
	info, err := probeHost(ctx)
	if err != nil {
		level.Warn(logger).Log("msg", "host probe incomplete", "err", err)
	}
	level.Info(logger).Log("platform", info.Platform, "cpu", info.CPU, "cores", info.Cores, "memory", info.Memory)
}
