package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	systemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medrec_system_cpu_usage_percent",
			Help: "Current CPU usage percentage",
		},
		[]string{"service"},
	)

	systemMemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medrec_system_memory_usage_bytes",
			Help: "Current memory usage in bytes",
		},
		[]string{"service", "type"},
	)

	goGoroutines = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medrec_go_goroutines",
			Help: "Number of goroutines that currently exist",
		},
		[]string{"service"},
	)

	goHeapAlloc = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "medrec_go_heap_alloc_bytes",
			Help: "Heap memory usage in bytes",
		},
		[]string{"service"},
	)
)

// StartSystemMetricsCollection starts a background loop updating system and
// Go runtime gauges every 15 seconds. Only started when the metrics listener
// is enabled.
func StartSystemMetricsCollection(service string) {
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			collectSystemMetrics(service)
		}
	}()
}

func collectSystemMetrics(service string) {
	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		systemCPUUsage.WithLabelValues(service).Set(percentages[0])
	} else if err != nil {
		log.Debug().Err(err).Msg("Failed to collect CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		systemMemoryUsage.WithLabelValues(service, "used").Set(float64(vm.Used))
		systemMemoryUsage.WithLabelValues(service, "available").Set(float64(vm.Available))
	} else {
		log.Debug().Err(err).Msg("Failed to collect memory usage")
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	goGoroutines.WithLabelValues(service).Set(float64(runtime.NumGoroutine()))
	goHeapAlloc.WithLabelValues(service).Set(float64(ms.HeapAlloc))
}
