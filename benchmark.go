package main

import (
	"encoding/csv"
	"runtime"
	"strconv"
)

// BenchResult is one row of the sweep output.
type BenchResult struct {
	Run         string
	FPTarget    float64
	FPObserved  float64
	Bits        uint32
	K           int
	FilterBytes uint64
	AllocMB     uint64
}

type MemoryStats struct {
	AllocMB      uint64
	TotalAllocMB uint64
	HeapObjects  uint64
}

// GetDetailedMem samples live heap usage. It forces a GC first so the
// numbers reflect actual live data, not garbage.
func GetDetailedMem() MemoryStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return MemoryStats{
		AllocMB:      m.Alloc / 1024 / 1024,
		TotalAllocMB: m.TotalAlloc / 1024 / 1024,
		HeapObjects:  m.HeapObjects,
	}
}

// Record writes one result row to the CSV.
func Record(w *csv.Writer, res BenchResult) {
	w.Write([]string{
		res.Run,
		strconv.FormatFloat(res.FPTarget, 'g', -1, 64),
		strconv.FormatFloat(res.FPObserved, 'g', -1, 64),
		strconv.FormatUint(uint64(res.Bits), 10),
		strconv.Itoa(res.K),
		strconv.FormatUint(res.FilterBytes, 10),
		strconv.FormatUint(res.AllocMB, 10),
	})
}
