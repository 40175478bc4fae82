package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/plotter"

	"github.com/bloom-query-bench/bfmark/bloom"
	"github.com/bloom-query-bench/bfmark/dataset"
	"github.com/bloom-query-bench/bfmark/store"
)

func main() {
	var (
		datasetPath = flag.String("dataset", "", "optional tab-separated click-log collection with a ClickURL column")
		seed        = flag.Int64("seed", 42, "seed for membership and probe generation")
		outDir      = flag.String("out", "results", "output directory for csv, txt and png")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	f, err := os.Create(filepath.Join(*outDir, "results.csv"))
	if err != nil {
		log.Fatalf("create results.csv: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"Run", "FPTarget", "FPObserved", "Bits", "K", "FilterBytes", "AllocMB"})

	summary, points := runIntegerSweep(w, *seed)

	if *datasetPath != "" {
		runURLSweep(w, *datasetPath, *seed)
	}

	runStoreComparison(filepath.Join(*outDir, "pebble"), *seed)

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("write results.csv: %v", err)
	}

	resultsPath := filepath.Join(*outDir, "Results.txt")
	if err := os.WriteFile(resultsPath, []byte(summary), 0644); err != nil {
		log.Fatalf("write %s: %v", resultsPath, err)
	}

	plotPath := filepath.Join(*outDir, "fp_vs_memory.png")
	if err := PlotFPRate(points, plotPath); err != nil {
		log.Fatalf("plot: %v", err)
	}

	fmt.Println("Demonstration complete. Data ready for analysis.")
}

// runIntegerSweep builds one filter per false-positive target over the
// same 10,000-integer membership set and measures the observed rate on
// 1,000 never-inserted probes.
func runIntegerSweep(w *csv.Writer, seed int64) (summary string, points plotter.XYs) {
	members, _, nonMembers := MembershipSets(seed)

	var b strings.Builder
	for _, fpTarget := range []float64{0.01, 0.001, 0.0001} {
		fmt.Printf("Testing integer set (FP target: %g)\n", fpTarget)

		filter, err := bloom.New(len(members), fpTarget)
		if err != nil {
			log.Fatalf("construct filter: %v", err)
		}
		for _, m := range members {
			filter.Insert(bloom.Int64Key(m))
		}

		falsePositives := 0
		for _, probe := range nonMembers {
			if filter.Test(bloom.Int64Key(probe)) {
				falsePositives++
			}
		}
		observed := float64(falsePositives) / float64(len(nonMembers))

		fmt.Printf("Desired FP rate: %g, Actual FP rate: %g\n", fpTarget, observed)
		fmt.Fprintf(&b, "Desired FP rate: %g, Actual FP rate: %g\n", fpTarget, observed)

		Record(w, BenchResult{
			Run:         "IntegerSet",
			FPTarget:    fpTarget,
			FPObserved:  observed,
			Bits:        filter.BitCount(),
			K:           filter.HashCount(),
			FilterBytes: filter.MemoryFootprint(),
			AllocMB:     GetDetailedMem().AllocMB,
		})
		points = append(points, plotter.XY{X: float64(filter.MemoryFootprint()), Y: observed})
	}
	return b.String(), points
}

// runURLSweep loads real click URLs, inserts them all, and probes with
// random strings that cannot be members.
func runURLSweep(w *csv.Writer, path string, seed int64) {
	urls, err := dataset.Load(path)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	fmt.Printf("Testing URL set (%d unique click URLs)\n", len(urls))

	filter, err := bloom.New(len(urls), 0.01)
	if err != nil {
		log.Fatalf("construct filter: %v", err)
	}
	for _, u := range urls {
		filter.Insert(bloom.StringKey(u))
	}

	falseURLs := RandomURLs(seed, probeCount)
	falsePositives := 0
	for _, u := range falseURLs {
		if filter.Test(bloom.StringKey(u)) {
			falsePositives++
		}
	}
	observed := float64(falsePositives) / float64(len(falseURLs))

	fmt.Printf("R: %d, k: %d, False Positive Rate: %g, Memory Usage: %d bytes\n",
		filter.BitCount(), filter.HashCount(), observed, filter.MemoryFootprint())

	Record(w, BenchResult{
		Run:         "ClickURLs",
		FPTarget:    0.01,
		FPObserved:  observed,
		Bits:        filter.BitCount(),
		K:           filter.HashCount(),
		FilterBytes: filter.MemoryFootprint(),
		AllocMB:     GetDetailedMem().AllocMB,
	})
}

// runStoreComparison loads the membership set into Pebble behind a
// Bloom prefilter and reports how many negative lookups the filter
// answered without a storage read.
func runStoreComparison(dir string, seed int64) {
	fmt.Println("Comparing against exact Pebble membership store")

	members, memberProbes, nonMembers := MembershipSets(seed)

	s, err := store.Open(dir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer s.Close()

	filter, err := bloom.New(len(members), 0.01)
	if err != nil {
		log.Fatalf("construct filter: %v", err)
	}
	pf := store.NewPrefiltered(s, filter)
	for _, m := range members {
		if err := pf.Put(m); err != nil {
			log.Fatalf("put %d: %v", m, err)
		}
	}

	for _, probe := range memberProbes {
		ok, err := pf.Contains(probe)
		if err != nil {
			log.Fatalf("contains %d: %v", probe, err)
		}
		if !ok {
			log.Fatalf("member %d reported absent", probe)
		}
	}
	for _, probe := range nonMembers {
		if _, err := pf.Contains(probe); err != nil {
			log.Fatalf("contains %d: %v", probe, err)
		}
	}

	fmt.Printf("Filter suppressed %d of %d negative lookups\n", pf.Suppressed(), len(nonMembers))
}
