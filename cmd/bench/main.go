package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/closetext/dupfind"
)

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{})}
	go func() {
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

// measureFind builds a DocumentStore from docs and runs the full
// duplicate-extraction pipeline once, reporting wall time and memory.
func measureFind(docs map[int64]string, minLength int) (time.Duration, uint64, uint64, []dupfind.Match) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()

	store := dupfind.NewDefaultDocumentStore()
	for id, content := range docs {
		ct, err := dupfind.NewCharText([]byte(content))
		if err != nil {
			panic(err)
		}
		store.Add(ct, id)
	}
	matches, err := dupfind.NewFinder().FindDuplicates(store, minLength)
	if err != nil {
		panic(err)
	}

	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, matches
}

// runBenchmark builds M random documents of length W each; at "high"
// density every document shares one planted substring of length P, so
// the extractor does the maximum possible amount of match bookkeeping.
func runBenchmark(m, w, p, minLength, runs int, density densityType) {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		docs := make(map[int64]string, m)

		var shared []byte
		if density == densityHigh {
			shared = make([]byte, p)
			for j := range shared {
				shared[j] = byte(r.Intn(26) + 'a')
			}
		}

		for i := 0; i < m; i++ {
			doc := make([]byte, w)
			for j := range doc {
				doc[j] = byte(r.Intn(26) + 'a')
			}
			if density == densityHigh && w >= p {
				insertPos := r.Intn(w - p + 1)
				copy(doc[insertPos:], shared)
			}
			docs[int64(i)] = string(doc)
		}

		dur, peak, alloc, matches := measureFind(docs, minLength)
		fmt.Printf("%d,%d,%d,%d,%s,%.0f,%d,%d,%d\n",
			m, w, p, minLength, density, float64(dur.Nanoseconds()), peak, alloc, len(matches))
	}
}

func main() {
	m := flag.Int("m", 0, "Number of documents M")
	w := flag.Int("w", 0, "Document length W")
	p := flag.Int("p", 0, "Planted shared substring length P")
	minLength := flag.Int("min-length", 1, "Minimum match length threshold")
	runs := flag.Int("runs", 3, "Number of runs for averaging")
	d := flag.String("d", "low", "Density: low or high")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *m <= 0 || *w <= 0 || *p <= 0 || *p > *w {
		fmt.Println("Usage: go run main.go -m=<M> -w=<W> -p=<P> [-min-length=<L>] [-d=<density>] [-runs=<runs>]")
		os.Exit(1)
	}

	runBenchmark(*m, *w, *p, *minLength, *runs, densityType(*d))
}
