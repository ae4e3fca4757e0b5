package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sync"
	"time"

	goMetrics "github.com/MrEthical07/goMetrics"
	"github.com/MrEthical07/goMetrics/classification"
)

func main() {
	var (
		samples   = flag.Int("samples", 1000000, "number of synthetic samples")
		batch     = flag.Int("batch", 1024, "samples per update batch")
		shards    = flag.Int("shards", 8, "number of concurrent accumulator shards")
		bins      = flag.Int("bins", 1000, "histogram bins for the binned AUROC estimator")
		threshold = flag.Float64("threshold", 0.5, "decision threshold for the stat-scores accumulator")
		seed      = flag.Int64("seed", 1, "random seed for the synthetic stream")
	)
	flag.Parse()

	if *samples <= 0 || *batch <= 0 || *shards <= 0 {
		fmt.Fprintln(os.Stderr, "samples, batch, and shards must be > 0")
		os.Exit(2)
	}
	if *bins < 2 {
		fmt.Fprintln(os.Stderr, "bins must be >= 2")
		os.Exit(2)
	}

	suite := goMetrics.NewSuite()
	fmt.Printf("run %s: %d samples, %d shards, batch %d\n",
		suite.RunID(), *samples, *shards, *batch)

	type shard struct {
		scores *classification.BinaryStatScores
		exact  *classification.BinaryAUROC
		binned *classification.BinaryAUROC
	}

	makeShard := func() (*shard, error) {
		scores, err := classification.NewBinaryStatScores(*threshold)
		if err != nil {
			return nil, err
		}
		exact, err := classification.NewBinaryAUROC(0)
		if err != nil {
			return nil, err
		}
		binned, err := classification.NewBinaryAUROC(*bins)
		if err != nil {
			return nil, err
		}
		return &shard{scores: scores, exact: exact, binned: binned}, nil
	}

	workers := make([]*shard, *shards)
	for i := range workers {
		s, err := makeShard()
		if err != nil {
			fmt.Fprintf(os.Stderr, "shard setup failed: %v\n", err)
			os.Exit(1)
		}
		workers[i] = s
	}

	perShard := *samples / *shards
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < *shards; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(*seed + int64(worker)*7919))
			preds := make([]float64, *batch)
			targets := make([]int, *batch)
			s := workers[worker]

			remaining := perShard
			for remaining > 0 {
				n := *batch
				if n > remaining {
					n = remaining
				}
				fillBatch(rng, preds[:n], targets[:n])
				if err := s.scores.Update(preds[:n], targets[:n]); err != nil {
					fmt.Fprintf(os.Stderr, "stat-scores update failed: %v\n", err)
					os.Exit(1)
				}
				if err := s.exact.Update(preds[:n], targets[:n]); err != nil {
					fmt.Fprintf(os.Stderr, "exact auroc update failed: %v\n", err)
					os.Exit(1)
				}
				if err := s.binned.Update(preds[:n], targets[:n]); err != nil {
					fmt.Fprintf(os.Stderr, "binned auroc update failed: %v\n", err)
					os.Exit(1)
				}
				remaining -= n
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	merged, err := makeShard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "merge setup failed: %v\n", err)
		os.Exit(1)
	}
	mergeStart := time.Now()
	for _, s := range workers {
		if err := merged.scores.Merge(s.scores); err != nil {
			fmt.Fprintf(os.Stderr, "merge failed: %v\n", err)
			os.Exit(1)
		}
		if err := merged.exact.Merge(s.exact); err != nil {
			fmt.Fprintf(os.Stderr, "merge failed: %v\n", err)
			os.Exit(1)
		}
		if err := merged.binned.Merge(s.binned); err != nil {
			fmt.Fprintf(os.Stderr, "merge failed: %v\n", err)
			os.Exit(1)
		}
	}
	mergeElapsed := time.Since(mergeStart)

	total := merged.scores.Total
	fmt.Println("---- results ----")
	fmt.Printf("ingest: %d samples in %s (%.0f samples/sec across %d shards)\n",
		total, elapsed.Round(time.Millisecond),
		float64(total)/elapsed.Seconds(), *shards)
	fmt.Printf("merge: %s\n", mergeElapsed.Round(time.Microsecond))
	fmt.Printf("counts: tp=%d fp=%d fn=%d tn=%d\n",
		merged.scores.TruePositive, merged.scores.FalsePositive,
		merged.scores.FalseNegative, merged.scores.TrueNegative)

	if err := suite.Register("auroc_exact", merged.exact); err != nil {
		fmt.Fprintf(os.Stderr, "register failed: %v\n", err)
		os.Exit(1)
	}
	if err := suite.Register("auroc_binned", merged.binned); err != nil {
		fmt.Fprintf(os.Stderr, "register failed: %v\n", err)
		os.Exit(1)
	}
	snap := suite.MetricsSnapshot()
	exact, okExact := snap.Values["auroc_exact"]
	binned, okBinned := snap.Values["auroc_binned"]
	if !okExact || !okBinned {
		fmt.Fprintln(os.Stderr, "auroc undefined: synthetic stream produced a single class")
		os.Exit(1)
	}
	fmt.Printf("auroc: exact=%.6f binned(%d)=%.6f abs-diff=%.2e\n",
		exact, *bins, binned, math.Abs(exact-binned))
}

// fillBatch draws targets from a fair coin and scores from class-conditional
// triangular-ish distributions, so positives tend to score higher and the
// stream has a non-trivial AUROC.
func fillBatch(rng *rand.Rand, preds []float64, targets []int) {
	for i := range preds {
		if rng.Intn(2) == 1 {
			targets[i] = 1
			preds[i] = math.Max(rng.Float64(), rng.Float64())
		} else {
			targets[i] = 0
			preds[i] = math.Min(rng.Float64(), rng.Float64())
		}
	}
}
