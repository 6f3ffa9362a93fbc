package proc

import (
	"fmt"
	"sync"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/shaik-zeeshan/circle/cmd/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Latency benchmark against a running circle daemon",
		Long:    "Issues list requests against the daemon from multiple concurrent clients and reports latency percentiles. Every request is a fresh connect/exchange, so the numbers include connection setup.",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfNumThreads  = 10
	perfNumRequests = 1000
)

func init() {
	// add flags
	key := "threads"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("Number of concurrent clients to use for the benchmark"))
	key = "requests"
	perfTestCmd.Flags().Int(key, 1000, util.WrapString("Total number of requests to issue"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	perfNumThreads = viper.GetInt("threads")
	perfNumRequests = viper.GetInt("requests")

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {
	fmt.Println("Latency benchmark for circle daemons")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(util.GetClientConfig().String())
	fmt.Printf("Threads:  %d\n", perfNumThreads)
	fmt.Printf("Requests: %d\n", perfNumRequests)
	fmt.Println()

	// Verify the daemon answers before hammering it
	if _, err := storeClient.List(); err != nil {
		return fmt.Errorf("daemon not reachable: %w", err)
	}

	timer := metrics.NewTimer()
	errCounter := metrics.NewCounter()

	var wg sync.WaitGroup
	perThread := perfNumRequests / perfNumThreads

	start := time.Now()
	for i := 0; i < perfNumThreads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perThread; j++ {
				reqStart := time.Now()
				_, err := storeClient.List()
				timer.UpdateSince(reqStart)
				if err != nil {
					errCounter.Inc(1)
				}
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	// Report results
	fmt.Printf("Completed %d requests in %s (%d errors)\n", timer.Count(), elapsed, errCounter.Count())
	fmt.Printf("Throughput: %.1f req/s\n", float64(timer.Count())/elapsed.Seconds())
	fmt.Printf("Latency mean:   %s\n", time.Duration(int64(timer.Mean())))
	fmt.Printf("Latency p50:    %s\n", time.Duration(int64(timer.Percentile(0.50))))
	fmt.Printf("Latency p95:    %s\n", time.Duration(int64(timer.Percentile(0.95))))
	fmt.Printf("Latency p99:    %s\n", time.Duration(int64(timer.Percentile(0.99))))
	fmt.Printf("Latency max:    %s\n", time.Duration(timer.Max()))

	return nil
}
