package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	weft "github.com/weft-dev/weft"
	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/host"
)

func benchCmd() *cobra.Command {
	var (
		items    int
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure render throughput",
		Long: `Render a synthetic list repeatedly and report pass throughput.

Each pass mutates every list item's text, so the reconciler walks the
full tree and emits one update per item. This exercises the hot path
without host I/O.

Examples:
  weft bench
  weft bench --items=500 --duration=10s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(items, duration)
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 100, "List items per tree")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 5*time.Second, "How long to run")

	return cmd
}

func runBench(items int, duration time.Duration) error {
	container := host.NewContainer("body")
	root := weft.New(container, host.NewMemoryHost())

	printBanner()
	fmt.Println()
	info("items: %d, duration: %s", items, duration)

	// Warm up with the initial placement pass.
	if err := root.Render(benchPage(items, 0)); err != nil {
		return err
	}

	var (
		passes int
		units  int
		start  = time.Now()
	)
	for gen := 1; time.Since(start) < duration; gen++ {
		if err := root.Render(benchPage(items, gen)); err != nil {
			return err
		}
		passes++
		units += root.LastStats().UnitsOfWork
	}
	elapsed := time.Since(start)

	fmt.Println()
	success("%d passes in %s", passes, elapsed.Round(time.Millisecond))
	info("%.0f passes/sec", float64(passes)/elapsed.Seconds())
	info("%.0f units/sec", float64(units)/elapsed.Seconds())
	info("%.2fµs per unit", elapsed.Seconds()/float64(units)*1e6)
	return nil
}

func benchPage(items, gen int) *element.Element {
	list := make([]*element.Element, items)
	for i := range list {
		list[i] = element.Li(element.Textf("item %d gen %d", i, gen))
	}
	return element.Div(element.Class("bench"), element.Ul(list))
}
