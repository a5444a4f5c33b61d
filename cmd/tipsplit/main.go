// Command tipsplit prints the tip and per-person amounts for a bill.
//
//	tipsplit -bill 100 -split 4 -tip 0.2
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/format"
	"github.com/mmynk/tipsplit/pkg/logging"
)

func main() {
	logging.Setup()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tipsplit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	bill := fs.String("bill", "", "Bill amount, e.g. 100 or $1,250.00")
	split := fs.Int("split", 1, "Number of people splitting the bill")
	tip := fs.Float64("tip", 0, "Tip as a fraction of the bill, 0 to 1")
	maxSplit := fs.Int("max-split", calculator.DefaultMaxSplit, "Largest accepted -split")
	steps := fs.Int("steps", 0, "Snap the tip to a slider with this many intermediate stops")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *split > *maxSplit {
		fmt.Fprintf(stderr, "tipsplit: split %d exceeds -max-split %d\n", *split, *maxSplit)
		return 2
	}

	state := form.New(*steps).SetBill(*bill).SetTip(*tip)
	state.Split = *split

	result, err := state.Result()
	if err != nil {
		if errors.Is(err, calculator.ErrInvalidInput) {
			fmt.Fprintln(stderr, "tipsplit:", err)
			return 2
		}
		slog.Error("Split failed", "error", err)
		return 1
	}
	shares := calculator.Shares(result)
	display := format.NewDisplay(result, shares)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(display); err != nil {
			slog.Error("Failed to encode result", "error", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "Tip (%s):\t%s\n", display.Percentage, display.Tip)
	fmt.Fprintf(stdout, "Total:\t\t%s\n", display.Total)
	fmt.Fprintf(stdout, "Per person (%d):\t%s\n", result.Input.SplitCount, display.TotalPerPerson)
	if result.Input.SplitCount > 1 {
		fmt.Fprintf(stdout, "Shares:\t\t%s\n", strings.Join(display.Shares, ", "))
	}
	return 0
}
