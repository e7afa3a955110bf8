// Command simulate computes the post-trade output reserve of a
// constant-product pool and prints it as an ABI-encoded uint256:
//
//	simulate <alphaIn> <reserveIn> <reserveOut>
//
// The result is one line on stdout, "0x" followed by 64 lowercase hex
// characters. Logs go to stderr so stdout stays a clean data channel.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/defistate/reserve-simulator-go/simulator"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	logLevel := flag.String("log-level", "error", "slog level: debug, info, warn, error")
	batch := flag.Bool("batch", false, "read <alphaIn> <reserveIn> <reserveOut> triples from stdin, one per line")
	flag.Usage = usage
	flag.Parse()

	rootLogHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)})
	rootLogger := slog.New(rootLogHandler)

	sim, err := simulator.New(&simulator.Config{
		Registry: prometheus.NewRegistry(),
		Logger:   rootLogger.With("component", "simulator"),
	})
	if err != nil {
		rootLogger.Error("Failed to initialize simulator", "error", err)
		os.Exit(exitFailure)
	}

	if *batch {
		os.Exit(runBatch(sim, rootLogger))
	}
	os.Exit(runOnce(sim, rootLogger, flag.Args()))
}

func runOnce(sim *simulator.Simulator, logger *slog.Logger, args []string) int {
	in, err := simulator.ParseTradeInputs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		return exitUsage
	}

	res, err := sim.Run(in)
	if err != nil {
		logger.Error("Simulation failed", "error", err)
		return exitFailure
	}

	fmt.Println(res.Encoded)
	return 0
}

// runBatch reads one triple per line from stdin and emits one encoded result
// per line. The first failing line terminates the run.
func runBatch(sim *simulator.Simulator, logger *slog.Logger) int {
	scanner := bufio.NewScanner(os.Stdin)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		in, err := simulator.ParseTradeInputs(fields)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			return exitUsage
		}

		res, err := sim.Run(in)
		if err != nil {
			logger.Error("Simulation failed", "line", lineNo, "error", err)
			return exitFailure
		}

		fmt.Println(res.Encoded)
	}

	if err := scanner.Err(); err != nil {
		logger.Error("Failed to read stdin", "error", err)
		return exitFailure
	}
	return 0
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <alphaIn> <reserveIn> <reserveOut>\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "Arguments are non-negative base-10 integers of arbitrary length.")
	flag.PrintDefaults()
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
