package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/knownkit/known"
	"github.com/knownkit/known/expr"
)

func main() {
	var (
		oneShot     = flag.String("e", "", "Evaluate one expression and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		known.SetLogger(logger)
		expr.SetLogger(logger)
	}

	if *oneShot != "" {
		res, err := expr.Eval(*oneShot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(res)
		return
	}

	if *interactive || term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runBatch(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runBatch evaluates stdin one expression per line, results to stdout
// and per-line failures to stderr.
func runBatch() error {
	sc := bufio.NewScanner(os.Stdin)
	line := 0
	for sc.Scan() {
		line++
		src := strings.TrimSpace(sc.Text())
		if src == "" {
			continue
		}
		res, err := expr.Eval(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
			continue
		}
		fmt.Println(res)
	}
	return sc.Err()
}
