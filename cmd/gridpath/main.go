package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/fixtures"
	"github.com/katalvlaran/gridpath/internal/cli"
)

// main is the entrypoint for the gridpath command.
func main() {
	// Use a minimal logger until the level flag is parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, runs the selected scenarios and writes a report to out.
func run(out io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	scenarios, err := load(cfg.File)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	slog.Debug("Scenarios loaded.", "count", len(scenarios), "file", cfg.File)

	if cfg.List {
		for _, s := range scenarios {
			if s.Description == "" {
				fmt.Fprintln(out, s.Name)
				continue
			}
			fmt.Fprintf(out, "%-20s %s\n", s.Name, s.Description)
		}
		return nil
	}

	selected := scenarios
	if !cfg.All {
		s, err := fixtures.Lookup(scenarios, cfg.Scenario)
		if err != nil {
			return &cli.ExitError{Code: 2, Message: err.Error()}
		}
		selected = []fixtures.Scenario{s}
	}

	failed := 0
	for _, s := range selected {
		if cfg.Heuristic != "" {
			s.Heuristic = cfg.Heuristic
		}
		if cfg.Conn != 0 {
			s.Connectivity = cfg.Conn
		}
		if !runScenario(out, s, !cfg.Overrides()) {
			failed++
		}
	}

	if len(selected) > 1 {
		fmt.Fprintf(out, "\n%s scenarios, %s failed\n", humanize.Comma(int64(len(selected))), humanize.Comma(int64(failed)))
	}
	if failed > 0 {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%d of %d scenarios failed", failed, len(selected))}
	}

	return nil
}

func load(path string) ([]fixtures.Scenario, error) {
	if path == "" {
		return fixtures.Builtin()
	}
	return fixtures.LoadFile(path)
}

// runScenario runs s, prints its report and returns false when check is set
// and the result does not match the expectation. Without check the status is RUN.
func runScenario(out io.Writer, s fixtures.Scenario, check bool) bool {
	if g, err := s.Grid(); err == nil {
		slog.Debug("Grid layout.", "scenario", s.Name, "rows", g.Rows(), "cols", g.Cols(), "layout", "\n"+g.String())
	}

	began := time.Now()
	res, err := s.Run()
	elapsed := time.Since(began)

	status, ok := "RUN ", true
	var mismatch error
	if check {
		if mismatch = s.Check(res, err); mismatch != nil {
			status, ok = "FAIL", false
		} else {
			status = "PASS"
		}
	}
	fmt.Fprintf(out, "%s %s\n", status, s.Name)

	switch {
	case err == nil:
		fmt.Fprintf(out, "     cost %s, expanded %s, created %s, %s\n",
			humanize.Comma(int64(res.Cost)), humanize.Comma(int64(res.Expanded)), humanize.Comma(int64(res.Created)), elapsed)
		fmt.Fprintf(out, "     path %v\n", res.Path)
	case errors.Is(err, astar.ErrNoPath):
		fmt.Fprintf(out, "     no path, expanded %s, created %s, %s\n",
			humanize.Comma(int64(res.Expanded)), humanize.Comma(int64(res.Created)), elapsed)
		explainNoPath(out, s)
	default:
		fmt.Fprintf(out, "     %v\n", err)
	}
	if mismatch != nil {
		fmt.Fprintf(out, "     %v\n", mismatch)
	}

	return ok
}

// explainNoPath reports how the grid splits into regions when start and goal are disconnected.
func explainNoPath(out io.Writer, s fixtures.Scenario) {
	g, err := s.Grid()
	if err != nil {
		return
	}
	conn, err := s.Conn()
	if err != nil {
		return
	}
	if g.Connected(s.StartCoord(), s.GoalCoord(), conn) {
		return
	}
	_, count := g.Regions(conn)
	fmt.Fprintf(out, "     start and goal lie in different regions (%s %s-connected regions)\n",
		humanize.Comma(int64(count)), conn)

	route, walls, err := g.Breach(s.StartCoord(), s.GoalCoord(), conn)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "     clearing %s blocked %s would connect them: %v\n",
		humanize.Comma(int64(walls)), plural(walls, "cell", "cells"), route)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
