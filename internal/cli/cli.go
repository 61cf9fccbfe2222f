package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
)

// DefaultScenario is run when no scenario is named.
const DefaultScenario = "wall-gap"

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	Scenario  string
	File      string
	All       bool
	List      bool
	Heuristic string // empty keeps each scenario's own heuristic
	Conn      int    // 0 keeps each scenario's own connectivity
	LogLevel  slog.Level
}

// Overrides reports whether the search options differ from the scenarios' own.
func (c *Config) Overrides() bool {
	return c.Heuristic != "" || c.Conn != 0
}

// Parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly (help was requested), or an *ExitError with code 2.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - A* shortest paths on walkable/blocked grids.

Usage:
  gridpath [options] [SCENARIO]

Arguments:
  SCENARIO
    Name of the scenario to run (default "`+DefaultScenario+`").

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Name of the scenario to run.")
	fileFlag := flagSet.String("file", "", "YAML scenario file. The built-in catalogue is used when empty.")
	allFlag := flagSet.Bool("all", false, "Run every scenario and report PASS/FAIL for each.")
	listFlag := flagSet.Bool("list", false, "List scenario names and exit.")
	heuristicFlag := flagSet.String("heuristic", "", "Override the heuristic. Options: "+strings.Join(astar.HeuristicNames(), ", ")+".")
	connFlag := flagSet.Int("conn", 0, "Override connectivity. Options: 4 or 8.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	name := *scenarioFlag
	if name == "" && flagSet.NArg() > 0 {
		name = flagSet.Arg(0)
	}
	if name == "" {
		name = DefaultScenario
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *heuristicFlag != "" {
		if _, err := astar.HeuristicByName(*heuristicFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}
	switch *connFlag {
	case 0, 4, 8:
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid conn %d: must be 4 or 8", *connFlag)}
	}

	return &Config{
		Scenario:  name,
		File:      *fileFlag,
		All:       *allFlag,
		List:      *listFlag,
		Heuristic: *heuristicFlag,
		Conn:      *connFlag,
		LogLevel:  level,
	}, false, nil
}
