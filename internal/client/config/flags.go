package config

import (
	"flag"
	"os"

	"github.com/ivycraft/navigator/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-s string     credential store driver (sqlite, bolt, memory)
//	-p string     credential store file
//	-d duration   simulated login/signup latency, e.g. 500ms
//	-l string     log level
//
// Unknown arguments are filtered out first so the -c flag and anything else
// on the command line do not trip the parser. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-p", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "credential store driver")
	fs.StringVar(&cfg.StorePath, "p", cfg.StorePath, "credential store file")
	fs.DurationVar(&cfg.AuthDelay, "d", cfg.AuthDelay, "simulated login/signup latency")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
