package config

import (
	"flag"
	"os"
	"time"

	"github.com/avelev/schoolguard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   hostname of the backend to target (default from Config)
//	-i int      dashboard poll interval in seconds (default from Config)
//	-d string   path to the sqlite session database (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerHost, "a", cfg.ServerHost, "hostname of the backend to target")
	pollInterval := fs.Int("i", int(cfg.PollInterval.Seconds()), "dashboard poll interval (in seconds)")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path to the session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
}
