package config

import (
	"flag"
	"os"
	"time"

	"github.com/caexamhub/caprep/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the SQLite database file (default from Config)
//	-t int      quiz duration in seconds (default from Config)
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, so the JSON-config stage's flags pass through
// untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	quizSeconds := fs.Int("t", int(cfg.QuizDuration.Seconds()), "quiz duration (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.QuizDuration = time.Duration(*quizSeconds) * time.Second
}
