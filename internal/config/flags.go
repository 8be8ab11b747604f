package config

import (
	"flag"
	"os"
	"time"

	"github.com/sunyue-dev/time-exchange/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file (default from Config)
//	-u string   share URL encoded into the profile QR card
//	-q string   remote QR-rendering service endpoint
//	-w int      archive close delay in milliseconds
//	-n int      show the interrupt screen after every n witnessed moments
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-q", "-w", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local database file")
	fs.StringVar(&cfg.ShareURL, "u", cfg.ShareURL, "share URL for the profile card")
	fs.StringVar(&cfg.QRServiceEndpoint, "q", cfg.QRServiceEndpoint, "remote QR service endpoint")
	closeDelay := fs.Int("w", int(cfg.ArchiveCloseDelay.Milliseconds()), "archive close delay (in milliseconds)")
	fs.IntVar(&cfg.InterruptEvery, "n", cfg.InterruptEvery, "interrupt after every n witnessed moments")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ArchiveCloseDelay = time.Duration(*closeDelay) * time.Millisecond
}
