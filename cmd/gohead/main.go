// Package main provides the gohead command-line tool, which prints the first
// part of files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sgaunet/gohead/pkg/app"
	"github.com/sgaunet/gohead/pkg/config"
	"github.com/sgaunet/gohead/pkg/constants"
	"github.com/sgaunet/gohead/pkg/source"
	"github.com/sgaunet/gohead/pkg/source/s3source"
)

const usageText = `Usage: gohead [OPTION]... [FILE]...
Print the first 10 lines of each FILE to standard output.
With more than one FILE, precede each with a header giving the file name.

With no FILE, or when FILE is -, read standard input.
FILE may be an s3://bucket/key URI when S3REGION is set.

Mandatory arguments to long options are mandatory for short options too.
  -c,  --bytes=NUM          print the first NUM bytes of each file
  -n,  --lines=NUM          print the first NUM lines instead of the first 10
  -q,  --quiet              never print headers giving file names
  -v,  --verbose            always print headers giving file names
  -z,  --zero-terminated    line delimiter is NUL, not newline
       --help               display this help and exit

NUM may have a multiplier suffix:
b 512, kB 1000, K 1024, MB 1000*1000, M 1024*1024,
GB 1000*1000*1000, G 1024*1024*1024
`

const configFileEnv = "GOHEAD_CONFIG"

func printUsage(w io.Writer, cfg *config.Config) {
	fmt.Fprint(w, usageText)
	desc, err := cfg.Description()
	if err != nil {
		return
	}
	fmt.Fprintf(w, "\n%s\n", desc)
}

func printHint(w io.Writer) {
	fmt.Fprintf(w, "Try '%s --help' for more information.\n", constants.ProgramName)
}

func loadConfiguration(cfgFile string) (*config.Config, error) {
	if len(cfgFile) > 0 {
		return config.NewConfigFromFile(cfgFile)
	}
	return config.NewConfigFromEnv()
}

// run is main without the process exit, so it can be tested.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfiguration(os.Getenv(configFileEnv))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", constants.ProgramName, err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s: configuration validation failed: %v\n", constants.ProgramName, err)
		return 1
	}

	defaults, err := cfg.SplitOptions()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", constants.ProgramName, err)
		return 1
	}
	rc, files, err := parseArgs(append(defaults, args...))
	var sizeErr *errInvalidSize
	switch {
	case errors.Is(err, flag.ErrHelp):
		printUsage(stdout, cfg)
		return 1
	case errors.As(err, &sizeErr):
		fmt.Fprintln(stderr, sizeErr.Error())
		printHint(stderr)
		return 1
	case err != nil:
		fmt.Fprintf(stderr, "%s: %v\n", constants.ProgramName, err)
		printHint(stderr)
		return 1
	}

	l := initTrace(stderr, cfg.DebugLevel, cfg.NoLogTime)
	l.Debug("configuration", "config", cfg.Redacted(), "unit", rc.BoundaryKind, "count", rc.Magnitude, "verbose", rc.Verbose)

	resolver := source.NewResolver(stdin)
	if cfg.IsS3ConfigValid() {
		remote, err := s3source.New(ctx, cfg.S3cfg)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", constants.ProgramName, err)
			return 1
		}
		resolver.SetRemote(remote)
	}

	a := app.NewApp(rc, resolver, stdout, stderr)
	a.SetLogger(l)
	if err := a.Run(ctx, files); err != nil {
		l.Debug("error(s) occurred", "error", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
