package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/toringe/bgpchart/chart"
	"github.com/toringe/bgpchart/config"
	"github.com/toringe/bgpchart/download"
	"github.com/toringe/bgpchart/fetcher"
)

const usage = `usage: bgpchart [-h] [-ip {v4,v6}] [-c {a,o,p}] [-o path] [-v] asn

Download a BGP statistics chart for an AS number.

positional arguments:
  asn          AS number, with or without the AS prefix (e.g. 2828 or AS2828)

options:
  -h           show this help message and exit
  -ip {v4,v6}  IP version of the chart (default: v4)
  -c {a,o,p}   chart type: a=prefixes announced, o=prefixes originated,
               p=peer count (default: a)
  -o path      output file, or an existing directory for the derived
               filename (default: derived filename in the current directory)
  -v           verbose output
`

// options holds the parsed command line.
type options struct {
	asn       string
	ipVersion string
	chartType string
	outPath   string
	verbose   bool
}

func parseArgs(args []string) (options, error) {
	flags := flag.NewFlagSet("bgpchart", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
	}

	var opts options
	flags.StringVar(&opts.ipVersion, "ip", "v4", "IP version (v4 or v6)")
	flags.StringVar(&opts.chartType, "c", "a", "chart type (a, o or p)")
	flags.StringVar(&opts.outPath, "o", "", "output file or existing directory")
	flags.BoolVar(&opts.verbose, "v", false, "verbose output")

	if err := flags.Parse(args); err != nil {
		return options{}, err
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return options{}, errors.New("the following arguments are required: asn")
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return options{}, fmt.Errorf("unrecognized arguments: %s", strings.Join(flags.Args()[1:], " "))
	}
	opts.asn = flags.Arg(0)

	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "bgpchart: error: %s\n", err)
		os.Exit(2)
	}

	log.SetOutput(os.Stderr)
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	req, err := chart.NewRequest(opts.asn, opts.ipVersion, opts.chartType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgpchart: error: %s\n", err)
		os.Exit(2)
	}
	log.Debugf("validated AS number: %s", req.ASNumber)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgpchart: error: %s\n", err)
		os.Exit(1)
	}

	outPath, err := download.New(req, opts.outPath, cfg, opts.verbose).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgpchart: error: %s\n", err)
		os.Exit(exitCode(err))
	}

	fmt.Printf("Saved %s: %s\n", req.Title(), outPath)
}

// exitCode maps a failed download to its documented exit code.
func exitCode(err error) int {
	var pathErr *fs.PathError
	var linkErr *os.LinkError

	switch {
	case errors.Is(err, fetcher.ErrEmptyResponse):
		return 4
	case errors.As(err, &pathErr), errors.As(err, &linkErr):
		return 5
	default:
		// transport failures, timeouts and bad statuses
		return 3
	}
}
