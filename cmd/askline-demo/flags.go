// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --only, --theme, --vim, --verbose, --version

package main

import "flag"

type cliArgs struct {
	only    string
	theme   string
	vim     bool
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.only, "only", "", "Run a single demo (text, select, multiselect, reorder, password, date, number, confirm, editor)")
	flag.StringVar(&args.theme, "theme", "", "Path to a YAML render configuration")
	flag.BoolVar(&args.vim, "vim", false, "Enable vim motion keys where supported")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging to stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
