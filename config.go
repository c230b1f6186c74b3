package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
)

var (
	appVersion = "unknown"
	buildTime  = "unknown"
)

const usageLine = "Usage: ./generate-password.py PASSWORD"

type config struct {
	logFile     string
	logFormat   string
	logLevel    string
	username    string
	fromStdin   bool
	hashOnly    bool
	versionInfo bool

	// Positional arguments left after flag parsing.
	args []string
}

// ConfigLoad parses args, then GENPASSWD_* environment variables, then the
// optional config file. Flag errors and the -h text go to output.
//
// A lone argument is always the password, even if it looks like a flag.
func ConfigLoad(args []string, output io.Writer) (*config, error) {
	cfg := &config{}

	flagset := flag.NewFlagSet("generate-password", flag.ContinueOnError)
	flagset.SetOutput(output)
	flagset.Usage = func() {
		fmt.Fprintln(output, usageLine)
		fmt.Fprintln(output, "       ./generate-password.py [flags] PASSWORD")
		fmt.Fprintln(output, "       ./generate-password.py -stdin [flags]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "A single argument is always taken as the password. GENPASSWD_* environment")
		fmt.Fprintln(output, "variables and the config file still apply to it, so e.g. GENPASSWD_HASH_ONLY=true")
		fmt.Fprintln(output, "or GENPASSWD_STDIN=true change the default output and input.")
		fmt.Fprintln(output)
		flagset.PrintDefaults()
	}

	flagset.String("config", "", "Path to config file (one 'flag value' per line)")
	flagset.StringVar(&cfg.logFile, "logfile", "", "Path to logfile")
	flagset.StringVar(&cfg.logFormat, "log_format", "default", "Log output format (default, json)")
	flagset.StringVar(&cfg.logLevel, "log_level", "info", "Minimum log level to output")
	flagset.StringVar(&cfg.username, "username", defaultUsername, "Username shown in the ACCESS_LIST example")
	flagset.BoolVar(&cfg.fromStdin, "stdin", false, "Read the password from standard input instead of the command line")
	flagset.BoolVar(&cfg.hashOnly, "hash_only", false, "Print only the hashed password")
	flagset.BoolVar(&cfg.versionInfo, "version", false, "Show version information")

	flagArgs := args
	if len(args) == 1 {
		flagArgs = nil
	}

	if err := ff.Parse(flagset, flagArgs,
		ff.WithEnvVarPrefix("GENPASSWD"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		return nil, err
	}

	if len(args) == 1 {
		cfg.args = args
	} else {
		cfg.args = flagset.Args()
	}
	return cfg, nil
}
