package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var errUsage = errors.New("wrong number of arguments")

func readPassword(cfg *config, stdin io.Reader, prompt io.Writer) (string, error) {
	if !cfg.fromStdin {
		if len(cfg.args) != 1 {
			return "", errUsage
		}
		return cfg.args[0], nil
	}

	if len(cfg.args) != 0 {
		return "", errUsage
	}

	// Don't echo the password when a human is typing it
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		password, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("while reading password: %w", err)
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("while reading password: %w", err)
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := ConfigLoad(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stdout, usageLine)
		return 1
	}

	if cfg.versionInfo {
		fmt.Fprintf(stdout, "generate-password/%s (%s)\n", appVersion, buildTime)
		return 0
	}

	// Set up logging as soon as possible
	setupLogger(cfg, stderr)
	defer closeLogger()

	log.WithField("version", appVersion).
		Debug("starting generate-password")

	if err := validateUsername(cfg.username); err != nil {
		log.WithError(err).Error("invalid username")
		return 1
	}

	password, err := readPassword(cfg, stdin, stderr)
	if errors.Is(err, errUsage) {
		fmt.Fprintln(stdout, usageLine)
		return 1
	}
	if err != nil {
		log.WithError(err).Error("cannot read password")
		return 1
	}

	hash, err := HashPassword(password)
	if err != nil {
		log.WithError(err).Error("cannot hash password")
		return 1
	}

	log.WithFields(logrus.Fields{
		"username":   cfg.username,
		"from_stdin": cfg.fromStdin,
	}).Debug("password hashed")

	if cfg.hashOnly {
		_, err = fmt.Fprintln(stdout, hash)
	} else {
		err = writeGuidance(stdout, password, AccessEntry{
			Username:     cfg.username,
			PasswordHash: hash,
		})
	}
	if err != nil {
		log.WithError(err).Error("cannot write output")
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
