package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

const defaultUsername = "username"

// AccessEntry is a single username:hash pair of an ACCESS_LIST value.
type AccessEntry struct {
	Username     string
	PasswordHash string
}

func (e AccessEntry) String() string {
	return e.Username + ":" + e.PasswordHash
}

func validateUsername(name string) error {
	if name == "" {
		return errors.New("username is empty")
	}

	// ACCESS_LIST is split on '|' into pairs, then on ':'
	if strings.ContainsAny(name, ":|,") {
		return fmt.Errorf("username %q must not contain ':', '|' or ','", name)
	}

	if strings.IndexFunc(name, unicode.IsSpace) != -1 {
		return fmt.Errorf("username %q must not contain whitespace", name)
	}

	return nil
}

func writeGuidance(w io.Writer, password string, entry AccessEntry) error {
	_, err := fmt.Fprintf(w,
		"Original password: %s\n"+
			"Hashed password: %s\n"+
			"\n"+
			"Use this in your ACCESS_LIST environment variable like:\n"+
			"ACCESS_LIST=%s\n",
		password, entry.PasswordHash, entry)
	return err
}
