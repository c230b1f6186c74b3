package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	var tests = []struct {
		name       string
		expectFail bool
		username   string
	}{
		{
			name:     "Placeholder",
			username: defaultUsername,
		},
		{
			name:     "Email style",
			username: "joe@example.com",
		},
		{
			name:     "Dots and dashes",
			username: "build-bot.ci_01",
		},
		{
			name:       "Empty",
			expectFail: true,
			username:   "",
		},
		{
			name:       "Contains colon",
			expectFail: true,
			username:   "joe:admin",
		},
		{
			name:       "Contains pipe",
			expectFail: true,
			username:   "alice|bob",
		},
		{
			name:       "Contains comma",
			expectFail: true,
			username:   "joe,bob",
		},
		{
			name:       "Contains space",
			expectFail: true,
			username:   "joe bob",
		},
		{
			name:       "Trailing newline",
			expectFail: true,
			username:   "joe\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validateUsername(test.username)
			if test.expectFail {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccessEntryString(t *testing.T) {
	entry := AccessEntry{
		Username:     "joe",
		PasswordHash: "XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg=",
	}

	assert.Equal(t, "joe:XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg=", entry.String())
}

func TestWriteGuidance(t *testing.T) {
	var buf bytes.Buffer

	err := writeGuidance(&buf, "password", AccessEntry{
		Username:     defaultUsername,
		PasswordHash: "XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg=",
	})
	require.NoError(t, err)

	expected := "Original password: password\n" +
		"Hashed password: XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg=\n" +
		"\n" +
		"Use this in your ACCESS_LIST environment variable like:\n" +
		"ACCESS_LIST=username:XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg=\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteGuidanceVerbatimPassword(t *testing.T) {
	var buf bytes.Buffer

	// Format verbs in the password must not be interpreted
	err := writeGuidance(&buf, "100%s", AccessEntry{Username: "joe", PasswordHash: "x"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Original password: 100%s\n")
}
