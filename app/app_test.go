package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/pwgen/internal/randstr"
)

// run executes pwgen with args against an empty config directory.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", t.TempDir(), "--log-level", "error"}, args...))

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestGenerateLength(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantLen int
	}{
		{"no argument", nil, 12},
		{"explicit length", []string{"20"}, 20},
		{"zero length", []string{"0"}, 0},
		{"not a number", []string{"abc"}, 12},
		{"negative", []string{"--", "-5"}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)

			assert.True(t, strings.HasSuffix(out, "\n"))

			s := strings.TrimSuffix(out, "\n")
			assert.Len(t, s, tt.wantLen)

			for _, r := range s {
				assert.True(t, r >= 'A' && r <= 'Z', "unexpected character %q", r)
			}
		})
	}
}

func TestGenerateTooLong(t *testing.T) {
	_, _, err := run(t, "5000")
	require.ErrorIs(t, err, randstr.ErrLengthTooLarge)
}

func TestGenerateTooManyArguments(t *testing.T) {
	_, _, err := run(t, "1", "2")
	require.Error(t, err)
}

func TestGenerateCharsetAndCount(t *testing.T) {
	out, _, err := run(t, "8", "--charset", "ab", "-n", "3")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 3)

	for _, l := range got {
		assert.Len(t, l, 8)
		assert.Empty(t, strings.Trim(l, "ab"))
	}
}

func TestGenerateAlphabetPresets(t *testing.T) {
	out, _, err := run(t, "64", "--alphabet", "digits")
	require.NoError(t, err)

	assert.Empty(t, strings.Trim(strings.TrimSuffix(out, "\n"), "0123456789"))

	_, _, err = run(t, "--alphabet", "nope")
	require.Error(t, err)
}

func TestGenerateInvalidCount(t *testing.T) {
	_, _, err := run(t, "-n", "0")
	require.ErrorIs(t, err, ErrInvalidCount)
}

func TestGenerateSeed(t *testing.T) {
	a, _, err := run(t, "32", "--seed", "99")
	require.NoError(t, err)

	b, _, err := run(t, "32", "--seed", "99")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateHash(t *testing.T) {
	out, _, err := run(t, "10", "--hash")
	require.NoError(t, err)

	parts := strings.Split(strings.TrimSuffix(out, "\n"), "\t")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 10)
	assert.True(t, strings.HasPrefix(parts[1], "$argon2id$"))
}

func TestGenerateMetrics(t *testing.T) {
	out, stderr, err := run(t, "5", "-n", "2", "--metrics")
	require.NoError(t, err)

	assert.Len(t, lines(out), 2)
	assert.Contains(t, stderr, "pwgen_generated_strings_total 2")
	assert.Contains(t, stderr, "pwgen_generated_characters_total 10")
}

func TestAlphabetsCommand(t *testing.T) {
	out, _, err := run(t, "alphabets")
	require.NoError(t, err)

	assert.Contains(t, out, "upper")
	assert.Contains(t, out, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	assert.Len(t, lines(out), 8)
}

func TestConfigCommand(t *testing.T) {
	out, _, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "defaultLength = 12")

	out, _, err = run(t, "config", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"DefaultLength": 12`)
}

func TestParseLength(t *testing.T) {
	assert.Equal(t, 12, parseLength(nil, 12))
	assert.Equal(t, 7, parseLength([]string{"7"}, 12))
	assert.Equal(t, 12, parseLength([]string{"seven"}, 12))
	assert.Equal(t, 12, parseLength([]string{"-7"}, 12))
	assert.Equal(t, 12, parseLength([]string{""}, 12))
}
