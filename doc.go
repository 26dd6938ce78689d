// Package main provides the entry point of pwgen, a command line tool that
// generates random strings and passwords. Every character is drawn uniformly
// from an alphabet composed of named presets or custom characters. Settings
// come from etc/main.toml, PWGEN_* environment variables and flags.
package main
