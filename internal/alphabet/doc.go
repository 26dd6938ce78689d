// Package alphabet defines the character sequences random strings are drawn from.
// It provides the Alphabet value type, a set of named presets and helpers to combine them.
package alphabet
