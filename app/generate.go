package app

import (
	"fmt"
	mrand "math/rand/v2"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/pwgen/internal/alphabet"
	"github.com/GoPowerDNS-Admin/pwgen/internal/metrics"
	"github.com/GoPowerDNS-Admin/pwgen/internal/passhash"
	"github.com/GoPowerDNS-Admin/pwgen/internal/randstr"
)

func (o *options) generate(cmd *cobra.Command, args []string) error {
	if o.count < 1 {
		return errors.Wrapf(ErrInvalidCount, "count %d", o.count)
	}

	chars, err := o.resolveAlphabet(cmd)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	gen := randstr.New(
		randstr.WithSource(o.source(cmd)),
		randstr.WithMaxLength(o.cfg.Generator.MaxLength),
		randstr.WithMetrics(metrics.New(reg)),
	)

	req := randstr.Request{
		Length:   parseLength(args, o.cfg.Generator.DefaultLength),
		Alphabet: chars,
	}

	log.Info().
		Int("length", req.Length).
		Int("count", o.count).
		Float64("entropy", randstr.Entropy(req.Length, chars.Unique().Len())).
		Msg("generating")

	out := cmd.OutOrStdout()

	for range o.count {
		s, err := gen.Generate(req)
		if err != nil {
			return err
		}

		if o.hash {
			hash, err := passhash.Hash(s)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out, "%s\t%s\n", s, hash)
			if err != nil {
				return errors.Wrap(err, "failed to write output")
			}

			continue
		}

		if _, err := fmt.Fprintln(out, s); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}

	if o.metrics {
		return metrics.Write(cmd.ErrOrStderr(), reg)
	}

	return nil
}

// resolveAlphabet picks flags over config, custom characters over presets.
func (o *options) resolveAlphabet(cmd *cobra.Command) (alphabet.Alphabet, error) {
	var (
		g       = o.cfg.Generator
		charset = g.Charset
		presets = g.Alphabet
		unique  = g.Unique
		chars   alphabet.Alphabet
		err     error
	)

	flags := cmd.Flags()

	if flags.Changed("charset") {
		charset = o.charset
	}

	if flags.Changed("alphabet") {
		presets = o.alphabet
		// an explicit preset list wins over a configured charset
		if !flags.Changed("charset") {
			charset = ""
		}
	}

	if flags.Changed("unique") {
		unique = o.unique
	}

	if charset != "" {
		chars = alphabet.New(charset)
	} else if chars, err = alphabet.Parse(presets); err != nil {
		return nil, err
	}

	if unique {
		chars = chars.Unique()
	}

	if chars.HasDuplicates() {
		log.Warn().Str("alphabet", chars.String()).Msg("alphabet has duplicate characters, the distribution is biased")
	}

	return chars, nil
}

// source returns a seeded PCG source for --seed, else the configured one.
func (o *options) source(cmd *cobra.Command) randstr.Source {
	if cmd.Flags().Changed("seed") {
		log.Warn().Uint64("seed", o.seed).Msg("seeded source, output is reproducible")

		return randstr.NewMathSource(o.seed)
	}

	if o.cfg.Generator.Source == "math" {
		return randstr.NewMathSource(mrand.Uint64()) //nolint:gosec
	}

	return randstr.NewCryptoSource()
}

// parseLength returns the length argument, or def if it is missing, not a number or negative.
func parseLength(args []string, def int) int {
	if len(args) == 0 {
		return def
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		log.Warn().Str("length", args[0]).Int("default", def).Msg("invalid length, using default")

		return def
	}

	return n
}
