package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tnicklin/timesuggest/clock"
	"github.com/tnicklin/timesuggest/suggestion"
	"github.com/tnicklin/timesuggest/timeutil"
)

func newSuggestCmd(a *app) *cobra.Command {
	var out string

	var usage bytes.Buffer
	for _, label := range suggestion.Labels() {
		_ = suggestion.PrintUsageFor(label, &usage)
		usage.WriteByte('\n')
	}

	cmd := &cobra.Command{
		Use:   "suggest <" + strings.Join(suggestion.Labels(), "|") + "> [--out FILE] -- <suggestion options>",
		Short: "Build a suggestion from command-line options",
		Long: "Build a suggestion from command-line options. Suggestion options follow\n" +
			"a literal \"--\" so they reach the suggestion parser untouched.\n\n" + usage.String(),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash != 1 {
				return fmt.Errorf("expected exactly one suggestion type before \"--\", got %q", args)
			}

			s, err := suggestion.Parse(args[0], a.reference, args[dash:])
			if err != nil {
				_ = suggestion.PrintUsageFor(args[0], cmd.ErrOrStderr())
				return err
			}
			s.AddDebugInfo("timesuggest suggest")

			a.logger.DebugW("built suggestion", "type", args[0], "suggestion", s.String())
			return emit(cmd.OutOrStdout(), s, out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the binary encoding to `FILE`")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode a binary suggestion and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			s, err := suggestion.Decode(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			w := cmd.OutOrStdout()
			if err = printSuggestion(w, s); err != nil {
				return err
			}
			age := timeutil.Age(s.UnixEpochTime().ReferenceTime(), a.reference.Elapsed())
			_, err = fmt.Fprintf(w, "age:  %s (valid only if produced on this host since boot)\n", age)
			return err
		},
	}
}

func newNTPCmd(a *app) *cobra.Command {
	var (
		server string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "ntp",
		Short: "Query an NTP server once and print the resulting network suggestion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.NTP
			if server != "" {
				cfg.Server = server
			}

			opts := append(cfg.Options(),
				clock.WithLogger(a.logger.With("component", "ntp")),
				clock.WithReferenceClock(a.reference),
			)
			src := clock.NewNTP(opts...)

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			s, err := src.Suggest(ctx)
			if err != nil {
				return err
			}
			a.logger.InfoW("ntp suggestion", "server", cfg.Server, "suggestion", s.String())
			return emit(cmd.OutOrStdout(), s, out)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "NTP server, overrides ntp.server from config")
	cmd.Flags().StringVar(&out, "out", "", "write the binary encoding to `FILE`")
	return cmd
}

func newMillisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "millis RFC3339",
		Short: "Convert an RFC 3339 timestamp to Unix epoch milliseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			millis, err := timeutil.UnixMillisFromRFC3339(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), millis)
			return err
		},
	}
}

func emit(w io.Writer, s suggestion.Suggestion, out string) error {
	if err := printSuggestion(w, s); err != nil {
		return err
	}
	if out == "" {
		return nil
	}

	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	if err = os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	_, err = fmt.Fprintf(w, "wrote %d bytes to %s\n", len(data), out)
	return err
}

func printSuggestion(w io.Writer, s suggestion.Suggestion) error {
	_, err := fmt.Fprintf(w, "%s\nwall: %s\n", s, timeutil.FormatUnixMillis(s.UnixEpochTime().Value()))
	return err
}
