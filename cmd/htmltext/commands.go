// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"cogentcore.org/htmltext/base/logx"
	"cogentcore.org/htmltext/htmlcore"
	"cogentcore.org/htmltext/text/ansi"
	"cogentcore.org/htmltext/text/rich"
	"cogentcore.org/htmltext/text/spans"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	vv, v, q bool

	// styles is a TOML or YAML file of style overrides.
	styles string

	disabled bool

	// markdown is whether the input is markdown instead of HTML.
	markdown bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "htmltext",
		Short:        "Render HTML-formatted text with links in the terminal",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(opts.vv, opts.v, opts.q)
			logx.SetDefaultLogger(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&opts.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&opts.v, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&opts.q, "quiet", "q", false, "only show errors")
	pf.StringVar(&opts.styles, "styles", "", "TOML or YAML file of style overrides")
	pf.BoolVar(&opts.disabled, "disabled", false, "render the text as disabled")
	pf.BoolVar(&opts.markdown, "markdown", false, "read markdown instead of HTML")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newLinksCmd(opts))
	root.AddCommand(newClickCmd(opts))
	root.AddCommand(newStylesCmd(opts))
	return root
}

// text returns the configured [htmlcore.Text].
func (o *options) text() (*htmlcore.Text, error) {
	t := htmlcore.NewText()
	t.Disabled = o.disabled
	if o.styles != "" {
		st, err := spans.OpenTable(o.styles)
		if err != nil {
			return nil, fmt.Errorf("opening styles: %w", err)
		}
		t.Styles = st
	}
	return t, nil
}

// render reads the source from the file named by the first of
// the given args, or from the command input if there are none,
// and renders it.
func (o *options) render(cmd *cobra.Command, t *htmlcore.Text, args []string) (rich.Text, error) {
	var b []byte
	var err error
	if len(args) > 0 && args[0] != "-" {
		b, err = os.ReadFile(args[0])
	} else {
		b, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return rich.Text{}, err
	}
	slog.Debug("rendering", "bytes", len(b), "markdown", o.markdown)
	if o.markdown {
		return t.RenderMarkdown(string(b))
	}
	return t.Render(string(b))
}

func newRenderCmd(opts *options) *cobra.Command {
	var plain, runs bool
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the text with terminal styles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.text()
			if err != nil {
				return err
			}
			tx, err := opts.render(cmd, t, args)
			if err != nil {
				return err
			}
			if runs {
				_, err = io.WriteString(cmd.OutOrStdout(), tx.String())
				return err
			}
			r := ansi.NewRenderer()
			if plain {
				r.Profile = termenv.Ascii
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Render(tx))
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "render without any terminal styles")
	cmd.Flags().BoolVar(&runs, "runs", false, "print the style runs and links instead")
	return cmd
}

func newLinksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "links [file]",
		Short: "List the accessibility actions of the links in the text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.text()
			if err != nil {
				return err
			}
			tx, err := opts.render(cmd, t, args)
			if err != nil {
				return err
			}
			for _, a := range t.Actions(tx) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.Label, logx.ApplyColor(spans.LinkColor, a.URL))
			}
			return nil
		},
	}
}

func newClickCmd(opts *options) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "click offset [file]",
		Short: "Click on the text at the given rune offset, opening any link there",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", args[0], err)
			}
			t, err := opts.text()
			if err != nil {
				return err
			}
			tx, err := opts.render(cmd, t, args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dryRun {
				t.OpenURL = func(url string) error {
					fmt.Fprintln(out, "open", url)
					return nil
				}
			}
			t.OnClick = func(offset int) {
				fmt.Fprintln(out, "no link at offset", offset)
			}
			var openErr error
			t.OnError = func(err error) { openErr = err }
			t.Click(tx, offset)
			return openErr
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the URL instead of opening it")
	return cmd
}

func newStylesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "styles [file]",
		Short: "Write the effective style table as TOML, or to the given TOML or YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.text()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				slog.Info("saving styles", "file", args[0])
				return spans.SaveTable(t.Table(), args[0])
			}
			return spans.WriteTable(t.Table(), cmd.OutOrStdout())
		},
	}
}
