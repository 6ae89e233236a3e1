package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/muv-academia/muv/pkg/animation"
	"github.com/muv-academia/muv/pkg/content"
)

func newContentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and check page content files",
	}
	cmd.AddCommand(newContentShowCommand(), newContentValidateCommand())
	return cmd
}

func newContentShowCommand() *cobra.Command {
	var (
		path    string
		format  string
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print page content as YAML or TOML",
		Long: `Print page content as YAML or TOML.

Without --content the built-in MUV Academia page is printed, which is a
good starting point for a custom content file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadPage(path)
			if err != nil {
				return err
			}
			if summary {
				printSummary(cmd.OutOrStdout(), page)
				return nil
			}
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			data, err := content.Encode(page, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "content", "", "content file to print (default: built-in page)")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml or toml)")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a section summary instead of the full content")
	return cmd
}

func newContentValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check content files for errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := color.New(color.FgHiGreen)
			bad := color.New(color.FgHiRed)
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				if _, err := content.Load(path); err != nil {
					failed++
					fmt.Fprintf(out, "%s %s: %v\n", bad.Sprint("✗"), path, err)
					continue
				}
				fmt.Fprintf(out, "%s %s\n", ok.Sprint("✓"), path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d content files invalid", failed, len(args))
			}
			return nil
		},
	}
}

func parseFormat(s string) (content.Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return content.FormatYAML, nil
	case "toml":
		return content.FormatTOML, nil
	}
	return "", fmt.Errorf("unknown format %q (use yaml or toml)", s)
}

func printSummary(w io.Writer, page *content.Page) {
	title := color.New(color.FgHiYellow, color.Bold)
	muted := color.New(color.FgHiBlack)

	fmt.Fprintln(w, title.Sprint(page.Meta.Title))
	for _, item := range page.Nav {
		fmt.Fprintf(w, "  #%-14s %s\n", item.Anchor, item.Label)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", title.Sprint("Modalidades:"), strings.Join(page.Modalities(), ", "))
	fmt.Fprintf(w, "%s %d\n", title.Sprint("Depoimentos:"), len(page.Testimonials.Items))
	for _, s := range page.Program.Stats {
		ms := int64(s.DurationMs)
		if ms <= 0 {
			ms = animation.DefaultCountUpDuration.Milliseconds()
		}
		fmt.Fprintf(w, "%s %s %d+ %s\n", title.Sprint("Badge:"), s.Label, s.Target, muted.Sprintf("(%dms)", ms))
	}
}
