package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/convert"
	"github.com/mind-engage/eduport/internal/extract"
	"github.com/mind-engage/eduport/internal/formats/catalog"
	"github.com/mind-engage/eduport/internal/h5p"
	"github.com/mind-engage/eduport/internal/logging"
)

var (
	outPath     string
	fromHTML    bool
	pageURL     string
	packagePath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:           "h5pconv",
	Short:         "Convert activities into H5P packages",
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Write an .h5p package for an activity",
	Long: `The convert command reads an activity record (JSON) and writes the H5P package.
With --html the input is a saved activity page and the embedded payload is used.
With --package the input is the saved page and the questions come from the
activity package zip. Use "-" to read the input from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, a, err := load(cmd, args[0])
		if err != nil {
			return err
		}
		archive, err := h5p.Build(c.Package, h5p.ArchiveOptions{Author: a.Metadata.Author})
		if err != nil {
			return fmt.Errorf("build package: %w", err)
		}
		dst := outPath
		if dst == "" {
			dst = defaultOut(c)
		}
		if err := os.WriteFile(dst, archive, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s, %d warnings)\n", c.Kind, dst, c.Package.Metadata.MainLibrary, len(c.Warnings))
		for _, w := range c.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <input>",
	Short: "Print h5p.json and content.json without writing a package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, a, err := load(cmd, args[0])
		if err != nil {
			return err
		}
		meta, content, err := h5p.MarshalBlocks(c.Package, h5p.ArchiveOptions{Author: a.Metadata.Author})
		if err != nil {
			return err
		}
		warnings := c.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"h5pJson":     json.RawMessage(meta),
			"contentJson": json.RawMessage(content),
			"warnings":    warnings,
		})
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List supported template kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := catalog.Default()
		if err != nil {
			return err
		}
		for _, k := range reg.Kinds() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func readActivity(cmd *cobra.Command, path string) (activity.Activity, error) {
	b, err := readInput(cmd, path)
	if err != nil {
		return activity.Activity{}, err
	}
	switch {
	case packagePath != "":
		m, ok := extract.ParseServerModel(b)
		if !ok {
			return activity.Activity{}, errors.New("page has no activity id or guid")
		}
		zipBytes, err := os.ReadFile(packagePath)
		if err != nil {
			return activity.Activity{}, err
		}
		return extract.FromPackage(zipBytes, m)
	case fromHTML:
		a, pattern, err := extract.FromHTML(b, pageURL)
		if err != nil {
			return activity.Activity{}, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "found activity %s via %s\n", a.ID, pattern)
		return a, nil
	default:
		a, err := activity.Decode(b)
		if err != nil {
			return activity.Activity{}, fmt.Errorf("decode activity: %w", err)
		}
		return a, nil
	}
}

func load(cmd *cobra.Command, path string) (convert.Conversion, activity.Activity, error) {
	a, err := readActivity(cmd, path)
	if err != nil {
		return convert.Conversion{}, activity.Activity{}, err
	}
	reg, err := catalog.Default()
	if err != nil {
		return convert.Conversion{}, activity.Activity{}, err
	}
	svc := convert.New(reg, newLogger(cmd))
	c, err := svc.Convert(cmd.Context(), a)
	return c, a, err
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	return logging.NewWithWriter(cmd.ErrOrStderr(), logLevel, "console")
}

func defaultOut(c convert.Conversion) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '-'
		}
		return r
	}, strings.TrimSpace(c.Title))
	if name == "" {
		name = c.ID
	}
	return filepath.Clean(name + ".h5p")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	for _, c := range []*cobra.Command{convertCmd, previewCmd} {
		c.Flags().BoolVar(&fromHTML, "html", false, "Input is a saved activity page")
		c.Flags().StringVar(&pageURL, "url", "", "Page URL recorded on activities extracted with --html")
		c.Flags().StringVar(&packagePath, "package", "", "Activity package zip holding template.xml; input is the saved page")
	}
	convertCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output .h5p path (default: <title>.h5p)")
	rootCmd.AddCommand(convertCmd, previewCmd, templatesCmd)
}
