// quilldoc exports the function metadata of a stock Quill engine as a
// machine-readable document, for documentation generators and editor
// tooling.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"quill/internal/engine"
	"quill/internal/metadata"
	"quill/internal/stdlib"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "quilldoc",
})

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quilldoc",
		Short:         "Export Quill engine function metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newExportCommand())
	return cmd
}

func newExportCommand() *cobra.Command {
	var (
		format          string
		outPath         string
		includePackages bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the metadata document for a stock engine",
		Long: `Export the metadata document describing every builtin module and
registered function of a stock Quill engine.

Examples:
  quilldoc export
  quilldoc export --format yaml
  quilldoc export --include-packages --out metadata.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(format, outPath, includePackages)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&includePackages, "include-packages", false, "include functions from installed host packages")

	return cmd
}

func runExport(format, outPath string, includePackages bool) error {
	eng := engine.New()
	stdlib.RegisterBuiltins(eng)
	eng.SetModuleResolver(stdlib.DefaultResolver())

	var (
		doc string
		err error
	)
	switch format {
	case "json":
		doc, err = metadata.GenerateJSON(eng, nil, includePackages)
	case "yaml":
		doc, err = metadata.GenerateYAML(eng, nil, includePackages)
	default:
		return fmt.Errorf("unknown format: %s (want json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	if outPath == "" {
		fmt.Println(doc)
		return nil
	}

	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logger.Info("metadata written", "path", outPath, "format", format)
	return nil
}
