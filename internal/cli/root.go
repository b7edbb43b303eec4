package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adriancalavie/aoc-2023-day1/internal/infra/fsdocument"
	"github.com/adriancalavie/aoc-2023-day1/internal/infra/logger"
	"github.com/adriancalavie/aoc-2023-day1/internal/infra/reportstore"
	"github.com/adriancalavie/aoc-2023-day1/internal/ports"
	"github.com/adriancalavie/aoc-2023-day1/internal/usecase"
)

const defaultDocument = "res/data.txt"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var input string
	var format string
	var save bool
	var debug bool

	cmd := &cobra.Command{
		Use:          "day1",
		Short:        "Sum two-digit calibration values from a scrambled document",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.Setup(logger.Config{Debug: debug})

			loader := fsdocument.NewLoader()

			var store ports.ReportStore
			if save {
				store = reportstore.NewJSONStore(".", reportstore.WithIndex(true))
			}

			uc := usecase.NewSumDocument(loader, store)

			report, artifactID, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				logger.L().Error("run.failed", "document", input, "err", err.Error())
				return err
			}

			logger.L().Info("run.completed",
				"document", input,
				"lines", len(report.Lines),
				"sum", report.Sum,
			)

			return printReport(os.Stdout, report, artifactID, format)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")
	cmd.Flags().StringVarP(&input, "input", "i", defaultDocument, "Path to the calibration document")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	cmd.Flags().BoolVar(&save, "save", false, "Save the run report under runs/")

	cmd.AddCommand(versionCmd())
	return cmd
}
