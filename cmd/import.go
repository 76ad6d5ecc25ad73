package main

import (
	"fmt"

	"github.com/DanRulev/vocabdrill/internal/importer"
	"github.com/DanRulev/vocabdrill/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import shared words from an .xlsx or .csv file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		sheet, _ := cmd.Flags().GetString("sheet")
		skipHeader, _ := cmd.Flags().GetBool("skip-header")

		result, err := importer.Load(path, importer.Options{Sheet: sheet, SkipHeader: skipHeader})
		if err != nil {
			return err
		}

		_, logger, conn, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		for _, msg := range result.Errors {
			logger.Warn("skipped row", zap.String("reason", msg))
		}

		added, err := repository.NewWordsRepository(conn).AddCommonWords(cmd.Context(), result.Words)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "processed %d rows: %d added, %d already present, %d duplicates, %d errors\n",
			result.Processed, added, len(result.Words)-added, result.Skipped, len(result.Errors))

		return nil
	},
}

func init() {
	importCmd.Flags().StringP("file", "f", "", "path to the .xlsx or .csv file")
	importCmd.Flags().String("sheet", "", "sheet name (defaults to the first sheet)")
	importCmd.Flags().Bool("skip-header", true, "skip the first row")
	_ = importCmd.MarkFlagRequired("file")
}
