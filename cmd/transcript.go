package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/gradpath/internal/catalog"
	"github.com/abhisek/gradpath/internal/llm"
	"github.com/abhisek/gradpath/internal/store"
	"github.com/abhisek/gradpath/internal/transcript"
	"github.com/spf13/cobra"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript <file>",
	Short: "Extract course codes from transcript text",
	Long: `Extract course codes from a transcript text file.

By default a regex scan finds the codes. With --llm the text is also sent
to the configured language model, which catches codes the scan misses in
badly formatted copies.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		useLLM, _ := cmd.Flags().GetBool("llm")
		apply, _ := cmd.Flags().GetBool("apply")
		manual, _ := cmd.Flags().GetStringSlice("add")

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read transcript: %w", err)
		}
		text := string(raw)

		cat := catalog.Default()

		var st *store.Store
		if useLLM || apply {
			if st, err = openStore(cmd); err != nil {
				return err
			}
			defer st.Close()
		}

		var extraction transcript.Extraction
		if useLLM {
			provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
			if err != nil {
				return fmt.Errorf("LLM extraction unavailable: %w", err)
			}
			extractor := transcript.NewExtractor(provider, transcript.DefaultExtractorConfig())
			extraction, err = extractor.Extract(cmd.Context(), cat, text)
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}
		} else {
			extraction = transcript.Scan(cat, text)
		}

		if len(extraction.Codes) == 0 {
			fmt.Println("No course codes found.")
			return nil
		}

		if len(extraction.Matched) > 0 {
			fmt.Println("Matched in catalog:")
			for _, course := range extraction.Matched {
				fmt.Printf("  %-10s %-44s %.1f cr  (%.0f%%)\n",
					course.Code, course.Name, course.Credit, course.Confidence*100)
			}
		}
		if len(extraction.Unknown) > 0 {
			fmt.Println("Not in catalog:")
			for _, course := range extraction.Unknown {
				fmt.Printf("  %-10s %-44s %.1f cr  (%.0f%%)\n",
					course.Code, course.Name, course.Credit, course.Confidence*100)
			}
		}
		fmt.Printf("\n%d courses, %.1f credits total.\n",
			len(extraction.Codes), extraction.TotalCredits())

		if apply {
			ctx := cmd.Context()
			state, version, err := loadState(ctx, st.SnapshotRepo())
			if err != nil {
				return err
			}
			codes := transcript.Merge(extraction.MatchedCodes(), manual)
			state = state.AddCompleted(codes)
			if err := saveState(ctx, st.SnapshotRepo(), state, version); err != nil {
				return err
			}
			fmt.Printf("Added %s to completed courses.\n", strings.Join(codes, ", "))
		}
		return nil
	},
}

func init() {
	transcriptCmd.Flags().Bool("llm", false, "Use the configured LLM for extraction")
	transcriptCmd.Flags().Bool("apply", false, "Add matched courses to the saved completed list")
	transcriptCmd.Flags().StringSlice("add", nil, "Extra course codes to merge in manually")
}
