package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/gradpath/internal/academic"
	"github.com/abhisek/gradpath/internal/store"
	"github.com/spf13/cobra"
)

const snapshotKeep = 50

// loadState returns the academic state from the latest snapshot, falling
// back to the default state when none exists.
func loadState(ctx context.Context, repo store.SnapshotRepo) (academic.State, int, error) {
	snap, err := repo.Latest(ctx)
	if err != nil {
		return academic.State{}, 0, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return academic.Default(), 0, nil
	}
	return snap.Data.State, snap.Data.Version, nil
}

// saveState persists the state as a new snapshot and prunes old ones.
func saveState(ctx context.Context, repo store.SnapshotRepo, state academic.State, prevVersion int) error {
	snap := &store.Snapshot{
		Data: store.SnapshotData{
			Version: prevVersion + 1,
			State:   state,
		},
	}
	if err := repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := repo.Prune(ctx, snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// openStore opens the store for a CLI command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show or update the saved academic state",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved academic state",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state, version, err := loadState(cmd.Context(), st.SnapshotRepo())
		if err != nil {
			return err
		}

		fmt.Printf("Snapshot version:      %d\n", version)
		fmt.Printf("Completed credits:     %.1f / %d\n", state.CompletedCredits, academic.TotalRequiredCredits)
		fmt.Printf("Current trimester:     %d\n", state.CurrentSemester)
		fmt.Printf("Target trimester:      %d\n", state.TargetGraduationSemester)
		fmt.Printf("Max credits/trimester: %.1f\n", state.MaxCreditsPerSemester)
		fmt.Printf("CGPA:                  %.2f\n", state.CGPA)
		fmt.Printf("Major:                 %s\n", orNone(state.SelectedMajor))
		fmt.Printf("Mode:                  %s\n", state.Mode)
		fmt.Printf("Completed courses:     %s\n", orNone(strings.Join(state.CompletedCourses, ", ")))
		fmt.Printf("Selected courses:      %s\n", orNone(strings.Join(state.UserSelectedCourses, ", ")))
		return nil
	},
}

var stateSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update fields of the saved academic state",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		state, version, err := loadState(ctx, st.SnapshotRepo())
		if err != nil {
			return err
		}

		var update academic.Update
		flags := cmd.Flags()

		if flags.Changed("credits") {
			v, _ := flags.GetFloat64("credits")
			update.CompletedCredits = &v
		}
		if flags.Changed("semester") {
			v, _ := flags.GetInt("semester")
			update.CurrentSemester = &v
		}
		if flags.Changed("target") {
			v, _ := flags.GetInt("target")
			update.TargetGraduationSemester = &v
		}
		if flags.Changed("max-credits") {
			v, _ := flags.GetFloat64("max-credits")
			update.MaxCreditsPerSemester = &v
		}
		if flags.Changed("cgpa") {
			v, _ := flags.GetFloat64("cgpa")
			update.CGPA = &v
		}
		if flags.Changed("major") {
			v, _ := flags.GetString("major")
			update.SelectedMajor = &v
		}
		if flags.Changed("completed") {
			v, _ := flags.GetStringSlice("completed")
			update.CompletedCourses = &v
		}
		if flags.Changed("courses") {
			v, _ := flags.GetStringSlice("courses")
			update.UserSelectedCourses = &v
		}
		if flags.Changed("mode") {
			raw, _ := flags.GetString("mode")
			mode, ok := academic.ParseMode(raw)
			if !ok {
				return fmt.Errorf("invalid mode %q (want auto or custom)", raw)
			}
			update.Mode = &mode
		}

		state = state.Apply(update)
		if err := saveState(ctx, st.SnapshotRepo(), state, version); err != nil {
			return err
		}

		fmt.Println("State saved.")
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func init() {
	stateSetCmd.Flags().Float64("credits", 0, "Completed credits")
	stateSetCmd.Flags().Int("semester", 0, "Current trimester number")
	stateSetCmd.Flags().Int("target", 0, "Target graduation trimester")
	stateSetCmd.Flags().Float64("max-credits", 0, "Max credits per trimester")
	stateSetCmd.Flags().Float64("cgpa", 0, "Current CGPA")
	stateSetCmd.Flags().String("major", "", "Selected major")
	stateSetCmd.Flags().StringSlice("completed", nil, "Completed course codes")
	stateSetCmd.Flags().StringSlice("courses", nil, "User-selected course codes")
	stateSetCmd.Flags().String("mode", "", "Planning mode: auto or custom")

	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateSetCmd)
}
