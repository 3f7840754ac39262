package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shippy/cmd/shippy/dashboard"
	"shippy/internal/config"
	"shippy/internal/logging"
	"shippy/internal/payment"
	"shippy/internal/store"
	"shippy/internal/types"
)

var (
	// Global flags
	verbose bool
	dataDir string

	// Logger for the non-interactive subcommands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shippy",
	Short: "Shippy - terminal admin dashboard",
	Long: `Shippy is a single-tenant admin dashboard for the terminal.

It manages a product inventory, a team roster and salary tracking,
persisted in a local bbolt database under the data directory
(~/.shippy by default, override with SHIPPY_DATA_DIR or --data-dir).

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "shippy" && cmd.CalledAs() == "shippy" {
			return nil
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

// seedCmd rewrites the sample records over whatever is stored.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the database to the sample products, team and salary data",
	RunE:  runSeed,
}

// resetCmd clears all persisted keys; the next launch reseeds.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored records",
	RunE:  runReset,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default ~/.shippy)")
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveDataDir honors the --data-dir flag over the environment.
func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	return config.DefaultDataDir()
}

// runDashboard starts the interactive TUI.
func runDashboard() error {
	dir := resolveDataDir()
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	if err := logging.Initialize(dir); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.CloseAll()
	logging.Boot("shippy starting, data dir %s", dir)

	st, err := store.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	gateway := payment.NewSimulatedGateway(cfg.ProcessingDelay())
	model, err := dashboard.New(cfg, st, gateway)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	logging.Boot("shippy exiting")
	return nil
}

// runSeed overwrites the stored records with the sample data.
func runSeed(cmd *cobra.Command, args []string) error {
	dir := resolveDataDir()
	st, err := store.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if err := st.Reset(); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	if err := store.Save(st, store.KeyProducts, types.SampleProducts()); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := store.Save(st, store.KeyTeamMembers, types.SampleTeamMembers()); err != nil {
		return fmt.Errorf("failed to seed team members: %w", err)
	}
	if err := store.Save(st, store.KeySalary, types.DefaultSalaryState(time.Now())); err != nil {
		return fmt.Errorf("failed to seed salary: %w", err)
	}

	logger.Info("seeded sample data",
		zap.String("path", st.Path()),
		zap.Int("products", len(types.SampleProducts())),
		zap.Int("team_members", len(types.SampleTeamMembers())))
	fmt.Printf("Seeded sample data into %s\n", st.Path())
	return nil
}

// runReset deletes everything; sample data comes back on next launch.
func runReset(cmd *cobra.Command, args []string) error {
	dir := resolveDataDir()
	st, err := store.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if err := st.Reset(); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	logger.Info("store reset", zap.String("path", st.Path()))
	fmt.Printf("Cleared all records in %s\n", st.Path())
	return nil
}
