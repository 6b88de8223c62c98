// Command csvclean is the entrypoint for the CSV cleaning tool. It
// wires the driven adapters into the core services, injects them into
// the CLI and hands control to cobra.
package main

import (
	"fmt"
	"os"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driven/config/file"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driven/storage/csvfile"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driven/storage/sqlite"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driven/workspace"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/adapters/driving/cli"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/cleaning"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driving"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/services"
)

// Version information, set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "csvclean: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Settings live in ~/.csvclean/config.toml.
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settings := services.NewSettingsService(configStore)

	// Run history lives in ~/.csvclean/data/history.db. The tool still
	// cleans when the store cannot be opened, it just stops recording.
	var runStore driven.RunStore
	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "csvclean: run history unavailable: %v\n", err)
	} else {
		defer store.Close()
		runStore = store.RunStore()
	}

	factory := cleaning.NewFactory()
	writer := csvfile.NewWriter()

	newCleaner := func(dir string, runStore driven.RunStore) driving.CleanerService {
		return services.NewCleanerService(factory, writer, workspace.New(dir), settings, runStore)
	}

	current, err := settings.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cleaner := newCleaner(current.WorkspaceDir, runStore)
	cleanerNoHistory := newCleaner(current.WorkspaceDir, nil)
	history := services.NewHistoryService(runStore, settings)

	cli.SetServices(cleaner, cleanerNoHistory, settings, history)
	cli.SetTUIConfig(&cli.TUIConfig{
		CleanerService:  cleaner,
		SettingsService: settings,
		HistoryService:  history,
		CleanerForDir: func(dir string) driving.CleanerService {
			return newCleaner(dir, runStore)
		},
	})
	cli.SetVersionInfo(version, commit, date)

	return cli.Execute()
}
