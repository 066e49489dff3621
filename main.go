package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/moodr/internal/store"
	"github.com/sadopc/moodr/internal/tui"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	dbPath  string
	debug   bool
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:     "moodr",
	Short:   "A terminal mood journal",
	Long:    `Check in with how you feel, browse the month calendar and follow your weekly and monthly mood trend.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug {
			log.SetOutput(io.Discard)
			return nil
		}
		f, err := tea.LogToFile("moodr-debug.log", "moodr")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		logFile = f
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for moodr.

Examples:

  Bash (current shell):
    $ source <(moodr completion bash)

  Zsh:
    $ moodr completion zsh > "${fpath[1]}/_moodr"

  Fish:
    $ moodr completion fish > ~/.config/fish/completions/moodr.fish`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of moodr",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write diagnostics to moodr-debug.log")

	rootCmd.AddCommand(completionCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore opens the database named by --db, or the default one.
func openStore() (*store.Store, error) {
	path := dbPath
	if path == "" {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return nil, err
		}
	}
	s, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	return s, nil
}

func runTUI() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(tui.NewApp(s), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
