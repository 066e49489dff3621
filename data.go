package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sadopc/moodr/internal/export"
	"github.com/sadopc/moodr/internal/mcp"
	"github.com/sadopc/moodr/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal as CSV, JSON or a restorable backup",
	Long: `Export every check-in.

csv and json are for spreadsheets and scripts. backup also carries the
gentle-action history and can be restored with "moodr import". Use
--out - to write a backup to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		path, err := exportJournal(s, exportFormat, exportOut, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if path != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", path)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Import a backup; entries already present are kept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		entries, days, err := importBackup(s, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries and %d gentle-action days\n", entries, days)
		return nil
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the moodr MCP server (stdio)",
	Long: `Start a Model Context Protocol server on stdio exposing the tools
mood_summary, gentle_streak and search_notes over the journal.

Example:

  moodr mcp --db ~/moodr.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		return mcp.Serve(s, version)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "csv, json or backup")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default moodr-export-DATE.ext)")

	rootCmd.AddCommand(exportCmd, importCmd, mcpCmd)
}

// exportJournal writes the journal in format to out and returns the path
// written. An empty out picks a dated file name in the working directory.
func exportJournal(s *store.Store, format, out string, stdout io.Writer) (string, error) {
	entries, err := s.ListEntries(store.EntryFilter{})
	if err != nil {
		return "", err
	}
	date := time.Now().Format("2006-01-02")

	switch format {
	case "csv":
		if out == "" {
			out = fmt.Sprintf("moodr-export-%s.csv", date)
		}
		return out, export.ToCSV(entries, out)
	case "json":
		if out == "" {
			out = fmt.Sprintf("moodr-export-%s.json", date)
		}
		return out, export.ToJSON(entries, out)
	case "backup":
		log, err := s.CompletionLog()
		if err != nil {
			return "", err
		}
		if out == "-" {
			return out, export.WriteBackup(stdout, entries, log)
		}
		if out == "" {
			out = fmt.Sprintf("moodr-backup-%s.json", date)
		}
		return out, export.ToBackup(entries, log, out)
	}
	return "", fmt.Errorf("unknown export format %q (want csv, json or backup)", format)
}

// importBackup merges a backup document into the store.
func importBackup(s *store.Store, data []byte) (entries, days int, err error) {
	b := export.ReadBackup(data)
	if entries, err = s.ImportEntries(b.Entries); err != nil {
		return 0, 0, err
	}
	if err := s.ImportCompletionLog(b.Log); err != nil {
		return entries, 0, err
	}
	return entries, len(b.Log.Days), nil
}
