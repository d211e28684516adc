package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mortgage-calculator/service"
)

var recordSeparator = strings.Repeat("*", 50)

func newProcessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "process [file]",
		Short: "Calculate payments for every mortgage record in a file",
		Long: `Read comma-separated mortgage records, one per line, and print either
the mortgage with its calculated payment or the reason the record was
rejected. A bad record never stops the run.

Example usage:
  mortgage-calculator process                                  # records.path from config
  mortgage-calculator process data/pixell_river_mortgages.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Records.Path
			if len(args) == 1 {
				path = args[0]
			}
			return a.runProcess(cmd, path)
		},
	}
}

func (a *app) runProcess(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(out, "File was not found")
			return errReported
		}
		return fmt.Errorf("opening mortgage records: %w", err)
	}
	defer f.Close()

	svc, closeService, err := a.newService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeService()

	records, err := svc.ProcessBatch(cmd.Context(), f)
	printRecords(out, records)
	return err
}

func printRecords(w io.Writer, records []service.Record) {
	fmt.Fprintln(w, recordSeparator)
	for _, rec := range records {
		if rec.OK() {
			fmt.Fprintln(w, rec.Result)
		} else {
			fmt.Fprintf(w, "Data: %s caused Exception: %v\n", rec.Line, rec.Err)
		}
		fmt.Fprintln(w, recordSeparator)
	}
}
