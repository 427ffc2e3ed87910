// Package runlog accumulates categorized status messages for one pipeline
// run and writes them to a timestamped log file.
package runlog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RunLog collects warnings, errors, and load/process status for a run.
// One RunLog maps to one log file; it is created once at pipeline
// construction and never reset.
type RunLog struct {
	path  string
	runID string

	issues    []string
	loads     []string
	loadFails []string
	procs     []string
	procFails []string
}

var scopes = []string{"issue", "load", "process", "all"}

// Create makes the log directory if needed, writes the session header and
// the loadable-formats listing to a fresh timestamped log file, and closes
// it. The file is reopened in append mode on each Write call.
func Create(dir string, formats []string) (*RunLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	header := fmt.Sprintf("-- Session Activity on %s --\n", timestamp)

	timestamp = strings.ReplaceAll(timestamp, ":", "")
	timestamp = strings.ReplaceAll(timestamp, " ", "_")

	rl := &RunLog{
		path:  filepath.Join(dir, fmt.Sprintf("log_%s.txt", timestamp)),
		runID: uuid.New().String(),
	}

	f, err := os.Create(rl.path)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	fmt.Fprint(f, header)
	fmt.Fprintf(f, "-- Run ID %s --\n", rl.runID)
	for _, msg := range formats {
		fmt.Fprintf(f, "%s\n", msg)
	}
	fmt.Fprint(f, "\n\n")

	return rl, nil
}

func (rl *RunLog) Path() string  { return rl.path }
func (rl *RunLog) RunID() string { return rl.runID }

// Issue records a warning or error message.
func (rl *RunLog) Issue(msg string) { rl.issues = append(rl.issues, msg) }

// LoadOK records a file that loaded to a non-empty table.
func (rl *RunLog) LoadOK(fname string) { rl.loads = append(rl.loads, fname) }

// LoadFail records a file that failed or was skipped at the load stage.
func (rl *RunLog) LoadFail(fname string) { rl.loadFails = append(rl.loadFails, fname) }

// ProcOK records a file whose table was processed successfully.
func (rl *RunLog) ProcOK(fname string) { rl.procs = append(rl.procs, fname) }

// ProcFail records a file that failed the processing stage.
func (rl *RunLog) ProcFail(fname string) { rl.procFails = append(rl.procFails, fname) }

func (rl *RunLog) Issues() []string    { return rl.issues }
func (rl *RunLog) Loads() []string     { return rl.loads }
func (rl *RunLog) LoadFails() []string { return rl.loadFails }
func (rl *RunLog) Procs() []string     { return rl.procs }
func (rl *RunLog) ProcFails() []string { return rl.procFails }

// Write appends the sections selected by scope to the log file.
// Scope is one of all, issue, load, process. An unrecognized scope is a
// console warning and no write happens.
func (rl *RunLog) Write(scope string) error {
	if !slices.Contains(scopes, scope) {
		log.Printf("%s is unrecognized option. Log not updated", scope)
		return nil
	}

	f, err := os.OpenFile(rl.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	if scope == "all" || scope == "issue" {
		if len(rl.issues) == 0 {
			fmt.Fprint(f, "Warnings or Errors")
			fmt.Fprint(f, "\n------------------\n")
			fmt.Fprint(f, "No warnings or errors.")
		} else {
			log.Println("There were warnings or errors. See:")
			log.Printf("\t%s", rl.path)
			fmt.Fprint(f, "Warnings or Errors")
			fmt.Fprint(f, "\n------------------")
			for _, msg := range rl.issues {
				fmt.Fprintf(f, "\t%s", msg)
			}
		}
	}

	if scope == "all" || scope == "load" {
		writeSection(f, "Files Successfully Loaded", rl.loads)
		writeSection(f, "Files Failing Load", rl.loadFails)
	}

	if scope == "all" || scope == "process" {
		writeSection(f, "Files Successfully Processed", rl.procs)
		writeSection(f, "Files Failing Processing", rl.procFails)
	}

	return nil
}

func writeSection(f *os.File, title string, entries []string) {
	fmt.Fprintf(f, "\n\n\n%s", title)
	fmt.Fprintf(f, "\n%s", strings.Repeat("-", len(title)))

	if len(entries) == 0 {
		fmt.Fprint(f, "\nNone")
		return
	}

	for _, entry := range entries {
		fmt.Fprintf(f, "\n- %s", entry)
	}
}
