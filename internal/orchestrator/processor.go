// Package orchestrator drives one pipeline run: list files, load each
// into a table, apply the configured processor, and record the outcome
// in the run log.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"time"

	"go-file-processor/internal/loader"
	"go-file-processor/internal/metrics"
	"go-file-processor/internal/procconfig"
	"go-file-processor/internal/processor"
	"go-file-processor/internal/runlog"
	"go-file-processor/internal/table"
	"go-file-processor/internal/utils"
)

// Processor owns the run state: the inbox directory, the loadable
// extensions, and the run log created at construction.
type Processor struct {
	dpath      string
	extensions []string
	log        *runlog.RunLog

	// optional archive directories; empty means leave files in place
	successDir string
	failedDir  string
}

// New builds a Processor for the given inbox directory and creates the
// run log (one log file per run, timestamped).
func New(dpath, logDir string) (*Processor, error) {
	p := &Processor{
		dpath:      dpath,
		extensions: loader.Extensions,
	}

	rl, err := runlog.Create(logDir, p.LoadableFormats(false))
	if err != nil {
		return nil, err
	}
	p.log = rl

	return p, nil
}

// SetArchiveDirs configures where files are moved after the run.
func (p *Processor) SetArchiveDirs(successDir, failedDir string) {
	p.successDir = successDir
	p.failedDir = failedDir
}

func (p *Processor) Log() *runlog.RunLog {
	return p.log
}

// Files returns the inbox files keyed by full path, each mapped to a
// single-element slice with its normalized extension.
func (p *Processor) Files() (map[string][]string, error) {
	return utils.Files(p.dpath)
}

// LoadableFormats returns the loadable-formats message block written to
// the run log header. With verbose it is also printed to the console.
func (p *Processor) LoadableFormats(verbose bool) []string {
	message := []string{"\nFile formats that can be loaded:"}
	for _, ext := range p.extensions {
		message = append(message, fmt.Sprintf("\t- %s", ext))
	}
	message = append(message, "\n\tIf you need to load another format, add a sub-loader to internal/loader")

	if verbose {
		for _, msg := range message {
			log.Println(msg)
		}
	}

	return message
}

// Load parses one file into a Table. An unsupported extension records an
// issue and a load failure and returns an empty table; it never fails the
// run. A parse-level fault does: the error propagates to the caller.
func (p *Processor) Load(fname, fext string) (table.Table, error) {
	if !loader.Supported(fext) {
		p.log.Issue(fmt.Sprintf("\n- ERROR: '%s' is not a loadable format for %s. \n\tNo data loaded.", fext, fname))
		p.log.LoadFail(fname)
		log.Printf("Skipping... '%s' (see log for details)", fname)
		return table.Table{}, nil
	}

	log.Printf("Loading... '%s'", fname)

	t, warnings, err := loader.Load(fname, fext)
	if err != nil {
		return table.Table{}, err
	}

	for _, w := range warnings {
		p.log.Issue(w)
	}

	if !t.Empty() {
		p.log.LoadOK(fname)
	} else {
		p.log.LoadFail(fname)
	}

	return t, nil
}

// Process looks up the processor descriptor for fname and dispatches the
// table to it. A missing config entry returns the table unchanged; an
// unresolved processor name returns an empty table. Both are recorded as
// process failures, so the run log is the only way to tell them apart.
func (p *Processor) Process(fname string, t table.Table, procYAML string) (table.Table, error) {
	file := filepath.Base(fname)

	desc, found, err := procconfig.Lookup(procYAML, file)
	if err != nil {
		// missing or unreadable config resource is fatal to the run
		return t, err
	}

	if !found {
		p.log.Issue(fmt.Sprintf("\n- ERROR: no entry found for '%s' in yaml. \n\tVerify entry in %s.", file, procYAML))
		p.log.ProcFail(fname)
		return t, nil
	}

	out := processor.Dispatch(t, desc)
	if !out.Empty() {
		p.log.ProcOK(fname)
	} else {
		p.log.Issue(fmt.Sprintf("\n- ERROR: no processor found for '%s'. \n\tRegister the method in the data source's processor set.", file))
		p.log.ProcFail(fname)
	}

	return out, nil
}

// Run executes the load/process loop over every inbox file, in path
// order, and collects per-file metrics. Files are moved to the archive
// directories afterwards when those are configured.
func (p *Processor) Run(ctx context.Context, procYAML string, sum *metrics.Summary) error {
	fnames, err := p.Files()
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(fnames))
	for fname := range fnames {
		paths = append(paths, fname)
	}
	sort.Strings(paths)

	for _, fname := range paths {
		start := time.Now()
		fext := fnames[fname][0]

		t, err := p.Load(fname, fext)
		if err != nil {
			return err
		}

		status := metrics.StatusLoadFailed
		rows := 0

		if t.Empty() {
			if !loader.Supported(fext) {
				status = metrics.StatusSkipped
			}
		} else {
			// Process cannot signal "not processed" through its return
			// value, so watch the success list instead
			before := len(p.log.Procs())

			out, err := p.Process(fname, t, procYAML)
			if err != nil {
				return err
			}

			if len(p.log.Procs()) > before {
				status = metrics.StatusProcessed
				rows = out.Rows()
			} else {
				status = metrics.StatusProcFailed
				rows = t.Rows()
			}
		}

		p.archive(fname, status)

		sum.Add(metrics.FileMetric{
			FileName: filepath.Base(fname),
			Status:   status,
			Rows:     rows,
			Duration: time.Since(start),
		})
	}

	return nil
}

func (p *Processor) archive(fname, status string) {
	dir := p.failedDir
	if status == metrics.StatusProcessed {
		dir = p.successDir
	}
	if dir == "" {
		return
	}

	if err := utils.MoveFile(fname, dir); err != nil {
		log.Printf("Warning: failed to move %s to %s: %v", fname, dir, err)
	}
}

// WriteLog flushes the selected run log sections to the log file.
func (p *Processor) WriteLog(scope string) error {
	return p.log.Write(scope)
}
