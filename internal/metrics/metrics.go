package metrics

import "time"

// Statuses for FileMetric.
const (
	StatusSkipped    = "SKIPPED"
	StatusLoadFailed = "LOAD FAILED"
	StatusProcessed  = "PROCESSED"
	StatusProcFailed = "PROCESS FAILED"
)

type FileMetric struct {
	FileName string
	Status   string
	Rows     int
	Duration time.Duration
}
