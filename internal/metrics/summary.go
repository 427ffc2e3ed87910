package metrics

import "log"

// Summary accumulates per-file metrics for the end-of-run report.
// The pipeline is single-threaded, so a plain slice is enough.
type Summary struct {
	files []FileMetric
}

func (s *Summary) Add(m FileMetric) {
	s.files = append(s.files, m)
}

func (s *Summary) Files() []FileMetric {
	return s.files
}

// Report prints one block per file to the console log.
func (s *Summary) Report() {
	for _, m := range s.files {
		log.Println("======================================")
		log.Println("FILE METRICS")
		log.Printf("File     : %s\n", m.FileName)
		log.Printf("Status   : %s\n", m.Status)
		log.Printf("Rows     : %d\n", m.Rows)
		log.Printf("Duration : %s\n", m.Duration)
		log.Println("======================================")
	}
}
