package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go-file-processor/internal/config"
	"go-file-processor/internal/ftp"
	"go-file-processor/internal/metrics"
	"go-file-processor/internal/orchestrator"
	"go-file-processor/internal/utils"
)

func main() {
	dir := flag.String("dir", "", "Inbox directory with files to process (overrides FILE_PATH)")
	procs := flag.String("processors", "", "YAML mapping file names to processors (overrides PROC_CONFIG)")
	flag.Parse()

	start := time.Now()
	ctx := context.Background()

	cfg := config.Load()
	if *dir != "" {
		cfg.FilePath = *dir
	}
	if *procs != "" {
		cfg.ProcConfig = *procs
	}

	if cfg.FilePath == "" {
		log.Fatalf("No inbox directory specified (set FILE_PATH or -dir)")
	}
	if cfg.ProcConfig == "" {
		log.Fatalf("No processor config specified (set PROC_CONFIG or -processors)")
	}

	dirs := []string{cfg.FilePath, cfg.LogsDir}
	if cfg.FileSuccessDir != "" {
		dirs = append(dirs, cfg.FileSuccessDir)
	}
	if cfg.FileFailedDir != "" {
		dirs = append(dirs, cfg.FileFailedDir)
	}
	for _, d := range dirs {
		if err := utils.EnsureDir(d); err != nil {
			log.Fatalf("Failed to create dir %s: %v", d, err)
		}
	}

	proc, err := orchestrator.New(cfg.FilePath, cfg.LogsDir)
	if err != nil {
		log.Fatalf("Failed to create run log: %v", err)
	}
	proc.SetArchiveDirs(cfg.FileSuccessDir, cfg.FileFailedDir)

	log.Printf("Run ID %s\n", proc.Log().RunID())
	proc.LoadableFormats(true)

	sum := &metrics.Summary{}
	chain := orchestrator.NewChain()

	if cfg.FTP.Host != "" {
		chain.Add("FETCH FILES", func(ctx context.Context) error {
			client, err := ftp.NewClient(cfg.FTP)
			if err != nil {
				return err
			}
			defer client.Close()

			files, err := client.DownloadFiles(cfg.FilePath)
			if err != nil {
				return err
			}
			log.Printf("Downloaded %d files\n", len(files))
			return nil
		})
	}

	chain.Add("PROCESS FILES", func(ctx context.Context) error {
		return proc.Run(ctx, cfg.ProcConfig, sum)
	})

	chain.Add("WRITE LOG", func(ctx context.Context) error {
		return proc.WriteLog("all")
	})

	if err := chain.Run(ctx); err != nil {
		log.Fatalf("RUN FAILED: %v", err)
	}

	sum.Report()
	log.Printf("RUN COMPLETED IN %s\n", time.Since(start))
}
