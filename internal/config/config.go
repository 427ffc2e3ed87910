package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	JobName    string
	FilePath   string // inbox directory with files to process
	ProcConfig string // YAML mapping file names to processors

	FileSuccessDir string
	FileFailedDir  string
	LogsDir        string

	FTP FTPConfig
}

type FTPConfig struct {
	Host                string
	Port                int
	Username            string
	Password            string
	RemoteDir           string
	FilePattern         string
	ArchiveDir          string
	DeleteAfterDownload bool
	MoveAfterDownload   bool
}

func Load() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(os.Getenv("FTP_PORT"))
	deleteAfterDownload, _ := strconv.ParseBool(os.Getenv("FTP_DELETE"))
	moveAfterDownload, _ := strconv.ParseBool(os.Getenv("FTP_MOVE"))

	cfg := &Config{
		JobName:    os.Getenv("JOB_NAME"),
		FilePath:   os.Getenv("FILE_PATH"),
		ProcConfig: os.Getenv("PROC_CONFIG"),

		FileSuccessDir: os.Getenv("PROCESS_SUCCESS_DIR"),
		FileFailedDir:  os.Getenv("PROCESS_FAILED_DIR"),
		LogsDir:        os.Getenv("LOG_PATH"),

		FTP: FTPConfig{
			Host:                os.Getenv("FTP_HOST"),
			Port:                port,
			Username:            os.Getenv("FTP_USERNAME"),
			Password:            os.Getenv("FTP_PASSWORD"),
			RemoteDir:           os.Getenv("FTP_REMOTE_DIR"),
			FilePattern:         os.Getenv("FTP_FILE_PATTERN"),
			ArchiveDir:          os.Getenv("FTP_ARCHIVE_DIR"),
			DeleteAfterDownload: deleteAfterDownload,
			MoveAfterDownload:   moveAfterDownload,
		},
	}

	if cfg.LogsDir == "" {
		cfg.LogsDir = "./logs"
	}

	return cfg
}
