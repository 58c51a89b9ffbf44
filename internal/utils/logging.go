package utils

import (
	"io"
	"log"
	"os"
)

// InitLogging configures the standard logger: timestamps plus source location,
// teed to a log file that is overwritten on every start. Pass an empty path to
// log to stderr only.
func InitLogging(logFile string) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if logFile == "" {
		return
	}
	f, err := os.Create(logFile)
	if err != nil {
		log.Printf("UTILS: unable to open log file %s: %v", logFile, err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
}
