package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"devicecheck/internal/config"
	"devicecheck/internal/utils"
	"devicecheck/internal/validation"
)

func main() {
	update := flag.Bool("update", false, "validate a partial update instead of a complete new device")
	deviceType := flag.String("type", "", "device type of the record being updated (required with -update)")
	logFile := flag.String("log", "validation.log", "log file path, empty for stderr only")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.InitLogging(*logFile)

	validator, err := validation.NewValidator(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to build validator: %v", err)
	}

	record, err := readRecord(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read device record: %v", err)
	}

	var ok bool
	var reasons []string
	if *update {
		if *deviceType == "" {
			log.Fatalf("-type is required with -update")
		}
		ok, reasons = validator.ValidateUpdate(record, *deviceType)
	} else {
		ok, reasons = validator.ValidateNewDevice(record)
	}

	if ok {
		fmt.Println("valid")
		return
	}
	for _, reason := range reasons {
		fmt.Println(reason)
	}
	os.Exit(1)
}

// readRecord decodes one JSON object from the given file, or stdin when no
// path is given.
func readRecord(path string) (map[string]interface{}, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var record map[string]interface{}
	if err := json.NewDecoder(r).Decode(&record); err != nil {
		return nil, err
	}
	return record, nil
}
