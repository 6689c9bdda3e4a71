// internal/logging/logging.go
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to stderr and, when logPath is set, to an
// append-only log file. Stdout is left alone so commands can stream JSON.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogWarning records a recoverable data problem, e.g. a heatmap cell that
// could not be placed.
func LogWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println("[WARN] " + msg)
}

// LogLoad records one step of loading a leaderboard document.
func LogLoad(op, source string, detail any) {
	log.Println(buildLoadMessage(op, source, detail))
}

func buildLoadMessage(op, source string, detail any) string {
	opValue := strings.TrimSpace(op)
	if opValue != "" {
		opValue = strings.ToUpper(opValue)
	}
	sourceValue := strings.TrimSpace(source)
	if sourceValue == "" {
		sourceValue = "unknown"
	}
	parts := []string{fmt.Sprintf("[%s]", opValue)}
	parts = append(parts, fmt.Sprintf("source=%s", sourceValue))
	parts = append(parts, fmt.Sprintf("detail=%s", formatDetail(detail)))
	return strings.Join(parts, " ")
}

func formatDetail(detail any) string {
	switch v := detail.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
