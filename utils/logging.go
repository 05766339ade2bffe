package utils

import (
	"log"
	"os"

	"github.com/google/uuid"
)

// Global logger variables
var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger

	runID string
)

// InitLogging initializes logging with separate stdout/stderr streams and
// stamps every line with a per-run ID so interleaved container logs stay
// attributable to one startup.
func InitLogging() {
	runID = uuid.New().String()[:8]

	// Progress lines go to stdout
	InfoLogger = log.New(os.Stdout, "INFO ["+runID+"]: ", log.Ldate|log.Ltime)

	// Error lines go to stderr
	ErrorLogger = log.New(os.Stderr, "ERROR ["+runID+"]: ", log.Ldate|log.Ltime)

	log.SetOutput(os.Stderr)
	log.SetPrefix("SYSTEM [" + runID + "]: ")
	log.SetFlags(log.Ldate | log.Ltime)
}

// RunID returns the identifier assigned to this startup run.
func RunID() string {
	return runID
}

// LogInfo logs informational messages to stdout
func LogInfo(message string, metadata ...interface{}) {
	if InfoLogger == nil {
		InitLogging()
	}
	args := []interface{}{message}
	args = append(args, metadata...)
	InfoLogger.Println(args...)
}

// LogError logs errors with context to stderr
func LogError(context string, err error, metadata ...interface{}) {
	if ErrorLogger == nil {
		InitLogging()
	}
	if err != nil {
		args := []interface{}{context, err}
		args = append(args, metadata...)
		ErrorLogger.Println(args...)
	}
}
