// utils/safelog.go
// ============================================================================
// SAFE LOGGING - Masks financial data in production
// ============================================================================

package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

var (
	// IsProduction determines whether sensitive data must be masked
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	LogLevel = getLogLevel()
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func getLogLevel() int {
	level := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	switch level {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Pattern for decimal values that look like expense amounts
var amountRegex = regexp.MustCompile(`\b\d{1,9}[.,]\d{1,2}\b`)

// MaskString masks amounts inside a message in production
func MaskString(input string) string {
	if !IsProduction {
		return input
	}
	return amountRegex.ReplaceAllString(input, "***")
}

// MaskAmount masks a single amount value
func MaskAmount(amount string) string {
	if IsProduction {
		return "***"
	}
	return amount
}

// SafeDebug logs a debug message (only when LOG_LEVEL=DEBUG)
func SafeDebug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] %s", MaskString(fmt.Sprintf(format, args...)))
}

// SafeInfo logs an informational message
func SafeInfo(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[INFO] %s", MaskString(fmt.Sprintf(format, args...)))
}

// SafeWarn logs a warning
func SafeWarn(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	log.Printf("[WARN] %s", MaskString(fmt.Sprintf(format, args...)))
}

// SafeError logs an error message
func SafeError(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", MaskString(fmt.Sprintf(format, args...)))
}

// LogExpenseAction logs a CRUD action without exposing amounts
func LogExpenseAction(action string, expenseID int64) {
	log.Printf("[Expense] %s - ID: %d", action, expenseID)
}
