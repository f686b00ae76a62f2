package utils

import (
	"log"
	"strings"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging guest details; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogError prints the same line format for server-side failures.
func LogError(requestID, module, action string, err error) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s error=%v", strings.ToUpper(module), action, req, err)
}
