package utils

import (
	"regexp"
	"strings"
	"time"

	"tour-contact/types"

	"github.com/gofiber/fiber/v2"
)

// Accepts an optional leading +, an optional country digit 1, then 9-15 digits.
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// ValidatePhoneNumber reports whether phone is an acceptable
// international phone number after normalization.
func ValidatePhoneNumber(phone string) bool {
	return phonePattern.MatchString(NormalizePhoneNumber(phone))
}

// NormalizePhoneNumber strips whitespace and common separator
// characters so "+91 98765-43210" and "+919876543210" compare equal.
func NormalizePhoneNumber(phone string) string {
	phone = strings.TrimSpace(phone)
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(phone)
}

// sanitizeRequestBody caps oversized request bodies so log rows stay bounded
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := string(c.Body())
	if len(body) > 10000 {
		return "[LARGE_REQUEST_BODY_TRUNCATED] " + body[:1000]
	}
	return body
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for logging.
// Copies are taken because fiber reuses its request/response buffers
// after the handler returns, while the async logger reads them later.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
