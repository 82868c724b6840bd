package middleware

import (
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientehm/api/internal/platform/apperr"
)

const (
	maxHeaderValueSize = 8192

	MsgMalformedRequest = "Requisição malformada"
)

var (
	// Logged, not blocked: search filters legitimately contain quotes.
	sqlPatterns = regexp.MustCompile(`(?i)('+\s*;\s*DROP\b|UNION\s+SELECT\b|'\s+OR\s+1\s*=\s*1)`)

	scriptPatterns = regexp.MustCompile(`(?i)(<script|javascript\s*:|on\w+\s*=)`)
)

// Sanitize rejects requests with path traversal, null bytes, header
// injection or script payloads in the query string. Rejections surface as
// 400 through the error handler.
func Sanitize(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path
			rawPath := req.URL.RawPath
			if rawPath == "" {
				rawPath = path
			}

			if containsPathTraversal(path) || containsPathTraversal(rawPath) {
				return reject(logger, c, "path traversal")
			}
			if containsNullByte(path) || containsNullByte(rawPath) {
				return reject(logger, c, "null byte in path")
			}

			for name, values := range req.Header {
				for _, v := range values {
					if len(v) > maxHeaderValueSize {
						return reject(logger, c, "oversized header "+name)
					}
					if strings.ContainsAny(v, "\r\n") {
						return reject(logger, c, "header injection "+name)
					}
				}
			}

			for key, values := range req.URL.Query() {
				for _, v := range values {
					if containsNullByte(v) || containsNullByte(key) {
						return reject(logger, c, "null byte in query")
					}
					if scriptPatterns.MatchString(v) || scriptPatterns.MatchString(key) {
						return reject(logger, c, "script in query")
					}
					if sqlPatterns.MatchString(v) {
						logger.Warn().
							Str("param", key).
							Str("path", path).
							Str("remote_ip", c.RealIP()).
							Msg("suspicious query parameter")
					}
				}
			}

			return next(c)
		}
	}
}

func reject(logger zerolog.Logger, c echo.Context, reason string) error {
	rid, _ := c.Get("request_id").(string)
	logger.Warn().
		Str("request_id", rid).
		Str("reason", reason).
		Str("remote_ip", c.RealIP()).
		Msg("request rejected")
	return apperr.InvalidArgument(MsgMalformedRequest)
}

func containsPathTraversal(s string) bool {
	if strings.Contains(s, "..") {
		return true
	}
	lower := strings.ToLower(s)
	return strings.Contains(lower, "%2e%2e") || strings.Contains(lower, "%252e")
}

func containsNullByte(s string) bool {
	return strings.ContainsRune(s, '\x00') || strings.Contains(strings.ToLower(s), "%00")
}
