package cli

import (
	"os"
	"strconv"
	"strings"
)

const (
	envEmail     = "SUMMIT_EMAIL"
	envOutputDir = "SUMMIT_OUTPUT_DIR"
	envURL       = "SUMMIT_URL"
	envLogLevel  = "SUMMIT_LOG_LEVEL"
	envHeadless  = "SUMMIT_HEADLESS"
	envChrome    = "SUMMIT_CHROME_PATH"
)

// envOr returns the trimmed value of key, or def when unset or blank
func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envBool parses key as a boolean, falling back to def on absence or junk
func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
