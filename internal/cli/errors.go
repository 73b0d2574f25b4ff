package cli

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/envlines/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a short hint printed after cobra's own
// "Error:" line.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return ""
	}

	isConfig := strings.HasPrefix(oe.Op, "config")
	base := "file"
	if strings.TrimSpace(oe.Path) != "" {
		base = filepath.Base(oe.Path)
	}

	switch oe.Kind {
	case domain.KindNotFound:
		if isConfig {
			return "Config file " + base + " not found"
		}
		return "File " + base + " not found (pass a path or use --file)"

	case domain.KindUnreadable:
		return "Cannot read " + base + " (check permissions and that it is a regular file)"

	case domain.KindDecoding:
		return "Cannot decode " + base + " (try --encoding, e.g. latin1 or utf-16le)"

	case domain.KindInvalidConfig:
		if line := extractLine(err.Error()); line != "" && isConfig {
			return "Invalid YAML at " + base + " line " + line
		}
		return "Invalid configuration"

	default:
		return ""
	}
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
