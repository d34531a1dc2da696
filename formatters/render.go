package formatters

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"vsnlog/codes"
)

const (
	// MaxExtraFields bounds the additional fields rendered into one JSON
	// record; fields past the cap are skipped, never an error.
	MaxExtraFields = 32
	// MaxComponentLength bounds the component name in syslog framing.
	MaxComponentLength = 32
)

// timestamp renders the shared wall-clock format, UTC with millisecond
// precision.
func timestamp(now time.Time) string {
	return now.UTC().Format("2006-01-02T15:04:05.000Z")
}

// ToJSON renders a structured record as a single JSON object. Quote,
// backslash and control characters in the message and field values are
// escaped; fields beyond the cap or with empty keys are silently skipped.
func ToJSON(message, level, component string, extra map[string]string) (string, error) {
	if message == "" || level == "" {
		return "", codes.E(codes.InvalidParameter, "empty message or level")
	}

	var b strings.Builder
	b.WriteString(`{"timestamp":"`)
	b.WriteString(timestamp(time.Now()))
	b.WriteString(`","level":"`)
	b.WriteString(escapeJSON(level))
	b.WriteString(`","component":"`)
	b.WriteString(escapeJSON(component))
	b.WriteString(`","message":"`)
	b.WriteString(escapeJSON(message))
	b.WriteString(`"`)

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > MaxExtraFields {
		keys = keys[:MaxExtraFields]
	}
	for _, k := range keys {
		b.WriteString(`,"`)
		b.WriteString(escapeJSON(k))
		b.WriteString(`":"`)
		b.WriteString(escapeJSON(extra[k]))
		b.WriteString(`"`)
	}

	b.WriteString("}")
	return b.String(), nil
}

// escapeJSON covers quote, backslash and control characters; codes below
// 0x20 become \uXXXX.
func escapeJSON(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r < 0x20:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SyslogPriority maps a level name to its syslog severity. Unrecognized
// levels report as informational.
func SyslogPriority(level string) int {
	switch strings.ToLower(level) {
	case "trace", "debug":
		return 7
	case "info":
		return 6
	case "warn", "warning":
		return 4
	case "error":
		return 3
	case "critical":
		return 2
	default:
		return 6
	}
}

// ToSyslog renders a record in <priority>timestamp component: message
// framing. Component names are truncated to the syslog bound.
func ToSyslog(message, level, component string) (string, error) {
	if message == "" || level == "" {
		return "", codes.E(codes.InvalidParameter, "empty message or level")
	}
	if len(component) > MaxComponentLength {
		component = component[:MaxComponentLength]
	}
	return fmt.Sprintf("<%d>%s %s: %s", SyslogPriority(level), timestamp(time.Now()), component, message), nil
}

// ToConsole renders a record as [timestamp] [level] [component] message.
func ToConsole(message, level, component string) (string, error) {
	if message == "" || level == "" {
		return "", codes.E(codes.InvalidParameter, "empty message or level")
	}
	return fmt.Sprintf("[%s] [%s] [%s] %s", timestamp(time.Now()), level, component, message), nil
}
