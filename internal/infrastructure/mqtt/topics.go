package mqtt

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultTopicPrefix is used when the configured prefix is empty.
const DefaultTopicPrefix = "devparam"

// emptySegment replaces a segment that slugs to nothing.
const emptySegment = "_"

// Topics builds devparam MQTT topics under a common prefix.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.NewTopics("plant1/devparam")
//	topic := topics.Parameter("sensor.eds", "Watchdog Timer (ms)")
//	// Returns: "plant1/devparam/parameter/sensor-eds/watchdog-timer-ms"
type Topics struct {
	prefix string
}

// NewTopics returns a topic builder for prefix. Leading and trailing
// slashes are trimmed and an empty prefix falls back to DefaultTopicPrefix.
func NewTopics(prefix string) Topics {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = DefaultTopicPrefix
	}
	return Topics{prefix: prefix}
}

// Prefix returns the topic prefix.
func (t Topics) Prefix() string {
	if t.prefix == "" {
		return DefaultTopicPrefix
	}
	return t.prefix
}

// Status returns the client status topic used for online/offline and LWT.
//
// Example: devparam/status
func (t Topics) Status() string {
	return fmt.Sprintf("%s/status", t.Prefix())
}

// Parameter returns the topic for one enriched parameter document.
//
// Example: devparam/parameter/sensor-eds/port-layout
func (t Topics) Parameter(source, name string) string {
	return fmt.Sprintf("%s/parameter/%s/%s", t.Prefix(), Segment(source), Segment(name))
}

// RunStatistics returns the topic for the statistics of one export run.
//
// Example: devparam/run/0b6f.../statistics
func (t Topics) RunStatistics(runID string) string {
	return fmt.Sprintf("%s/run/%s/statistics", t.Prefix(), Segment(runID))
}

// AllParameters returns a pattern matching every parameter of one source.
//
// Pattern: devparam/parameter/<source>/+
func (t Topics) AllParameters(source string) string {
	return fmt.Sprintf("%s/parameter/%s/+", t.Prefix(), Segment(source))
}

// Segment turns free text into a single topic level: lower case ASCII
// letters and digits, with every other run of characters collapsed into
// one '-'. Text with nothing usable becomes "_".
func Segment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return emptySegment
	}
	return b.String()
}

// validTopic reports whether topic can be published to.
func validTopic(topic string) bool {
	return topic != "" && !strings.ContainsAny(topic, "+#")
}
