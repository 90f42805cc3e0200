// Package sse reconstructs server-sent events from a raw chunked response
// body. The backend frames events with a blank line and carries payload text
// on "data:" lines; the payload "[STREAM-END]" ends the stream.
package sse

import "strings"

const (
	FrameSeparator = "\n\n"
	DataPrefix     = "data:"
	Sentinel       = "[STREAM-END]"
)

// Frame is the raw text of one event, without its trailing blank line.
type Frame string

// Payloads returns the trimmed remainder of every "data:" line, in order.
func (f Frame) Payloads() []string {
	var payloads []string
	for _, line := range strings.Split(string(f), "\n") {
		if !strings.HasPrefix(line, DataPrefix) {
			continue
		}
		payloads = append(payloads, strings.TrimSpace(line[len(DataPrefix):]))
	}
	return payloads
}

// Split appends chunk to buffer and cuts every complete frame off the front.
// rest is the trailing partial frame and must be passed back in with the next
// chunk.
func Split(buffer string, chunk string) (frames []Frame, rest string) {
	acc := buffer + chunk
	parts := strings.Split(acc, FrameSeparator)
	for _, part := range parts[:len(parts)-1] {
		frames = append(frames, Frame(part))
	}
	return frames, parts[len(parts)-1]
}
