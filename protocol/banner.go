package protocol

import "strings"

// Banner is the server greeting sent right after the connection opens.
//
// Format: 220 <text> <capabilities> <msg-id>
//
// Example:
//
//	220 dict.org dictd 1.12.1 <auth.mime> <51426.21436.1602946010@dict.org>
type Banner struct {
	Status Status

	// Text is the free text before the first angle bracket
	Text string

	// Capabilities lists the extensions announced by the server (auth, mime, ...)
	Capabilities []string

	// MessageID is used by the AUTH command; empty when the server sent none
	MessageID string
}

// ParseBanner extracts capabilities and message id from a greeting status.
// Missing or malformed bracket groups are tolerated.
func ParseBanner(status Status) Banner {
	banner := Banner{Status: status, Text: status.Text}

	var groups []string
	rest := status.Text
	if i := strings.IndexByte(rest, '<'); i >= 0 {
		banner.Text = strings.TrimSpace(rest[:i])
	}
	for {
		start := strings.IndexByte(rest, '<')
		if start < 0 {
			break
		}
		end := strings.IndexByte(rest[start:], '>')
		if end < 0 {
			break
		}
		groups = append(groups, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}

	if len(groups) > 0 {
		banner.MessageID = "<" + groups[len(groups)-1] + ">"
	}
	if len(groups) > 1 {
		for _, capability := range strings.Split(groups[len(groups)-2], ".") {
			if capability != "" {
				banner.Capabilities = append(banner.Capabilities, capability)
			}
		}
	}

	return banner
}

// HasCapability returns true if the server announced the given extension.
func (b Banner) HasCapability(name string) bool {
	for _, capability := range b.Capabilities {
		if strings.EqualFold(capability, name) {
			return true
		}
	}
	return false
}
