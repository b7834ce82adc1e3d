package identity

import "strings"

// parseUserAgent applies a small set of substring heuristics over a
// browser's User-Agent header to produce a best-effort Device descriptor.
// None of the examples this service is grounded on import a UA-parsing
// library, so this stays on stdlib string matching rather than reaching for
// a dependency with no grounding in the pack.
func parseUserAgent(ua string) Device {
	var d Device
	d.Type = "desktop"

	if ua == "" {
		return d
	}

	lower := strings.ToLower(ua)

	switch {
	case strings.Contains(lower, "iphone"):
		d.OS = "iOS"
		d.Model = "iPhone"
		d.Type = "mobile"
	case strings.Contains(lower, "ipad"):
		d.OS = "iOS"
		d.Model = "iPad"
		d.Type = "tablet"
	case strings.Contains(lower, "android"):
		d.OS = "Android"
		d.Type = "mobile"
		if strings.Contains(lower, "mobile") {
			d.Type = "mobile"
		} else {
			d.Type = "tablet"
		}
	case strings.Contains(lower, "mac os"):
		d.OS = "Mac OS"
		d.Type = "laptop"
	case strings.Contains(lower, "windows"):
		d.OS = "Windows"
		d.Type = "desktop"
	case strings.Contains(lower, "cros"):
		d.OS = "Chrome OS"
		d.Type = "laptop"
	case strings.Contains(lower, "linux"):
		d.OS = "Linux"
		d.Type = "desktop"
	}

	switch {
	case strings.Contains(lower, "edg/"):
		d.Browser = "Edge"
	case strings.Contains(lower, "opr/") || strings.Contains(lower, "opera"):
		d.Browser = "Opera"
	case strings.Contains(lower, "firefox"):
		d.Browser = "Firefox"
	case strings.Contains(lower, "chrome"):
		d.Browser = "Chrome"
	case strings.Contains(lower, "safari"):
		d.Browser = "Safari"
	}

	return d
}
