// Package identity mints peer identifiers and derives the deterministic,
// human-facing identity (display name, device descriptor) shown to other
// peers in a room.
package identity

import "github.com/google/uuid"

// PeerId is an opaque, URL-safe, collision-resistant identifier. Stable
// across reconnects as long as the client presents the same cookie.
type PeerId string

// MintPeerId returns a fresh identifier with >=122 bits of entropy.
func MintPeerId() PeerId {
	return PeerId(uuid.NewString())
}

// Device describes the originating client, heuristically parsed from a
// user-agent string. Fields default to empty; Type defaults to "desktop".
type Device struct {
	Type    string `json:"type"`
	Model   string `json:"model"`
	OS      string `json:"os"`
	Browser string `json:"browser"`
}

// DisplayIdentity is the public, human-readable identity shown to other
// peers. DisplayName and Device are pure functions of PeerId and the
// handshake's user-agent string respectively, so the same inputs always
// reproduce the same identity.
type DisplayIdentity struct {
	DisplayName string `json:"displayName"`
	DeviceName  string `json:"deviceName"`
	Device      Device `json:"device"`
}

// New builds the DisplayIdentity for a newly (or re-) connected peer.
func New(id PeerId, userAgent string) DisplayIdentity {
	dev := parseUserAgent(userAgent)
	return DisplayIdentity{
		DisplayName: DeriveDisplayName(id),
		DeviceName:  deviceName(dev),
		Device:      dev,
	}
}

// deviceName combines OS (with "Mac OS" shortened to "Mac") and a device
// model or browser name; defaults to "Unknown Device" when nothing usable
// was extracted from the user-agent string.
func deviceName(d Device) string {
	os := d.OS
	if os == "Mac OS" {
		os = "Mac"
	}

	part := d.Model
	if part == "" {
		part = d.Browser
	}

	switch {
	case os != "" && part != "":
		return os + " " + part
	case os != "":
		return os
	case part != "":
		return part
	default:
		return "Unknown Device"
	}
}
