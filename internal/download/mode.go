// Package download decides how a client should fetch a file. Mobile
// browsers are unreliable at saving certain binary types from a direct
// navigation, so those get a confirmation step with open-in-new-tab
// instructions instead of an immediate download.
package download

import (
	"path/filepath"
	"strings"
)

type Mode string

const (
	// ModeDirect fetches the resource and triggers a save dialog.
	ModeDirect Mode = "direct"
	// ModeConfirm asks the user first, then opens the resource in a new
	// tab with manual save instructions.
	ModeConfirm Mode = "confirm"
)

var riskyExtensions = map[string]bool{
	"apk": true,
	"exe": true,
	"zip": true,
	"rar": true,
	"bin": true,
	"tar": true,
	"gz":  true,
	"dmg": true,
}

var mobileMarkers = []string{"android", "iphone", "ipad", "ipod", "mobile"}

// IsMobile reports whether the User-Agent looks like a mobile browser.
func IsMobile(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, marker := range mobileMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

// RiskyExtension reports whether the filename carries an extension known
// to download unreliably on mobile.
func RiskyExtension(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return riskyExtensions[ext]
}

// ForFile picks the download mode for a file served to the given
// User-Agent. Links always download directly; the confirmation step only
// applies to mobile clients fetching risky extensions.
func ForFile(userAgent, name string) Mode {
	if IsMobile(userAgent) && RiskyExtension(name) {
		return ModeConfirm
	}
	return ModeDirect
}
