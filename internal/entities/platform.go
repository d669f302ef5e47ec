package entities

import (
	"errors"
	"fmt"
)

// Platform is a cosmetic persona label. It only changes reply text and UI colours.
type Platform string

const (
	WhatsApp  Platform = "WhatsApp"
	Messenger Platform = "Messenger"
	Telegram  Platform = "Telegram"
	Instagram Platform = "Instagram"
)

var ErrUnsupportedPlatform = errors.New("unsupported platform")

// SupportedPlatforms keeps the order the platforms are advertised in.
var SupportedPlatforms = []Platform{WhatsApp, Messenger, Telegram, Instagram}

// Theme holds the colours a client renders a platform with.
type Theme struct {
	Primary string
	Accent  string
}

var themes = map[Platform]Theme{
	WhatsApp:  {Primary: "#22c55e", Accent: "#16a34a"},
	Messenger: {Primary: "#3b82f6", Accent: "#2563eb"},
	Telegram:  {Primary: "#0ea5e9", Accent: "#0284c7"},
	Instagram: {Primary: "#ec4899", Accent: "#9333ea"},
}

// ParsePlatform matches the exact, case-sensitive platform name.
func ParsePlatform(name string) (Platform, error) {
	for _, p := range SupportedPlatforms {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, name)
}

func PlatformNames() []string {
	names := make([]string, 0, len(SupportedPlatforms))
	for _, p := range SupportedPlatforms {
		names = append(names, string(p))
	}
	return names
}

func (p Platform) Theme() Theme {
	if t, ok := themes[p]; ok {
		return t
	}
	return Theme{Primary: "#c084fc", Accent: "#db2777"}
}
