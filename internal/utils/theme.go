package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// Theme holds ANSI color configuration for terminal output.
// Values are raw ANSI escape sequences (e.g. "\u001b[38;2;120;140;160m").
//
// This file is loaded from <gpt-config-dir>/theme.json on startup.
// If NO_COLOR is set truthy, all colorization is disabled.
type Theme struct {
	Notice string `json:"notice"`

	RoleUser      string `json:"roleUser"`
	RoleAssistant string `json:"roleAssistant"`
	RoleError     string `json:"roleError"`
}

func defaultTheme() *Theme {
	return &Theme{
		Notice: "\u001b[33m",

		RoleUser:      "\u001b[1;94m",
		RoleAssistant: "\u001b[1;92m",
		RoleError:     "\u001b[1;31m",
	}
}

var globalTheme = *defaultTheme()

// LoadTheme loads (and possibly creates) the theme.json file within the config dir.
// It is safe to call multiple times.
func LoadTheme(configDirPath string) error {
	conf, err := LoadConfigFromFile(configDirPath, "theme.json", defaultTheme())
	if err != nil {
		return fmt.Errorf("load theme config: %w", err)
	}
	globalTheme = conf
	return nil
}

// ThemeConfigPath returns the fully qualified theme.json path.
func ThemeConfigPath(configDirPath string) string {
	return filepath.Join(configDirPath, "theme.json")
}

// NoColor reports whether color output should be disabled.
func NoColor() bool {
	return misc.Truthy(os.Getenv("NO_COLOR"))
}

const ansiReset = "\u001b[0m"

// Colorize wraps s with the given ANSI color code unless NO_COLOR is set or color is empty.
func Colorize(color, s string) string {
	if NoColor() || color == "" {
		return s
	}
	return color + s + ansiReset
}

// RoleColor returns the theme color for a chat role.
func RoleColor(role string) string {
	switch role {
	case "user":
		return globalTheme.RoleUser
	case "assistant":
		return globalTheme.RoleAssistant
	case "error":
		return globalTheme.RoleError
	default:
		return globalTheme.Notice
	}
}

func ThemeNoticeColor() string { return globalTheme.Notice }
