package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/party-pascal/internal/rules"
	"github.com/vovakirdan/party-pascal/internal/settings"
	"github.com/vovakirdan/party-pascal/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
	Long: `Show the stored preferences, or change one of them.

Keys:
  music_volume  - 0 to 1 (or 0% to 100%)
  fx_volume     - 0 to 1 (or 0% to 100%)
  fullscreen    - true or false (canvas only)
  difficulty    - easy, normal or hard

Examples:
  party settings
  party settings set difficulty hard
  party settings set music_volume 40%
  party settings reset`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one preference",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default preferences",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	a, err := openApp(io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Printf("Settings (%s)\n\n", a.Settings.Path())
	printValues(a.Settings.Values())
	return nil
}

func runSettingsSet(_ *cobra.Command, args []string) error {
	a, err := openApp(io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()

	v, err := applySetting(a.Settings.Values(), args[0], args[1])
	if err != nil {
		return err
	}
	a.Settings.SetValues(v)
	if err := a.Settings.Save(); err != nil {
		return err
	}
	printValues(a.Settings.Values())
	return nil
}

func runSettingsReset(_ *cobra.Command, _ []string) error {
	a, err := openApp(io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Settings.SetValues(settings.Defaults())
	if err := a.Settings.Save(); err != nil {
		return err
	}
	printValues(a.Settings.Values())
	return nil
}

func printValues(v settings.Values) {
	fmt.Printf("  %-13s %3.0f%%\n", "music_volume", v.MusicVolume*100)
	fmt.Printf("  %-13s %3.0f%%\n", "fx_volume", v.FXVolume*100)
	fmt.Printf("  %-13s %t\n", "fullscreen", v.Fullscreen)
	fmt.Printf("  %-13s %s\n", "difficulty", ui.DifficultyLabel(v.Difficulty))
}

// applySetting returns v with key set from the text value.
func applySetting(v settings.Values, key, value string) (settings.Values, error) {
	switch strings.ToLower(key) {
	case "music_volume", "music":
		vol, err := parseVolume(value)
		if err != nil {
			return v, err
		}
		v.MusicVolume = vol
	case "fx_volume", "fx", "sfx":
		vol, err := parseVolume(value)
		if err != nil {
			return v, err
		}
		v.FXVolume = vol
	case "fullscreen":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return v, fmt.Errorf("fullscreen must be true or false, got %q", value)
		}
		v.Fullscreen = on
	case "difficulty":
		d, err := rules.ParseStrict(value)
		if err != nil {
			return v, err
		}
		v.Difficulty = d
	default:
		return v, fmt.Errorf("unknown setting %q", key)
	}
	return v, nil
}

// parseVolume accepts 0.4 or 40%.
func parseVolume(s string) (float64, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("volume must be a number, got %q", s)
	}
	if percent {
		f /= 100
	}
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("volume %q is outside 0..1", s)
	}
	return f, nil
}
