package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrSettingsNotFound signals a missing or unreadable user settings file.
// The report treats it as "no quotes requested" rather than a failure.
var ErrSettingsNotFound = errors.New("user settings not found")

// UserSettings selects the currency and stock symbols shown in the report.
type UserSettings struct {
	Currencies []string `json:"user_currencies"`
	Stocks     []string `json:"user_stocks"`
}

// LoadUserSettings reads the user settings JSON file.
func LoadUserSettings(path string) (UserSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return UserSettings{}, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
	}
	var s UserSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return UserSettings{}, fmt.Errorf("parsing user settings: %w", err)
	}
	return s, nil
}
