package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minNameLen        = 2
	maxNameLen        = 30
	maxDescriptionLen = 200
)

// ValidateGameName checks a manually entered game name. Validation happens
// here at the presentation edge; invalid input never reaches the ledger.
func ValidateGameName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) < minNameLen {
		return fmt.Errorf("name must be at least %d characters", minNameLen)
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return fmt.Errorf("name must be at most %d characters", maxNameLen)
	}
	return nil
}

// ValidateDescription checks an optional game description
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return fmt.Errorf("description must be at most %d characters", maxDescriptionLen)
	}
	return nil
}
