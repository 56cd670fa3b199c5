// Package configprocessor provides shared configuration processing utilities.
package configprocessor

import (
	"fmt"
	"strings"
)

// GameInfo represents game configuration information
type GameInfo struct {
	Name   string
	Active bool
}

// Processor handles configuration processing and validation
type Processor struct{}

// NewProcessor creates a new configuration processor
func NewProcessor() *Processor {
	return &Processor{}
}

// ValidateConfiguration validates the configured games and returns warnings
func (p *Processor) ValidateConfiguration(games []GameInfo) []string {
	var warnings []string

	if len(games) == 0 {
		return []string{"no games defined"}
	}

	active := 0
	seen := make(map[string]int)
	for i, game := range games {
		name := strings.TrimSpace(game.Name)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("game #%d has no name", i+1))
		} else if first, ok := seen[name]; ok {
			warnings = append(warnings, fmt.Sprintf("game '%s' is defined more than once (#%d and #%d)", name, first+1, i+1))
		} else {
			seen[name] = i
		}

		if game.Active {
			active++
		} else {
			warnings = append(warnings, fmt.Sprintf("game '%s' is inactive and will be skipped", name))
		}
	}

	if active == 0 {
		warnings = append(warnings, "no active games defined")
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}
