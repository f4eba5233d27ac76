package categorize

import (
	"fmt"
	"strings"
)

// Category is the functional group a parameter belongs to.
type Category string

// Category constants.
const (
	NetworkTiming    Category = "network_timing"
	IoAssembly       Category = "io_assembly"
	ConnectionPoints Category = "connection_points"
	IoConfiguration  Category = "io_configuration"
	DeviceConfig     Category = "device_config"
	VariableData     Category = "variable_data"
	Diagnostic       Category = "diagnostic"
	Other            Category = "other"
)

// Info is the display metadata of a category.
type Info struct {
	DisplayName string `json:"display_name"`
	Priority    int    `json:"priority"`
	Description string `json:"description"`
}

var categoryInfo = map[Category]Info{
	NetworkTiming: {
		DisplayName: "Network & Timing",
		Priority:    1,
		Description: "Requested packet intervals, timeouts, watchdogs and other timing parameters",
	},
	IoAssembly: {
		DisplayName: "I/O Assembly",
		Priority:    2,
		Description: "Assembly instances, packet sizes and data lengths",
	},
	ConnectionPoints: {
		DisplayName: "Connection Points",
		Priority:    3,
		Description: "Connection points, listen-only and input-only paths",
	},
	IoConfiguration: {
		DisplayName: "I/O Configuration",
		Priority:    4,
		Description: "Pin, port, channel, slot and module layout",
	},
	DeviceConfig: {
		DisplayName: "Device Configuration",
		Priority:    5,
		Description: "General settings, feature switches and options",
	},
	VariableData: {
		DisplayName: "Variable Data",
		Priority:    6,
		Description: "Variable-length or dynamically sized data",
	},
	Diagnostic: {
		DisplayName: "Diagnostics",
		Priority:    7,
		Description: "Status, error, fault and alarm reporting",
	},
	Other: {
		DisplayName: "Other",
		Priority:    99,
		Description: "Parameters that match no other category",
	},
}

// All returns every category ordered by priority, Other last.
func All() []Category {
	return []Category{
		NetworkTiming, IoAssembly, ConnectionPoints, IoConfiguration,
		DeviceConfig, VariableData, Diagnostic, Other,
	}
}

// Info returns the display metadata of c. Unknown values report as Other
// with their raw value as display name.
func (c Category) Info() Info {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	info := categoryInfo[Other]
	info.DisplayName = string(c)
	return info
}

// Priority is shorthand for c.Info().Priority.
func (c Category) Priority() int {
	return c.Info().Priority
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// String returns the display name.
func (c Category) String() string {
	return c.Info().DisplayName
}

// Parse resolves a category from its identifier or display name,
// case-insensitively.
func Parse(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range All() {
		if key == string(c) || key == strings.ToLower(categoryInfo[c].DisplayName) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
