package cfodash

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Targets are the five editable thresholds the alert engine compares
// against, in percentage points. The defaults are the healthy ranges for
// a services/software business.
type Targets struct {
	EBITDAMargin      float64 `yaml:"ebitda_margin"`      // ideal: 18-22
	PersonnelShare    float64 `yaml:"personnel_share"`    // ideal: <= 50-55
	VariableIncidence float64 `yaml:"variable_incidence"` // ideal: <= 40
	FixedIncidence    float64 `yaml:"fixed_incidence"`    // ideal: <= 25-30
	ROS               float64 `yaml:"ros"`                // ideal: >= 12
}

// DefaultTargets returns the built-in healthy thresholds.
func DefaultTargets() Targets {
	return Targets{
		EBITDAMargin:      18,
		PersonnelShare:    50,
		VariableIncidence: 40,
		FixedIncidence:    25,
		ROS:               12,
	}
}

// LoadTargets reads the targets file. A missing file is not an error:
// the defaults apply until a target is saved for the first time.
func LoadTargets(path string) (Targets, error) {
	t := DefaultTargets()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("cannot read targets file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTargets(), fmt.Errorf("cannot parse targets file %q: %w", path, err)
	}
	return t, nil
}

// Save writes the targets to the given file.
func (t Targets) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("cannot encode targets: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write targets file %q: %w", path, err)
	}
	return nil
}

// Set updates one field by name ("ebitda", "personnel", "variable",
// "fixed", "ros"). A value that does not parse as a number is silently
// rejected and the field keeps its previous value; Set reports whether
// the field changed. An unknown field name is an error.
func (t *Targets) Set(field, value string) (bool, error) {
	var dst *float64
	switch strings.ToLower(field) {
	case "ebitda":
		dst = &t.EBITDAMargin
	case "personnel":
		dst = &t.PersonnelShare
	case "variable":
		dst = &t.VariableIncidence
	case "fixed":
		dst = &t.FixedIncidence
	case "ros":
		dst = &t.ROS
	default:
		return false, fmt.Errorf("unknown target %q (want ebitda, personnel, variable, fixed or ros)", field)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return false, nil
	}
	*dst = v
	return true, nil
}
