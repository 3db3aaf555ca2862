package catalog

import (
	"fmt"
	"strings"
)

// validateShortcuts performs the cross-entry checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateShortcuts(shortcuts []Shortcut) error {
	var errs []string

	keys := make(map[string]bool, len(shortcuts))
	for _, s := range shortcuts {
		if keys[s.Key] {
			errs = append(errs, fmt.Sprintf("duplicate shortcut key: %q", s.Key))
		}
		keys[s.Key] = true

		if !s.Category.Valid() {
			errs = append(errs, fmt.Sprintf("shortcut %q has unknown category %q", s.Key, s.Category))
		}

		correct := 0
		texts := make(map[string]bool, len(s.Options))
		for _, o := range s.Options {
			if o.Correct {
				correct++
			}
			if texts[o.Text] {
				errs = append(errs, fmt.Sprintf("shortcut %q repeats option %q", s.Key, o.Text))
			}
			texts[o.Text] = true
		}
		if correct != 1 {
			errs = append(errs, fmt.Sprintf("shortcut %q has %d correct options, want 1", s.Key, correct))
		}
	}

	return joinErrors(errs)
}

// validateCurated checks that the curated difficulty lists point at real
// entries of c.
func validateCurated(c *Catalog) error {
	var errs []string
	for _, k := range easyKeys {
		if _, ok := c.byKey[k]; !ok {
			errs = append(errs, fmt.Sprintf("easy key %q not in catalog", k))
		}
	}
	for _, k := range hardKeys {
		if _, ok := c.byKey[k]; !ok {
			errs = append(errs, fmt.Sprintf("hard key %q not in catalog", k))
		}
	}
	return joinErrors(errs)
}

func joinErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
}
