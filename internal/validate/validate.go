package validate

import (
	"strings"

	"sweetbliss/internal/domain"
)

const (
	maxNameLen        = 80
	maxDescriptionLen = 500
)

// ItemPayload checks a create/update body field by field. It returns a
// field -> message map; an empty map means the payload is acceptable.
// Mirrors the add-item form rules: all text fields required, stock and
// price non-negative.
func ItemPayload(p domain.ItemPayload) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		errs["name"] = "name is required"
	case len(name) > maxNameLen:
		errs["name"] = "name is too long"
	}

	if strings.TrimSpace(p.Category) == "" {
		errs["category"] = "category is required"
	}

	if p.Stock < 0 {
		errs["stock"] = "stock must be a positive number"
	}
	if p.Price < 0 {
		errs["price"] = "price must be a positive number"
	}

	desc := strings.TrimSpace(p.Description)
	switch {
	case desc == "":
		errs["description"] = "description is required"
	case len(desc) > maxDescriptionLen:
		errs["description"] = "description is too long"
	}

	return errs
}

// Threshold parses a low-stock threshold query value, falling back to def
// for missing or unusable input.
func Threshold(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
		if n > 1_000_000 {
			return def
		}
	}
	return n
}
