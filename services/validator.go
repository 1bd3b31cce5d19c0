package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GDG-Vishnu/community-platform/models"
)

// ValidateFormTree checks the minimum publishing constraints over a fully
// loaded form tree. All violations are accumulated; an empty result means the
// form may go live.
func ValidateFormTree(form *models.Form) []string {
	var issues []string

	if strings.TrimSpace(form.Name) == "" {
		issues = append(issues, "form name must not be blank")
	}
	if len(form.Sections) == 0 {
		issues = append(issues, "form must have at least one section")
	}

	for i, section := range form.Sections {
		sectionName := fmt.Sprintf("section %d", i+1)
		if section.Title != nil && strings.TrimSpace(*section.Title) != "" {
			sectionName = fmt.Sprintf("section %q", *section.Title)
		}
		if len(section.Fields) == 0 {
			issues = append(issues, sectionName+" has no fields")
		}
		for j, field := range section.Fields {
			fieldName := fmt.Sprintf("field %d of %s", j+1, sectionName)
			if strings.TrimSpace(field.Label) == "" {
				issues = append(issues, fieldName+" has a blank label")
			} else {
				fieldName = fmt.Sprintf("field %q", field.Label)
			}
			if field.Type.IsChoice() && emptyOptions(field.Options) {
				issues = append(issues, fieldName+" is a choice field with no options")
			}
		}
	}
	return issues
}

// emptyOptions treats null, absent, and [] payloads alike.
func emptyOptions(raw []byte) bool {
	if len(raw) == 0 {
		return true
	}
	var options []json.RawMessage
	if err := json.Unmarshal(raw, &options); err != nil {
		return true
	}
	return len(options) == 0
}
