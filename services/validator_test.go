package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/GDG-Vishnu/community-platform/models"
)

func TestValidateFormTree_CompleteFormPasses(t *testing.T) {
	form := &models.Form{
		Name: "Feedback",
		Sections: []models.Section{
			{
				Title: ptrString("General"),
				Fields: []models.Field{
					{Label: "Comments", Type: models.FieldTypeTextarea},
					{Label: "Topic", Type: models.FieldTypeSelect, Options: datatypes.JSON(`["talks","venue"]`)},
				},
			},
		},
	}
	assert.Empty(t, ValidateFormTree(form))
}

func TestValidateFormTree_AccumulatesAllIssues(t *testing.T) {
	form := &models.Form{
		Name: "   ",
		Sections: []models.Section{
			{Title: ptrString("Empty one")},
			{
				Fields: []models.Field{
					{Label: "", Type: models.FieldTypeText},
					{Label: "Track", Type: models.FieldTypeRadio, Options: datatypes.JSON(`[]`)},
				},
			},
		},
	}

	issues := ValidateFormTree(form)
	assert.Len(t, issues, 4)
	assert.Contains(t, issues, "form name must not be blank")
	assert.Contains(t, issues, `section "Empty one" has no fields`)
	assert.Contains(t, issues, "field 1 of section 2 has a blank label")
	assert.Contains(t, issues, `field "Track" is a choice field with no options`)
}

func TestValidateFormTree_NoSections(t *testing.T) {
	issues := ValidateFormTree(&models.Form{Name: "Bare"})
	assert.Equal(t, []string{"form must have at least one section"}, issues)
}

func TestValidateFormTree_ChoiceOptionShapes(t *testing.T) {
	cases := []struct {
		name    string
		options datatypes.JSON
		ok      bool
	}{
		{"absent", nil, false},
		{"null", datatypes.JSON(`null`), false},
		{"empty array", datatypes.JSON(`[]`), false},
		{"populated", datatypes.JSON(`["a"]`), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := &models.Form{
				Name: "Options",
				Sections: []models.Section{
					{Fields: []models.Field{
						{Label: "Pick", Type: models.FieldTypeMultiSelect, Options: tc.options},
					}},
				},
			}
			issues := ValidateFormTree(form)
			if tc.ok {
				assert.Empty(t, issues)
			} else {
				assert.Len(t, issues, 1)
			}
		})
	}
}
