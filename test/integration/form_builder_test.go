//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDG-Vishnu/community-platform/models"
)

func TestAuthBoundary_Integration(t *testing.T) {
	t.Run("no credentials redirects to login", func(t *testing.T) {
		w := doRequest(t, http.MethodGet, "/forms", "", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := doRequest(t, http.MethodGet, "/forms", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("member cannot reach the builder", func(t *testing.T) {
		token := memberTokenFor(t, "plainmember")
		w := doRequest(t, http.MethodPost, "/forms", token, map[string]interface{}{"name": "nope"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestFormBuilderLifecycle_Integration(t *testing.T) {
	var form models.Form
	w := doRequest(t, http.MethodPost, "/forms", adminToken, map[string]interface{}{
		"name": "Recruitment 2026",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeData(t, w, &form)
	require.Len(t, form.Sections, 1)
	assert.Equal(t, "Section 1", *form.Sections[0].Title)

	firstSection := form.Sections[0].ID

	// second section appends after the first
	var second models.Section
	w = doRequest(t, http.MethodPost, "/sections", adminToken, map[string]interface{}{
		"form_id": form.ID,
		"title":   "Extras",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeData(t, w, &second)
	assert.Equal(t, 1, second.Order)

	var nameField models.Field
	w = doRequest(t, http.MethodPost, "/fields", adminToken, map[string]interface{}{
		"section_id": firstSection,
		"label":      "Full name",
		"type":       "text",
		"required":   true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeData(t, w, &nameField)

	var trackField models.Field
	w = doRequest(t, http.MethodPost, "/fields", adminToken, map[string]interface{}{
		"section_id": firstSection,
		"label":      "Track",
		"type":       "select",
		"options":    json.RawMessage(`["web","mobile","ml"]`),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeData(t, w, &trackField)
	assert.Equal(t, 1, trackField.Order)

	t.Run("reorder survives a read-back", func(t *testing.T) {
		w := doRequest(t, http.MethodPut, "/sections/reorder", adminToken, map[string]interface{}{
			"form_id": form.ID,
			"sections": []map[string]interface{}{
				{"id": second.ID, "order": 0},
				{"id": firstSection, "order": 1},
			},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var tree models.Form
		w = doRequest(t, http.MethodGet, "/forms/"+form.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		decodeData(t, w, &tree)
		require.Len(t, tree.Sections, 2)
		assert.Equal(t, second.ID, tree.Sections[0].ID)
		assert.Equal(t, firstSection, tree.Sections[1].ID)

		// restore for the rest of the suite
		w = doRequest(t, http.MethodPut, "/sections/reorder", adminToken, map[string]interface{}{
			"form_id": form.ID,
			"sections": []map[string]interface{}{
				{"id": firstSection, "order": 0},
				{"id": second.ID, "order": 1},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reorder with a foreign section is rejected whole", func(t *testing.T) {
		w := doRequest(t, http.MethodPut, "/sections/reorder", adminToken, map[string]interface{}{
			"form_id": form.ID,
			"sections": []map[string]interface{}{
				{"id": firstSection, "order": 5},
				{"id": "0f0f0f0f-0f0f-0f0f-0f0f-0f0f0f0f0f0f", "order": 6},
			},
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		var tree models.Form
		w = doRequest(t, http.MethodGet, "/forms/"+form.ID, adminToken, nil)
		decodeData(t, w, &tree)
		assert.Equal(t, 0, tree.Sections[0].Order)
	})

	t.Run("publish is gated on structure", func(t *testing.T) {
		// the Extras section still has no fields
		w := doRequest(t, http.MethodPut, "/forms/"+form.ID+"/publish", adminToken, map[string]interface{}{
			"is_active": true,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var envelope struct {
			Issues []string `json:"issues"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.NotEmpty(t, envelope.Issues)

		// still inactive for the public
		w = doRequest(t, http.MethodGet, "/public/forms/"+form.ID, "", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("publish succeeds once complete", func(t *testing.T) {
		w := doRequest(t, http.MethodDelete, "/sections/"+second.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doRequest(t, http.MethodPut, "/forms/"+form.ID+"/publish", adminToken, map[string]interface{}{
			"is_active": true,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doRequest(t, http.MethodGet, "/public/forms/"+form.ID, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("submissions flow end to end", func(t *testing.T) {
		w := doRequest(t, http.MethodPost, "/submissions", "", map[string]interface{}{
			"form_id": form.ID,
			"responses": []map[string]interface{}{
				{"field_id": nameField.ID, "value": json.RawMessage(`"Ada Lovelace"`)},
				{"field_id": trackField.ID, "value": json.RawMessage(`"ml"`)},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// a stray field ID rejects the whole submission
		w = doRequest(t, http.MethodPost, "/submissions", "", map[string]interface{}{
			"form_id": form.ID,
			"responses": []map[string]interface{}{
				{"field_id": "0f0f0f0f-0f0f-0f0f-0f0f-0f0f0f0f0f0f", "value": json.RawMessage(`"x"`)},
			},
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		var subs []models.FormSubmission
		w = doRequest(t, http.MethodGet, "/forms/"+form.ID+"/submissions", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		decodeData(t, w, &subs)
		require.Len(t, subs, 1)
		assert.Len(t, subs[0].Responses, 2)
	})

	t.Run("last section cannot be deleted", func(t *testing.T) {
		w := doRequest(t, http.MethodDelete, "/sections/"+firstSection, adminToken, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("deleting the form cascades", func(t *testing.T) {
		w := doRequest(t, http.MethodDelete, "/forms/"+form.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var sections, fields, responses int64
		require.NoError(t, gormDB.Model(&models.Section{}).Where("form_id = ?", form.ID).Count(&sections).Error)
		require.NoError(t, gormDB.Model(&models.Field{}).Where("section_id = ?", firstSection).Count(&fields).Error)
		require.NoError(t, gormDB.Model(&models.FieldResponse{}).Where("field_id = ?", nameField.ID).Count(&responses).Error)
		assert.Zero(t, sections)
		assert.Zero(t, fields)
		assert.Zero(t, responses)
	})
}

func TestFormClone_Integration(t *testing.T) {
	var form models.Form
	w := doRequest(t, http.MethodPost, "/forms", adminToken, map[string]interface{}{"name": "Source"})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeData(t, w, &form)

	var field models.Field
	w = doRequest(t, http.MethodPost, "/fields", adminToken, map[string]interface{}{
		"section_id": form.Sections[0].ID,
		"label":      "Answer",
		"type":       "text",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeData(t, w, &field)

	w = doRequest(t, http.MethodPut, "/forms/"+form.ID+"/publish", adminToken, map[string]interface{}{"is_active": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, http.MethodPost, "/submissions", "", map[string]interface{}{
		"form_id": form.ID,
		"responses": []map[string]interface{}{
			{"field_id": field.ID, "value": json.RawMessage(`"42"`)},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var clone models.Form
	w = doRequest(t, http.MethodPost, "/forms/"+form.ID+"/clone", adminToken, map[string]interface{}{
		"include_submissions": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeData(t, w, &clone)
	assert.Equal(t, "Source (copy)", clone.Name)
	assert.NotEqual(t, form.ID, clone.ID)

	// submissions came along and point at the clone's own field IDs
	var subs []models.FormSubmission
	w = doRequest(t, http.MethodGet, "/forms/"+clone.ID+"/submissions", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &subs)
	require.Len(t, subs, 1)
	require.Len(t, subs[0].Responses, 1)
	assert.NotEqual(t, field.ID, subs[0].Responses[0].FieldID)

	// clones always start unpublished
	var tree models.Form
	w = doRequest(t, http.MethodGet, "/forms/"+clone.ID, adminToken, nil)
	decodeData(t, w, &tree)
	assert.False(t, tree.IsActive)
}
