package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Nomenandrianina/fleet-master/internal/models"
	"github.com/Nomenandrianina/fleet-master/internal/service"
)

func TestProfileHandlers_GetAndUpdate(t *testing.T) {
	profile := &mockProfile{loadResp: models.DefaultProfile()}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Profile:       profile,
	}
	r := newTestRouter(s)

	// requires auth
	w := perform(r, http.MethodGet, "/api/v1/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	// GET returns the stored (here: default) record
	w = perform(r, http.MethodGet, "/api/v1/profile", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	var got models.Profile
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal profile: %v", err)
	}
	if got != models.DefaultProfile() {
		t.Fatalf("unexpected profile: %+v", got)
	}

	// PUT replaces the whole record and echoes it back
	update := models.DefaultProfile()
	update.FirstName = "Karim"
	update.City = "Rabat"
	raw, _ := json.Marshal(update)

	w = perform(r, http.MethodPut, "/api/v1/profile", "valid", bytes.NewBuffer(raw))
	if w.Code != http.StatusOK {
		t.Fatalf("put status=%d, body=%s", w.Code, w.Body.String())
	}
	if profile.lastSaved == nil || *profile.lastSaved != update {
		t.Fatalf("record not passed through: %+v", profile.lastSaved)
	}
	var echoed models.Profile
	_ = json.Unmarshal(w.Body.Bytes(), &echoed)
	if echoed != update {
		t.Fatalf("echoed record differs: %+v", echoed)
	}

	// malformed body → 400
	w = perform(r, http.MethodPut, "/api/v1/profile", "valid", bytes.NewBufferString(`{`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}

	// rejected save → 400
	profile.saveErr = errForTests
	w = perform(r, http.MethodPut, "/api/v1/profile", "valid", bytes.NewBuffer(raw))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rejected save, got %d", w.Code)
	}
}

func TestProfileHandlers_LoadFailure(t *testing.T) {
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Profile:       &mockProfile{loadErr: errForTests},
	}
	r := newTestRouter(s)

	w := perform(r, http.MethodGet, "/api/v1/profile", "valid", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on load failure, got %d", w.Code)
	}
}
