package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fishmasterki/fishmaster/internal/models"
	"github.com/fishmasterki/fishmaster/internal/objectstore"
	"github.com/fishmasterki/fishmaster/internal/service"
	"github.com/fishmasterki/fishmaster/internal/sigi"
)

// Users -----------------------------------------------------------------------

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.Store.ListUsers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var ins models.InsertUser
	if err := decodeJSON(r, &ins); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	var fields []string
	if strings.TrimSpace(ins.Username) == "" {
		fields = append(fields, "username")
	}
	if strings.TrimSpace(ins.Email) == "" {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(ins.DisplayName) == "" {
		fields = append(fields, "displayName")
	}
	if len(fields) > 0 {
		writeDomainError(w, &service.ValidationError{Fields: fields})
		return
	}

	user, err := a.Store.CreateUser(r.Context(), ins)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := a.Store.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Species ---------------------------------------------------------------------

func (a *API) handleListSpecies(w http.ResponseWriter, r *http.Request) {
	species, err := a.Store.ListFishSpecies(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, species)
}

func (a *API) handleGetSpecies(w http.ResponseWriter, r *http.Request) {
	s, err := a.Store.GetFishSpecies(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Spots -----------------------------------------------------------------------

func (a *API) handleListSpots(w http.ResponseWriter, r *http.Request) {
	spots, err := a.Store.ListFishingSpots(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spots)
}

func (a *API) handleGetSpot(w http.ResponseWriter, r *http.Request) {
	s, err := a.Store.GetFishingSpot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Catches ---------------------------------------------------------------------

func (a *API) handleListCatches(w http.ResponseWriter, r *http.Request) {
	catches, err := a.Store.ListCatches(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catches)
}

func (a *API) handleCreateCatch(w http.ResponseWriter, r *http.Request) {
	var payload service.CatchPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	created, err := a.Service.CreateCatch(r.Context(), payload)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleLikeCatch(w http.ResponseWriter, r *http.Request) {
	c, err := a.Service.LikeCatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Tips ------------------------------------------------------------------------

func (a *API) handleListTips(w http.ResponseWriter, r *http.Request) {
	tips, err := a.Store.ListTips(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tips)
}

func (a *API) handleGetTip(w http.ResponseWriter, r *http.Request) {
	t, err := a.Store.GetTip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Weather ---------------------------------------------------------------------

func (a *API) handleWeather(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "lat and lng query parameters are required")
		return
	}
	writeJSON(w, http.StatusOK, a.Weather.Snapshot(r.Context(), lat, lng))
}

// Logbook ---------------------------------------------------------------------

func (a *API) handleListLogbook(w http.ResponseWriter, r *http.Request) {
	entries, err := a.Store.ListLogbookEntries(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (a *API) handleCreateLogbookEntry(w http.ResponseWriter, r *http.Request) {
	var payload service.LogbookPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	created, err := a.Service.CreateLogbookEntry(r.Context(), payload)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdateLogbookEntry(w http.ResponseWriter, r *http.Request) {
	var payload service.LogbookUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	updated, err := a.Service.UpdateLogbookEntry(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleDeleteLogbookEntry(w http.ResponseWriter, r *http.Request) {
	if err := a.Service.DeleteLogbookEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleLogbookStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Service.UserStats(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Sigi chat -------------------------------------------------------------------

func (a *API) handleKiBuddy(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string       `json:"message"`
		Context sigi.Context `json:"context"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		writeDomainError(w, &service.ValidationError{Fields: []string{"message"}})
		return
	}

	reply := a.Sigi.Reply(r.Context(), payload.Message, payload.Context)
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// Objects ---------------------------------------------------------------------

func (a *API) handleObjectUploadURL(w http.ResponseWriter, r *http.Request) {
	path := a.Objects.NewUploadPath()

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	uploadURL := scheme + "://" + r.Host + "/objects/" + path
	writeJSON(w, http.StatusOK, map[string]string{"uploadURL": uploadURL})
}

func (a *API) handlePutObject(w http.ResponseWriter, r *http.Request) {
	path := "uploads/" + chi.URLParam(r, "id")
	if err := a.Objects.Put(path, r.Body); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to store object")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": "/objects/" + path})
}

func (a *API) handleGetObject(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	obj, err := a.Objects.Open(path)
	if errors.Is(err, objectstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "object not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to read object")
		return
	}
	defer obj.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = io.Copy(w, obj)
}

// Health ----------------------------------------------------------------------

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
