package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/zenstats/internal/charsheet"
	"github.com/louisbranch/zenstats/internal/charsheet/storage"
	"github.com/louisbranch/zenstats/internal/miniapp"
	apperrors "github.com/louisbranch/zenstats/internal/platform/errors"
	"github.com/louisbranch/zenstats/internal/web/templates"
)

// statsParam is the query parameter carrying the character payload.
const statsParam = "stats"

// CharacterSource looks up stored character snapshots for the stats API.
type CharacterSource interface {
	GetCharacter(ctx context.Context, userID string) (storage.CharacterRecord, error)
}

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// Shell is the injected host runtime; the zero value renders a page
	// without SDK wiring.
	Shell miniapp.Shell
	// Characters backs /api/stats. A nil source serves the sheet page only.
	Characters CharacterSource
}

type handler struct {
	shell      miniapp.Shell
	characters CharacterSource
}

// NewHandler builds the HTTP handler for the web server.
func NewHandler(shell miniapp.Shell, characters CharacterSource) http.Handler {
	h := handler{shell: shell, characters: characters}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleSheet)
	mux.HandleFunc("GET /api/stats", h.handleStats)
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	return mux
}

// handleSheet renders the character sheet page. Decode failures surface as
// the inline error slot with a 200: the failure is reported to the viewer,
// never escalated to the host shell.
func (h handler) handleSheet(w http.ResponseWriter, r *http.Request) {
	raw, _ := rawQueryParam(r.URL.RawQuery, statsParam)
	state, err := charsheet.Decode(raw)

	var fragment templ.Component
	if err != nil {
		log.Printf("decode stats payload: %v", err)
		fragment = templates.ErrorNotice(charsheet.Notice(err))
	} else {
		fragment = templates.CharacterSheet(templates.NewSheetView(state))
	}
	page := templates.Page(templates.PageTitle, h.shell, fragment)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		log.Printf("render sheet page: %v", err)
	}
}

// handleStats serves the producer JSON payload for a stored character.
func (h handler) handleStats(w http.ResponseWriter, r *http.Request) {
	payload, err := h.lookupStats(r)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(payload); err != nil {
		log.Printf("write stats response: %v", err)
	}
}

func (h handler) lookupStats(r *http.Request) ([]byte, error) {
	if h.characters == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "character storage is not configured")
	}
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		return nil, apperrors.E(apperrors.KindInvalidInput, "user_id is required")
	}
	record, err := h.characters.GetCharacter(r.Context(), userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "character not found")
	}
	if err != nil {
		log.Printf("get character %s: %v", userID, err)
		return nil, apperrors.E(apperrors.KindUnknown, "character lookup failed")
	}
	return charsheet.MarshalPayload(record.State)
}

func (h handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeJSONError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.HTTPStatus(err))
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// rawQueryParam extracts the still URL-encoded value of one query
// parameter. Going through url.Values would decode the payload a first
// time and corrupt legitimate plus signs before Decode's own pass.
func rawQueryParam(rawQuery, key string) (string, bool) {
	for _, pair := range strings.Split(rawQuery, "&") {
		name, value, _ := strings.Cut(pair, "=")
		if name == key {
			return value, true
		}
	}
	return "", false
}
