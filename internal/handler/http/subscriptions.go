package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/utils"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
)

// getState writes the cached subscription state. It never waits on RHSM.
func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	state := h.syncClient.State()

	utils.WriteJSON(w, state.View(), http.StatusOK)
}

// refresh schedules a status refresh and returns before it completes.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Msg("status refresh requested")
	h.syncClient.RequestStatusRefresh()

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.history == nil {
		utils.WriteError(w, r, http.StatusNotFound, ErrHistoryDisabled.Error())
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		log.Err(err).Str("limit", r.URL.Query().Get("limit")).Send()
		utils.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	snapshots, err := h.history.History(r.Context(), limit)
	if err != nil {
		log.Err(err).Msg("error listing snapshots")
		utils.WriteError(w, r, statusFromError(err), "error listing snapshots")
		return
	}

	utils.WriteJSON(w, snapshots, http.StatusOK)
}

// parseLimit reads the history page size. Empty means the default; values
// above the maximum are capped.
func parseLimit(raw string) (uint64, error) {
	if raw == "" {
		return defaultHistoryLimit, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 {
		return 0, ErrInvalidLimit
	}

	return min(limit, maxHistoryLimit), nil
}
