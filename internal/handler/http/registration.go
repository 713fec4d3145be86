package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/utils"
	"github.com/MKhiriev/rhsm-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	subject, _ := utils.GetSubjectFromContext(r.Context())

	var details models.RegistrationDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		log.Err(err).Msg("error decoding registration details")
		utils.WriteError(w, r, http.StatusBadRequest, ErrInvalidRequestBody.Error())
		return
	}

	if err := h.syncClient.RegisterSystem(r.Context(), details); err != nil {
		log.Err(err).Str("subject", subject).Str("org", details.Org).Msg("registration failed")
		utils.WriteError(w, r, registrationStatus(err), err.Error())
		return
	}

	log.Info().Str("subject", subject).Str("org", details.Org).Msg("system registered")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	subject, _ := utils.GetSubjectFromContext(r.Context())

	if err := h.syncClient.UnregisterSystem(r.Context()); err != nil {
		log.Err(err).Str("subject", subject).Msg("unregister failed")
		utils.WriteError(w, r, registrationStatus(err), err.Error())
		return
	}

	log.Info().Str("subject", subject).Msg("system unregistered")
	w.WriteHeader(http.StatusAccepted)
}
