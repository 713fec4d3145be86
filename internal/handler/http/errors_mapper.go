package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/internal/service"
	"github.com/MKhiriev/rhsm-sync/internal/store"
	"github.com/MKhiriev/rhsm-sync/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidLimit:       http.StatusBadRequest,
	ErrInvalidRequestBody: http.StatusBadRequest,
	ErrHistoryDisabled:    http.StatusNotFound,

	models.ErrInvalidServerURL:    http.StatusBadRequest,
	models.ErrMissingOrganization: http.StatusBadRequest,
	models.ErrMissingCredentials:  http.StatusBadRequest,
	models.ErrMissingProxyServer:  http.StatusBadRequest,

	service.ErrClosed: http.StatusServiceUnavailable,

	adapter.ErrServiceUnavailable: http.StatusBadGateway,
	adapter.ErrAccessDenied:       http.StatusBadGateway,
	adapter.ErrNoReply:            http.StatusBadGateway,
	adapter.ErrRemote:             http.StatusBadGateway,
	adapter.ErrUnexpectedReply:    http.StatusBadGateway,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrDecodingProducts:   http.StatusInternalServerError,
	store.ErrSnapshotNotSaved:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// registrationStatus maps a failed registration to a response code. Input
// rejected before any remote call is the caller's fault; anything later is
// the subscription service's.
func registrationStatus(err error) int {
	var regErr *service.RegistrationError
	if errors.As(err, &regErr) && regErr.Step == service.StepValidate {
		return http.StatusBadRequest
	}
	if status := statusFromError(err); status != http.StatusInternalServerError {
		return status
	}
	return http.StatusBadGateway
}
