package http

import (
	"errors"
	"net/http"

	"crm-task-bridge/internal/task"
	"crm-task-bridge/internal/task/repository"
	pkgErrors "crm-task-bridge/pkg/errors"
)

// mapError translates domain and upstream errors into HTTP errors.
// Upstream messages are surfaced verbatim with a hint, never swallowed.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var upstreamErr *repository.UpstreamError
	if errors.As(err, &upstreamErr) {
		switch upstreamErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return pkgErrors.NewHTTPError(http.StatusBadGateway, upstreamErr.Message).
				WithHint("the connector rejected the credential — reconnect the Zoho CRM account in the connector dashboard")
		default:
			return pkgErrors.NewHTTPError(http.StatusBadGateway, upstreamErr.Message).
				WithHint("the upstream connector call failed; the message above is the connector's own response")
		}
	}

	// Transport-level failure: the connector never answered.
	return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error()).
		WithHint("could not reach the connector — check connector.base_url and network access")
}
