package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

type errorBody struct {
	Error     string `json:"error"`
	ProductID string `json:"product_id,omitempty"`
	Requested int32  `json:"requested,omitempty"`
	Available int32  `json:"available,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// writeError переводит доменную ошибку в HTTP-статус. Неизвестные ошибки
// логируются и отдаются как 500 без деталей.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		// Доступный остаток сообщается вызывающему: ему решать, уменьшать
		// ли количество.
		s.writeJSON(w, http.StatusConflict, errorBody{
			Error:     "insufficient stock",
			ProductID: stockErr.ProductID,
			Requested: stockErr.Requested,
			Available: stockErr.Available,
		})
		return
	}

	switch {
	case domain.IsNotFound(err):
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		s.writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrPermissionDenied):
		s.writeJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		s.writeJSON(w, http.StatusUnauthorized, errorBody{Error: domain.ErrUnauthenticated.Error()})
	case domain.IsValidation(err):
		s.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
	default:
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

// writeDecodeError отвечает 422 на нечитаемое тело запроса.
func (s *Server) writeDecodeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "malformed request body: " + err.Error()})
}
