package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

type contextKey string

const actingUserKey contextKey = "acting-user"

// actingUserID извлекает идентификатор продавца из контекста запроса.
// Пустая строка означает анонимный запрос.
func actingUserID(r *http.Request) string {
	if id, ok := r.Context().Value(actingUserKey).(string); ok {
		return id
	}
	return ""
}

// requireAuth проверяет Bearer-токен и кладёт идентификатор продавца в
// контекст запроса. Отсутствующий или негодный токен — 401.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.writeError(w, r, domain.ErrUnauthenticated)
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), actingUserKey, claims.UserID())
		next(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

// statusRecorder запоминает код ответа для метрик и логов.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument записывает метрики и access-лог каждого запроса. В качестве
// route берётся шаблон маршрута, а не конкретный путь, чтобы не раздувать
// кардинальность метрик.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		duration := time.Since(started)
		s.metrics.RecordRequest(r.Method, route, strconv.Itoa(recorder.status), duration)
		s.logger.WithFields(log.Fields{
			"method":      r.Method,
			"route":       route,
			"status":      recorder.status,
			"duration_ms": duration.Milliseconds(),
		}).Debug("request handled")
	})
}
