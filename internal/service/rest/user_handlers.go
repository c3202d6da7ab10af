package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

type newUserRequest struct {
	Name      string `json:"name"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type authenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authenticateResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func (s *Server) handleNewUser(w http.ResponseWriter, r *http.Request) {
	var req newUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Firstname:    req.Firstname,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if errs := user.ValidateInvariants(); len(errs) > 0 {
		s.writeError(w, r, errs[0])
		return
	}

	if err := s.users.Create(r.Context(), user); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, newUserView(user))
}

func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	user, err := s.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		// Отсутствие пользователя не отличается от неверного пароля.
		if domain.IsNotFound(err) {
			s.writeError(w, r, domain.ErrInvalidCredentials)
			return
		}
		s.writeError(w, r, err)
		return
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		s.writeError(w, r, err)
		return
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, authenticateResponse{
		Token: token,
		User:  newUserView(user),
	})
}

func (s *Server) handleGetSelf(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), actingUserID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newUserView(user))
}
