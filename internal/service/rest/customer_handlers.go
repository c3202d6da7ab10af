package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

type customerRequest struct {
	Name      string `json:"name"`
	Firstname string `json:"firstname"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newCustomerViews(customers))
}

func (s *Server) handleListOwnCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers.ListBySalesman(r.Context(), actingUserID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newCustomerViews(customers))
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := s.customers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.guard.Authorize(actingUserID(r), customer.SalesmanID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newCustomerView(customer))
}

func (s *Server) handleNewCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	customer := domain.Customer{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Firstname:  req.Firstname,
		Company:    req.Company,
		Email:      req.Email,
		Phone:      req.Phone,
		SalesmanID: actingUserID(r),
		CreatedAt:  time.Now().UTC(),
	}
	if errs := customer.ValidateInvariants(); len(errs) > 0 {
		s.writeError(w, r, errs[0])
		return
	}

	if err := s.customers.Create(r.Context(), customer); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, newCustomerView(customer))
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	customer, err := s.customers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.guard.Authorize(actingUserID(r), customer.SalesmanID); err != nil {
		s.writeError(w, r, err)
		return
	}

	customer.Name = req.Name
	customer.Firstname = req.Firstname
	customer.Company = req.Company
	customer.Email = req.Email
	customer.Phone = req.Phone
	if errs := customer.ValidateInvariants(); len(errs) > 0 {
		s.writeError(w, r, errs[0])
		return
	}

	if err := s.customers.Save(r.Context(), customer); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newCustomerView(customer))
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := s.customers.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.guard.Authorize(actingUserID(r), customer.SalesmanID); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.customers.Delete(r.Context(), customer.ID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusNoContent, nil)
}
