package rest

import (
	"net/http"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
	"github.com/vladislavdragonenkov/salesops/internal/service/order"
)

type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type newOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []orderItemRequest `json:"items"`
	Total      float64            `json:"total"`
	State      string             `json:"state"`
}

type updateOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []orderItemRequest `json:"items"`
	Total      *float64           `json:"total"`
	State      *string            `json:"state"`
}

func toItemInputs(items []orderItemRequest) []order.ItemInput {
	if items == nil {
		return nil
	}
	inputs := make([]order.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, order.ItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return inputs
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newOrderViews(orders))
}

func (s *Server) handleListOwnOrders(w http.ResponseWriter, r *http.Request) {
	var err error
	var orders []domain.Order

	if state := r.URL.Query().Get("state"); state != "" {
		orders, err = s.orders.ListOwnedByState(r.Context(), actingUserID(r), state)
	} else {
		orders, err = s.orders.ListOwned(r.Context(), actingUserID(r))
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newOrderViews(orders))
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderRecord, err := s.orders.Get(r.Context(), actingUserID(r), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newOrderView(orderRecord))
}

func (s *Server) handleNewOrder(w http.ResponseWriter, r *http.Request) {
	var req newOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	created, err := s.orders.Create(r.Context(), actingUserID(r), order.CreateInput{
		CustomerID: req.CustomerID,
		Items:      toItemInputs(req.Items),
		Total:      req.Total,
		State:      req.State,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, newOrderView(created))
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	updated, err := s.orders.Update(r.Context(), actingUserID(r), r.PathValue("id"), order.UpdateInput{
		CustomerID: req.CustomerID,
		Items:      toItemInputs(req.Items),
		Total:      req.Total,
		State:      req.State,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newOrderView(updated))
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.orders.Delete(r.Context(), actingUserID(r), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusNoContent, nil)
}
