package rest

import "net/http"

func (s *Server) handleBestCustomers(w http.ResponseWriter, r *http.Request) {
	ranked, err := s.analytics.BestCustomers(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	views := make([]customerTotalView, 0, len(ranked))
	for _, entry := range ranked {
		views = append(views, customerTotalView{
			Customer: newCustomerView(entry.Customer),
			Total:    entry.Total,
		})
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleBestSalesmen(w http.ResponseWriter, r *http.Request) {
	ranked, err := s.analytics.BestSalesmen(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	views := make([]salesmanTotalView, 0, len(ranked))
	for _, entry := range ranked {
		views = append(views, salesmanTotalView{
			Salesman: newUserView(entry.Salesman),
			Total:    entry.Total,
		})
	}
	s.writeJSON(w, http.StatusOK, views)
}
