package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

// health handles health check requests
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, entity.NewHealth(s.now()))
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.repo.GetAccounts(r.Context())
	respond(w, accounts, err)
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "accountId")

	account, err := s.repo.GetAccount(r.Context(), id)
	if errors.Is(err, types.ErrAccountNotFound) {
		WriteNotFound(w, "Account not found", nil)
		return
	}
	respond(w, account, err)
}

func (s *Server) costOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.repo.GetCostOverview(r.Context())
	respond(w, overview, err)
}

func (s *Server) serviceBreakdown(w http.ResponseWriter, r *http.Request) {
	services, err := s.repo.GetServiceBreakdown(r.Context())
	respond(w, services, err)
}

func (s *Server) costTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := s.repo.GetCostTrends(r.Context())
	respond(w, trends, err)
}

func (s *Server) budgetAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.repo.GetBudgetAlerts(r.Context())
	respond(w, alerts, err)
}

func (s *Server) regionalCosts(w http.ResponseWriter, r *http.Request) {
	regions, err := s.repo.GetRegionalCosts(r.Context())
	respond(w, regions, err)
}

func respond(w http.ResponseWriter, data interface{}, err error) {
	if err != nil {
		log.WithError(err).Error("Failed to read billing data")
		WriteInternalError(w, "Failed to read billing data")
		return
	}
	WriteJSON(w, http.StatusOK, data)
}
