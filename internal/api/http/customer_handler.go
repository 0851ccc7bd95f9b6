package http

import (
	"net/http"

	"rma-portal-backend/internal/service"
)

// CustomerHandler serves customer profiles. Customers can read and
// update only their own profile; staff can list and manage all.
type CustomerHandler struct {
	customers service.CustomerService
	paging    paging
}

func NewCustomerHandler(customers service.CustomerService, pg paging) *CustomerHandler {
	return &CustomerHandler{customers: customers, paging: pg}
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if !actor.Role.IsStaff() && actor.ID != id {
		respondError(w, service.ErrForbidden)
		return
	}
	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, customer)
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *CustomerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if !actor.Role.IsStaff() && actor.ID != id {
		respondError(w, service.ErrForbidden)
		return
	}
	var req updateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	customer, err := h.customers.UpdateProfile(r.Context(), id, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, customer)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := h.paging.parse(r)
	customers, total, err := h.customers.ListCustomers(r.Context(), r.URL.Query().Get("search"), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, paginated{Items: customers, Total: total, Page: page, PageSize: pageSize})
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *CustomerHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req setActiveRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.customers.SetActive(r.Context(), id, req.Active); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]interface{}{"id": id, "active": req.Active})
}
