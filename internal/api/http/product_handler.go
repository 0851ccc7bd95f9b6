package http

import (
	"net/http"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/service"
)

// ProductHandler serves the product catalog. Listing is open to any
// authenticated caller; mutation is admin-gated by the router.
type ProductHandler struct {
	products service.ProductService
	paging   paging
}

func NewProductHandler(products service.ProductService, pg paging) *ProductHandler {
	return &ProductHandler{products: products, paging: pg}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := decodeBody(r, &p); err != nil {
		respondError(w, err)
		return
	}
	if err := h.products.AddProduct(r.Context(), &p); err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, p)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	p, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var p domain.Product
	if err := decodeBody(r, &p); err != nil {
		respondError(w, err)
		return
	}
	p.ID = id
	if err := h.products.UpdateProduct(r.Context(), &p); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]int32{"deleted": id})
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	page, pageSize := h.paging.parse(r)
	q := r.URL.Query()
	// Customers browsing the intake form only ever see active products.
	activeOnly := !actor.Role.IsStaff() || q.Get("active_only") == "true"
	products, total, err := h.products.ListProducts(r.Context(), q.Get("search"), q.Get("category"), activeOnly, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, paginated{Items: products, Total: total, Page: page, PageSize: pageSize})
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.ListCategories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, categories)
}

type bulkIDsRequest struct {
	IDs    []int32 `json:"ids"`
	Active bool    `json:"active"`
}

func (h *ProductHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if len(req.IDs) == 0 {
		respondError(w, &domain.ValidationError{Field: "ids", Message: "required"})
		return
	}
	respondOK(w, h.products.BulkDelete(r.Context(), req.IDs))
}

func (h *ProductHandler) BulkSetActive(w http.ResponseWriter, r *http.Request) {
	var req bulkIDsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if len(req.IDs) == 0 {
		respondError(w, &domain.ValidationError{Field: "ids", Message: "required"})
		return
	}
	respondOK(w, h.products.BulkSetActive(r.Context(), req.IDs, req.Active))
}
