package http

import (
	"net/http"
	"strconv"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/service"
)

// maxImportBytes caps a sales CSV upload at 10 MB.
const maxImportBytes = 10 * 1024 * 1024

// SaleHandler serves sales records, the backing data for warranty
// verification. Staff only; the router enforces the role.
type SaleHandler struct {
	sales  service.SaleService
	paging paging
}

func NewSaleHandler(sales service.SaleService, pg paging) *SaleHandler {
	return &SaleHandler{sales: sales, paging: pg}
}

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var s domain.Sale
	if err := decodeBody(r, &s); err != nil {
		respondError(w, err)
		return
	}
	if err := h.sales.RecordSale(r.Context(), &s); err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, s)
}

func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	s, err := h.sales.GetSale(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, s)
}

func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var s domain.Sale
	if err := decodeBody(r, &s); err != nil {
		respondError(w, err)
		return
	}
	s.ID = id
	if err := h.sales.UpdateSale(r.Context(), &s); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, s)
}

func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.sales.DeleteSale(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]int32{"deleted": id})
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := h.paging.parse(r)
	q := r.URL.Query()
	var customerID, productID int32
	if v, err := strconv.ParseInt(q.Get("customer_id"), 10, 32); err == nil {
		customerID = int32(v)
	}
	if v, err := strconv.ParseInt(q.Get("product_id"), 10, 32); err == nil {
		productID = int32(v)
	}
	sales, total, err := h.sales.ListSales(r.Context(), customerID, productID, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, paginated{Items: sales, Total: total, Page: page, PageSize: pageSize})
}

// Import ingests a multipart CSV upload and reports per-line outcomes.
func (h *SaleHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, &domain.ValidationError{Field: "file", Message: "multipart file field required"})
		return
	}
	defer file.Close()

	outcomes, err := h.sales.ImportCSV(r.Context(), file)
	if err != nil {
		respondError(w, err)
		return
	}
	imported := 0
	for _, o := range outcomes {
		if o.Success {
			imported++
		}
	}
	respondOK(w, map[string]interface{}{
		"imported": imported,
		"failed":   len(outcomes) - imported,
		"outcomes": outcomes,
	})
}
