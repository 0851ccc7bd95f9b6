package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rma-portal-backend/internal/domain"
)

// pathID reads a numeric {id} path variable.
func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Field: "id", Message: "must be a positive integer"}
	}
	return int32(id), nil
}

// paging reads page/page_size query parameters, clamped to the
// configured bounds.
type paging struct {
	defaultSize int32
	maxSize     int32
}

func (p paging) parse(r *http.Request) (page, pageSize int32) {
	page = 1
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	pageSize = p.defaultSize
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 {
		pageSize = int32(v)
	}
	if pageSize > p.maxSize {
		pageSize = p.maxSize
	}
	return page, pageSize
}
