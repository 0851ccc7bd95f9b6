package http

import (
	"io"
	"net/http"
	"path/filepath"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/service"
	"rma-portal-backend/internal/storage"

	"github.com/gorilla/mux"
)

// AttachmentHandler serves upload-URL issuance plus the mock storage
// endpoints the presigned URLs point at.
type AttachmentHandler struct {
	attachments service.AttachmentService
	mockStorage *storage.MockStorageService
}

func NewAttachmentHandler(attachments service.AttachmentService, mockStorage *storage.MockStorageService) *AttachmentHandler {
	return &AttachmentHandler{attachments: attachments, mockStorage: mockStorage}
}

type uploadURLRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

type uploadURLResponse struct {
	Attachment *domain.Attachment `json:"attachment"`
	UploadURL  string             `json:"upload_url"`
}

// RequestUploadURL records a pending attachment and hands back the URL
// to PUT the bytes to. Unlike the draft filter this is a hard check:
// a bad file here is an error, not a silent drop.
func (h *AttachmentHandler) RequestUploadURL(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	var req uploadURLRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	att, url, err := h.attachments.RequestUpload(r.Context(), actor.ID, req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, uploadURLResponse{Attachment: att, UploadURL: url})
}

// HandleMockUpload accepts the PUT against a mock presigned URL and
// saves the body under the storage key.
func (h *AttachmentHandler) HandleMockUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	if !domain.AllowedAttachmentType(r.Header.Get("Content-Type")) {
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	body := http.MaxBytesReader(w, r.Body, domain.MaxAttachmentBytes)
	if err := h.mockStorage.SaveFile(key, body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	// Mimic an object store response
	w.Header().Set("ETag", `"mock-etag-success"`)
	w.WriteHeader(http.StatusOK)
}

// HandleMockDownload streams a stored attachment back.
func (h *AttachmentHandler) HandleMockDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.mockStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".pdf":
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	io.Copy(w, file)
}

// RegisterMockStorageRoutes mounts the endpoints the mock presigned
// URLs resolve to. They sit outside the authenticated API tree, the
// way real presigned URLs carry their own authorization.
func (h *AttachmentHandler) RegisterMockStorageRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/upload/{token}", h.HandleMockUpload).Methods("PUT")
	router.HandleFunc("/api/v1/download/{key}", h.HandleMockDownload).Methods("GET")
}
