package http

import (
	"net/http"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/service"
)

// RMAHandler serves the RMA lifecycle endpoints: submission, listing,
// detail, transitions, reviews and bulk updates.
type RMAHandler struct {
	rmas        service.RMAService
	attachments service.AttachmentService
	paging      paging
}

func NewRMAHandler(rmas service.RMAService, attachments service.AttachmentService, pg paging) *RMAHandler {
	return &RMAHandler{rmas: rmas, attachments: attachments, paging: pg}
}

type submitResponse struct {
	RMA      *domain.RMA           `json:"rma"`
	Rejected []domain.RejectedFile `json:"rejected_attachments,omitempty"`
}

// Submit accepts a completed draft from the authenticated customer.
func (h *RMAHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	if actor.Role != domain.RoleCustomer {
		respondError(w, service.ErrForbidden)
		return
	}
	var draft domain.Draft
	if err := decodeBody(r, &draft); err != nil {
		respondError(w, err)
		return
	}
	rma, rejected, err := h.rmas.Submit(r.Context(), actor.ID, draft)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, submitResponse{RMA: rma, Rejected: rejected})
}

// List serves both audiences: staff see everything with filters,
// customers see only their own RMAs.
func (h *RMAHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	page, pageSize := h.paging.parse(r)
	q := r.URL.Query()

	if !actor.Role.IsStaff() {
		rmas, total, err := h.rmas.ListCustomerRMAs(r.Context(), actor.ID, domain.RMAStatus(q.Get("status")), page, pageSize)
		if err != nil {
			respondError(w, err)
			return
		}
		respondOK(w, paginated{Items: rmas, Total: total, Page: page, PageSize: pageSize})
		return
	}

	filter := domain.RMAFilter{
		Status:   domain.RMAStatus(q.Get("status")),
		Type:     domain.RMAType(q.Get("type")),
		Priority: domain.RMAPriority(q.Get("priority")),
		FromDate: q.Get("from_date"),
		ToDate:   q.Get("to_date"),
		Search:   q.Get("search"),
	}
	rmas, total, err := h.rmas.ListRMAs(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, paginated{Items: rmas, Total: total, Page: page, PageSize: pageSize})
}

// Get returns one RMA with its status history and attachments.
// Customers may only fetch their own.
func (h *RMAHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	rma, err := h.rmas.GetRMA(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !actor.Role.IsStaff() && rma.CustomerID != actor.ID {
		respondError(w, service.ErrForbidden)
		return
	}
	respondOK(w, rma)
}

// Transition applies one status change. The service enforces the
// transition table and role rules.
func (h *RMAHandler) Transition(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req domain.TransitionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	rma, err := h.rmas.Transition(r.Context(), actor.ID, actor.Role, id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rma)
}

// Review records a staff approve/reject decision. Staff only.
func (h *RMAHandler) Review(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var input service.ReviewInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	rma, err := h.rmas.Review(r.Context(), actor.ID, actor.Role, id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rma)
}

// WarrantyRecommendation returns the advisory evaluator result for a
// warranty RMA, so reviewers see it before recording a determination.
func (h *RMAHandler) WarrantyRecommendation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	rma, err := h.rmas.GetRMA(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]domain.WarrantyDetermination{
		"recommendation": h.rmas.WarrantyRecommendation(r.Context(), rma),
	})
}

type bulkStatusRequest struct {
	Items []service.BulkTransitionItem `json:"items"`
}

// BulkStatus applies a transition per item and reports per-item
// outcomes; one failure never rolls back the others.
func (h *RMAHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	var req bulkStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if len(req.Items) == 0 {
		respondError(w, &domain.ValidationError{Field: "items", Message: "required"})
		return
	}
	outcomes := h.rmas.BulkUpdateStatus(r.Context(), actor.ID, actor.Role, req.Items)
	respondOK(w, outcomes)
}

// Attachments lists an RMA's attachments with download URLs.
func (h *RMAHandler) Attachments(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	rma, err := h.rmas.GetRMA(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !actor.Role.IsStaff() && rma.CustomerID != actor.ID {
		respondError(w, service.ErrForbidden)
		return
	}
	atts, urls, err := h.attachments.ListRMAAttachments(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	type attachmentWithURL struct {
		domain.Attachment
		DownloadURL string `json:"download_url"`
	}
	out := make([]attachmentWithURL, 0, len(atts))
	for i, a := range atts {
		out = append(out, attachmentWithURL{Attachment: a, DownloadURL: urls[i]})
	}
	respondOK(w, out)
}

// Reasons returns the reason taxonomy for an RMA type, for the intake
// form's reason picker.
func (h *RMAHandler) Reasons(w http.ResponseWriter, r *http.Request) {
	t := domain.RMAType(r.URL.Query().Get("type"))
	reasons := domain.ReasonsForType(t)
	if len(reasons) == 0 {
		respondError(w, &domain.ValidationError{Field: "type", Message: "must be return or warranty"})
		return
	}
	respondOK(w, reasons)
}
