package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalTransition            = errors.New("illegal status transition")
	ErrMissingWarrantyDetermination = errors.New("warranty determination required before approval")
	ErrMissingRejectionReason       = errors.New("rejection reason required")
	ErrTerminalStatus               = errors.New("status is terminal")
)

// TransitionRequest carries everything a status change needs: the acting
// staff identity plus the data some edges require.
type TransitionRequest struct {
	To              RMAStatus `json:"to"`
	ActorID         int32     `json:"-"`
	Notes           string    `json:"notes,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	// WarrantyValid, when non-empty, records the reviewer's warranty
	// determination together with the transition.
	WarrantyValid WarrantyDetermination `json:"warranty_valid,omitempty"`
}

type edge struct {
	from RMAStatus
	to   RMAStatus
}

// transitionTable is the single authority on which status edges exist.
// warrantyOnly edges are reachable only for warranty RMAs.
var transitionTable = map[edge]struct{ warrantyOnly bool }{
	{RMAStatusPending, RMAStatusUnderReview}:  {},
	{RMAStatusPending, RMAStatusApproved}:     {},
	{RMAStatusPending, RMAStatusRejected}:     {},
	{RMAStatusUnderReview, RMAStatusApproved}: {},
	{RMAStatusUnderReview, RMAStatusRejected}: {},
	{RMAStatusApproved, RMAStatusInRepair}:    {warrantyOnly: true},
	{RMAStatusInRepair, RMAStatusShipped}:     {},
	{RMAStatusShipped, RMAStatusCompleted}:    {},
}

// IsTerminal reports whether s has no outbound edges.
func IsTerminal(s RMAStatus) bool {
	return s == RMAStatusRejected || s == RMAStatusCompleted
}

// CanTransition reports whether the edge from → to exists for an RMA of
// the given type, ignoring edge-specific preconditions.
func CanTransition(t RMAType, from, to RMAStatus) bool {
	rule, ok := transitionTable[edge{from, to}]
	if !ok {
		return false
	}
	if rule.warrantyOnly && t != RMATypeWarranty {
		return false
	}
	return true
}

// ApplyTransition validates req against the transition table and the
// edge preconditions, then mutates rma in place: status, warranty
// determination, rejection reason and notes. On any error rma is left
// untouched. The returned StatusEntry is the history row the caller
// must persist alongside the update.
func ApplyTransition(rma *RMA, req TransitionRequest) (*StatusEntry, error) {
	if IsTerminal(rma.Status) {
		return nil, fmt.Errorf("%w: %s has no outbound transitions: %w", ErrTerminalStatus, rma.Status, ErrIllegalTransition)
	}
	if !CanTransition(rma.RMAType, rma.Status, req.To) {
		return nil, fmt.Errorf("%w: %s -> %s for %s RMA", ErrIllegalTransition, rma.Status, req.To, rma.RMAType)
	}

	switch req.To {
	case RMAStatusApproved:
		if rma.RequiresWarrantyCheck {
			determination := rma.WarrantyValid
			if req.WarrantyValid != "" {
				determination = req.WarrantyValid
			}
			if determination == "" || determination == WarrantyUnknown {
				return nil, ErrMissingWarrantyDetermination
			}
			rma.WarrantyValid = determination
		}
	case RMAStatusRejected:
		if strings.TrimSpace(req.RejectionReason) == "" {
			return nil, ErrMissingRejectionReason
		}
		if rma.RequiresWarrantyCheck && req.WarrantyValid != "" {
			rma.WarrantyValid = req.WarrantyValid
		}
		rma.RejectionReason = strings.TrimSpace(req.RejectionReason)
	}

	rma.Status = req.To
	if req.Notes != "" {
		rma.Notes = req.Notes
	}

	return &StatusEntry{
		RMAID:   rma.ID,
		Status:  req.To,
		ActorID: req.ActorID,
		Notes:   req.Notes,
	}, nil
}
