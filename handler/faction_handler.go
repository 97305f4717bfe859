package handler

import (
	"encoding/json"
	"faction-api/common"
	"faction-api/model"
	"faction-api/service"
	"net/http"
)

type FactionHandler struct {
	service *service.FactionService
}

func NewFactionHandler(service *service.FactionService) *FactionHandler {
	return &FactionHandler{service: service}
}

// ListMembers returns the full faction member roster.
func (h *FactionHandler) ListMembers(w http.ResponseWriter, r *http.Request) *common.AppError {
	members, err := h.service.Members(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve members", err)
	}
	return writeJSON(w, members)
}

// UpdateMemberRank sets a member's rank, leaving the rest of the member
// document untouched.
func (h *FactionHandler) UpdateMemberRank(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RankUpdateRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	memberID := r.PathValue("id")
	if err := h.service.UpdateMemberRank(r.Context(), memberID, req.NewRank); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not update rank", err)
	}
	return writeJSON(w, map[string]bool{"success": true})
}

// ListPlayerAccounts returns the linked in-game player accounts.
func (h *FactionHandler) ListPlayerAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	accounts, err := h.service.PlayerAccounts(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve player accounts", err)
	}
	return writeJSON(w, accounts)
}

// CreateLeaveRequest files a leave of absence for a member.
func (h *FactionHandler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LeaveRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	if err := h.service.CreateLeaveRequest(r.Context(), req); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not save leave request", err)
	}
	return writeJSON(w, map[string]bool{"success": true})
}

// GetLeaveRequest returns a member's leave request, or null when none is
// filed, matching the upstream API contract.
func (h *FactionHandler) GetLeaveRequest(w http.ResponseWriter, r *http.Request) *common.AppError {
	doc, found, err := h.service.GetLeaveRequest(r.Context(), r.PathValue("discordId"))
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve leave request", err)
	}
	if !found {
		return writeJSON(w, nil)
	}
	return writeJSON(w, doc)
}

// AddCode registers a recruitment code.
func (h *FactionHandler) AddCode(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CodeRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	if err := h.service.AddCode(r.Context(), req.Code); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not save code", err)
	}
	return writeJSON(w, map[string]bool{"success": true})
}

// CheckCode reports whether a recruitment code exists.
func (h *FactionHandler) CheckCode(w http.ResponseWriter, r *http.Request) *common.AppError {
	exists, err := h.service.CodeExists(r.Context(), r.PathValue("code"))
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not check code", err)
	}
	return writeJSON(w, map[string]bool{"exists": exists})
}

// DeleteCode removes a recruitment code.
func (h *FactionHandler) DeleteCode(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := h.service.DeleteCode(r.Context(), r.PathValue("code")); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not delete code", err)
	}
	return writeJSON(w, map[string]bool{"success": true})
}

// GetStatistics returns the faction statistics sub-tree.
func (h *FactionHandler) GetStatistics(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve statistics", err)
	}
	return writeJSON(w, stats)
}

// GetVersion returns the deployed data version.
func (h *FactionHandler) GetVersion(w http.ResponseWriter, r *http.Request) *common.AppError {
	version, found, err := h.service.Version(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve version", err)
	}
	if !found {
		return writeJSON(w, nil)
	}
	return writeJSON(w, version)
}

func writeJSON(w http.ResponseWriter, payload interface{}) *common.AppError {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not encode response", err)
	}
	return nil
}
