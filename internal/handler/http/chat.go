package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/brightserv/ops-backend-go/internal/domain/chat"
	"github.com/brightserv/ops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ChatHandler interface {
	CreateGroup(w http.ResponseWriter, r *http.Request)
	ListGroups(w http.ResponseWriter, r *http.Request)
	UpdateMembers(w http.ResponseWriter, r *http.Request)
	DeleteGroup(w http.ResponseWriter, r *http.Request)
	PostMessage(w http.ResponseWriter, r *http.Request)
	ListMessages(w http.ResponseWriter, r *http.Request)
}

type chatHandlerImpl struct {
	chatService chat.ChatService
}

func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandlerImpl{chatService: chatService}
}

func (h *chatHandlerImpl) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req chat.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.chatService.CreateGroup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Chat group created", result)
}

func (h *chatHandlerImpl) ListGroups(w http.ResponseWriter, r *http.Request) {
	result, err := h.chatService.ListGroups(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *chatHandlerImpl) UpdateMembers(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if groupID == "" {
		response.BadRequest(w, "Group ID is required", nil)
		return
	}

	var req struct {
		MemberIDs []string `json:"member_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.chatService.UpdateMembers(r.Context(), groupID, req.MemberIDs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group members updated", nil)
}

func (h *chatHandlerImpl) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if groupID == "" {
		response.BadRequest(w, "Group ID is required", nil)
		return
	}

	if err := h.chatService.DeleteGroup(r.Context(), groupID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Chat group deleted", nil)
}

func (h *chatHandlerImpl) PostMessage(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if groupID == "" {
		response.BadRequest(w, "Group ID is required", nil)
		return
	}

	var req chat.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.GroupID = groupID

	result, err := h.chatService.PostMessage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Message posted", result)
}

func (h *chatHandlerImpl) ListMessages(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if groupID == "" {
		response.BadRequest(w, "Group ID is required", nil)
		return
	}

	filter := chat.MessageFilter{GroupID: groupID}
	q := r.URL.Query()
	if v := q.Get("before"); v != "" {
		filter.Before = &v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}

	result, err := h.chatService.ListMessages(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
