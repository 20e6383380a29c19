package http

import (
	"encoding/json"
	"net/http"

	"github.com/brightserv/ops-backend-go/internal/domain/cleaning"
	"github.com/brightserv/ops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CleaningHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type cleaningHandlerImpl struct {
	entryService cleaning.EntryService
}

func NewCleaningHandler(entryService cleaning.EntryService) CleaningHandler {
	return &cleaningHandlerImpl{entryService: entryService}
}

func (h *cleaningHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req cleaning.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.entryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cleaning entry created", result)
}

func (h *cleaningHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	result, err := h.entryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cleaningHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter cleaning.EntryFilter
	q := r.URL.Query()

	if v := q.Get("site_id"); v != "" {
		filter.SiteID = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	result, err := h.entryService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cleaningHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	var req cleaning.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.entryService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cleaningHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.entryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cleaning entry deleted", nil)
}
