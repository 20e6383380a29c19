package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/brightserv/ops-backend-go/internal/domain/cashflow"
	"github.com/brightserv/ops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CashflowHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type cashflowHandlerImpl struct {
	recordService cashflow.RecordService
}

func NewCashflowHandler(recordService cashflow.RecordService) CashflowHandler {
	return &cashflowHandlerImpl{recordService: recordService}
}

func (h *cashflowHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req cashflow.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.recordService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cashflow record created", result)
}

func (h *cashflowHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	result, err := h.recordService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cashflowHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := cashflowFilterFromQuery(r)

	result, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

func (h *cashflowHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req cashflow.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.recordService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cashflowHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req cashflow.MarkPaidRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.ID = id

	result, err := h.recordService.MarkPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record settled", result)
}

func (h *cashflowHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.recordService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cashflow record deleted", nil)
}

func cashflowFilterFromQuery(r *http.Request) cashflow.RecordFilter {
	var filter cashflow.RecordFilter
	q := r.URL.Query()

	if v := q.Get("type"); v != "" {
		filter.Type = &v
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v, err := strconv.Atoi(q.Get("period_year")); err == nil {
		filter.PeriodYear = &v
	}
	if v, err := strconv.Atoi(q.Get("period_month")); err == nil {
		filter.PeriodMonth = &v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}

	return filter
}
