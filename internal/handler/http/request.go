package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/request"
	"github.com/cmlabs-hris/leave-approval-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/leave-approval-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListTeam(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &RequestHandlerImpl{
		requestService: requestService,
	}
}

// parseIDParam reads a positive numeric URL parameter
func parseIDParam(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Create implements RequestHandler.
func (h *RequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := middleware.UserID(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req request.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	created, err := h.requestService.Create(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted successfully", created)
}

// ListMine implements RequestHandler.
func (h *RequestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reqs, err := h.requestService.ListMyRequests(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reqs)
}

// ListTeam implements RequestHandler. It lists what awaits the caller's review.
func (h *RequestHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reqs, err := h.requestService.ListActionable(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reqs)
}

// Get implements RequestHandler.
func (h *RequestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	resp, err := h.requestService.GetRequest(r.Context(), userID, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Approve implements RequestHandler.
func (h *RequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, request.ActionApprove)
}

// Reject implements RequestHandler.
func (h *RequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, request.ActionReject)
}

func (h *RequestHandlerImpl) decide(w http.ResponseWriter, r *http.Request, action request.Action) {
	ctx := r.Context()

	userID, err := middleware.UserID(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	// the body is optional on approve
	var req request.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	var resp request.RequestResponse
	if action == request.ActionReject {
		resp, err = h.requestService.Reject(ctx, userID, requestID, req.Notes)
	} else {
		resp, err = h.requestService.Approve(ctx, userID, requestID, req.Notes)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request updated successfully", resp)
}

// UpdateStatus implements RequestHandler.
func (h *RequestHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := middleware.UserID(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req request.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = requestID

	resp, err := h.requestService.UpdateStatus(ctx, userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request status updated successfully", resp)
}
