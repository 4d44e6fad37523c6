package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const (
	dashboardPath    = "/"
	manageLeavesPath = "/manage-leaves/"

	msgLeaveSent        = "Leave request sent successfully ✅"
	msgProfileNotLinked = "Employee profile not linked to this user."
	msgNotLeaveManager  = "Only Admin or HR can manage leave requests."
	msgLeaveNotFound    = "Leave request not found."
	msgLeaveProcessed   = "Leave request has already been processed."
	msgLeaveUpdateFail  = "Leave request could not be updated. Please try again."
)

type LeaveHandler interface {
	GetForm(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	ManageLeaves(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func flash(level, message string) *dashboard.FlashMessage {
	return &dashboard.FlashMessage{Level: level, Message: message}
}

// GetForm handles GET /leave-request/
func (l *LeaveHandlerImpl) GetForm(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	form, err := l.leaveService.GetLeaveForm(r.Context(), identity)
	if err != nil {
		if errors.Is(err, leave.ErrProfileNotLinked) {
			response.Redirect(w, dashboardPath, nil)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, form)
}

// Submit handles POST /leave-request/. Accepts JSON or a form-encoded body.
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	req, err := decodeLeaveRequest(r)
	if err != nil {
		slog.Error("SubmitLeaveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if _, err := l.leaveService.SubmitLeaveRequest(r.Context(), identity, req); err != nil {
		if errors.Is(err, leave.ErrProfileNotLinked) {
			response.Redirect(w, dashboardPath, flash(response.FlashError, msgProfileNotLinked))
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Redirect(w, dashboardPath, flash(response.FlashSuccess, msgLeaveSent))
}

func decodeLeaveRequest(r *http.Request) (leave.SubmitLeaveRequestRequest, error) {
	var req leave.SubmitLeaveRequestRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return req, err
		}
		fallthrough
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Reason = r.PostFormValue("reason")
		req.FromDate = r.PostFormValue("from_date")
		req.ToDate = r.PostFormValue("to_date")
		return req, nil
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

// ManageLeaves handles GET /manage-leaves/
func (l *LeaveHandlerImpl) ManageLeaves(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	requests, err := l.leaveService.ListLeaveRequests(r.Context(), identity)
	if err != nil {
		if errors.Is(err, access.ErrForbidden) {
			response.Redirect(w, dashboardPath, flash(response.FlashError, msgNotLeaveManager))
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// UpdateStatus handles GET /leave-action/{leaveID}/{action}/
func (l *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	leaveID := chi.URLParam(r, "leaveID")
	action := leave.Action(chi.URLParam(r, "action"))

	updated, err := l.leaveService.UpdateStatus(r.Context(), identity, leaveID, action)
	switch {
	case err == nil:
		var f *dashboard.FlashMessage
		if _, known := action.TargetStatus(); known {
			f = flash(response.FlashSuccess, "Leave request "+strings.ToLower(string(updated.Status))+".")
		}
		response.Redirect(w, manageLeavesPath, f)
	case errors.Is(err, access.ErrForbidden):
		response.Redirect(w, dashboardPath, flash(response.FlashError, msgNotLeaveManager))
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		response.Redirect(w, manageLeavesPath, flash(response.FlashError, msgLeaveNotFound))
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		response.Redirect(w, manageLeavesPath, flash(response.FlashError, msgLeaveProcessed))
	default:
		slog.Error("UpdateLeaveStatus service error", "error", err, "leave_request_id", leaveID, "action", string(action))
		response.Redirect(w, manageLeavesPath, flash(response.FlashError, msgLeaveUpdateFail))
	}
}
