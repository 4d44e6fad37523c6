package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Record handles POST /api/v1/attendance
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	recorded, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded successfully", recorded)
}

// ListByDate handles GET /api/v1/attendance?date=YYYY-MM-DD
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := h.attendanceService.ResolveDate(r.URL.Query().Get("date"))

	records, err := h.attendanceService.ListRecords(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
