package http

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
)

var (
	adminIdentity  = access.Identity{UserID: "u-admin", Username: "admin", Groups: []string{"Admin"}}
	viewerIdentity = access.Identity{UserID: "u-viewer", Username: "viewer", Groups: []string{"Viewer"}}
)

type fakeLeaveService struct {
	submitErr error
	listErr   error
	updateErr error

	submitted  []leave.SubmitLeaveRequestRequest
	lastAction leave.Action
	lastID     string
}

func (f *fakeLeaveService) GetLeaveForm(_ context.Context, identity access.Identity) (leave.LeaveFormResponse, error) {
	if identity.UserID != adminIdentity.UserID {
		return leave.LeaveFormResponse{}, leave.ErrProfileNotLinked
	}
	return leave.LeaveFormResponse{EmployeeID: "e-1", EmployeeName: "Ada Admin", Fields: leave.FormFields}, nil
}

func (f *fakeLeaveService) SubmitLeaveRequest(_ context.Context, _ access.Identity, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if f.submitErr != nil {
		return leave.LeaveRequestResponse{}, f.submitErr
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	f.submitted = append(f.submitted, req)
	return leave.LeaveRequestResponse{ID: "l-1", Status: string(leave.LeaveRequestStatusPending)}, nil
}

func (f *fakeLeaveService) ListLeaveRequests(context.Context, access.Identity) ([]leave.LeaveRequestResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []leave.LeaveRequestResponse{{ID: "l-1", Status: "Pending"}}, nil
}

func (f *fakeLeaveService) ListMyLeaveRequests(context.Context, access.Identity) ([]leave.LeaveRequestResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) UpdateStatus(_ context.Context, _ access.Identity, leaveID string, action leave.Action) (leave.LeaveRequestResponse, error) {
	f.lastID, f.lastAction = leaveID, action
	if f.updateErr != nil {
		return leave.LeaveRequestResponse{}, f.updateErr
	}
	status, ok := action.TargetStatus()
	if !ok {
		status = leave.LeaveRequestStatusPending
	}
	return leave.LeaveRequestResponse{ID: leaveID, Status: string(status)}, nil
}

type fakeDashboardService struct {
	gotDate     string
	gotIdentity access.Identity
}

func (f *fakeDashboardService) GetDashboard(_ context.Context, identity access.Identity, date string) (*dashboard.DashboardResponse, error) {
	f.gotDate, f.gotIdentity = date, identity
	return &dashboard.DashboardResponse{Username: identity.Username, Role: "Admin", SelectedDate: "2024-03-01"}, nil
}

type fakeAuthService struct {
	loggedOut []string
}

func (f *fakeAuthService) Login(_ context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if req.Password != "correct-horse" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	return auth.TokenResponse{AccessToken: "token-abc", AccessTokenExpiresIn: 4102444800, Username: req.Username}, nil
}

func (f *fakeAuthService) Logout(_ context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeAuthService) CreateUser(context.Context, auth.CreateUserRequest) (auth.UserResponse, error) {
	return auth.UserResponse{}, nil
}
