package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrProfileNotLinked             = errors.New("employee profile not linked to this user")
)
