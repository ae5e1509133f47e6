package reports

import "errors"

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrInvalidCategory   = errors.New("unknown report category")
	ErrInvalidLanguage   = errors.New("unsupported report language")
	ErrInvalidUrgency    = errors.New("unknown urgency grade")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
