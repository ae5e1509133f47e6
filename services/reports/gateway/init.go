package gateway

import (
	nsqpkg "github.com/peacelink/peacelink/internal/pkg/nsq"
	"github.com/peacelink/peacelink/services/reports"
)

// ReportGW handles report gateway operations
type ReportGW struct {
	producer *nsqpkg.Producer
}

// NewReportGW creates a new gateway instance. The producer may be nil when
// event publishing is disabled.
func NewReportGW(producer *nsqpkg.Producer) reports.ReportGW {
	return &ReportGW{
		producer: producer,
	}
}
