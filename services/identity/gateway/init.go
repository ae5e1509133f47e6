package gateway

import (
	nsqpkg "github.com/peacelink/peacelink/internal/pkg/nsq"
	"github.com/peacelink/peacelink/services/identity"
)

// IdentityGW handles identity gateway operations: verification code
// delivery and account lifecycle events.
type IdentityGW struct {
	producer *nsqpkg.Producer
}

// NewIdentityGW creates a new gateway instance. The producer may be nil
// when event publishing is disabled; delivery then falls back to the demo
// log channel only.
func NewIdentityGW(producer *nsqpkg.Producer) identity.IdentityGW {
	return &IdentityGW{
		producer: producer,
	}
}
