package interfaces

import (
	"context"

	domaintypes "signup/internal/domain/types"
)

// RegistrationClient is how we talk to the remote registration endpoint.
// A non-2xx answer is reported as *domaintypes.RejectedError; any other
// error means the request never completed.
type RegistrationClient interface {
	Register(ctx context.Context, request domaintypes.RegistrationRequest) error
}
