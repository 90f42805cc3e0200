package ports

import (
	"context"

	"github.com/bnema/bella-cli/internal/domain"
)

// CredentialProvider returns ok=false when no key can be obtained. That is an
// expected outcome while the backend starts, not an error.
type CredentialProvider interface {
	Acquire(ctx context.Context) (domain.Credential, bool)
}
