package assistant

import (
	"context"
	"fmt"

	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
)

// Responder is the model backend. It is invoked only after the request has
// passed validation and tenant scoping; implementations never see raw HTTP.
type Responder interface {
	Respond(ctx context.Context, history []models.Message, message string) (string, error)
}

// defaultResponder is the built-in backend used when no external model is
// wired. It produces a deterministic reply, which keeps development and tests
// independent of any model service.
type defaultResponder struct{}

func (defaultResponder) Respond(_ context.Context, history []models.Message, message string) (string, error) {
	return fmt.Sprintf("ack(%d): %s", len(history), message), nil
}

var responder Responder = defaultResponder{}

// SetResponder installs an external model backend. Called once at startup.
func SetResponder(r Responder) {
	if r != nil {
		responder = r
	}
}
