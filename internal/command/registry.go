package command

import (
	"context"
	"slices"

	"github.com/Cyclone1070/commitsearch/internal/command/models"
	"go.uber.org/zap"
)

// Registry maps command identifiers to handlers. It is populated once at
// start-up and only read afterwards, so it needs no locking.
type Registry struct {
	handlers map[models.ID]Handler
	logger   *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		handlers: make(map[models.ID]Handler),
		logger:   logger,
	}
}

// Register adds h under h.ID().
func (r *Registry) Register(h Handler) error {
	if _, exists := r.handlers[h.ID()]; exists {
		return &DuplicateCommandError{Command: h.ID()}
	}
	r.handlers[h.ID()] = h
	return nil
}

// Commands returns the registered identifiers, sorted.
func (r *Registry) Commands() []models.ID {
	ids := make([]models.ID, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Dispatch runs the handler for c.Command with c.Args.
func (r *Registry) Dispatch(ctx context.Context, c models.Continuation) (Outcome, error) {
	h, ok := r.handlers[c.Command]
	if !ok {
		return Outcome{}, &UnknownCommandError{Command: c.Command}
	}
	r.logger.Debug("dispatching command", zap.String("command", string(c.Command)), zap.Int("args", len(c.Args)))
	return h.Execute(ctx, c.Args)
}
