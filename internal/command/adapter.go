package command

import (
	"context"
	"time"

	"github.com/Cyclone1070/commitsearch/internal/command/models"
	"github.com/mitchellh/mapstructure"
)

// Handler runs one command from its raw argument payload.
type Handler interface {
	// ID returns the command this handler serves.
	ID() models.ID

	// Execute runs the command. Args is the continuation payload.
	Execute(ctx context.Context, args map[string]any) (Outcome, error)
}

// Validator is implemented by request types that can check themselves.
type Validator interface {
	Validate() error
}

// Executor runs a command with a typed request.
type Executor[Req any] func(ctx context.Context, req Req) (Outcome, error)

// Adapter turns a typed Executor into a Handler by centralising:
//   - payload decoding (mapstructure)
//   - request validation
//   - error wrapping
type Adapter[Req any] struct {
	id       models.ID
	executor Executor[Req]
}

// NewAdapter creates a handler for id backed by executor.
//
// Example usage:
//
//	registry.Register(command.NewAdapter(models.SearchCommits, func(ctx context.Context, args search.Args) (command.Outcome, error) {
//	    return orch.Run(ctx, orchestrator.ContinuationInvocation{Args: args}), nil
//	}))
func NewAdapter[Req any](id models.ID, executor Executor[Req]) *Adapter[Req] {
	return &Adapter[Req]{id: id, executor: executor}
}

// ID implements Handler
func (a *Adapter[Req]) ID() models.ID {
	return a.id
}

// Execute implements Handler
func (a *Adapter[Req]) Execute(ctx context.Context, args map[string]any) (Outcome, error) {
	req, err := Decode[Req](args)
	if err != nil {
		return Outcome{}, &InvalidArgumentsError{Command: a.id, Cause: err}
	}

	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return Outcome{}, &InvalidArgumentsError{Command: a.id, Cause: err}
		}
	}

	return a.executor(ctx, req)
}

// Decode converts a payload into Req. Payloads built in-process carry typed values;
// payloads that went through JSON carry RFC 3339 strings for dates, which are
// converted back by a decode hook.
func Decode[Req any](args map[string]any) (Req, error) {
	var req Req
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
		Result: &req,
	})
	if err != nil {
		return req, err
	}
	if err := decoder.Decode(args); err != nil {
		return req, err
	}
	return req, nil
}
