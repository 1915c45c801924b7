package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/m-mizutani/goerr/v2"

	"github.com/LekoArts/changesets-changelog-github-local/changelog"
)

// Function names the host may call
const (
	FuncReleaseLine           = "getReleaseLine"
	FuncDependencyReleaseLine = "getDependencyReleaseLine"
)

// ErrUnknownFunction is returned for requests naming an unsupported function
var ErrUnknownFunction = errors.New("unknown plugin function")

// Functions is the contract the host invokes
type Functions interface {
	GetReleaseLine(ctx context.Context, cs changelog.Changeset, bump changelog.BumpType, options interface{}) (string, error)
	GetDependencyReleaseLine(ctx context.Context, changesets []changelog.Changeset, deps []changelog.DependencyBump, options interface{}) (string, error)
}

var _ Functions = (*changelog.Formatter)(nil)

// Request is a single call from the host
type Request struct {
	Function string `json:"function"`

	// getReleaseLine
	Changeset changelog.Changeset `json:"changeset"`
	Type      changelog.BumpType  `json:"type"`

	// getDependencyReleaseLine
	Changesets          []changelog.Changeset      `json:"changesets"`
	DependenciesUpdated []changelog.DependencyBump `json:"dependenciesUpdated"`

	Options interface{} `json:"options"`
}

// Response carries either the rendered line or an error message
type Response struct {
	Line  string `json:"line"`
	Error string `json:"error,omitempty"`
}

// Plugin answers host requests read from In on Out
type Plugin struct {
	Functions Functions
	In        io.Reader
	Out       io.Writer
}

// Run handles one request. The error is both written to Out and returned.
func (p *Plugin) Run(ctx context.Context) error {
	var req Request
	if err := json.NewDecoder(p.In).Decode(&req); err != nil {
		err = goerr.Wrap(err, "failed to decode plugin request")
		return p.respond(Response{Error: err.Error()}, err)
	}

	line, err := Dispatch(ctx, p.Functions, req)
	if err != nil {
		return p.respond(Response{Error: err.Error()}, err)
	}
	return p.respond(Response{Line: line}, nil)
}

func (p *Plugin) respond(resp Response, cause error) error {
	if err := json.NewEncoder(p.Out).Encode(resp); err != nil {
		return goerr.Wrap(err, "failed to write plugin response")
	}
	return cause
}

// Dispatch calls the function named by the request
func Dispatch(ctx context.Context, fns Functions, req Request) (string, error) {
	switch req.Function {
	case FuncReleaseLine:
		return fns.GetReleaseLine(ctx, req.Changeset, req.Type, req.Options)
	case FuncDependencyReleaseLine:
		return fns.GetDependencyReleaseLine(ctx, req.Changesets, req.DependenciesUpdated, req.Options)
	default:
		return "", goerr.Wrap(ErrUnknownFunction, "cannot dispatch request", goerr.V("function", req.Function))
	}
}
