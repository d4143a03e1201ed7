package server

import (
	"fmt"

	"github.com/studiosync/syncserver/internal/server/auth"
	"github.com/studiosync/syncserver/internal/server/export"
	"github.com/studiosync/syncserver/internal/server/workspace"
)

type Services struct {
	Verifier  *auth.Verifier
	Workspace *workspace.Workspace
	Walker    *export.Walker
}

func NewServices(config *Config) (*Services, error) {
	ws, err := workspace.New(config.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("open workspace: %w", err)
	}

	return &Services{
		Verifier:  auth.NewVerifier(&config.Auth),
		Workspace: ws,
		Walker:    export.NewWalker(ws.Root(), &config.Export),
	}, nil
}
