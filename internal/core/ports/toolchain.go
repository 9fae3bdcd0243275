package ports

import (
	"context"

	"go.trai.ch/cargostep/internal/core/domain"
)

// Toolchain runs external build tools.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Run executes the invocation and captures its output.
	//
	// A non-zero exit is reported through the result, not as an error. An error is
	// returned only when the process could not be started or was interrupted.
	Run(ctx context.Context, inv *domain.Invocation) (*domain.InvocationResult, error)
}
