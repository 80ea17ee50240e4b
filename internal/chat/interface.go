package chat

import (
	"context"

	"workspace-chat/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Send handles one user message: known commands run a Workspace
	// experiment, anything else goes to an AI provider.
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)
}
