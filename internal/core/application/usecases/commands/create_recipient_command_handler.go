package commands

import (
	"context"

	"dispatch/internal/core/domain/model/recipient"
)

// CreateRecipientCommandHandler adds recipients to the directory.
type CreateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewCreateRecipientCommandHandler creates a handler for recipient registration.
func NewCreateRecipientCommandHandler(uowFactory RecipientUoWFactory) CreateRecipientCommandHandler {
	return CreateRecipientCommandHandler{uowFactory: uowFactory}
}

// Handle processes the registration command.
func (h *CreateRecipientCommandHandler) Handle(ctx context.Context, cmd CreateRecipientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := recipient.NewRecipient(cmd.RecipientID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.RecipientRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
