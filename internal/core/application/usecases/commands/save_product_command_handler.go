package commands

import (
	"context"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/product"
)

// SaveProductCommandHandler stores catalog products. An update replaces the stock level.
type SaveProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewSaveProductCommandHandler(uowFactory ProductUoWFactory) SaveProductCommandHandler {
	return SaveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SaveProductCommandHandler) Handle(ctx context.Context, cmd SaveProductCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()

	var id kernel.ID
	if cmd.ID() == nil {
		p, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Stock(), cmd.Category())
		if err != nil {
			return 0, err
		}
		if id, err = repo.Add(ctx, p); err != nil {
			return 0, err
		}
	} else {
		p, err := repo.GetForUpdate(ctx, *cmd.ID())
		if err != nil {
			return 0, err
		}
		if err = p.Update(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Stock(), cmd.Category()); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, p); err != nil {
			return 0, err
		}
		id = p.ID()
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
