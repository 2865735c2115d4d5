package commands_test

import (
	"testing"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSaveCustomerCommand_SanitizesText(t *testing.T) {
	cmd, err := commands.NewSaveCustomerCommand(nil, "  <b>Ana</b> ", "Calle <i>1</i>", "555")

	require.NoError(t, err)
	assert.Nil(t, cmd.ID())
	assert.Equal(t, "Ana", cmd.Name())
	assert.Equal(t, "Calle 1", cmd.Address())
}

func TestSaveCustomerCommandHandler_Create(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	repo := new(MockCustomerRepository)
	cmd, _ := commands.NewSaveCustomerCommand(nil, "Ana", "Calle 1", "555")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.Name() == "Ana" && c.ID().IsZero()
		})).Return(kernel.ID(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewSaveCustomerCommandHandler(customerFactory{newMockUoWFactory(uow)})
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), id)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSaveCustomerCommandHandler_Update(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	repo := new(MockCustomerRepository)
	stored := storedCustomer(t, 3)
	cmd, _ := commands.NewSaveCustomerCommand(ptr(int64(3)), "Ana María", "Calle 2", "556")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(3)).Return(stored, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewSaveCustomerCommandHandler(customerFactory{newMockUoWFactory(uow)})
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), id)
	assert.Equal(t, "Ana María", stored.Name())
	assert.Equal(t, "Calle 2", stored.Address())
}

func TestSaveCustomerCommandHandler_UpdateMissing(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	repo := new(MockCustomerRepository)
	cmd, _ := commands.NewSaveCustomerCommand(ptr(int64(8)), "Ana", "Calle 1", "555")

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(repo).Once()
	repo.On("Get", ctx, kernel.ID(8)).Return(nil, errs.NewObjectNotFoundError("customer", kernel.ID(8))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewSaveCustomerCommandHandler(customerFactory{newMockUoWFactory(uow)})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSaveCustomerCommandHandler_MarkupOnlyNameIsRequired(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	repo := new(MockCustomerRepository)
	cmd, _ := commands.NewSaveCustomerCommand(nil, "<script>x</script>", "Calle 1", "555")

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewSaveCustomerCommandHandler(customerFactory{newMockUoWFactory(uow)})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
