package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkDeliveryInTransitCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingDelivery(t, kernel.NewUUID())
	cmd, err := commands.NewMarkDeliveryInTransitCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveryInTransitCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, delivery.InTransit, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDeliveryInTransitCommandHandler_Handle_AlreadyInTransit(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingDelivery(t, kernel.NewUUID())
	require.NoError(t, aggregate.Dispatch())
	cmd, err := commands.NewMarkDeliveryInTransitCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveryInTransitCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
