package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testCommand struct {
	Fail bool
}

func (c testCommand) Validate() error {
	if c.Fail {
		return errors.New("invalid command")
	}
	return nil
}

func TestSendDispatchesToRegisteredHandler(t *testing.T) {
	b := NewCommandBus()
	called := false

	err := b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		called = true
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, b.Send(context.Background(), testCommand{}))
	assert.True(t, called)
}

func TestSendValidatesFirst(t *testing.T) {
	b := NewCommandBus()
	called := false

	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		called = true
		return nil
	})))

	err := b.Send(context.Background(), testCommand{Fail: true})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestSendUnregisteredCommand(t *testing.T) {
	b := NewCommandBus()
	assert.Error(t, b.Send(context.Background(), testCommand{}))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	b := NewCommandBus()
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, b.Register(testCommand{}, handler))
	assert.Error(t, b.Register(testCommand{}, handler))
}

func TestSendWrapsHandlerErrors(t *testing.T) {
	b := NewCommandBus()
	boom := errors.New("boom")

	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		return boom
	})))

	err := b.Send(context.Background(), testCommand{})
	assert.ErrorIs(t, err, boom)
}

func TestPipelineAppliesMiddlewareInOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
				order = append(order, name)
				return next.Handle(ctx, cmd)
			})
		}
	}

	pipeline := NewPipeline(mw("outer"), mw("inner"), LoggingMiddleware(zap.NewNop()))
	handler := pipeline.Execute(CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		order = append(order, "handler")
		return nil
	}))

	require.NoError(t, handler.Handle(context.Background(), testCommand{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestValidationMiddlewareBlocksInvalidCommands(t *testing.T) {
	handler := ValidationMiddleware()(CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		t.Fatal("handler must not run for an invalid command")
		return nil
	}))

	assert.Error(t, handler.Handle(context.Background(), testCommand{Fail: true}))
}
