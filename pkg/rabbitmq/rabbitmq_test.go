package rabbitmq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockDelivery struct {
	mock.Mock
}

func (m *mockDelivery) Ack(multiple bool) error {
	args := m.Called(multiple)
	return args.Error(0)
}

func (m *mockDelivery) Nack(multiple, requeue bool) error {
	args := m.Called(multiple, requeue)
	return args.Error(0)
}

func TestVerdict(t *testing.T) {
	failure := errors.New("database is locked")

	tests := []struct {
		name        string
		redelivered bool
		err         error
		expected    outcome
	}{
		{name: "first delivery succeeds", redelivered: false, err: nil, expected: outcomeAck},
		{name: "redelivery succeeds", redelivered: true, err: nil, expected: outcomeAck},
		{name: "first failure is retried", redelivered: false, err: failure, expected: outcomeRequeue},
		{name: "second failure is dropped", redelivered: true, err: failure, expected: outcomeDrop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, verdict(tt.redelivered, tt.err))
		})
	}
}

func TestSettle(t *testing.T) {
	t.Run("ack", func(t *testing.T) {
		d := new(mockDelivery)
		d.On("Ack", false).Return(nil).Once()
		assert.NoError(t, settle(d, outcomeAck))
		d.AssertExpectations(t)
		d.AssertNotCalled(t, "Nack", mock.Anything, mock.Anything)
	})

	t.Run("requeue", func(t *testing.T) {
		d := new(mockDelivery)
		d.On("Nack", false, true).Return(nil).Once()
		assert.NoError(t, settle(d, outcomeRequeue))
		d.AssertExpectations(t)
	})

	t.Run("drop", func(t *testing.T) {
		d := new(mockDelivery)
		d.On("Nack", false, false).Return(errors.New("channel closed")).Once()
		assert.Error(t, settle(d, outcomeDrop))
		d.AssertExpectations(t)
	})
}
