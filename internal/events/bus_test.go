package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus(nil)

	var first, second []Envelope
	unsubFirst := bus.Subscribe(func(env Envelope) { first = append(first, env) })
	bus.Subscribe(func(env Envelope) { second = append(second, env) })
	require.Equal(t, 2, bus.Len())

	bus.Publish("session-a", AppointmentDeletedV1{AppointmentID: "1"})
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "session-a", first[0].Aggregate)
	assert.Equal(t, "appointments.appointment.deleted.v1", first[0].EventType)

	unsubFirst()
	unsubFirst()
	assert.Equal(t, 1, bus.Len())

	bus.Publish("session-a", DirectoryChangedV1{Resource: "doctor", Op: "deleted", ID: "3"})
	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}

func TestBusDropsInvalidEvents(t *testing.T) {
	bus := NewBus(nil)
	called := false
	bus.Subscribe(func(Envelope) { called = true })

	bus.Publish("", AppointmentDeletedV1{AppointmentID: "1"})
	assert.False(t, called)
}

func TestNilBusIsInert(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() {
		bus.Publish("s", AppointmentDeletedV1{AppointmentID: "1"})
	})
}
