package hookfsm_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/librescoot/hookfsm"
)

// Example: Simple traffic light FSM
func Example_trafficLight() {
	const (
		stateRed    hookfsm.StateID = "red"
		stateYellow hookfsm.StateID = "yellow"
		stateGreen  hookfsm.StateID = "green"

		evTick hookfsm.EventType = "TICK"
	)

	def := hookfsm.NewDefinition().
		On(stateRed, evTick, hookfsm.To(stateGreen)).
		On(stateGreen, evTick, hookfsm.To(stateYellow)).
		On(stateYellow, evTick, hookfsm.To(stateRed)).
		Initial(stateRed)

	m, _ := def.Build(func(s hookfsm.StateID) {
		fmt.Println("now", s)
	})

	for i := 0; i < 3; i++ {
		m.Send(evTick)
	}

	// Output:
	// now green
	// now yellow
	// now red
}

// Example: Vehicle-like state machine where pseudo states route themselves
// through onEnter and onExit handlers
func Example_vehicleFSM() {
	// States
	const (
		stateParked    hookfsm.StateID = "parked"
		stateCondLock  hookfsm.StateID = "cond_lock"
		stateLocked    hookfsm.StateID = "locked"
		stateStandby   hookfsm.StateID = "standby"
		stateEmergency hookfsm.StateID = "emergency"
	)

	// Events
	const (
		evLock   hookfsm.EventType = "lock"
		evUnlock hookfsm.EventType = "unlock"
	)

	alarm := false

	def := hookfsm.NewDefinition().
		State(stateParked, hookfsm.WithHandler(evLock, hookfsm.To(stateCondLock))).
		// Condition state: decides on entry whether locking is allowed
		State(stateCondLock,
			hookfsm.WithOnEnter(hookfsm.When(func(ev hookfsm.Event) hookfsm.StateID {
				if msg, ok := ev.(hookfsm.Message); ok && msg.Payload == "seat_open" {
					return stateParked
				}
				return stateLocked
			})),
		).
		State(stateLocked,
			hookfsm.WithHandler(evUnlock, hookfsm.To(stateStandby)),
			// An active alarm overrides wherever unlock would have gone
			hookfsm.WithOnExit(hookfsm.When(func(hookfsm.Event) hookfsm.StateID {
				if alarm {
					return stateEmergency
				}
				return ""
			})),
		).
		State(stateStandby, hookfsm.WithOnEnter(hookfsm.To(stateParked))).
		State(stateEmergency).
		Initial(stateParked)

	m, err := def.Build(
		func(s hookfsm.StateID) { fmt.Println("settled in", s) },
		hookfsm.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	m.Send(hookfsm.Message{ID: evLock, Payload: "seat_open"})
	m.Send(evLock)
	m.Send(evLock) // no handler in locked
	m.Send(evUnlock)
	m.Send(evLock)

	alarm = true
	m.Send(evUnlock)
	fmt.Println("current", m.CurrentState())

	// Output:
	// settled in parked
	// settled in locked
	// settled in parked
	// settled in locked
	// settled in emergency
	// current emergency
}
