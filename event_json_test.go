package hookfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONEvent(t *testing.T) {
	t.Parallel()

	ev, err := ParseJSONEvent([]byte(`{"type":"charge","battery":{"level":17}}`))
	require.NoError(t, err)

	assert.Equal(t, EventType("charge"), ev.Type())
	assert.Equal(t, int64(17), ev.Get("battery.level").Int())
	assert.False(t, ev.Get("battery.voltage").Exists())
	assert.JSONEq(t, `{"type":"charge","battery":{"level":17}}`, string(ev.Raw()))
}

func TestParseJSONEventCopiesInput(t *testing.T) {
	t.Parallel()

	buf := []byte(`{"type":"charge","level":1}`)
	ev, err := ParseJSONEvent(buf)
	require.NoError(t, err)

	copy(buf, []byte(`{"type":"unlock","level":9}`))

	assert.Equal(t, EventType("charge"), ev.Type())
	assert.Equal(t, int64(1), ev.Get("level").Int())
}

func TestParseJSONEventErrors(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"malformed":    `{"type":`,
		"not object":   `["charge"]`,
		"missing type": `{"battery":1}`,
		"numeric type": `{"type":3}`,
		"empty type":   `{"type":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJSONEvent([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidEvent)
		})
	}
}

func TestJSONEventDrivesGuards(t *testing.T) {
	t.Parallel()

	def := NewDefinition().
		On("idle", "charge", When(func(ev Event) StateID {
			jev, ok := ev.(JSONEvent)
			if !ok {
				return ""
			}
			if jev.Get("battery.level").Int() < 20 {
				return "charging_slow"
			}
			return "charging"
		})).
		State("charging").
		State("charging_slow").
		Initial("idle")

	m, err := def.Build(nil)
	require.NoError(t, err)

	ev, err := ParseJSONEvent([]byte(`{"type":"charge","battery":{"level":5}}`))
	require.NoError(t, err)
	require.NoError(t, m.Send(ev))

	assert.Equal(t, StateID("charging_slow"), m.CurrentState())
}
