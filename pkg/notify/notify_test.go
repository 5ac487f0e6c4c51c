package notify

import (
	"errors"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type fakeCaller struct {
	method string
	args   []interface{}
	err    error
}

func (f *fakeCaller) Call(method string, _ dbus.Flags, args ...interface{}) *dbus.Call {
	f.method = method
	f.args = args
	return &dbus.Call{Err: f.err}
}

func TestSend(t *testing.T) {
	caller := &fakeCaller{}
	n := NewWithCaller(caller)

	require.NoError(t, n.Send("keymapshift", "no text is currently highlighted", Critical))
	assert.Equal(t, "org.freedesktop.Notifications.Notify", caller.method)
	require.Len(t, caller.args, 8)
	assert.Equal(t, "keymapshift", caller.args[0])
	assert.Equal(t, "no text is currently highlighted", caller.args[4])

	hints := caller.args[6].(map[string]dbus.Variant)
	assert.Equal(t, byte(Critical), hints["urgency"].Value())
	assert.NoError(t, n.Close())
}

func TestSendError(t *testing.T) {
	n := NewWithCaller(&fakeCaller{err: errors.New("no notification daemon")})
	assert.ErrorContains(t, n.Send("a", "b", Normal), "no notification daemon")
}
