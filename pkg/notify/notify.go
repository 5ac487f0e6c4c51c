package notify

import (
	"fmt"
	"github.com/godbus/dbus/v5"
)

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = "/org/freedesktop/Notifications"
	notifyMethod         = notificationsService + ".Notify"

	appName       = "keymapshift"
	expireTimeout = int32(5000)
)

type Urgency byte

const (
	Low Urgency = iota
	Normal
	Critical
)

// Caller is the subset of a dbus object used to send notifications.
type Caller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

type Notifier struct {
	conn *dbus.Conn
	obj  Caller
}

// New connects to the session bus.
func New() (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect to session bus: %w", err)
	}

	return &Notifier{
		conn: conn,
		obj:  conn.Object(notificationsService, notificationsPath),
	}, nil
}

func NewWithCaller(obj Caller) *Notifier {
	return &Notifier{obj: obj}
}

func (n *Notifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}

func (n *Notifier) Send(summary, body string, urgency Urgency) error {
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(urgency)),
	}

	call := n.obj.Call(notifyMethod, 0,
		appName, uint32(0), "input-keyboard", summary, body, []string{}, hints, expireTimeout)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}

	return nil
}
