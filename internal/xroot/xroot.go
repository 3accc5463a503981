// Package xroot publishes text as the name of the X root window, which is
// where dwm reads its status from.
package xroot

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

type Display struct {
	conn *xgb.Conn
	root xproto.Window
}

// Open connects to the named display. An empty name uses $DISPLAY.
func Open(name string) (*Display, error) {
	conn, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open display %q", name)
	}
	// The root window id does not change for the lifetime of the connection.
	root := xproto.Setup(conn).DefaultScreen(conn).Root
	return &Display{
		conn: conn,
		root: root,
	}, nil
}

// Publish replaces WM_NAME of the root window. The checked request waits
// for the server reply, so the new name is visible when it returns.
func (d *Display) Publish(text string) error {
	err := xproto.ChangePropertyChecked(d.conn, xproto.PropModeReplace, d.root,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(text)), []byte(text)).Check()
	return errors.Wrap(err, "unable to set root window name")
}

func (d *Display) Close() {
	d.conn.Close()
}
