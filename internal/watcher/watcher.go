// Package watcher passively observes keyboard and mouse input through the
// X RECORD extension and forwards each event to caller-supplied handlers.
// It never synthesizes input.
//
// RECORD needs two connections: a data connection the intercepted event
// stream arrives on, and a control connection used to disable the context
// while the data connection is blocked reading. A third connection feeds
// keycode-to-keysym translation.
package watcher

import (
	"context"
	"fmt"
	"sync"

	bxproto "github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/record"

	"github.com/Lonami/autoit/internal/coord"
)

// RECORD reply categories.
const (
	categoryFromServer  = 0
	categoryStartOfData = 4
	categoryEndOfData   = 5
)

// Watcher taps the X server's input event stream.
type Watcher struct {
	xu   *xgbutil.XUtil
	ctrl *xgb.Conn
	data *xgb.Conn
	ctx  record.Context

	keyCb   func(KeyEvent)
	mouseCb func(MouseEvent)

	pos coord.Point

	mu      sync.Mutex
	stopped bool
}

// New connects to the X server and registers a RECORD context covering
// key, button and motion events of all clients.
func New() (*Watcher, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("keysym connection: %w", err)
	}
	keybind.Initialize(xu)

	ctrl, err := xgb.NewConn()
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("control connection: %w", err)
	}
	data, err := xgb.NewConn()
	if err != nil {
		xu.Conn().Close()
		ctrl.Close()
		return nil, fmt.Errorf("data connection: %w", err)
	}

	w := &Watcher{xu: xu, ctrl: ctrl, data: data}
	if err := w.createContext(); err != nil {
		w.closeConns()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) createContext() error {
	if err := record.Init(w.data); err != nil {
		return fmt.Errorf("X server lacks the RECORD extension: %w", err)
	}
	if err := record.Init(w.ctrl); err != nil {
		return fmt.Errorf("X server lacks the RECORD extension: %w", err)
	}

	ctx, err := record.NewContextId(w.data)
	if err != nil {
		return fmt.Errorf("allocate record context: %w", err)
	}

	ranges := []record.Range{{
		DeviceEvents: record.Range8{First: evKeyPress, Last: evMotionNotify},
	}}
	specs := []record.ClientSpec{record.CsAllClients}
	err = record.CreateContextChecked(w.data, ctx, 0, 1, 1, specs, ranges).Check()
	if err != nil {
		return fmt.Errorf("create record context: %w", err)
	}
	w.ctx = ctx
	return nil
}

// OnKeyboard registers the handler invoked once per observed key press or
// release. It must be called before Run.
func (w *Watcher) OnKeyboard(fn func(KeyEvent)) {
	w.keyCb = fn
}

// OnMouse registers the handler invoked once per observed button change or
// pointer motion. It must be called before Run.
func (w *Watcher) OnMouse(fn func(MouseEvent)) {
	w.mouseCb = fn
}

// Run enables the record context and blocks delivering events to the
// registered handlers until Stop is called, ctx is cancelled or the event
// connection fails. Handlers run on Run's goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	cookie := record.EnableContext(w.data, w.ctx)
	if ctx != nil {
		defer context.AfterFunc(ctx, w.Stop)()
	}
	for {
		reply, err := cookie.Reply()
		if err != nil {
			if w.isStopped() {
				return nil
			}
			return fmt.Errorf("record event stream: %w", err)
		}
		if reply == nil {
			return nil
		}
		switch reply.Category {
		case categoryFromServer:
			if reply.ClientSwapped {
				continue
			}
			w.dispatch(reply.Data)
		case categoryEndOfData:
			return nil
		}
	}
}

// Stop disables the record context, unblocking Run. Safe to call from any
// goroutine and more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	w.mu.Unlock()

	record.DisableContext(w.ctrl, w.ctx)
	record.FreeContext(w.ctrl, w.ctx)
	w.ctrl.Sync()
}

func (w *Watcher) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// Close stops the watcher and releases all X connections.
func (w *Watcher) Close() {
	w.Stop()
	w.closeConns()
}

func (w *Watcher) closeConns() {
	w.data.Close()
	w.ctrl.Close()
	w.xu.Conn().Close()
}

// dispatch walks the raw intercept data, which packs zero or more 32-byte
// core events back to back.
func (w *Watcher) dispatch(data []byte) {
	for len(data) >= deviceEventSize {
		ev, ok := parseDeviceEvent(data)
		if !ok {
			// Not a device event; alignment past this point is unknown.
			return
		}
		data = data[deviceEventSize:]

		switch ev.Type {
		case evKeyPress, evKeyRelease:
			if w.keyCb != nil {
				w.keyCb(w.keyEvent(ev))
			}
		case evButtonPress, evButtonRelease:
			w.pos = coord.Point{X: int(ev.RootX), Y: int(ev.RootY)}
			if w.mouseCb != nil {
				w.mouseCb(MouseEvent{
					Button: ev.Detail,
					Down:   ev.Type == evButtonPress,
					X:      w.pos.X,
					Y:      w.pos.Y,
				})
			}
		case evMotionNotify:
			w.pos = coord.Point{X: int(ev.RootX), Y: int(ev.RootY)}
			if w.mouseCb != nil {
				w.mouseCb(MouseEvent{Move: true, X: w.pos.X, Y: w.pos.Y})
			}
		}
	}
}

func (w *Watcher) keyEvent(ev deviceEvent) KeyEvent {
	shift := ev.State&stateMaskShift != 0
	caps := ev.State&stateMaskLock != 0

	kc := bxproto.Keycode(ev.Detail)
	sym := keybind.KeysymGet(w.xu, kc, 0)
	if shift || caps {
		// Column 1 holds the shifted form; keys without one leave it empty.
		if upper := keybind.KeysymGet(w.xu, kc, 1); upper != 0 {
			sym = upper
		}
	}

	return KeyEvent{
		Sym:   uint32(sym),
		Name:  keybind.KeysymToStr(sym),
		Down:  ev.Type == evKeyPress,
		Shift: shift,
		Caps:  caps,
	}
}
