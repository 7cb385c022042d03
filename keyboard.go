package autoit

import (
	"strings"

	"github.com/Lonami/autoit/internal/keymap"
)

// Press presses and releases the given keys in order. Each argument is a
// single key or a "+"-joined chord ("ctrl+d" holds control while pressing
// d). Unknown keys fail before anything is sent.
func (s *Session) Press(keys ...string) error {
	sequences := make([]string, 0, len(keys))
	for _, key := range keys {
		seq, err := keymap.KeySequence(key)
		if err != nil {
			return err
		}
		sequences = append(sequences, seq)
	}
	if len(sequences) == 0 {
		return nil
	}
	return s.tool.Key(sequences...)
}

// Hold presses the given keys and returns a function that releases them in
// reverse order. Keys already pressed are released if a later press fails.
//
//	release, err := session.Hold("ctrl", "shift")
//	if err != nil { ... }
//	defer release()
//	session.Press("esc")
func (s *Session) Hold(keys ...string) (release func() error, err error) {
	sequences := make([]string, 0, len(keys))
	for _, key := range keys {
		seq, err := keymap.KeySequence(key)
		if err != nil {
			return nil, err
		}
		sequences = append(sequences, seq)
	}

	held := make([]string, 0, len(sequences))
	releaseHeld := func() error {
		var firstErr error
		for i := len(held) - 1; i >= 0; i-- {
			if err := s.tool.KeyUp(held[i]); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		held = held[:0]
		return firstErr
	}

	for _, seq := range sequences {
		if err := s.tool.KeyDown(seq); err != nil {
			releaseHeld()
			return nil, err
		}
		held = append(held, seq)
	}
	return releaseHeld, nil
}

// WriteOptions control how Write joins its arguments.
type WriteOptions struct {
	// Sep is inserted between arguments. Write uses a single space.
	Sep string
	// End is appended after the last argument.
	End string
}

// Write types the given texts as they are, as fast as the configured
// typing delay allows. Arguments are joined with a single space.
func (s *Session) Write(texts ...string) error {
	return s.WriteOpts(WriteOptions{Sep: " "}, texts...)
}

// WriteOpts types the given texts joined by opts.Sep and terminated by
// opts.End.
func (s *Session) WriteOpts(opts WriteOptions, texts ...string) error {
	text := strings.Join(texts, opts.Sep) + opts.End
	if text == "" {
		return nil
	}
	return s.tool.Type(s.cfg.TypeDelay(), text)
}

// Holding reports whether the given key or mouse button ("lmb", "mmb",
// "rmb") is currently held down. Only the "*mb" notation names buttons;
// "l" or "left" always mean keys.
func (s *Session) Holding(key string) (bool, error) {
	conn, err := s.conn()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(key) {
	case "lmb", "mmb", "rmb":
		button, err := keymap.ParseButton(key)
		if err != nil {
			return false, err
		}
		return conn.HoldingButton(button)
	}
	sym, err := keymap.KeysymFor(key)
	if err != nil {
		return false, err
	}
	return conn.HoldingKey(sym)
}

// Press presses keys using the default session.
func Press(keys ...string) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Press(keys...)
}

// Hold holds keys using the default session.
func Hold(keys ...string) (release func() error, err error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Hold(keys...)
}

// Write types text using the default session.
func Write(texts ...string) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Write(texts...)
}

// Holding reports a held key or button using the default session.
func Holding(key string) (bool, error) {
	s, err := Default()
	if err != nil {
		return false, err
	}
	return s.Holding(key)
}
