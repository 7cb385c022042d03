package autoit

// Copy places text on the system clipboard. To emulate pressing Ctrl+C,
// use Press instead.
func (s *Session) Copy(text string) error {
	return s.clip.Copy(text)
}

// Paste returns the current clipboard contents. To emulate pressing
// Ctrl+V, use Press instead.
func (s *Session) Paste() (string, error) {
	return s.clip.Paste()
}

// Copy places text on the clipboard using the default session.
func Copy(text string) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Copy(text)
}

// Paste returns the clipboard contents using the default session.
func Paste() (string, error) {
	s, err := Default()
	if err != nil {
		return "", err
	}
	return s.Paste()
}
