package console

type key int

const (
	keyIgnore key = iota
	keyRune
	keyEnter
	keyBackspace
	keyDelete
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyQuit
)

const (
	esc       = 0x1b
	ctrlC     = 0x03
	ctrlD     = 0x04
	backspace = 0x08
	del       = 0x7f
)

// readKey decodes one keystroke from a terminal in raw mode.
func (s *Session) readKey() (key, rune, error) {
	ch, _, err := s.in.ReadRune()
	if err != nil {
		return keyIgnore, 0, err
	}

	switch ch {
	case '\r', '\n':
		return keyEnter, 0, nil
	case backspace, del:
		return keyBackspace, 0, nil
	case ctrlC, ctrlD:
		return keyQuit, 0, nil
	case esc:
		return s.readEscape()
	}

	if isInputChar(ch) {
		return keyRune, ch, nil
	}
	return keyIgnore, 0, nil
}

// A lone escape quits. An escape followed by '[' or 'O' starts a control
// sequence; followed by anything else it is a meta key and is ignored.
func (s *Session) readEscape() (key, rune, error) {
	if s.in.Buffered() == 0 {
		return keyQuit, 0, nil
	}
	next, _, err := s.in.ReadRune()
	if err != nil {
		return keyIgnore, 0, err
	}
	if next != '[' && next != 'O' {
		return keyIgnore, 0, nil
	}

	// Parameter bytes, then intermediate bytes, then one final byte.
	params := []byte{}
	for {
		b, err := s.in.ReadByte()
		if err != nil {
			return keyIgnore, 0, err
		}
		switch {
		case b >= 0x30 && b <= 0x3f:
			params = append(params, b)
		case b >= 0x20 && b <= 0x2f:
		case b >= 0x40 && b <= 0x7e:
			return controlKey(string(params), b), 0, nil
		default:
			return keyIgnore, 0, nil
		}
	}
}

// Modified keys such as Ctrl+Right carry parameters and are ignored.
func controlKey(params string, final byte) key {
	if final == '~' {
		switch params {
		case "1", "7":
			return keyHome
		case "4", "8":
			return keyEnd
		case "3":
			return keyDelete
		default:
			return keyIgnore
		}
	}
	if params != "" {
		return keyIgnore
	}
	switch final {
	case 'C':
		return keyRight
	case 'D':
		return keyLeft
	case 'H':
		return keyHome
	case 'F':
		return keyEnd
	default:
		return keyIgnore
	}
}

func isInputChar(ch rune) bool {
	if ch >= '0' && ch <= '9' {
		return true
	}
	switch ch {
	case '.', '+', '-', '*', '/', '^', '(', ')', ' ':
		return true
	default:
		return false
	}
}
