package lib

type charInfo struct {
	ch       rune
	location Location
}

func lex(expr string, emit func(Token)) error {
	l := newLexer(expr, emit)
	return l.scan()
}

// Tokenize splits an infix expression into numbers, operators and
// parentheses. Whitespace separates tokens and is otherwise ignored.
func Tokenize(expr string) ([]Token, error) {
	buffer := newTokenBuffer()
	if err := lex(expr, buffer.Write); err != nil {
		return nil, err
	}
	return buffer.Tokens(), nil
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	currentLocation  Location
	number           []rune
	numberLocation   Location
	emitCallback     func(Token)
}

func newLexer(expr string, emit func(Token)) *lexer {
	runes := []rune(expr)
	return &lexer{
		expr:             runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  Location{Line: 1, Col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tokType TokenType, location Location) {
	l.endNumber()
	l.emitCallback(Token{Type: tokType, Location: location})
}

func (l *lexer) advance() (charInfo, bool) {
	if l.currentCharIndex >= l.length {
		return charInfo{}, false
	}
	info := charInfo{ch: l.expr[l.currentCharIndex], location: l.currentLocation}
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.Line++
		l.currentLocation.Col = 1
	} else {
		l.currentLocation.Col++
	}
	return info, true
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		l.endNumber()
		return false, nil
	}
	ch := chInfo.ch

	switch ch {
	case '(':
		l.emit(TokenTypeLParen, chInfo.location)
	case ')':
		l.emit(TokenTypeRParen, chInfo.location)
	case '+':
		l.emit(TokenTypePlus, chInfo.location)
	case '-':
		l.emit(TokenTypeMinus, chInfo.location)
	case '*':
		l.emit(TokenTypeAsterisk, chInfo.location)
	case '/':
		l.emit(TokenTypeSlash, chInfo.location)
	case '^':
		l.emit(TokenTypeCaret, chInfo.location)
	case ' ', '\t', '\r', '\n':
		l.endNumber()
	default:
		if isDigit(ch) || ch == '.' {
			// Literals are not validated here; "1.2.3" is one token and
			// fails later when it is parsed as a float.
			if len(l.number) == 0 {
				l.numberLocation = chInfo.location
			}
			l.number = append(l.number, ch)
			return true, nil
		}
		return false, errorf(InvalidCharacter, chInfo.location, "unexpected character %q", ch)
	}

	return true, nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (l *lexer) endNumber() {
	if len(l.number) > 0 {
		l.emitCallback(Token{Type: TokenTypeNumber, Value: string(l.number), Location: l.numberLocation})
	}
	l.number = l.number[:0]
}
