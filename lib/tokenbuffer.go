package lib

// tokenBuffer is a FIFO queue of tokens. The lexer writes into it and the
// converter and evaluator read from it through the tokenReader interface.
type tokenBuffer struct {
	tokens []Token
	pos    int
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokens: []Token{},
		pos:    0,
	}
}

func newTokenBufferFrom(tokens []Token) *tokenBuffer {
	buf := newTokenBuffer()
	for _, tok := range tokens {
		buf.Write(tok)
	}
	return buf
}

func (tb *tokenBuffer) Next() (tok Token, done bool) {
	tok, done = tb.Peek()
	if !done {
		tb.pos++
	}
	return tok, done
}

func (tb *tokenBuffer) Peek() (Token, bool) {
	if tb.pos >= len(tb.tokens) {
		return Token{}, true
	}
	return tb.tokens[tb.pos], false
}

func (tb *tokenBuffer) Write(tok Token) {
	tb.tokens = append(tb.tokens, tok)
}

// Tokens returns a copy of the tokens not yet read.
func (tb *tokenBuffer) Tokens() []Token {
	rest := make([]Token, len(tb.tokens)-tb.pos)
	copy(rest, tb.tokens[tb.pos:])
	return rest
}
