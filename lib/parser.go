package lib

// Binding strength of each stackable token. The left paren is a sentinel
// that no operator can pop past.
var precedence = map[TokenType]int{
	TokenTypeLParen:   0,
	TokenTypePlus:     1,
	TokenTypeMinus:    1,
	TokenTypeAsterisk: 2,
	TokenTypeSlash:    2,
	TokenTypeCaret:    3,
}

func priority(tok Token) (int, error) {
	p, ok := precedence[tok.Type]
	if !ok {
		return 0, errorf(UnknownOperator, tok.Location, "no precedence for <%s>", tokenString(tok))
	}
	return p, nil
}

// ToPostfix reorders infix tokens into postfix order with the shunting-yard
// algorithm. Operators of equal precedence, including ^, associate to the
// left. Parentheses are consumed and never appear in the result.
func ToPostfix(tokens []Token) ([]Token, error) {
	p := parser{reader: newTokenBufferFrom(tokens), output: newTokenBuffer()}
	if err := p.scan(); err != nil {
		return nil, err
	}
	return p.output.Tokens(), nil
}

type parser struct {
	reader tokenReader
	output *tokenBuffer
	stack  []Token
}

func (p *parser) push(tok Token) {
	p.stack = append(p.stack, tok)
}

func (p *parser) pop() Token {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return top
}

func (p *parser) top() Token {
	return p.stack[len(p.stack)-1]
}

func (p *parser) scan() error {
	for {
		tok, done := p.reader.Next()
		if done {
			break
		}

		var err error
		switch {
		case tok.Type == TokenTypeNumber:
			p.output.Write(tok)
		case tok.Type == TokenTypeLParen:
			p.push(tok)
		case tok.Type == TokenTypeRParen:
			err = p.scanRParen(tok)
		default:
			err = p.scanOperator(tok)
		}
		if err != nil {
			return err
		}
	}

	for len(p.stack) > 0 {
		tok := p.pop()
		if tok.Type == TokenTypeLParen {
			return errorf(UnbalancedParentheses, tok.Location, "'(' is never closed")
		}
		p.output.Write(tok)
	}
	return nil
}

// Pops operators to the output until the matching '(' is found.
func (p *parser) scanRParen(rparen Token) error {
	for len(p.stack) > 0 && p.top().Type != TokenTypeLParen {
		p.output.Write(p.pop())
	}
	if len(p.stack) == 0 {
		return errorf(UnbalancedParentheses, rparen.Location, "')' has no matching '('")
	}
	p.pop()
	return nil
}

func (p *parser) scanOperator(op Token) error {
	opPriority, err := priority(op)
	if err != nil {
		return err
	}
	for len(p.stack) > 0 {
		topPriority, err := priority(p.top())
		if err != nil {
			return err
		}
		if topPriority < opPriority {
			break
		}
		p.output.Write(p.pop())
	}
	p.push(op)
	return nil
}
