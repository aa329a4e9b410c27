package lib

import "fmt"

type TokenType int

const (
	TokenTypeNumber TokenType = iota
	TokenTypeLParen
	TokenTypeRParen
	TokenTypePlus
	TokenTypeMinus
	TokenTypeAsterisk
	TokenTypeSlash
	TokenTypeCaret
)

// Location is the 1-based line and column of a token's first character.
type Location struct {
	Line int
	Col  int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

type Token struct {
	Type     TokenType
	Value    string
	Location Location
}

func (t Token) IsOperator() bool {
	switch t.Type {
	case TokenTypePlus, TokenTypeMinus, TokenTypeAsterisk, TokenTypeSlash, TokenTypeCaret:
		return true
	default:
		return false
	}
}

// String renders the literal text of the token.
func (t Token) String() string {
	switch t.Type {
	case TokenTypeNumber:
		return t.Value
	case TokenTypeLParen:
		return "("
	case TokenTypeRParen:
		return ")"
	case TokenTypePlus:
		return "+"
	case TokenTypeMinus:
		return "-"
	case TokenTypeAsterisk:
		return "*"
	case TokenTypeSlash:
		return "/"
	case TokenTypeCaret:
		return "^"
	default:
		return fmt.Sprintf("<token %d>", int(t.Type))
	}
}

func tokenString(tok Token) string {
	return fmt.Sprintf("%s -> %s", tok.Location, tok)
}
