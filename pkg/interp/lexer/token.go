package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindError
	KindNumber
	KindIdentifier
	KindLet          // 'let' keyword
	KindAssign       // =
	KindPlus         // +
	KindMinus        // -
	KindStar         // *
	KindSlash        // /
	KindLParen       // (
	KindRParen       // )
	KindSemicolon    // ;
	KindEqual        // ==
	KindNotEqual     // !=
	KindGreater      // >
	KindGreaterEqual // >=
	KindLess         // <
	KindLessEqual    // <=
)

var kindNames = [...]string{
	KindEOF:          "EOF",
	KindError:        "ERROR",
	KindNumber:       "NUMBER",
	KindIdentifier:   "IDENTIFIER",
	KindLet:          "LET",
	KindAssign:       "'='",
	KindPlus:         "'+'",
	KindMinus:        "'-'",
	KindStar:         "'*'",
	KindSlash:        "'/'",
	KindLParen:       "'('",
	KindRParen:       "')'",
	KindSemicolon:    "';'",
	KindEqual:        "'=='",
	KindNotEqual:     "'!='",
	KindGreater:      "'>'",
	KindGreaterEqual: "'>='",
	KindLess:         "'<'",
	KindLessEqual:    "'<='",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Token represents a lexical unit with its source position.
// Number is meaningful only for KindNumber tokens and Text only for
// KindIdentifier tokens. Line and Column are 1-based.
type Token struct {
	Kind   Kind
	Number float64
	Text   string
	Line   int
	Column int
}
