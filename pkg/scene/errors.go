package scene

import "fmt"

// GrammarError is a lexer, parser, or semantic error tagged with the
// source location of the offending token. It is never caught internally:
// it propagates unchanged to the caller of ParseScene.
type GrammarError struct {
	Location SourceLocation
	Message  string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("grammar error at %s: %s", e.Location, e.Message)
}

func newGrammarError(loc SourceLocation, format string, args ...interface{}) error {
	return &GrammarError{Location: loc, Message: fmt.Sprintf(format, args...)}
}
