// Package shellwords splits a command line into words using POSIX-style
// quoting rules: whitespace delimits words, single quotes preserve their
// contents verbatim, double quotes group words, and a backslash escapes the
// next character.
//
// A backslash-newline pair is a line continuation: both characters are
// dropped and the current word, if any, stays open across the join. Any
// whitespace after the continuation delimits words as usual, so
// "a\<newline>b" yields the single word "ab" while "a\<newline> b" yields
// "a" and "b".
package shellwords

import "errors"

// ErrUnterminatedQuote is returned when the input ends inside a quoted
// region.
var ErrUnterminatedQuote = errors.New("unterminated quote")

type state int

const (
	stateDelimiter state = iota
	stateUnquoted
	stateSingleQuoted
	stateDoubleQuoted
	stateBackslash
)

// Split tokenizes s into words. An empty or all-whitespace input yields no
// words. The split is purely lexical: no variable expansion, globbing, or
// command substitution is performed.
func Split(s string) ([]string, error) {
	var (
		st    = stateDelimiter
		words []string
		word  []rune
	)

	flush := func() {
		words = append(words, string(word))
		word = word[:0]
	}

	for _, c := range s {
		switch st {
		case stateDelimiter:
			switch {
			case c == '\'':
				st = stateSingleQuoted
			case c == '"':
				st = stateDoubleQuoted
			case c == '\\':
				st = stateBackslash
			case isSpace(c):
				// still between words
			default:
				word = append(word, c)
				st = stateUnquoted
			}
		case stateUnquoted:
			switch {
			case c == '\'':
				st = stateSingleQuoted
			case c == '"':
				st = stateDoubleQuoted
			case c == '\\':
				st = stateBackslash
			case isSpace(c):
				flush()
				st = stateDelimiter
			default:
				word = append(word, c)
			}
		case stateSingleQuoted:
			if c == '\'' {
				st = stateUnquoted
			} else {
				word = append(word, c)
			}
		case stateDoubleQuoted:
			if c == '"' {
				st = stateUnquoted
			} else {
				word = append(word, c)
			}
		case stateBackslash:
			if c == '\n' {
				// Line continuation: drop the pair. If a word was in
				// progress it stays open for the next character.
				if len(word) > 0 {
					st = stateUnquoted
				} else {
					st = stateDelimiter
				}
			} else {
				word = append(word, c)
				st = stateUnquoted
			}
		}
	}

	switch st {
	case stateSingleQuoted, stateDoubleQuoted:
		return nil, ErrUnterminatedQuote
	case stateBackslash:
		// A trailing backslash is kept literally.
		word = append(word, '\\')
		flush()
	case stateUnquoted:
		flush()
	}

	return words, nil
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
