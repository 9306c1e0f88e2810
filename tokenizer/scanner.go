package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// normalizeNFC composes text to NFC so that decomposed accented input
// (e.g. "e" + combining acute) segments identically to its precomposed
// form ("é"). Malformed UTF-8 is replaced rather than rejected: each invalid
// byte sequence becomes U+FFFD before composition, so nothing panics.
func normalizeNFC(s string) string {
	if utf8.ValidString(s) && norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(strings.ToValidUTF8(s, "�"))
}

// wordTokens splits s into tokens using Unicode word segmentation (UAX #29)
// and classifies each resulting segment. The caller guarantees s is
// normalized and non-empty.
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	state := -1
	pos := 0
	for len(s) > 0 {
		segment, rest, newState := uniseg.FirstWordInString(s, state)
		state = newState

		typ := classify(segment)
		tokens = append(tokens, Token{
			Text:  segment,
			Start: pos,
			End:   pos + len(segment),
			Type:  typ,
		})

		pos += len(segment)
		s = rest
	}

	return tokens
}

// classify assigns a TokenType to a single Unicode-segmented word boundary.
func classify(segment string) TokenType {
	hasLetter, hasDigit, hasSpace, hasPunct, hasOther := false, false, false, false, false

	for _, r := range segment {
		switch {
		case unicode.IsSpace(r):
			hasSpace = true
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || isDashOrQuote(r):
			hasPunct = true
		default:
			hasOther = true
		}
	}

	switch {
	case hasSpace && !hasLetter && !hasDigit && !hasPunct && !hasOther:
		return Space
	case hasLetter:
		return Word
	case hasDigit && !hasOther:
		return Number
	case hasPunct && !hasOther:
		return Punctuation
	default:
		return Symbol
	}
}

// isDashOrQuote catches the ASCII hyphen and the Unicode dash characters
// U+2010-U+2015, which unicode.IsPunct already covers, kept explicit for
// clarity at call sites. Quotation marks are left to unicode.IsPunct.
func isDashOrQuote(r rune) bool {
	return r == '-' || r == '‐' || r == '‑' || r == '‒' ||
		r == '–' || r == '—' || r == '―'
}

// sentenceTokens splits s into sentence-level tokens. Adjacent tokens cover
// the entire input without gaps or overlaps: concatenating all Token.Text
// values reconstructs s exactly.
func sentenceTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/80+1)
	sentStart := 0

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Blank-line paragraph break forces a sentence boundary regardless
		// of punctuation.
		if r == '\n' && i+1 < len(s) && s[i+1] == '\n' {
			j := i
			for j < len(s) && s[j] == '\n' {
				j++
			}
			tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j, Type: Sentence})
			sentStart = j
			i = j
			continue
		}

		if r == '.' || r == '?' || r == '!' || r == '…' {
			j := i + size
			for j < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[j:])
				if nr == '.' || nr == '?' || nr == '!' || nr == '…' {
					j += ns
				} else {
					break
				}
			}
			if followedByBoundary(s, j) {
				tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j, Type: Sentence})
				sentStart = j
			}
			i = j
			continue
		}

		i += size
	}

	if sentStart < len(s) {
		tokens = append(tokens, Token{Text: s[sentStart:], Start: sentStart, End: len(s), Type: Sentence})
	}

	return tokens
}

// followedByBoundary reports whether pos is at the end of the string or
// followed by whitespace, i.e. the terminal punctuation run at pos is
// actually ending a sentence rather than sitting mid-token (e.g. "3.14").
func followedByBoundary(s string, pos int) bool {
	if pos >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return unicode.IsSpace(r)
}
