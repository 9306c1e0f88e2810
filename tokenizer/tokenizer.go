// Package tokenizer splits raw text into words, sentences, and stop-word
// delimited candidate phrases, shared by every algorithm in the keywords
// package.
//
// Three API layers, matching the three output shapes callers need:
//
//   - WordTokens / Words: every Word/Number/Punctuation/Space/Symbol token
//     with byte offsets. For input that is already valid UTF-8 in NFC, the
//     invariant s[t.Start:t.End] == t.Text holds for every token, and
//     concatenating all token texts reconstructs the original string; other
//     input is normalized first and the offsets refer to the normalized text.
//   - SentenceWordTokens / Sentences: tokens grouped by sentence. Stop words
//     are included — algorithms that need sentence-local context (YAKE's
//     positional and dispersion features, TextRank's windowing) filter them
//     out themselves once they know the sentence boundaries.
//   - ContentTokens / Phrases: the stop-word and punctuation aware views.
//     ContentTokens is a flat, lowercased list with stop words and
//     punctuation removed. Phrases groups maximal runs of content tokens,
//     broken at every stop word, punctuation mark, or text boundary, and
//     reports each phrase using the original (non-lowercased) token text.
//
// Word boundaries are determined by Unicode Text Segmentation (UAX #29, via
// github.com/rivo/uniseg) rather than hand-rolled rune classification, and
// input is first composed to NFC (golang.org/x/text/unicode/norm) so
// decomposed accented input segments the same way as its composed form.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import (
	"fmt"

	"github.com/az-ai-labs/keyword-extraction-go/internal/casing"
)

// foldToken returns the lowercase form of a token's text, used for
// stop-word/punctuation matching and as the map key for content tokens.
func foldToken(s string) string {
	return casing.Fold(s)
}

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // a run of letters and/or digits
	Number                       // a run consisting only of digits
	Punctuation                  // punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // contiguous whitespace
	Symbol                       // everything else: emoji, mathematical symbols, etc.
	Sentence                     // used only by SentenceTokens — a full sentence
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	case Sentence:
		return "Sentence"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // the token text, exactly as it appears in the input
	Start int       // byte offset in the original string (inclusive)
	End   int       // byte offset in the original string (exclusive)
	Type  TokenType // classification of the token
}

// String returns a debug representation, e.g. Word("keyword")[0:7].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// isWordLike reports whether a token type can ever be a content candidate.
func (t TokenType) isWordLike() bool {
	return t == Word || t == Number
}

// Options configures stop-word and punctuation aware segmentation.
// StopWords and Punctuation are matched case-insensitively; both are
// borrowed read-only and not retained past the call. A token present in
// both is treated as a stop word (spec edge case).
type Options struct {
	StopWords       map[string]struct{}
	Punctuation     map[string]struct{}
	MaxPhraseLength int // 0 means unbounded
}

// isStop reports whether the lowercased token text is in the stop-word or
// punctuation set.
func (o Options) isStop(lower string) bool {
	if _, ok := o.StopWords[lower]; ok {
		return true
	}
	if _, ok := o.Punctuation[lower]; ok {
		return true
	}
	return false
}

// WordTokens splits text into all tokens with metadata. Returns Word,
// Number, Punctuation, Space, and Symbol tokens; never Sentence tokens.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(normalizeNFC(s))
}

// Words returns only Word and Number token texts, in their original casing.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(normalizeNFC(s))
	words := make([]string, 0, len(tokens)/2+1)
	for _, t := range tokens {
		if t.Type.isWordLike() {
			words = append(words, t.Text)
		}
	}
	return words
}

// SentenceTokens splits text into sentence-level tokens with byte offsets.
// Each returned Token has Type == Sentence. Sentence boundaries are
// terminal punctuation (. ? ! …) followed by whitespace or end of input, or a
// blank-line paragraph break.
func SentenceTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return sentenceTokens(normalizeNFC(s))
}

// Sentences returns sentence strings from the text.
func Sentences(s string) []string {
	tokens := SentenceTokens(s)
	if len(tokens) == 0 {
		return nil
	}
	sentences := make([]string, len(tokens))
	for i, t := range tokens {
		sentences[i] = t.Text
	}
	return sentences
}

// SentenceWordTokens groups Word/Number tokens by sentence. Stop words are
// included; only non-word tokens (punctuation, space, symbol) are dropped.
// YAKE uses this to respect sentence boundaries while still seeing function
// words for accurate positional/neighbor counting.
func SentenceWordTokens(s string) [][]Token {
	sentences := SentenceTokens(s)
	if len(sentences) == 0 {
		return nil
	}
	out := make([][]Token, len(sentences))
	for i, sent := range sentences {
		words := wordTokens(sent.Text)
		kept := make([]Token, 0, len(words))
		for _, w := range words {
			if !w.Type.isWordLike() {
				continue
			}
			kept = append(kept, Token{
				Text:  w.Text,
				Start: sent.Start + w.Start,
				End:   sent.Start + w.End,
				Type:  w.Type,
			})
		}
		out[i] = kept
	}
	return out
}

// ContentTokens returns the flat, lowercased list of content tokens: word
// and number tokens whose lowercased text is not in opts.StopWords or
// opts.Punctuation.
func ContentTokens(s string, opts Options) []string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(normalizeNFC(s))
	out := make([]string, 0, len(tokens)/2+1)
	for _, t := range tokens {
		if !t.Type.isWordLike() {
			continue
		}
		lower := foldToken(t.Text)
		if opts.isStop(lower) {
			continue
		}
		out = append(out, lower)
	}
	return out
}

// Phrases segments text into candidate phrases: maximal runs of content
// tokens uninterrupted by a stop word, punctuation, or text boundary. Each
// phrase is reported using the tokens' original (non-lowercased) text.
// Phrases longer than opts.MaxPhraseLength are split into consecutive
// sub-phrases of that length; a value <= 0 leaves phrases unbounded.
func Phrases(s string, opts Options) [][]string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(normalizeNFC(s))

	var phrases [][]string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		phrases = append(phrases, splitPhrase(current, opts.MaxPhraseLength)...)
		current = nil
	}

	for _, t := range tokens {
		if !t.Type.isWordLike() {
			flush()
			continue
		}
		lower := foldToken(t.Text)
		if opts.isStop(lower) {
			flush()
			continue
		}
		current = append(current, t.Text)
	}
	flush()

	return phrases
}

// splitPhrase splits words into consecutive chunks of at most max words.
// max <= 0 means unbounded (the whole phrase is returned as one chunk).
func splitPhrase(words []string, max int) [][]string {
	if max <= 0 || len(words) <= max {
		return [][]string{words}
	}
	var out [][]string
	for i := 0; i < len(words); i += max {
		end := min(i+max, len(words))
		out = append(out, words[i:end])
	}
	return out
}
