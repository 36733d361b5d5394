// Package highlight turns source snapshots into per-line styled spans
// for the editor renderer. Tokenization runs through chroma; results
// are cached per buffer generation so unchanged frames pay nothing.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/lixenwraith/leetterm/editor"
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

// DefaultStyle is the chroma style used when none is configured
const DefaultStyle = "monokai"

// Highlighter caches tokenized spans for one buffer
type Highlighter struct {
	style *chroma.Style

	cachedGen   uint64
	cachedLang  string
	cachedSpans [][]editor.Span
	valid       bool
}

// New creates a highlighter with the named chroma style; unknown names
// fall back to the default
func New(styleName string) *Highlighter {
	st := styles.Get(styleName)
	if st == styles.Fallback {
		st = styles.Get(DefaultStyle)
	}
	return &Highlighter{style: st}
}

// Lines returns spans for every line of source. generation keys the
// cache; pass the editor's mutation counter. A nil result means the
// language has no lexer and the caller should render plain text.
func (h *Highlighter) Lines(source, lang string, generation uint64) [][]editor.Span {
	if h.valid && h.cachedGen == generation && h.cachedLang == lang {
		return h.cachedSpans
	}

	spans := h.tokenize(source, lang)
	h.cachedGen = generation
	h.cachedLang = lang
	h.cachedSpans = spans
	h.valid = true
	return spans
}

// Invalidate drops the cache, e.g. on language switch
func (h *Highlighter) Invalidate() {
	h.valid = false
}

func (h *Highlighter) tokenize(source, lang string) [][]editor.Span {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	lineCount := strings.Count(source, "\n") + 1
	spans := make([][]editor.Span, lineCount)

	line := 0
	col := 0
	for _, tok := range iterator.Tokens() {
		st, styled := h.tokenStyle(tok.Type)
		for _, part := range strings.SplitAfter(tok.Value, "\n") {
			if part == "" {
				continue
			}
			text := strings.TrimSuffix(part, "\n")
			n := len([]rune(text))
			if n > 0 && styled && line < lineCount {
				spans[line] = append(spans[line], editor.Span{
					Start: col,
					End:   col + n,
					Style: st,
				})
			}
			if strings.HasSuffix(part, "\n") {
				line++
				col = 0
			} else {
				col += n
			}
		}
	}
	return spans
}

// tokenStyle resolves a token type to a render style; ok is false for
// tokens the style leaves unset
func (h *Highlighter) tokenStyle(t chroma.TokenType) (tui.Style, bool) {
	entry := h.style.Get(t)
	if entry.IsZero() || !entry.Colour.IsSet() {
		return tui.Style{}, false
	}
	st := tui.Style{
		Fg: terminal.RGB{
			R: entry.Colour.Red(),
			G: entry.Colour.Green(),
			B: entry.Colour.Blue(),
		},
		Bg: terminal.DefaultColor,
	}
	if entry.Bold == chroma.Yes {
		st.Attr |= terminal.AttrBold
	}
	if entry.Italic == chroma.Yes {
		st.Attr |= terminal.AttrItalic
	}
	if entry.Underline == chroma.Yes {
		st.Attr |= terminal.AttrUnderline
	}
	return st, true
}

// StylerFor adapts cached spans to the editor's LineStyler callback
func (h *Highlighter) StylerFor(source, lang string, generation uint64) editor.LineStyler {
	spans := h.Lines(source, lang, generation)
	if spans == nil {
		return nil
	}
	return func(lineIdx int) []editor.Span {
		if lineIdx < 0 || lineIdx >= len(spans) {
			return nil
		}
		return spans[lineIdx]
	}
}
