package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mgomes/mimir/mimir"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")
)

// tokenPrinter renders tokens one per line. A printer without a renderer
// produces the plain Token.String form.
type tokenPrinter struct {
	renderer *lipgloss.Renderer

	kinds  map[mimir.TokenType]lipgloss.Style
	lexeme lipgloss.Style
	muted  lipgloss.Style
}

func newPlainPrinter() tokenPrinter {
	return tokenPrinter{}
}

// newForcedColorPrinter styles output for w even when w is not a terminal.
func newForcedColorPrinter(w io.Writer) tokenPrinter {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	return newStyledPrinter(r)
}

func newStyledPrinter(r *lipgloss.Renderer) tokenPrinter {
	return tokenPrinter{
		renderer: r,
		kinds: map[mimir.TokenType]lipgloss.Style{
			mimir.TokenInteger: r.NewStyle().Foreground(successColor).Bold(true),
			mimir.TokenPlus:    r.NewStyle().Foreground(accentColor).Bold(true),
			mimir.TokenError:   r.NewStyle().Foreground(errorColor).Bold(true),
			mimir.TokenEOF:     r.NewStyle().Foreground(mutedColor),
		},
		lexeme: r.NewStyle().Foreground(highlightColor),
		muted:  r.NewStyle().Foreground(mutedColor),
	}
}

func (p tokenPrinter) render(tok mimir.Token) string {
	if p.renderer == nil {
		return tok.String()
	}
	return fmt.Sprintf("%s { kind: %s, lexeme: %s }",
		p.muted.Render("Token"),
		p.kinds[tok.Type].Render(tok.Type.String()),
		p.lexeme.Render(strconv.Quote(tok.Lexeme)))
}

// renderCompact renders a token as Kind("lexeme") for inline listings.
func (p tokenPrinter) renderCompact(tok mimir.Token) string {
	text := fmt.Sprintf("%s(%q)", tok.Type, tok.Lexeme)
	if p.renderer == nil {
		return text
	}
	return p.kinds[tok.Type].Render(text)
}
