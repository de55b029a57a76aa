// Package session runs an addition drill over a line-oriented terminal.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/addrill/internal/generator"
	"github.com/verte-zerg/addrill/internal/input"
	"github.com/verte-zerg/addrill/internal/locale"
	"github.com/verte-zerg/addrill/internal/model"
	"github.com/verte-zerg/addrill/internal/stats"
)

// Formatter renders localized messages.
type Formatter interface {
	Format(key locale.Key, args ...any) string
}

// Options configures a drill session.
type Options struct {
	Count    int
	Variant  model.Variant
	Source   generator.Source
	Messages Formatter
	In       io.Reader
	Out      io.Writer
	Color    bool
}

func newStyles(out io.Writer) map[locale.Key]lipgloss.Style {
	r := lipgloss.NewRenderer(out)
	return map[locale.Key]lipgloss.Style{
		locale.Prompt:      r.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		locale.Correct:     r.NewStyle().Foreground(lipgloss.Color("#52C41A")),
		locale.Wrong:       r.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		locale.OnlyNumbers: r.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		locale.Summary:     r.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
	}
}

// Session drives the rounds of one drill and owns its tally.
type Session struct {
	opts   Options
	tally  *stats.Tally
	reader *input.Reader
	styles map[locale.Key]lipgloss.Style
	err    error
}

// New constructs a Session. Count below zero is treated as zero.
func New(opts Options) *Session {
	s := &Session{
		opts:  opts,
		tally: stats.NewTally(opts.Count),
	}
	if opts.Color {
		s.styles = newStyles(opts.Out)
	}
	s.reader = input.NewReader(opts.In, func() {
		s.say(locale.OnlyNumbers)
	})
	return s
}

// Tally returns the session statistics.
func (s *Session) Tally() *stats.Tally {
	return s.tally
}

// Run plays every round and prints the summary. It stops with
// input.ErrEndOfInput if the input closes early.
func (s *Session) Run() error {
	total := s.tally.Total()
	for round := 1; round <= total; round++ {
		if err := s.playRound(round, total); err != nil {
			return err
		}
	}
	s.say(locale.Summary, s.tally.Correct(), total, s.tally.PercentString())
	return s.err
}

func (s *Session) playRound(round, total int) error {
	ex := generator.Next(s.opts.Source, s.opts.Variant)
	s.say(locale.Prompt, round, total, ex.Equation.String())
	if s.err != nil {
		return s.err
	}

	answer, err := s.reader.ReadInt()
	if err != nil {
		return err
	}
	ok := answer == ex.Answer
	if ok {
		s.say(locale.Correct)
	} else {
		s.say(locale.Wrong, ex.Answer)
	}
	return s.tally.Record(ok)
}

// say prints one localized message. The first write error is kept and later
// writes are skipped.
func (s *Session) say(key locale.Key, args ...any) {
	if s.err != nil {
		return
	}
	text := s.opts.Messages.Format(key, args...)
	if style, ok := s.styles[key]; ok {
		text = style.Render(text)
	}
	if _, err := fmt.Fprintln(s.opts.Out, text); err != nil {
		s.err = fmt.Errorf("failed to write output: %w", err)
	}
}
