package retheme

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Step is one substitution applied to the whole document.
type Step interface {
	Apply(doc string) string
	Count(doc string) int
	fmt.Stringer
}

// Literal replaces every non-overlapping occurrence of Old with New.
type Literal struct {
	Old, New string
}

func (l Literal) Apply(doc string) string {
	if l.Old == "" {
		return doc
	}
	return strings.ReplaceAll(doc, l.Old, l.New)
}

func (l Literal) Count(doc string) int {
	if l.Old == "" {
		return 0
	}
	return strings.Count(doc, l.Old)
}

func (l Literal) String() string {
	return fmt.Sprintf("%q -> %q", l.Old, l.New)
}

// Pattern replaces every match of Re with Template, which may reference
// capture groups as ${1}.
type Pattern struct {
	Re       *regexp.Regexp
	Template string
}

func (p Pattern) Apply(doc string) string {
	return p.Re.ReplaceAllString(doc, p.Template)
}

func (p Pattern) Count(doc string) int {
	return len(p.Re.FindAllStringIndex(doc, -1))
}

func (p Pattern) String() string {
	return fmt.Sprintf("/%s/ -> %q", p.Re, p.Template)
}

// Pipeline applies its steps in order, each to the output of the last.
type Pipeline []Step

func (p Pipeline) Apply(doc string) string {
	for _, step := range p {
		doc = step.Apply(doc)
	}
	return doc
}

// Trace is Apply, but logs how many matches each step found before applying it.
func (p Pipeline) Trace(doc string, l *log.Logger) string {
	for i, step := range p {
		l.Printf("rule %d: %d matches: %v", i+1, step.Count(doc), step)
		doc = step.Apply(doc)
	}
	return doc
}

const sidebarMarker = "/* ======================== SIDEBAR ======================== */"

var sidebarText = Pattern{
	Re:       regexp.MustCompile(`(?s)color: #fff;(.*?)` + regexp.QuoteMeta(sidebarMarker)),
	Template: "color: var(--color-text-main);${1}" + sidebarMarker,
}

func primaryMix(pct int) string {
	return fmt.Sprintf("color-mix(in srgb, var(--color-primary) %d%%, transparent)", pct)
}

// DashboardRules returns the substitutions for the dashboard stylesheet.
// Order matters: the second background: #0a0a0a; rule only sees what the
// first one and the sidebar pattern left behind.
func DashboardRules() Pipeline {
	gradient := "linear-gradient(135deg, var(--color-primary), var(--color-accent))"
	return Pipeline{
		// accents
		Literal{"color: #c084fc;", "color: var(--color-accent);"},
		Literal{"linear-gradient(135deg, #c026d3, #e879f9)", gradient},
		Literal{"linear-gradient(135deg, #7c3aed, #a78bfa)", gradient},

		// shadows and borders
		Literal{"rgba(192, 38, 211, 0.25)", primaryMix(25)},
		Literal{"rgba(192, 38, 211, 0.2)", primaryMix(20)},
		Literal{"rgba(192, 38, 211, 0.06)", primaryMix(6)},
		Literal{"rgba(124, 58, 237, 0.35)", primaryMix(35)},
		Literal{"rgba(124, 58, 237, 0.5)", primaryMix(50)},

		// .os-layout
		Literal{"background: #0a0a0a;", "background: var(--bg-gradient);"},
		sidebarText,

		// .os-chart-placeholder, .os-empty-state
		Literal{"background: #0a0a0a;", "background: var(--color-surface-dark);"},

		// .os-sidebar, .os-stat-card, .os-panel
		Literal{"background: #0f0f0f;", "background: var(--color-light-bg);"},
		Literal{"background: #111;", "background: var(--color-light-bg);"},

		Literal{"1px solid rgba(255, 255, 255, 0.06)", "var(--glass-border)"},
		Literal{"1px solid rgba(255, 255, 255, 0.04)", "var(--glass-border)"},
		Literal{"1px solid rgba(255, 255, 255, 0.08)", "var(--glass-border)"},

		// text
		Literal{"color: #fff;", "color: var(--color-text-main);"},
		Literal{"color: #e4e4e7;", "color: var(--color-text-main);"},
		Literal{"color: #a1a1aa;", "color: var(--color-text-muted);"},
		Literal{"color: #71717a;", "color: var(--color-text-muted);"},
		Literal{"color: #52525b;", "color: var(--color-text-muted);"},
	}
}
