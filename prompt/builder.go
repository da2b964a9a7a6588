package prompt

import (
	"fmt"
	"strings"
)

// Builder assembles multi-part prompts line by line.
type Builder struct {
	parts []string
}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{parts: make([]string, 0)}
}

// Add adds a part to the prompt
func (b *Builder) Add(part string) *Builder {
	b.parts = append(b.parts, part)
	return b
}

// AddFormat adds a formatted part to the prompt
func (b *Builder) AddFormat(format string, args ...any) *Builder {
	b.parts = append(b.parts, fmt.Sprintf(format, args...))
	return b
}

// Build returns the final prompt with parts joined by newlines.
func (b *Builder) Build() string {
	return strings.Join(b.parts, "\n")
}
