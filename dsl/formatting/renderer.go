// Package formatting renders registered dbuf definitions back to canonical source text.
package formatting

import (
	"sort"
	"strings"

	"github.com/satishbabariya/dbuf-go/dsl/diagnostics"
	"github.com/satishbabariya/dbuf-go/dsl/ir"
)

// Renderer renders a frozen schema to dbuf source.
type Renderer struct {
	builder strings.Builder
	indent  string
}

// NewRenderer creates a renderer indenting bodies by indentWidth spaces.
func NewRenderer(indentWidth int) *Renderer {
	if indentWidth <= 0 {
		indentWidth = 2
	}
	return &Renderer{indent: strings.Repeat(" ", indentWidth)}
}

type top struct {
	span    diagnostics.Span
	message *ir.Message
	enum    *ir.Enum
}

// Render renders every definition of s. Definitions are emitted in source
// order (file, then offset), which interleaves messages and enums the way
// they were written.
func (r *Renderer) Render(s *ir.Schema) string {
	r.builder.Reset()

	messages := s.Messages()
	enums := s.Enums()
	tops := make([]top, 0, len(messages)+len(enums))
	for i := range messages {
		tops = append(tops, top{span: messages[i].Span, message: &messages[i]})
	}
	for i := range enums {
		tops = append(tops, top{span: enums[i].Span, enum: &enums[i]})
	}
	sort.SliceStable(tops, func(i, j int) bool {
		if tops[i].span.FileID != tops[j].span.FileID {
			return tops[i].span.FileID < tops[j].span.FileID
		}
		return tops[i].span.Start < tops[j].span.Start
	})

	for i, t := range tops {
		if i > 0 {
			r.builder.WriteString("\n")
		}
		if t.message != nil {
			r.renderMessage(*t.message)
		} else {
			r.renderEnum(*t.enum)
		}
	}
	return r.builder.String()
}

func (r *Renderer) renderMessage(m ir.Message) {
	r.builder.WriteString("message ")
	r.builder.WriteString(m.Name)
	r.renderDependencies(m.Dependencies)
	if len(m.Fields) == 0 {
		r.builder.WriteString(" {}\n")
		return
	}
	r.builder.WriteString(" {\n")
	r.renderFields(m.Fields, r.indent)
	r.builder.WriteString("}\n")
}

func (r *Renderer) renderEnum(e ir.Enum) {
	r.builder.WriteString("enum ")
	r.builder.WriteString(e.Name)
	r.renderDependencies(e.Dependencies)

	simple := true
	for _, v := range e.Variants {
		if len(v.Fields) > 0 {
			simple = false
			break
		}
	}
	if simple {
		names := make([]string, len(e.Variants))
		for i, v := range e.Variants {
			names[i] = v.Name
		}
		if len(names) == 0 {
			r.builder.WriteString(" {}\n")
			return
		}
		r.builder.WriteString(" { ")
		r.builder.WriteString(strings.Join(names, ", "))
		r.builder.WriteString(" }\n")
		return
	}

	r.builder.WriteString(" {\n")
	for i, v := range e.Variants {
		r.builder.WriteString(r.indent)
		r.builder.WriteString(v.Name)
		if len(v.Fields) > 0 {
			r.builder.WriteString(" {\n")
			r.renderFields(v.Fields, r.indent+r.indent)
			r.builder.WriteString(r.indent)
			r.builder.WriteString("}")
		}
		if i < len(e.Variants)-1 {
			r.builder.WriteString(",")
		}
		r.builder.WriteString("\n")
	}
	r.builder.WriteString("}\n")
}

func (r *Renderer) renderDependencies(deps []ir.Field) {
	for _, d := range deps {
		r.builder.WriteString(" (")
		r.builder.WriteString(d.Name)
		r.builder.WriteString(" ")
		r.builder.WriteString(d.Type.String())
		r.builder.WriteString(")")
	}
}

// renderFields writes one field per line with the type column aligned.
func (r *Renderer) renderFields(fields []ir.Field, indent string) {
	width := 0
	for _, f := range fields {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}
	for _, f := range fields {
		r.builder.WriteString(indent)
		r.builder.WriteString(f.Name)
		r.builder.WriteString(strings.Repeat(" ", width-len(f.Name)+1))
		r.builder.WriteString(f.Type.String())
		r.builder.WriteString(";\n")
	}
}
