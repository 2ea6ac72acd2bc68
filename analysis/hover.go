// Copyright © 2026 The chill-lsp authors

package analysis

import (
	"fmt"
	"strings"
)

// Hover returns formatted markdown describing a bare word, checking in
// order: reserved word, predefined name, declaration, mode, procedure,
// synonym. The empty string means no information. Keyword and predefined
// lookups are static, so hover works even on an empty model.
func Hover(m *Model, word string) string {
	if word == "" {
		return ""
	}

	if IsReserved(word) {
		if doc := KeywordDoc(word); doc != "" {
			return fmt.Sprintf("**%s** - %s", word, doc)
		}
		return fmt.Sprintf("**%s** - CHILL reserved word", word)
	}

	if IsPredefined(word) {
		if doc := KeywordDoc(word); doc != "" {
			return fmt.Sprintf("**%s** - %s", word, doc)
		}
		return fmt.Sprintf("**%s** - CHILL predefined name", word)
	}

	if d := m.Declaration(word); d != nil {
		return hoverDeclaration(word, d)
	}
	if md := m.Mode(word); md != nil {
		return hoverMode(word, md)
	}
	if p := m.Procedure(word); p != nil {
		return hoverProcedure(word, p)
	}
	if s := m.Synonym(word); s != nil {
		return fmt.Sprintf("**%s** - SYN = %s", word, s.Value)
	}
	return ""
}

func hoverDeclaration(word string, d *Declaration) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** - DCL %s", word, d.Mode)
	if d.ModeName != "" {
		fmt.Fprintf(&sb, " (%s)", d.ModeName)
	}
	if d.Init != "" {
		fmt.Fprintf(&sb, "\n\nInitial value: %s", d.Init)
	}
	return sb.String()
}

func hoverMode(word string, md *Mode) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** - NEWMODE %s", word, md.Base)
	if len(md.EnumValues) > 0 {
		fmt.Fprintf(&sb, "\n\nValues: %s", strings.Join(md.EnumValues, ", "))
	}
	if md.HasRange {
		fmt.Fprintf(&sb, "\n\nRange: %d:%d", md.RangeLow, md.RangeHigh)
	}
	if len(md.Fields) > 0 {
		names := make([]string, len(md.Fields))
		for i, f := range md.Fields {
			names[i] = f.Name
		}
		fmt.Fprintf(&sb, "\n\nFields: %s", strings.Join(names, ", "))
	}
	return sb.String()
}

func hoverProcedure(word string, p *Procedure) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** - PROC(%s)", word, paramSignatureFull(p.Params))
	if p.Returns != "" {
		fmt.Fprintf(&sb, " RETURNS(%s)", p.Returns)
	}
	return sb.String()
}
