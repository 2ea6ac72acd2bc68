// Copyright © 2026 The chill-lsp authors

package analysis

import (
	"strconv"
	"strings"
)

// scanLine is one comment-free source line prepared for classification.
type scanLine struct {
	num   int    // 1-based line number
	text  string // trimmed, original case
	upper string // trimmed, upper case
	first string // first whitespace-delimited token of upper, "" if blank
}

// lineClass pairs a predicate with an extractor. Classification walks the
// ordered list and fires the first match only.
type lineClass struct {
	match   func(ln scanLine) bool
	extract func(sc *scanner, ln scanLine)
}

// lineClasses is the fixed classifier order: module, mode definition,
// declaration, synonym, procedure, process, signal. Lines matching none of
// these are not modeled (statement-level code is out of scope), though they
// still participate in nesting-depth tracking.
var lineClasses = []lineClass{
	{matchModule, (*scanner).scanModule},
	{matchNewmode, (*scanner).scanNewmode},
	{matchDcl, (*scanner).scanDcl},
	{matchSyn, (*scanner).scanSyn},
	{matchProc, (*scanner).scanProc},
	{matchProcess, (*scanner).scanProcess},
	{matchSignal, (*scanner).scanSignal},
}

func matchModule(ln scanLine) bool {
	if ln.first == "MODULE" {
		return true
	}
	// "SPEC MODULE name" declares a specification module.
	return ln.first == "SPEC" && firstToken(ln.upper[len("SPEC"):]) == "MODULE"
}
func matchNewmode(ln scanLine) bool { return ln.first == "NEWMODE" || ln.first == "SYNMODE" }
func matchDcl(ln scanLine) bool     { return ln.first == "DCL" }
func matchSyn(ln scanLine) bool     { return ln.first == "SYN" }
func matchSignal(ln scanLine) bool  { return ln.first == "SIGNAL" }

func matchProc(ln scanLine) bool {
	_, kw, _, ok := labeledHeader(ln.text)
	return ok && kw == "PROC"
}

func matchProcess(ln scanLine) bool {
	_, kw, _, ok := labeledHeader(ln.text)
	return ok && kw == "PROCESS"
}

// scopeFrame records a name that qualifies declarations parsed inside it,
// together with the nesting level at which the construct opened. Frames are
// popped when an END returns the scanner to that level.
type scopeFrame struct {
	name   string
	level  int
	module *Module // non-nil for module frames, to fix the body end line
}

// scanner holds the single pass's state: the cleaned line sequence, the
// model under construction, and an explicit scope context (no state is
// shared between parses).
type scanner struct {
	model  *Model
	lines  []string
	frames []scopeFrame
	level  int
}

func newScanner(source string) *scanner {
	return &scanner{
		model: NewModel(),
		lines: strings.Split(StripComments(source), "\n"),
	}
}

func (sc *scanner) run() {
	for i, raw := range sc.lines {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		ln := scanLine{num: i + 1, text: text, upper: strings.ToUpper(text)}
		ln.first = firstToken(ln.upper)

		matched := false
		for _, c := range lineClasses {
			if c.match(ln) {
				c.extract(sc, ln)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Unclassified lines still open and close nesting levels.
		switch {
		case strings.HasPrefix(ln.upper, "BEGIN"):
			sc.level++
		case strings.HasPrefix(ln.upper, "END"):
			sc.closeScope(ln.num)
		default:
			if _, kw, _, ok := labeledHeader(ln.text); ok && (kw == "MODULE" || kw == "REGION") {
				sc.level++
			}
		}
	}
}

// currentScope returns the innermost qualification name, or GlobalScope.
func (sc *scanner) currentScope() string {
	if len(sc.frames) == 0 {
		return GlobalScope
	}
	return sc.frames[len(sc.frames)-1].name
}

// openScope pushes a qualification frame and enters the construct's body.
func (sc *scanner) openScope(name string, module *Module) {
	sc.frames = append(sc.frames, scopeFrame{name: name, level: sc.level, module: module})
	sc.level++
}

// closeScope handles a line beginning with END: it drops one nesting level
// and pops every frame whose construct closed at that level.
func (sc *scanner) closeScope(lineNum int) {
	if sc.level > 0 {
		sc.level--
	}
	for len(sc.frames) > 0 && sc.frames[len(sc.frames)-1].level >= sc.level {
		top := sc.frames[len(sc.frames)-1]
		if top.module != nil && top.module.LineEnd == 0 {
			top.module.LineEnd = lineNum
		}
		sc.frames = sc.frames[:len(sc.frames)-1]
	}
}

// --- extractors ---

// scanModule handles "MODULE name;" and "SPEC MODULE name;". The module
// becomes the ambient scope until its END.
func (sc *scanner) scanModule(ln scanLine) {
	fields := strings.Fields(ln.text)
	nameIdx := 1
	if strings.ToUpper(fields[0]) == "SPEC" {
		nameIdx = 2
	}
	if len(fields) <= nameIdx {
		return
	}
	name := leadingIdent(fields[nameIdx])
	if name == "" {
		return
	}
	mod := &Module{
		Name:      name,
		Spec:      wordInLine(ln.upper, "SPEC"),
		LineStart: ln.num,
	}
	sc.model.AddModule(mod)
	sc.openScope(name, mod)
}

// scanNewmode handles "NEWMODE name = definition;" and SYNMODE alike. The
// right-hand side is classified by the mode-inference cascade and then
// sub-matched for enumeration values, range bounds, or struct fields.
func (sc *scanner) scanNewmode(ln scanLine) {
	rest := strings.TrimSpace(ln.text[len(ln.first):])
	eq := strings.Index(rest, "=")
	if eq < 0 {
		return
	}
	name := strings.TrimSpace(rest[:eq])
	if !isIdent(name) {
		return
	}
	rhs := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[eq+1:]), ";"))
	if rhs == "" {
		return
	}

	mode := &Mode{
		Name: name,
		Base: inferBaseMode(rhs),
		Line: ln.num,
	}

	upperRHS := strings.ToUpper(rhs)
	switch {
	case strings.HasPrefix(upperRHS, "SET"):
		if inner, ok := parenContents(rhs); ok {
			for _, v := range strings.Split(inner, ",") {
				if v = strings.TrimSpace(v); v != "" {
					mode.EnumValues = append(mode.EnumValues, v)
				}
			}
		}
	case strings.HasPrefix(upperRHS, "RANGE"):
		if inner, ok := parenContents(rhs); ok {
			parts := strings.SplitN(inner, ":", 2)
			if len(parts) == 2 {
				low, errLow := strconv.Atoi(strings.TrimSpace(parts[0]))
				high, errHigh := strconv.Atoi(strings.TrimSpace(parts[1]))
				if errLow == nil && errHigh == nil {
					mode.RangeLow = low
					mode.RangeHigh = high
					mode.HasRange = true
				}
			}
		}
	case strings.HasPrefix(upperRHS, "STRUCT"):
		if inner, ok := outerParenContents(rhs); ok {
			// Field heuristic: first token is the name, last token is the
			// mode. Multi-word modes are not separable under this rule.
			for _, f := range strings.Split(inner, ",") {
				parts := strings.Fields(f)
				if len(parts) >= 2 {
					mode.Fields = append(mode.Fields, StructField{
						Name: parts[0],
						Mode: modeKindFromName(parts[len(parts)-1]),
					})
				}
			}
		}
	}

	sc.model.AddMode(mode)
}

// dclQualifiers are storage/access keywords recorded as flags rather than
// as part of the mode text.
var dclQualifiers = map[string]bool{
	"STATIC": true, "DYNAMIC": true, "LOC": true, "READ": true,
}

// scanDcl handles "DCL name mode [:= init];".
func (sc *scanner) scanDcl(ln scanLine) {
	rest := strings.TrimSpace(ln.text[len(ln.first):])

	var init string
	if idx := strings.Index(rest, ":="); idx >= 0 {
		init = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[idx+2:]), ";"))
		rest = rest[:idx]
	}
	if idx := strings.IndexAny(rest, ":;"); idx >= 0 {
		rest = rest[:idx]
	}

	tokens := strings.Fields(rest)
	if len(tokens) < 2 {
		return
	}
	name := tokens[0]
	if !isIdent(name) {
		return
	}

	d := &Declaration{
		Name:  name,
		Init:  init,
		Line:  ln.num,
		Scope: sc.currentScope(),
	}
	var modeTokens []string
	for _, tok := range tokens[1:] {
		switch strings.ToUpper(tok) {
		case "STATIC":
			d.Static = true
		case "DYNAMIC":
			d.Dynamic = true
		case "LOC":
			d.Loc = true
		case "READ":
			d.Read = true
		default:
			modeTokens = append(modeTokens, tok)
		}
	}
	modeText := strings.Join(modeTokens, " ")
	d.Mode = inferBaseMode(modeText)
	if modeText != "" && !isBuiltinModeName(modeText) {
		d.ModeName = modeText
	}

	raw := sc.lines[ln.num-1]
	if col := strings.Index(strings.ToUpper(raw), strings.ToUpper(name)); col >= 0 {
		d.ColStart = col
		d.ColEnd = col + len(name)
	}

	sc.model.AddDeclaration(d)
}

// scanSyn handles "SYN name [mode] = value;". The value text is kept
// unparsed.
func (sc *scanner) scanSyn(ln scanLine) {
	rest := strings.TrimSpace(ln.text[len(ln.first):])
	eq := strings.Index(rest, "=")
	if eq < 0 {
		return
	}
	left := strings.Fields(rest[:eq])
	value := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[eq+1:]), ";"))

	syn := &Synonym{Value: value, Line: ln.num}
	switch len(left) {
	case 1:
		syn.Name = left[0]
	case 2:
		syn.Name = left[0]
		syn.ModeName = left[1]
	default:
		return
	}
	if !isIdent(syn.Name) {
		return
	}
	sc.model.AddSynonym(syn)
}

// scanProc handles "name : PROC (params) [RETURNS(mode)] [GENERAL];". The
// body extent is resolved with the nesting-depth counter; an unterminated
// body ends at the header line.
func (sc *scanner) scanProc(ln scanLine) {
	name, _, rest, ok := labeledHeader(ln.text)
	if !ok {
		return
	}
	proc := &Procedure{
		Name:      name,
		General:   wordInLine(ln.upper, "GENERAL"),
		LineStart: ln.num,
	}

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "(") {
		if inner, ok := parenContents(rest); ok {
			proc.Params = parseParams(inner)
		}
	}
	if idx := strings.Index(strings.ToUpper(rest), "RETURNS"); idx >= 0 {
		if inner, ok := parenContents(rest[idx:]); ok {
			proc.Returns = strings.TrimSpace(inner)
		}
	}

	proc.LineEnd = sc.findEnd(ln.num - 1)
	sc.model.AddProcedure(proc)
	sc.openScope(name, nil)
}

// scanProcess handles "name : PROCESS (params);" symmetrically to
// scanProc, without a return mode.
func (sc *scanner) scanProcess(ln scanLine) {
	name, _, rest, ok := labeledHeader(ln.text)
	if !ok {
		return
	}
	proc := &Process{Name: name, LineStart: ln.num}

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "(") {
		if inner, ok := parenContents(rest); ok {
			proc.Params = parseParams(inner)
		}
	}

	proc.LineEnd = sc.findEnd(ln.num - 1)
	sc.model.AddProcess(proc)
	sc.openScope(name, nil)
}

// scanSignal handles "SIGNAL name [(name mode, ...)];".
func (sc *scanner) scanSignal(ln scanLine) {
	fields := strings.Fields(ln.text)
	if len(fields) < 2 {
		return
	}
	name := leadingIdent(fields[1])
	if name == "" {
		return
	}
	sig := &SignalDef{Name: name, Line: ln.num}

	if inner, ok := parenContents(ln.text); ok {
		for _, part := range splitTopLevel(inner, ',') {
			parts := strings.Fields(part)
			if len(parts) >= 2 {
				sig.Params = append(sig.Params, Param{
					Name: parts[0],
					Mode: parts[len(parts)-1],
				})
			}
		}
	}

	sc.model.AddSignal(sig)
}

// findEnd locates the matching END for the construct whose header is at
// headerIdx (0-based). It returns the 1-based line of the END, or the
// header line itself when no match exists before input ends.
func (sc *scanner) findEnd(headerIdx int) int {
	depth := 1
	for i := headerIdx + 1; i < len(sc.lines); i++ {
		upper := strings.ToUpper(strings.TrimSpace(sc.lines[i]))
		switch {
		case isNestedHeader(upper):
			depth++
		case firstToken(upper) == "MODULE" || strings.HasPrefix(upper, "BEGIN"):
			depth++
		case strings.HasPrefix(upper, "END"):
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return headerIdx + 1
}

// isNestedHeader reports whether a line opens a nested construct that will
// consume an END of its own.
func isNestedHeader(upper string) bool {
	_, kw, _, ok := labeledHeader(upper)
	if !ok {
		return false
	}
	switch kw {
	case "PROC", "PROCESS", "MODULE", "REGION":
		return true
	}
	return false
}

// parseParams splits a parameter list on top-level commas and applies the
// name/direction/mode convention: a whole-token direction keyword (INOUT
// over OUT over IN, default IN) is stripped, then the first remaining
// token is the name and the last is the mode. A single remaining token has
// unknown mode.
func parseParams(inner string) []Param {
	var params []Param
	for _, part := range splitTopLevel(inner, ',') {
		direction := ""
		var kept []string
		for _, tok := range strings.Fields(part) {
			switch strings.ToUpper(tok) {
			case "INOUT":
				direction = "INOUT"
			case "OUT":
				if direction != "INOUT" {
					direction = "OUT"
				}
			case "IN":
				if direction == "" {
					direction = "IN"
				}
			default:
				kept = append(kept, tok)
			}
		}
		if direction == "" {
			direction = "IN"
		}
		switch {
		case len(kept) >= 2:
			params = append(params, Param{Name: kept[0], Mode: kept[len(kept)-1], Direction: direction})
		case len(kept) == 1:
			params = append(params, Param{Name: kept[0], Mode: "UNKNOWN", Direction: direction})
		}
	}
	return params
}

// --- lexical helpers ---

// labeledHeader splits "name : KEYWORD rest" headers. It returns the label
// (source casing), the upper-cased keyword, and the text after the keyword.
func labeledHeader(text string) (name, keyword, rest string, ok bool) {
	colon := strings.Index(text, ":")
	if colon < 0 {
		return "", "", "", false
	}
	// ":=" is assignment, not a label.
	if colon+1 < len(text) && text[colon+1] == '=' {
		return "", "", "", false
	}
	name = strings.TrimSpace(text[:colon])
	if !isIdent(name) {
		return "", "", "", false
	}
	right := strings.TrimSpace(text[colon+1:])
	// The keyword token may run into punctuation, e.g. "PROC(x INT)".
	keyword = leadingIdent(strings.ToUpper(right))
	if keyword == "" {
		return "", "", "", false
	}
	rest = right[len(keyword):]
	return name, keyword, rest, true
}

// firstToken returns the first whitespace-delimited token of s.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// isIdent reports whether s is a CHILL identifier: a letter or underscore
// followed by letters, digits, or underscores.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		if i > 0 && c >= '0' && c <= '9' {
			continue
		}
		return false
	}
	return true
}

// leadingIdent returns the longest identifier prefix of s, stripping
// trailing punctuation like ";" or "(".
func leadingIdent(s string) string {
	end := 0
	for end < len(s) {
		c := s[end]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(end > 0 && c >= '0' && c <= '9') {
			end++
			continue
		}
		break
	}
	return s[:end]
}

// parenContents returns the text between the first "(" of s and its
// balancing ")", so parameter lists may themselves contain parentheses.
func parenContents(s string) (string, bool) {
	open := strings.Index(s, "(")
	if open < 0 {
		return "", false
	}
	depth := 1
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[open+1 : i], true
			}
		}
	}
	return "", false
}

// outerParenContents returns the text between the first "(" and the last
// ")" of s, for struct field lists that contain nested parentheses.
func outerParenContents(s string) (string, bool) {
	open := strings.Index(s, "(")
	closing := strings.LastIndex(s, ")")
	if open < 0 || closing <= open {
		return "", false
	}
	return s[open+1 : closing], true
}

// splitTopLevel splits s on sep occurrences outside parentheses.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// wordInLine reports whether w occurs in upper as a whole word.
func wordInLine(upper, w string) bool {
	for start := 0; ; {
		idx := strings.Index(upper[start:], w)
		if idx < 0 {
			return false
		}
		pos := start + idx
		end := pos + len(w)
		leftOK := pos == 0 || !isWordChar(upper[pos-1])
		rightOK := end >= len(upper) || !isWordChar(upper[end])
		if leftOK && rightOK {
			return true
		}
		start = pos + 1
	}
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
