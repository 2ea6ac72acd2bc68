// Copyright © 2026 The chill-lsp authors

package analysis

import (
	"sort"
	"strings"
)

// GlobalScope is the sentinel scope name for entities declared outside any
// module, procedure, or process.
const GlobalScope = "GLOBAL"

// Kind is a closed variant over the entity kinds tracked by a Model, plus
// the two static name classes (reserved words and predefined names) that
// appear in completion results.
type Kind int

const (
	KindKeyword Kind = iota
	KindPredefined
	KindDeclaration
	KindMode
	KindSynonym
	KindProcedure
	KindProcess
	KindModule
	KindSignal
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindPredefined:
		return "builtin"
	case KindDeclaration:
		return "DCL"
	case KindMode:
		return "MODE"
	case KindSynonym:
		return "SYN"
	case KindProcedure:
		return "PROC"
	case KindProcess:
		return "PROCESS"
	case KindModule:
		return "MODULE"
	case KindSignal:
		return "SIGNAL"
	default:
		return "unknown"
	}
}

// Declaration is a DCL variable declaration.
type Declaration struct {
	Name     string
	Mode     ModeKind
	ModeName string // user-defined mode name, "" for builtin modes
	Init     string // initializer text, unparsed
	Static   bool
	Dynamic  bool
	Loc      bool
	Read     bool
	Line     int // 1-based
	ColStart int // 0-based column span of the name
	ColEnd   int
	Scope    string // enclosing scope name, GlobalScope if none
}

// Mode is a NEWMODE or SYNMODE definition.
type Mode struct {
	Name       string
	Base       ModeKind
	EnumValues []string // for SET
	RangeLow   int      // for RANGE
	RangeHigh  int
	HasRange   bool
	Fields     []StructField // for STRUCT
	Line       int
}

// StructField is one field of a STRUCT mode. The mode is the last
// whitespace-delimited token of the field fragment; multi-word modes are
// not reliably separable under this rule and are deliberately left as-is.
type StructField struct {
	Name string
	Mode ModeKind
}

// Synonym is a SYN named constant. The value is kept as unparsed text.
type Synonym struct {
	Name     string
	Value    string
	ModeName string // optional declared mode
	Line     int
}

// Param is one procedure, process, or signal parameter.
type Param struct {
	Name      string
	Mode      string
	Direction string // IN, OUT, or INOUT
}

// Procedure is a PROC definition with its body extent.
type Procedure struct {
	Name      string
	Params    []Param
	Returns   string // return mode text, "" if none
	General   bool
	LineStart int
	LineEnd   int
}

// Process is a PROCESS definition. The body is scanned the same way as a
// procedure body.
type Process struct {
	Name      string
	Params    []Param
	LineStart int
	LineEnd   int
}

// Module sets the ambient scope name for everything lexically inside it.
type Module struct {
	Name      string
	Spec      bool
	LineStart int
	LineEnd   int
	Grants    []string
	Seizes    []string
}

// SignalDef is a SIGNAL definition. Signals have no body.
type SignalDef struct {
	Name   string
	Params []Param // direction is not meaningful for signals
	Line   int
}

// SymbolInfo is the flattened record used for outline building.
type SymbolInfo struct {
	Name    string
	Kind    Kind
	Line    int
	LineEnd int
	Detail  string
}

// Model is the symbol table built from one parse of one document. Names
// are case-insensitive; lookup keys are canonicalized to upper case while
// entity names keep their source spelling. Insertion order is recorded so
// enumeration follows source-declaration order.
type Model struct {
	decls     map[string]*Declaration
	modes     map[string]*Mode
	syns      map[string]*Synonym
	procs     map[string]*Procedure
	processes map[string]*Process
	modules   map[string]*Module
	signals   map[string]*SignalDef

	declOrder    []string // bare names only, no scope-qualified keys
	modeOrder    []string
	synOrder     []string
	procOrder    []string
	processOrder []string
	moduleOrder  []string
	signalOrder  []string
}

// NewModel creates an empty symbol table.
func NewModel() *Model {
	return &Model{
		decls:     make(map[string]*Declaration),
		modes:     make(map[string]*Mode),
		syns:      make(map[string]*Synonym),
		procs:     make(map[string]*Procedure),
		processes: make(map[string]*Process),
		modules:   make(map[string]*Module),
		signals:   make(map[string]*SignalDef),
	}
}

func key(name string) string { return strings.ToUpper(name) }

// scopedKey builds the lookup key for a scope-qualified declaration name.
func scopedKey(scope, name string) string {
	return strings.ToUpper(scope) + "." + strings.ToUpper(name)
}

// AddDeclaration stores a declaration under its bare name and, when the
// declaration was parsed inside a named scope, additionally under
// "scope.name". The bare slot is last-write-wins.
func (m *Model) AddDeclaration(d *Declaration) {
	k := key(d.Name)
	if _, seen := m.decls[k]; !seen {
		m.declOrder = append(m.declOrder, d.Name)
	}
	m.decls[k] = d
	if d.Scope != "" && d.Scope != GlobalScope {
		m.decls[scopedKey(d.Scope, d.Name)] = d
	}
}

// Declaration looks up a declaration by name. The name may be bare or
// scope-qualified ("scope.name"); both are matched case-insensitively.
func (m *Model) Declaration(name string) *Declaration {
	return m.decls[key(name)]
}

func (m *Model) AddMode(md *Mode) {
	k := key(md.Name)
	if _, seen := m.modes[k]; !seen {
		m.modeOrder = append(m.modeOrder, md.Name)
	}
	m.modes[k] = md
}

func (m *Model) Mode(name string) *Mode { return m.modes[key(name)] }

func (m *Model) AddSynonym(s *Synonym) {
	k := key(s.Name)
	if _, seen := m.syns[k]; !seen {
		m.synOrder = append(m.synOrder, s.Name)
	}
	m.syns[k] = s
}

func (m *Model) Synonym(name string) *Synonym { return m.syns[key(name)] }

func (m *Model) AddProcedure(p *Procedure) {
	k := key(p.Name)
	if _, seen := m.procs[k]; !seen {
		m.procOrder = append(m.procOrder, p.Name)
	}
	m.procs[k] = p
}

func (m *Model) Procedure(name string) *Procedure { return m.procs[key(name)] }

func (m *Model) AddProcess(p *Process) {
	k := key(p.Name)
	if _, seen := m.processes[k]; !seen {
		m.processOrder = append(m.processOrder, p.Name)
	}
	m.processes[k] = p
}

func (m *Model) Process(name string) *Process { return m.processes[key(name)] }

func (m *Model) AddModule(mod *Module) {
	k := key(mod.Name)
	if _, seen := m.modules[k]; !seen {
		m.moduleOrder = append(m.moduleOrder, mod.Name)
	}
	m.modules[k] = mod
}

func (m *Model) Module(name string) *Module { return m.modules[key(name)] }

func (m *Model) AddSignal(s *SignalDef) {
	k := key(s.Name)
	if _, seen := m.signals[k]; !seen {
		m.signalOrder = append(m.signalOrder, s.Name)
	}
	m.signals[k] = s
}

func (m *Model) Signal(name string) *SignalDef { return m.signals[key(name)] }

// Names enumerates the defined names of one kind in source-declaration
// order. Scope-qualified duplicate keys are never included.
func (m *Model) Names(kind Kind) []string {
	var order []string
	switch kind {
	case KindDeclaration:
		order = m.declOrder
	case KindMode:
		order = m.modeOrder
	case KindSynonym:
		order = m.synOrder
	case KindProcedure:
		order = m.procOrder
	case KindProcess:
		order = m.processOrder
	case KindModule:
		order = m.moduleOrder
	case KindSignal:
		order = m.signalOrder
	}
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// AllSymbols flattens every entity to an outline record, sorted by start
// line. Declarations appear once under their bare name; scope-qualified
// duplicates are excluded.
func (m *Model) AllSymbols() []SymbolInfo {
	var syms []SymbolInfo

	for _, name := range m.moduleOrder {
		mod := m.modules[key(name)]
		end := mod.LineEnd
		if end == 0 {
			end = mod.LineStart
		}
		syms = append(syms, SymbolInfo{name, KindModule, mod.LineStart, end, "MODULE"})
	}
	for _, name := range m.modeOrder {
		md := m.modes[key(name)]
		syms = append(syms, SymbolInfo{name, KindMode, md.Line, md.Line, "NEWMODE " + md.Base.String()})
	}
	for _, name := range m.declOrder {
		d := m.decls[key(name)]
		syms = append(syms, SymbolInfo{name, KindDeclaration, d.Line, d.Line, "DCL " + d.Mode.String()})
	}
	for _, name := range m.synOrder {
		s := m.syns[key(name)]
		syms = append(syms, SymbolInfo{name, KindSynonym, s.Line, s.Line, "SYN = " + s.Value})
	}
	for _, name := range m.procOrder {
		p := m.procs[key(name)]
		end := p.LineEnd
		if end == 0 {
			end = p.LineStart
		}
		syms = append(syms, SymbolInfo{name, KindProcedure, p.LineStart, end, "PROC(" + paramSignature(p.Params) + ")"})
	}
	for _, name := range m.processOrder {
		p := m.processes[key(name)]
		end := p.LineEnd
		if end == 0 {
			end = p.LineStart
		}
		syms = append(syms, SymbolInfo{name, KindProcess, p.LineStart, end, "PROCESS"})
	}
	for _, name := range m.signalOrder {
		s := m.signals[key(name)]
		syms = append(syms, SymbolInfo{name, KindSignal, s.Line, s.Line, "SIGNAL"})
	}

	sort.SliceStable(syms, func(i, j int) bool { return syms[i].Line < syms[j].Line })
	return syms
}

// paramSignature renders parameters as "name mode, name mode" for outline
// and completion detail strings.
func paramSignature(params []Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+" "+p.Mode)
	}
	return strings.Join(parts, ", ")
}

// paramSignatureFull renders parameters as "name DIRECTION mode" for hover
// text.
func paramSignatureFull(params []Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+" "+p.Direction+" "+p.Mode)
	}
	return strings.Join(parts, ", ")
}
