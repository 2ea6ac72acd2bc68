// Copyright © 2026 The chill-lsp authors

package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testProgram is a small but representative CHILL module exercising every
// construct the scanner models.
const testProgram = `MODULE example;

NEWMODE counter = RANGE(0:65535);
NEWMODE status = SET(idle, active, error);
NEWMODE point = STRUCT(x INT, y INT);

SYN max_size = 100;

DCL count counter := 0;
DCL state status := idle;
DCL position point;

handler: PROC(input INT) RETURNS(INT);
  DCL result INT;
  result := input * 2;
  RETURN result;
END handler;

worker: PROCESS(id INT);
  DO WHILE TRUE;
    DELAY 1 SECONDS;
  OD;
END worker;

SIGNAL data_ready(buffer_id INT, size INT);

END example;
`

func TestParse_Module(t *testing.T) {
	m := Parse(testProgram)
	mod := m.Module("example")
	require.NotNil(t, mod)
	assert.Equal(t, 1, mod.LineStart)
	assert.Equal(t, 27, mod.LineEnd)
	assert.False(t, mod.Spec)
}

func TestParse_SpecModule(t *testing.T) {
	m := Parse("MODULE iface SPEC;\nEND iface;")
	mod := m.Module("iface")
	require.NotNil(t, mod)
	assert.True(t, mod.Spec)
}

func TestParse_SpecModulePrefixForm(t *testing.T) {
	m := Parse("SPEC MODULE iface;\nEND iface;")
	mod := m.Module("iface")
	require.NotNil(t, mod)
	assert.True(t, mod.Spec)
	assert.Equal(t, 1, mod.LineStart)
	assert.Equal(t, 2, mod.LineEnd)
}

func TestParse_RangeMode(t *testing.T) {
	m := Parse("\n\nNEWMODE counter = RANGE(0:65535);")
	md := m.Mode("counter")
	require.NotNil(t, md)
	assert.Equal(t, ModeRange, md.Base)
	assert.True(t, md.HasRange)
	assert.Equal(t, 0, md.RangeLow)
	assert.Equal(t, 65535, md.RangeHigh)
	assert.Equal(t, 3, md.Line)
}

func TestParse_NegativeRange(t *testing.T) {
	m := Parse("NEWMODE temp = RANGE(-40:125);")
	md := m.Mode("temp")
	require.NotNil(t, md)
	assert.Equal(t, -40, md.RangeLow)
	assert.Equal(t, 125, md.RangeHigh)
}

func TestParse_SetMode(t *testing.T) {
	m := Parse(testProgram)
	md := m.Mode("status")
	require.NotNil(t, md)
	assert.Equal(t, ModeSet, md.Base)
	assert.Equal(t, []string{"idle", "active", "error"}, md.EnumValues)
}

func TestParse_StructMode(t *testing.T) {
	m := Parse(testProgram)
	md := m.Mode("point")
	require.NotNil(t, md)
	assert.Equal(t, ModeStruct, md.Base)
	require.Len(t, md.Fields, 2)
	assert.Equal(t, "x", md.Fields[0].Name)
	assert.Equal(t, ModeInt, md.Fields[0].Mode)
	assert.Equal(t, "y", md.Fields[1].Name)
}

func TestParse_SynmodeAlias(t *testing.T) {
	m := Parse("SYNMODE small = BYTE;")
	md := m.Mode("small")
	require.NotNil(t, md)
	assert.Equal(t, ModeInt, md.Base, "BYTE is an implementation alias for INT")
}

func TestParse_UserDefinedMode(t *testing.T) {
	m := Parse("NEWMODE alias = widget;")
	md := m.Mode("alias")
	require.NotNil(t, md)
	assert.Equal(t, ModeUserDefined, md.Base)
}

func TestParse_Declaration(t *testing.T) {
	m := Parse(testProgram)

	d := m.Declaration("count")
	require.NotNil(t, d)
	assert.Equal(t, ModeUserDefined, d.Mode)
	assert.Equal(t, "counter", d.ModeName)
	assert.Equal(t, "0", d.Init)
	assert.Equal(t, 9, d.Line)
	assert.Equal(t, "example", d.Scope)

	pos := m.Declaration("position")
	require.NotNil(t, pos)
	assert.Empty(t, pos.Init)
}

func TestParse_DeclarationQualifiers(t *testing.T) {
	m := Parse("DCL buf STATIC CHARS(80);\nDCL tmp LOC READ INT;")

	buf := m.Declaration("buf")
	require.NotNil(t, buf)
	assert.True(t, buf.Static)
	assert.Equal(t, ModeChars, buf.Mode)

	tmp := m.Declaration("tmp")
	require.NotNil(t, tmp)
	assert.True(t, tmp.Loc)
	assert.True(t, tmp.Read)
	assert.False(t, tmp.Static)
	assert.Equal(t, ModeInt, tmp.Mode)
	assert.Empty(t, tmp.ModeName, "INT is builtin, not a user mode name")
}

func TestParse_DeclarationColumns(t *testing.T) {
	m := Parse("  DCL count INT;")
	d := m.Declaration("count")
	require.NotNil(t, d)
	assert.Equal(t, 6, d.ColStart)
	assert.Equal(t, 11, d.ColEnd)
}

func TestParse_Synonym(t *testing.T) {
	m := Parse(testProgram)
	s := m.Synonym("max_size")
	require.NotNil(t, s)
	assert.Equal(t, "100", s.Value)
	assert.Equal(t, 7, s.Line)
}

func TestParse_SynonymWithMode(t *testing.T) {
	m := Parse("SYN limit INT = 4096;")
	s := m.Synonym("limit")
	require.NotNil(t, s)
	assert.Equal(t, "INT", s.ModeName)
	assert.Equal(t, "4096", s.Value)
}

func TestParse_Procedure(t *testing.T) {
	m := Parse(testProgram)
	p := m.Procedure("handler")
	require.NotNil(t, p)
	assert.Equal(t, 13, p.LineStart)
	assert.Equal(t, 17, p.LineEnd, "body ends at END handler")
	assert.Equal(t, "INT", p.Returns)
	require.Len(t, p.Params, 1)
	assert.Equal(t, Param{Name: "input", Mode: "INT", Direction: "IN"}, p.Params[0])
}

func TestParse_ProcedureDirections(t *testing.T) {
	m := Parse("copy: PROC(src IN CHARS(80), dst OUT CHARS(80), n INOUT INT);\nEND copy;")
	p := m.Procedure("copy")
	require.NotNil(t, p)
	require.Len(t, p.Params, 3)
	assert.Equal(t, "IN", p.Params[0].Direction)
	assert.Equal(t, "OUT", p.Params[1].Direction)
	assert.Equal(t, "INOUT", p.Params[2].Direction)
	assert.Equal(t, "src", p.Params[0].Name)
	assert.Equal(t, "CHARS(80)", p.Params[0].Mode)
}

func TestParse_ProcedureGeneral(t *testing.T) {
	m := Parse("dispatch: PROC(ev INT) GENERAL;\nEND dispatch;")
	p := m.Procedure("dispatch")
	require.NotNil(t, p)
	assert.True(t, p.General)
}

func TestParse_ProcedureNoParams(t *testing.T) {
	m := Parse("tick: PROC() RETURNS(BOOL);\nEND tick;")
	p := m.Procedure("tick")
	require.NotNil(t, p)
	assert.Empty(t, p.Params)
	assert.Equal(t, "BOOL", p.Returns)
}

func TestParse_ProcedureReturnsWithoutParams(t *testing.T) {
	m := Parse("now: PROC RETURNS(TIME);\nEND now;")
	p := m.Procedure("now")
	require.NotNil(t, p)
	assert.Empty(t, p.Params)
	assert.Equal(t, "TIME", p.Returns)
}

func TestParse_UnterminatedProcedure(t *testing.T) {
	m := Parse("broken: PROC(x INT);\n  DCL y INT;")
	p := m.Procedure("broken")
	require.NotNil(t, p)
	assert.Equal(t, 1, p.LineEnd, "degenerate body ends at the header line")
}

func TestParse_NestedBlocksInBody(t *testing.T) {
	src := strings.Join([]string{
		"outer: PROC();",
		"  BEGIN",
		"    DCL x INT;",
		"  END;",
		"END outer;",
	}, "\n")
	m := Parse(src)
	p := m.Procedure("outer")
	require.NotNil(t, p)
	assert.Equal(t, 5, p.LineEnd)
}

func TestParse_Process(t *testing.T) {
	m := Parse(testProgram)
	p := m.Process("worker")
	require.NotNil(t, p)
	assert.Equal(t, 19, p.LineStart)
	assert.Equal(t, 23, p.LineEnd)
	require.Len(t, p.Params, 1)
	assert.Equal(t, "id", p.Params[0].Name)

	assert.Nil(t, m.Procedure("worker"), "a process is not also a procedure")
}

func TestParse_Signal(t *testing.T) {
	m := Parse(testProgram)
	sig := m.Signal("data_ready")
	require.NotNil(t, sig)
	assert.Equal(t, 25, sig.Line)
	require.Len(t, sig.Params, 2)
	assert.Equal(t, "buffer_id", sig.Params[0].Name)
	assert.Equal(t, "INT", sig.Params[0].Mode)
}

func TestParse_SignalNoParams(t *testing.T) {
	m := Parse("SIGNAL shutdown;")
	sig := m.Signal("shutdown")
	require.NotNil(t, sig)
	assert.Empty(t, sig.Params)
}

func TestParse_ScopedDeclarations(t *testing.T) {
	src := strings.Join([]string{
		"p: PROC();",
		"  DCL x INT;",
		"END p;",
		"DCL x BOOL;",
	}, "\n")
	m := Parse(src)

	scoped := m.Declaration("p.x")
	require.NotNil(t, scoped, "the procedure-local x is retrievable as p.x")
	assert.Equal(t, ModeInt, scoped.Mode)
	assert.Equal(t, "p", scoped.Scope)

	bare := m.Declaration("x")
	require.NotNil(t, bare)
	assert.Equal(t, ModeBool, bare.Mode, "bare slot holds the last write")
	assert.Equal(t, GlobalScope, bare.Scope)
}

func TestParse_ModuleScopeQualification(t *testing.T) {
	src := "MODULE m;\nDCL flag BOOL;\nEND m;"
	m := Parse(src)
	assert.NotNil(t, m.Declaration("m.flag"))
	assert.NotNil(t, m.Declaration("flag"))
}

func TestParse_ScopeClosesAtEnd(t *testing.T) {
	src := strings.Join([]string{
		"MODULE m;",
		"END m;",
		"DCL after INT;",
	}, "\n")
	m := Parse(src)
	d := m.Declaration("after")
	require.NotNil(t, d)
	assert.Equal(t, GlobalScope, d.Scope)
	assert.Nil(t, m.Declaration("m.after"))
}

func TestParse_CaseInsensitiveLookup(t *testing.T) {
	m := Parse("dcl Count int;")
	require.NotNil(t, m.Declaration("COUNT"))
	require.NotNil(t, m.Declaration("count"))
	assert.Equal(t, "Count", m.Declaration("count").Name, "source spelling is kept")
}

func TestParse_MalformedLinesSkipped(t *testing.T) {
	src := strings.Join([]string{
		"DCL ;",              // no name
		"NEWMODE justaname;", // no '='
		"SYN = 5;",           // no name
		"DCL ok INT;",
	}, "\n")
	m := Parse(src)
	assert.Len(t, m.Names(KindDeclaration), 1)
	assert.Empty(t, m.Names(KindMode))
	assert.Empty(t, m.Names(KindSynonym))
	assert.NotNil(t, m.Declaration("ok"))
}

func TestParse_Idempotent(t *testing.T) {
	a := Parse(testProgram)
	b := Parse(testProgram)
	assert.Equal(t, a.AllSymbols(), b.AllSymbols())
}

func TestParse_EntityCountBounded(t *testing.T) {
	m := Parse(testProgram)
	assert.LessOrEqual(t, len(m.AllSymbols()), lineCount(testProgram))
}

func TestParse_EmptyInput(t *testing.T) {
	m := Parse("")
	assert.Empty(t, m.AllSymbols())
}

func TestParse_RedeclarationOverwrites(t *testing.T) {
	m := Parse("f: PROC(a INT);\nEND f;\nf: PROC(a INT, b INT);\nEND f;")
	p := m.Procedure("f")
	require.NotNil(t, p)
	assert.Len(t, p.Params, 2, "re-declaration overwrites")
	assert.Len(t, m.Names(KindProcedure), 1)
}
