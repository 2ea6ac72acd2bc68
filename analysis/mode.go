// Copyright © 2026 The chill-lsp authors

package analysis

import "strings"

// ModeKind classifies a CHILL mode (the language's term for a type).
type ModeKind int

const (
	ModeUnknown ModeKind = iota
	ModeInt              // integer
	ModeBool             // boolean
	ModeChar             // character
	ModeChars            // character string
	ModeBools            // bit string
	ModeSet              // enumeration
	ModeRange            // integer subrange
	ModePowerset         // set of discrete values
	ModeRef              // reference/pointer
	ModeStruct           // structure
	ModeArray            // array
	ModeProc             // procedure mode
	ModeProcess          // process mode
	ModeBuffer           // inter-process message buffer
	ModeEvent            // synchronization event
	ModeSignal           // inter-process signal
	ModeAssociation      // file association
	ModeAccess           // file access
	ModeText             // text I/O
	ModeDuration         // time duration
	ModeTime             // absolute time
	ModeUserDefined      // user-defined mode
)

func (k ModeKind) String() string {
	switch k {
	case ModeInt:
		return "INT"
	case ModeBool:
		return "BOOL"
	case ModeChar:
		return "CHAR"
	case ModeChars:
		return "CHARS"
	case ModeBools:
		return "BOOLS"
	case ModeSet:
		return "SET"
	case ModeRange:
		return "RANGE"
	case ModePowerset:
		return "POWERSET"
	case ModeRef:
		return "REF"
	case ModeStruct:
		return "STRUCT"
	case ModeArray:
		return "ARRAY"
	case ModeProc:
		return "PROC"
	case ModeProcess:
		return "PROCESS"
	case ModeBuffer:
		return "BUFFER"
	case ModeEvent:
		return "EVENT"
	case ModeSignal:
		return "SIGNAL"
	case ModeAssociation:
		return "ASSOCIATION"
	case ModeAccess:
		return "ACCESS"
	case ModeText:
		return "TEXT"
	case ModeDuration:
		return "DURATION"
	case ModeTime:
		return "TIME"
	case ModeUserDefined:
		return "USER"
	default:
		return "UNKNOWN"
	}
}

// modeNames maps builtin mode keywords to their kind. Byte/word-width
// integer aliases and the real-number aliases are implementation
// extensions that map onto INT, matching common EWSD and GCC CHILL usage.
var modeNames = map[string]ModeKind{
	"INT":         ModeInt,
	"BOOL":        ModeBool,
	"CHAR":        ModeChar,
	"CHARS":       ModeChars,
	"BOOLS":       ModeBools,
	"SET":         ModeSet,
	"RANGE":       ModeRange,
	"POWERSET":    ModePowerset,
	"REF":         ModeRef,
	"STRUCT":      ModeStruct,
	"ARRAY":       ModeArray,
	"PROC":        ModeProc,
	"PROCESS":     ModeProcess,
	"BUFFER":      ModeBuffer,
	"EVENT":       ModeEvent,
	"SIGNAL":      ModeSignal,
	"ASSOCIATION": ModeAssociation,
	"ACCESS":      ModeAccess,
	"TEXT":        ModeText,
	"DURATION":    ModeDuration,
	"TIME":        ModeTime,
	"BYTE":        ModeInt,
	"UBYTE":       ModeInt,
	"UINT":        ModeInt,
	"LONG":        ModeInt,
	"ULONG":       ModeInt,
	"REAL":        ModeInt,
	"LONG_REAL":   ModeInt,
}

// modeKindFromName maps a mode text to a kind using its first
// whitespace-delimited token. Unrecognized names are user-defined.
func modeKindFromName(modeText string) ModeKind {
	fields := strings.Fields(strings.ToUpper(modeText))
	if len(fields) == 0 {
		return ModeUnknown
	}
	if kind, ok := modeNames[fields[0]]; ok {
		return kind
	}
	return ModeUserDefined
}

// inferPrefixes is the ordered prefix cascade used to classify the
// right-hand side of a mode definition. Order matters: the first matching
// prefix wins, and anything unmatched falls through to a direct mode-name
// lookup.
var inferPrefixes = []struct {
	prefix string
	kind   ModeKind
}{
	{"SET", ModeSet},
	{"RANGE", ModeRange},
	{"STRUCT", ModeStruct},
	{"ARRAY", ModeArray},
	{"REF", ModeRef},
	{"POWERSET", ModePowerset},
	{"CHARS", ModeChars},
	{"BOOLS", ModeBools},
	{"PROC", ModeProc},
	{"BUFFER", ModeBuffer},
	{"EVENT", ModeEvent},
	{"SIGNAL", ModeSignal},
}

// inferBaseMode infers the base mode of a NEWMODE/SYNMODE right-hand side.
func inferBaseMode(modeText string) ModeKind {
	upper := strings.ToUpper(strings.TrimSpace(modeText))
	for _, p := range inferPrefixes {
		if strings.HasPrefix(upper, p.prefix) {
			return p.kind
		}
	}
	return modeKindFromName(upper)
}

// isBuiltinModeName reports whether the first token of a mode text names a
// builtin (or implementation-extension) mode rather than a user mode.
func isBuiltinModeName(modeText string) bool {
	fields := strings.Fields(strings.ToUpper(modeText))
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "INT", "BOOL", "CHAR", "CHARS", "BOOLS", "BYTE", "UBYTE",
		"UINT", "LONG", "ULONG", "REAL", "LONG_REAL", "DURATION",
		"TIME", "ASSOCIATION", "INSTANCE":
		return true
	}
	return false
}
