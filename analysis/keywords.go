// Copyright © 2026 The chill-lsp authors

package analysis

import (
	"sort"
	"strings"
)

// reservedWords holds the CHILL reserved words from ITU-T Z.200
// Appendix III.
var reservedWords = map[string]bool{
	"ABSTRACT": true, "ACCESS": true, "AFTER": true, "ALL": true,
	"AND": true, "ANDIF": true, "ANY": true, "ARRAY": true,
	"ASSERT": true, "AT": true, "BASED_ON": true, "BEGIN": true,
	"BIN": true, "BODY": true, "BOOLS": true, "BUFFER": true,
	"BY": true, "CASE": true, "CAUSE": true, "CHARS": true,
	"CONTEXT": true, "CONTINUE": true, "CYCLE": true, "DCL": true,
	"DELAY": true, "DO": true, "DOWN": true, "DYNAMIC": true,
	"ELSE": true, "ELSIF": true, "END": true, "ESAC": true,
	"EVENT": true, "EVER": true, "EXCEPTIONS": true, "EXIT": true,
	"FI": true, "FINAL": true, "FOR": true, "FORBID": true,
	"GENERAL": true, "GENERIC": true, "GOTO": true, "GRANT": true,
	"IF": true, "IMPLEMENTS": true, "IN": true, "INCOMPLETE": true,
	"INIT": true, "INLINE": true, "INOUT": true, "INTERFACE": true,
	"INVARIANT": true, "LOC": true, "MOD": true, "MODE": true,
	"MODULE": true, "NEW": true, "NEWMODE": true, "NONREF": true,
	"NOPACK": true, "NOT": true, "OD": true, "OF": true,
	"ON": true, "OR": true, "ORIF": true, "OUT": true,
	"PACK": true, "POS": true, "POST": true, "POWERSET": true,
	"PRE": true, "PREFIXED": true, "PRIORITY": true, "PROC": true,
	"PROCESS": true, "RANGE": true, "READ": true, "RECEIVE": true,
	"REF": true, "REGION": true, "REM": true, "REMOTE": true,
	"RESULT": true, "RETURN": true, "RETURNS": true, "ROW": true,
	"SEIZE": true, "SELF": true, "SEND": true, "SET": true,
	"SIGNAL": true, "SIMPLE": true, "SPEC": true, "START": true,
	"STATIC": true, "STEP": true, "STOP": true, "STRUCT": true,
	"SYN": true, "SYNMODE": true, "TASK": true, "TEXT": true,
	"THEN": true, "THIS": true, "TIMEOUT": true, "TO": true,
	"UP": true, "VARYING": true, "WCHARS": true, "WHILE": true,
	"WITH": true, "WTEXT": true, "XOR": true,
	"NOT_ASSIGNABLE": true, "ANY_ASSIGN": true, "ANY_DISCRETE": true,
	"ANY_INT": true, "ANY_REAL": true, "ASSIGNABLE": true,
	"CONSTR": true, "DESTR": true, "REIMPLEMENT": true,
}

// predefinedNames holds the predefined names from Z.200 Appendix III.2
// plus implementation-defined extensions common in EWSD and GCC CHILL.
var predefinedNames = map[string]bool{
	// Built-in routines (III.2).
	"ABS": true, "ABSTIME": true, "ALLOCATE": true, "ARCCOS": true,
	"ARCSIN": true, "ARCTAN": true, "ASSOCIATE": true, "CARD": true,
	"CONNECT": true, "COS": true, "CREATE": true, "DELETE": true,
	"DISCONNECT": true, "DISSOCIATE": true, "EOLN": true,
	"EXISTING": true, "EXP": true, "EXPIRED": true, "FIRST": true,
	"FLOAT": true, "GETASSOCIATION": true, "GETSTACK": true,
	"GETTEXTACCESS": true, "GETTEXTINDEX": true, "GETTEXTRECORD": true,
	"GETUSAGE": true, "INDEXABLE": true, "INTTIME": true,
	"ISASSOCIATED": true, "LAST": true, "LENGTH": true, "LN": true,
	"LOG": true, "LOWER": true, "MAX": true, "MIN": true,
	"MODIFY": true, "NUM": true, "OUTOFFILE": true, "PRED": true,
	"PTR": true, "READABLE": true, "READONLY": true,
	"READRECORD": true, "READTEXT": true, "READWRITE": true,
	"SAME": true, "SEQUENCIBLE": true, "SETTEXTACCESS": true,
	"SETTEXTINDEX": true, "SETTEXTRECORD": true, "SIN": true,
	"SIZE": true, "SQRT": true, "SUCC": true, "TAN": true,
	"TERMINATE": true, "UPPER": true, "USAGE": true, "VARIABLE": true,
	"WAIT": true, "WCHAR": true, "WHERE": true, "WRITEABLE": true,
	"WRITEONLY": true, "WRITERECORD": true, "WRITETEXT": true,
	// Built-in modes (III.2).
	"INT": true, "BOOL": true, "CHAR": true, "DURATION": true,
	"TIME": true, "ASSOCIATION": true, "INSTANCE": true,
	// Implementation-defined modes.
	"BYTE": true, "UBYTE": true, "UINT": true, "LONG": true,
	"ULONG": true, "REAL": true, "LONG_REAL": true,
	// Constants (III.2).
	"TRUE": true, "FALSE": true, "NULL": true,
	// Time units.
	"DAYS": true, "HOURS": true, "MILLISECS": true, "MINUTES": true,
	"SECS": true, "SECONDS": true, "MICROSECS": true,
}

// keywordDocs maps reserved words and builtin mode names to short hover
// documentation.
var keywordDocs = map[string]string{
	"MODULE":   "Defines a module - the basic unit of CHILL program structure",
	"DCL":      "Declares a variable with a specified mode (type)",
	"NEWMODE":  "Defines a new mode (type) derived from existing modes",
	"SYNMODE":  "Defines a synonym mode (type alias)",
	"SYN":      "Defines a synonym (named constant)",
	"PROC":     "Defines a procedure",
	"PROCESS":  "Defines a concurrent process",
	"SIGNAL":   "Defines a signal for inter-process communication",
	"BUFFER":   "Declares a buffer for inter-process message passing",
	"EVENT":    "Declares an event for process synchronization",
	"REGION":   "Defines a protected region for mutual exclusion",
	"IF":       "Conditional statement",
	"THEN":     "Introduces the consequent of IF",
	"ELSE":     "Introduces the alternative of IF",
	"ELSIF":    "Introduces an alternative condition",
	"FI":       "Terminates IF statement",
	"CASE":     "Case selection statement",
	"ESAC":     "Terminates CASE statement",
	"DO":       "Begins a loop construct",
	"OD":       "Terminates a DO loop",
	"WHILE":    "Loop while condition is true",
	"FOR":      "Counted loop",
	"EXIT":     "Exit from a loop",
	"RETURN":   "Return from procedure with optional value",
	"GOTO":     "Unconditional jump (discouraged)",
	"SEND":     "Send a signal to a process",
	"RECEIVE":  "Receive a signal from a process",
	"DELAY":    "Delay process execution for a duration",
	"START":    "Start a new process instance",
	"STOP":     "Stop the current process",
	"BEGIN":    "Begin a block",
	"END":      "End a block or construct",
	"GRANT":    "Make names visible outside module",
	"SEIZE":    "Access names from another module",
	"INT":      "Integer mode",
	"BOOL":     "Boolean mode (TRUE/FALSE)",
	"CHAR":     "Character mode",
	"CHARS":    "Character string mode",
	"BOOLS":    "Bit string mode",
	"SET":      "Enumeration mode",
	"RANGE":    "Integer subrange mode",
	"POWERSET": "Set of discrete values mode",
	"REF":      "Reference (pointer) mode",
	"STRUCT":   "Structure mode (record)",
	"ARRAY":    "Array mode",
	"STATIC":   "Static storage duration",
	"INIT":     "Initialize with value",
	"LOC":      "Local (stack) storage",
	"READ":     "Read-only attribute",
	"AND":      "Logical AND operator",
	"OR":       "Logical OR operator",
	"NOT":      "Logical NOT operator",
	"XOR":      "Logical exclusive OR operator",
	"ANDIF":    "Short-circuit AND (evaluates right only if left is TRUE)",
	"ORIF":     "Short-circuit OR (evaluates right only if left is FALSE)",
	"MOD":      "Modulo operator",
	"REM":      "Remainder operator",
	"TRUE":     "Boolean true value",
	"FALSE":    "Boolean false value",
	"NULL":     "Null reference value",
}

// IsReserved reports whether word is a CHILL reserved word. The check is
// case-insensitive.
func IsReserved(word string) bool {
	return reservedWords[strings.ToUpper(word)]
}

// IsPredefined reports whether word is a predefined name. The check is
// case-insensitive.
func IsPredefined(word string) bool {
	return predefinedNames[strings.ToUpper(word)]
}

// KeywordDoc returns the documentation string for a reserved word or
// builtin mode name, or "" when none exists.
func KeywordDoc(word string) string {
	return keywordDocs[strings.ToUpper(word)]
}

// ReservedWords returns all reserved words in sorted order.
func ReservedWords() []string {
	return sortedKeys(reservedWords)
}

// PredefinedNames returns all predefined names in sorted order.
func PredefinedNames() []string {
	return sortedKeys(predefinedNames)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
