package keywords

import (
	"regexp"
	"strings"
)

// Context describes the position of a literal being cased.
type Context struct {
	// Upper forces upper case. Used for keyword-like operands such as date parts.
	Upper bool
	// Lower forces lower case. Used for string and bytes literal prefixes.
	Lower bool
	// FunctionName marks the literal as the name of a called function.
	FunctionName bool
	// DottedRHS marks the right-hand side of a dotted reference whose left-hand
	// side is not a builtin namespace. Reserved words keep their source casing
	// there since they name columns or fields.
	DottedRHS bool
}

var (
	// namespaces prefix builtin functions (SAFE.DIVIDE) or system variables
	// (_SESSION.x).
	namespaces = toSet("SAFE", "KEYS", "AEAD", "NET", "HLL_COUNT", "_SESSION")

	// typedLiterals prefix string literals to form typed constants.
	typedLiterals = toSet("DATE", "TIMESTAMP", "TIME", "DATETIME", "NUMERIC", "BIGNUMERIC", "DECIMAL", "BIGDECIMAL")

	// stringPrefixes mark raw and bytes literals (r'...', b'...').
	stringPrefixes = toSet("BR", "R", "RB", "B")

	// datePartArgs maps functions to the position of their date part argument.
	datePartArgs = map[string]int{
		"DATE_DIFF":              2,
		"DATETIME_DIFF":          2,
		"TIME_DIFF":              2,
		"TIMESTAMP_DIFF":         2,
		"DATE_TRUNC":             1,
		"DATETIME_TRUNC":         1,
		"TIME_TRUNC":             1,
		"TIMESTAMP_TRUNC":        1,
		"LAST_DAY":               1,
		"NORMALIZE":              1,
		"NORMALIZE_AND_CASEFOLD": 1,
	}

	restricted = regexp.MustCompile(`(?i)^(_PARTITION|_TABLE_|_FILE_|_ROW_TIMESTAMP)`)
)

// Case returns literal with the casing appropriate for ctx.
func Case(literal string, ctx Context) string {
	switch {
	case ctx.Upper:
		return strings.ToUpper(literal)
	case ctx.Lower:
		return strings.ToLower(literal)
	case !ctx.DottedRHS && (IsReserved(literal) || IsRestricted(literal)):
		return strings.ToUpper(literal)
	case ctx.FunctionName && IsFunction(literal):
		return strings.ToUpper(literal)
	default:
		return literal
	}
}

// IsReserved reports whether s is a reserved keyword.
func IsReserved(s string) bool {
	return reserved[strings.ToUpper(s)]
}

// IsRestricted reports whether s starts with a prefix BigQuery reserves for
// pseudo columns (_PARTITIONTIME, _TABLE_SUFFIX, _FILE_NAME, ...).
func IsRestricted(s string) bool {
	return restricted.MatchString(s)
}

// IsFunction reports whether s names a builtin function.
func IsFunction(s string) bool {
	return functions[strings.ToUpper(s)]
}

// IsNamespace reports whether s is a builtin function namespace.
func IsNamespace(s string) bool {
	return namespaces[strings.ToUpper(s)]
}

// IsTypedLiteral reports whether s is a type name that can prefix a string
// literal (DATE '2020-01-01').
func IsTypedLiteral(s string) bool {
	return typedLiterals[strings.ToUpper(s)]
}

// IsStringPrefix reports whether s is a raw or bytes literal prefix.
func IsStringPrefix(s string) bool {
	return stringPrefixes[strings.ToUpper(s)]
}

// DatePartArg returns the index of the argument of fn that holds a date part
// (DATE_TRUNC(d, WEEK)), given the number of arguments in the call.
func DatePartArg(fn string, argc int) (int, bool) {
	idx, ok := datePartArgs[strings.ToUpper(fn)]
	if !ok || idx >= argc {
		return 0, false
	}

	return idx, true
}

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}

	return set
}
