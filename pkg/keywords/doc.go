// Package keywords holds the BigQuery lookup tables consulted by the formatter
// and the casing rules applied to every literal it prints.
//
// Casing is a pure function of the literal and a Context describing where the
// literal appears:
//
//	keywords.Case("select", keywords.Context{})                     // "SELECT"
//	keywords.Case("count", keywords.Context{FunctionName: true})    // "COUNT"
//	keywords.Case("my_udf", keywords.Context{FunctionName: true})   // "my_udf"
//	keywords.Case("left", keywords.Context{DottedRHS: true})        // "left"
//	keywords.Case("_PARTITIONTIME", keywords.Context{})             // "_PARTITIONTIME"
//
// The tables cover reserved words, builtin function names, the namespaces that
// prefix builtin functions (SAFE.DIVIDE, NET.HOST, ...), the functions whose
// positional arguments are date parts, and the prefixes of typed and string
// literals.
package keywords
