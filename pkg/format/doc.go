// Package format renders BigQuery syntax trees as canonically formatted SQL.
//
// The formatter takes the top-level statements of a script (as decoded by the
// cst package) and produces consistent SQL text:
//   - Reserved words, builtin function names and date-part arguments upper cased
//   - Width-aware line breaking driven by the doc layout engine
//   - Trailing commas and aliases kept with the column they belong to
//   - Leading and trailing comments preserved in place
//   - At most one blank line between statements that were separated in the source
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.FormatterOptions{
//		MaxWidth:   100,
//		IndentSize: 4,
//	})
//
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, statements...)
//
//	// Functional API
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, statements...)
//
// Top-level statements always place each clause and column on its own line.
// Statements nested in subqueries, CREATE ... AS bodies and scripting blocks
// collapse onto one line when they fit within MaxWidth.
//
// Nodes the classifier does not recognise are printed as their own literal,
// so unsupported syntax degrades to a passthrough instead of an error. A node
// that lacks a field its production requires is treated as a malformed tree:
// printing panics with a cst.ContractViolation.
package format
