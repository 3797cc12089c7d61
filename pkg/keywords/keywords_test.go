package keywords_test

import (
	"testing"

	. "github.com/pseudomuto/bqfmt/pkg/keywords"
	"github.com/stretchr/testify/require"
)

func TestCase(t *testing.T) {
	tests := []struct {
		name     string
		literal  string
		ctx      Context
		expected string
	}{
		{name: "reserved word", literal: "select", expected: "SELECT"},
		{name: "mixed case reserved", literal: "Where", expected: "WHERE"},
		{name: "identifier", literal: "user_id", expected: "user_id"},
		{name: "partition pseudo column", literal: "_partitiontime", expected: "_PARTITIONTIME"},
		{name: "partition date", literal: "_PartitionDate", expected: "_PARTITIONDATE"},
		{name: "table suffix", literal: "_table_suffix", expected: "_TABLE_SUFFIX"},
		{name: "file name", literal: "_file_name", expected: "_FILE_NAME"},
		{name: "row timestamp", literal: "_row_timestamp", expected: "_ROW_TIMESTAMP"},
		{name: "underscore identifier", literal: "_tablename", expected: "_tablename"},
		{name: "dotted rhs reserved", literal: "left", ctx: Context{DottedRHS: true}, expected: "left"},
		{name: "dotted rhs restricted", literal: "_partitiontime", ctx: Context{DottedRHS: true}, expected: "_partitiontime"},
		{name: "builtin function", literal: "date_trunc", ctx: Context{FunctionName: true}, expected: "DATE_TRUNC"},
		{name: "user function", literal: "myFunc", ctx: Context{FunctionName: true}, expected: "myFunc"},
		{name: "builtin name as identifier", literal: "count", expected: "count"},
		{name: "reserved function name", literal: "if", ctx: Context{FunctionName: true}, expected: "IF"},
		{name: "forced upper", literal: "week", ctx: Context{Upper: true}, expected: "WEEK"},
		{name: "forced upper wins over dotted", literal: "divide", ctx: Context{Upper: true, DottedRHS: true}, expected: "DIVIDE"},
		{name: "forced lower", literal: "R", ctx: Context{Lower: true}, expected: "r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Case(tt.literal, tt.ctx))
		})
	}
}

func TestLookups(t *testing.T) {
	require.True(t, IsReserved("unnest"))
	require.False(t, IsReserved("date"))
	require.True(t, IsFunction("St_Geogpoint"))
	require.True(t, IsFunction("coalesce"))
	require.False(t, IsFunction("my_udf"))

	for _, ns := range []string{"safe", "KEYS", "aead", "net", "hll_count", "_session"} {
		require.True(t, IsNamespace(ns), ns)
	}
	require.False(t, IsNamespace("dataset"))

	require.True(t, IsTypedLiteral("bignumeric"))
	require.False(t, IsTypedLiteral("int64"))
	require.True(t, IsStringPrefix("rb"))
	require.False(t, IsStringPrefix("x"))
}

func TestDatePartArg(t *testing.T) {
	tests := []struct {
		fn   string
		argc int
		idx  int
		ok   bool
	}{
		{fn: "date_trunc", argc: 2, idx: 1, ok: true},
		{fn: "TIMESTAMP_TRUNC", argc: 3, idx: 1, ok: true},
		{fn: "datetime_diff", argc: 3, idx: 2, ok: true},
		{fn: "TIME_DIFF", argc: 2, ok: false},
		{fn: "last_day", argc: 1, ok: false},
		{fn: "last_day", argc: 2, idx: 1, ok: true},
		{fn: "normalize", argc: 2, idx: 1, ok: true},
		{fn: "normalize_and_casefold", argc: 1, ok: false},
		{fn: "trunc", argc: 2, ok: false},
		{fn: "ip_trunc", argc: 2, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			idx, ok := DatePartArg(tt.fn, tt.argc)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.idx, idx)
		})
	}
}
