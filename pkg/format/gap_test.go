package format_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/bqfmt/pkg/cst"
	. "github.com/pseudomuto/bqfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestGaps(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		gaps     []int
	}{
		{
			name:     "adjacent",
			notation: `select@1 { exprs: [1], semicolon: ";" } select@2 { exprs: [2], semicolon: ";" }`,
			gaps:     []int{0, 0},
		},
		{
			name:     "blank line",
			notation: `select@1 { exprs: [1], semicolon: ";" } select@3 { exprs: [2], semicolon: ";" }`,
			gaps:     []int{1, 0},
		},
		{
			name:     "capped",
			notation: `select@1 { exprs: [1], semicolon: ";" } select@9 { exprs: [2], semicolon: ";" }`,
			gaps:     []int{1, 0},
		},
		{
			name: "leading comment starts the statement",
			notation: `
				select@1 { exprs: [1], semicolon: ";" }
				select@4 { leading_comments: ["-- c"@2], exprs: [2], semicolon: ";" }
			`,
			gaps: []int{0, 0},
		},
		{
			name: "multi-line comment after the terminator",
			notation: `
				select@1 { exprs: [1], semicolon: ";"@1 { following_comments: ["/* a\nb */"@1] } }
				select@3 { exprs: [2], semicolon: ";" }
			`,
			gaps: []int{0, 0},
		},
		{
			name: "set operator",
			notation: `
				select@1 { exprs: [1], semicolon: ";"@2 }
				union@5 {
					left: select@5 { leading_comments: ["-- c"@3], exprs: [1] }
					distinct: all
					right: select { exprs: [2] }
					semicolon: ";"
				}
			`,
			gaps: []int{0, 0},
		},
		{
			name: "parenthesized query",
			notation: `
				select@1 { exprs: [1], semicolon: ";" }
				"("@4 { stmt: select@4 { leading_comments: ["-- c"@2], exprs: [1] }, rparen: ")" }
			`,
			gaps: []int{0, 0},
		},
		{
			name:     "no terminator",
			notation: `select@1 { exprs: [1] } select@5 { exprs: [2], semicolon: ";" }`,
			gaps:     []int{0, 0},
		},
		{
			name:     "end of input",
			notation: `select@1 { exprs: [1], semicolon: ";" } ~@9`,
			gaps:     []int{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gaps, err := Gaps(cst.MustParseNotation(tt.notation))
			require.NoError(t, err)
			require.Equal(t, tt.gaps, gaps)
		})
	}
}

func TestGaps_UnknownStart(t *testing.T) {
	script := cst.MustParseNotation(`
		select@1 { exprs: [1], semicolon: ";" }
		"("@3 { expr: x, rparen: ")" }
	`)

	_, err := Gaps(script)
	require.Error(t, err)
	require.EqualError(t, err, `failed to locate the start of "(" at line 3`)

	var gapErr *GapError
	require.True(t, errors.As(err, &gapErr))
	require.Same(t, script[1], gapErr.Node)
}
