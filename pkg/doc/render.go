package doc

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Options configures Render.
type Options struct {
	// MaxWidth is the preferred maximum line width. Zero or less disables
	// wrapping: every group that does not contain a hard line is printed flat.
	MaxWidth int
	// IndentWidth is the number of spaces added per Indent.
	IndentWidth int
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

type command struct {
	indent int
	mode   mode
	doc    Doc
}

type renderer struct {
	Options

	out    []byte
	column int

	// groups that contain a hard line and can never be flat
	broken map[*group]bool
	// pending line suffixes, flushed before the next newline
	suffix []command
}

// Render lays d out and returns the resulting text.
func Render(d Doc, opts Options) string {
	r := &renderer{Options: opts, broken: make(map[*group]bool)}
	r.propagateBreaks(d)
	r.render(d)

	return string(r.out)
}

// propagateBreaks records every group that transitively contains a hard line.
func (r *renderer) propagateBreaks(d Doc) bool {
	switch d := d.(type) {
	case concat:
		hard := false
		for _, child := range d {
			hard = r.propagateBreaks(child) || hard
		}
		return hard
	case join:
		hard := false
		for i, child := range d.docs {
			if i > 0 {
				hard = r.propagateBreaks(d.sep) || hard
			}
			hard = r.propagateBreaks(child) || hard
		}
		return hard
	case *group:
		if r.propagateBreaks(d.contents) {
			r.broken[d] = true
		}
		return r.broken[d]
	case indent:
		return r.propagateBreaks(d.contents)
	case lineSuffix:
		return r.propagateBreaks(d.contents)
	case line:
		return d.mode == Hard
	default:
		return false
	}
}

func (r *renderer) render(d Doc) {
	stack := []command{{mode: modeBreak, doc: d}}

	for len(stack) > 0 {
		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch d := cmd.doc.(type) {
		case text:
			r.write(string(d))
		case concat:
			for i := len(d) - 1; i >= 0; i-- {
				stack = append(stack, command{cmd.indent, cmd.mode, d[i]})
			}
		case join:
			stack = pushJoin(stack, cmd, d)
		case indent:
			stack = append(stack, command{cmd.indent + r.IndentWidth, cmd.mode, d.contents})
		case *group:
			next := command{cmd.indent, modeFlat, d.contents}
			if r.broken[d] || (cmd.mode == modeBreak && !r.fits(next, stack)) {
				next.mode = modeBreak
			}
			stack = append(stack, next)
		case lineSuffix:
			r.suffix = append(r.suffix, command{cmd.indent, cmd.mode, d.contents})
		case line:
			if cmd.mode == modeFlat && d.mode != Hard {
				if d.mode == Normal {
					r.write(" ")
				}
				break
			}

			if len(r.suffix) > 0 {
				stack = append(stack, cmd)
				stack = r.flushSuffix(stack)
				break
			}

			r.newline(cmd.indent)
		}

		if len(stack) == 0 && len(r.suffix) > 0 {
			stack = r.flushSuffix(stack)
		}
	}

	r.trimTrailingSpace()
}

// fits reports whether next, followed by the pending commands up to their
// first possible line break, fits in the rest of the current line.
func (r *renderer) fits(next command, rest []command) bool {
	if r.MaxWidth <= 0 {
		return true
	}

	remaining := r.MaxWidth - r.column
	cmds := []command{next}
	restIdx := len(rest)

	for remaining >= 0 {
		if len(cmds) == 0 {
			if restIdx == 0 {
				return true
			}
			restIdx--
			cmds = append(cmds, rest[restIdx])
			continue
		}

		cmd := cmds[len(cmds)-1]
		cmds = cmds[:len(cmds)-1]

		switch d := cmd.doc.(type) {
		case text:
			s := string(d)
			if i := strings.IndexByte(s, '\n'); i >= 0 {
				return remaining-uniseg.StringWidth(s[:i]) >= 0
			}
			remaining -= uniseg.StringWidth(s)
		case concat:
			for i := len(d) - 1; i >= 0; i-- {
				cmds = append(cmds, command{cmd.indent, cmd.mode, d[i]})
			}
		case join:
			cmds = pushJoin(cmds, cmd, d)
		case indent:
			cmds = append(cmds, command{cmd.indent, cmd.mode, d.contents})
		case *group:
			m := cmd.mode
			if r.broken[d] {
				m = modeBreak
			}
			cmds = append(cmds, command{cmd.indent, m, d.contents})
		case line:
			if cmd.mode == modeBreak || d.mode == Hard {
				return true
			}
			if d.mode == Normal {
				remaining--
			}
		}
	}

	return false
}

func pushJoin(stack []command, cmd command, j join) []command {
	for i := len(j.docs) - 1; i >= 0; i-- {
		stack = append(stack, command{cmd.indent, cmd.mode, j.docs[i]})
		if i > 0 {
			stack = append(stack, command{cmd.indent, cmd.mode, j.sep})
		}
	}

	return stack
}

func (r *renderer) flushSuffix(stack []command) []command {
	for i := len(r.suffix) - 1; i >= 0; i-- {
		stack = append(stack, r.suffix[i])
	}
	r.suffix = nil

	return stack
}

func (r *renderer) write(s string) {
	r.out = append(r.out, s...)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		r.column = uniseg.StringWidth(s[i+1:])
		return
	}

	r.column += uniseg.StringWidth(s)
}

func (r *renderer) newline(indent int) {
	r.trimTrailingSpace()
	r.out = append(r.out, '\n')
	for range indent {
		r.out = append(r.out, ' ')
	}
	r.column = indent
}

func (r *renderer) trimTrailingSpace() {
	end := len(r.out)
	for end > 0 && (r.out[end-1] == ' ' || r.out[end-1] == '\t') {
		end--
	}
	r.out = r.out[:end]
}
