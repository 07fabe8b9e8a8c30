// Package textdiff renders line-oriented previews of content changes.  It is
// presentation only: patching never consults a diff, this exists so an
// operator can see what an apply would insert before running it.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

type Chunk struct {
	Op   Op
	Text string
}

// Chunks computes the change chunks between two contents.
func Chunks(from, to string) []Chunk {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := make([]Chunk, 0, len(diffs))
	for _, d := range diffs {
		c := Chunk{Text: d.Text}
		switch d.Type {
		case diffpatch.DiffInsert:
			c.Op = Insert
		case diffpatch.DiffDelete:
			c.Op = Delete
		case diffpatch.DiffEqual:
			c.Op = Equal
		}
		res = append(res, c)
	}
	return res
}

// context lines kept on each side of a change when formatting
const contextLines = 2

// Format writes chunks as prefixed lines, eliding the middle of long equal
// runs.
func Format(w io.Writer, chunks []Chunk, colorOn bool) {
	ins := func(s string) string { return s }
	del := ins
	if colorOn {
		ins = func(s string) string { return color.GreenString("%s", s) }
		del = func(s string) string { return color.RedString("%s", s) }
	}
	for i, c := range chunks {
		lines := strings.Split(strings.TrimSuffix(c.Text, "\n"), "\n")
		switch c.Op {
		case Insert:
			for _, ln := range lines {
				fmt.Fprintln(w, ins("+ "+ln))
			}
		case Delete:
			for _, ln := range lines {
				fmt.Fprintln(w, del("- "+ln))
			}
		case Equal:
			lines = elide(lines, i == 0, i == len(chunks)-1)
			for _, ln := range lines {
				fmt.Fprintln(w, "  "+ln)
			}
		}
	}
}

func elide(lines []string, first, last bool) []string {
	keepHead, keepTail := contextLines, contextLines
	if first {
		keepHead = 0
	}
	if last {
		keepTail = 0
	}
	if len(lines) <= keepHead+keepTail+1 {
		return lines
	}
	res := make([]string, 0, keepHead+keepTail+1)
	res = append(res, lines[:keepHead]...)
	res = append(res, "⋮")
	res = append(res, lines[len(lines)-keepTail:]...)
	return res
}
