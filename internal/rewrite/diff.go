package rewrite

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"repalette/internal/ui/styles"
)

// Hunk is one run of changed lines with surrounding context.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Line is a single line of a hunk.
type Line struct {
	Type    LineType
	Content string
}

// LineType classifies a hunk line.
type LineType int

const (
	LineContext LineType = iota
	LineAdd
	LineDelete
)

// Hunks diffs the text before and after substitution, line by line,
// grouped into hunks with the given number of context lines.
func Hunks(before, after string, contextLines int) []Hunk {
	if contextLines <= 0 {
		contextLines = 3
	}

	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lineArray := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	for _, diff := range diffs {
		diffLines := strings.Split(diff.Text, "\n")
		for i, line := range diffLines {
			// Skip empty last line from split
			if i == len(diffLines)-1 && line == "" {
				continue
			}

			var lineType LineType
			switch diff.Type {
			case diffmatchpatch.DiffInsert:
				lineType = LineAdd
			case diffmatchpatch.DiffDelete:
				lineType = LineDelete
			default:
				lineType = LineContext
			}

			lines = append(lines, Line{Type: lineType, Content: line})
		}
	}

	return groupIntoHunks(lines, contextLines)
}

// groupIntoHunks groups diff lines into hunks with context.
func groupIntoHunks(lines []Line, contextLines int) []Hunk {
	if len(lines) == 0 {
		return nil
	}

	var hunks []Hunk
	var current *Hunk

	oldLine := 1
	newLine := 1

	for i, line := range lines {
		isChange := line.Type != LineContext

		needsNewHunk := isChange && current == nil

		if isChange && current != nil {
			// Count context lines since the last change
			contextCount := 0
			for j := i - 1; j >= 0 && lines[j].Type == LineContext; j-- {
				contextCount++
			}
			if contextCount > contextLines*2 {
				hunks = append(hunks, *current)
				current = nil
				needsNewHunk = true
			}
		}

		if needsNewHunk {
			hunk := Hunk{}

			// Leading context
			start := i - contextLines
			if start < 0 {
				start = 0
			}
			for j := start; j < i; j++ {
				if lines[j].Type == LineContext {
					hunk.Lines = append(hunk.Lines, lines[j])
					hunk.OldCount++
					hunk.NewCount++
				}
			}
			hunk.OldStart = oldLine - len(hunk.Lines)
			hunk.NewStart = newLine - len(hunk.Lines)

			current = &hunk
		}

		if current != nil {
			current.Lines = append(current.Lines, line)
			switch line.Type {
			case LineContext:
				current.OldCount++
				current.NewCount++
			case LineAdd:
				current.NewCount++
			case LineDelete:
				current.OldCount++
			}
		}

		switch line.Type {
		case LineContext:
			oldLine++
			newLine++
		case LineAdd:
			newLine++
		case LineDelete:
			oldLine++
		}
	}

	if current != nil {
		hunks = append(hunks, *current)
	}

	return hunks
}

// FormatHunks renders hunks in unified diff form for the given paths.
func FormatHunks(src, dst string, hunks []Hunk) string {
	var sb strings.Builder

	noColor := styles.NoColor()

	header := fmt.Sprintf("--- %s\n+++ %s\n", src, dst)
	if noColor {
		sb.WriteString(header)
	} else {
		sb.WriteString(styles.DiffFileHeader.Render(fmt.Sprintf("--- %s", src)) + "\n")
		sb.WriteString(styles.DiffFileHeader.Render(fmt.Sprintf("+++ %s", dst)) + "\n")
	}

	for _, hunk := range hunks {
		hunkHeader := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OldStart, hunk.OldCount,
			hunk.NewStart, hunk.NewCount)
		if noColor {
			sb.WriteString(hunkHeader + "\n")
		} else {
			sb.WriteString(styles.DiffHunkHeader.Render(hunkHeader) + "\n")
		}

		for _, line := range hunk.Lines {
			var lineStr string
			switch line.Type {
			case LineAdd:
				lineStr = "+" + line.Content
				if !noColor {
					lineStr = styles.DiffAddLine.Render(lineStr)
				}
			case LineDelete:
				lineStr = "-" + line.Content
				if !noColor {
					lineStr = styles.DiffRemoveLine.Render(lineStr)
				}
			default:
				lineStr = " " + line.Content
				if !noColor {
					lineStr = styles.DiffContextLine.Render(lineStr)
				}
			}
			sb.WriteString(lineStr + "\n")
		}
	}

	return sb.String()
}
