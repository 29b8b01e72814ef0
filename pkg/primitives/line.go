package primitives

import "strings"

// Lines splits puzzle input into lines. A single trailing newline does not
// produce an extra empty line, and carriage returns are dropped.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r", "")
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Group is a run of non-blank lines. Start is the index of its first line.
type Group struct {
	Start int
	Lines []string
}

// Groups splits lines into runs separated by blank lines. Empty runs are skipped.
func Groups(lines []string) []Group {
	var (
		groups  []Group
		current *Group
	)
	for i, l := range lines {
		if l == "" {
			if current != nil {
				groups = append(groups, *current)
				current = nil
			}
			continue
		}
		if current == nil {
			current = &Group{Start: i}
		}
		current.Lines = append(current.Lines, l)
	}
	if current != nil {
		groups = append(groups, *current)
	}
	return groups
}

// Chunks splits lines into consecutive runs of n. The last run may be shorter.
func Chunks(lines []string, n int) [][]string {
	var chunks [][]string
	for start := 0; start < len(lines); start += n {
		chunks = append(chunks, lines[start:min(start+n, len(lines))])
	}
	return chunks
}
