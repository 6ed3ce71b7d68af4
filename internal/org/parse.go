package org

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"org2csv/internal/model"
)

// KeywordSet classifies todo keywords into open and closed states. A headline
// whose first word is in neither list is not a task.
type KeywordSet struct {
	Todo []string
	Done []string
}

// DefaultKeywords returns the standard org keyword sets.
func DefaultKeywords() KeywordSet {
	return KeywordSet{
		Todo: []string{"TODO", "NEXT", "WAITING"},
		Done: []string{"DONE", "CANCELLED"},
	}
}

// classify reports whether word is a known todo keyword and whether it marks
// a closed state.
func (k KeywordSet) classify(word string) (done, ok bool) {
	for _, w := range k.Todo {
		if word == w {
			return false, true
		}
	}
	for _, w := range k.Done {
		if word == w {
			return true, true
		}
	}
	return false, false
}

var (
	headlineRegex = regexp.MustCompile(`^(\*+)\s+(.*?)\s*$`)
	tagsRegex     = regexp.MustCompile(`\s+:([A-Za-z0-9_@#%]+(?::[A-Za-z0-9_@#%]+)*):$`)
	priorityRegex = regexp.MustCompile(`^\[#([A-Za-z0-9])\]\s*(.*)$`)
	docKeyRegex   = regexp.MustCompile(`(?i)^#\+(TITLE|CATEGORY):\s*(.*?)\s*$`)
	planningRegex = regexp.MustCompile(`(SCHEDULED|DEADLINE|CLOSED):\s*([<\[][^>\]]*[>\]](?:--[<\[][^>\]]*[>\]])?)`)
	stampRegex    = regexp.MustCompile(`^[<\[](\d{4})-(\d{2})-(\d{2})(?:\s+[A-Za-z.]+)?(?:\s+(\d{1,2}):(\d{2})(?:-(\d{1,2}):(\d{2}))?)?\s*[>\]]$`)
)

// ParseFiles parses multiple org files in order, failing fast on the first
// error.
func ParseFiles(paths []string, kw KeywordSet) ([]Document, error) {
	var docs []Document
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading source %s: %w", path, err)
		}
		doc, err := Parse(file, path, kw)
		file.Close()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Parse reads one org document and builds its node arena. Malformed planning
// data on a headline leaves the affected field absent; it never aborts the
// parse.
func Parse(r io.Reader, source string, kw KeywordSet) (Document, error) {
	doc := Document{
		Source: source,
		Nodes:  []Node{{Kind: KindDocument, Parent: -1}},
	}

	// Indices of the open headline chain, innermost last.
	stack := []int{0}
	current := -1 // arena index of the headline whose body we are in

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if m := headlineRegex.FindStringSubmatch(line); m != nil {
			node := parseHeadline(len(m[1]), m[2], kw)

			// Pop until the top of the stack is a strict ancestor.
			for len(stack) > 1 && doc.Nodes[stack[len(stack)-1]].Level >= node.Level {
				stack = stack[:len(stack)-1]
			}
			node.Parent = stack[len(stack)-1]

			doc.Nodes = append(doc.Nodes, node)
			current = len(doc.Nodes) - 1
			stack = append(stack, current)
			continue
		}

		if m := docKeyRegex.FindStringSubmatch(line); m != nil {
			switch strings.ToUpper(m[1]) {
			case "TITLE":
				doc.Title = m[2]
			case "CATEGORY":
				doc.Category = m[2]
			}
			continue
		}

		if current >= 0 {
			applyPlanning(&doc.Nodes[current], line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("reading source %s: %w", source, err)
	}

	return doc, nil
}

// parseHeadline splits the text after the stars into keyword, priority
// cookie, title, and trailing tags.
func parseHeadline(level int, rest string, kw KeywordSet) Node {
	node := Node{Kind: KindHeadline, Level: level}

	if m := tagsRegex.FindStringSubmatch(rest); m != nil {
		node.Tags = strings.Split(m[1], ":")
		rest = rest[:len(rest)-len(m[0])]
	}

	word, remainder, _ := strings.Cut(rest, " ")
	if done, ok := kw.classify(word); ok {
		node.Keyword = word
		node.Done = done
		rest = strings.TrimSpace(remainder)
	}

	if m := priorityRegex.FindStringSubmatch(rest); m != nil {
		code := int(rune(m[1][0]))
		node.Priority = &code
		rest = m[2]
	}

	node.Title = rest
	return node
}

// applyPlanning scans a body line for SCHEDULED/DEADLINE/CLOSED entries and
// fills the corresponding timespans on the node. First occurrence wins.
func applyPlanning(node *Node, line string) {
	for _, m := range planningRegex.FindAllStringSubmatch(line, -1) {
		span := parseTimespan(m[2])
		if span == nil {
			continue
		}
		switch m[1] {
		case "SCHEDULED":
			if node.Scheduled == nil {
				node.Scheduled = span
			}
		case "DEADLINE":
			if node.Deadline == nil {
				node.Deadline = span
			}
		case "CLOSED":
			if node.Closed == nil {
				node.Closed = span
			}
		}
	}
}

// parseTimespan parses "<stamp>" or "<stamp>--<stamp>". A malformed stamp
// yields nil (absent), never a partial value.
func parseTimespan(s string) *model.Timespan {
	first, second, ranged := strings.Cut(s, "--")

	start, end := parseStamp(first)
	if start == nil {
		return nil
	}
	if ranged {
		// An explicit range overrides any same-stamp time span end.
		end, _ = parseStamp(second)
	}
	return &model.Timespan{Start: start, End: end}
}

// parseStamp parses one bracketed timestamp. A "HH:MM-HH:MM" span produces an
// end bound on the same date.
func parseStamp(s string) (start, end *model.Datestamp) {
	m := stampRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, nil
	}

	start = &model.Datestamp{
		Year:  atoiP(m[1]),
		Month: atoiP(m[2]),
		Day:   atoiP(m[3]),
	}
	if m[4] != "" {
		start.Hour = atoiP(m[4])
		start.Minute = atoiP(m[5])
	}
	if m[6] != "" {
		end = &model.Datestamp{
			Year:   atoiP(m[1]),
			Month:  atoiP(m[2]),
			Day:    atoiP(m[3]),
			Hour:   atoiP(m[6]),
			Minute: atoiP(m[7]),
		}
	}
	return start, end
}

func atoiP(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
