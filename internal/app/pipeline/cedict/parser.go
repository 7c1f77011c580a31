// Package cedict parses CC-CEDICT format dictionary files.
// Pure function: file path in, lookup table out. No network dependencies.
package cedict

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one dictionary headword with its romanization and gloss meanings.
type Entry struct {
	Traditional string
	Simplified  string
	Pinyin      string
	Meanings    []string
}

// Translation returns the entry's meanings joined by ", ", the form used
// in the enriched output.
func (e Entry) Translation() string {
	return strings.Join(e.Meanings, ", ")
}

// Dictionary maps a simplified-Chinese headword to its entry.
type Dictionary map[string]Entry

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines  int
	Comments    int
	Malformed   int
	Overwritten int
}

// Result holds the parsed dictionary and parser statistics.
type Result struct {
	Dictionary Dictionary
	Stats      Stats
}

// Parse reads a CEDICT file (lines of the form
// "TRAD SIMP [pin1 yin1] /meaning/meaning/") into a Dictionary keyed by
// simplified form. Later entries for a duplicate headword overwrite
// earlier ones. Comment lines (#) and malformed lines are skipped and
// counted; a file that yields no entries at all is an error.
func Parse(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	dict := make(Dictionary)
	var stats Stats

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		stats.TotalLines++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			stats.Comments++
			continue
		}

		entry, ok := parseLine(line)
		if !ok {
			stats.Malformed++
			continue
		}

		if _, dup := dict[entry.Simplified]; dup {
			stats.Overwritten++
		}
		dict[entry.Simplified] = entry
	}

	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("scanner error: %w", err)
	}

	if len(dict) == 0 {
		return Result{}, fmt.Errorf("no entries parsed from %s", path)
	}

	return Result{Dictionary: dict, Stats: stats}, nil
}

// parseLine splits one CEDICT line into an Entry.
// Format: TRAD SIMP [pinyin] /meaning 1/meaning 2/
func parseLine(line string) (Entry, bool) {
	head, glosses, ok := strings.Cut(line, "/")
	if !ok {
		return Entry{}, false
	}

	meanings := splitMeanings(glosses)
	if len(meanings) == 0 {
		return Entry{}, false
	}

	forms, pinyinPart, ok := strings.Cut(head, "[")
	if !ok {
		return Entry{}, false
	}
	pinyin, _, ok := strings.Cut(pinyinPart, "]")
	if !ok {
		return Entry{}, false
	}

	fields := strings.Fields(forms)
	if len(fields) < 2 {
		return Entry{}, false
	}

	return Entry{
		Traditional: fields[0],
		Simplified:  fields[1],
		Pinyin:      strings.TrimSpace(pinyin),
		Meanings:    meanings,
	}, true
}

func splitMeanings(glosses string) []string {
	var meanings []string
	for _, m := range strings.Split(glosses, "/") {
		m = strings.TrimSpace(m)
		if m != "" {
			meanings = append(meanings, m)
		}
	}
	return meanings
}
