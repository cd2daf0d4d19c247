package scorelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// legacyLinePattern matches plain-text events such as
// "INFO:root:Parsed resume: alice.pdf, Score: 72".
var legacyLinePattern = regexp.MustCompile(`Parsed resume: (.*), Score: (-?\d+)\s*$`)

// ReadFile reads all scoring events from the log at path.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadEntries(f)
}

// ReadEntries parses scoring events in file order. JSON lines written by FileSink and
// plain-text "Parsed resume: <file>, Score: <n>" lines are both accepted; anything else is skipped.
func ReadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if entry, ok := parseLine(line); ok {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("failed to read log: %w", err)
	}

	return entries, nil
}

type jsonRecord struct {
	Entry
	Msg string `json:"msg"`
}

func parseLine(line string) (Entry, bool) {
	if strings.HasPrefix(line, "{") {
		var rec jsonRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil || rec.Msg != EventMessage {
			return Entry{}, false
		}
		return rec.Entry, true
	}

	m := legacyLinePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	score, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, false
	}
	return Entry{Filename: m[1], Score: score}, true
}
