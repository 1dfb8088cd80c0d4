// Package batch implements the JSON batch codec and driver: decode a
// JSON array of {regex, strings} records, compile and simulate each
// pattern against its candidates, and encode the verdicts back to JSON.
//
// A malformed document — not a JSON array of objects, or an object
// missing regex/strings, or a strings element that isn't a string —
// fails the whole batch with a BatchFormat error before any pattern is
// compiled. A malformed pattern inside an otherwise well-formed record
// is recorded against that record alone; every other record still runs.
package batch

import (
	"encoding/json"
	"runtime"
	"sync"

	"github.com/hadi16/rexnfa"
	"github.com/hadi16/rexnfa/internal/prefix"
	"github.com/hadi16/rexnfa/internal/rexerr"
)

// Record is one input element: a pattern and the candidates to test it
// against. Unknown JSON keys are ignored by ordinary field-subset
// decoding.
type Record struct {
	Regex   string   `json:"regex"`
	Strings []string `json:"strings"`
}

// Result is one output element. Strings is nil and Error is populated
// when Regex failed to compile; otherwise Error is empty and Strings
// maps each distinct candidate to its verdict.
type Result struct {
	Regex   string          `json:"regex"`
	Strings map[string]bool `json:"strings,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// OrderedEntry is one candidate's verdict, preserving the position it
// held in the input record.
type OrderedEntry struct {
	Candidate string
	Accepted  bool
}

// OrderedResult is the order- and multiplicity-preserving counterpart to
// Result: the map in Result collapses duplicate candidates, Entries
// does not.
type OrderedResult struct {
	Regex   string
	Entries []OrderedEntry
	Err     error
}

// Decode parses a JSON batch document into records. Any deviation from
// the {regex string, strings []string} shape yields a BatchFormat error
// and a nil record slice — the whole document is rejected.
func Decode(data []byte) ([]Record, *rexerr.RunnerError) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, rexerr.NewBatchFormatError("batch document is not a JSON array of objects: %s", err)
	}

	records := make([]Record, len(raw))
	for i, obj := range raw {
		regexRaw, ok := obj["regex"]
		if !ok {
			return nil, rexerr.NewBatchFormatError("record %d is missing required field %q", i, "regex")
		}
		var regex string
		if err := json.Unmarshal(regexRaw, &regex); err != nil {
			return nil, rexerr.NewBatchFormatError("record %d field %q is not a string: %s", i, "regex", err)
		}

		stringsRaw, ok := obj["strings"]
		if !ok {
			return nil, rexerr.NewBatchFormatError("record %d is missing required field %q", i, "strings")
		}
		var strs []string
		if err := json.Unmarshal(stringsRaw, &strs); err != nil {
			return nil, rexerr.NewBatchFormatError("record %d field %q is not an array of strings: %s", i, "strings", err)
		}

		records[i] = Record{Regex: regex, Strings: strs}
	}
	return records, nil
}

// Run compiles and simulates every record, concurrently, and returns
// both the deduplicating Result form (for JSON encoding) and the
// order-preserving OrderedResult form (for callers that need
// per-candidate, per-position results). Records are spread across a
// worker pool bounded by runtime.GOMAXPROCS(0); each record is compiled
// and matched against its candidates, in order, on one goroutine. Each
// goroutine writes only its own result index, so there is no
// synchronization needed beyond waiting for the pool to finish.
func Run(records []Record) ([]Result, []OrderedResult) {
	results := make([]Result, len(records))
	ordered := make([]OrderedResult, len(records))

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, rec := range records {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, rec Record) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], ordered[i] = runOne(rec)
		}(i, rec)
	}
	wg.Wait()
	return results, ordered
}

func runOne(rec Record) (Result, OrderedResult) {
	re, err := rexnfa.Compile(rec.Regex)
	if err != nil {
		return Result{Regex: rec.Regex, Error: err.Error()},
			OrderedResult{Regex: rec.Regex, Err: err}
	}

	filter, hasFilter := prefix.Extract(rec.Regex)

	strMap := make(map[string]bool, len(rec.Strings))
	entries := make([]OrderedEntry, len(rec.Strings))
	for i, s := range rec.Strings {
		accepted := false
		if !hasFilter || filter.MayMatch(s) {
			accepted = re.Matches(s)
		}
		strMap[s] = accepted
		entries[i] = OrderedEntry{Candidate: s, Accepted: accepted}
	}
	return Result{Regex: rec.Regex, Strings: strMap},
		OrderedResult{Regex: rec.Regex, Entries: entries}
}

// Encode renders results as a JSON array.
func Encode(results []Result) ([]byte, error) {
	return json.Marshal(results)
}
