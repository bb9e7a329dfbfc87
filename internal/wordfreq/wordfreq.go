// Package wordfreq ranks the most frequent words across a set of texts.
//
// Words are maximal runs of unicode letters, digits and underscores, matched
// case-insensitively. Every token counts: no stop words are dropped. Ties are
// broken by first appearance in the joined text.
package wordfreq

import (
	"bytes"
	"cmp"
	"encoding/json"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const DefaultTopN = 5

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

type Outcome int

const (
	OK Outcome = iota
	// NoData means there were no texts to analyze at all.
	NoData
	// NoTokens means texts existed but none of them contained a word.
	NoTokens
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case NoData:
		return "no_data"
	case NoTokens:
		return "no_tokens"
	default:
		return "unknown"
	}
}

type WordCount struct {
	Word  string
	Count int
}

// Ranking is ordered by rank and encodes as a JSON object in that order.
type Ranking []WordCount

func (r Ranking) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, wc := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(wc.Word)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(wc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Map drops the ordering.
func (r Ranking) Map() map[string]int {
	m := make(map[string]int, len(r))
	for _, wc := range r {
		m[wc.Word] = wc.Count
	}
	return m
}

type Result struct {
	Outcome Outcome
	Words   Ranking
}

type Analyzer struct {
	topN int
}

func New(topN int) *Analyzer {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Analyzer{topN: topN}
}

func (a *Analyzer) Compute(descriptions []string) Result {
	if len(descriptions) == 0 {
		return Result{Outcome: NoData}
	}

	tokens := Tokenize(strings.Join(descriptions, " "))
	if len(tokens) == 0 {
		return Result{Outcome: NoTokens}
	}

	return Result{Outcome: OK, Words: Rank(tokens, a.topN)}
}

// Tokenize lowercases text and returns its words in order of appearance.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// Rank counts tokens and returns the n most frequent. Equal counts keep the
// order in which the words first appeared.
func Rank(tokens []string, n int) Ranking {
	index := make(map[string]int, len(tokens))
	var counts Ranking
	for _, tok := range tokens {
		if i, ok := index[tok]; ok {
			counts[i].Count++
			continue
		}
		index[tok] = len(counts)
		counts = append(counts, WordCount{Word: tok, Count: 1})
	}

	slices.SortStableFunc(counts, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
