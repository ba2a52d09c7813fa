package ride

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// PairDelimiter separates label and value on a labelled summary line.
const PairDelimiter = ": "

// CadenceLabel gates the optional cadence clause. The check is a strict
// label comparison on position 4; anything else leaves the clause out.
const CadenceLabel = "cadence"

// minStatusPairs is the number of pairs the template reads positionally
// (distance, time, meanspeed, maxspeed and the cadence slot).
const minStatusPairs = 5

// Pair is one "label: value" line.
type Pair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ParsePairs splits each line on PairDelimiter.
//
// The label is the first part and the value the last non-empty part, so a
// line without a delimiter, or with nothing after it, yields a pair whose
// value is the label. Labels are not validated.
func ParsePairs(lines []string) []Pair {
	pairs := make([]Pair, 0, len(lines))
	for _, line := range lines {
		parts := splitPair(strings.TrimRight(line, "\r\n"))
		pairs = append(pairs, Pair{Label: parts[0], Value: parts[len(parts)-1]})
	}
	return pairs
}

// splitPair splits line on PairDelimiter and drops trailing empty parts.
// At least one part is always returned.
func splitPair(line string) []string {
	parts := strings.Split(line, PairDelimiter)
	for len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// BuildStatus renders the status update for a ride.
//
//	Today's #cycling stats: <distance> in <time> (mean: <mean>, max: <max>)[; cadence: <cadence>]. Grand total: <lifetime distance> in <lifetime time>
//
// The grand total always comes from the last two pairs.
func BuildStatus(pairs []Pair) (string, error) {
	if len(pairs) < minStatusPairs {
		return "", &MalformedInputError{
			Field:  "pairs",
			Reason: "need at least " + strconv.Itoa(minStatusPairs) + " label/value pairs, got " + strconv.Itoa(len(pairs)),
		}
	}

	var b strings.Builder
	b.WriteString("Today's #cycling stats: ")
	b.WriteString(pairs[0].Value)
	b.WriteString(" in ")
	b.WriteString(pairs[1].Value)
	b.WriteString(" (mean: ")
	b.WriteString(pairs[2].Value)
	b.WriteString(", max: ")
	b.WriteString(pairs[3].Value)
	b.WriteString(")")

	if pairs[4].Label == CadenceLabel {
		b.WriteString("; cadence: ")
		b.WriteString(pairs[4].Value)
	}

	n := len(pairs)
	b.WriteString(". Grand total: ")
	b.WriteString(pairs[n-2].Value)
	b.WriteString(" in ")
	b.WriteString(pairs[n-1].Value)

	return b.String(), nil
}

// StatusLength counts the characters of text the way posting services do:
// code points after NFC normalisation.
func StatusLength(text string) int {
	return utf8.RuneCountInString(norm.NFC.String(text))
}
