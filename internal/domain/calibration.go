package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// digitWords lists the spelled-out digits recognized inside a line.
// A word's value is its index+1. "zero" is intentionally absent.
var digitWords = [...]string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// digitMatch is a single digit occurrence: the numeral character '1'..'9'
// (or '0'..'9' for numeric scans) and the byte index where it starts.
type digitMatch struct {
	char  byte
	index int
}

// firstWordDigit returns the leftmost occurrence of any digit word, searching
// each word as a raw substring. Overlapping or embedded occurrences count:
// "twone" matches "two" at 0 and "one" at 2.
func firstWordDigit(line string) (digitMatch, bool) {
	best := digitMatch{index: -1}
	for i, w := range digitWords {
		idx := strings.Index(line, w)
		if idx < 0 {
			continue
		}
		if best.index < 0 || idx < best.index {
			best = digitMatch{char: byte('1' + i), index: idx}
		}
	}
	return best, best.index >= 0
}

// lastWordDigit is the mirror of firstWordDigit: each word contributes only
// its rightmost occurrence, and words compete by that best position.
func lastWordDigit(line string) (digitMatch, bool) {
	best := digitMatch{index: -1}
	for i, w := range digitWords {
		idx := strings.LastIndex(line, w)
		if idx < 0 {
			continue
		}
		if idx > best.index {
			best = digitMatch{char: byte('1' + i), index: idx}
		}
	}
	return best, best.index >= 0
}

func firstNumericDigit(line string) (digitMatch, bool) {
	for i := 0; i < len(line); i++ {
		if line[i] >= '0' && line[i] <= '9' {
			return digitMatch{char: line[i], index: i}, true
		}
	}
	return digitMatch{}, false
}

func lastNumericDigit(line string) (digitMatch, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] >= '0' && line[i] <= '9' {
			return digitMatch{char: line[i], index: i}, true
		}
	}
	return digitMatch{}, false
}

// FirstDigit returns the leftmost digit of the line as a numeral character.
// Numeral characters and digit words are searched independently; the numeral
// wins only when it starts strictly earlier than the word.
func FirstDigit(line string) (byte, bool) {
	num, numOK := firstNumericDigit(line)
	word, wordOK := firstWordDigit(line)

	switch {
	case numOK && wordOK:
		if num.index < word.index {
			return num.char, true
		}
		return word.char, true
	case numOK:
		return num.char, true
	case wordOK:
		return word.char, true
	default:
		return 0, false
	}
}

// LastDigit returns the rightmost digit of the line as a numeral character.
// The numeral wins only when it starts strictly later than the word.
func LastDigit(line string) (byte, bool) {
	num, numOK := lastNumericDigit(line)
	word, wordOK := lastWordDigit(line)

	switch {
	case numOK && wordOK:
		if num.index > word.index {
			return num.char, true
		}
		return word.char, true
	case numOK:
		return num.char, true
	case wordOK:
		return word.char, true
	default:
		return 0, false
	}
}

// Calibration forms a line's two-digit calibration value by concatenating its
// first and last digit characters and parsing the pair as a decimal integer.
// A line with a single digit yields equal tens and units digits; a line with
// no digit at all is a contract violation and returns an invalid_input error,
// never a defaulted value.
func Calibration(line string) (int, error) {
	var pair strings.Builder

	if c, ok := FirstDigit(line); ok {
		pair.WriteByte(c)
	}
	if c, ok := LastDigit(line); ok {
		pair.WriteByte(c)
	}

	if pair.Len() != 2 {
		return 0, &OpError{
			Op:   "calibration.extract",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("line %q contains no digit", line),
		}
	}

	n, err := strconv.Atoi(pair.String())
	if err != nil {
		return 0, &OpError{
			Op:   "calibration.parse",
			Kind: KindExecution,
			Err:  err,
		}
	}
	return n, nil
}
