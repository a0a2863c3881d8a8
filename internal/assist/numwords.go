package assist

import (
	"regexp"
	"strconv"
	"strings"
)

var numberWordValues = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

const (
	numberLiteralPattern = `\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`

	numberWordPattern = `(?:seventeen|thirteen|fourteen|eighteen|nineteen|fifteen|sixteen|` +
		`seventy|thousand|hundred|eleven|twelve|twenty|thirty|eighty|ninety|` +
		`forty|fifty|sixty|three|seven|eight|zero|four|five|nine|one|two|six|ten)`

	// numberPhrasePattern joins number words with spaces or hyphens. "and" is left
	// out so that range phrases like "between five and fifty" stay two numbers.
	numberPhrasePattern = numberWordPattern + `(?:[\s-]+` + numberWordPattern + `)*`

	// numberPattern matches either a digit literal or a word phrase.
	numberPattern = `(?:` + numberLiteralPattern + `|` + numberPhrasePattern + `)`
)

var (
	digitLiteralRe = regexp.MustCompile(numberLiteralPattern)
	wordTokenRe    = regexp.MustCompile(`[A-Za-z]+`)
	joinerRe       = regexp.MustCompile(`^[\s-]+$`)
)

type numberMatch struct {
	start int
	value float64
	text  string
}

// WordsToNumber returns the first number phrase in text, whether written with
// digits or English words. ok is false when no number is present.
func WordsToNumber(text string) (float64, bool) {
	m, ok := firstNumber(text)
	return m.value, ok
}

// ParseNumber is WordsToNumber rendered as a canonical decimal string: grouping
// commas are dropped and the written precision is kept, so "2.50" stays "2.50".
func ParseNumber(text string) (string, bool) {
	m, ok := firstNumber(text)
	return m.text, ok
}

func firstNumber(text string) (numberMatch, bool) {
	d, dok := firstDigitLiteral(text)
	w, wok := firstWordNumber(text)
	switch {
	case dok && wok:
		if w.start < d.start {
			return w, true
		}
		return d, true
	case dok:
		return d, true
	case wok:
		return w, true
	default:
		return numberMatch{}, false
	}
}

func firstDigitLiteral(text string) (numberMatch, bool) {
	loc := digitLiteralRe.FindStringIndex(text)
	if loc == nil {
		return numberMatch{}, false
	}
	clean := canonicalLiteral(text[loc[0]:loc[1]])
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return numberMatch{}, false
	}
	return numberMatch{start: loc[0], value: v, text: clean}, true
}

func canonicalLiteral(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func firstWordNumber(text string) (numberMatch, bool) {
	locs := wordTokenRe.FindAllStringIndex(text, -1)
	for i, loc := range locs {
		if _, ok := numberWordOrScale(strings.ToLower(text[loc[0]:loc[1]])); !ok {
			continue
		}
		words := collectPhrase(text, locs, i)
		v, ok := evalWords(words)
		if !ok {
			continue
		}
		return numberMatch{start: loc[0], value: v, text: strconv.FormatFloat(v, 'f', -1, 64)}, true
	}
	return numberMatch{}, false
}

// collectPhrase gathers consecutive number words from token i. "and" is only
// accepted right after a scale word and only when another number word follows.
func collectPhrase(text string, locs [][]int, i int) []string {
	token := func(j int) string { return strings.ToLower(text[locs[j][0]:locs[j][1]]) }

	words := []string{token(i)}
	end := locs[i][1]
	for j := i + 1; j < len(locs); j++ {
		if !joinerRe.MatchString(text[end:locs[j][0]]) {
			break
		}
		w := token(j)
		if w == "and" {
			prev := words[len(words)-1]
			if prev != "hundred" && prev != "thousand" {
				break
			}
			if j+1 >= len(locs) || !joinerRe.MatchString(text[locs[j][1]:locs[j+1][0]]) {
				break
			}
			if _, ok := numberWordOrScale(token(j + 1)); !ok {
				break
			}
			end = locs[j][1]
			continue
		}
		if _, ok := numberWordOrScale(w); !ok {
			break
		}
		words = append(words, w)
		end = locs[j][1]
	}
	return words
}

func numberWordOrScale(w string) (int, bool) {
	switch w {
	case "hundred":
		return 100, true
	case "thousand":
		return 1000, true
	}
	v, ok := numberWordValues[w]
	return v, ok
}

func evalWords(words []string) (float64, bool) {
	total, current := 0, 0
	for _, w := range words {
		switch w {
		case "hundred":
			if current == 0 {
				current = 1
			}
			current *= 100
		case "thousand":
			if current == 0 {
				current = 1
			}
			total += current * 1000
			current = 0
		default:
			v, ok := numberWordValues[w]
			if !ok {
				return 0, false
			}
			current += v
		}
	}
	return float64(total + current), true
}
