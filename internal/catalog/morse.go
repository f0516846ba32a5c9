package catalog

import (
	"sort"
	"unicode"

	"github.com/verte-zerg/tuidrill/internal/model"
)

// MorseApp identifies the Morse drill in the run log.
const MorseApp = "morse"

var morseCode = map[string]string{
	"A": ".-", "B": "-...", "C": "-.-.", "D": "-..", "E": ".", "F": "..-.",
	"G": "--.", "H": "....", "I": "..", "J": ".---", "K": "-.-", "L": ".-..",
	"M": "--", "N": "-.", "O": "---", "P": ".--.", "Q": "--.-", "R": ".-.",
	"S": "...", "T": "-", "U": "..-", "V": "...-", "W": ".--", "X": "-..-",
	"Y": "-.--", "Z": "--..",
	"1": ".----", "2": "..---", "3": "...--", "4": "....-", "5": ".....",
	"6": "-....", "7": "--...", "8": "---..", "9": "----.", "0": "-----",
	".": ".-.-.-", ",": "--..--", "?": "..--..", "'": ".----.", "!": "-.-.--",
	"/": "-..-.", "(": "-.--.", ")": "-.--.-", "&": ".-...", ":": "---...",
	";": "-.-.-.", "=": "-...-", "+": ".-.-.", "-": "-....-", "_": "..--.-",
	"\"": ".-..-.", "$": "...-..-", "@": ".--.-.",
}

const (
	groupLetters     = "Letters"
	groupDigits      = "Digits"
	groupPunctuation = "Punctuation"
)

// Morse builds the Morse code catalog.
func Morse() *Catalog {
	var letters, digits, punct []string
	for ch := range morseCode {
		r := []rune(ch)[0]
		switch {
		case unicode.IsLetter(r):
			letters = append(letters, ch)
		case unicode.IsDigit(r):
			digits = append(digits, ch)
		default:
			punct = append(punct, ch)
		}
	}
	sort.Strings(letters)
	sort.Strings(digits)
	sort.Strings(punct)

	half := len(punct) / 2
	all := make([]string, 0, len(morseCode))
	all = append(all, letters...)
	all = append(all, digits...)
	all = append(all, punct...)

	c := &Catalog{
		App:   MorseApp,
		Title: "Morse code trainer",
		Kind:  model.AnswerSymbols,
		Categories: []model.Category{
			morseCategory("Letters A-I", letters[:9]),
			morseCategory("Letters J-R", letters[9:18]),
			morseCategory("Letters S-Z", letters[18:]),
			morseCategory("Digits 0-9", digits),
			morseCategory("Punctuation (part 1)", punct[:half]),
			morseCategory("Punctuation (part 2)", punct[half:]),
			morseCategory("Everything", all),
		},
	}

	entries := make([]model.ReferenceEntry, 0, len(morseCode))
	for _, group := range []struct {
		name  string
		chars []string
	}{
		{groupLetters, letters},
		{groupDigits, digits},
		{groupPunctuation, punct},
	} {
		for _, ch := range group.chars {
			entries = append(entries, model.ReferenceEntry{Group: group.name, Prompt: ch, Answer: morseCode[ch]})
		}
	}
	sortReference(entries, []string{groupLetters, groupDigits, groupPunctuation})
	c.reference = entries
	return c
}

func morseCategory(name string, chars []string) model.Category {
	items := make([]model.Item, len(chars))
	for i, ch := range chars {
		items[i] = model.Item{Prompt: ch, Answer: morseCode[ch]}
	}
	return model.Category{Name: name, Kind: model.AnswerSymbols, Items: items}
}
