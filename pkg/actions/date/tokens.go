package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

type token struct {
	value   string
	literal bool
}

// tokenize splits a format into runs of the same letter. Text inside single
// quotes and any non-letter is literal.
func tokenize(format string) []token {
	runes := []rune(format)
	tokens := make([]token, 0, len(runes))

	for i := 0; i < len(runes); {
		c := runes[i]

		if c == '\'' {
			j := i + 1
			for j < len(runes) && runes[j] != '\'' {
				j++
			}
			tokens = append(tokens, token{value: string(runes[i+1 : j]), literal: true})
			i = j + 1
			continue
		}

		j := i + 1
		for j < len(runes) && runes[j] == c {
			j++
		}
		tokens = append(tokens, token{value: string(runes[i:j]), literal: !unicode.IsLetter(c)})
		i = j
	}

	return tokens
}

func render(t time.Time, tokens []token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.literal {
			sb.WriteString(tok.value)
			continue
		}
		sb.WriteString(field(t, tok.value))
	}
	return sb.String()
}

// field renders one token. Unknown tokens are written as-is.
func field(t time.Time, tok string) string {
	switch tok {
	case "S":
		return strconv.Itoa(t.Nanosecond() / int(time.Millisecond))
	case "SSS":
		return pad(t.Nanosecond()/int(time.Millisecond), 3)
	case "s", "ss":
		return pad(t.Second(), len(tok))
	case "m", "mm":
		return pad(t.Minute(), len(tok))
	case "H", "HH":
		return pad(t.Hour(), len(tok))
	case "h", "hh":
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return pad(hour, len(tok))
	case "a":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "d", "dd":
		return pad(t.Day(), len(tok))
	case "o", "ooo":
		return pad(t.YearDay(), len(tok))
	case "E", "c":
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return strconv.Itoa(weekday)
	case "EEE", "ccc":
		return t.Weekday().String()[:3]
	case "EEEE", "cccc":
		return t.Weekday().String()
	case "EEEEE", "ccccc":
		return t.Weekday().String()[:1]
	case "M", "MM", "L", "LL":
		return pad(int(t.Month()), len(tok))
	case "MMM", "LLL":
		return t.Month().String()[:3]
	case "MMMM", "LLLL":
		return t.Month().String()
	case "MMMMM", "LLLLL":
		return t.Month().String()[:1]
	case "q", "qq":
		return pad((int(t.Month())+2)/3, len(tok))
	case "y":
		return strconv.Itoa(t.Year())
	case "yy":
		return pad(t.Year()%100, 2)
	case "yyyy", "yyyyyy":
		return pad(t.Year(), len(tok))
	case "W", "WW":
		_, week := t.ISOWeek()
		return pad(week, len(tok))
	case "kk":
		year, _ := t.ISOWeek()
		return pad(year%100, 2)
	case "kkkk":
		year, _ := t.ISOWeek()
		return pad(year, 4)
	case "Z":
		return offset(t, true)
	case "ZZ":
		return offset(t, false)
	case "ZZZ":
		return strings.Replace(offset(t, false), ":", "", 1)
	case "ZZZZ":
		return t.Format("MST")
	case "z":
		return t.Location().String()
	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)
	}
	return tok
}

func pad(n, width int) string {
	if n < 0 {
		return "-" + pad(-n, width)
	}
	return fmt.Sprintf("%0*d", width, n)
}

// offset renders the zone offset as +05:00, or in narrow form as +5 or +5:30.
func offset(t time.Time, narrow bool) string {
	_, seconds := t.Zone()
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours, minutes := seconds/3600, (seconds%3600)/60

	if narrow {
		if minutes == 0 {
			return sign + strconv.Itoa(hours)
		}
		return fmt.Sprintf("%s%d:%02d", sign, hours, minutes)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}
