package command

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/arthur-debert/ddbg/pkg/errors"
)

// nextWord splits s into its first whitespace-separated word and the rest.
func nextWord(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], strings.TrimLeftFunc(s[end:], unicode.IsSpace)
}

// hasKeyword reports whether s starts with the keyword kw followed by
// whitespace or the end of the text, and returns what follows it.
func hasKeyword(s, kw string) (string, bool) {
	if !strings.HasPrefix(s, kw) {
		return "", false
	}
	rest := s[len(kw):]
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	return rest, true
}

// parseBreakpointNumber parses a breakpoint number or $bpnum, the number
// of the last breakpoint created.
func parseBreakpointNumber(env *Env, word string) (int, error) {
	if word == "$bpnum" {
		if n := env.Manager.LastNumber(); n > 0 {
			return n, nil
		}
		return 0, errors.Newf(errors.ErrInvalidInput, MsgBadBpArgument, word)
	}
	n, err := strconv.Atoi(word)
	if err != nil || n <= 0 {
		return 0, errors.Newf(errors.ErrInvalidInput, MsgBadBpArgument, word)
	}
	return n, nil
}

// parseBreakpointNumbers parses a list of numbers and N-M ranges.
func parseBreakpointNumbers(env *Env, arg string) ([]int, error) {
	var numbers []int
	for _, word := range strings.Fields(arg) {
		if lo, hi, ok := strings.Cut(word, "-"); ok && lo != "" {
			from, err := parseBreakpointNumber(env, lo)
			if err != nil {
				return nil, err
			}
			to, err := parseBreakpointNumber(env, hi)
			if err != nil || to < from {
				return nil, errors.Newf(errors.ErrInvalidInput, MsgBadBpArgument, word)
			}
			for n := from; n <= to; n++ {
				numbers = append(numbers, n)
			}
			continue
		}
		n, err := parseBreakpointNumber(env, word)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// parseOnOff parses the boolean values accepted by `set` commands.
func parseOnOff(arg string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "on", "1", "yes", "enable":
		return true, nil
	case "off", "0", "no", "disable":
		return false, nil
	default:
		return false, errors.New(errors.ErrInvalidInput, MsgOnOffExpected)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
