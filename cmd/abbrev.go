package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// expandLongFlags rewrites every abbreviated --option in args to the full
// name of the single long flag in fs it prefixes. Values of flags that take
// an argument and everything after "--" pass through untouched.
func expandLongFlags(fs *pflag.FlagSet, args []string) ([]string, error) {
	flags := map[string]*pflag.Flag{}
	var names []string
	fs.VisitAll(func(f *pflag.Flag) {
		flags[f.Name] = f
		names = append(names, f.Name)
	})
	sort.Strings(names)

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "--") {
			out = append(out, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		full, err := resolveLongFlag(names, name)
		if err != nil {
			return nil, err
		}

		if hasValue {
			out = append(out, "--"+full+"="+value)
			continue
		}
		out = append(out, "--"+full)

		// option argument
		if flags[full].NoOptDefVal == "" && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out, nil
}

func resolveLongFlag(names []string, prefix string) (string, error) {
	if prefix == "" {
		return "", &UsageError{Err: errors.New("unknown flag: --")}
	}

	var matches []string
	for _, n := range names {
		if n == prefix {
			return n, nil
		}
		if strings.HasPrefix(n, prefix) {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return "", &UsageError{Err: fmt.Errorf("unknown flag: --%s", prefix)}
	case 1:
		return matches[0], nil
	default:
		return "", &UsageError{Err: fmt.Errorf("ambiguous flag: --%s could be --%s", prefix, strings.Join(matches, ", --"))}
	}
}
