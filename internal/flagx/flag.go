// Package flagx lets several packages parse their own flags from one argument
// list without tripping over each other's unknown flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// flagName strips the leading dashes and any "=value" suffix, so "-c",
// "--c" and "-c=x" all yield "c".
func flagName(arg string) string {
	name := strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name
}

// Filter keeps only the flags named in allowed, along with their values. Names
// are given without dashes; both the single- and double-dash spellings match.
// A value is either attached with '=' or the next argument when that does not
// start with a dash.
func Filter(args []string, allowed ...string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		keep[strings.TrimLeft(name, "-")] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if _, ok := keep[flagName(arg)]; !ok {
			continue
		}

		out = append(out, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigPath returns the JSON config path given with -c or -config, or "" when
// neither is present. When both appear the last one wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(Filter(args, "c", "config"))

	return path
}
