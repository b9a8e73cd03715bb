package main

import "strings"

// normalizeArgs folds the optional depth that may follow -r/--recursive into
// the flag itself, so "-r 3" reaches the flag parser as "--recursive=3".
// Any token after -r that does not start with a dash is taken as the depth,
// numeric or not; parseRecursion decides what to do with it.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if (arg == "-r" || arg == "--recursive") && i+1 < len(args) && isValueToken(args[i+1]) {
			out = append(out, "--recursive="+args[i+1])
			i++
			continue
		}
		out = append(out, arg)
	}
	return out
}

func isValueToken(s string) bool {
	return s != "" && !strings.HasPrefix(s, "-")
}
