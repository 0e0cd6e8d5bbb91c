package cmd

import "strings"

// legacyFlags maps the multi-letter single-dash aliases onto long flags;
// pflag shorthands are limited to one character.
var legacyFlags = map[string]string{
	"-in":     "--input_dir",
	"-out":    "--output_path",
	"-ignore": "--ignore_file_path",
}

// normalizeArgs rewrites legacy aliases, including the -flag=value form.
// Arguments after "--" are left alone.
func normalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(normalized, args[i:]...)
		}
		name, value, hasValue := strings.Cut(arg, "=")
		long, ok := legacyFlags[name]
		switch {
		case !ok:
			normalized = append(normalized, arg)
		case hasValue:
			normalized = append(normalized, long+"="+value)
		default:
			normalized = append(normalized, long)
		}
	}
	return normalized
}
