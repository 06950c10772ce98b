package vcs

// DetectDriverArgs recognizes git's seven-argument diff-driver
// protocol:
//
//	path old-file old-hex old-mode new-file new-hex new-mode
//
// and returns the two file paths to compare. It returns ok=false for
// any other argument shape.
func DetectDriverArgs(args []string) (oldFile, newFile string, ok bool) {
	if len(args) != 7 {
		return "", "", false
	}
	if !isGitHash(args[2]) || !isGitHash(args[5]) {
		return "", "", false
	}
	return args[1], args[4], true
}

// IsNullFile reports whether a driver path stands for a missing side
// (a created or deleted file).
func IsNullFile(path string) bool {
	switch path {
	case "/dev/null", "nul", "NUL":
		return true
	}
	return false
}

func isGitHash(s string) bool {
	if len(s) != 40 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
