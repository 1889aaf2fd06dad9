// assets/embed.go
//
// Embedded defaults shipped with the binary so a replay runs even when no
// point log is configured.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed rally.txt
var FS embed.FS

// readLines returns the trimmed, non-empty, non-comment lines of an embedded file.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DefaultRally returns the embedded sample point log, one token per entry.
func DefaultRally() ([]string, error) {
	return readLines("rally.txt")
}
