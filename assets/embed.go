// Package assets embeds the default word list and the SQL migrations.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

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
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded secret words, lowercased, comments skipped.
func WordList() ([]string, error) {
	return readLines("words.txt")
}

// Migrations returns the embedded sql/ directory rooted at its own path.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
