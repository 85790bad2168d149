package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sessionRule keeps a project's saved inventory out of version control.
const sessionRule = SessionDirName + "/"

// IgnoreAction reports what EnsureGitignore did to a project's .gitignore.
type IgnoreAction int

const (
	// IgnoreUnchanged means the file already ignored the session directory.
	IgnoreUnchanged IgnoreAction = iota
	// IgnoreCreated means a new .gitignore was written.
	IgnoreCreated
	// IgnoreAppended means the session rule was added to an existing file.
	IgnoreAppended
)

// GitignoreContent returns the .gitignore written into a new project
// .carbonfocus directory. config.yaml stays tracked.
func GitignoreContent() string {
	return "# carbonfocus project data (auto-generated)\n" +
		"# config.yaml is shared; the saved inventory and logs are local.\n" +
		sessionRule + "\n" +
		"*.log\n"
}

// EnsureGitignore makes dir/.gitignore ignore the session directory. A
// missing file is created with GitignoreContent. An existing file keeps its
// lines and gets the session rule appended when no line covers it.
func EnsureGitignore(dir string) (IgnoreAction, error) {
	path := filepath.Join(dir, ".gitignore")

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err = os.MkdirAll(dir, 0o750); err != nil {
			return IgnoreUnchanged, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		//nolint:gosec // .gitignore is meant to be world-readable.
		if err = os.WriteFile(path, []byte(GitignoreContent()), 0o644); err != nil {
			return IgnoreUnchanged, fmt.Errorf("writing %s: %w", path, err)
		}
		return IgnoreCreated, nil
	case err != nil:
		return IgnoreUnchanged, fmt.Errorf("reading %s: %w", path, err)
	}

	if ignoresSession(data) {
		return IgnoreUnchanged, nil
	}

	var buf bytes.Buffer
	buf.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteString(sessionRule + "\n")
	//nolint:gosec // .gitignore is meant to be world-readable.
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return IgnoreUnchanged, fmt.Errorf("updating %s: %w", path, err)
	}
	return IgnoreAppended, nil
}

// ignoresSession reports whether any rule names the session directory.
func ignoresSession(data []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimPrefix(strings.TrimSpace(sc.Text()), "/")
		if line == SessionDirName || line == sessionRule {
			return true
		}
	}
	return false
}
