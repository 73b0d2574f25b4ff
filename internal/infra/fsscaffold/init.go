package fsscaffold

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/envlines/internal/app/template"
	"github.com/aalvaropc/envlines/internal/domain"
	"github.com/aalvaropc/envlines/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init renders the starter files into spec.Root. Existing files are kept
// unless force is set.
func (i *Initializer) Init(spec domain.ScaffoldSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return scaffoldError(root, err)
	}

	if err := ensureGitignore(root, spec.Source.Path); err != nil {
		return scaffoldError(filepath.Join(root, ".gitignore"), err)
	}

	vars := map[string]string{
		"path":     strconv.Quote(spec.Source.Path),
		"encoding": strconv.Quote(spec.Source.Encoding),
		"prefix":   strconv.Quote(spec.Prefix),
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		out, err := template.RenderString(string(b), vars)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
			return scaffoldError(dst, err)
		}
		return nil
	})
}

// ensureGitignore makes sure the env file, which usually holds secrets, is
// ignored by git. Paths outside root are left alone.
func ensureGitignore(root, envPath string) error {
	const header = "# envlines"

	entry, ok := gitignoreEntry(root, envPath)
	if !ok {
		return nil
	}
	entries := []string{entry}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func gitignoreEntry(root, envPath string) (string, bool) {
	if strings.TrimSpace(envPath) == "" {
		return "", false
	}

	p := envPath
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func scaffoldError(path string, err error) error {
	return &domain.OpError{
		Op:   "fsscaffold.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
