package builder

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// copyStaticAssets mirrors the theme's static directory into the output
// tree. A theme without static assets is valid.
func copyStaticAssets(contentDir, outputDir string) error {
	source := filepath.Join(contentDir, themeDir, staticDir)
	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("builder: theme static dir: %w", err)
	}

	target := filepath.Join(outputDir, staticDir)

	return filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			return fmt.Errorf("builder: asset %s: %w", path, err)
		}
		dest := filepath.Join(target, rel)

		if entry.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		return copyFile(path, dest)
	})
}

func copyFile(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("builder: open asset %s: %w", source, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("builder: ensure asset dir for %s: %w", dest, err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("builder: create asset %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("builder: copy asset %s: %w", dest, err)
	}
	return out.Close()
}
