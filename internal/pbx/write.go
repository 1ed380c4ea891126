package pbx

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteManifest commits the patched text over the manifest. The content
// is written to a temp file in the same directory and renamed into place,
// so a crash mid-write cannot leave a half-written project file. With
// backup set, the original is first copied aside with a timestamp suffix.
func WriteManifest(path, content string, backup bool) error {
	if backup {
		orig, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read original for backup: %w", err)
		}
		bak := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102-150405"))
		if err := os.WriteFile(bak, orig, 0644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pbxproj-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	// Keep the original's permissions; CreateTemp defaults to 0600.
	if fi, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpName, fi.Mode())
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace manifest: %w", err)
	}
	return nil
}
