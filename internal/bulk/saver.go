package bulk

import (
	"fmt"
	"os"
	"path/filepath"
)

type Saver interface {
	Save(name string, data []byte) error
}

// DirSaver сохраняет файлы в каталог, создавая его при необходимости
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(name string, data []byte) error {
	name = filepath.Base(name)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid file name %q", name)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
