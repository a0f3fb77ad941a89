package storage

import (
	"os"
	"path/filepath"
)

// Disk реализует service.ReportStorage поверх локальной файловой системы.
// Все каталоги создаются внутри root.
type Disk struct {
	root string
}

func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

// Create создает каталог directory вместе с родительскими каталогами.
// Если каталог уже существует, ничего не делает.
func (s *Disk) Create(directory string) error {
	return os.MkdirAll(s.path(directory), 0o755)
}

// Write записывает content в файл filename каталога directory, перезаписывая
// существующий файл. Каталог должен быть создан заранее.
func (s *Disk) Write(directory, filename, content string) error {
	return os.WriteFile(filepath.Join(s.path(directory), filename), []byte(content), 0o644)
}

func (s *Disk) path(directory string) string {
	return filepath.Join(s.root, directory)
}
