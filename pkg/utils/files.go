package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ProgramKind tells how a program file is stored.
type ProgramKind int

const (
	KindAssembly ProgramKind = iota // .asm text
	KindBinary                      // .bin EXVM bytes
)

// KindOf picks the program format from the file extension.
func KindOf(path string) (ProgramKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asm", ".s":
		return KindAssembly, nil
	case ".bin", ".exvm":
		return KindBinary, nil
	}
	return 0, fmt.Errorf("unknown program format %q (want .asm or .bin)", filepath.Ext(path))
}

// ReadProgramFile resolves path and reads it, returning the absolute path
// alongside the contents.
func ReadProgramFile(path string) (fullPath string, data []byte, kind ProgramKind, err error) {
	kind, err = KindOf(path)
	if err != nil {
		return "", nil, 0, err
	}
	fullPath, _, err = GetPathInfo(path)
	if err != nil {
		return "", nil, 0, err
	}
	data, err = os.ReadFile(fullPath)
	if err != nil {
		return "", nil, 0, fmt.Errorf("read %s: %w", fullPath, err)
	}
	return fullPath, data, kind, nil
}
