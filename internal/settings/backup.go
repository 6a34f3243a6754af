package settings

import (
	"fmt"

	"github.com/spf13/afero"
)

// BackupSuffix is appended to a settings path to name its backup.
const BackupSuffix = ".bak"

// BackupPath returns the backup file path for the given settings file.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the settings file to its backup path, replacing any
// previous backup.
func CreateBackup(fs afero.Fs, path string) (string, error) {
	backupPath := BackupPath(path)
	if err := copyFile(fs, path, backupPath); err != nil {
		return "", fmt.Errorf("failed to create backup of %s: %w", path, err)
	}
	return backupPath, nil
}

// HasBackup reports whether a backup exists for the given settings file.
func HasBackup(fs afero.Fs, path string) bool {
	exists, err := afero.Exists(fs, BackupPath(path))
	return err == nil && exists
}

// RestoreFromBackup overwrites targetPath with the contents of backupPath.
func RestoreFromBackup(fs afero.Fs, backupPath, targetPath string) error {
	if err := copyFile(fs, backupPath, targetPath); err != nil {
		return fmt.Errorf("failed to restore %s from %s: %w", targetPath, backupPath, err)
	}
	return nil
}

func copyFile(fs afero.Fs, src, dst string) error {
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := afero.WriteFile(fs, dst, data, DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}
