package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "noondeals/internal/errors"
)

// WorkbookValidator checks the input and output paths of a generation run
// before any parsing starts, so path problems surface as clear errors
// instead of failures halfway through.
type WorkbookValidator struct {
	logger *slog.Logger
}

// NewWorkbookValidator creates a new validator.
func NewWorkbookValidator(logger *slog.Logger) *WorkbookValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookValidator{logger: logger}
}

// ValidateInputWorkbook checks that path names a readable Excel workbook.
func (v *WorkbookValidator) ValidateInputWorkbook(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Input workbook does not exist",
			slog.String("path", path))
		return apperrors.NewNotFoundError(fmt.Sprintf("input workbook %s", path))
	}
	if err != nil {
		v.logger.Error("Failed to stat input workbook",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("stat input workbook %s", path), err)
	}
	if info.IsDir() {
		v.logger.Error("Input path is a directory",
			slog.String("path", path))
		return apperrors.NewValidationError(fmt.Sprintf("input path %s is a directory, not a workbook", path))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".xls" {
		v.logger.Error("Input file is not an Excel workbook",
			slog.String("path", path),
			slog.String("extension", ext))
		return apperrors.NewValidationError(fmt.Sprintf("input file %s is not an Excel workbook (extension %q)", path, ext))
	}

	// Excel leaves ~$ lock files next to open workbooks.
	if strings.HasPrefix(filepath.Base(path), "~$") {
		v.logger.Error("Input file is an Excel lock file",
			slog.String("path", path))
		return apperrors.NewValidationError(fmt.Sprintf("input file %s is an Excel lock file", path))
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("Input workbook is not readable",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("input workbook %s is not readable", path), err)
	}
	file.Close()

	v.logger.Debug("Input workbook validated",
		slog.String("path", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputPath checks that path names an xlsx file in a writable
// directory, creating the directory if needed.
func (v *WorkbookValidator) ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return apperrors.NewValidationError("output path is empty")
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".xlsx" {
		v.logger.Error("Output path is not an xlsx file",
			slog.String("path", path),
			slog.String("extension", ext))
		return apperrors.NewValidationError(fmt.Sprintf("output path %s must end in .xlsx (extension %q)", path, ext))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("create output directory %s", dir), err)
	}

	// Verify the directory is writable with a probe file.
	probe := filepath.Join(dir, ".dealgen_write_probe")
	file, err := os.Create(probe)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	file.Close()
	os.Remove(probe)

	v.logger.Debug("Output path validated",
		slog.String("path", path))
	return nil
}
