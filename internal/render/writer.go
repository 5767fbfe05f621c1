package render

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ErrPathEscapesOutput is returned for generated file names that resolve
// outside the output directory.
var ErrPathEscapesOutput = errors.New("generated file escapes output directory")

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files below outputDir, creating
// directories as needed. Absolute names and names climbing out of
// outputDir are rejected.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		if !filepath.IsLocal(filepath.FromSlash(file.Filename)) {
			return errors.WithHintf(errors.Wrapf(ErrPathEscapesOutput, "%s", file.Filename),
				"file names must stay below %s", outputDir)
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, filepath.FromSlash(file.Filename))

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return errors.Wrapf(err, "creating directory for %s", file.Filename)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return errors.Wrapf(err, "writing file %s", file.Filename)
		}
	}

	return nil
}
