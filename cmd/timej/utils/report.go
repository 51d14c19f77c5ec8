package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/darkyzhou/seele/timej/cmd/timej/entities"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// WriteReport stores the report as JSON at path, truncating any previous content.
func WriteReport(path string, report *entities.ExecutionReport) error {
	if err := validate.Var(path, "required,filepath"); err != nil {
		return fmt.Errorf("Invalid report file path %q: %w", path, err)
	}

	output, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("Error marshalling the report: %w", err)
	}

	file, err := prepareOutFile(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(append(output, '\n')); err != nil {
		return fmt.Errorf("Error writing the report to %s: %w", path, err)
	}
	return file.Close()
}

func prepareOutFile(path string) (*os.File, error) {
	modes := os.O_WRONLY | os.O_TRUNC
	if _, err := os.Stat(path); os.IsNotExist(err) {
		modes = modes | os.O_CREATE | os.O_EXCL
	}

	file, err := os.OpenFile(path, modes, 0664)
	if err != nil {
		return nil, fmt.Errorf("Error opening the file: %w", err)
	}
	return file, nil
}
