package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/validation"
	bookmezaerrors "github.com/alexisbeaulieu97/bookmeza/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadThemeFile reads a component theme override file, for example:
//
//	components:
//	  Button:
//	    baseClasses: "border-rounded"
//	    variantClasses:
//	      primary: "bg-info"
//	    sizeClasses:
//	      small: "px-none"
//
// Unknown keys are rejected. An empty file yields an empty override.
func LoadThemeFile(path string) (*components.AppTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bookmezaerrors.NewParseError(path, 0, err)
	}
	return ParseTheme(path, data)
}

// ParseTheme decodes and validates override YAML. path is only used in errors.
func ParseTheme(path string, data []byte) (*components.AppTheme, error) {
	var theme components.AppTheme

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&theme); err != nil && !errors.Is(err, io.EOF) {
		return nil, bookmezaerrors.NewParseError(path, extractLine(err), err)
	}

	if err := validation.Struct(theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
