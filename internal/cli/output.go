package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/macropower/kclpath/pkg/pathparse"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Record is the result of one path operation, as written by the json and
// yaml output formats.
type Record struct {
	Args   []string `json:"args"   yaml:"args"`
	Result any      `json:"result" yaml:"result"`
}

func validateOutput(format string) error {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	}

	return fmt.Errorf("%w: unknown output format %q", ErrInvalidArgument, format)
}

func writeRecords(w io.Writer, format string, records []Record) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}

		return nil

	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}

		return nil
	}

	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(formatText(r.Result))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func formatText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case pathparse.Parts:
		return v.Prefix + "\t" + v.Hierarchy
	default:
		return fmt.Sprint(v)
	}
}
