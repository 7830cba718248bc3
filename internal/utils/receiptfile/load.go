package receiptfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/receipt_processor/internal/dto"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a receipt file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the receipt stored at path.
func Load(path string) (dto.ProcessReceiptRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dto.ProcessReceiptRequest{}, fmt.Errorf("read receipt file: %w", err)
	}
	return Decode(data, FormatForPath(path))
}

// Decode parses data as a receipt in the given format.
func Decode(data []byte, format Format) (dto.ProcessReceiptRequest, error) {
	var req dto.ProcessReceiptRequest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &req); err != nil {
			return dto.ProcessReceiptRequest{}, fmt.Errorf("decode yaml receipt: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &req); err != nil {
			return dto.ProcessReceiptRequest{}, fmt.Errorf("decode json receipt: %w", err)
		}
	default:
		return dto.ProcessReceiptRequest{}, fmt.Errorf("unsupported receipt format %q", format)
	}
	return req, nil
}
