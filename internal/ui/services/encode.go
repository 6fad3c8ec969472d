package services

import (
	"encoding/json"
	"fmt"

	"github.com/Cyclone1070/commitsearch/internal/search"
	"gopkg.in/yaml.v3"
)

// UnsupportedFormatError is returned for view formats that have no encoder.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported view format: %s", e.Format)
}

func (e *UnsupportedFormatError) InvalidInput() bool { return true }

// EncodeLog serialises log as "json" or "yaml". A nil log encodes as an empty result.
func EncodeLog(log *search.Log, format string) ([]byte, error) {
	if log == nil {
		log = &search.Log{Commits: []search.Commit{}}
	}

	switch format {
	case "json":
		return json.MarshalIndent(log, "", "  ")
	case "yaml":
		return yaml.Marshal(log)
	default:
		return nil, &UnsupportedFormatError{Format: format}
	}
}
