package companion

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "garden-planner-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

// DefaultDatasetPath is used when a configured dataset path does not exist.
const DefaultDatasetPath = "data/companions.json"

// DecodeJSON reads a JSON array of {from, to, type} records.
func DecodeJSON(r io.Reader) ([]Edge, error) {
	var edges []Edge
	if err := json.NewDecoder(r).Decode(&edges); err != nil {
		return nil, fmt.Errorf("decode json dataset: %w", err)
	}
	return edges, nil
}

// DecodeCSV reads "source,relation,destination" rows. The first row is the
// header. Blank rows and rows with a missing field are skipped.
func DecodeCSV(r io.Reader) ([]Edge, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var edges []Edge
	header := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode csv dataset: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(record) < 3 {
			continue
		}

		source := strings.TrimSpace(record[0])
		relation := strings.TrimSpace(record[1])
		destination := strings.TrimSpace(record[2])
		if source == "" || relation == "" || destination == "" {
			continue
		}
		edges = append(edges, Edge{From: source, To: destination, Type: EdgeType(relation)})
	}
	return edges, nil
}

type yamlDataset struct {
	Edges []Edge `yaml:"edges"`
}

// DecodeYAML reads a document with a top-level "edges" list.
func DecodeYAML(r io.Reader) ([]Edge, error) {
	var dataset yamlDataset
	if err := yaml.NewDecoder(r).Decode(&dataset); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml dataset: %w", err)
	}
	return dataset.Edges, nil
}

// Decode picks a decoder from the file extension of name.
func Decode(name string, r io.Reader) ([]Edge, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return DecodeJSON(r)
	case ".csv":
		return DecodeCSV(r)
	case ".yaml", ".yml":
		return DecodeYAML(r)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(name))
	}
}

// ResolvePath returns path if it exists, else DefaultDatasetPath if that exists.
func ResolvePath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if path != DefaultDatasetPath {
		if _, err := os.Stat(DefaultDatasetPath); err == nil {
			return DefaultDatasetPath, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrDatasetNotFound, path)
}

// ReadFile resolves and decodes a dataset file.
func ReadFile(path string) ([]Edge, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", resolved, err)
	}
	defer f.Close()

	return Decode(resolved, f)
}
