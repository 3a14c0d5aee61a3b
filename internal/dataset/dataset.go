// Package dataset loads table records from YAML or JSON documents while
// keeping each record's key order.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	tkerrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Dataset is a decoded record set. Columns is set only when the document
// declares it.
type Dataset struct {
	Columns []string
	Records []components.Record
}

// Load reads and decodes the dataset file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tkerrors.NewParseError(path, 0, err)
	}
	return Decode(bytes.NewReader(data), path)
}

// Decode reads a dataset document from r. The document is either a
// sequence of mappings or a mapping with a "records" sequence and an
// optional "columns" list. name labels errors.
func Decode(r io.Reader, name string) (*Dataset, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Dataset{}, nil
		}
		return nil, tkerrors.NewParseError(name, extractLine(err), err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		records, err := decodeRecords(name, root)
		if err != nil {
			return nil, err
		}
		return &Dataset{Records: records}, nil
	case yaml.MappingNode:
		return decodeEnvelope(name, root)
	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return &Dataset{}, nil
		}
	}
	return nil, tkerrors.NewParseError(name, root.Line, errors.New("expected a list of records"))
}

func decodeEnvelope(name string, node *yaml.Node) (*Dataset, error) {
	ds := &Dataset{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "records":
			if value.Kind != yaml.SequenceNode {
				return nil, tkerrors.NewParseError(name, value.Line, errors.New("records must be a list"))
			}
			records, err := decodeRecords(name, value)
			if err != nil {
				return nil, err
			}
			ds.Records = records
		case "columns":
			if err := value.Decode(&ds.Columns); err != nil {
				return nil, tkerrors.NewParseError(name, value.Line, fmt.Errorf("columns: %w", err))
			}
		default:
			return nil, tkerrors.NewParseError(name, key.Line, fmt.Errorf("unknown field %q", key.Value))
		}
	}
	return ds, nil
}

func decodeRecords(name string, node *yaml.Node) ([]components.Record, error) {
	records := make([]components.Record, 0, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, tkerrors.NewParseError(name, item.Line, fmt.Errorf("record %d is not a mapping", i))
		}

		var record components.Record
		for j := 0; j+1 < len(item.Content); j += 2 {
			key, value := item.Content[j], item.Content[j+1]
			scalar, err := decodeScalar(value)
			if err != nil {
				field := fmt.Sprintf("records[%d].%s", i, key.Value)
				return nil, tkerrors.NewParseError(name, value.Line, tkerrors.NewValidationError(field, err.Error(), err))
			}
			record = record.Set(key.Value, scalar)
		}
		records = append(records, record)
	}
	return records, nil
}

// decodeScalar turns a scalar node into a string, int, float64, bool or nil.
func decodeScalar(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return nil, errors.New("value must be a string, number, bool or null")
	}

	switch node.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err := node.Decode(&b)
		return b, err
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return node.Value, nil
		}
		return n, nil
	case "!!float":
		var f float64
		err := node.Decode(&f)
		return f, err
	default:
		return node.Value, nil
	}
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
