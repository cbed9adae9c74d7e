package settings

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlFile is a koanf provider for a settings file on disk.
type yamlFile string

func (y yamlFile) ReadBytes() ([]byte, error) {
	return os.ReadFile(string(y))
}

func (y yamlFile) Read() (map[string]any, error) {
	return nil, errors.New("yaml file provider requires a parser")
}

// yamlParser is a koanf parser backed by yaml.v3.
type yamlParser struct{}

func (yamlParser) Unmarshal(b []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (yamlParser) Marshal(m map[string]any) ([]byte, error) {
	return yaml.Marshal(m)
}
