package config

import (
	"encoding/json"

	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"
)

// tomlParser adapts go-toml to koanf.Parser.
type tomlParser struct{}

// TOML returns a koanf parser for TOML config files.
func TOML() koanf.Parser { return &tomlParser{} }

func (p *tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *tomlParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return toml.Marshal(o)
}

type jsonParser struct{}

// JSON returns a koanf parser for JSON config files.
func JSON() koanf.Parser { return &jsonParser{} }

func (p *jsonParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *jsonParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return json.Marshal(o)
}
