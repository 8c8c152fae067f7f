package utils

import (
	"math"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// TOMLSection is one [table] of a TOML file read without a schema.
type TOMLSection map[string]any

// DecodeTOMLFile decodes path into v. Keys v has no field for are logged and
// otherwise ignored.
func DecodeTOMLFile(path string, v any) error {
	md, err := toml.DecodeFile(path, v)
	if err != nil {
		log.Warnf("TOML parsing error in %s: %v. Attempting partial recovery...", path, err)
		return err
	}
	for _, key := range md.Undecoded() {
		log.Warnf("Ignoring unknown key %q in %s", key.String(), path)
	}
	return nil
}

// ReadTOMLSections reads the tables of path by name. Top level values that
// are not tables are dropped.
func ReadTOMLSections(path string) (map[string]TOMLSection, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, err
	}
	sections := make(map[string]TOMLSection, len(raw))
	for name, v := range raw {
		if table, ok := v.(map[string]any); ok {
			sections[name] = table
		}
	}
	return sections, nil
}

// String returns the string at key. A value of another type is logged and
// reported missing.
func (s TOMLSection) String(key string) (string, bool) {
	v, ok := s.lookup(key)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	if !ok {
		log.Warnf("Ignoring %s = %v: want a string", key, v)
	}
	return str, ok
}

// Int returns the integer at key when it fits an int.
func (s TOMLSection) Int(key string) (int, bool) {
	v, ok := s.lookup(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int64)
	if !ok || n < math.MinInt || n > math.MaxInt {
		log.Warnf("Ignoring %s = %v: want an integer", key, v)
		return 0, false
	}
	return int(n), true
}

// Bool returns the boolean at key.
func (s TOMLSection) Bool(key string) (bool, bool) {
	v, ok := s.lookup(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	if !ok {
		log.Warnf("Ignoring %s = %v: want true or false", key, v)
	}
	return b, ok
}

func (s TOMLSection) lookup(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	return v, ok
}
