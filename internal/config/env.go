package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// overrideFromEnv replaces any config field whose `env` tag names a set
// environment variable. Unset variables leave the YAML/default value in
// place; a set variable that cannot be converted fails the load.
func overrideFromEnv(config *Config) error {
	return overrideSection(reflect.ValueOf(config).Elem())
}

func overrideSection(section reflect.Value) error {
	sectionType := section.Type()

	for i := 0; i < section.NumField(); i++ {
		field := section.Field(i)

		// Config sections are nested anonymous structs; recurse into them.
		if field.Kind() == reflect.Struct {
			if err := overrideSection(field); err != nil {
				return err
			}
			continue
		}

		name := sectionType.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		raw, set := os.LookupEnv(name)
		if !set {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s must be an integer, got %q", name, raw)
			}
			field.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%s must be a boolean, got %q", name, raw)
			}
			field.SetBool(b)
		default:
			return fmt.Errorf("%s maps to unsupported field kind %s", name, field.Kind())
		}
	}

	return nil
}
