package main

import (
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sznuper/benchpost/internal/config"
)

// registerOptionFlags adds a persistent --flag for every field in config.Options,
// deriving the flag name from the yaml struct tag (snake_case → kebab-case)
// and the default from config.Defaults.
func registerOptionFlags(cmd *cobra.Command) {
	defaults := reflect.ValueOf(config.Defaults())
	t := defaults.Type()
	flags := cmd.PersistentFlags()
	for i := range t.NumField() {
		field := t.Field(i)
		name := flagName(field)
		usage := field.Tag.Get("usage")
		def := defaults.Field(i)

		switch field.Type.Kind() {
		case reflect.String:
			flags.String(name, def.String(), usage)
		case reflect.Bool:
			flags.Bool(name, def.Bool(), usage)
		case reflect.Slice:
			flags.StringArray(name, nil, usage)
		case reflect.Map:
			flags.StringToString(name, nil, usage)
		}
	}
}

// applyOptionFlags overlays CLI flag values onto opts. Only flags
// explicitly set by the user are applied.
func applyOptionFlags(cmd *cobra.Command, opts *config.Options) {
	t := reflect.TypeOf(*opts)
	v := reflect.ValueOf(opts).Elem()
	flags := cmd.Flags()
	for i := range t.NumField() {
		name := flagName(t.Field(i))
		if !flags.Changed(name) {
			continue
		}

		switch t.Field(i).Type.Kind() {
		case reflect.String:
			val, _ := flags.GetString(name)
			v.Field(i).SetString(val)
		case reflect.Bool:
			val, _ := flags.GetBool(name)
			v.Field(i).SetBool(val)
		case reflect.Slice:
			val, _ := flags.GetStringArray(name)
			v.Field(i).Set(reflect.ValueOf(val))
		case reflect.Map:
			val, _ := flags.GetStringToString(name)
			v.Field(i).Set(reflect.ValueOf(val))
		}
	}
}

func flagName(f reflect.StructField) string {
	return strings.ReplaceAll(f.Tag.Get("yaml"), "_", "-")
}
