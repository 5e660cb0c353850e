package config

import (
	"reflect"
	"strings"
)

func koanfTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}
