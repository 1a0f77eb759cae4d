package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-ini/ini"
)

var (
	durationType = reflect.TypeOf(time.Duration(0))
	sectionType  = reflect.TypeOf((*ini.Section)(nil))
	keyType      = reflect.TypeOf((*ini.Key)(nil))
)

// MapToStruct fills the fields of v tagged with ini:"name" from the keys of
// section s. A field may carry a default:"value" tag used when the key is
// missing and useDefaults is set, and a parse:"Method" tag naming a method
// of v with the signature func(*ini.Section, *ini.Key) (T, error).
//
// Without a parse method, fields may be strings, booleans, integers or
// time.Duration.
func MapToStruct(s *ini.Section, v interface{}, useDefaults bool) error {
	ptr := reflect.ValueOf(v)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Struct {
		panic("MapToStruct requires a pointer to a struct")
	}
	val := ptr.Elem()
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		name := field.Tag.Get("ini")
		if name == "" || name == "-" {
			continue
		}
		key, err := s.GetKey(name)
		if err != nil {
			def, found := field.Tag.Lookup("default")
			if !useDefaults || !found {
				continue
			}
			key, _ = s.NewKey(name, def)
		}
		value, err := parseField(s, key, ptr, field)
		if err != nil {
			return fmt.Errorf("[%s].%s: %w", s.Name(), name, err)
		}
		val.Field(i).Set(value.Convert(field.Type))
	}
	return nil
}

func parseField(
	s *ini.Section, key *ini.Key, struc reflect.Value, field reflect.StructField,
) (reflect.Value, error) {
	if method := parseMethod(struc, field); method.IsValid() {
		out := method.Call([]reflect.Value{
			reflect.ValueOf(s), reflect.ValueOf(key),
		})
		if err, _ := out[1].Interface().(error); err != nil {
			return reflect.Value{}, err
		}
		return out[0], nil
	}

	var (
		res interface{}
		err error
	)
	switch ft := field.Type; {
	case ft == durationType:
		// ParseDuration accepts a bare 0, check the type before the kind
		res, err = key.Duration()
	case ft.Kind() == reflect.String:
		res = key.String()
	case ft.Kind() == reflect.Bool:
		res, err = key.Bool()
	case ft.Kind() == reflect.Int:
		res, err = key.Int()
	default:
		panic(fmt.Sprintf("%s: unsupported type %s without parse method",
			field.Name, ft))
	}
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(res), nil
}

func parseMethod(struc reflect.Value, field reflect.StructField) reflect.Value {
	name, found := field.Tag.Lookup("parse")
	if !found {
		return reflect.Value{}
	}
	method := struc.MethodByName(name)
	if !method.IsValid() {
		panic(fmt.Sprintf("(*%s).%s: method not found",
			struc.Elem().Type().Name(), name))
	}
	mt := method.Type()
	if mt.NumIn() != 2 || mt.In(0) != sectionType || mt.In(1) != keyType ||
		mt.NumOut() != 2 || !mt.Out(0).ConvertibleTo(field.Type) {
		panic(fmt.Sprintf("(*%s).%s: expected func(*ini.Section, *ini.Key) (%s, error)",
			struc.Elem().Type().Name(), name, field.Type))
	}
	return method
}
