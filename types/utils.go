package types

import (
	"reflect"
	"strings"
)

// FieldByPath resolves a dotted path of exported struct field names, such as
// "Address.City", against instance. Pointers are followed along the way.
func FieldByPath(instance any, fieldPath string) (any, bool) {
	v, _, ok := FieldPathIndex(instance, fieldPath)
	return v, ok
}

// FieldPathIndex is FieldByPath that also reports the field index chain, which
// reflect.Value.FieldByIndex can reuse for further instances of the same type.
func FieldPathIndex(instance any, fieldPath string) (any, []int, bool) {
	valueOfIns := reflect.ValueOf(instance)
	if !valueOfIns.IsValid() || fieldPath == "" {
		return nil, nil, false
	}
	fieldNames := strings.Split(fieldPath, ".")
	indices := make([]int, 0, len(fieldNames))
	for _, name := range fieldNames {
		v := reflect.Indirect(valueOfIns)
		if !v.IsValid() || v.Kind() != reflect.Struct {
			return nil, nil, false
		}
		field, ok := v.Type().FieldByName(name)
		if !ok || !field.IsExported() || len(field.Index) != 1 {
			return nil, nil, false
		}
		indices = append(indices, field.Index[0])
		valueOfIns = v.Field(field.Index[0])
	}
	return valueOfIns.Interface(), indices, true
}
