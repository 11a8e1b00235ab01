// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

const scalarKey = "value"

var timeType = reflect.TypeFor[time.Time]()

// tableRow is one FIELD/VALUE line.
type tableRow struct {
	key   string
	value string
}

func (w *Writer) serializeTable(v any) error {
	rows := tableRows(v)
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w.output, "<empty>")
		return err
	}

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.key, r.value)
	}
	return tw.Flush()
}

// tableRows lists the leaves of v in field declaration order. Keys are the
// dotted json names, so table output lines up with the JSON report. Embedded
// structs add their fields without a prefix and map entries come in key order.
func tableRows(v any) []tableRow {
	var rows []tableRow
	walkTable(&rows, reflect.ValueOf(v), "")
	return rows
}

func walkTable(rows *[]tableRow, val reflect.Value, key string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if key != "" {
				*rows = append(*rows, tableRow{key: key, value: "-"})
			}
			return
		}
		val = val.Elem()
	}

	if key == "" {
		key = scalarKey
		if val.Kind() == reflect.Struct || val.Kind() == reflect.Map {
			key = ""
		}
	}

	switch {
	case val.Type() == timeType:
		t, _ := val.Interface().(time.Time)
		*rows = append(*rows, tableRow{key: key, value: t.UTC().Format(time.RFC3339)})
	case val.Kind() == reflect.Struct:
		typ := val.Type()
		for i := range typ.NumField() {
			name, ok := tableName(typ.Field(i))
			if !ok {
				continue
			}
			walkTable(rows, val.Field(i), joinKey(key, name))
		}
	case val.Kind() == reflect.Map:
		keys := val.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
		})
		for _, k := range keys {
			walkTable(rows, val.MapIndex(k), joinKey(key, fmt.Sprint(k.Interface())))
		}
	case val.Kind() == reflect.Float32 || val.Kind() == reflect.Float64:
		*rows = append(*rows, tableRow{key: key, value: strconv.FormatFloat(val.Float(), 'f', 2, 64)})
	default:
		*rows = append(*rows, tableRow{key: key, value: fmt.Sprint(val.Interface())})
	}
}

// tableName returns the key segment for a struct field, "" for an embedded
// struct, and false for fields that are not rendered.
func tableName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch {
	case name == "-":
		return "", false
	case name != "":
		return name, true
	case f.Anonymous:
		return "", true
	default:
		return f.Name, true
	}
}

func joinKey(prefix, suffix string) string {
	switch {
	case prefix == "":
		return suffix
	case suffix == "":
		return prefix
	default:
		return prefix + "." + suffix
	}
}
