package resource

import (
	"encoding/json"
	"math"
	"strconv"
)

// FieldErrors - "имя поля в API" -> сообщение
type FieldErrors map[string]string

// Prepare превращает тело запроса в строку для записи: переводит имена в
// колонки, отбрасывает поля только для чтения и неизвестные поля, проверяет
// типы значений и подставляет значения по умолчанию. Отсутствующие массивы
// становятся пустыми, отсутствующие необязательные поля - null.
func (d *Descriptor) Prepare(payload Payload) (Row, FieldErrors) {
	row := d.Writable(d.ToStore(payload))
	errs := FieldErrors{}

	for _, f := range d.Fields {
		if f.ReadOnly {
			continue
		}
		value, present := row[f.Column]
		if !present || value == nil {
			if def, ok := d.Defaults[f.Column]; ok {
				row[f.Column] = def
			} else if f.Kind == KindStrings {
				row[f.Column] = []any{}
			}
			continue
		}

		normalized, msg := coerce(f.Kind, value)
		if msg != "" {
			errs[f.API] = msg
			continue
		}
		row[f.Column] = normalized
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return row, nil
}

// ExplicitOrder возвращает позицию, если клиент передал её явно (включая 0)
func ExplicitOrder(row Row) (int, bool) {
	v, ok := row[OrderColumn]
	if !ok || v == nil {
		return 0, false
	}
	n, isInt := v.(int)
	return n, isInt
}

func coerce(kind Kind, value any) (any, string) {
	switch kind {
	case KindString, KindText, KindTime:
		if _, ok := value.(string); !ok {
			return nil, "Must be a string"
		}
		return value, ""
	case KindBool:
		if _, ok := value.(bool); !ok {
			return nil, "Must be a boolean"
		}
		return value, ""
	case KindInt:
		n, ok := toInt(value)
		if !ok || n < 0 {
			return nil, "Must be a non-negative integer"
		}
		if n > MaxOrder {
			return nil, "Must not exceed " + strconv.Itoa(MaxOrder)
		}
		return n, ""
	case KindStrings:
		items, ok := value.([]any)
		if !ok {
			if ss, isStrings := value.([]string); isStrings {
				return ss, ""
			}
			return nil, "Must be an array of strings"
		}
		for _, item := range items {
			if _, isString := item.(string); !isString {
				return nil, "Must be an array of strings"
			}
		}
		return items, ""
	}
	return value, ""
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}
