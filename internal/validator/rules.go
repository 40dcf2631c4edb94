package validator

import (
	"log"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила в экземпляре валидатора
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func, callOnNil bool) {
		if err := v.RegisterValidation(tag, fn, callOnNil); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'present': поле передано и не пустое. Отсутствие, null и "" не проходят,
	// а false, 0 и пустой массив считаются переданными значениями.
	mustRegister("present", validatePresent, true)
}

func validatePresent(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Invalid:
		return false
	case reflect.String:
		return field.Len() > 0
	case reflect.Interface, reflect.Ptr:
		if field.IsNil() {
			return false
		}
		if s, ok := field.Elem().Interface().(string); ok {
			return s != ""
		}
		return true
	case reflect.Slice, reflect.Map:
		return !field.IsNil()
	default:
		return true
	}
}
