package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init makes gin's validator report fields by their JSON names.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ToDetails converts binding errors into field -> message pairs for the error response.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "JSON inválido"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	var ve *Error
	if errors.As(err, &ve) {
		return ve.Details()
	}

	return map[string]string{"payload": "Solicitud inválida"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return MsgEmailInvalid
	case "numeric":
		return "Solo se permiten números"
	case "oneof":
		return "Debe ser uno de: " + strings.Join(strings.Fields(param), ", ")
	case "min", "gte":
		if isNumberKind(fe.Kind()) {
			return "Debe ser al menos " + param
		}
		return fmt.Sprintf("Debe tener al menos %s caracteres", param)
	case "max", "lte":
		if isNumberKind(fe.Kind()) {
			return "Debe ser como máximo " + param
		}
		return fmt.Sprintf("Debe tener como máximo %s caracteres", param)
	default:
		if param != "" {
			return fmt.Sprintf("validación '%s' fallida (%s)", fe.Tag(), param)
		}
		return fmt.Sprintf("validación '%s' fallida", fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
