// Package form implementa el motor de formularios de entidad: reglas de
// validación declaradas por campo, reporte de errores por campo y el
// ciclo de vida Editing → Submitting → Closed. El callback de
// persistencia solo se invoca cuando todas las reglas pasan.
package form

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Values valores crudos del formulario, un string por campo.
type Values map[string]string

// FieldError error de validación atado a un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors conjunto de errores de validación. Implementa error para poder
// devolverse por el camino normal de errores.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validación: " + strings.Join(parts, "; ")
}

// ByField devuelve el mensaje del campo dado, si existe.
func (e Errors) ByField(field string) (string, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// Rule valida un valor y devuelve el mensaje de error, o "" si pasa.
type Rule func(value string) string

// FieldRules reglas declaradas para un campo.
type FieldRules struct {
	Field string
	Rules []Rule
}

// Validate corre todas las reglas y acumula un error por cada campo
// inválido. Un resultado vacío significa que el formulario está listo
// para enviarse.
func Validate(values Values, fields []FieldRules) Errors {
	var errs Errors
	for _, f := range fields {
		v := values[f.Field]
		for _, rule := range f.Rules {
			if msg := rule(v); msg != "" {
				errs = append(errs, FieldError{Field: f.Field, Message: msg})
				break
			}
		}
	}
	return errs
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas
// ──────────────────────────────────────────────────────────────────────────────

// MinLen exige una longitud mínima en runas, contando el texto ya
// recortado.
func MinLen(n int) Rule {
	return func(v string) string {
		if utf8.RuneCountInString(strings.TrimSpace(v)) < n {
			return fmt.Sprintf("debe tener al menos %d caracteres", n)
		}
		return ""
	}
}

// Email exige forma de dirección de correo.
func Email() Rule {
	return func(v string) string {
		if _, err := mail.ParseAddress(strings.TrimSpace(v)); err != nil {
			return "debe ser un correo válido"
		}
		return ""
	}
}

// NonNegativeInt exige un entero mayor o igual a cero.
func NonNegativeInt() Rule {
	return func(v string) string {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return "debe ser un número mayor o igual a 0"
		}
		return ""
	}
}

// RequiredDate exige una fecha calendario válida en formato YYYY-MM-DD.
func RequiredDate() Rule {
	return func(v string) string {
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(v)); err != nil {
			return "debe ser una fecha válida (YYYY-MM-DD)"
		}
		return ""
	}
}

// OneOf exige que el valor pertenezca al conjunto permitido.
func OneOf(allowed ...string) Rule {
	return func(v string) string {
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return "debe ser uno de: " + strings.Join(allowed, ", ")
	}
}

// Optional deja pasar el valor en blanco y aplica las reglas solo
// cuando hay algo escrito. Así "sin asignar" se distingue de un valor
// inválido.
func Optional(rules ...Rule) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return ""
		}
		for _, rule := range rules {
			if msg := rule(v); msg != "" {
				return msg
			}
		}
		return ""
	}
}
