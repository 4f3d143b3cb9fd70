// Package validate contiene las reglas de formato por campo de los registros.
// Cada validador devuelve la lista estructurada de errores encontrados, de modo
// que el handler pueda reportar todos los campos inválidos de una vez.
package validate

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
)

// FieldError describe un campo inválido y el motivo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors es la lista de errores de validación de una petición.
type Errors []FieldError

// Error implementa error con el primer mensaje de la lista.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validación fallida"
	}
	return e[0].Field + ": " + e[0].Message
}

// add acumula un error de campo.
func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// OrNil devuelve nil si no hay errores (para retornar error sin interface-nil trampa).
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var (
	reUpperStart = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ]`)
	reAlpha      = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ]+$`)
	reNIF        = regexp.MustCompile(`^[0-9]{8}[A-Z]$`)
	reCIF        = regexp.MustCompile(`^[A-Z][0-9]{8}$`)
	reEmail      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	rePhone      = regexp.MustCompile(`^[6789][0-9]{8}$`)
)

// CustomerName exige inicial mayúscula y solo letras.
func CustomerName(name string) bool {
	return reUpperStart.MatchString(name) && reAlpha.MatchString(name)
}

// UpperStartName exige solo la inicial mayúscula (proveedores y muebles).
func UpperStartName(name string) bool {
	return name != "" && reUpperStart.MatchString(name)
}

// NIF valida el formato del NIF español: 8 dígitos y letra mayúscula final.
func NIF(nif string) bool { return reNIF.MatchString(nif) }

// CIF valida el formato del CIF español: letra mayúscula inicial y 8 dígitos.
func CIF(cif string) bool { return reCIF.MatchString(cif) }

// Email valida un formato razonable de correo.
func Email(email string) bool { return reEmail.MatchString(email) }

// Phone valida un móvil/fijo español de 9 dígitos (empieza por 6, 7, 8 o 9).
func Phone(phone string) bool { return rePhone.MatchString(phone) }

// Customer valida los campos de un cliente ya recortados (trim).
// Email es opcional; el resto obligatorio.
func Customer(name, nif, address, email, phone string) error {
	var errs Errors
	if name == "" {
		errs.add("name", "requerido")
	} else if !CustomerName(name) {
		errs.add("name", "debe empezar por mayúscula y contener solo letras")
	}
	if nif == "" {
		errs.add("nif", "requerido")
	} else if !NIF(nif) {
		errs.add("nif", "debe tener 9 caracteres: 8 dígitos y letra mayúscula final")
	}
	if address == "" {
		errs.add("address", "requerido")
	}
	if email != "" && !Email(email) {
		errs.add("email", "formato de email inválido")
	}
	if phone == "" {
		errs.add("phone", "requerido")
	} else if !Phone(phone) {
		errs.add("phone", "debe ser un teléfono español de 9 dígitos")
	}
	return errs.OrNil()
}

// Furniture valida los campos de un mueble ya recortados (trim).
func Furniture(ftype, name, description, color, dimensions string, price decimal.Decimal, stock int64) error {
	var errs Errors
	if !entity.IsFurnitureType(ftype) {
		errs.add("type", "categoría de mueble desconocida")
	}
	if name == "" {
		errs.add("name", "requerido")
	} else if !UpperStartName(name) {
		errs.add("name", "debe empezar por mayúscula")
	}
	if description == "" {
		errs.add("description", "requerido")
	}
	if color == "" {
		errs.add("color", "requerido")
	}
	if dimensions == "" {
		errs.add("dimensions", "requerido")
	}
	if price.IsNegative() {
		errs.add("price", "no puede ser negativo")
	}
	if stock < 0 {
		errs.add("stock", "no puede ser negativo")
	}
	return errs.OrNil()
}

// Provider valida los campos de un proveedor ya recortados (trim).
func Provider(name, cif, address, email, phone string) error {
	var errs Errors
	if name == "" {
		errs.add("name", "requerido")
	} else if !UpperStartName(name) {
		errs.add("name", "debe empezar por mayúscula")
	}
	if cif == "" {
		errs.add("cif", "requerido")
	} else if !CIF(cif) {
		errs.add("cif", "debe tener 9 caracteres: letra mayúscula inicial y 8 dígitos")
	}
	if address == "" {
		errs.add("address", "requerido")
	}
	if email != "" && !Email(email) {
		errs.add("email", "formato de email inválido")
	}
	if phone == "" {
		errs.add("phone", "requerido")
	} else if !Phone(phone) {
		errs.add("phone", "debe ser un teléfono español de 9 dígitos")
	}
	return errs.OrNil()
}
