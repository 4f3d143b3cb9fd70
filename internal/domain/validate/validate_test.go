package validate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/muebleria-api/internal/domain/validate"
)

// ──────────────────────────────────────────────────────────────────────────────
// Formatos de campo
// ──────────────────────────────────────────────────────────────────────────────

func TestNIF(t *testing.T) {
	assert.True(t, validate.NIF("12345678Z"), "8 dígitos + letra mayúscula es válido")
	assert.False(t, validate.NIF("12345678z"), "la letra final debe ser mayúscula")
	assert.False(t, validate.NIF("1234567Z"), "faltan dígitos")
	assert.False(t, validate.NIF("123456789"), "falta la letra final")
	assert.False(t, validate.NIF("Z12345678"), "la letra va al final, no al inicio")
}

func TestCIF(t *testing.T) {
	assert.True(t, validate.CIF("B12345678"), "letra mayúscula + 8 dígitos es válido")
	assert.False(t, validate.CIF("b12345678"), "la letra inicial debe ser mayúscula")
	assert.False(t, validate.CIF("12345678B"), "la letra va al inicio, no al final")
	assert.False(t, validate.CIF("B1234567"), "faltan dígitos")
}

func TestPhone(t *testing.T) {
	assert.True(t, validate.Phone("612345678"), "móvil que empieza por 6")
	assert.True(t, validate.Phone("912345678"), "fijo que empieza por 9")
	assert.False(t, validate.Phone("512345678"), "no puede empezar por 5")
	assert.False(t, validate.Phone("61234567"), "debe tener 9 dígitos")
	assert.False(t, validate.Phone("6123456789"), "no puede tener 10 dígitos")
	assert.False(t, validate.Phone("+34612345678"), "sin prefijo internacional")
}

func TestCustomerName(t *testing.T) {
	assert.True(t, validate.CustomerName("Pedro"), "inicial mayúscula y solo letras")
	assert.True(t, validate.CustomerName("Ángela"), "acepta vocales acentuadas")
	assert.False(t, validate.CustomerName("pedro"), "debe empezar por mayúscula")
	assert.False(t, validate.CustomerName("Pedro1"), "no admite dígitos")
	assert.False(t, validate.CustomerName(""), "vacío es inválido")
}

func TestUpperStartName(t *testing.T) {
	assert.True(t, validate.UpperStartName("Muebles García S.L."), "solo exige inicial mayúscula")
	assert.False(t, validate.UpperStartName("muebles García"), "minúscula inicial es inválida")
	assert.False(t, validate.UpperStartName(""), "vacío es inválido")
}

func TestEmail(t *testing.T) {
	assert.True(t, validate.Email("cliente@tienda.es"))
	assert.False(t, validate.Email("cliente@tienda"), "falta el dominio de nivel superior")
	assert.False(t, validate.Email("clientetienda.es"), "falta la arroba")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validadores de registro completos
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomer_Valido(t *testing.T) {
	err := validate.Customer("Pedro", "12345678Z", "Calle Mayor 1", "pedro@mail.es", "612345678")
	assert.NoError(t, err)
}

func TestCustomer_EmailOpcional(t *testing.T) {
	err := validate.Customer("Pedro", "12345678Z", "Calle Mayor 1", "", "612345678")
	assert.NoError(t, err, "el email vacío no debe provocar error")
}

func TestCustomer_AcumulaErroresPorCampo(t *testing.T) {
	err := validate.Customer("pedro", "malo", "", "no-es-email", "123")

	var errs validate.Errors
	assert.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 5, "debe reportar todos los campos inválidos de una vez")

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "nif", "address", "email", "phone"}, fields)
}

func TestProvider_Valido(t *testing.T) {
	err := validate.Provider("Maderas del Norte", "A12345678", "Pol. Ind. Sur 5", "", "912345678")
	assert.NoError(t, err)
}

func TestProvider_CIFInvalido(t *testing.T) {
	err := validate.Provider("Maderas del Norte", "12345678A", "Pol. Ind. Sur 5", "", "912345678")

	var errs validate.Errors
	assert.ErrorAs(t, err, &errs)
	assert.Equal(t, "cif", errs[0].Field)
}

func TestFurniture_Valido(t *testing.T) {
	err := validate.Furniture("Chair", "Silla Nórdica", "Silla de comedor", "Gris", "46x52x82 cm",
		decimal.NewFromFloat(79.95), 10)
	assert.NoError(t, err)
}

func TestFurniture_CategoriaDesconocida(t *testing.T) {
	err := validate.Furniture("Lamp", "Lámpara", "Lámpara de pie", "Negro", "30x30x150 cm",
		decimal.NewFromInt(40), 1)

	var errs validate.Errors
	assert.ErrorAs(t, err, &errs)
	assert.Equal(t, "type", errs[0].Field)
}

func TestFurniture_PrecioYStockNegativos(t *testing.T) {
	err := validate.Furniture("Chair", "Silla", "Silla de comedor", "Gris", "46x52x82 cm",
		decimal.NewFromInt(-1), -5)

	var errs validate.Errors
	assert.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestErrors_OrNil(t *testing.T) {
	var errs validate.Errors
	assert.Nil(t, errs.OrNil(), "sin errores debe devolver nil, no una interface no-nil")
}
