// Package validate reúne las validaciones de negocio previas a escritura:
// unicidad de campos (por empresa o global) y compatibilidad de tipos entre
// productos y bodegas. Los validadores fallan rápido y no reintentan.
package validate

import (
	"strings"

	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
)

// LookupID busca el id de una fila existente con el valor ya normalizado.
// Devuelve "" si no hay fila. Cada repo aporta su consulta concreta.
type LookupID func(value string) (string, error)

// TrimOnly es la normalización por defecto.
func TrimOnly(v string) string { return strings.TrimSpace(v) }

// LowerTrim normaliza campos tipo email.
func LowerTrim(v string) string { return strings.ToLower(strings.TrimSpace(v)) }

// FieldUniqueInCompany valida que no exista otra fila de la empresa con el
// mismo valor normalizado en el campo. excludeID exime a la fila que se está
// actualizando. Valor vacío = no-op (los updates parciales pueden omitir el
// campo). La unicidad es consultiva: corre en la misma operación lógica que
// la escritura, sin aislamiento transaccional propio.
func FieldUniqueInCompany(lookup LookupID, field, value, entityLabel, excludeID string, normalize func(string) string) error {
	if value == "" {
		return nil
	}
	if normalize == nil {
		normalize = TrimOnly
	}
	existingID, err := lookup(normalize(value))
	if err != nil {
		return err
	}
	if existingID != "" && existingID != excludeID {
		return domain.Conflict("%s with this %s already exists in your company", entityLabel, field)
	}
	return nil
}

// FieldUniqueGlobally como FieldUniqueInCompany pero sin ámbito de empresa.
// Solo lo usa el email de User.
func FieldUniqueGlobally(lookup LookupID, field, value, entityLabel, excludeID string, normalize func(string) string) error {
	if value == "" {
		return nil
	}
	if normalize == nil {
		normalize = TrimOnly
	}
	existingID, err := lookup(normalize(value))
	if err != nil {
		return err
	}
	if existingID != "" && existingID != excludeID {
		return domain.Conflict("%s with this %s already exists", entityLabel, field)
	}
	return nil
}
