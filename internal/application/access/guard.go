// Package access concentra el control de acceso multi-tenant: la verificación
// de propiedad por empresa y la política de borrado por rol. Todo método de
// servicio que resuelve una entidad por id debe pasar por aquí antes de
// devolverla o mutarla; los listados filtran por company_id en la consulta.
package access

import (
	"reflect"

	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
)

// CompanyOwned lo implementa toda entidad con pertenencia a una empresa.
type CompanyOwned interface {
	OwnerCompany() string
}

// ResolveWithAccess ejecuta el lookup por clave primaria (sin filtro de
// empresa en la consulta: este guard es el único punto de chequeo) y valida
// que la entidad pertenezca a la empresa del llamador.
//
// Si el lookup no encuentra nada, o encuentra una entidad de otra empresa,
// el error externo es el mismo NotFound: un tenant no debe poder distinguir
// "no existe" de "existe pero no es mío".
func ResolveWithAccess[T CompanyOwned](lookup func() (T, error), companyID, entityLabel string) (T, error) {
	var zero T
	ent, err := lookup()
	if err != nil {
		return zero, err
	}
	if isNil(ent) {
		return zero, domain.NotFound("%s not found", entityLabel)
	}
	if ent.OwnerCompany() != companyID {
		return zero, domain.NotFound("%s not found", entityLabel)
	}
	return ent, nil
}

// isNil cubre el contrato repo "no hay fila" = (nil, nil): un puntero nil
// dentro de la interfaz no compara igual a nil sin reflexión.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
