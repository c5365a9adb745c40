package access

import (
	"strings"

	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
)

// RoleDeleter es el contrato mínimo que necesita la política de borrado.
// Ambos métodos borran por (id, companyID) y devuelven filas afectadas; lo
// implementan los repos de cada entidad.
type RoleDeleter interface {
	HardDelete(id, companyID string) (int64, error)
	SoftDelete(id, companyID string) (int64, error)
}

// DeleteByRole aplica la política de borrado según el rol del llamador:
//
//	owner    → borrado físico (la fila desaparece)
//	operator → borrado lógico (deleted_at = now)
//	viewer   → rechazado con BadRequest
//
// Debe ejecutarse DESPUÉS de que el guard confirme que la entidad pertenece a
// la empresa del llamador. Cero filas afectadas se reporta como NotFound.
func DeleteByRole(d RoleDeleter, id, companyID string, role entity.UserRole, entityLabel string) error {
	switch role {
	case entity.RoleOwner:
		affected, err := d.HardDelete(id, companyID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.NotFound("%s not found", entityLabel)
		}
		return nil
	case entity.RoleOperator:
		affected, err := d.SoftDelete(id, companyID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.NotFound("%s not found", entityLabel)
		}
		return nil
	default:
		return domain.BadRequest("Viewers cannot delete %ss", strings.ToLower(entityLabel))
	}
}
