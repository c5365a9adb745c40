package validate

import (
	"strings"

	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

// ProductWarehouseCompatible valida que el tipo del producto coincida con el
// de la bodega. Se aplica al crear líneas de orden; el llamador debe saltarlo
// cuando la bodega aún no tiene tipo.
func ProductWarehouseCompatible(productType entity.ProductType, warehouseType entity.WarehouseType) error {
	if string(productType) != string(warehouseType) {
		return domain.BadRequest(
			"Product type '%s' is not compatible with warehouse type '%s'. Solid products can only be stored in solid warehouses, and liquid products can only be stored in liquid warehouses.",
			productType, warehouseType,
		)
	}
	return nil
}

// ProductsWarehouseCompatible valida un lote de tipos contra la bodega y
// reporta el conjunto (sin duplicados) de tipos incompatibles en un solo
// error. Se usa al validar el contenido completo de una orden.
func ProductsWarehouseCompatible(productTypes []entity.ProductType, warehouseType entity.WarehouseType) error {
	var incompatible []string
	seen := make(map[entity.ProductType]bool)
	for _, pt := range productTypes {
		if string(pt) != string(warehouseType) && !seen[pt] {
			seen[pt] = true
			incompatible = append(incompatible, string(pt))
		}
	}
	if len(incompatible) > 0 {
		return domain.BadRequest(
			"The following product types are not compatible with warehouse type '%s': %s. All products in an order must be compatible with the warehouse type.",
			warehouseType, strings.Join(incompatible, ", "),
		)
	}
	return nil
}

// WarehouseTypeChangeSafe verifica, antes de cambiar el tipo de una bodega,
// que ningún producto vivo enlazado a ella (vía órdenes y líneas no borradas)
// tenga un tipo distinto al nuevo. Si los hay, falla listando cada producto
// en conflicto por nombre y tipo: es un guard de integridad irreversible, no
// una optimización.
func WarehouseTypeChangeSafe(conflicts []repository.ProductTypeConflict, newType entity.WarehouseType) error {
	if len(conflicts) == 0 {
		return nil
	}
	parts := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		parts = append(parts, c.ProductName+" ("+c.ProductType+")")
	}
	return domain.BadRequest(
		"Cannot change warehouse type to '%s': the warehouse still holds incompatible products: %s",
		newType, strings.Join(parts, ", "),
	)
}
