package access_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/access"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
)

const (
	ownCompany   = "00000000-0000-0000-0000-0000000000aa"
	otherCompany = "00000000-0000-0000-0000-0000000000bb"
)

// ──────────────────────────────────────────────────────────────────────────────
// ResolveWithAccess
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveWithAccess_EntidadPropia_SeDevuelve(t *testing.T) {
	want := &entity.Product{ID: "p1", CompanyID: ownCompany, Name: "Tornillos"}

	got, err := access.ResolveWithAccess(func() (*entity.Product, error) {
		return want, nil
	}, ownCompany, "Product")

	require.NoError(t, err)
	assert.Same(t, want, got)
}

// La entidad de otra empresa debe reportarse como NotFound, no como
// Forbidden: el llamador no debe poder distinguir "no existe" de "no es mío".
func TestResolveWithAccess_EntidadDeOtraEmpresa_NotFound(t *testing.T) {
	foreign := &entity.Product{ID: "p1", CompanyID: otherCompany}

	got, err := access.ResolveWithAccess(func() (*entity.Product, error) {
		return foreign, nil
	}, ownCompany, "Product")

	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Product not found",
		"el mensaje debe ser idéntico al de entidad inexistente")
}

func TestResolveWithAccess_FilaInexistente_NotFound(t *testing.T) {
	got, err := access.ResolveWithAccess(func() (*entity.Product, error) {
		return nil, nil // contrato repo: sin fila = (nil, nil)
	}, ownCompany, "Product")

	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Product not found")
}

func TestResolveWithAccess_ErrorDelLookup_SePropaga(t *testing.T) {
	boom := errors.New("conexión perdida")

	_, err := access.ResolveWithAccess(func() (*entity.Product, error) {
		return nil, boom
	}, ownCompany, "Product")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteByRole
// ──────────────────────────────────────────────────────────────────────────────

// fakeDeleter registra qué variante de borrado se invocó.
type fakeDeleter struct {
	hardCalls int
	softCalls int
	affected  int64
	err       error
}

func (d *fakeDeleter) HardDelete(id, companyID string) (int64, error) {
	d.hardCalls++
	return d.affected, d.err
}

func (d *fakeDeleter) SoftDelete(id, companyID string) (int64, error) {
	d.softCalls++
	return d.affected, d.err
}

func TestDeleteByRole_OwnerBorraFisicamente(t *testing.T) {
	d := &fakeDeleter{affected: 1}

	err := access.DeleteByRole(d, "id1", ownCompany, entity.RoleOwner, "Product")

	require.NoError(t, err)
	assert.Equal(t, 1, d.hardCalls)
	assert.Equal(t, 0, d.softCalls)
}

func TestDeleteByRole_OperatorBorraLogicamente(t *testing.T) {
	d := &fakeDeleter{affected: 1}

	err := access.DeleteByRole(d, "id1", ownCompany, entity.RoleOperator, "Product")

	require.NoError(t, err)
	assert.Equal(t, 0, d.hardCalls)
	assert.Equal(t, 1, d.softCalls)
}

func TestDeleteByRole_ViewerRechazado(t *testing.T) {
	d := &fakeDeleter{affected: 1}

	err := access.DeleteByRole(d, "id1", ownCompany, entity.RoleViewer, "Product")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "Viewers cannot delete")
	assert.Equal(t, 0, d.hardCalls, "el repo no debe tocarse")
	assert.Equal(t, 0, d.softCalls)
}

func TestDeleteByRole_CeroFilasAfectadas_NotFound(t *testing.T) {
	for _, role := range []entity.UserRole{entity.RoleOwner, entity.RoleOperator} {
		d := &fakeDeleter{affected: 0}
		err := access.DeleteByRole(d, "id1", ownCompany, role, "Order")
		assert.ErrorIs(t, err, domain.ErrNotFound, "rol %s", role)
	}
}

func TestDeleteByRole_ErrorDelRepo_SePropaga(t *testing.T) {
	boom := errors.New("deadlock")
	d := &fakeDeleter{err: boom}

	err := access.DeleteByRole(d, "id1", ownCompany, entity.RoleOwner, "Product")

	assert.ErrorIs(t, err, boom)
}
