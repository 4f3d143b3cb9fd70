package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/muebleria-api/internal/application/dto"
	"github.com/tu-usuario/muebleria-api/internal/application/usecase"
	"github.com/tu-usuario/muebleria-api/internal/domain"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/domain/validate"
)

type memProviderRepo struct {
	items map[string]*entity.Provider // por ID
}

func newMemProviderRepo() *memProviderRepo {
	return &memProviderRepo{items: make(map[string]*entity.Provider)}
}

func (r *memProviderRepo) Create(p *entity.Provider) error {
	copied := *p
	r.items[p.ID] = &copied
	return nil
}

func (r *memProviderRepo) GetByID(id string) (*entity.Provider, error) {
	if p, ok := r.items[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *memProviderRepo) GetByCIF(cif string) (*entity.Provider, error) {
	for _, p := range r.items {
		if p.CIF == cif {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memProviderRepo) List(cif string, limit, offset int) ([]*entity.Provider, error) {
	var out []*entity.Provider
	for _, p := range r.items {
		if cif != "" && p.CIF != cif {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memProviderRepo) Update(p *entity.Provider) error {
	copied := *p
	r.items[p.ID] = &copied
	return nil
}

func (r *memProviderRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func validProvider() dto.CreateProviderRequest {
	return dto.CreateProviderRequest{
		Name:    "Maderas del Norte",
		CIF:     "A12345678",
		Address: "Pol. Ind. Sur 5",
		Phone:   "912345678",
	}
}

func TestProviderCreate_CIFInvalido(t *testing.T) {
	uc := usecase.NewProviderUseCase(newMemProviderRepo())

	in := validProvider()
	in.CIF = "12345678A" // la letra va al inicio
	_, err := uc.Create(in)

	var errs validate.Errors
	assert.ErrorAs(t, err, &errs)
}

func TestProviderGetByCIF(t *testing.T) {
	uc := usecase.NewProviderUseCase(newMemProviderRepo())
	_, err := uc.Create(validProvider())
	require.NoError(t, err)

	provider, err := uc.GetByCIF("A12345678")
	require.NoError(t, err)
	assert.Equal(t, "Maderas del Norte", provider.Name)

	_, err = uc.GetByCIF("Z99999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProviderUpdateByCIF(t *testing.T) {
	uc := usecase.NewProviderUseCase(newMemProviderRepo())
	_, err := uc.Create(validProvider())
	require.NoError(t, err)

	address := "Pol. Ind. Norte 2"
	updated, err := uc.UpdateByCIF("A12345678", dto.UpdateProviderRequest{Address: &address})
	require.NoError(t, err)
	assert.Equal(t, "Pol. Ind. Norte 2", updated.Address)
	assert.Equal(t, "A12345678", updated.CIF, "el CIF es clave natural y no cambia")
}
