package authorizing

import (
	"testing"

	"github.com/brassertech/vendas-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

var (
	admin   = domain.Actor{UserID: 1, RoleID: domain.RoleAdmin}
	sellerA = domain.Actor{UserID: 10, RoleID: domain.RoleSeller}
	sellerB = domain.Actor{UserID: 20, RoleID: domain.RoleSeller}
)

func TestFilterClients(t *testing.T) {
	clients := []*domain.Client{
		{ID: "c1", OwnerUserID: 10, CompanyName: "Academia FitLife"},
		{ID: "c2", OwnerUserID: 20, CompanyName: "Padaria do João"},
		{ID: "c3", OwnerUserID: 10, CompanyName: "Handball Joaçaba"},
	}

	tests := []struct {
		name     string
		actor    domain.Actor
		expected []string
	}{
		{
			name:     "administrador vê a lista completa sem alteração",
			actor:    admin,
			expected: []string{"c1", "c2", "c3"},
		},
		{
			name:     "vendedor vê apenas a própria carteira",
			actor:    sellerA,
			expected: []string{"c1", "c3"},
		},
		{
			name:     "vendedor sem clientes recebe lista vazia, não erro",
			actor:    domain.Actor{UserID: 99, RoleID: domain.RoleSeller},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := FilterClients(tt.actor, clients)

			ids := make([]string, 0, len(visible))
			for _, c := range visible {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterSales_NeverCrossesOwnership(t *testing.T) {
	sales := []*domain.Sale{
		{ID: "v1", OwnerUserID: 10},
		{ID: "v2", OwnerUserID: 20},
	}

	visibleA := FilterSales(sellerA, sales)
	assert.Len(t, visibleA, 1)
	assert.Equal(t, "v1", visibleA[0].ID)

	visibleB := FilterSales(sellerB, sales)
	assert.Len(t, visibleB, 1)
	assert.Equal(t, "v2", visibleB[0].ID)

	// Administrador recebe o conjunto original inalterado
	assert.Equal(t, sales, FilterSales(admin, sales))
}

func TestFilterIdeas(t *testing.T) {
	ideas := []*domain.Idea{
		{ID: "i1", OwnerUserID: 10, Kind: domain.IdeaKindSuggestion, Private: false},
		{ID: "i2", OwnerUserID: 10, Kind: domain.IdeaKindSuggestion, Private: true},
		{ID: "i3", OwnerUserID: 10, Kind: domain.IdeaKindProjectSale, Private: false},
		{ID: "i4", OwnerUserID: 20, Kind: domain.IdeaKindSuggestion, Private: false},
	}

	tests := []struct {
		name     string
		actor    domain.Actor
		expected []string
	}{
		{
			name:     "administrador vê tudo, inclusive privadas e vendas de projeto",
			actor:    admin,
			expected: []string{"i1", "i2", "i3", "i4"},
		},
		{
			name:     "dono vê tudo que é dele e as públicas dos outros",
			actor:    sellerA,
			expected: []string{"i1", "i2", "i3", "i4"},
		},
		{
			// Venda de Projeto é sigilosa mesmo com privado = false
			name:     "não-dono vê só sugestões públicas",
			actor:    sellerB,
			expected: []string{"i1", "i4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := FilterIdeas(tt.actor, ideas)

			ids := make([]string, 0, len(visible))
			for _, i := range visible {
				ids = append(ids, i.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
