// Package authorizing concentra a política de visibilidade e a guarda de
// mutação da aplicação. As regras que antes ficavam espalhadas em cada
// consulta ("se Administrador ... senão ...") vivem apenas aqui, como
// funções puras sobre o Actor da requisição.
package authorizing

import "github.com/brassertech/vendas-api/internal/domain"

// FilterClients devolve o subconjunto de clientes visível ao ator.
// Administradores enxergam tudo; vendedores enxergam somente a própria
// carteira. Clientes de outros vendedores nunca são compartilhados.
func FilterClients(actor domain.Actor, clients []*domain.Client) []*domain.Client {
	if actor.IsAdmin() {
		return clients
	}

	visible := make([]*domain.Client, 0, len(clients))
	for _, client := range clients {
		if client.OwnerUserID == actor.UserID {
			visible = append(visible, client)
		}
	}

	return visible
}

// FilterSales devolve o subconjunto de vendas visível ao ator. Mesma regra
// dos clientes: vendas são sigilosas entre vendedores.
func FilterSales(actor domain.Actor, sales []*domain.Sale) []*domain.Sale {
	if actor.IsAdmin() {
		return sales
	}

	visible := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.OwnerUserID == actor.UserID {
			visible = append(visible, sale)
		}
	}

	return visible
}

// FilterIdeas devolve o subconjunto de ideias visível ao ator.
// Regras, na ordem, a primeira que casar decide:
//  1. administrador vê tudo
//  2. o dono vê o que é dele
//  3. não-donos veem apenas ideias públicas que não sejam "Venda de Projeto"
//
// A assimetria em relação a clientes e vendas é proposital: sugestões são
// colaborativas, vendas e carteiras são competitivas.
func FilterIdeas(actor domain.Actor, ideas []*domain.Idea) []*domain.Idea {
	if actor.IsAdmin() {
		return ideas
	}

	visible := make([]*domain.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if idea.OwnerUserID == actor.UserID {
			visible = append(visible, idea)
			continue
		}

		if !idea.IsConfidential() {
			visible = append(visible, idea)
		}
	}

	return visible
}
