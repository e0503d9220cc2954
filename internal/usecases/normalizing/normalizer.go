// Package normalizing resolve nomes digitados livremente de clientes e fornecedores
// para o nome padrão cadastrado na tabela de apelidos.
package normalizing

import (
	"strings"

	"github.com/gwr-marine/ops-analytics/internal/domain"
)

// NameNormalizer é a interface consumida pelo filtro e pelo ranking
type NameNormalizer interface {
	Normalize(rawName string) string
	FindMatches(query string, historicalNames []string) []domain.NameMatch
}

// Normalizer é imutável depois de construído e pode ser compartilhado entre goroutines
type Normalizer struct {
	table   domain.AliasTable
	byLower map[string]string
}

func NewNormalizer(table domain.AliasTable) *Normalizer {
	entities := make(domain.AliasTable, 0, len(table))
	byLower := make(map[string]string)

	for _, entity := range table {
		name := strings.TrimSpace(entity.Name)
		if name == "" {
			continue
		}

		aliases := make([]string, 0, len(entity.Aliases))
		for _, alias := range entity.Aliases {
			if alias = strings.TrimSpace(alias); alias != "" {
				aliases = append(aliases, alias)
			}
		}

		entities = append(entities, domain.CanonicalEntity{Name: name, Aliases: aliases})
		byLower[strings.ToLower(name)] = name
	}

	// Apelidos entram depois para que um nome padrão nunca seja sobrescrito
	for _, entity := range entities {
		for _, alias := range entity.Aliases {
			key := strings.ToLower(alias)
			if _, exists := byLower[key]; !exists {
				byLower[key] = entity.Name
			}
		}
	}

	return &Normalizer{table: entities, byLower: byLower}
}

// Normalize retorna o nome padrão para um nome ou apelido conhecido; nomes
// desconhecidos voltam sem espaços nas pontas e são tratados como novos.
func (n *Normalizer) Normalize(rawName string) string {
	trimmed := strings.TrimSpace(rawName)
	if trimmed == "" {
		return ""
	}

	if canonical, ok := n.byLower[strings.ToLower(trimmed)]; ok {
		return canonical
	}

	return trimmed
}

// IsCanonical indica se o nome (ou apelido) está na tabela
func (n *Normalizer) IsCanonical(name string) bool {
	_, ok := n.byLower[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// FindMatches busca por trecho (sem diferenciar maiúsculas) nos nomes padrão e apelidos,
// e depois nos nomes históricos que não estão na tabela.
func (n *Normalizer) FindMatches(query string, historicalNames []string) []domain.NameMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]bool)
	results := make([]domain.NameMatch, 0)

	for _, entity := range n.table {
		nameMatches := q == "" || strings.Contains(strings.ToLower(entity.Name), q)

		aliasMatch := ""
		if !nameMatches {
			for _, alias := range entity.Aliases {
				if strings.Contains(strings.ToLower(alias), q) {
					aliasMatch = alias
					break
				}
			}
		}

		if !nameMatches && aliasMatch == "" {
			continue
		}

		display := entity.Name
		if aliasMatch != "" {
			display = entity.Name + "  (" + aliasMatch + ")"
		}

		if seen[display] || seen[entity.Name] {
			continue
		}
		seen[display] = true
		seen[entity.Name] = true
		results = append(results, domain.NameMatch{Display: display, CanonicalName: entity.Name})
	}

	for _, raw := range historicalNames {
		name := strings.TrimSpace(raw)
		if name == "" || seen[name] || n.IsCanonical(name) {
			continue
		}

		if q == "" || strings.Contains(strings.ToLower(name), q) {
			results = append(results, domain.NameMatch{Display: name, CanonicalName: name})
			seen[name] = true
		}
	}

	return results
}
