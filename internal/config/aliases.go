package config

import (
	"fmt"
	"strings"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/spf13/viper"
)

// DefaultAliases é a tabela de nomes padrão usada quando ALIASES_FILE não é informado
func DefaultAliases() domain.AliasTable {
	return domain.AliasTable{
		{Name: "Phoenix Beverages Limited", Aliases: []string{"Phoenix", "Phenix", "Phoenix Bev"}},
		{Name: "Les Caves Du Roi Ltd", Aliases: []string{"Les Caves", "Lescave", "Caves Du Roi"}},
		{Name: "K. Nepaulsing & Co Ltd", Aliases: []string{"K Nepaulsing", "Nepaul", "Nepal", "K. Nepaulsing", "Nepaulsing"}},
	}
}

// LoadAliases lê a tabela de apelidos de um arquivo yaml, json ou toml com a chave "aliases".
// Caminho vazio retorna a tabela padrão.
func LoadAliases(cfg Aliases) (domain.AliasTable, error) {
	if strings.TrimSpace(cfg.File) == "" {
		return DefaultAliases(), nil
	}

	// Instância separada para não misturar com as variáveis de ambiente do viper global
	v := viper.New()
	v.SetConfigFile(cfg.File)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading aliases file %s: %w", cfg.File, err)
	}

	var table domain.AliasTable
	if err := v.UnmarshalKey("aliases", &table); err != nil {
		return nil, fmt.Errorf("error decoding aliases file %s: %w", cfg.File, err)
	}

	for i, entity := range table {
		if strings.TrimSpace(entity.Name) == "" {
			return nil, fmt.Errorf("%w: alias entry %d has no name", ErrInvalidConfig, i)
		}
	}

	return table, nil
}
