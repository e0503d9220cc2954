package domain

// CanonicalEntity é um cliente ou fornecedor com seu nome padrão e apelidos conhecidos
type CanonicalEntity struct {
	Name    string   `mapstructure:"name" json:"name"`
	Aliases []string `mapstructure:"aliases" json:"aliases"`
}

// AliasTable é a tabela fixa de nomes padrão, carregada na inicialização
type AliasTable []CanonicalEntity

// NameMatch é uma sugestão de autocomplete: o que é exibido e o nome que será salvo
type NameMatch struct {
	Display       string `json:"display"`
	CanonicalName string `json:"canonical_name"`
}
