package profile

import "github.com/extrato-dev/extrato/internal/schema"

// Builtin returns the profiles for the statement layouts the tool ships
// with. Synonyms are stored normalized (lowercase, no accents).
func Builtin() []Profile {
	return []Profile{
		banestes(),
		itau(),
		santander(),
		caixa(),
		spx(),
	}
}

// banestes statements carry no balance column: the running balance is
// reconstructed from an opening-balance row plus daily value sums. The
// export lists a document-number column before the real value column.
func banestes() Profile {
	return Profile{
		Name:          "banestes",
		RequiredRoles: []schema.Role{schema.RoleDate, schema.RoleValue},
		Synonyms: schema.Synonyms{
			schema.RoleDate:  {"data", "dataocorrencia", "data ocorrencia", "data da ocorrencia"},
			schema.RoleValue: {"valor", "valores", "vlr", "val"},
			schema.RoleSide:  {"tipo", "natureza", "dc", "cd"},
		},
		ValuePrefersSecond: true,
		ScanOpeningBalance: true,
		ReconstructBalance: true,
		DateHeader:         "Data_da_Ocorrencia",
		ValueHeader:        "Valor",
		BalanceHeader:      "Saldo_Total",
	}
}

func itau() Profile {
	return Profile{
		Name:          "itau",
		RequiredRoles: []schema.Role{schema.RoleDate, schema.RoleValue, schema.RoleBalance},
		Synonyms: schema.Synonyms{
			schema.RoleDate:    {"data", "dataocorrencia", "data ocorrencia", "data da ocorrencia"},
			schema.RoleValue:   {"valor", "valores", "vlr", "val"},
			schema.RoleBalance: {"saldo", "saldos", "sld"},
			schema.RoleSide:    {"tipo", "natureza", "dc", "cd"},
		},
		DateHeader:    "Data_da_Ocorrencia",
		ValueHeader:   "Valor",
		BalanceHeader: "Saldo",
	}
}

func santander() Profile {
	p := itau()
	p.Name = "santander"
	return p
}

// caixa exports arrive as delimited text with their own header wording
// and no balance column.
func caixa() Profile {
	return Profile{
		Name:          "caixa",
		RequiredRoles: []schema.Role{schema.RoleDate, schema.RoleValue},
		Synonyms: schema.Synonyms{
			schema.RoleDate:  {"data", "datamov", "data mov", "dataocorrencia", "data ocorrencia", "data movimentacao"},
			schema.RoleValue: {"valor", "valores", "vlr", "val", "montante"},
		},
		DateHeader:   "Data_Mov",
		ValueHeader:  "Valor",
		OutputSuffix: "data_valor",
	}
}

// spx statements append four footer rows that are not transactions.
func spx() Profile {
	return Profile{
		Name:          "spx",
		RequiredRoles: []schema.Role{schema.RoleDate, schema.RoleValue, schema.RoleBalance},
		Synonyms: schema.Synonyms{
			schema.RoleDate:    {"data", "datareferencia", "data referencia", "data da referencia", "dataemissao", "data emissao"},
			schema.RoleValue:   {"valor", "valores", "vlr", "val"},
			schema.RoleBalance: {"saldo", "saldos", "sld"},
		},
		TrimTrailingRows: 4,
		DateHeader:       "Data da Referência",
		ValueHeader:      "Valor",
		BalanceHeader:    "Saldo",
	}
}
