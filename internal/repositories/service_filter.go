package repositories

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"servicos-dashboard/internal/entities"
)

// As colunas PGTO e DATPGTO existem no banco com aspas e maiúsculas, herança
// da planilha que originou a tabela.
const (
	colPGTO    = `"PGTO"`
	colDATPGTO = `"DATPGTO"`
)

// statusPendente dispara o filtro disjuntivo: conta como pendente tanto o
// literal quanto o status nulo ou vazio, porque a digitação não é uniforme.
const statusPendente = "Pendente"

// sortColumns é a única lista de colunas ordenáveis. A validação do order_by
// e a projeção do SELECT consomem esta mesma tabela, então não têm como
// divergir. Qualquer valor fora dela cai em defaultSortColumn.
var sortColumns = map[string]string{
	"order_id":       "order_id",
	"PGTO":           colPGTO,
	"DATPGTO":        colDATPGTO,
	"gross_total":    "gross_total",
	"employees":      "employees",
	"schedule_date":  "schedule_date",
	"space_name":     "space_name",
	"service_name":   "service_name",
	"stay_external":  "stay_external",
	"service_status": "service_status",
}

const defaultSortColumn = "schedule_date"

// serviceProjection é a projeção fixa de GET /api/services: id_pk mais todas
// as colunas de sortColumns. Datas saem como texto para o JSON ficar igual ao
// que o front sempre recebeu.
var serviceProjection = []string{
	"id_pk",
	"order_id",
	colPGTO,
	colDATPGTO + `::text AS "DATPGTO"`,
	"gross_total",
	"employees",
	"schedule_date::text AS schedule_date",
	"space_name",
	"service_name",
	"stay_external",
	"service_status",
}

// resolveOrderBy devolve a coluna SQL para ordenação. Valores fora da lista
// (erro de digitação, tentativa de injeção, ausência) viram schedule_date,
// silenciosamente. Esta é a única defesa contra coluna arbitrária no ORDER BY.
func resolveOrderBy(orderBy string) string {
	if col, ok := sortColumns[orderBy]; ok {
		return col
	}
	return sortColumns[defaultSortColumn]
}

// resolveOrderDir aceita só "desc" (qualquer caixa); todo o resto é ASC.
func resolveOrderDir(orderDir string) string {
	if strings.EqualFold(orderDir, "desc") {
		return "DESC"
	}
	return "ASC"
}

// filterPredicates monta, uma única vez, a lista imutável de predicados a
// partir do filtro. A mesma lista é aplicada à consulta de dados e à de
// contagem; se cada uma montasse os seus, o total poderia divergir das linhas.
func filterPredicates(f entities.ServiceFilter) []sq.Sqlizer {
	var preds []sq.Sqlizer

	if f.StartDate != "" {
		preds = append(preds, sq.GtOrEq{"schedule_date": f.StartDate})
	}
	if f.EndDate != "" {
		preds = append(preds, sq.LtOrEq{"schedule_date": f.EndDate})
	}

	if f.Status != "" {
		if f.Status == statusPendente {
			preds = append(preds, sq.Or{
				sq.Eq{colPGTO: nil},
				sq.Eq{colPGTO: ""},
				sq.Eq{colPGTO: statusPendente},
			})
		} else {
			preds = append(preds, sq.Eq{colPGTO: f.Status})
		}
	}

	if f.Employee != "" {
		preds = append(preds, sq.ILike{"employees": "%" + f.Employee + "%"})
	}
	if f.Service != "" {
		preds = append(preds, sq.ILike{"service_name": "%" + f.Service + "%"})
	}

	return preds
}

// billablePredicates exclui linhas sem valor: gross_total nulo ou zero não
// aparece em listagem nem em totais.
func billablePredicates() []sq.Sqlizer {
	return []sq.Sqlizer{
		sq.NotEq{"gross_total": nil},
		sq.NotEq{"gross_total": 0},
	}
}

// pageOffset traduz página em offset. Página menor que 1 é tratada como 1
// para o offset nunca ficar negativo.
func pageOffset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

func applyPredicates(b sq.SelectBuilder, preds []sq.Sqlizer) sq.SelectBuilder {
	for _, p := range preds {
		b = b.Where(p)
	}
	return b
}
