package usecase

import (
	"sort"
	"strconv"

	"github.com/diillson/kafka-cost-report-go/internal/domain/entity"
)

// Aggregate dobra todas as linhas extraídas (na ordem arquivo a arquivo) em
// um único relatório: verificação de unicidade de IDs, custo total e
// subtotais por cost unit. Cada linha contribui exatamente uma vez para o
// total e para exatamente um bucket.
func Aggregate(rows []entity.CostRecord) *entity.AggregateReport {
	report := &entity.AggregateReport{TotalItems: len(rows)}

	// Unicidade: só IDs presentes (não vazios) entram na verificação.
	idCounts := map[string]int{}
	idOrder := []string{}
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		report.CheckedIDs++
		if _, seen := idCounts[row.ID]; !seen {
			idOrder = append(idOrder, row.ID)
		}
		idCounts[row.ID]++
	}
	report.UniqueIDs = len(idCounts)

	// Grupos duplicados na ordem em que o ID apareceu pela primeira vez.
	for _, id := range idOrder {
		if idCounts[id] > 1 {
			report.Duplicates = append(report.Duplicates, entity.DuplicateGroup{ID: id, Count: idCounts[id]})
		}
	}

	// Total geral e subtotais por cost unit.
	unitIndex := map[string]int{}
	for _, row := range rows {
		report.GrandTotal += row.Cost

		unit := row.CostUnit
		if unit == "" {
			unit = entity.DefaultCostUnit
		}

		i, ok := unitIndex[unit]
		if !ok {
			i = len(report.UnitTotals)
			unitIndex[unit] = i
			report.UnitTotals = append(report.UnitTotals, entity.UnitTotal{Unit: unit})
		}
		report.UnitTotals[i].TotalCost += row.Cost
		report.UnitTotals[i].ItemCount++
	}

	sortUnitTotals(report.UnitTotals)

	return report
}

// sortUnitTotals ordena os cost units numericamente quando o rótulo é um
// número; rótulos não numéricos vão depois de todos os numéricos, mantendo
// entre si a ordem de descoberta.
func sortUnitTotals(units []entity.UnitTotal) {
	sort.SliceStable(units, func(i, j int) bool {
		vi, erri := strconv.ParseFloat(units[i].Unit, 64)
		vj, errj := strconv.ParseFloat(units[j].Unit, 64)
		switch {
		case erri == nil && errj == nil:
			return vi < vj
		case erri == nil:
			return true
		default:
			return false
		}
	})
}
