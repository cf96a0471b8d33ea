package billing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Competências circulam internamente como "YYYY-MM" para que a ordenação
// lexicográfica coincida com a cronológica. A digitação é sempre "MM/AAAA".
var competenceInputPattern = regexp.MustCompile(`^\d{2}/\d{4}$`)

const (
	minCompetenceYear = 2000
	maxCompetenceYear = 2100
)

// ParseCompetenceInput valida a competência digitada no formato MM/AAAA e a
// converte para o formato interno YYYY-MM.
func ParseCompetenceInput(input string) (string, error) {
	input = strings.TrimSpace(input)

	if !competenceInputPattern.MatchString(input) {
		return "", ErrInvalidCompetenceFormat
	}

	parts := strings.Split(input, "/")
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])

	if month < 1 || month > 12 {
		return "", ErrInvalidCompetenceMonth
	}

	if year < minCompetenceYear || year > maxCompetenceYear {
		return "", ErrInvalidCompetenceYear
	}

	return fmt.Sprintf("%04d-%02d", year, month), nil
}

// CompetenceFromDate deriva a competência YYYY-MM de uma data.
func CompetenceFromDate(date time.Time) string {
	return date.Format("2006-01")
}

// FormatCompetenceDisplay converte YYYY-MM de volta para a forma de exibição MM/AAAA.
func FormatCompetenceDisplay(competence string) string {
	parts := strings.Split(competence, "-")
	if len(parts) != 2 {
		return competence
	}

	return parts[1] + "/" + parts[0]
}

// MonthEndDueDate retorna o último dia do mês da competência. É o vencimento
// padrão da geração manual quando nenhuma data é informada.
func MonthEndDueDate(competence string) (time.Time, error) {
	ref, err := time.ParseInLocation("2006-01", competence, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidCompetenceFormat
	}

	// Dia zero do mês seguinte é o último dia do mês da competência
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, time.Local), nil
}

// OffsetDueDate retorna o vencimento padrão da geração em lote: 30 dias
// corridos após a data de referência.
func OffsetDueDate(reference time.Time) time.Time {
	return reference.AddDate(0, 0, 30)
}
