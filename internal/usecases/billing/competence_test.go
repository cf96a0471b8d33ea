package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCompetenceInput(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{
			name:     "Competência válida deve ser convertida para o formato interno",
			input:    "11/2023",
			expected: "2023-11",
		},
		{
			name:     "Espaços ao redor devem ser ignorados",
			input:    "  01/2024  ",
			expected: "2024-01",
		},
		{
			name:        "Formato sem barra deve ser rejeitado",
			input:       "112023",
			expectedErr: ErrInvalidCompetenceFormat,
		},
		{
			name:        "Formato YYYY-MM não é aceito como entrada",
			input:       "2023-11",
			expectedErr: ErrInvalidCompetenceFormat,
		},
		{
			name:        "Mês acima de 12 deve ser rejeitado",
			input:       "13/2023",
			expectedErr: ErrInvalidCompetenceMonth,
		},
		{
			name:        "Mês zero deve ser rejeitado",
			input:       "00/2023",
			expectedErr: ErrInvalidCompetenceMonth,
		},
		{
			name:        "Ano anterior a 2000 deve ser rejeitado",
			input:       "05/1999",
			expectedErr: ErrInvalidCompetenceYear,
		},
		{
			name:        "Ano posterior a 2100 deve ser rejeitado",
			input:       "05/2101",
			expectedErr: ErrInvalidCompetenceYear,
		},
		{
			name:        "Entrada vazia deve ser rejeitada",
			input:       "",
			expectedErr: ErrInvalidCompetenceFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCompetenceInput(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompetenceFromDate(t *testing.T) {
	date := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-01", CompetenceFromDate(date))
}

func TestFormatCompetenceDisplay(t *testing.T) {
	tests := []struct {
		name       string
		competence string
		expected   string
	}{
		{
			name:       "Competência interna deve virar MM/AAAA",
			competence: "2023-11",
			expected:   "11/2023",
		},
		{
			name:       "Valor fora do formato interno é devolvido como está",
			competence: "novembro",
			expected:   "novembro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCompetenceDisplay(tt.competence))
		})
	}
}

func TestMonthEndDueDate(t *testing.T) {
	tests := []struct {
		name       string
		competence string
		expected   time.Time
	}{
		{
			name:       "Mês de 30 dias",
			competence: "2023-11",
			expected:   time.Date(2023, 11, 30, 0, 0, 0, 0, time.Local),
		},
		{
			name:       "Dezembro termina em 31",
			competence: "2023-12",
			expected:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.Local),
		},
		{
			name:       "Fevereiro em ano bissexto termina em 29",
			competence: "2024-02",
			expected:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
		},
		{
			name:       "Fevereiro em ano comum termina em 28",
			competence: "2023-02",
			expected:   time.Date(2023, 2, 28, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MonthEndDueDate(tt.competence)

			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(result))
		})
	}

	t.Run("Competência inválida deve retornar erro", func(t *testing.T) {
		_, err := MonthEndDueDate("11/2023")
		assert.ErrorIs(t, err, ErrInvalidCompetenceFormat)
	})
}

func TestOffsetDueDate(t *testing.T) {
	reference := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	expected := time.Date(2024, 2, 14, 0, 0, 0, 0, time.Local)

	assert.True(t, expected.Equal(OffsetDueDate(reference)))
}
