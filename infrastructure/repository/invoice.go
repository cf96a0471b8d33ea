package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pontogestor/admin-api/infrastructure/database/postgres"
	"github.com/pontogestor/admin-api/internal/domain"
)

const invoicesTable = "invoices"

type InvoiceRepository interface {
	GetByID(userID int, invoiceID string) (*domain.Invoice, error)
	List(userID int, filter domain.InvoiceFilter) ([]*domain.Invoice, error)
	Create(invoice *domain.Invoice) error
	CreateWithHeadcountUpdate(invoice *domain.Invoice, newEmployeeCount *int) error
	UpdateStatus(userID int, invoiceID string, status domain.InvoiceStatus) error
	Delete(userID int, invoiceID string) error
	MarkOverdue(today time.Time) (int64, error)
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

const invoiceColumns = "id, company_id, company_name, competence, due_date, employee_count, unit_value, total_value, status, notes"

func (r *invoiceRepository) GetByID(userID int, invoiceID string) (*domain.Invoice, error) {
	querySQL, args, err := squirrel.
		Select(invoiceColumns).
		From(invoicesTable).
		Where(squirrel.Eq{"id": invoiceID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(querySQL, args...)

	invoice, err := r.deserializeInvoice(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	invoice.UserID = userID
	return invoice, nil
}

func (r *invoiceRepository) List(userID int, filter domain.InvoiceFilter) ([]*domain.Invoice, error) {
	queryBuilder := squirrel.
		Select(invoiceColumns).
		From(invoicesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("competence DESC", "company_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.Status) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Status})
	}

	if filter.CompanyID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"company_id": filter.CompanyID})
	}

	if filter.Competence != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"competence": filter.Competence})
	}

	querySQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(querySQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)

	for rows.Next() {
		invoice, err := r.deserializeInvoice(rows.Scan)
		if err != nil {
			return nil, err
		}

		invoice.UserID = userID
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

func (r *invoiceRepository) Create(invoice *domain.Invoice) error {
	querySQL, args, err := r.insertQuery(invoice)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(querySQL, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// CreateWithHeadcountUpdate insere a fatura e, quando newEmployeeCount não é
// nulo, atualiza antes o quadro armazenado da empresa na mesma transação,
// para que o cadastro fique consistente com o que foi faturado.
func (r *invoiceRepository) CreateWithHeadcountUpdate(invoice *domain.Invoice, newEmployeeCount *int) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if newEmployeeCount != nil {
			updateSQL, updateArgs, err := squirrel.
				Update(companiesTable).
				Set("employee_count", *newEmployeeCount).
				Where(squirrel.Eq{"id": invoice.CompanyID, "user_id": invoice.UserID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}

			if _, err := tx.Exec(updateSQL, updateArgs...); err != nil {
				return fmt.Errorf("failed to update employee count: %w", err)
			}
		}

		insertSQL, insertArgs, err := r.insertQuery(invoice)
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("failed to insert invoice: %w", err)
		}

		return nil
	})
}

func (r *invoiceRepository) insertQuery(invoice *domain.Invoice) (string, []interface{}, error) {
	return squirrel.
		Insert(invoicesTable).
		Columns("id", "company_id", "company_name", "competence", "due_date",
			"employee_count", "unit_value", "total_value", "status", "notes", "user_id").
		Values(
			invoice.ID,
			invoice.CompanyID,
			invoice.CompanyName,
			invoice.Competence,
			invoice.DueDate,
			invoice.EmployeeCount,
			invoice.UnitValue,
			invoice.TotalValue,
			invoice.Status,
			invoice.Notes,
			invoice.UserID,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *invoiceRepository) UpdateStatus(userID int, invoiceID string, status domain.InvoiceStatus) error {
	querySQL, args, err := squirrel.
		Update(invoicesTable).
		Set("status", status).
		Where(squirrel.Eq{"id": invoiceID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(querySQL, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("invoice not found")
	}

	return nil
}

func (r *invoiceRepository) Delete(userID int, invoiceID string) error {
	querySQL, args, err := squirrel.
		Delete(invoicesTable).
		Where(squirrel.Eq{"id": invoiceID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(querySQL, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("invoice not found")
	}

	return nil
}

// MarkOverdue vence, em um único UPDATE, toda fatura Pendente com vencimento
// estritamente anterior a hoje. Faturas Pagas ou já Vencidas não são tocadas.
// A varredura é global (todos os usuários); a transição é de mão única.
func (r *invoiceRepository) MarkOverdue(today time.Time) (int64, error) {
	querySQL, args, err := squirrel.
		Update(invoicesTable).
		Set("status", domain.InvoiceStatusOverdue).
		Where(squirrel.Eq{"status": domain.InvoiceStatusPending}).
		Where(squirrel.Lt{"due_date": today}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(querySQL, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return result.RowsAffected()
}

func (r *invoiceRepository) deserializeInvoice(scan func(dest ...any) error) (*domain.Invoice, error) {
	invoice := &domain.Invoice{}

	if err := scan(
		&invoice.ID,
		&invoice.CompanyID,
		&invoice.CompanyName,
		&invoice.Competence,
		&invoice.DueDate,
		&invoice.EmployeeCount,
		&invoice.UnitValue,
		&invoice.TotalValue,
		&invoice.Status,
		&invoice.Notes,
	); err != nil {
		return nil, err
	}

	return invoice, nil
}
