package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pontogestor/admin-api/infrastructure/database/postgres"
	"github.com/pontogestor/admin-api/internal/domain"
)

const companiesTable = "companies"

type CompanyRepository interface {
	GetByID(userID int, companyID string) (*domain.Company, error)
	List(userID int, filter domain.CompanyFilter) ([]*domain.Company, error)
	Create(company *domain.Company) error
	Update(userID int, request *domain.UpdateCompanyRequest) error
	UpdateEmployeeCount(userID int, companyID string, employeeCount int) error
	Delete(userID int, companyID string) (int64, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

const companyColumns = "id, name, cnpj, contact_name, status, created_at, employee_count, notes, company_key, integration_password"

func (r *companyRepository) GetByID(userID int, companyID string) (*domain.Company, error) {
	querySQL, args, err := squirrel.
		Select(companyColumns).
		From(companiesTable).
		Where(squirrel.Eq{"id": companyID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(querySQL, args...)

	company, err := r.deserializeCompany(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	company.UserID = userID
	return company, nil
}

func (r *companyRepository) List(userID int, filter domain.CompanyFilter) ([]*domain.Company, error) {
	queryBuilder := squirrel.
		Select(companyColumns).
		From(companiesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.Status) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Status})
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": like},
			squirrel.ILike{"cnpj": like},
			squirrel.ILike{"contact_name": like},
		})
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

	companies := make([]*domain.Company, 0)

	for rows.Next() {
		company, err := r.deserializeCompany(rows.Scan)
		if err != nil {
			return nil, err
		}

		company.UserID = userID
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *companyRepository) Create(company *domain.Company) error {
	querySQL, args, err := squirrel.
		Insert(companiesTable).
		Columns("id", "name", "cnpj", "contact_name", "status", "created_at",
			"employee_count", "notes", "company_key", "integration_password", "user_id").
		Values(
			company.ID,
			company.Name,
			company.CNPJ,
			company.ContactName,
			company.Status,
			company.CreatedAt,
			company.EmployeeCount,
			company.Notes,
			company.CompanyKey,
			company.IntegrationPassword,
			company.UserID,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

func (r *companyRepository) Update(userID int, request *domain.UpdateCompanyRequest) error {
	if request.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update(companiesTable).
		Where(squirrel.Eq{"id": request.ID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	// Apenas os campos fornecidos são atualizados
	if request.Name != nil {
		queryBuilder = queryBuilder.Set("name", *request.Name)
	}

	if request.ContactName != nil {
		queryBuilder = queryBuilder.Set("contact_name", *request.ContactName)
	}

	if request.Status != nil {
		queryBuilder = queryBuilder.Set("status", *request.Status)
	}

	if request.EmployeeCount != nil {
		queryBuilder = queryBuilder.Set("employee_count", *request.EmployeeCount)
	}

	if request.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", *request.Notes)
	}

	if request.CompanyKey != nil {
		queryBuilder = queryBuilder.Set("company_key", *request.CompanyKey)
	}

	if request.IntegrationPassword != nil {
		queryBuilder = queryBuilder.Set("integration_password", *request.IntegrationPassword)
	}

	querySQL, args, err := queryBuilder.ToSql()
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
		return errors.New("company not found")
	}

	return nil
}

func (r *companyRepository) UpdateEmployeeCount(userID int, companyID string, employeeCount int) error {
	querySQL, args, err := squirrel.
		Update(companiesTable).
		Set("employee_count", employeeCount).
		Where(squirrel.Eq{"id": companyID, "user_id": userID}).
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
		return errors.New("company not found")
	}

	return nil
}

// Delete remove a empresa e todas as suas faturas na mesma transação.
// Retorna a quantidade de faturas removidas em cascata.
func (r *companyRepository) Delete(userID int, companyID string) (int64, error) {
	var invoicesDeleted int64

	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		invoicesSQL, invoicesArgs, err := squirrel.
			Delete(invoicesTable).
			Where(squirrel.Eq{"company_id": companyID, "user_id": userID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		result, err := tx.Exec(invoicesSQL, invoicesArgs...)
		if err != nil {
			return fmt.Errorf("failed to delete invoices: %w", err)
		}

		invoicesDeleted, _ = result.RowsAffected()

		companySQL, companyArgs, err := squirrel.
			Delete(companiesTable).
			Where(squirrel.Eq{"id": companyID, "user_id": userID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		result, err = tx.Exec(companySQL, companyArgs...)
		if err != nil {
			return fmt.Errorf("failed to delete company: %w", err)
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			return errors.New("company not found")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return invoicesDeleted, nil
}

func (r *companyRepository) deserializeCompany(scan func(dest ...any) error) (*domain.Company, error) {
	company := &domain.Company{}

	if err := scan(
		&company.ID,
		&company.Name,
		&company.CNPJ,
		&company.ContactName,
		&company.Status,
		&company.CreatedAt,
		&company.EmployeeCount,
		&company.Notes,
		&company.CompanyKey,
		&company.IntegrationPassword,
	); err != nil {
		return nil, err
	}

	return company, nil
}
