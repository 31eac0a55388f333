package postgres

import (
	"context"
	"testing"
	"time"

	"erp-cars-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "agency_id", "name", "email", "phone", "address", "license_number", "license_expiry",
		"total_rentals", "apply_tier_discount", "status", "notes", "created_on", "updated_on",
	})
}

func TestCustomerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := &domain.Customer{
		AgencyID:          1,
		Name:              "Amine Bensaid",
		Email:             "amine@example.com",
		LicenseNumber:     "DZ-16-12345",
		ApplyTierDiscount: true,
		Status:            domain.CustomerStatusActive,
	}

	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(customer.AgencyID, customer.Name, customer.Email, customer.Phone, customer.Address,
			customer.LicenseNumber, customer.LicenseExpiry, customer.TotalRentals, customer.ApplyTierDiscount,
			customer.Status, customer.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	require.NoError(t, repo.Create(ctx, customer))
	assert.Equal(t, int32(7), customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := customerRows().
			AddRow(7, 1, "Amine Bensaid", "amine@example.com", "0550", "", "DZ-16-12345", nil,
				20, true, "ACTIVE", "", time.Now().Format("2006-01-02"), time.Now().Format("2006-01-02"))

		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1 AND agency_id = \\$2").
			WithArgs(int32(7), int32(1)).
			WillReturnRows(rows)

		customer, err := repo.GetByID(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, int32(7), customer.ID)
		assert.Equal(t, 20, customer.TotalRentals)
		assert.True(t, customer.ApplyTierDiscount)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1 AND agency_id = \\$2").
			WithArgs(int32(99), int32(1)).
			WillReturnRows(customerRows())

		_, err := repo.GetByID(ctx, 1, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCustomerRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM customers WHERE id = \\$1 AND agency_id = \\$2").
			WithArgs(int32(7), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1, 7))
	})

	t.Run("WrongAgency", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM customers WHERE id = \\$1 AND agency_id = \\$2").
			WithArgs(int32(7), int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 2, 7), domain.ErrNotFound)
	})
}

func TestCustomerRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
		WithArgs(int32(1), "%amine%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := customerRows().
		AddRow(7, 1, "Amine Bensaid", "amine@example.com", "0550", "", "DZ-16-12345", nil,
			20, true, "ACTIVE", "", "2026-01-01", "2026-01-01")
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE agency_id = \\$1 AND").
		WithArgs(int32(1), "%amine%", int32(20), int32(0)).
		WillReturnRows(rows)

	customers, total, err := repo.List(ctx, 1, "amine", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(1), total)
	require.Len(t, customers, 1)
	assert.Equal(t, "Amine Bensaid", customers[0].Name)
}

func TestCustomerRepository_IncrementTotalRentalsTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE customers SET total_rentals = total_rentals \\+ 1").
		WithArgs(sqlmock.AnyArg(), int32(7), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.IncrementTotalRentalsTx(ctx, tx, 1, 7))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
