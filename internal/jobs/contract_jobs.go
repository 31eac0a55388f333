package jobs

import (
	"context"
	"time"

	"erp-cars-backend/internal/logger"
)

// MarkOverdueContracts flips ACTIVE contracts past their end_date to OVERDUE
func (jr *JobRunner) MarkOverdueContracts() {
	jr.runWithRecovery("MarkOverdueContracts", func() {
		ctx := context.Background()

		query := `
			UPDATE contracts
			SET status = 'OVERDUE',
			    updated_on = NOW()
			WHERE status = 'ACTIVE'
			  AND end_date < $1
			RETURNING id, reference, customer_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to mark overdue contracts", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id, customerID     int
				reference, endDate string
			)
			if err := rows.Scan(&id, &reference, &customerID, &endDate); err != nil {
				logger.Error("Failed to scan overdue contract", "error", err)
				continue
			}
			count++
			logger.Debug("Marked contract as overdue",
				"contract_id", id,
				"reference", reference,
				"customer_id", customerID,
				"end_date", endDate)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue contracts", "error", err)
			return
		}

		logger.Info("Marked contracts as overdue", "count", count)
	})
}

// SendReturnReminders emails customers whose ACTIVE contract ends tomorrow
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()

		query := `
			SELECT ct.reference, ct.end_date, cu.name, cu.email
			FROM contracts ct
			JOIN customers cu ON cu.id = ct.customer_id
			WHERE ct.status = 'ACTIVE'
			  AND ct.end_date = $1
			  AND cu.email <> ''
		`

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to query contracts ending tomorrow", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var reference, endDate, name, email string
			if err := rows.Scan(&reference, &endDate, &name, &email); err != nil {
				logger.Error("Failed to scan return reminder row", "error", err)
				continue
			}

			if err := jr.services.Email.SendReturnReminder(ctx, email, name, reference, endDate); err != nil {
				logger.Error("Failed to send return reminder",
					"reference", reference, "email", email, "error", err)
				continue
			}
			sent++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating return reminders", "error", err)
			return
		}

		logger.Info("Sent return reminders", "count", sent)
	})
}

// SendOverdueNotices emails customers with OVERDUE contracts
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()

		query := `
			SELECT ct.reference, ct.end_date, cu.name, cu.email
			FROM contracts ct
			JOIN customers cu ON cu.id = ct.customer_id
			WHERE ct.status = 'OVERDUE'
			  AND cu.email <> ''
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query overdue contracts", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var reference, endDate, name, email string
			if err := rows.Scan(&reference, &endDate, &name, &email); err != nil {
				logger.Error("Failed to scan overdue notice row", "error", err)
				continue
			}

			if err := jr.services.Email.SendOverdueNotice(ctx, email, name, reference, endDate); err != nil {
				logger.Error("Failed to send overdue notice",
					"reference", reference, "email", email, "error", err)
				continue
			}
			sent++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue notices", "error", err)
			return
		}

		logger.Info("Sent overdue notices", "count", sent)
	})
}
