package repository

import (
	"context"
	"database/sql"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
)

// ExpenseRepo provides CRUD for the expense ledger.  Writes that carry an
// odometer reading also lift the owner's stored last_odometer_reading when
// the new value is higher; insert/update and the side effect share one
// transaction.
type ExpenseRepo struct {
	db    *sql.DB
	users *UserRepo
}

// NewExpenseRepo returns an ExpenseRepo bound to the given database.
func NewExpenseRepo(db *sql.DB, users *UserRepo) *ExpenseRepo {
	return &ExpenseRepo{db: db, users: users}
}

const expenseColumns = "id,user_id,date,type,amount,odometer,notes,created_at"

func scanExpense(row interface{ Scan(...interface{}) error }) (model.Expense, error) {
	var e model.Expense
	var odo sql.NullFloat64
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.Type, &e.Amount, &odo, &e.Notes, &e.CreatedAt)
	if odo.Valid {
		v := odo.Float64
		e.Odometer = &v
	}
	return e, err
}

func nullOdo(o *float64) sql.NullFloat64 {
	if o == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *o, Valid: true}
}

// Create inserts an expense, applying the odometer side effect in the same
// transaction.  The generated ID and CreatedAt are filled in on e.
func (r *ExpenseRepo) Create(ctx context.Context, e *model.Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO expenses (user_id, date, type, amount, odometer, notes) VALUES (?,?,?,?,?,?)",
		e.UserID, e.Date, e.Type, e.Amount, nullOdo(e.Odometer), e.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)

	if e.Odometer != nil {
		if err := r.users.RaiseOdometerTx(ctx, tx, e.UserID, *e.Odometer); err != nil {
			return err
		}
	}
	if err := tx.QueryRowContext(ctx,
		"SELECT created_at FROM expenses WHERE id=?", e.ID).Scan(&e.CreatedAt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ListByUser returns a user's expenses ordered date descending, then
// creation time descending.
func (r *ExpenseRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE user_id=? ORDER BY date DESC, created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID returns one expense; ErrExpenseNotFound when absent.  The caller
// enforces ownership against the returned UserID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id uint64) (model.Expense, error) {
	e, err := scanExpense(r.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return e, ErrExpenseNotFound
	}
	return e, err
}

// Update overwrites an expense's mutable fields, owner-only.  The odometer
// side effect applies here too.
func (r *ExpenseRepo) Update(ctx context.Context, e *model.Expense, requesterID uint64) error {
	owner, err := r.ownerOf(ctx, e.ID)
	if err != nil {
		return err
	}
	if owner != requesterID {
		return ErrForbidden
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		"UPDATE expenses SET date=?, type=?, amount=?, odometer=?, notes=? WHERE id=?",
		e.Date, e.Type, e.Amount, nullOdo(e.Odometer), e.Notes, e.ID); err != nil {
		return err
	}
	if e.Odometer != nil {
		if err := r.users.RaiseOdometerTx(ctx, tx, owner, *e.Odometer); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	e.UserID = owner
	return nil
}

// Delete removes an expense, owner-only.
func (r *ExpenseRepo) Delete(ctx context.Context, id, requesterID uint64) error {
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner != requesterID {
		return ErrForbidden
	}
	_, err = r.db.ExecContext(ctx, "DELETE FROM expenses WHERE id=?", id)
	return err
}

func (r *ExpenseRepo) ownerOf(ctx context.Context, id uint64) (uint64, error) {
	var owner uint64
	err := r.db.QueryRowContext(ctx, "SELECT user_id FROM expenses WHERE id=? LIMIT 1", id).Scan(&owner)
	if err == sql.ErrNoRows {
		return 0, ErrExpenseNotFound
	}
	return owner, err
}
