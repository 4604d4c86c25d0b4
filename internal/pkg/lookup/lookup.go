package lookup

import (
	"context"
	"fmt"
	"strings"

	"rental-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
)

// Role names.
const (
	RoleAdmin       = "Admin"
	RoleRentalAgent = "RentalAgent"
	RoleCustomer    = "Customer"
)

// Booking status names.
const (
	BookingPending    = "Pending"
	BookingConfirmed  = "Confirmed"
	BookingCancelled  = "Cancelled"
	BookingCheckedOut = "CheckedOut"
	BookingCompleted  = "Completed"
)

// Payment and refund states are plain strings on their rows.
const (
	PaymentSuccess  = "Success"
	PaymentFailed   = "Failed"
	PaymentRefunded = "Refunded"

	RefundPending  = "Pending"
	RefundRefunded = "Refunded"
	RefundRejected = "Rejected"
)

// IsStaff reports whether role may act on other users' resources.
func IsStaff(role string) bool {
	return strings.EqualFold(role, RoleAdmin) || strings.EqualFold(role, RoleRentalAgent)
}

type Row struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Table is a name <-> id enumeration loaded from a lookup table.
type Table struct {
	kind   string
	byName map[string]int64
	byID   map[int64]string
}

func NewTable(kind string, rows []Row) Table {
	t := Table{
		kind:   kind,
		byName: make(map[string]int64, len(rows)),
		byID:   make(map[int64]string, len(rows)),
	}
	for _, r := range rows {
		t.byName[strings.ToLower(r.Name)] = r.ID
		t.byID[r.ID] = r.Name
	}
	return t
}

// ID resolves name case-insensitively.
func (t Table) ID(name string) (int64, error) {
	id, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.NotFound(fmt.Sprintf("%s '%s' not found", t.kind, strings.ToLower(name)))
	}
	return id, nil
}

// IDs resolves every name, failing on the first unknown one.
func (t Table) IDs(names ...string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, n := range names {
		id, err := t.ID(n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (t Table) Name(id int64) string {
	return t.byID[id]
}

func (t Table) Has(id int64) bool {
	_, ok := t.byID[id]
	return ok
}

// Is reports whether id is the row called name.
func (t Table) Is(id int64, name string) bool {
	return strings.EqualFold(t.byID[id], name)
}

type Lookups struct {
	Roles           Table
	BookingStatuses Table
	CarStatuses     Table
}

func Load(ctx context.Context, db *sqlx.DB) (*Lookups, error) {
	load := func(table, kind string) (Table, error) {
		var rows []Row
		if err := db.SelectContext(ctx, &rows, fmt.Sprintf("SELECT id, name FROM %s ORDER BY id", table)); err != nil {
			return Table{}, fmt.Errorf("load %s: %w", table, err)
		}
		return NewTable(kind, rows), nil
	}

	roles, err := load("roles", "Role")
	if err != nil {
		return nil, err
	}
	bookingStatuses, err := load("booking_statuses", "BookingStatus")
	if err != nil {
		return nil, err
	}
	carStatuses, err := load("car_statuses", "CarStatus")
	if err != nil {
		return nil, err
	}

	return &Lookups{
		Roles:           roles,
		BookingStatuses: bookingStatuses,
		CarStatuses:     carStatuses,
	}, nil
}

// Default mirrors the rows seeded by the initial migration. Tests use it.
func Default() *Lookups {
	return &Lookups{
		Roles: NewTable("Role", []Row{
			{ID: 1, Name: RoleAdmin}, {ID: 2, Name: RoleRentalAgent}, {ID: 3, Name: RoleCustomer},
		}),
		BookingStatuses: NewTable("BookingStatus", []Row{
			{ID: 1, Name: BookingPending}, {ID: 2, Name: BookingConfirmed}, {ID: 3, Name: BookingCancelled},
			{ID: 4, Name: BookingCheckedOut}, {ID: 5, Name: BookingCompleted},
		}),
		CarStatuses: NewTable("CarStatus", []Row{
			{ID: 1, Name: "Available"}, {ID: 2, Name: "Reserved"}, {ID: 3, Name: "CheckedOut"}, {ID: 4, Name: "Maintenance"},
		}),
	}
}
