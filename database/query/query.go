// Package query emulates the relational query API the page contract was
// written against: a chainable builder of filters, sorts and counts,
// executed as linear scans over the persisted store, with synthetic joins
// for the two relationships the site uses.
package query

import (
	"context"
	"sort"
	"strings"

	"gymrat/database"

	"github.com/google/uuid"
)

type filterOp string

const (
	opEq filterOp = "eq"
	opGt filterOp = "gt"
)

type filter struct {
	column string
	value  any
	op     filterOp
}

type sortKey struct {
	column    string
	ascending bool
}

// Result is the outcome of a query: the matching records and, when counting
// was requested, the exact match count.
type Result struct {
	Data  []database.Record
	Count int
	// HasCount reports whether Count was requested and populated.
	HasCount bool
}

// Builder accumulates query directives and executes them against the store
// when run. Zero directives means "everything in the table".
type Builder struct {
	store     *database.Store
	table     string
	selectExp string
	countMode bool
	filters   []filter
	sorts     []sortKey
}

// From starts a query against the named table. Unknown tables run fine and
// yield empty results.
func From(store *database.Store, table string) *Builder {
	return &Builder{store: store, table: table, selectExp: "*"}
}

// Select sets the select expression. Naming a related table in the
// expression (e.g. "*, trainers(name)") requests the synthetic join.
func (b *Builder) Select(expr string) *Builder {
	b.selectExp = expr
	return b
}

// CountExact requests an exact match count alongside the data.
func (b *Builder) CountExact() *Builder {
	b.countMode = true
	return b
}

// Eq adds an equality filter. Comparison is exact and typed; numeric widths
// are normalised but a numeric id never matches its string form.
func (b *Builder) Eq(column string, value any) *Builder {
	b.filters = append(b.filters, filter{column: column, value: value, op: opEq})
	return b
}

// Gt adds a greater-than filter.
func (b *Builder) Gt(column string, value any) *Builder {
	b.filters = append(b.filters, filter{column: column, value: value, op: opGt})
	return b
}

// Order adds a sort directive. Directives stack: earlier calls are the
// primary keys, later ones break ties.
func (b *Builder) Order(column string, ascending bool) *Builder {
	b.sorts = append(b.sorts, sortKey{column: column, ascending: ascending})
	return b
}

// Run executes the accumulated query: filters in registration order, then a
// stable multi-key sort, then the synthetic join when the select expression
// asks for one.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	doc, err := b.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	data := doc.Records(b.table)
	if data == nil {
		data = []database.Record{}
	}

	for _, f := range b.filters {
		kept := data[:0:0]
		for _, rec := range data {
			switch f.op {
			case opEq:
				if database.Equal(rec[f.column], f.value) {
					kept = append(kept, rec)
				}
			case opGt:
				if database.Compare(rec[f.column], f.value) > 0 {
					kept = append(kept, rec)
				}
			}
		}
		data = kept
	}

	if len(b.sorts) > 0 {
		sort.SliceStable(data, func(i, j int) bool {
			for _, s := range b.sorts {
				cmp := database.Compare(data[i][s.column], data[j][s.column])
				if cmp == 0 {
					continue
				}
				if s.ascending {
					return cmp < 0
				}
				return cmp > 0
			}
			return false
		})
	}

	data = b.applyJoins(doc, data)

	res := &Result{Data: data}
	if b.countMode {
		res.Count = len(data)
		res.HasCount = true
	}
	return res, nil
}

// applyJoins embeds the related record when the select expression names the
// related table: classes carry their trainer, bookings carry their class.
// Missing references join to a placeholder, never an error.
func (b *Builder) applyJoins(doc *database.Document, data []database.Record) []database.Record {
	if b.table == database.CollectionClasses && strings.Contains(b.selectExp, database.CollectionTrainers) {
		trainers := doc.Records(database.CollectionTrainers)
		for _, rec := range data {
			rec[database.CollectionTrainers] = lookup(trainers, rec["trainer_id"], database.Record{"name": "Unknown"})
		}
	}
	if b.table == database.CollectionBookings && strings.Contains(b.selectExp, database.CollectionClasses) {
		classes := doc.Records(database.CollectionClasses)
		for _, rec := range data {
			rec[database.CollectionClasses] = lookup(classes, rec["class_id"], database.Record{})
		}
	}
	return data
}

func lookup(recs []database.Record, id any, fallback database.Record) database.Record {
	for _, rec := range recs {
		if database.Equal(rec["id"], id) {
			return rec
		}
	}
	return fallback
}

// Insert appends raw records to an array-valued table, generating an id for
// any row that lacks one. It bypasses filters and sorts; the checkout and
// booking flows use this direct path.
func (b *Builder) Insert(ctx context.Context, rows []database.Record) error {
	return b.store.Update(ctx, func(doc *database.Document) error {
		for _, row := range rows {
			rec := database.Record{}
			for k, v := range row {
				rec[k] = v
			}
			if _, ok := rec["id"]; !ok {
				rec["id"] = uuid.NewString()
			}
			doc.Append(b.table, rec)
		}
		return nil
	})
}
