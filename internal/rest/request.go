// Package rest issues CRUD operations against a named resource
// collection on a PostgREST-style tabular store.
//
// Operations are described by a plain Request value handed to a single
// dispatch method, rather than a chain of closures, so a request can be
// inspected and tested before any I/O happens.
package rest

import "fmt"

// Op is the kind of operation a Request performs.
type Op int

const (
	OpList Op = iota
	OpInsert
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpList:
		return "list"
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Request describes one operation against the resource collection.
// The zero filter (empty KeyColumn) means the operation is unscoped.
type Request struct {
	Op        Op
	Columns   []string // list only; empty means all columns
	KeyColumn string   // update/delete row filter: KeyColumn == KeyValue
	KeyValue  string
	Payload   any      // insert: []Record; update: partial Record
}

// List builds a fetch of all records, optionally projecting the named
// columns.
func List(columns ...string) Request {
	return Request{Op: OpList, Columns: columns}
}

// Insert builds a submission of one or more new records. Callers must
// not supply an id; the store assigns identifiers.
func Insert(records []map[string]any) Request {
	return Request{Op: OpInsert, Payload: records}
}

// Update builds a partial-update payload. Scope it with ForKey before
// dispatch.
func Update(patch map[string]any) Request {
	return Request{Op: OpUpdate, Payload: patch}
}

// Delete builds a row removal. Scope it with ForKey before dispatch.
func Delete() Request {
	return Request{Op: OpDelete}
}

// ForKey returns a copy of the request scoped to rows where column
// equals value.
func (r Request) ForKey(column string, value any) Request {
	r.KeyColumn = column
	r.KeyValue = fmt.Sprint(value)
	return r
}
