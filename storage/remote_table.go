package storage

import (
	"house-price-predictor/utils"
)

// UserColumn is the header cell that scopes a row to its owner. Partitioning
// is purely application-level filtering on this column; the remote store
// knows nothing about users.
const UserColumn = "User"

// Record is one remote table row keyed by the header row.
type Record map[string]string

// RemoteTable is an append/read/rewrite view of one flat remote table. The
// first row is the header; every other row is data. Multiple processes may
// write the same table with no locking.
type RemoteTable struct {
	api     TableAPI
	tableID string
	header  []string
	logger  *utils.Logger
}

// NewRemoteTable creates a view of tableID through api. header is the
// canonical header row, used when (re-)initialising the table.
func NewRemoteTable(api TableAPI, tableID string, header []string, logger *utils.Logger) *RemoteTable {
	return &RemoteTable{api: api, tableID: tableID, header: header, logger: logger}
}

// Append adds one row at the end of the table. No uniqueness checks.
func (t *RemoteTable) Append(row []string) error {
	return t.api.AppendRow(t.tableID, row)
}

// EnsureHeader writes the canonical header row if the table is empty.
func (t *RemoteTable) EnsureHeader() error {
	values, err := t.api.Values(t.tableID)
	if err != nil {
		return err
	}
	if len(values) > 0 {
		return nil
	}
	return t.api.AppendRow(t.tableID, t.header)
}

// ReadAll returns every data row keyed by the table's own header row.
// Short rows read as empty strings for the missing columns.
func (t *RemoteTable) ReadAll() ([]Record, error) {
	values, err := t.api.Values(t.tableID)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	header := values[0]
	records := make([]Record, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadForUser returns the rows owned by user, in table order. Linear scan;
// the store has no index.
func (t *RemoteTable) ReadForUser(user string) ([]Record, error) {
	all, err := t.ReadAll()
	if err != nil {
		return nil, err
	}

	var out []Record
	for _, rec := range all {
		if rec[UserColumn] == user {
			out = append(out, rec)
		}
	}
	return out, nil
}

// PurgeUser removes every row owned by user via clear-and-rewrite: read all
// rows, wipe the table, re-append the header, then re-append every other
// user's rows in their original order.
//
// The sequence is not atomic. Between Clear and the final re-append the
// remote table holds a partial copy, and a crash or concurrent writer in
// that window loses other users' rows, not just the target's.
func (t *RemoteTable) PurgeUser(user string) error {
	values, err := t.api.Values(t.tableID)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	header := values[0]
	userIdx := -1
	for i, col := range header {
		if col == UserColumn {
			userIdx = i
			break
		}
	}

	if err := t.api.Clear(t.tableID); err != nil {
		return err
	}
	if err := t.api.AppendRow(t.tableID, header); err != nil {
		return err
	}

	kept := 0
	for _, row := range values[1:] {
		if userIdx >= 0 && userIdx < len(row) && row[userIdx] == user {
			continue
		}
		if err := t.api.AppendRow(t.tableID, row); err != nil {
			return err
		}
		kept++
	}

	t.logger.Info("[table:%s] Purged rows for %q, rewrote %d of %d rows",
		t.tableID, user, kept, len(values)-1)
	return nil
}
