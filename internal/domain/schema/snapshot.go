package schema

// Record is one raw table row as decoded from JSON. Field access goes
// through typed getters; token references stay plain strings so that a
// missing reference is a lookup miss, never a nil dereference.
type Record map[string]any

// Token returns the record's primary key, or "" when absent.
func (r Record) Token() string {
	return r.String("token")
}

// String returns a string field, or "" when absent or of another type.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Table is the ordered sequence of records of one table.
type Table []Record

// Tokens returns the record tokens in table order.
func (t Table) Tokens() []string {
	tokens := make([]string, 0, len(t))
	for _, rec := range t {
		tokens = append(tokens, rec.Token())
	}
	return tokens
}

// Snapshot is the fully-loaded, read-only view of one dataset version's
// annotation tables, with a token index per table built once at load time.
type Snapshot struct {
	tables map[TableName]Table
	index  map[TableName]map[string]Record
}

// NewSnapshot builds a snapshot from loaded tables. Tables absent from the
// map were missing on disk; an empty Table means the file existed but held
// no records.
func NewSnapshot(tables map[TableName]Table) *Snapshot {
	s := &Snapshot{
		tables: tables,
		index:  make(map[TableName]map[string]Record, len(tables)),
	}
	for name, records := range tables {
		idx := make(map[string]Record, len(records))
		for _, rec := range records {
			idx[rec.Token()] = rec
		}
		s.index[name] = idx
	}
	return s
}

// Has reports whether the table's annotation file was present.
func (s *Snapshot) Has(name TableName) bool {
	_, ok := s.tables[name]
	return ok
}

// Table returns the records of the named table, nil when absent.
func (s *Snapshot) Table(name TableName) Table {
	return s.tables[name]
}

// Lookup resolves a token within a table.
func (s *Snapshot) Lookup(name TableName, token string) (Record, bool) {
	rec, ok := s.index[name][token]
	return rec, ok
}

// Replace swaps a table's records and rebuilds its token index. Only the
// privileged fix path calls this; checkers never see a mutable snapshot.
func (s *Snapshot) Replace(name TableName, records Table) {
	s.tables[name] = records
	idx := make(map[string]Record, len(records))
	for _, rec := range records {
		idx[rec.Token()] = rec
	}
	s.index[name] = idx
}
