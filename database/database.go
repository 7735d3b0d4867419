// Package database writes translated ways to PostgreSQL.
package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/lib/pq/hstore"
	"github.com/pkg/errors"

	"github.com/radsim/roadstyle/element"
	"github.com/radsim/roadstyle/log"
	"github.com/radsim/roadstyle/translate"
)

type SQLError struct {
	query         string
	originalError error
}

func (e *SQLError) Error() string {
	return fmt.Sprintf("SQL Error: %s in query %s", e.originalError.Error(), e.query)
}

type SQLInsertError struct {
	SQLError
	data interface{}
}

func (e *SQLInsertError) Error() string {
	return fmt.Sprintf("SQL Error: %s in query %s (%+v)", e.originalError.Error(), e.query, e.data)
}

type Config struct {
	ConnectionParams string
	Schema           string
	Table            string
}

// Column maps a RadSim key to a table column.
type Column struct {
	Name string
	Key  string
}

var Columns = []Column{
	{"road_style", translate.KeyRoadStyle},
	{"road_style_simplified", translate.KeyRoadStyleSimplified},
	{"surface", translate.KeySurface},
	{"surface_quality", translate.KeySurfaceQuality},
	{"max_speed", translate.KeyMaxSpeed},
	{"no_of_lanes", translate.KeyLanes},
}

// Row is a translated way.
type Row struct {
	ID         int64
	Attributes element.Tags
	// Tags are the OSM tags of the way, stored as hstore.
	Tags element.Tags
}

func (r Row) values() []interface{} {
	values := make([]interface{}, 0, len(Columns)+2)
	values = append(values, r.ID)
	for _, c := range Columns {
		v, ok := r.Attributes[c.Key]
		if !ok {
			values = append(values, nil)
			continue
		}
		values = append(values, v)
	}
	h := hstore.Hstore{Map: make(map[string]sql.NullString, len(r.Tags))}
	for k, v := range r.Tags {
		h.Map[k] = sql.NullString{String: v, Valid: true}
	}
	return append(values, h)
}

func columnNames() []string {
	names := []string{"osm_id"}
	for _, c := range Columns {
		names = append(names, c.Name)
	}
	return append(names, "tags")
}

// Writer bulk loads rows into a single table with COPY. Rows of one
// Begin/End are committed in a single transaction and replace the previous
// content of the table.
type Writer struct {
	Config
	db      *sql.DB
	tx      *sql.Tx
	stmt    *sql.Stmt
	copySQL string
}

// Open connects to the database. postgis:// URLs are accepted as well.
func Open(conf Config) (*Writer, error) {
	params, err := connectionParams(conf.ConnectionParams)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("postgres", params)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "connecting to database")
	}
	return &Writer{Config: conf, db: db}, nil
}

func connectionParams(conn string) (string, error) {
	if strings.HasPrefix(conn, "postgis://") {
		conn = strings.Replace(conn, "postgis", "postgres", 1)
	}
	params, err := pq.ParseURL(conn)
	if err != nil {
		return "", errors.Wrapf(err, "parsing connection %q", conn)
	}
	return disableDefaultSsl(params), nil
}

// disableDefaultSsl adds sslmode=disable if no sslmode is set.
func disableDefaultSsl(params string) string {
	if strings.Contains(params, "sslmode=") {
		return params
	}
	if params == "" {
		return "sslmode=disable"
	}
	return params + " sslmode=disable"
}

func (w *Writer) fullName() string {
	return fmt.Sprintf(`"%s"."%s"`, w.Schema, w.Table)
}

func (w *Writer) createTableSQL() string {
	cols := []string{"osm_id BIGINT PRIMARY KEY"}
	for _, c := range Columns {
		cols = append(cols, fmt.Sprintf(`"%s" VARCHAR`, c.Name))
	}
	cols = append(cols, "tags HSTORE")
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n    %s\n);", w.fullName(), strings.Join(cols, ",\n    "))
}

// Init creates the schema and table if they do not exist.
func (w *Writer) Init() error {
	for _, stmt := range []string{
		"CREATE EXTENSION IF NOT EXISTS hstore",
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, w.Schema),
		w.createTableSQL(),
	} {
		if _, err := w.db.Exec(stmt); err != nil {
			return &SQLError{stmt, err}
		}
	}
	return nil
}

// Begin truncates the table and starts the COPY.
func (w *Writer) Begin() error {
	tx, err := w.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	truncate := fmt.Sprintf(`TRUNCATE TABLE %s`, w.fullName())
	if _, err := tx.Exec(truncate); err != nil {
		tx.Rollback()
		return &SQLError{truncate, err}
	}
	w.copySQL = pq.CopyInSchema(w.Schema, w.Table, columnNames()...)
	stmt, err := tx.Prepare(w.copySQL)
	if err != nil {
		tx.Rollback()
		return &SQLError{w.copySQL, err}
	}
	w.tx = tx
	w.stmt = stmt
	return nil
}

func (w *Writer) Insert(row Row) error {
	if w.stmt == nil {
		return errors.New("insert without begin")
	}
	if _, err := w.stmt.Exec(row.values()...); err != nil {
		return &SQLInsertError{SQLError{w.copySQL, err}, row.ID}
	}
	return nil
}

// End flushes the COPY and commits.
func (w *Writer) End() error {
	if w.stmt == nil {
		return errors.New("end without begin")
	}
	defer w.reset()
	if _, err := w.stmt.Exec(); err != nil {
		w.tx.Rollback()
		return &SQLError{w.copySQL, err}
	}
	if err := w.stmt.Close(); err != nil {
		w.tx.Rollback()
		return &SQLError{w.copySQL, err}
	}
	if err := w.tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	log.Printf("[info] Wrote ways to %s", w.fullName())
	return nil
}

// Abort rolls back all rows since Begin.
func (w *Writer) Abort() error {
	if w.tx == nil {
		return nil
	}
	defer w.reset()
	if w.stmt != nil {
		w.stmt.Close()
	}
	return w.tx.Rollback()
}

func (w *Writer) reset() {
	w.tx = nil
	w.stmt = nil
}

func (w *Writer) Close() error {
	return w.db.Close()
}
