package sanity

import (
	"os"
	"path/filepath"

	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/schema"
)

// Context wraps one dataset version's snapshot plus its on-disk location and
// exposes the query helpers checkers need. It never exposes snapshot
// mutation; repairs go through FixContext.
type Context struct {
	datasetID string
	dataRoot  string
	version   int
	versioned bool
	snap      *schema.Snapshot
	loadErr   error
}

// NewContext builds the context for one dataset version. snap is nil when
// loading failed, in which case loadErr carries the failure.
func NewContext(datasetID, dataRoot string, version int, versioned bool, snap *schema.Snapshot, loadErr error) *Context {
	return &Context{
		datasetID: datasetID,
		dataRoot:  dataRoot,
		version:   version,
		versioned: versioned,
		snap:      snap,
		loadErr:   loadErr,
	}
}

func (c *Context) DatasetID() string { return c.datasetID }
func (c *Context) DataRoot() string  { return c.dataRoot }
func (c *Context) Version() int      { return c.version }

// Versioned reports whether a numeric version directory was resolved under
// the dataset root.
func (c *Context) Versioned() bool { return c.versioned }

// Loaded reports whether the snapshot was constructed.
func (c *Context) Loaded() bool { return c.snap != nil }

// LoadErr returns the snapshot construction failure, nil when loaded.
func (c *Context) LoadErr() error { return c.loadErr }

// AnnotationDir is the directory holding the schema JSON files.
func (c *Context) AnnotationDir() string { return filepath.Join(c.dataRoot, "annotation") }

// SchemaFile is the path of one table's annotation JSON file.
func (c *Context) SchemaFile(name schema.TableName) string {
	return filepath.Join(c.AnnotationDir(), name.Filename())
}

// FileExists checks a path relative to the dataset version root.
func (c *Context) FileExists(rel string) bool {
	_, err := os.Stat(filepath.Join(c.dataRoot, rel))
	return err == nil
}

// HasTable reports whether the table's annotation file was loaded.
func (c *Context) HasTable(name schema.TableName) bool {
	return c.snap != nil && c.snap.Has(name)
}

// Table returns the loaded records of a table, nil when absent or unloaded.
func (c *Context) Table(name schema.TableName) schema.Table {
	if c.snap == nil {
		return nil
	}
	return c.snap.Table(name)
}

// Lookup resolves a foreign-key token within a table.
func (c *Context) Lookup(name schema.TableName, token string) (schema.Record, bool) {
	if c.snap == nil {
		return nil, false
	}
	return c.snap.Lookup(name, token)
}

// FixContext is the privileged handle passed only to Fixer.Fix. It can
// rewrite a table both on disk and in the in-memory snapshot so the
// follow-up re-check observes the repaired state.
type FixContext struct {
	ctx    *Context
	writer domain.TableWriter
}

// NewFixContext wires a write-capable handle around a context.
func NewFixContext(ctx *Context, writer domain.TableWriter) *FixContext {
	return &FixContext{ctx: ctx, writer: writer}
}

// Table returns the current records of a table.
func (f *FixContext) Table(name schema.TableName) schema.Table {
	return f.ctx.Table(name)
}

// Rewrite persists the repaired table and updates the snapshot.
func (f *FixContext) Rewrite(name schema.TableName, records schema.Table) error {
	if err := f.writer.WriteTable(f.ctx.dataRoot, name, records); err != nil {
		return err
	}
	f.ctx.snap.Replace(name, records)
	return nil
}
