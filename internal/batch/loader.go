package batch

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/bcalc/internal/transition"
)

//go:embed schema.cue
var schemaSource string

// Error codes for batch loading.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeLoadFailed  = "E004" // CUE parse failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeSchema      = "E006" // Schema unification failed
	ErrCodeEmptyBatch  = "E007" // No transitions declared
	ErrCodeDecodeEntry = "E008" // Entry could not be decoded
)

// LoadError is an error found while loading a batch file.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Entry is one request from a batch file.
type Entry struct {
	Index   int                `json:"index"`
	Name    string             `json:"name,omitempty"`
	Request transition.Request `json:"request"`
	Pos     token.Pos          `json:"-"`
}

// Label returns the entry name, or its position in the list when unnamed.
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("transitions[%d]", e.Index)
}

// Batch is a loaded batch file.
type Batch struct {
	Path    string
	Entries []Entry
}

// LoadFile reads a batch file from disk.
// All schema errors are returned together.
func LoadFile(path string) (*Batch, []error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("batch file not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading batch file: %v", err)}}
	}
	return Load(path, data)
}

// Load parses batch file contents. filename is used in error positions.
func Load(filename string, data []byte) (*Batch, []error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		// The schema is embedded, so this only fires on a broken build.
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling schema: %v", err)}}
	}

	file := ctx.CompileBytes(data, cue.Filename(filename))
	if err := file.Err(); err != nil {
		return nil, positioned(ErrCodeLoadFailed, filename, err)
	}

	value := schema.Unify(file)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, positioned(ErrCodeSchema, filename, err)
	}

	list := value.LookupPath(cue.ParsePath("transitions"))
	if !list.Exists() {
		return nil, []error{&LoadError{Code: ErrCodeEmptyBatch, Message: "no transitions field found"}}
	}
	iter, err := list.List()
	if err != nil {
		return nil, positioned(ErrCodeSchema, filename, err)
	}

	b := &Batch{Path: filename}
	var errs []error
	for i := 0; iter.Next(); i++ {
		entry, err := decodeEntry(i, iter.Value())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		b.Entries = append(b.Entries, entry)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if len(b.Entries) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeEmptyBatch, Message: "transitions list is empty"}}
	}
	return b, nil
}

func decodeEntry(i int, v cue.Value) (Entry, error) {
	entry := Entry{Index: i, Pos: v.Pos()}
	if err := v.Decode(&entry.Request); err != nil {
		return Entry{}, &LoadError{
			Code:    ErrCodeDecodeEntry,
			Message: fmt.Sprintf("transitions[%d]: %v", i, err),
			Pos:     v.Pos(),
		}
	}
	if name := v.LookupPath(cue.ParsePath("name")); name.Exists() {
		s, err := name.String()
		if err != nil {
			return Entry{}, &LoadError{Code: ErrCodeDecodeEntry, Message: fmt.Sprintf("transitions[%d].name: %v", i, err), Pos: name.Pos()}
		}
		entry.Name = s
	}
	return entry, nil
}

// positioned converts a CUE error into one LoadError per underlying error.
// Positions inside the batch file win over positions inside the schema.
func positioned(code, filename string, err error) []error {
	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return []error{&LoadError{Code: code, Message: err.Error()}}
	}
	out := make([]error, 0, len(cueErrs))
	for _, e := range cueErrs {
		le := &LoadError{Code: code, Message: e.Error()}
		for _, pos := range cueerrors.Positions(e) {
			if !le.Pos.IsValid() || pos.Filename() == filename {
				le.Pos = pos
			}
			if pos.Filename() == filename {
				break
			}
		}
		out = append(out, le)
	}
	return out
}
