package arrow

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/ljodea/arrow/fs/core"
	"github.com/ljodea/arrow/fs/local"
	"github.com/ljodea/arrow/fs/objstore"
)

// ForeignAdapter coerces a value recognized by type name into a
// conforming filesystem.
type ForeignAdapter func(v any) (core.FileSystem, error)

var (
	foreignMu sync.RWMutex

	// foreign maps type names, the value's own or one carried by an
	// embedded field, to adapters.
	foreign = map[string]ForeignAdapter{
		"S3FileSystem":    adaptObjectStore,
		"LocalFileSystem": adaptLocal,
	}
)

// RegisterForeign adds a classification for foreign filesystem values
// whose type ancestry carries name. The adapter runs when Ensure meets
// such a value. Registering an existing name replaces its adapter.
func RegisterForeign(name string, adapt ForeignAdapter) {
	foreignMu.Lock()
	defer foreignMu.Unlock()
	foreign[name] = adapt
}

// Ensure coerces a filesystem-like value into a core.FileSystem.
//
// Values that already implement the contract pass through unchanged.
// Anything else is classified by the names in its type ancestry, the
// type itself and every embedded field type, against the registered
// foreign adapters: recognized object-store clients are wrapped in the
// flat-namespace adapter, and foreign local filesystems collapse to
// the shared local backend. Unclassifiable values fail with
// ErrUnknownFilesystem.
func Ensure(filesystem any) (core.FileSystem, error) {
	if fsys, ok := filesystem.(core.FileSystem); ok {
		return fsys, nil
	}
	for _, name := range typeAncestry(reflect.TypeOf(filesystem)) {
		foreignMu.RLock()
		adapt, ok := foreign[name]
		foreignMu.RUnlock()
		if ok {
			return adapt(filesystem)
		}
	}
	return nil, fmt.Errorf("ensure: %w: %T", core.ErrUnknownFilesystem, filesystem)
}

func adaptObjectStore(v any) (core.FileSystem, error) {
	client, ok := v.(objstore.Client)
	if !ok {
		return nil, fmt.Errorf("ensure: %T lacks the object-store client surface: %w", v, core.ErrUnknownFilesystem)
	}
	return objstore.New(client), nil
}

func adaptLocal(any) (core.FileSystem, error) {
	return local.Instance(), nil
}

// typeAncestry lists the type's own name followed by the names of its
// embedded field types, depth first. Pointers are followed to their
// element type.
func typeAncestry(t reflect.Type) []string {
	var names []string
	seen := make(map[reflect.Type]bool)

	var visit func(reflect.Type)
	visit = func(t reflect.Type) {
		if t == nil {
			return
		}
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if seen[t] {
			return
		}
		seen[t] = true

		if t.Name() != "" {
			names = append(names, t.Name())
		}
		if t.Kind() == reflect.Struct {
			for i := 0; i < t.NumField(); i++ {
				if f := t.Field(i); f.Anonymous {
					visit(f.Type)
				}
			}
		}
	}
	visit(t)
	return names
}
