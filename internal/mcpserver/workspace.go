package mcpserver

import (
	"log/slog"
	"sync"

	"github.com/erraggy/oasdoc/definition"
	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/oaspath"
)

// workspace is the per-process working document shared by all tools.
// Tool calls may arrive concurrently, so every access goes through mu.
type workspace struct {
	mu  sync.Mutex
	doc *document.Document
}

func newWorkspace() *workspace {
	ws := &workspace{}
	// A fresh empty document cannot fail InitSequences.
	_, _, _ = ws.reset(document.New(), cfg.InitSequences)
	return ws
}

// reset swaps in doc, optionally initializing its sequence sections. It
// returns the document's top-level keys, read before any other tool can see
// doc, and the paths that were initialized.
func (ws *workspace) reset(doc *document.Document, initSequences bool) ([]string, []oaspath.Path, error) {
	var initialized []oaspath.Path
	if initSequences {
		var err error
		if initialized, err = definition.InitSequences(doc); err != nil {
			return nil, nil, err
		}
	}

	ws.mu.Lock()
	keys := doc.Root().Keys()
	ws.doc = doc
	ws.mu.Unlock()

	slog.Debug("workspace reset", "keys", keys, "initialized", len(initialized))
	return keys, initialized, nil
}

// read runs fn with the document while holding the lock. fn must not keep
// references to values it reads.
func (ws *workspace) read(fn func(doc *document.Document) error) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return fn(ws.doc)
}

// apply runs op against the document and returns how many values it wrote.
func (ws *workspace) apply(op definition.Operation, target string, values ...document.Value) (int, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	n, err := op.Apply(ws.doc, target, values...)
	if err != nil {
		return 0, &definition.OperationError{Operation: op.QualifiedName(), Target: target, Cause: err}
	}
	return n, nil
}
