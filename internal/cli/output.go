package cli

import (
	"encoding/json"
	"fmt"

	"sudoq/internal/corpus"
	"sudoq/internal/model"
)

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// loadDocument resolves a stored puzzle by id or falls back to the latest.
func loadDocument(store *corpus.Store, id string, latest bool) (*model.Document, corpus.Handle) {
	if id != "" && latest {
		exitErr("select puzzle", fmt.Errorf("use only one of --id / --latest"))
	}

	var (
		h   corpus.Handle
		err error
	)
	if id != "" {
		h, err = store.Resolve(id)
	} else {
		h, err = store.Latest()
	}
	if err != nil {
		exitErr("select puzzle", err)
	}

	doc, err := store.Read(h.Path)
	if err != nil {
		exitErr("read puzzle", err)
	}
	return doc, h
}
