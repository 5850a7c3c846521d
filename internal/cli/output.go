package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/edgetools/akaget/pkg/jsonutil"
)

// printKV writes one "name : value" line, key left-padded to 22 columns.
func printKV(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%-22s: %s\n", name, value)
}

// printIndented dumps a document as indented JSON.
func printIndented(w io.Writer, doc any) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "%v\n", doc)
		return
	}
	fmt.Fprintln(w, string(b))
}

// printURLDebug renders the httpResponse entries of a url-debug result.
// When the document does not have that shape, the whole document is
// dumped as indented JSON instead.
func printURLDebug(w io.Writer, doc map[string]any) {
	entries, ok := jsonutil.GetValuesByPath(doc, "$.urlDebug.httpResponse[*]")
	if !ok {
		printIndented(w, doc)
		return
	}
	type line struct{ name, value string }
	var lines []line
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			printIndented(w, doc)
			return
		}
		name, hasName := entry["name"]
		value, hasValue := entry["value"]
		if !hasName || !hasValue {
			printIndented(w, doc)
			return
		}
		if v, ok := jsonutil.CoerceScalar(value); ok {
			lines = append(lines, line{jsonutil.CoerceString(name), v})
		}
	}
	for _, l := range lines {
		printKV(w, l.name, l.value)
	}
}

// printScalarFields renders the scalar members of a mapping as key/value
// lines, keys sorted for a stable output.
func printScalarFields(w io.Writer, doc map[string]any) {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v, ok := jsonutil.CoerceScalar(doc[k]); ok {
			printKV(w, k, v)
		}
	}
}

// exportJSON writes the raw result document to path; empty path is a
// no-op.
func exportJSON(path string, result any) error {
	if path == "" {
		return nil
	}
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json export: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write json export %q: %w", path, err)
	}
	return nil
}
