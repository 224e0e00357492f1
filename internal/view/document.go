package view

import (
	"fmt"
	"io"
)

// Document is a set of named text output targets, rendered in the order
// targets were first created. Writes are text-only assignments: content is
// never interpreted, so markup in backend data renders as literal text.
// Setting a target replaces its previous content entirely, which makes
// re-rendering the same payload idempotent.
type Document struct {
	order   []string
	targets map[string]string
}

func NewDocument() *Document {
	return &Document{
		targets: map[string]string{},
	}
}

// Set assigns text to a named target, creating it if needed.
func (d *Document) Set(target, text string) {
	if _, ok := d.targets[target]; !ok {
		d.order = append(d.order, target)
	}
	d.targets[target] = text
}

// Remove deletes a target entirely. Used by the role gate to keep controls
// out of the rendered output rather than merely blanking them.
func (d *Document) Remove(target string) {
	if _, ok := d.targets[target]; !ok {
		return
	}
	delete(d.targets, target)
	for i, name := range d.order {
		if name == target {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Get returns the current text of a target; empty when absent.
func (d *Document) Get(target string) string {
	return d.targets[target]
}

// Has reports whether a target exists in the document.
func (d *Document) Has(target string) bool {
	_, ok := d.targets[target]
	return ok
}

// Reset removes all targets.
func (d *Document) Reset() {
	d.order = nil
	d.targets = map[string]string{}
}

// Render writes every non-empty target as "name: text" in creation order.
func (d *Document) Render(w io.Writer) error {
	for _, name := range d.order {
		text := d.targets[name]
		if text == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, text); err != nil {
			return err
		}
	}
	return nil
}
