package pageschema

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/sunrisefront/sunrise/idgen"
	"github.com/sunrisefront/sunrise/seotags"
)

// TagRegistry is the writer-of-record for the document head. It exclusively
// owns the lifetime of every tag it creates: a tag disappears only through
// Remove, ClearAll, or teardown of the owning orchestrator. Adding under an
// existing key replaces, never duplicates.
type TagRegistry struct {
	mu    sync.Mutex
	tags  map[string]headTag
	order []string // registration order, stable across replacements
	newID idgen.Generator
}

type tagKind int

const (
	kindScript tagKind = iota
	kindMeta
	kindLink
)

type headTag struct {
	kind    tagKind
	id      string // element id for scripts; synthetic key for meta/link
	attr    string // meta only: "name" or "property"
	key     string // meta: attribute value; link: rel
	content string // script: JSON payload; meta: content; link: href
}

// NewTagRegistry creates an empty registry.
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{
		tags:  make(map[string]headTag),
		order: []string{},
		newID: idgen.Prefixed("schema-", idgen.NanoID(8)),
	}
}

// AddSchema registers a JSON-LD script tag under the given element id,
// replacing any existing tag with that id. An empty id gets a generated one.
// Returns the effective id (the handle for later Remove calls).
func (r *TagRegistry) AddSchema(record any, id string) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("pageschema: marshal %q: %w", id, err)
	}
	if id == "" {
		id = r.newID()
	}
	r.mu.Lock()
	r.put(id, headTag{kind: kindScript, id: id, content: string(data)})
	r.mu.Unlock()
	return id, nil
}

// SetMeta registers a meta tag keyed by its name/property attribute,
// replacing any existing tag with the same key.
func (r *TagRegistry) SetMeta(tag seotags.Tag) {
	key := "meta:" + tag.Attr + ":" + tag.Key
	r.mu.Lock()
	r.put(key, headTag{kind: kindMeta, id: key, attr: tag.Attr, key: tag.Key, content: tag.Content})
	r.mu.Unlock()
}

// SetMetaAll registers a whole tag set.
func (r *TagRegistry) SetMetaAll(tags []seotags.Tag) {
	for _, tag := range tags {
		r.SetMeta(tag)
	}
}

// SetLink registers a link tag keyed by its rel attribute.
func (r *TagRegistry) SetLink(link seotags.Link) {
	key := "link:" + link.Rel
	r.mu.Lock()
	r.put(key, headTag{kind: kindLink, id: key, key: link.Rel, content: link.Href})
	r.mu.Unlock()
}

// Remove deletes the tag registered under id. No-op if absent.
func (r *TagRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tags[id]; !ok {
		return
	}
	delete(r.tags, id)
	for i, k := range r.order {
		if k == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Has reports whether a tag is registered under id.
func (r *TagRegistry) Has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tags[id]
	return ok
}

// Schema returns the JSON payload registered under a script id, or false.
func (r *TagRegistry) Schema(id string) (json.RawMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tags[id]
	if !ok || t.kind != kindScript {
		return nil, false
	}
	return json.RawMessage(t.content), true
}

// Meta returns the content of a meta tag by its name/property value.
func (r *TagRegistry) Meta(attr, key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tags["meta:"+attr+":"+key]
	if !ok {
		return "", false
	}
	return t.content, true
}

// Len returns the number of tracked tags.
func (r *TagRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tags)
}

// SchemaIDs returns the ids of all registered script tags, sorted.
func (r *TagRegistry) SchemaIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id, t := range r.tags {
		if t.kind == kindScript {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// ClearAll removes every tracked tag. Invoked on orchestrator teardown so
// no tags dangle across instances sharing a head.
func (r *TagRegistry) ClearAll() {
	r.mu.Lock()
	r.tags = make(map[string]headTag)
	r.order = r.order[:0]
	r.mu.Unlock()
}

// Render writes the head markup fragment: one line per tag, in registration
// order. JSON-LD payloads come straight from json.Marshal, which escapes
// "<" and so keeps "</script>" out of the inline payload.
func (r *TagRegistry) Render(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range r.order {
		t, ok := r.tags[key]
		if !ok {
			continue
		}
		var err error
		switch t.kind {
		case kindScript:
			_, err = fmt.Fprintf(w, "<script type=\"application/ld+json\" id=\"%s\">%s</script>\n",
				html.EscapeString(t.id), t.content)
		case kindMeta:
			_, err = fmt.Fprintf(w, "<meta %s=\"%s\" content=\"%s\">\n",
				t.attr, html.EscapeString(t.key), html.EscapeString(t.content))
		case kindLink:
			_, err = fmt.Fprintf(w, "<link rel=\"%s\" href=\"%s\">\n",
				html.EscapeString(t.key), html.EscapeString(t.content))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// String renders the fragment to a string.
func (r *TagRegistry) String() string {
	var sb strings.Builder
	r.Render(&sb)
	return sb.String()
}

// put assumes r.mu is held.
func (r *TagRegistry) put(key string, t headTag) {
	if _, exists := r.tags[key]; !exists {
		r.order = append(r.order, key)
	}
	r.tags[key] = t
}
