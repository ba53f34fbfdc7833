package document

import (
	"fmt"
	"iter"

	"github.com/erraggy/oasdoc/internal/httputil"
)

// PathItem describes the operations available on a single path. A path item
// may be empty: the path is still exposed, but no operations are offered on
// it. Absence of a verb slot means "not offered", never "offered with an
// empty definition".
type PathItem struct {
	Summary     string
	Description string
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation
	Servers     []*Server
	Parameters  []*RefOr[Parameter]
	// Extra captures specification extensions (fields starting with "x-")
	Extra *Object
}

// DecodeObject decodes a path item from obj. Every key that is not one of
// the reserved fields lands in Extra; there are no dynamic keys at this
// level.
func (p *PathItem) DecodeObject(obj *Object) error {
	fixed := []Field{
		stringField("summary", &p.Summary),
		stringField("description", &p.Description),
		payloadField[Operation](httputil.MethodGet, &p.Get),
		payloadField[Operation](httputil.MethodPut, &p.Put),
		payloadField[Operation](httputil.MethodPost, &p.Post),
		payloadField[Operation](httputil.MethodDelete, &p.Delete),
		payloadField[Operation](httputil.MethodOptions, &p.Options),
		payloadField[Operation](httputil.MethodHead, &p.Head),
		payloadField[Operation](httputil.MethodPatch, &p.Patch),
		payloadField[Operation](httputil.MethodTrace, &p.Trace),
		payloadListField[Server]("servers", &p.Servers),
		refOrListField[Parameter]("parameters", &p.Parameters),
	}
	extra, err := Split(obj, fixed, nil, nil)
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}

// EncodeObject encodes the path item back to an object: summary and
// description first, then populated verb slots in canonical order, then
// servers, parameters, and extensions. Empty verb slots are omitted.
func (p *PathItem) EncodeObject() *Object {
	b := NewBuilder()
	b.SetIfNotEmpty("summary", p.Summary)
	b.SetIfNotEmpty("description", p.Description)
	for method, op := range p.Operations() {
		b.Set(method, op.EncodeObject())
	}
	if len(p.Servers) > 0 {
		b.Set("servers", encodePayloadList(p.Servers))
	}
	if len(p.Parameters) > 0 {
		b.Set("parameters", encodeRefOrList(p.Parameters))
	}
	b.Extend(p.Extra)
	return b.Object()
}

// operationSlot pairs a method name with the address of its verb slot, so
// the traversal variants below share one canonical ordering and filtering
// rule.
type operationSlot struct {
	method string
	op     **Operation
}

func (p *PathItem) slots() []operationSlot {
	return []operationSlot{
		{httputil.MethodGet, &p.Get},
		{httputil.MethodPut, &p.Put},
		{httputil.MethodPost, &p.Post},
		{httputil.MethodDelete, &p.Delete},
		{httputil.MethodOptions, &p.Options},
		{httputil.MethodHead, &p.Head},
		{httputil.MethodPatch, &p.Patch},
		{httputil.MethodTrace, &p.Trace},
	}
}

// Operations iterates over (method, operation) pairs for exactly the verbs
// that are populated, in canonical order (get, put, post, delete, options,
// head, patch, trace) regardless of how the source document ordered them.
// The yielded pointers grant write access to each operation in place.
func (p *PathItem) Operations() iter.Seq2[string, *Operation] {
	return func(yield func(string, *Operation) bool) {
		for _, slot := range p.slots() {
			if *slot.op == nil {
				continue
			}
			if !yield(slot.method, *slot.op) {
				return
			}
		}
	}
}

// TakeOperations drains the verb slots: it iterates like [PathItem.Operations]
// but clears each slot as it is yielded, leaving the path item with no
// operations afterwards.
func (p *PathItem) TakeOperations() iter.Seq2[string, *Operation] {
	return func(yield func(string, *Operation) bool) {
		for _, slot := range p.slots() {
			if *slot.op == nil {
				continue
			}
			op := *slot.op
			*slot.op = nil
			if !yield(slot.method, op) {
				return
			}
		}
	}
}

// Operation returns the operation for method, or nil when the verb is not
// offered or unknown.
func (p *PathItem) Operation(method string) *Operation {
	for _, slot := range p.slots() {
		if slot.method == method {
			return *slot.op
		}
	}
	return nil
}

// SetOperation stores op in the slot for method. It fails for methods
// outside the supported enumeration.
func (p *PathItem) SetOperation(method string, op *Operation) error {
	for _, slot := range p.slots() {
		if slot.method == method {
			*slot.op = op
			return nil
		}
	}
	return fmt.Errorf("document: unsupported HTTP method %q", method)
}

// Paths holds the relative paths to the individual endpoints, in source
// order. Each value is a path item or a reference to one. Every key except
// the "/"-prefixed path templates is an extension entry.
type Paths struct {
	keys  []string
	items map[string]*RefOr[PathItem]
	// Extra captures specification extensions (fields starting with "x-")
	Extra *Object
}

// Len returns the number of path entries.
func (p *Paths) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Get returns the entry for the exact path template, if present.
func (p *Paths) Get(path string) (*RefOr[PathItem], bool) {
	if p == nil {
		return nil, false
	}
	item, ok := p.items[path]
	return item, ok
}

// Set stores item under path. New paths are appended; existing paths keep
// their position.
func (p *Paths) Set(path string, item *RefOr[PathItem]) {
	if p.items == nil {
		p.items = make(map[string]*RefOr[PathItem])
	}
	if _, ok := p.items[path]; !ok {
		p.keys = append(p.keys, path)
	}
	p.items[path] = item
}

// All iterates over (path, item) pairs in source order.
func (p *Paths) All() iter.Seq2[string, *RefOr[PathItem]] {
	return func(yield func(string, *RefOr[PathItem]) bool) {
		if p == nil {
			return
		}
		for _, path := range p.keys {
			if !yield(path, p.items[path]) {
				return
			}
		}
	}
}

// DecodeObject decodes the path collection from obj. Keys starting with "/"
// are path templates decoding as reference-or-inline path items; everything
// else is an extension entry.
func (p *Paths) DecodeObject(obj *Object) error {
	extra, err := Split(obj, nil, httputil.IsPathKey, func(path string, value any) error {
		item, err := DecodeRefOr[PathItem](value)
		if err != nil {
			return err
		}
		p.Set(path, item)
		return nil
	})
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}

// EncodeObject encodes the collection back to an object: path entries in
// stored order, then extensions in stored order.
func (p *Paths) EncodeObject() *Object {
	b := NewBuilder()
	for path, item := range p.All() {
		b.Set(path, EncodeRefOr[PathItem](item))
	}
	b.Extend(p.Extra)
	return b.Object()
}
