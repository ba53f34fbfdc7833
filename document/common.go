package document

// Opaque payload kinds. The core contracts treat these as external
// collaborators: each knows how to decode itself from and encode itself to
// an Object, and that is all the records above them rely on. Their field
// lists carry the commonly used core of the format; anything else rides
// along in Extra.

// Operation describes a single API operation on a path.
type Operation struct {
	Tags        []string
	Summary     string
	Description string
	OperationID string
	Deprecated  bool
	Parameters  []*RefOr[Parameter]
	// Responses is kept opaque; response semantics are outside this model.
	Responses *Object
	Servers   []*Server
	// Extra captures specification extensions (fields starting with "x-")
	Extra *Object
}

// DecodeObject decodes an operation from obj.
func (op *Operation) DecodeObject(obj *Object) error {
	fixed := []Field{
		stringSliceField("tags", &op.Tags),
		stringField("summary", &op.Summary),
		stringField("description", &op.Description),
		stringField("operationId", &op.OperationID),
		boolField("deprecated", &op.Deprecated),
		refOrListField[Parameter]("parameters", &op.Parameters),
		objectField("responses", &op.Responses),
		payloadListField[Server]("servers", &op.Servers),
	}
	extra, err := Split(obj, fixed, nil, nil)
	if err != nil {
		return err
	}
	op.Extra = extra
	return nil
}

// EncodeObject encodes the operation back to an object.
func (op *Operation) EncodeObject() *Object {
	b := NewBuilder()
	if len(op.Tags) > 0 {
		b.Set("tags", stringsToValues(op.Tags))
	}
	b.SetIfNotEmpty("summary", op.Summary)
	b.SetIfNotEmpty("description", op.Description)
	b.SetIfNotEmpty("operationId", op.OperationID)
	b.SetIfTrue("deprecated", op.Deprecated)
	if len(op.Parameters) > 0 {
		b.Set("parameters", encodeRefOrList(op.Parameters))
	}
	if op.Responses != nil {
		b.Set("responses", op.Responses)
	}
	if len(op.Servers) > 0 {
		b.Set("servers", encodePayloadList(op.Servers))
	}
	b.Extend(op.Extra)
	return b.Object()
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string
	In          string
	Description string
	Required    bool
	// Schema is kept opaque; schema semantics are outside this model.
	Schema *Object
	// Extra captures specification extensions (fields starting with "x-")
	Extra *Object
}

// DecodeObject decodes a parameter from obj.
func (p *Parameter) DecodeObject(obj *Object) error {
	fixed := []Field{
		stringField("name", &p.Name),
		stringField("in", &p.In),
		stringField("description", &p.Description),
		boolField("required", &p.Required),
		objectField("schema", &p.Schema),
	}
	extra, err := Split(obj, fixed, nil, nil)
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}

// EncodeObject encodes the parameter back to an object.
func (p *Parameter) EncodeObject() *Object {
	b := NewBuilder()
	b.SetIfNotEmpty("name", p.Name)
	b.SetIfNotEmpty("in", p.In)
	b.SetIfNotEmpty("description", p.Description)
	b.SetIfTrue("required", p.Required)
	if p.Schema != nil {
		b.Set("schema", p.Schema)
	}
	b.Extend(p.Extra)
	return b.Object()
}

// Server represents a server hosting the described API.
type Server struct {
	URL         string
	Description string
	// Variables is kept opaque; substitution semantics are outside this model.
	Variables *Object
	// Extra captures specification extensions (fields starting with "x-")
	Extra *Object
}

// DecodeObject decodes a server from obj.
func (s *Server) DecodeObject(obj *Object) error {
	fixed := []Field{
		stringField("url", &s.URL),
		stringField("description", &s.Description),
		objectField("variables", &s.Variables),
	}
	extra, err := Split(obj, fixed, nil, nil)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

// EncodeObject encodes the server back to an object.
func (s *Server) EncodeObject() *Object {
	b := NewBuilder()
	b.SetIfNotEmpty("url", s.URL)
	b.SetIfNotEmpty("description", s.Description)
	if s.Variables != nil {
		b.Set("variables", s.Variables)
	}
	b.Extend(s.Extra)
	return b.Object()
}

func stringsToValues(values []string) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}

func encodePayloadList[T any, PT interface {
	*T
	Payload
}](items []*T) []any {
	result := make([]any, len(items))
	for i, item := range items {
		result[i] = PT(item).EncodeObject()
	}
	return result
}

func encodeRefOrList[T any, PT interface {
	*T
	Payload
}](items []*RefOr[T]) []any {
	result := make([]any, len(items))
	for i, item := range items {
		result[i] = EncodeRefOr[T, PT](item)
	}
	return result
}
