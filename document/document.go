package document

// Document is the root record of an API description. Only the parts this
// model cares about are typed; info stays opaque and anything unrecognized
// is an extension entry.
type Document struct {
	OpenAPI string
	// Info is kept opaque; metadata semantics are outside this model.
	Info    *Object
	Servers []*Server
	Paths   *Paths
	// Extra captures specification extensions (fields starting with "x-")
	Extra *Object
}

// DecodeObject decodes the root document from obj.
func (d *Document) DecodeObject(obj *Object) error {
	fixed := []Field{
		stringField("openapi", &d.OpenAPI),
		objectField("info", &d.Info),
		payloadListField[Server]("servers", &d.Servers),
		payloadField[Paths]("paths", &d.Paths),
	}
	extra, err := Split(obj, fixed, nil, nil)
	if err != nil {
		return err
	}
	d.Extra = extra
	return nil
}

// EncodeObject encodes the document back to an object.
func (d *Document) EncodeObject() *Object {
	b := NewBuilder()
	b.SetIfNotEmpty("openapi", d.OpenAPI)
	if d.Info != nil {
		b.Set("info", d.Info)
	}
	if len(d.Servers) > 0 {
		b.Set("servers", encodePayloadList(d.Servers))
	}
	if d.Paths != nil {
		b.Set("paths", d.Paths.EncodeObject())
	}
	b.Extend(d.Extra)
	return b.Object()
}
