package document

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdoc/docerrors"
)

func decodePathItem(t *testing.T, source string) *PathItem {
	t.Helper()
	obj := NewObject()
	require.NoError(t, json.Unmarshal([]byte(source), obj))
	item := new(PathItem)
	require.NoError(t, item.DecodeObject(obj))
	return item
}

func TestPathItemCanonicalOperationOrder(t *testing.T) {
	// Source orders the verbs post, get, delete; iteration must expose them
	// get, post, delete. Verb order is a property of the type, not the source.
	item := decodePathItem(t, `{
		"post": {"summary": "create"},
		"get": {"summary": "list"},
		"delete": {"summary": "remove"}
	}`)

	var methods []string
	for method, op := range item.Operations() {
		methods = append(methods, method)
		assert.NotNil(t, op)
	}
	assert.Equal(t, []string{"get", "post", "delete"}, methods)
}

func TestPathItemAbsenceSemantics(t *testing.T) {
	item := decodePathItem(t, `{"summary": "no operations here"}`)

	for method := range item.Operations() {
		t.Fatalf("no operation expected, got %q", method)
	}

	encoded := item.EncodeObject()
	assert.Equal(t, []string{"summary"}, encoded.Keys(),
		"absent verbs re-encode to zero verb fields, not empty ones")
}

func TestPathItemExtensionPassThrough(t *testing.T) {
	item := decodePathItem(t, `{
		"x-custom": {"a": 1},
		"get": {"summary": "list"}
	}`)

	require.NotNil(t, item.Get)
	v, ok := item.Extra.Get("x-custom")
	require.True(t, ok)
	payload, ok := v.(*Object)
	require.True(t, ok)
	a, _ := payload.Get("a")
	assert.Equal(t, float64(1), a, "extension payload preserved value-for-value")

	encoded, err := json.Marshal(item.EncodeObject())
	require.NoError(t, err)
	assert.JSONEq(t, `{"get":{"summary":"list"},"x-custom":{"a":1}}`, string(encoded))
}

func TestPathItemRoundTrip(t *testing.T) {
	source := `{
		"summary": "pet operations",
		"get": {"summary": "list", "operationId": "listPets", "tags": ["pets"]},
		"put": {"summary": "replace"},
		"servers": [{"url": "https://api.example.com"}],
		"parameters": [
			{"$ref": "#/components/parameters/Limit"},
			{"name": "offset", "in": "query", "required": true}
		],
		"x-rate-limit": 100
	}`
	item := decodePathItem(t, source)

	require.Len(t, item.Parameters, 2)
	assert.True(t, item.Parameters[0].IsRef())
	assert.Equal(t, "#/components/parameters/Limit", item.Parameters[0].Ref)
	require.NotNil(t, item.Parameters[1].Value)
	assert.Equal(t, "offset", item.Parameters[1].Value.Name)
	assert.True(t, item.Parameters[1].Value.Required)
	require.Len(t, item.Servers, 1)
	assert.Equal(t, "https://api.example.com", item.Servers[0].URL)

	encoded, err := json.Marshal(item.EncodeObject())
	require.NoError(t, err)
	assert.JSONEq(t, source, string(encoded), "decode-then-encode keeps every key/value pair")
}

func TestPathItemDecodeErrors(t *testing.T) {
	obj := NewObject()
	obj.Set("get", "not an object")

	err := new(PathItem).DecodeObject(obj)
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrTypeMismatch)

	var tmErr *docerrors.TypeMismatchError
	require.ErrorAs(t, err, &tmErr)
	assert.Equal(t, "get", tmErr.Key)
	assert.Equal(t, "object", tmErr.Expected)
}

func TestPathItemMutableTraversal(t *testing.T) {
	item := decodePathItem(t, `{"get": {"summary": "old"}, "post": {"summary": "old"}}`)

	for _, op := range item.Operations() {
		op.Summary = "new"
	}
	assert.Equal(t, "new", item.Get.Summary)
	assert.Equal(t, "new", item.Post.Summary)
}

func TestPathItemTakeOperations(t *testing.T) {
	item := decodePathItem(t, `{"post": {}, "get": {}, "delete": {}}`)

	var methods []string
	for method, op := range item.TakeOperations() {
		methods = append(methods, method)
		require.NotNil(t, op)
	}
	assert.Equal(t, []string{"get", "post", "delete"}, methods, "draining uses the same canonical order")

	assert.Nil(t, item.Get)
	assert.Nil(t, item.Post)
	assert.Nil(t, item.Delete)
	for method := range item.Operations() {
		t.Fatalf("slot %q should have been drained", method)
	}
}

func TestPathItemOperationAccessors(t *testing.T) {
	item := new(PathItem)
	op := &Operation{Summary: "list"}

	require.NoError(t, item.SetOperation("get", op))
	assert.Same(t, op, item.Operation("get"))
	assert.Same(t, op, item.Get)
	assert.Nil(t, item.Operation("put"))
	assert.Nil(t, item.Operation("query"))

	err := item.SetOperation("query", op)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported HTTP method "query"`)
}

func TestPathsDecode(t *testing.T) {
	source := `{
		"/pets": {"get": {"summary": "list"}},
		"x-routing": "round-robin",
		"/pets/{petId}": {"$ref": "#/components/pathItems/Pet"}
	}`
	obj := NewObject()
	require.NoError(t, json.Unmarshal([]byte(source), obj))

	paths := new(Paths)
	require.NoError(t, paths.DecodeObject(obj))

	assert.Equal(t, 2, paths.Len())

	var order []string
	for path := range paths.All() {
		order = append(order, path)
	}
	assert.Equal(t, []string{"/pets", "/pets/{petId}"}, order, "path entries keep source order")

	pets, ok := paths.Get("/pets")
	require.True(t, ok)
	require.NotNil(t, pets.Value)
	assert.Equal(t, "list", pets.Value.Get.Summary)

	pet, ok := paths.Get("/pets/{petId}")
	require.True(t, ok)
	assert.True(t, pet.IsRef())
	assert.Equal(t, "#/components/pathItems/Pet", pet.Ref)

	_, ok = paths.Get("/missing")
	assert.False(t, ok)

	routing, ok := paths.Extra.Get("x-routing")
	require.True(t, ok, "non-path keys are extension entries")
	assert.Equal(t, "round-robin", routing)
}

func TestPathsRoundTrip(t *testing.T) {
	source := `{
		"/b": {"get": {}},
		"/a": {"$ref": "#/x"},
		"x-note": "keep me"
	}`
	obj := NewObject()
	require.NoError(t, json.Unmarshal([]byte(source), obj))

	paths := new(Paths)
	require.NoError(t, paths.DecodeObject(obj))

	encoded := paths.EncodeObject()
	assert.Equal(t, []string{"/b", "/a", "x-note"}, encoded.Keys(),
		"dynamic entries in stored order, then extensions")

	out, err := json.Marshal(encoded)
	require.NoError(t, err)
	assert.JSONEq(t, source, string(out))
}

func TestPathsDecodeErrorPropagates(t *testing.T) {
	obj := NewObject()
	obj.Set("/bad", "not an object")

	err := new(Paths).DecodeObject(obj)
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrPayloadMismatch)
}

func TestPathsSetAndNil(t *testing.T) {
	var nilPaths *Paths
	assert.Equal(t, 0, nilPaths.Len())
	_, ok := nilPaths.Get("/x")
	assert.False(t, ok)
	for range nilPaths.All() {
		t.Fatal("nil paths must yield nothing")
	}

	paths := new(Paths)
	paths.Set("/a", Inline(&PathItem{Summary: "first"}))
	paths.Set("/b", Ref[PathItem]("#/b"))
	paths.Set("/a", Inline(&PathItem{Summary: "replaced"}))

	assert.Equal(t, 2, paths.Len())
	item, ok := paths.Get("/a")
	require.True(t, ok)
	assert.Equal(t, "replaced", item.Value.Summary)

	var order []string
	for path := range paths.All() {
		order = append(order, path)
	}
	assert.Equal(t, []string{"/a", "/b"}, order, "replacement keeps position")
}
