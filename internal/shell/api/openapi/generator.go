// Package openapi provides reflective OpenAPI 3.0 specification generation
// for the JSON:API resources and custom actions.
package openapi

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Generator
// =============================================================================

// Generator produces OpenAPI 3.0 specifications by reflecting on registered resources.
type Generator struct {
	title       string
	version     string
	description string
	servers     []string
	resources   []ResourceInfo
	actions     []ActionInfo
	mu          sync.RWMutex
	cachedSpec  *openapi3.T
}

// ResourceInfo holds information about a registered resource for OpenAPI generation.
type ResourceInfo struct {
	Name           string      // Resource type name (e.g., "slogans")
	Model          interface{} // The model struct for schema extraction
	Filters        []string    // filter[...] query parameters of the list operation
	SupportsFind   bool        // GET /{type} and GET /{type}/{id}
	SupportsCreate bool        // POST /{type}
	SupportsUpdate bool        // PATCH /{type}/{id}
}

// ActionInfo describes a custom endpoint that is not JSON:API CRUD.
type ActionInfo struct {
	Method       string      // HTTP method
	Path         string      // Full path, with {param} placeholders
	OperationID  string
	Summary      string
	Tag          string
	Query        []string    // Optional query parameters
	RequestModel interface{} // JSON request body, nil for none
	// ResponseModel is encoded as JSON. When nil, ResponseTypes lists the
	// binary content types returned instead.
	ResponseModel interface{}
	ResponseTypes []string
}

// Option configures the generator.
type Option func(*Generator)

// WithTitle sets the API title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithVersion sets the API version.
func WithVersion(version string) Option {
	return func(g *Generator) {
		g.version = version
	}
}

// WithDescription sets the API description.
func WithDescription(description string) Option {
	return func(g *Generator) {
		g.description = description
	}
}

// WithServer adds a server URL. Without one the document lists
// http://localhost:8080.
func WithServer(url string) Option {
	return func(g *Generator) {
		g.servers = append(g.servers, url)
	}
}

// NewGenerator creates a new OpenAPI generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		title:       "SloganForge API",
		version:     "1.0.0",
		description: "Slogan generation API",
		resources:   make([]ResourceInfo, 0),
	}

	for _, opt := range opts {
		opt(g)
	}
	if len(g.servers) == 0 {
		g.servers = []string{"http://localhost:8080"}
	}

	return g
}

// RegisterResource adds a resource to the generator for spec generation.
func (g *Generator) RegisterResource(info ResourceInfo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resources = append(g.resources, info)
	g.cachedSpec = nil // Invalidate cache
}

// RegisterAction adds a custom action to the generated document.
func (g *Generator) RegisterAction(info ActionInfo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.actions = append(g.actions, info)
	g.cachedSpec = nil
}

// Generate produces the complete OpenAPI 3.0 specification.
func (g *Generator) Generate() *openapi3.T {
	g.mu.RLock()
	if g.cachedSpec != nil {
		spec := g.cachedSpec
		g.mu.RUnlock()
		return spec
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	// Double-check after acquiring write lock
	if g.cachedSpec != nil {
		return g.cachedSpec
	}

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       g.title,
			Version:     g.version,
			Description: g.description,
		},
		Servers: make(openapi3.Servers, 0, len(g.servers)),
		Paths:   &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
	}

	// Add servers
	for _, url := range g.servers {
		spec.Servers = append(spec.Servers, &openapi3.Server{URL: url})
	}

	// Add common schemas
	g.addCommonSchemas(spec)

	// Process each registered resource
	for _, res := range g.resources {
		g.addResourceToSpec(spec, res)
	}
	for _, action := range g.actions {
		g.addActionToSpec(spec, action)
	}

	g.cachedSpec = spec
	return spec
}

// Handler returns an HTTP handler that serves the OpenAPI specification.
func (g *Generator) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec := g.Generate()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if err := json.NewEncoder(w).Encode(spec); err != nil {
			http.Error(w, "Failed to encode OpenAPI spec", http.StatusInternalServerError)
		}
	}
}

// YAMLHandler returns an HTTP handler that serves the specification as YAML.
func (g *Generator) YAMLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := g.YAML()
		if err != nil {
			http.Error(w, "Failed to encode OpenAPI spec", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/yaml")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Write(out)
	}
}

// YAML renders the specification in block-style YAML. The document goes
// through its JSON form so that the kin-openapi marshalers decide the field
// names in both encodings.
func (g *Generator) YAML() ([]byte, error) {
	raw, err := json.Marshal(g.Generate())
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	blockStyle(&doc)

	return yaml.Marshal(&doc)
}

// blockStyle clears the flow and quoting styles the JSON source left on every
// node. The encoder still quotes strings that would otherwise change type.
func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// =============================================================================
// Schema Generation
// =============================================================================

const jsonAPIMediaType = "application/vnd.api+json"

func typed(name string) *openapi3.Schema {
	return &openapi3.Schema{Type: &openapi3.Types{name}}
}

func valueRef(s *openapi3.Schema) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: s}
}

func componentRef(name string) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Ref: "#/components/schemas/" + name}
}

func object(props openapi3.Schemas, required ...string) *openapi3.SchemaRef {
	s := typed("object")
	s.Properties = props
	s.Required = required
	return valueRef(s)
}

func arrayOf(items *openapi3.SchemaRef) *openapi3.SchemaRef {
	s := typed("array")
	s.Items = items
	return valueRef(s)
}

func formatted(name, format string) *openapi3.SchemaRef {
	s := typed(name)
	s.Format = format
	return valueRef(s)
}

// linkSchemas returns one uri property per name.
func linkSchemas(names ...string) openapi3.Schemas {
	props := make(openapi3.Schemas, len(names))
	for _, n := range names {
		props[n] = formatted("string", "uri")
	}
	return props
}

// addCommonSchemas adds the links, meta and error objects every resource
// document refers to.
func (g *Generator) addCommonSchemas(spec *openapi3.T) {
	schemas := spec.Components.Schemas
	schemas["Links"] = object(linkSchemas("self", "related"))
	schemas["PaginationLinks"] = object(linkSchemas("self", "first", "last", "prev", "next"))
	schemas["PaginationMeta"] = object(openapi3.Schemas{
		"total":  valueRef(typed("integer")),
		"limit":  valueRef(typed("integer")),
		"offset": valueRef(typed("integer")),
	})
	schemas["Error"] = object(openapi3.Schemas{
		"errors": arrayOf(object(openapi3.Schemas{
			"status": valueRef(typed("string")),
			"title":  valueRef(typed("string")),
			"detail": valueRef(typed("string")),
		})),
	})
}

// addResourceToSpec adds the schemas of a resource and its collection and
// item paths.
func (g *Generator) addResourceToSpec(spec *openapi3.T, res ResourceInfo) {
	basePath := "/api/v1/" + res.Name
	schemaName := capitalize(singularize(res.Name))
	schemas := spec.Components.Schemas

	typeSchema := typed("string")
	typeSchema.Enum = []interface{}{res.Name}

	schemas[schemaName+"Attributes"] = g.extractSchema(res.Model)
	schemas[schemaName] = object(openapi3.Schemas{
		"type":       valueRef(typeSchema),
		"id":         valueRef(typed("string")),
		"attributes": componentRef(schemaName + "Attributes"),
	}, "type", "id")
	schemas[schemaName+"Response"] = object(openapi3.Schemas{
		"data":  componentRef(schemaName),
		"links": componentRef("Links"),
	})
	schemas[schemaName+"ListResponse"] = object(openapi3.Schemas{
		"data":  arrayOf(componentRef(schemaName)),
		"links": componentRef("PaginationLinks"),
		"meta":  componentRef("PaginationMeta"),
	})

	collection := &openapi3.PathItem{}
	if res.SupportsFind {
		collection.Get = g.listOperation(res, schemaName)
	}
	if res.SupportsCreate {
		collection.Post = g.writeOperation("create", res, schemaName, http.StatusCreated, http.StatusBadRequest)
	}
	spec.Paths.Set(basePath, collection)

	item := &openapi3.PathItem{
		Parameters: openapi3.Parameters{pathParameter("id")},
	}
	if res.SupportsFind {
		item.Get = &openapi3.Operation{
			OperationID: "get" + schemaName,
			Summary:     "Get a " + singularize(res.Name),
			Tags:        []string{capitalize(res.Name)},
			Responses:   jsonAPIResponses(http.StatusOK, schemaName+"Response", http.StatusNotFound),
		}
	}
	if res.SupportsUpdate {
		item.Patch = g.writeOperation("update", res, schemaName, http.StatusOK, http.StatusBadRequest, http.StatusNotFound)
	}
	spec.Paths.Set(basePath+"/{id}", item)
}

// extractSchema builds an object schema from the exported fields of a struct,
// named by their json tags.
func (g *Generator) extractSchema(model interface{}) *openapi3.SchemaRef {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	props := make(openapi3.Schemas)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name := field.Name
		if n, _, _ := strings.Cut(tag, ","); n != "" {
			name = n
		}
		if s := g.goTypeToSchema(field.Type); s != nil {
			props[name] = s
		}
	}
	return object(props)
}

var timeType = reflect.TypeOf(time.Time{})

// goTypeToSchema maps a Go type to its OpenAPI schema.
func (g *Generator) goTypeToSchema(t reflect.Type) *openapi3.SchemaRef {
	switch t.Kind() {
	case reflect.String:
		return valueRef(typed("string"))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return formatted("integer", "int32")
	case reflect.Int64:
		return formatted("integer", "int64")
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return valueRef(typed("integer"))
	case reflect.Float32:
		return formatted("number", "float")
	case reflect.Float64:
		return formatted("number", "double")
	case reflect.Bool:
		return valueRef(typed("boolean"))
	case reflect.Slice, reflect.Array:
		return arrayOf(g.goTypeToSchema(t.Elem()))
	case reflect.Map:
		s := typed("object")
		s.AdditionalProperties = openapi3.AdditionalProperties{Schema: g.goTypeToSchema(t.Elem())}
		return valueRef(s)
	case reflect.Ptr:
		ref := g.goTypeToSchema(t.Elem())
		if ref != nil && ref.Value != nil {
			ref.Value.Nullable = true
		}
		return ref
	case reflect.Struct:
		if t == timeType {
			return formatted("string", "date-time")
		}
		return g.extractSchema(reflect.New(t).Interface())
	default:
		return valueRef(typed("object"))
	}
}

// =============================================================================
// Operation Generation
// =============================================================================

func (g *Generator) listOperation(res ResourceInfo, schemaName string) *openapi3.Operation {
	size := typed("integer")
	size.Default = 20
	number := typed("integer")
	number.Default = 1

	op := &openapi3.Operation{
		OperationID: "list" + capitalize(res.Name),
		Summary:     "List " + res.Name,
		Tags:        []string{capitalize(res.Name)},
		Parameters: openapi3.Parameters{
			{Value: &openapi3.Parameter{Name: "page[size]", In: "query", Schema: valueRef(size)}},
			{Value: &openapi3.Parameter{Name: "page[number]", In: "query", Schema: valueRef(number)}},
		},
		Responses: jsonAPIResponses(http.StatusOK, schemaName+"ListResponse", http.StatusBadRequest),
	}
	for _, f := range res.Filters {
		op.Parameters = append(op.Parameters, queryParameter("filter["+f+"]"))
	}
	return op
}

// writeOperation describes a create or update taking a resource document.
func (g *Generator) writeOperation(verb string, res ResourceInfo, schemaName string, status int, errorStatuses ...int) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: verb + schemaName,
		Summary:     capitalize(verb) + " a " + singularize(res.Name),
		Tags:        []string{capitalize(res.Name)},
		RequestBody: &openapi3.RequestBodyRef{
			Value: &openapi3.RequestBody{
				Required: true,
				Content: openapi3.Content{
					jsonAPIMediaType: &openapi3.MediaType{Schema: componentRef(schemaName + "Response")},
				},
			},
		},
		Responses: jsonAPIResponses(status, schemaName+"Response", errorStatuses...),
	}
}

// =============================================================================
// Custom Actions
// =============================================================================

// addActionToSpec adds the path and schemas of a custom action.
func (g *Generator) addActionToSpec(spec *openapi3.T, action ActionInfo) {
	op := &openapi3.Operation{
		OperationID: action.OperationID,
		Summary:     action.Summary,
		Responses:   &openapi3.Responses{},
	}
	if action.Tag != "" {
		op.Tags = []string{action.Tag}
	}

	for _, name := range pathParameters(action.Path) {
		op.Parameters = append(op.Parameters, pathParameter(name))
	}
	for _, name := range action.Query {
		op.Parameters = append(op.Parameters, queryParameter(name))
	}

	if action.RequestModel != nil {
		name := capitalize(action.OperationID) + "Request"
		spec.Components.Schemas[name] = g.extractSchema(action.RequestModel)
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: &openapi3.RequestBody{
				Required: true,
				Content:  openapi3.Content{"application/json": &openapi3.MediaType{Schema: componentRef(name)}},
			},
		}
	}

	content := openapi3.Content{}
	if action.ResponseModel != nil {
		name := capitalize(action.OperationID) + "Response"
		spec.Components.Schemas[name] = g.extractSchema(action.ResponseModel)
		content["application/json"] = &openapi3.MediaType{Schema: componentRef(name)}
	}
	for _, ct := range action.ResponseTypes {
		content[ct] = &openapi3.MediaType{Schema: formatted("string", "binary")}
	}
	op.Responses.Set(itoa(http.StatusOK), &openapi3.ResponseRef{
		Value: &openapi3.Response{Description: describe(http.StatusOK), Content: content},
	})
	op.Responses.Set(itoa(http.StatusBadRequest), errorResponse(http.StatusBadRequest))
	op.Responses.Set(itoa(http.StatusTooManyRequests), errorResponse(http.StatusTooManyRequests))

	item := spec.Paths.Value(action.Path)
	if item == nil {
		item = &openapi3.PathItem{}
		spec.Paths.Set(action.Path, item)
	}
	item.SetOperation(action.Method, op)
}

// =============================================================================
// Helpers
// =============================================================================

// jsonAPIResponses builds the responses of a JSON:API operation.
func jsonAPIResponses(status int, schemaName string, errorStatuses ...int) *openapi3.Responses {
	responses := &openapi3.Responses{}
	responses.Set(itoa(status), &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: describe(status),
			Content:     openapi3.Content{jsonAPIMediaType: &openapi3.MediaType{Schema: componentRef(schemaName)}},
		},
	})
	for _, s := range errorStatuses {
		responses.Set(itoa(s), errorResponse(s))
	}
	return responses
}

func errorResponse(status int) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: describe(status),
			Content:     openapi3.Content{jsonAPIMediaType: &openapi3.MediaType{Schema: componentRef("Error")}},
		},
	}
}

func queryParameter(name string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: &openapi3.Parameter{Name: name, In: "query", Schema: valueRef(typed("string"))},
	}
}

func pathParameter(name string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: &openapi3.Parameter{Name: name, In: "path", Required: true, Schema: valueRef(typed("string"))},
	}
}

// pathParameters returns the {name} placeholders of path in order.
func pathParameters(path string) []string {
	var names []string
	for _, seg := range strings.Split(path, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			names = append(names, seg[1:len(seg)-1])
		}
	}
	return names
}

func describe(status int) *string {
	text := http.StatusText(status)
	return &text
}

func itoa(status int) string {
	return strconv.Itoa(status)
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// singularize strips the plural suffix of a resource name: batches, slogans.
func singularize(s string) string {
	switch {
	case strings.HasSuffix(s, "ies"):
		return strings.TrimSuffix(s, "ies") + "y"
	case strings.HasSuffix(s, "ches"), strings.HasSuffix(s, "shes"), strings.HasSuffix(s, "xes"):
		return strings.TrimSuffix(s, "es")
	default:
		return strings.TrimSuffix(s, "s")
	}
}
