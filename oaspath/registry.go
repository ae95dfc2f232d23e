package oaspath

// Kind describes what a registry path conventionally holds.
type Kind int

const (
	// KindScalar is a string, number or boolean field (e.g. info.title).
	KindScalar Kind = iota
	// KindObject is a single object set as a whole (e.g. info.contact).
	KindObject
	// KindSequence is an array populated by appending (servers, tags, security).
	KindSequence
	// KindKeyed is a map populated one key at a time (paths, components.*).
	KindKeyed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindSequence:
		return "sequence"
	case KindKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}

// OpenAPI 3.x document layout.
// See https://spec.openapis.org/oas/v3.0.3.html#openapi-object
//
// Treat these as read-only. Reassigning one changes what every helper writes
// to, while [Entries] and [Lookup] keep the original table.
var (
	OpenAPI = MustParse("openapi")

	Info               = MustParse("info")
	InfoTitle          = MustParse("info.title")
	InfoDescription    = MustParse("info.description")
	InfoTermsOfService = MustParse("info.termsOfService")
	InfoVersion        = MustParse("info.version")
	InfoContact        = MustParse("info.contact")
	InfoContactName    = MustParse("info.contact.name")
	InfoContactURL     = MustParse("info.contact.url")
	InfoContactEmail   = MustParse("info.contact.email")
	InfoLicense        = MustParse("info.license")
	InfoLicenseName    = MustParse("info.license.name")
	InfoLicenseURL     = MustParse("info.license.url")

	Servers = MustParse("servers")
	Paths   = MustParse("paths")

	Components                = MustParse("components")
	ComponentsSchemas         = MustParse("components.schemas")
	ComponentsParameters      = MustParse("components.parameters")
	ComponentsSecuritySchemes = MustParse("components.securitySchemes")
	ComponentsRequestBodies   = MustParse("components.requestBodies")
	ComponentsResponses       = MustParse("components.responses")
	ComponentsHeaders         = MustParse("components.headers")
	ComponentsExamples        = MustParse("components.examples")
	ComponentsLinks           = MustParse("components.links")
	ComponentsCallbacks       = MustParse("components.callbacks")

	Security = MustParse("security")
	Tags     = MustParse("tags")

	ExternalDocs            = MustParse("externalDocs")
	ExternalDocsDescription = MustParse("externalDocs.description")
	ExternalDocsURL         = MustParse("externalDocs.url")
)

// Entry is one row of the registry.
type Entry struct {
	// Name is the semantic name, equal to the dotted path.
	Name string
	Path Path
	Kind Kind
}

var entries = []Entry{
	{Path: OpenAPI, Kind: KindScalar},
	{Path: Info, Kind: KindObject},
	{Path: InfoTitle, Kind: KindScalar},
	{Path: InfoDescription, Kind: KindScalar},
	{Path: InfoTermsOfService, Kind: KindScalar},
	{Path: InfoVersion, Kind: KindScalar},
	{Path: InfoContact, Kind: KindObject},
	{Path: InfoContactName, Kind: KindScalar},
	{Path: InfoContactURL, Kind: KindScalar},
	{Path: InfoContactEmail, Kind: KindScalar},
	{Path: InfoLicense, Kind: KindObject},
	{Path: InfoLicenseName, Kind: KindScalar},
	{Path: InfoLicenseURL, Kind: KindScalar},
	{Path: Servers, Kind: KindSequence},
	{Path: Paths, Kind: KindKeyed},
	{Path: Components, Kind: KindObject},
	{Path: ComponentsSchemas, Kind: KindKeyed},
	{Path: ComponentsParameters, Kind: KindKeyed},
	{Path: ComponentsSecuritySchemes, Kind: KindKeyed},
	{Path: ComponentsRequestBodies, Kind: KindKeyed},
	{Path: ComponentsResponses, Kind: KindKeyed},
	{Path: ComponentsHeaders, Kind: KindKeyed},
	{Path: ComponentsExamples, Kind: KindKeyed},
	{Path: ComponentsLinks, Kind: KindKeyed},
	{Path: ComponentsCallbacks, Kind: KindKeyed},
	{Path: Security, Kind: KindSequence},
	{Path: Tags, Kind: KindSequence},
	{Path: ExternalDocs, Kind: KindObject},
	{Path: ExternalDocsDescription, Kind: KindScalar},
	{Path: ExternalDocsURL, Kind: KindScalar},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(entries))
	for i := range entries {
		entries[i].Name = entries[i].Path.String()
		m[entries[i].Name] = i
	}
	return m
}()

// Entries returns a copy of the registry in document order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds a registry entry by its semantic name ("info.contact.email").
func Lookup(name string) (Entry, bool) {
	i, ok := byName[name]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// Sequences returns the entries of kind KindSequence.
func Sequences() []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Kind == KindSequence {
			out = append(out, e)
		}
	}
	return out
}
