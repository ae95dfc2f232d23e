package definition_test

import (
	"fmt"

	"github.com/erraggy/oasdoc/definition"
	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/oaspath"
)

func Example() {
	doc := document.New()
	_ = definition.SetOpenAPI(doc, "3.0.0")
	_ = definition.SetInfo(doc, document.Obj("title", "T", "version", "1.0"))
	_ = definition.AddComponentsSchema(doc, "User", document.Obj(
		"type", "object",
		"properties", document.Obj("id", document.Obj("type", "integer")),
	))

	data, _ := doc.MarshalJSON()
	fmt.Println(string(data))
	// Output:
	// {"openapi":"3.0.0","info":{"title":"T","version":"1.0"},"components":{"schemas":{"User":{"type":"object","properties":{"id":{"type":"integer"}}}}}}
}

func ExampleAddServer() {
	doc := document.New()

	n, _ := definition.AddServer(doc, document.Obj("url", "https://a"))
	fmt.Println("appended to absent servers:", n)

	_ = definition.SetOther(doc, oaspath.Servers, document.Array{})
	n, _ = definition.AddServer(doc,
		document.Obj("url", "https://a"),
		document.Obj("url", "https://b"),
	)
	fmt.Println("appended to servers: []:", n)

	servers, _ := doc.Get(oaspath.Servers)
	data, _ := servers.(document.Array).MarshalJSON()
	fmt.Println(string(data))
	// Output:
	// appended to absent servers: 0
	// appended to servers: []: 2
	// [{"url":"https://a"},{"url":"https://b"}]
}

func ExampleBuilder() {
	data, err := definition.New(definition.WithInitSequences(true)).
		SetOpenAPI("3.0.0").
		SetInfo(document.Obj("title", "Pets", "version", "1.0")).
		AddTag(document.Obj("name", "pets")).
		AddPath("/pets", document.Obj("get", document.Obj("summary", "List pets"))).
		BuildYAML()
	if err != nil {
		fmt.Println(err)
		return
	}
	doc, _ := document.Parse(data)
	fmt.Println(doc.Root().Keys())
	// Output:
	// [servers security tags openapi info paths]
}

func ExampleLookupOperation() {
	op, _ := definition.LookupOperation(definition.GroupAdd, "components_schema")
	fmt.Println(op.QualifiedName(), op.Mode, op.Path)

	target, _ := op.Target("User")
	fmt.Println(target.Pointer())
	// Output:
	// add.components_schema keyed components.schemas
	// #/components/schemas/User
}
