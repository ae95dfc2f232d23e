// Package codegen renders the OpenAPI path registry as a Go source file, so
// projects that assemble definitions by hand can refer to sections through
// compile-checked constants.
//
// The output is run through golang.org/x/tools/imports, which both formats
// it and adds the imports the generated helpers need.
package codegen
