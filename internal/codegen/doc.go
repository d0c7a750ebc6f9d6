// Package codegen turns a layout.Document into exportable source text.
//
// Four generators are provided, all pure and deterministic:
//
//	html := codegen.HTML(doc)           // container div with one div per item
//	css := codegen.CSS(doc)             // .container and .item-<id> rules
//	wp := codegen.WordPress(doc)        // HTML plus an inline <style> block
//	jsx := codegen.JSX(doc)             // React component with style objects
//
// Property names are stored in camel case. CSS output converts them with
// KebabCase and JSX output with CamelCase; the two are inverses on camel-case
// names. Empty, null, and absent values never appear in any output.
//
// VerifyJSX evaluates every generated style object with goja to confirm the
// JSX output is valid JavaScript that carries each value unchanged.
package codegen
