package tables

// The generated file is excluded under the gentables tag so that the generator, which
// imports this package, still builds when the file is missing or out of date.
//go:generate go run -tags gentables ../cmd/gentables -o tables_gen.go -pkg tables
