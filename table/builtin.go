package table

//go:generate go run ../cmd/fxtable generate --manifest ../tables.yaml --out tables_gen.go

// Built-in tables, see tables.yaml for their parameters.

// Sin returns the sine table over [0, 2π).
func Sin() *Table { return sinTable }

// Cos returns the cosine table over [0, 2π).
func Cos() *Table { return cosTable }

// Tan returns the tangent table over [-π/2, π/2), saturated at ±1e6.
func Tan() *Table { return tanTable }

// Asin returns the arcsine table over [-1, 1).
func Asin() *Table { return asinTable }

// Acos returns the arccosine table over [-1, 1).
func Acos() *Table { return acosTable }
