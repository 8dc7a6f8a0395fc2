package row

//go:generate go run ../cmd/rowgen -config ../rowgen.toml -out row_gen.go
