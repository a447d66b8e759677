// Package servers binds the HTTP interface described in api/openapi.yaml to
// echo: request and response models, the ServerInterface that the HTTP
// adapter implements, and the wrapper that decodes parameters.
//
// types.go and server.go follow the layout oapi-codegen emits for the
// configurations next to them. After changing api/openapi.yaml, regenerate
// with `go generate ./internal/generated/servers`.
package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config types.cfg.yaml ../../../api/openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config server.cfg.yaml ../../../api/openapi.yaml
