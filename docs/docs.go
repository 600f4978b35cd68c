// Package docs is generated by swaggo/swag from the handler annotations.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/categoria": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Lista categorías paginadas",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Offset", "name": "desde", "in": "query"},
                    {"type": "integer", "default": 5, "description": "Tamaño de página", "name": "limite", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoriaListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "post": {
                "security": [{"Token": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Crea una categoría",
                "parameters": [
                    {"description": "Categoría", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CategoriaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoriaEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/categoria/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Obtiene una categoría",
                "parameters": [
                    {"type": "string", "description": "ID de la categoría", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoriaEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "put": {
                "security": [{"Token": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Actualiza la descripción de una categoría",
                "parameters": [
                    {"type": "string", "description": "ID de la categoría", "name": "id", "in": "path", "required": true},
                    {"description": "Cambios", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CategoriaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoriaEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "delete": {
                "security": [{"Token": []}],
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Borra una categoría (requiere ADMIN_ROLE)",
                "parameters": [
                    {"type": "string", "description": "ID de la categoría", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoriaEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login de usuario",
                "parameters": [
                    {"description": "Credenciales", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/producto": {
            "get": {
                "security": [{"Token": []}],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Lista productos disponibles",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Offset", "name": "desde", "in": "query"},
                    {"type": "integer", "default": 5, "description": "Tamaño de página", "name": "limite", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductoListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "post": {
                "security": [{"Token": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Crea un producto",
                "parameters": [
                    {"description": "Producto", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProductoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductoEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/producto/buscar/{termino}": {
            "get": {
                "security": [{"Token": []}],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Busca productos por nombre",
                "parameters": [
                    {"type": "string", "description": "Texto a buscar", "name": "termino", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductoBusquedaResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/producto/{id}": {
            "get": {
                "security": [{"Token": []}],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Obtiene un producto con categoría y usuario",
                "parameters": [
                    {"type": "string", "description": "ID del producto", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductoDetalleEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "put": {
                "security": [{"Token": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Actualiza nombre, precio, descripción o categoría",
                "parameters": [
                    {"type": "string", "description": "ID del producto", "name": "id", "in": "path", "required": true},
                    {"description": "Cambios", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProductoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductoEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "delete": {
                "security": [{"Token": []}],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Marca un producto como no disponible",
                "parameters": [
                    {"type": "string", "description": "ID del producto", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductoEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/usuario": {
            "get": {
                "security": [{"Token": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Lista usuarios activos",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Offset", "name": "desde", "in": "query"},
                    {"type": "integer", "default": 5, "description": "Tamaño de página", "name": "limite", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UsuarioListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "post": {
                "security": [{"Token": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Crea un usuario (requiere ADMIN_ROLE)",
                "parameters": [
                    {"description": "Usuario", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CrearUsuarioRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UsuarioEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/usuario/{id}": {
            "put": {
                "security": [{"Token": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Actualiza un usuario (requiere ADMIN_ROLE)",
                "parameters": [
                    {"type": "string", "description": "ID del usuario", "name": "id", "in": "path", "required": true},
                    {"description": "Cambios", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ActualizarUsuarioRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UsuarioEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "delete": {
                "security": [{"Token": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Desactiva un usuario (estado=false, requiere ADMIN_ROLE)",
                "parameters": [
                    {"type": "string", "description": "ID del usuario", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UsuarioEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        }
    },
    "definitions": {
        "apierror.Response": {
            "type": "object",
            "properties": {"ok": {"type": "boolean"}, "err": {}}
        },
        "dto.CategoriaRequest": {
            "type": "object",
            "properties": {"descripcion": {"type": "string"}}
        },
        "dto.CategoriaResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "descripcion": {"type": "string"}, "usuario": {"type": "string"}}
        },
        "dto.CategoriaEnvelope": {
            "type": "object",
            "properties": {"ok": {"type": "boolean"}, "categoria": {"$ref": "#/definitions/dto.CategoriaResponse"}}
        },
        "dto.UsuarioResumen": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "nombre": {"type": "string"}, "email": {"type": "string"}}
        },
        "dto.CategoriaConUsuario": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "descripcion": {"type": "string"}, "usuario": {"$ref": "#/definitions/dto.UsuarioResumen"}}
        },
        "dto.CategoriaListResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "total": {"type": "integer"},
                "categorias": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoriaConUsuario"}}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.UsuarioResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "nombre": {"type": "string"}, "email": {"type": "string"},
                "img": {"type": "string"}, "role": {"type": "string"}, "estado": {"type": "boolean"}, "google": {"type": "boolean"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {"ok": {"type": "boolean"}, "usuario": {"$ref": "#/definitions/dto.UsuarioResponse"}, "token": {"type": "string"}}
        },
        "dto.CategoriaResumen": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "descripcion": {"type": "string"}, "usuario": {"type": "string"}}
        },
        "dto.ProductoDetalle": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "nombre": {"type": "string"}, "precioUni": {"type": "number"},
                "descripcion": {"type": "string"}, "disponible": {"type": "boolean"},
                "categoria": {"$ref": "#/definitions/dto.CategoriaResumen"},
                "usuario": {"$ref": "#/definitions/dto.UsuarioResumen"}
            }
        },
        "dto.ProductoDetalleEnvelope": {
            "type": "object",
            "properties": {"ok": {"type": "boolean"}, "producto": {"$ref": "#/definitions/dto.ProductoDetalle"}}
        },
        "dto.ProductoListResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "total": {"type": "integer"},
                "productos": {"type": "array", "items": {"$ref": "#/definitions/dto.ProductoDetalle"}}
            }
        },
        "dto.ProductoRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"}, "precioUni": {"type": "number"},
                "descripcion": {"type": "string"}, "categoria": {"type": "string"}
            }
        },
        "dto.ProductoResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "nombre": {"type": "string"}, "precioUni": {"type": "number"},
                "descripcion": {"type": "string"}, "disponible": {"type": "boolean"},
                "categoria": {"type": "string"}, "usuario": {"type": "string"}
            }
        },
        "dto.ProductoEnvelope": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"}, "message": {"type": "string"},
                "producto": {"$ref": "#/definitions/dto.ProductoResponse"}
            }
        },
        "dto.CrearUsuarioRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"},
                "img": {"type": "string"}, "role": {"type": "string"}
            }
        },
        "dto.ActualizarUsuarioRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"}, "email": {"type": "string"}, "img": {"type": "string"},
                "role": {"type": "string"}, "estado": {"type": "boolean"}
            }
        },
        "dto.UsuarioEnvelope": {
            "type": "object",
            "properties": {"ok": {"type": "boolean"}, "usuario": {"$ref": "#/definitions/dto.UsuarioResponse"}}
        },
        "dto.UsuarioListResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "cuantos": {"type": "integer"},
                "usuarios": {"type": "array", "items": {"$ref": "#/definitions/dto.UsuarioResponse"}}
            }
        },
        "dto.ProductoBusqueda": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "nombre": {"type": "string"}, "precioUni": {"type": "number"},
                "descripcion": {"type": "string"}, "disponible": {"type": "boolean"},
                "categoria": {"type": "object", "properties": {"id": {"type": "string"}}},
                "usuario": {"type": "string"}
            }
        },
        "dto.ProductoBusquedaResponse": {
            "type": "object",
            "properties": {"ok": {"type": "boolean"}, "productos": {"type": "array", "items": {"$ref": "#/definitions/dto.ProductoBusqueda"}}}
        }
    },
    "securityDefinitions": {
        "Token": {"type": "apiKey", "name": "token", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Café API",
	Description:      "Catálogo de categorías y productos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
