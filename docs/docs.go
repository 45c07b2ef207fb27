// Package docs holds the OpenAPI description served at /swagger.
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
        "/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "description": "email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "redirect to /dashboard or back to /login"}}
            }
        },
        "/cadastro": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [
                    {"type": "string", "description": "display name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "monthly income", "name": "income", "in": "formData"}
                ],
                "responses": {"303": {"description": "redirect to /login"}}
            }
        },
        "/logout": {
            "get": {
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"302": {"description": "redirect to /login"}}
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "302": {"description": "redirect to /login without a session"},
                    "503": {"description": "database unavailable", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/transacoes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Transactions",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/api/transacao": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Add transaction",
                "parameters": [{"description": "transaction", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.TransactionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/categoria": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Add category",
                "parameters": [{"description": "category", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CategoryRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/api/meta": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Add goal",
                "parameters": [{"description": "goal", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.GoalRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/api/material": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["materials"],
                "summary": "Add material",
                "parameters": [{"description": "material", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.MaterialRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/api/compartilhada": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shared"],
                "summary": "Add shared account",
                "parameters": [{"description": "shared account", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SharedAccountRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/relatorios": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Monthly report",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}}
            }
        },
        "/relatorios/exportar": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "text/csv"],
                "tags": ["reports"],
                "summary": "Export transactions",
                "parameters": [{"type": "string", "description": "xlsx (default) or csv", "name": "formato", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}, "503": {"description": "database down"}}
            }
        }
    },
    "definitions": {
        "api.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "api.TransactionRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "Mercado"},
                "amount": {"type": "string", "example": "150.75"},
                "type": {"type": "string", "enum": ["income", "expense"], "example": "expense"},
                "date": {"type": "string", "example": "2024-05-10"},
                "category_id": {"type": "string", "example": "5"}
            }
        },
        "api.CategoryRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Pets"},
                "type": {"type": "string", "enum": ["income", "expense"], "example": "expense"}
            }
        },
        "api.GoalRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Viagem"},
                "target_amount": {"type": "string", "example": "5000"},
                "current_amount": {"type": "string", "example": "1200"},
                "start_date": {"type": "string", "example": "2024-01-01"},
                "end_date": {"type": "string", "example": "2024-12-31"},
                "category_id": {"type": "string"}
            }
        },
        "api.MaterialRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Farinha"},
                "unit": {"type": "string", "example": "kg"},
                "quantity": {"type": "string", "example": "2.5"},
                "unit_cost": {"type": "string", "example": "4.90"},
                "supplier": {"type": "string", "example": "Moinho"}
            }
        },
        "api.SharedAccountRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Casa"},
                "description": {"type": "string", "example": "Contas da casa"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AuraCash API",
	Description:      "Personal finance: accounts, transactions, categories, goals, materials and shared accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
