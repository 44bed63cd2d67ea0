// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/erp_backend/main.go -o cmd/docs
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
        "/": {"get": {"tags": ["root"], "summary": "Show the status of server.", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/schema": {"get": {"tags": ["root"], "summary": "List collection names", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SchemaResponse"}}}}},
        "/test": {"get": {"tags": ["root"], "summary": "Backend and store health", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}}}},
        "/items": {
            "get": {"tags": ["items"], "summary": "List items", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ItemResponse"}}}}},
            "post": {"tags": ["items"], "summary": "Create an item", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateItemRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}}, "400": {"description": "Invalid input or SKU already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/vendors": {
            "get": {"tags": ["vendors"], "summary": "List vendors", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["vendors"], "summary": "Create a vendor", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "vendor", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePartyRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}}}}
        },
        "/customers": {
            "get": {"tags": ["customers"], "summary": "List customers", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["customers"], "summary": "Create a customer", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "customer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePartyRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}}}}
        },
        "/purchases": {
            "get": {"tags": ["purchases"], "summary": "List purchases", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["purchases"], "summary": "Record a purchase", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "purchase", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}}, "400": {"description": "Invalid input or malformed id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/sales": {
            "get": {"tags": ["sales"], "summary": "List sales", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["sales"], "summary": "Record a sale", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "sale", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}}, "400": {"description": "Invalid input or malformed id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/payments": {
            "get": {"tags": ["payments"], "summary": "List payments", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["payments"], "summary": "Record a payment", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "payment", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}}}}
        },
        "/stock": {"get": {"tags": ["stock"], "summary": "Current stock report", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.StockLevelResponse"}}}}}},
        "/stock/movements": {"get": {"tags": ["stock"], "summary": "List stock movements", "produces": ["application/json"],
            "parameters": [
                {"type": "string", "name": "item_id", "in": "query"},
                {"type": "integer", "name": "limit", "in": "query"},
                {"type": "string", "name": "next_token", "in": "query"}
            ],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}},
        "/stock/export": {"get": {"tags": ["stock"], "summary": "Download the stock report", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}}
    },
    "definitions": {
        "dto.CreatedResponse": {"type": "object", "properties": {"id": {"type": "string"}}},
        "dto.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "dto.SchemaResponse": {"type": "object", "properties": {"collections": {"type": "array", "items": {"type": "string"}}}},
        "dto.HealthResponse": {"type": "object", "properties": {"backend": {"type": "string"}, "database": {"type": "string"}, "collections": {"type": "array", "items": {"type": "string"}}}},
        "dto.CreateItemRequest": {"type": "object", "required": ["name", "sku"], "properties": {
            "name": {"type": "string"}, "sku": {"type": "string"}, "category": {"type": "string"}, "unit": {"type": "string"},
            "tax_rate": {"type": "number"}, "cost_price": {"type": "number"}, "sale_price": {"type": "number"},
            "reorder_level": {"type": "integer"}, "opening_stock": {"type": "number"}, "barcode": {"type": "string"}, "is_active": {"type": "boolean"}}},
        "dto.ItemResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "sku": {"type": "string"}, "unit": {"type": "string"},
            "opening_stock": {"type": "number"}, "is_active": {"type": "boolean"}, "created_at": {"type": "string"}}},
        "dto.CreatePartyRequest": {"type": "object", "required": ["name"], "properties": {
            "name": {"type": "string"}, "phone": {"type": "string"}, "email": {"type": "string"}, "address": {"type": "string"},
            "gst_number": {"type": "string"}, "notes": {"type": "string"}, "is_active": {"type": "boolean"}}},
        "dto.StockLevelResponse": {"type": "object", "properties": {
            "item_id": {"type": "string"}, "name": {"type": "string"}, "sku": {"type": "string"}, "on_hand": {"type": "number"}, "unit": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hardware Shop ERP API",
	Description:      "Inventory and sales backend: catalog, parties, purchases, sales, payments and derived stock.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
