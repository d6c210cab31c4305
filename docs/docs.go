// Package docs holds the OpenAPI document served by the Swagger UI endpoint.
// Code generated by swag init; edits survive regeneration only in the
// annotations on the handlers.
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
        "/articles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "List articles (paginated)",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page (max 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Free-text search over title, content and excerpt", "name": "q", "in": "query"},
                    {"type": "string", "description": "Pass the literal value true to list published articles only", "name": "published", "in": "query"},
                    {"type": "string", "description": "Comma-separated tag list; articles matching any tag are returned", "name": "tags", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Paginated article list"},
                    "400": {"description": "Invalid pagination parameters"},
                    "500": {"description": "Server error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Create article",
                "parameters": [
                    {"description": "Article payload", "name": "article", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created article"},
                    "400": {"description": "Validation failure with field-level details"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/articles/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Quick search over published articles",
                "parameters": [
                    {"type": "string", "description": "Search term (minimum 2 characters after trimming)", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Matches and stats, or an empty result with a message for short queries"},
                    "429": {"description": "Rate limit exceeded"},
                    "500": {"description": "Server error"}
                }
            }
        },
        "/articles/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Get article by ID",
                "parameters": [
                    {"type": "string", "description": "Article ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Article"},
                    "400": {"description": "Invalid article ID"},
                    "404": {"description": "Article not found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Update article",
                "parameters": [
                    {"type": "string", "description": "Article ID", "name": "id", "in": "path", "required": true},
                    {"description": "Partial article payload", "name": "article", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Updated article"},
                    "400": {"description": "Validation failure with field-level details"},
                    "404": {"description": "Article not found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Delete article",
                "parameters": [
                    {"type": "string", "description": "Article ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deletion confirmation"},
                    "400": {"description": "Invalid article ID"},
                    "404": {"description": "Article not found"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Healthy"},
                    "503": {"description": "Unhealthy"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Article API",
	Description:      "REST API for managing and searching articles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
