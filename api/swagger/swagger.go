package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Admin Hub API",
        "description": "Admin dashboard backend for the learning platform.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "SessionAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "tags": [
        {"name": "Authentication", "description": "Admin session gate"},
        {"name": "Dashboard", "description": "Landing page summary"},
        {"name": "Learners", "description": "Learner directory"},
        {"name": "Modules", "description": "Course module ordering"},
        {"name": "Certificates", "description": "Templates and issued certificates"},
        {"name": "Reports", "description": "Engagement and completion reports"},
        {"name": "Media", "description": "Media library"},
        {"name": "Activity", "description": "Admin activity trail"},
        {"name": "Exports", "description": "Asynchronous CSV and PDF exports"},
        {"name": "System", "description": "Demo data maintenance"}
    ],
    "paths": {
        "/admin/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in as the administrator",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {
                    "200": {"description": "Signed in", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign out",
                "responses": {"200": {"description": "Signed out", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/session": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Report whether the caller is signed in",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Admin dashboard summary",
                "security": [{"SessionAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Not signed in", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/users": {
            "get": {
                "tags": ["Learners"],
                "summary": "List learners",
                "security": [{"SessionAuth": []}],
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["all", "active", "inactive"]},
                    {"name": "band", "in": "query", "type": "string", "enum": ["all", "high", "medium", "low"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/users/{id}": {
            "get": {
                "tags": ["Learners"],
                "summary": "Learner details",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/modules": {
            "get": {
                "tags": ["Modules"],
                "summary": "List modules in order",
                "security": [{"SessionAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Modules"],
                "summary": "Add a module",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/modules/{id}": {
            "put": {
                "tags": ["Modules"],
                "summary": "Edit a module",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Modules"],
                "summary": "Delete a module",
                "security": [{"SessionAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "confirm", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Confirmation required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/modules/reorder": {
            "post": {
                "tags": ["Modules"],
                "summary": "Move a module to a new position",
                "security": [{"SessionAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/modules/drag/{step}": {
            "post": {
                "tags": ["Modules"],
                "summary": "Drive a drag gesture (start, over, end, cancel)",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "step", "in": "path", "required": true, "type": "string", "enum": ["start", "over", "end", "cancel"]}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/certificates": {
            "get": {
                "tags": ["Certificates"],
                "summary": "List issued certificates",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "q", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/certificates/{id}/download": {
            "post": {
                "tags": ["Certificates"],
                "summary": "Start a certificate download",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/certificates/templates": {
            "get": {
                "tags": ["Certificates"],
                "summary": "List certificate templates",
                "security": [{"SessionAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Certificates"],
                "summary": "Create a certificate template",
                "security": [{"SessionAuth": []}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/certificates/templates/{id}": {
            "put": {
                "tags": ["Certificates"],
                "summary": "Edit a certificate template",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Certificates"],
                "summary": "Delete a certificate template",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/reports": {
            "get": {
                "tags": ["Reports"],
                "summary": "Report overview for a time range",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "range", "in": "query", "type": "string", "enum": ["7days", "30days", "3months", "6months", "1year"]}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/media": {
            "get": {
                "tags": ["Media"],
                "summary": "List media files",
                "security": [{"SessionAuth": []}],
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "tab", "in": "query", "type": "string", "enum": ["all", "image", "video", "document"]},
                    {"name": "view", "in": "query", "type": "string", "enum": ["grid", "list"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/media/stats": {
            "get": {
                "tags": ["Media"],
                "summary": "Media library totals",
                "security": [{"SessionAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/media/uploads": {
            "post": {
                "tags": ["Media"],
                "summary": "Upload media files",
                "security": [{"SessionAuth": []}],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "415": {"description": "Unsupported type", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/media/{id}": {
            "delete": {
                "tags": ["Media"],
                "summary": "Delete a media file",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/media/{id}/copy-url": {
            "post": {
                "tags": ["Media"],
                "summary": "Copy a media file URL",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/activity": {
            "get": {
                "tags": ["Activity"],
                "summary": "Recent admin activity",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "limit", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/exports": {
            "post": {
                "tags": ["Exports"],
                "summary": "Queue an export",
                "security": [{"SessionAuth": []}],
                "responses": {"202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admin/exports/{id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export job status",
                "security": [{"SessionAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/exports/{token}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a finished export",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [{"name": "token", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "File"},
                    "403": {"description": "Expired or invalid token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/reset": {
            "post": {
                "tags": ["System"],
                "summary": "Restore demo data",
                "security": [{"SessionAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
