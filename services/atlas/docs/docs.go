// Package docs registers the Swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation errors"}, "409": {"description": "Duplicate email or username"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with email or username",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}, "429": {"description": "Rate limit exceeded"}}
            }
        },
        "/auth/validate/{field}": {
            "post": {
                "tags": ["auth"],
                "summary": "Validate one registration field",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/profile": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Get profile", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Save profile", "responses": {"200": {"description": "OK"}, "202": {"description": "Save already in progress"}}}
        },
        "/posts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Community feed", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Publish a post", "responses": {"201": {"description": "Created"}}}
        },
        "/courses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["courses"], "summary": "Browse published courses", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["courses"], "summary": "Create a course", "responses": {"201": {"description": "Created"}, "403": {"description": "Instructor not verified"}}}
        },
        "/classes": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["classes"], "summary": "Browse published classes", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["classes"], "summary": "Create a class", "responses": {"201": {"description": "Created"}}}
        },
        "/premium/plans": {
            "get": {"tags": ["premium"], "summary": "List plans", "responses": {"200": {"description": "OK"}}}
        },
        "/premium/subscribe": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["premium"], "summary": "Subscribe to a plan", "responses": {"200": {"description": "OK"}}}
        },
        "/donations/quote": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["donations"], "summary": "Quote a donation", "responses": {"200": {"description": "OK"}}}
        },
        "/instructor/verification": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["instructor"], "summary": "Verification status", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["instructor"], "summary": "Submit verification", "responses": {"201": {"description": "Created"}}}
        },
        "/preferences": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["preferences"], "summary": "Get preferences", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["preferences"], "summary": "Update preferences", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Atlas API",
	Description:      "Learning platform: accounts, courses, classes, community feed, premium plans and donations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
