// Package docs registers the portal's OpenAPI description with swag so that
// /swagger/* can serve it. The route annotations live on the handlers in
// internal/api/handler; keep this document in step with them.
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
        "/": {"get": {"tags": ["auth"], "summary": "Current session and navigation", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/login": {"post": {"tags": ["auth"], "summary": "Login", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"303": {"description": "See Other"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}},
        "/register": {"post": {"tags": ["auth"], "summary": "Register a new account", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"303": {"description": "See Other"}, "400": {"description": "Bad Request"}}}},
        "/logout": {"post": {"tags": ["auth"], "summary": "Logout", "responses": {"303": {"description": "See Other"}}}},
        "/me": {"get": {"tags": ["auth"], "summary": "Current identity", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "303": {"description": "See Other"}}}},
        "/health": {"get": {"tags": ["health"], "summary": "Liveness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/health/ready": {"get": {"tags": ["health"], "summary": "Readiness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/student/dashboard": {"get": {"tags": ["student"], "summary": "Student dashboard", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}},
        "/student/profile": {
            "get": {"tags": ["student"], "summary": "My profile", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["student"], "summary": "Update my profile", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/student/profile/resume": {"post": {"tags": ["student"], "summary": "Upload my resume", "consumes": ["multipart/form-data"], "produces": ["application/json"], "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/student/profile/skills": {"post": {"tags": ["student"], "summary": "Extract skills from my profile", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/student/jobs": {"get": {"tags": ["student"], "summary": "Browse job offers", "produces": ["application/json"], "parameters": [{"type": "string", "name": "keyword", "in": "query"}, {"type": "string", "name": "q", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/student/jobs/{id}": {"get": {"tags": ["student"], "summary": "Job offer with match score", "produces": ["application/json"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/student/jobs/{id}/apply": {"post": {"tags": ["student"], "summary": "Apply to a job offer", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/student/applications": {"get": {"tags": ["student"], "summary": "My applications", "produces": ["application/json"], "parameters": [{"type": "string", "name": "q", "in": "query"}, {"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/student/applications/{id}/withdraw": {"post": {"tags": ["student"], "summary": "Withdraw an application", "produces": ["application/json"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/student/recommendations": {"get": {"tags": ["student"], "summary": "AI job recommendations and salary estimate", "produces": ["application/json"], "parameters": [{"type": "integer", "default": 5, "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/recruiter/dashboard": {"get": {"tags": ["recruiter"], "summary": "Recruiter dashboard", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}},
        "/recruiter/jobs": {
            "get": {"tags": ["recruiter"], "summary": "My job offers", "produces": ["application/json"], "parameters": [{"type": "string", "name": "q", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["recruiter"], "summary": "Post a job offer", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/recruiter/jobs/create": {"get": {"tags": ["recruiter"], "summary": "Blank job offer form", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/recruiter/jobs/{id}": {
            "get": {"tags": ["recruiter"], "summary": "Job offer with its applications", "produces": ["application/json"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["recruiter"], "summary": "Edit a job offer", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "delete": {"tags": ["recruiter"], "summary": "Delete a job offer", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/recruiter/applications": {"get": {"tags": ["recruiter"], "summary": "Applications across my job offers", "produces": ["application/json"], "parameters": [{"type": "string", "name": "q", "in": "query"}, {"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/recruiter/applications/{id}": {"get": {"tags": ["recruiter"], "summary": "One application", "produces": ["application/json"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/recruiter/applications/{id}/status": {"put": {"tags": ["recruiter"], "summary": "Change an application's status", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Recruitment portal",
	Description:      "Local portal over the recruitment backend. One session per process; guarded views answer 303 when the session may not open them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
