package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Edu Admin API",
        "description": "Course and student administration API with single-admin JWT auth",
        "version": "0.1.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Admin registration and login"},
        {"name": "Courses", "description": "Course catalogue management"},
        {"name": "Students", "description": "Student roster, course assignment and marks"}
    ],
    "paths": {
        "/auth/check": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Report whether an admin exists",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ExistsResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register an admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Admin"}},
                    "400": {"description": "Validation or conflict error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate the admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "400": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Course"}},
                    "400": {"description": "Validation or conflict error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/courses/{id}": {
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students with their course joined",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Validation or conflict error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students/{id}": {
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/students/{id}/assign": {
            "post": {
                "tags": ["Students"],
                "summary": "Assign a course to a student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "Assigned", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students/marks": {
            "post": {
                "tags": ["Students"],
                "summary": "Add or replace the mark for a subject",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertMarkRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/StudentMessageResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Remove the mark for a subject",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteMarkRequest"}}
                ],
                "responses": {
                    "200": {"description": "Removed", "schema": {"$ref": "#/definitions/StudentMessageResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export the student roster",
                "security": [{"BearerAuth": []}],
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File attachment"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "ExistsResponse": {
            "type": "object",
            "properties": {
                "exists": {"type": "boolean"}
            }
        },
        "Admin": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "required": ["courseName", "duration"],
            "properties": {
                "courseName": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "integer", "minimum": 1, "maximum": 48},
                "subjects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "courseName": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "integer"},
                "subjects": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "required": ["name", "email"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "AssignCourseRequest": {
            "type": "object",
            "required": ["courseId"],
            "properties": {
                "studentId": {"type": "string"},
                "courseId": {"type": "string"}
            }
        },
        "UpsertMarkRequest": {
            "type": "object",
            "required": ["studentId", "subject"],
            "properties": {
                "studentId": {"type": "string"},
                "subject": {"type": "string"},
                "marks": {"type": "number"}
            }
        },
        "DeleteMarkRequest": {
            "type": "object",
            "required": ["studentId", "subject"],
            "properties": {
                "studentId": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "Mark": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "marks": {"type": "number"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "course": {"$ref": "#/definitions/Course"},
                "marks": {"type": "array", "items": {"$ref": "#/definitions/Mark"}},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "StudentMessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "student": {"$ref": "#/definitions/Student"}
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
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
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
