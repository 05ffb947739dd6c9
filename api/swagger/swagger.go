package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Luach API",
        "description": "Jewish and US holiday catalog with bilingual search and calendar exports",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Holidays", "description": "Resolved holiday catalog and search"},
        {"name": "Export", "description": "Calendar and table downloads"}
    ],
    "paths": {
        "/holidays": {
            "get": {
                "tags": ["Holidays"],
                "summary": "Resolved holiday catalog",
                "parameters": [
                    {"name": "locale", "in": "query", "type": "string", "enum": ["diaspora", "israel"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/holidays/upcoming": {
            "get": {
                "tags": ["Holidays"],
                "summary": "Nearest upcoming holidays",
                "parameters": [
                    {"name": "locale", "in": "query", "type": "string", "enum": ["diaspora", "israel"]},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/holidays/search": {
            "get": {
                "tags": ["Holidays"],
                "summary": "Search holidays by name, alias or Hebrew text",
                "parameters": [
                    {"name": "q", "in": "query", "required": true, "type": "string"},
                    {"name": "locale", "in": "query", "type": "string", "enum": ["diaspora", "israel"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/ics": {
            "get": {
                "tags": ["Export"],
                "summary": "Download one occurrence as an iCalendar file",
                "produces": ["text/calendar"],
                "parameters": [
                    {"name": "title", "in": "query", "required": true, "type": "string"},
                    {"name": "start", "in": "query", "required": true, "type": "string"},
                    {"name": "end", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/link": {
            "get": {
                "tags": ["Export"],
                "summary": "Google Calendar deep link for one occurrence",
                "parameters": [
                    {"name": "title", "in": "query", "required": true, "type": "string"},
                    {"name": "start", "in": "query", "required": true, "type": "string"},
                    {"name": "end", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/csv": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the upcoming catalog as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "locale", "in": "query", "type": "string", "enum": ["diaspora", "israel"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/export/pdf": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the upcoming catalog as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "locale", "in": "query", "type": "string", "enum": ["diaspora", "israel"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "Style": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "background": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "Occurrence": {
            "type": "object",
            "properties": {
                "start": {"type": "string"},
                "end": {"type": "string"},
                "displayStart": {"type": "string"},
                "displayEnd": {"type": "string"}
            }
        },
        "Holiday": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "category": {"type": "string"},
                "hebrew": {"type": "string"},
                "description": {"type": "string"},
                "style": {"$ref": "#/definitions/Style"},
                "occurrences": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Occurrence"}
                },
                "nextStart": {"type": "string"},
                "nextEnd": {"type": "string"},
                "nextDisplayStart": {"type": "string"},
                "nextDisplayEnd": {"type": "string"},
                "nextStartLong": {"type": "string"},
                "nextStartShort": {"type": "string"},
                "nextStartDisplay": {"type": "string"},
                "dayCount": {"type": "integer"},
                "daysUntil": {"type": "integer"},
                "daysUntilEnd": {"type": "integer"},
                "countdownLabel": {"type": "string"}
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
