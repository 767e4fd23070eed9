// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

// Package docs registers the OpenAPI document served at /swagger/*.
//
// Regenerate from the handler annotations with:
//
//	swag init -g cmd/server/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/covidtracker/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/dashboard": {
            "get": {
                "description": "Returns info boxes, dropdown options, the sorted table, the map and the chart rendered from the current state",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get the dashboard view",
                "responses": {"200": {"description": "Dashboard view", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/summary": {
            "get": {
                "description": "Returns today and total figures for cases, recovered and deaths of the selected country or worldwide",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get the info boxes",
                "responses": {"200": {"description": "Info boxes", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/countries": {
            "get": {
                "description": "Returns every country sorted descending by the given count field (default cases). Missing counts sort as zero.",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "List countries",
                "parameters": [
                    {
                        "enum": ["cases", "todayCases", "deaths", "todayDeaths", "recovered", "todayRecovered", "active", "critical", "tests", "population"],
                        "type": "string",
                        "description": "Sort field",
                        "name": "sort",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "Sorted countries", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Invalid sort field", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/countries/{code}": {
            "get": {
                "description": "Fetches a country by name, iso2 or iso3 and returns its formatted figures",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get one country",
                "parameters": [
                    {"type": "string", "description": "Country name, iso2 or iso3", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Country figures", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Invalid country", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Unknown country", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Upstream circuit open", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/options": {
            "get": {
                "description": "Returns the synthetic worldwide option followed by one option per country in upstream order",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get dropdown options",
                "responses": {"200": {"description": "Dropdown options", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/map": {
            "get": {
                "description": "Returns the map center, zoom and one circle per country sized by the chosen counter",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get the map",
                "parameters": [
                    {"enum": ["cases", "recovered", "deaths"], "type": "string", "description": "Cases type", "name": "cases_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Map model", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Invalid cases type", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/historical": {
            "get": {
                "description": "Returns the worldwide daily-new series derived from the cumulative historical timeline",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get the chart",
                "parameters": [
                    {"enum": ["cases", "recovered", "deaths"], "type": "string", "description": "Cases type", "name": "cases_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Chart model", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Invalid cases type", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/selection/country": {
            "post": {
                "description": "Fetches the country (or worldwide totals), updates the selection and map viewport and returns the new view",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Selection"],
                "summary": "Select a country",
                "parameters": [
                    {"description": "Country to select", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SelectCountryRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated view", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Unknown country", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Upstream circuit open", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/selection/cases-type": {
            "post": {
                "description": "Switches the active counter and returns the new view",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Selection"],
                "summary": "Select a cases type",
                "parameters": [
                    {"description": "Cases type to select", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SelectCasesTypeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated view", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/ws": {
            "get": {
                "description": "Upgrades to a WebSocket. The latest view is sent on connect and again after every state change.",
                "tags": ["Dashboard"],
                "summary": "Dashboard updates stream",
                "responses": {
                    "101": {"description": "Switching protocols"},
                    "403": {"description": "Origin not allowed"},
                    "503": {"description": "WebSocket hub unavailable", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns readiness, upstream connectivity, per-slice load flags and the last successful sync",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get service health",
                "responses": {"200": {"description": "Health status", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/health/live": {
            "get": {
                "description": "Returns 200 while the process is alive",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "Service is alive", "schema": {"$ref": "#/definitions/api.APIResponse"}}}
            }
        },
        "/health/ready": {
            "get": {
                "description": "Returns 200 once global totals and the country list are loaded, 503 before that",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Service is not ready", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "api.APIMeta": {
            "type": "object",
            "properties": {
                "duration_ms": {"type": "integer"},
                "request_id": {"type": "string"},
                "state_version": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "meta": {"$ref": "#/definitions/api.APIMeta"},
                "success": {"type": "boolean"}
            }
        },
        "api.SelectCasesTypeRequest": {
            "type": "object",
            "required": ["cases_type"],
            "properties": {
                "cases_type": {"type": "string", "enum": ["cases", "recovered", "deaths"]}
            }
        },
        "api.SelectCountryRequest": {
            "type": "object",
            "required": ["country"],
            "properties": {
                "country": {"type": "string", "example": "us"}
            }
        }
    },
    "tags": [
        {"description": "Dashboard views and the update stream", "name": "Dashboard"},
        {"description": "Selection changes that re-render the dashboard", "name": "Selection"},
        {"description": "Health checks and probes", "name": "Core"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Covid Tracker API",
	Description:      "Worldwide and per-country COVID-19 statistics: info boxes, a sorted country table, map circles and a daily-new chart, with live WebSocket updates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
