// Package docs registers the swagger document of the web API.
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
        "/db/health": {
            "get": {
                "description": "Runs a single SELECT 1 against the database",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Database connectivity check",
                "responses": {
                    "200": {
                        "description": "Database reachable",
                        "schema": {
                            "$ref": "#/definitions/model.DBHealthResponse"
                        }
                    },
                    "500": {
                        "description": "Database unreachable",
                        "schema": {
                            "$ref": "#/definitions/model.DBHealthResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports database and cache status",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Application health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "status": {
                    "$ref": "#/definitions/model.HealthStatus"
                }
            }
        },
        "model.DBHealthResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "connection refused"
                },
                "ok": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "cache": {
                    "$ref": "#/definitions/model.ComponentHealthStatus"
                },
                "database": {
                    "$ref": "#/definitions/model.ComponentHealthStatus"
                },
                "status": {
                    "$ref": "#/definitions/model.HealthStatus"
                }
            }
        },
        "model.HealthStatus": {
            "type": "string",
            "enum": [
                "UP",
                "DOWN",
                "UNKNOWN"
            ],
            "x-enum-varnames": [
                "StatusUp",
                "StatusDown",
                "StatusUnknown"
            ]
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "go-web API",
	Description:      "Database connectivity and application health.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
