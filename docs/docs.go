// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/garden/companion-list": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["garden"],
                "summary": "Generate a companion planting list",
                "parameters": [
                    {
                        "description": "Selected plants and garden area",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CompanionListRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Planting list", "schema": {"$ref": "#/definitions/service.CompanionListResponse"}},
                    "400": {"description": "Malformed request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Selection cannot be planted", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/garden/plan": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["garden"],
                "summary": "Generate a garden layout",
                "parameters": [
                    {
                        "description": "Selected plants and garden area",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CompanionListRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Garden plan", "schema": {"$ref": "#/definitions/service.GardenPlanResponse"}},
                    "400": {"description": "Malformed request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Selection cannot be planted", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/plants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["plants"],
                "summary": "List plants",
                "responses": {
                    "200": {"description": "Plant ids", "schema": {"$ref": "#/definitions/service.PlantListResponse"}}
                }
            }
        },
        "/plants/{id}/companions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["plants"],
                "summary": "Get plant relationships",
                "parameters": [
                    {"type": "string", "description": "Plant id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Relationships", "schema": {"$ref": "#/definitions/service.PlantCompanionsResponse"}},
                    "404": {"description": "Plant not in dataset", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/compatibility": {
            "get": {
                "produces": ["application/json"],
                "tags": ["plants"],
                "summary": "Check two plants",
                "parameters": [
                    {"type": "string", "description": "First plant id", "name": "a", "in": "query", "required": true},
                    {"type": "string", "description": "Second plant id", "name": "b", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Compatibility", "schema": {"$ref": "#/definitions/service.CompatibilityResponse"}}
                }
            }
        },
        "/admin/dataset/reload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Reload the companion dataset",
                "responses": {
                    "200": {"description": "Reloaded dataset", "schema": {"$ref": "#/definitions/service.DatasetStatusResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "service.CompanionListRequest": {
            "type": "object",
            "properties": {
                "selectedPlantIds": {"type": "array", "items": {"type": "string"}},
                "areaM2": {"type": "number"}
            }
        },
        "service.AllocationResponse": {
            "type": "object",
            "properties": {
                "plantId": {"type": "string"},
                "quantity": {"type": "integer"},
                "source": {"type": "string", "enum": ["selected", "companion"]}
            }
        },
        "service.PositionResponse": {
            "type": "object",
            "properties": {
                "plantId": {"type": "string"},
                "x": {"type": "number"},
                "y": {"type": "number"},
                "gridX": {"type": "integer"},
                "gridY": {"type": "integer"}
            }
        },
        "service.CompanionListResponse": {
            "type": "object",
            "properties": {
                "areaM2": {"type": "number"},
                "sideLengthMeters": {"type": "number"},
                "capacity": {"type": "integer"},
                "allocations": {"type": "array", "items": {"$ref": "#/definitions/service.AllocationResponse"}}
            }
        },
        "service.GardenPlanResponse": {
            "type": "object",
            "properties": {
                "areaM2": {"type": "number"},
                "sideLengthMeters": {"type": "number"},
                "capacity": {"type": "integer"},
                "allocations": {"type": "array", "items": {"$ref": "#/definitions/service.AllocationResponse"}},
                "gridSide": {"type": "integer"},
                "cellSizeMeters": {"type": "number"},
                "positions": {"type": "array", "items": {"$ref": "#/definitions/service.PositionResponse"}}
            }
        },
        "service.PlantListResponse": {
            "type": "object",
            "properties": {
                "plants": {"type": "array", "items": {"type": "string"}},
                "total": {"type": "integer"}
            }
        },
        "service.PlantCompanionsResponse": {
            "type": "object",
            "properties": {
                "plantId": {"type": "string"},
                "helps": {"type": "array", "items": {"type": "string"}},
                "helpedBy": {"type": "array", "items": {"type": "string"}},
                "forbidden": {"type": "array", "items": {"type": "string"}}
            }
        },
        "service.CompatibilityResponse": {
            "type": "object",
            "properties": {
                "a": {"type": "string"},
                "b": {"type": "string"},
                "forbidden": {"type": "boolean"},
                "score": {"type": "integer"}
            }
        },
        "service.DatasetStatusResponse": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "loaded": {"type": "boolean"},
                "loadedAt": {"type": "string"},
                "edges": {"type": "integer"},
                "skipped": {"type": "integer"},
                "plants": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:7010",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Garden Planner Backend API",
	Description:      "Companion planting lists and square-grid garden layouts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
