// Package docs holds the swagger definition served under /swagger/. It is
// maintained by hand alongside the @Router annotations of the API controllers.
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
        "/nasa/rainfall": {
            "get": {
                "description": "Daily corrected precipitation from NASA POWER. Without start and end the last 7 days up to today are returned.",
                "produces": ["application/json"],
                "tags": ["rainfall"],
                "summary": "Daily rainfall series",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lon", "in": "query", "required": true},
                    {"type": "string", "description": "First day (YYYY-MM-DD)", "name": "start", "in": "query"},
                    {"type": "string", "description": "Last day (YYYY-MM-DD)", "name": "end", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.RainfallSeries"}},
                    "400": {"description": "Invalid coordinates or dates", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/weather/current": {
            "get": {
                "description": "Fetch and normalize the current OpenWeather reading for a city",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Get current weather",
                "parameters": [
                    {"type": "string", "default": "Thane,IN", "description": "City as name[,country]", "name": "city", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CurrentWeather"}},
                    "500": {"description": "Missing API key or upstream failure", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/weather/history": {
            "get": {
                "description": "Samples recorded in the last hours whose city contains the part of city before the first comma, case-insensitively",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Query stored samples",
                "parameters": [
                    {"type": "string", "default": "Thane,IN", "description": "City filter", "name": "city", "in": "query"},
                    {"type": "integer", "default": 72, "description": "Window in hours", "name": "hours", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.WeatherSample"}}},
                    "400": {"description": "Invalid hours", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/weather/save": {
            "post": {
                "description": "Fetch the current reading for a city and store it as a history sample",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Store current weather",
                "parameters": [
                    {"type": "string", "default": "Thane,IN", "description": "City as name[,country]", "name": "city", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SaveResponse"}},
                    "500": {"description": "Missing API key, upstream or storage failure", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "entity.WeatherSample": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "city": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "temp_c": {"type": "number"},
                "feels_like_c": {"type": "number"},
                "humidity": {"type": "integer"},
                "wind_ms": {"type": "number"},
                "rain_1h": {"type": "number"},
                "recorded_at": {"type": "string"}
            }
        },
        "model.CurrentWeather": {
            "type": "object",
            "properties": {
                "city": {"type": "string", "example": "Thane,IN"},
                "lat": {"type": "number", "example": 19.2},
                "lon": {"type": "number", "example": 72.97},
                "temp_c": {"type": "number", "example": 30.1},
                "feels_like_c": {"type": "number", "example": 34.2},
                "humidity": {"type": "integer", "example": 70},
                "wind_ms": {"type": "number", "example": 3.6},
                "rain_1h": {"type": "number", "example": 0}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "OpenWeather API key not configured."}
            }
        },
        "model.RainfallPoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2024-01-02"},
                "rain_mm": {"type": "number", "example": 3.46}
            }
        },
        "model.RainfallSeries": {
            "type": "object",
            "properties": {
                "lat": {"type": "number", "example": 19.2},
                "lon": {"type": "number", "example": 72.97},
                "series": {"type": "array", "items": {"$ref": "#/definitions/model.RainfallPoint"}}
            }
        },
        "model.SaveResponse": {
            "type": "object",
            "properties": {
                "saved_id": {"type": "integer", "example": 42}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Weather API",
	Description:      "Current weather, stored history and NASA POWER rainfall.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
