// Package swagger serves the OpenAPI document of the HTTP API. The template
// follows the swag annotations on the handlers; refresh it with
// swag init -g cmd/start.go -o docs/swagger --outputTypes go after
// changing them.
package swagger

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
        "/integrity": {
            "get": {
                "description": "Performs the datastore and profile checks.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "integrity"
                ],
                "summary": "Run All Integrity Checks",
                "responses": {
                    "200": {
                        "description": "Combined Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/integrity/datastore": {
            "get": {
                "description": "Checks that the metadata, identifiers and full_text_search tables expose the expected columns.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "integrity"
                ],
                "summary": "Check Datastore",
                "responses": {
                    "200": {
                        "description": "Datastore Report",
                        "schema": {
                            "$ref": "#/definitions/checks.DatastoreReport"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/integrity/profile": {
            "get": {
                "description": "Lists catalog types without entities and extend properties without values.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "integrity"
                ],
                "summary": "Check Profile",
                "responses": {
                    "200": {
                        "description": "Profile Report",
                        "schema": {
                            "$ref": "#/definitions/checks.ProfileReport"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/preview": {
            "get": {
                "description": "Redirects to the preview page of an entity.",
                "tags": [
                    "reconciliation"
                ],
                "summary": "Preview",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Entity id",
                        "name": "id",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "302": {
                        "description": "Found"
                    }
                }
            }
        },
        "/properties": {
            "get": {
                "description": "Lists the extend properties applicable to a type (by id or name).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Propose Properties",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Type id or name",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of properties",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Property proposal",
                        "schema": {
                            "$ref": "#/definitions/reconciliation.ProposalResponse"
                        }
                    }
                }
            }
        },
        "/reconcile": {
            "get": {
                "description": "Without parameters returns the service manifest. With ` + "`" + `queries` + "`" + ` runs a batch of match queries, with ` + "`" + `extend` + "`" + ` fetches property values.",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Reconcile",
                "parameters": [
                    {
                        "type": "string",
                        "description": "JSON object mapping query ids to queries",
                        "name": "queries",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "JSON data extension request",
                        "name": "extend",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Manifest, batch result or extension result",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Without parameters returns the service manifest. With ` + "`" + `queries` + "`" + ` runs a batch of match queries, with ` + "`" + `extend` + "`" + ` fetches property values.",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reconciliation"
                ],
                "summary": "Reconcile",
                "parameters": [
                    {
                        "type": "string",
                        "description": "JSON object mapping query ids to queries",
                        "name": "queries",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "JSON data extension request",
                        "name": "extend",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Manifest, batch result or extension result",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/suggest/{kind}": {
            "get": {
                "description": "Typeahead lookup. ` + "`" + `entity` + "`" + ` searches identifiers and names, ` + "`" + `type` + "`" + ` the type catalog. ` + "`" + `property` + "`" + ` is not supported.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "suggest"
                ],
                "summary": "Suggest",
                "parameters": [
                    {
                        "type": "string",
                        "description": "entity, type or property",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Typed prefix",
                        "name": "prefix",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Number of results to skip (entity only)",
                        "name": "cursor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Suggestions",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Unsupported suggest type",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "checks.DatastoreReport": {
            "type": "object",
            "properties": {
                "dialect": {
                    "type": "string"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "matched": {
                    "type": "boolean"
                },
                "tables": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/checks.TableReport"
                    }
                }
            }
        },
        "checks.ProfileReport": {
            "type": "object",
            "properties": {
                "empty_properties": {
                    "description": "EmptyProperties are extend properties whose source property has no values.",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "empty_types": {
                    "description": "EmptyTypes are catalog types no entity declares.",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "matched": {
                    "type": "boolean"
                }
            }
        },
        "checks.TableReport": {
            "type": "object",
            "properties": {
                "missing_columns": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "status": {
                    "description": "\"ok\", \"error\"",
                    "type": "string"
                },
                "type_mismatches": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "reconciliation.PropertyMeta": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "reconciliation.ProposalResponse": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "properties": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reconciliation.PropertyMeta"
                    }
                },
                "type": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ARCHE OpenRefine Reconciliation API",
	Description:      "OpenRefine reconciliation service over a metadata repository.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
