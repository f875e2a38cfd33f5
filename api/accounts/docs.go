// Package accounts contains the generated OpenAPI document for the account
// service. Regenerate with `swag init -g internal/accounts/http/router.go`.
package accounts

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/campuspass"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/.well-known/jwks.json": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "JWKS Endpoint",
                "responses": {
                    "200": {
                        "description": "keys",
                        "schema": {"$ref": "#/definitions/jwtx.JWKS"}
                    }
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Liveness Endpoint",
                "responses": {
                    "200": {"description": "status, version, uptime"}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Readiness Endpoint",
                "responses": {
                    "200": {"description": "status"},
                    "503": {"description": "status"}
                }
            }
        },
        "/v1/accounts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "List Accounts Endpoint",
                "responses": {
                    "200": {
                        "description": "users",
                        "schema": {"$ref": "#/definitions/accountsdk.ListUsersResponse"}
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    },
                    "403": {"description": "insufficient_scope"}
                }
            }
        },
        "/v1/accounts/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Register Account Endpoint",
                "parameters": [
                    {
                        "description": "Registration request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/accountsdk.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "user_id, username, role, locked",
                        "schema": {"$ref": "#/definitions/accountsdk.RegisterResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/accounts/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Login Endpoint",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/accountsdk.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "user_id, username, role, authorities",
                        "schema": {"$ref": "#/definitions/accountsdk.LoginResponse"},
                        "headers": {
                            "Jwt-Token": {
                                "type": "string",
                                "description": "Bearer access token"
                            }
                        }
                    },
                    "401": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    },
                    "423": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/accounts/forgot-password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recovery"],
                "summary": "Forgot Password Endpoint",
                "parameters": [
                    {
                        "description": "Username",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/accountsdk.ForgotPasswordRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {"$ref": "#/definitions/accountsdk.MessageResponse"}
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/accounts/verify-forgot-password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recovery"],
                "summary": "Verify Forgot Password Endpoint",
                "parameters": [
                    {
                        "description": "Username, code and new password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/accountsdk.VerifyForgotPasswordRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {"$ref": "#/definitions/accountsdk.MessageResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/accounts/verify-otp": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recovery"],
                "summary": "Verify OTP Endpoint",
                "parameters": [
                    {
                        "description": "Username and code",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/accountsdk.VerifyOTPRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "verified",
                        "schema": {"$ref": "#/definitions/accountsdk.VerifyOTPResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/accounts/forgot-username": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recovery"],
                "summary": "Forgot Username Endpoint",
                "parameters": [
                    {
                        "description": "Email",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/accountsdk.ForgotUsernameRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {"$ref": "#/definitions/accountsdk.MessageResponse"}
                    },
                    "404": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    },
                    "500": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    }
                }
            }
        },
        "/v1/accounts/verify-otp-forgot-username": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recovery"],
                "summary": "Verify Forgot Username Endpoint",
                "parameters": [
                    {
                        "description": "Code and desired username",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/accountsdk.VerifyForgotUsernameRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {"$ref": "#/definitions/accountsdk.MessageResponse"}
                    },
                    "400": {
                        "description": "error, error_description",
                        "schema": {"$ref": "#/definitions/accountsdk.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "accountsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"}
            }
        },
        "accountsdk.ProfilePayload": {
            "type": "object",
            "properties": {
                "number": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "accountsdk.RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "employee": {"$ref": "#/definitions/accountsdk.ProfilePayload"},
                "student": {"$ref": "#/definitions/accountsdk.ProfilePayload"},
                "external": {"$ref": "#/definitions/accountsdk.ProfilePayload"},
                "guest": {"$ref": "#/definitions/accountsdk.ProfilePayload"}
            }
        },
        "accountsdk.RegisterResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "username": {"type": "string"},
                "role": {"type": "string"},
                "locked": {"type": "boolean"}
            }
        },
        "accountsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "accountsdk.LoginResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "username": {"type": "string"},
                "role": {"type": "string"},
                "authorities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "accountsdk.ForgotPasswordRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"}
            }
        },
        "accountsdk.VerifyForgotPasswordRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "otp": {"type": "string"},
                "new_password": {"type": "string"}
            }
        },
        "accountsdk.VerifyOTPRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "otp": {"type": "string"}
            }
        },
        "accountsdk.VerifyOTPResponse": {
            "type": "object",
            "properties": {
                "verified": {"type": "boolean"}
            }
        },
        "accountsdk.ForgotUsernameRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}
            }
        },
        "accountsdk.VerifyForgotUsernameRequest": {
            "type": "object",
            "properties": {
                "otp": {"type": "string"},
                "new_username": {"type": "string"}
            }
        },
        "accountsdk.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "accountsdk.UserRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "role": {"type": "string"},
                "locked": {"type": "boolean"},
                "active": {"type": "boolean"},
                "joined_at": {"type": "string"},
                "last_login_at": {"type": "string"}
            }
        },
        "accountsdk.ListUsersResponse": {
            "type": "object",
            "properties": {
                "users": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/accountsdk.UserRecord"}
                }
            }
        },
        "jwtx.JWK": {
            "type": "object",
            "properties": {
                "kty": {"type": "string"},
                "use": {"type": "string"},
                "alg": {"type": "string"},
                "kid": {"type": "string"},
                "crv": {"type": "string"},
                "x": {"type": "string"}
            }
        },
        "jwtx.JWKS": {
            "type": "object",
            "properties": {
                "keys": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/jwtx.JWK"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT access token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "CampusPass Account Service API",
	Description:      "Account lifecycle service: registration, credential login issuing a JWT in the Jwt-Token response header, and one-time-code recovery flows.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
