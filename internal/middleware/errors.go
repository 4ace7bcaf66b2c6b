package middlewares

import "errors"

var errNotJWT = errors.New("token de sessão não é um JWT")
