package middlewares

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/giant-seguros/app-backoffice/internal/seguradora"
	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "user_id"
	UserNameKey = "user_name"
)

// sessionClaims são os campos lidos do token de sessão quando ele é um JWT.
// Servem apenas para logs; a autenticação é feita pela API da seguradora.
type sessionClaims struct {
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionGuard exige o cookie de sessão. Sem ele, navegação HTML é
// redirecionada para a página de login e chamadas de API recebem 401.
// Com ele, o token segue no contexto para ser repassado à API.
func SessionGuard(cookieName, signInPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := readCookie(c.Request, cookieName)
		if strings.TrimSpace(token) == "" {
			if wantsHTML(c.Request) {
				c.Redirect(http.StatusFound, signInPath)
				c.Abort()
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":  "Sessão não iniciada",
				"signin": signInPath,
			})
			c.Abort()
			return
		}

		if claims, err := parseSessionClaims(token); err == nil {
			if claims.Sub != "" {
				c.Set(UserIDKey, claims.Sub)
			}
			if claims.Name != "" {
				c.Set(UserNameKey, claims.Name)
			} else if claims.Email != "" {
				c.Set(UserNameKey, claims.Email)
			}
		}

		c.Request = c.Request.WithContext(seguradora.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

// readCookie lê o cookie pelo cabeçalho bruto quando o nome não é um token
// HTTP válido (como "@giant.token"), caso em que net/http o descarta
func readCookie(r *http.Request, name string) string {
	if cookie, err := r.Cookie(name); err == nil {
		return cookie.Value
	}
	for _, header := range r.Header.Values("Cookie") {
		for _, part := range strings.Split(header, ";") {
			key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
			if ok && key == name {
				return strings.Trim(value, `"`)
			}
		}
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// parseSessionClaims decodifica o payload de um JWT sem validar assinatura
func parseSessionClaims(token string) (*sessionClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errNotJWT
	}

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil, err
	}

	var claims sessionClaims
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// GetUserID retorna o id do usuário, se o token for um JWT
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetUserName retorna o nome do usuário, se o token for um JWT
func GetUserName(c *gin.Context) string {
	return c.GetString(UserNameKey)
}
