// internal/api/types/response.go
package types

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}
