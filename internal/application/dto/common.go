package dto

// APIResponse envoltura uniforme de todas las respuestas: éxito y error
// comparten la misma forma {status, message, data}.
type APIResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success construye una envoltura de éxito.
func Success(status int, message string, data interface{}) APIResponse {
	return APIResponse{Status: status, Message: message, Data: data}
}

// Error construye una envoltura de error (data siempre null).
func Error(status int, message string) APIResponse {
	return APIResponse{Status: status, Message: message, Data: nil}
}
