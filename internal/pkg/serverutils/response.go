package serverutils

type Response[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// WarningResponse reports a handled, non-error outcome (e.g. nothing to do).
func WarningResponse(message string) Response[any] {
	return Response[any]{
		Status:  "warning",
		Message: message,
	}
}

func ErrorResponse(message string) Response[any] {
	return Response[any]{
		Status:  "error",
		Message: message,
	}
}
