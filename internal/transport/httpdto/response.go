package httpdto

// Response is the envelope every HTTP endpoint returns.
type Response struct {
	Result    any    `json:"result"`
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
}

func Success(result any, message string) Response {
	return Response{Result: result, IsSuccess: true, Message: message}
}

func Failure(message string) Response {
	return Response{IsSuccess: false, Message: message}
}
