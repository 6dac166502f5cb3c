package dto

// Response — единый конверт всех ответов API:
// {success, data?, message?, error?, pagination?}.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func OKPage(data any, p Pagination) Response {
	return Response{Success: true, Data: data, Pagination: &p}
}

func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailWith дополняет ответ текстом исходной ошибки (контракт 500-х:
// сообщение драйвера уходит клиенту как есть).
func FailWith(message string, err error) Response {
	return Response{Success: false, Message: message, Error: err.Error()}
}
