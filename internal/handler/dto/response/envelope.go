package response

// Envelope wraps every API payload except the public offerings list, which
// stays a bare array for frontend compatibility.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}

func SuccessDetail(data any, detail string) Envelope {
	return Envelope{Status: "success", Data: data, Detail: detail}
}
